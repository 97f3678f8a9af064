package tetris

import (
	"fmt"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
)

const (
	cellWidth = 2 // Terminal columns per board cell
	hudHeight = 2
	gap       = 1
)

const (
	glyphBlock = '█'
	glyphGhost = '░'
)

// layoutSize returns the screen area needed for hold, field and next panels.
func layoutSize(cfg config.TetrisConfig) (w, h int) {
	hold := core.BoxRect(0, 0, cfg.Preview.HoldSize, cfg.Preview.HoldSize, cellWidth)
	field := core.BoxRect(0, 0, cfg.Board.Width, cfg.Board.Height, cellWidth)
	next := core.BoxRect(0, 0, cfg.Preview.NextSize, cfg.Board.Height, cellWidth)
	return hold.W + gap + field.W + gap + next.W, hudHeight + field.H
}

// Render draws the bridge buffers to the screen. It reads nothing from the
// engine directly.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.err != nil {
		dst.DrawTextCentered(dst.Height()/2, "Invalid tetris config")
		dst.DrawTextCentered(dst.Height()/2+1, g.err.Error())
		return
	}
	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	w, h := layoutSize(g.cfg)
	x0 := (dst.Width() - w) / 2
	y0 := max(0, (dst.Height()-h)/2)

	holdW := g.bridge.HoldSize()*cellWidth + 2
	fieldW := g.bridge.Width()*cellWidth + 2
	holdX := x0
	fieldX := holdX + holdW + gap
	nextX := fieldX + fieldW + gap
	boardY := y0 + hudHeight

	g.renderHUD(dst, x0, y0, w)
	g.renderHold(dst, holdX, boardY)
	g.renderField(dst, fieldX, boardY)
	g.renderNexts(dst, nextX, boardY)
	g.renderOverlays(dst, fieldX, boardY, fieldW)
}

func (g *Game) renderTooSmall(dst *core.Screen) {
	w, h := layoutSize(g.cfg)
	y := dst.Height() / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d", w, h))
}

func (g *Game) renderHUD(dst *core.Screen, x, y, w int) {
	title := g.Title()
	dst.DrawTextColor(x+(w-len(title))/2, y, title, core.ColorCyan)

	lines := fmt.Sprintf("Lines: %d", g.lines.Total())
	dst.DrawText(x, y+1, lines)

	if g.mode == ModeGarbage || g.cfg.Rules.Garbage {
		info := "Garbage on"
		dst.DrawTextColor(x+w-len(info), y+1, info, core.ColorGray)
	}
}

func (g *Game) renderField(dst *core.Screen, x, y int) {
	width, height := g.bridge.Width(), g.bridge.Height()
	box := core.BoxRect(x, y, width, height, cellWidth)
	dst.DrawBox(box, core.ColorGray)
	drawGrid(dst, box.Inner(), width, height, g.bridge.Field(), g.bridge.FieldColor())
}

func (g *Game) renderHold(dst *core.Screen, x, y int) {
	size := g.bridge.HoldSize()
	box := core.BoxRect(x, y, size, size, cellWidth)
	dst.DrawBox(box, core.ColorGray)
	dst.DrawText(x+2, y, "HOLD")
	drawGrid(dst, box.Inner(), size, size, g.bridge.Hold(), g.bridge.HoldColor())
}

// drawGrid paints a row-major occupancy buffer into area.
func drawGrid(dst *core.Screen, area core.Rect, cols, rows int, occ []uint8, colors []float32) {
	for r := range rows {
		for c := range cols {
			i := r*cols + c
			drawCell(dst, area.X+c*cellWidth, area.Y+r, occ[i], colors[i*4:i*4+4])
		}
	}
}

// renderNexts draws the queue compactly: only rows that contain blocks,
// separated by one blank row, until the panel is full.
func (g *Game) renderNexts(dst *core.Screen, x, y int) {
	size := g.bridge.NextSize()
	box := core.BoxRect(x, y, size, g.bridge.Height(), cellWidth)
	dst.DrawBox(box, core.ColorGray)
	dst.DrawText(x+2, y, "NEXT")
	area := box.Inner()

	nexts, colors := g.bridge.Nexts(), g.bridge.NextsColor()
	row := 0
	for slot := range g.bridge.NumNexts() {
		base := slot * size * size
		for r := 0; r < size; r++ {
			start := base + r*size
			if !anySet(nexts[start : start+size]) {
				continue
			}
			if row >= area.H {
				return
			}
			for c := range size {
				i := start + c
				drawCell(dst, area.X+c*cellWidth, area.Y+row, nexts[i], colors[i*4:i*4+4])
			}
			row++
		}
		row++
	}
}

func (g *Game) renderOverlays(dst *core.Screen, fieldX, boardY, fieldW int) {
	mid := boardY + g.bridge.Height()/2
	center := func(y int, text string, c core.Color) {
		dst.DrawTextColor(fieldX+(fieldW-len(text))/2, y, text, c)
	}

	switch {
	case g.bridge.GameOver():
		center(mid-1, " GAME OVER ", core.ColorRed)
		center(mid+1, fmt.Sprintf(" Lines: %d ", g.lines.Total()), core.ColorWhite)
		center(mid+2, " R restart ", core.ColorGray)
		center(mid+3, " B menu ", core.ColorGray)
	case g.paused:
		center(mid, " PAUSED ", core.ColorYellow)
		center(mid+1, " P resume ", core.ColorGray)
	}
}

// drawCell paints one board cell. Translucent cells are ghost blocks and use
// shade glyphs in the opaque version of their color.
func drawCell(dst *core.Screen, x, y int, occupied uint8, rgba []float32) {
	if occupied == 0 {
		return
	}
	glyph := glyphBlock
	if rgba[3] < 1 {
		glyph = glyphGhost
	}
	c := core.RGBA(rgba[0], rgba[1], rgba[2], 1)
	for i := 0; i < cellWidth; i++ {
		dst.SetCell(x+i, y, glyph, c)
	}
}

func anySet(cells []uint8) bool {
	for _, v := range cells {
		if v != 0 {
			return true
		}
	}
	return false
}
