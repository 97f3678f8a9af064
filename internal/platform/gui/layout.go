// Package gui hosts the bridge in a desktop window. The window draws the
// flat buffers directly; it never looks at engine state.
package gui

import (
	"image/color"

	"github.com/vovakirdan/tui-tetris/internal/bridge"
	"github.com/vovakirdan/tui-tetris/internal/core"
)

const (
	cellPx   = 24
	marginPx = 16
	hudPx    = 40
)

// panel is a grid of cells placed on the window.
type panel struct {
	X, Y       int
	Rows, Cols int
}

func (p panel) width() int  { return p.Cols * cellPx }
func (p panel) height() int { return p.Rows * cellPx }

// cellOrigin returns the top-left pixel of a cell.
func (p panel) cellOrigin(row, col int) (float32, float32) {
	return float32(p.X + col*cellPx), float32(p.Y + row*cellPx)
}

// layout places the hold box, field and preview column left to right.
type layout struct {
	Hold   panel
	Field  panel
	Nexts  panel
	Width  int
	Height int
}

func newLayout(cfg bridge.Config) layout {
	top := marginPx + hudPx
	hold := panel{X: marginPx, Y: top, Rows: cfg.HoldSize, Cols: cfg.HoldSize}
	field := panel{X: hold.X + hold.width() + marginPx, Y: top, Rows: cfg.Height, Cols: cfg.Width}
	nexts := panel{
		X:    field.X + field.width() + marginPx,
		Y:    top,
		Rows: cfg.NumNexts * cfg.NextSize,
		Cols: cfg.NextSize,
	}

	l := layout{Hold: hold, Field: field, Nexts: nexts}
	l.Width = nexts.X + nexts.width() + marginPx
	l.Height = top + max(hold.height(), field.height(), nexts.height()) + marginPx
	return l
}

// cellColor converts one RGBA quadruple from a bridge color buffer.
func cellColor(buf []float32, cell int) color.NRGBA {
	c := core.RGBASlice(buf[cell*4 : cell*4+4])
	return color.NRGBA{R: c.R(), G: c.G(), B: c.B(), A: c.A()}
}
