package gui

import (
	"fmt"
	"image/color"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/tui-tetris/internal/bridge"
	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

var (
	backgroundColor = color.NRGBA{R: 0x10, G: 0x10, B: 0x14, A: 0xFF}
	panelColor      = color.NRGBA{R: 0x20, G: 0x20, B: 0x28, A: 0xFF}
)

// Options configures a window session.
type Options struct {
	Game    config.TetrisConfig
	Garbage bool
	Seed    int64
	TPS     int
	Store   *storage.Store
	Logger  *log.Logger
}

// Window is an ebiten.Game driving one bridge.
type Window struct {
	opts   Options
	logger *log.Logger
	layout layout
	bridge *bridge.Bridge
	lines  tetris.LineCounter
	seed   int64

	ticks  int64
	paused bool
	saved  bool
}

// NewWindow builds the first game.
func NewWindow(opts Options) (*Window, error) {
	if opts.TPS <= 0 {
		opts.TPS = ebiten.DefaultTPS
	}
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "tetris-gui", Level: log.GetLevel()})
	}

	w := &Window{opts: opts, logger: logger, seed: opts.Seed}
	if err := w.restart(); err != nil {
		return nil, err
	}
	w.layout = newLayout(w.bridge.Config())
	return w, nil
}

func (w *Window) restart() error {
	b, err := tetris.NewBridge(w.opts.Game, w.opts.Garbage, w.seed)
	if err != nil {
		return err
	}
	b.RenderAll()
	w.bridge = b
	w.lines.Reset()
	w.ticks = 0
	w.paused = false
	w.saved = false
	return nil
}

func (w *Window) nowMs() int64 {
	return w.ticks * 1000 / int64(w.opts.TPS)
}

// Update advances the game by one tick.
func (w *Window) Update() error {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape), inpututil.IsKeyJustPressed(ebiten.KeyQ):
		return ebiten.Termination
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		w.seed++
		return w.restart()
	case inpututil.IsKeyJustPressed(ebiten.KeyP):
		w.paused = !w.paused
	}

	if w.paused || w.bridge.GameOver() {
		return nil
	}

	w.bridge.StepKeys(w.nowMs(), readKeys(inpututil.KeyPressDuration))
	w.bridge.RenderAll()
	w.lines.Observe(w.bridge.NumDeletedLines())
	w.ticks++

	if w.bridge.GameOver() && !w.saved {
		w.saved = true
		w.saveRun()
	}
	return nil
}

func (w *Window) saveRun() {
	lines := w.lines.Total()
	if w.opts.Store == nil || lines == 0 {
		return
	}
	gameID := string(tetris.ModeMarathon)
	if w.opts.Garbage {
		gameID = string(tetris.ModeGarbage)
	}
	_, err := w.opts.Store.SaveRun(storage.Run{
		GameID:   gameID,
		Lines:    lines,
		Seed:     w.seed,
		Duration: time.Duration(w.nowMs()) * time.Millisecond,
	})
	if err != nil {
		w.logger.Warn("could not save score", "error", err)
	}
}

// Draw paints the three buffers and the HUD.
func (w *Window) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	b := w.bridge
	drawPanel(screen, w.layout.Hold, b.Hold(), b.HoldColor())
	drawPanel(screen, w.layout.Field, b.Field(), b.FieldColor())
	drawPanel(screen, w.layout.Nexts, b.Nexts(), b.NextsColor())

	ebitenutil.DebugPrintAt(screen, "HOLD", w.layout.Hold.X, w.layout.Hold.Y-16)
	ebitenutil.DebugPrintAt(screen, "NEXT", w.layout.Nexts.X, w.layout.Nexts.Y-16)

	status := fmt.Sprintf("Lines: %d", w.lines.Total())
	switch {
	case b.GameOver():
		status += "   GAME OVER - R to restart"
	case w.paused:
		status += "   PAUSED"
	}
	ebitenutil.DebugPrintAt(screen, status, marginPx, marginPx)
}

func drawPanel(dst *ebiten.Image, p panel, occ []uint8, colors []float32) {
	vector.DrawFilledRect(dst, float32(p.X), float32(p.Y), float32(p.width()), float32(p.height()), panelColor, false)
	for row := range p.Rows {
		for col := range p.Cols {
			i := row*p.Cols + col
			if occ[i] == 0 {
				continue
			}
			x, y := p.cellOrigin(row, col)
			vector.DrawFilledRect(dst, x+1, y+1, cellPx-2, cellPx-2, cellColor(colors, i), false)
		}
	}
}

// Layout keeps a fixed logical size and lets ebiten scale it.
func (w *Window) Layout(_, _ int) (int, int) {
	return w.layout.Width, w.layout.Height
}

// Run opens the window and blocks until it is closed.
func Run(opts Options) error {
	w, err := NewWindow(opts)
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(w.layout.Width, w.layout.Height)
	ebiten.SetWindowTitle("Tetris")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(w.opts.TPS)

	if err := ebiten.RunGame(w); err != nil && err != ebiten.Termination {
		return err
	}
	return nil
}
