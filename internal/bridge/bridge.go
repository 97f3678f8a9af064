// Package bridge mirrors rules-engine state into flat, fixed-layout numeric
// buffers that a host can read directly.
//
// A Bridge owns five buffer pairs (field, next queue, hold; occupancy bytes
// and RGBA float32 colors) sized once at construction. Step forwards one
// input to the engine; RenderField, RenderNext and RenderHold rewrite the
// buffers from the engine's current projections. The typical host loop is
// Step, RenderAll, then read.
//
// Slices returned by the buffer accessors alias the Bridge's storage. They
// are valid until the next mutating call and must not be written.
package bridge

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-tetris/internal/gamemaster"
)

// ErrInvalidConfig is returned for zero or negative dimensions.
var ErrInvalidConfig = errors.New("bridge: invalid config")

// Engine is the slice of rules-engine behavior the bridge consumes.
type Engine interface {
	// Tick advances the simulation to nowMs with one step of input.
	Tick(nowMs int64, keys gamemaster.KeyPress)
	// ProjectControlledMino returns the locked board composited with the
	// active piece and ghost, as [row][col] occupancy and RGBA grids.
	ProjectControlledMino() ([][]bool, [][][4]float32)
	// Next returns the piece at queue position index, if any.
	Next(index int) (gamemaster.Mino, bool)
	// Hold returns the held piece, if any.
	Hold() (gamemaster.Mino, bool)
	// NumDeletedLines returns the cumulative cleared row count.
	NumDeletedLines() int
}

// gameOverReporter is implemented by engines that know when play has ended.
type gameOverReporter interface {
	GameOver() bool
}

// Config holds the immutable construction parameters.
type Config struct {
	Height   int
	Width    int
	NumNexts int
	NextSize int
	HoldSize int
	Ghost    bool
	Garbage  bool
}

// Validate rejects degenerate dimensions.
func (c Config) Validate() error {
	fields := []struct {
		name  string
		value int
	}{
		{"height", c.Height},
		{"width", c.Width},
		{"num_nexts", c.NumNexts},
		{"next_size", c.NextSize},
		{"hold_size", c.HoldSize},
	}
	for _, f := range fields {
		if f.value <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %d", ErrInvalidConfig, f.name, f.value)
		}
	}
	return nil
}

// Bridge connects one engine instance to one buffer set.
type Bridge struct {
	cfg    Config
	engine Engine
	buf    buffers
}

// New builds a bridge around the built-in rules engine. pieceRand and
// garbageRand are independent entropy sources for the randomizer and for
// garbage holes.
func New(cfg Config, pieceRand, garbageRand gamemaster.RandSource, opts ...gamemaster.Option) (*Bridge, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.NextSize < gamemaster.MaxMinoSize || cfg.HoldSize < gamemaster.MaxMinoSize {
		return nil, fmt.Errorf("%w: next_size and hold_size must be at least %d", ErrInvalidConfig, gamemaster.MaxMinoSize)
	}
	gm, err := gamemaster.New(cfg.Height, cfg.Width, pieceRand, garbageRand, cfg.Ghost, cfg.Garbage, opts...)
	if err != nil {
		return nil, fmt.Errorf("bridge: %w", err)
	}
	return NewWithEngine(cfg, gm)
}

// NewWithEngine builds a bridge around any Engine. The engine must never
// report pieces larger than NextSize or HoldSize.
func NewWithEngine(cfg Config, engine Engine) (*Bridge, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if engine == nil {
		return nil, fmt.Errorf("%w: nil engine", ErrInvalidConfig)
	}
	return &Bridge{
		cfg:    cfg,
		engine: engine,
		buf:    newBuffers(cfg.Height, cfg.Width, cfg.NumNexts, cfg.NextSize, cfg.HoldSize),
	}, nil
}

// Config returns the construction parameters.
func (b *Bridge) Config() Config {
	return b.cfg
}

// Width returns the field width in cells.
func (b *Bridge) Width() int {
	return b.cfg.Width
}

// Height returns the field height in cells.
func (b *Bridge) Height() int {
	return b.cfg.Height
}

// NumNexts returns the number of next-queue slots.
func (b *Bridge) NumNexts() int {
	return b.cfg.NumNexts
}

// NextSize returns the side of one next-queue slot.
func (b *Bridge) NextSize() int {
	return b.cfg.NextSize
}

// HoldSize returns the side of the hold slot.
func (b *Bridge) HoldSize() int {
	return b.cfg.HoldSize
}

// NumDeletedLines returns the cleared row count truncated to a byte.
func (b *Bridge) NumDeletedLines() uint8 {
	return uint8(b.engine.NumDeletedLines())
}

// GameOver reports whether the engine has ended the game. Engines that do
// not track game over always report false.
func (b *Bridge) GameOver() bool {
	if r, ok := b.engine.(gameOverReporter); ok {
		return r.GameOver()
	}
	return false
}

// Field returns the field occupancy buffer, height*width bytes.
func (b *Bridge) Field() []uint8 {
	return b.buf.field
}

// FieldColor returns the field color buffer, height*width*4 floats.
func (b *Bridge) FieldColor() []float32 {
	return b.buf.fieldColor
}

// Nexts returns the next-queue occupancy buffer.
func (b *Bridge) Nexts() []uint8 {
	return b.buf.nexts
}

// NextsColor returns the next-queue color buffer.
func (b *Bridge) NextsColor() []float32 {
	return b.buf.nextsColor
}

// Hold returns the hold occupancy buffer.
func (b *Bridge) Hold() []uint8 {
	return b.buf.hold
}

// HoldColor returns the hold color buffer.
func (b *Bridge) HoldColor() []float32 {
	return b.buf.holdColor
}
