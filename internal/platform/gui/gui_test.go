package gui

import (
	"io"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tetris/internal/bridge"
	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

func TestLayoutPlacesPanelsLeftToRight(t *testing.T) {
	l := newLayout(bridge.Config{Height: 20, Width: 10, NumNexts: 6, NextSize: 4, HoldSize: 4})

	assert.Less(t, l.Hold.X+l.Hold.width(), l.Field.X)
	assert.Less(t, l.Field.X+l.Field.width(), l.Nexts.X)
	assert.Equal(t, l.Field.Y, l.Nexts.Y)
	assert.Equal(t, l.Nexts.X+l.Nexts.width()+marginPx, l.Width)

	// Six 4x4 previews are taller than a 20 row field.
	assert.Equal(t, 24, l.Nexts.Rows)
	assert.Equal(t, marginPx+hudPx+24*cellPx+marginPx, l.Height)
}

func TestCellOrigin(t *testing.T) {
	p := panel{X: 10, Y: 20, Rows: 2, Cols: 3}
	x, y := p.cellOrigin(1, 2)
	assert.Equal(t, float32(10+2*cellPx), x)
	assert.Equal(t, float32(20+cellPx), y)
}

func TestCellColor(t *testing.T) {
	buf := []float32{0, 0, 0, 0, 1, 0.5, 0, 0.3}
	c := cellColor(buf, 1)
	assert.Equal(t, uint8(255), c.R)
	assert.Equal(t, uint8(128), c.G)
	assert.Equal(t, uint8(0), c.B)
	assert.Equal(t, uint8(77), c.A)
}

func TestRepeating(t *testing.T) {
	tests := []struct {
		ticks int
		want  bool
	}{
		{0, false},
		{1, true},
		{2, false},
		{repeatDelay, false},
		{repeatDelay + repeatInterval, true},
		{repeatDelay + repeatInterval + 1, false},
		{repeatDelay + 2*repeatInterval, true},
	}
	for _, tt := range tests {
		assert.Equalf(t, tt.want, repeating(tt.ticks), "ticks=%d", tt.ticks)
	}
}

func TestReadKeys(t *testing.T) {
	held := map[ebiten.Key]int{
		ebiten.KeyArrowUp:   1,
		ebiten.KeyZ:         5,
		ebiten.KeyArrowLeft: 1,
		ebiten.KeySpace:     1,
	}
	keys := readKeys(func(k ebiten.Key) int { return held[k] })

	assert.True(t, keys.RightRotate)
	assert.False(t, keys.LeftRotate, "rotation fires only on the first tick")
	assert.True(t, keys.LeftMove)
	assert.False(t, keys.RightMove)
	assert.True(t, keys.HardDrop)
	assert.False(t, keys.Hold)
	assert.False(t, keys.SoftDrop)
}

func TestSaveRunKeepsWideLineCount(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	w, err := NewWindow(Options{
		Game:   config.DefaultTetrisConfig(),
		Seed:   7,
		TPS:    60,
		Store:  store,
		Logger: log.New(io.Discard),
	})
	require.NoError(t, err)

	var raw uint8
	for range 75 {
		raw += 4
		w.lines.Observe(raw)
	}
	w.ticks = 600
	w.saveRun()

	runs, err := store.TopScores(string(tetris.ModeMarathon), 10)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, 300, runs[0].Lines)
	assert.Equal(t, int64(7), runs[0].Seed)

	require.NoError(t, w.restart())
	assert.Zero(t, w.lines.Total())
}
