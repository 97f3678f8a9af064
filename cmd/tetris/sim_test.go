package main

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
)

func runSeeded(t *testing.T, seed int64) (string, uint8) {
	t.Helper()
	b, err := tetris.NewBridge(config.DefaultTetrisConfig(), false, seed)
	require.NoError(t, err)
	simulate(b, rand.New(rand.NewSource(seed)), 400, 50, nil)
	return b.String(), b.NumDeletedLines()
}

func TestSimulateIsDeterministic(t *testing.T) {
	fieldA, linesA := runSeeded(t, 7)
	fieldB, linesB := runSeeded(t, 7)
	assert.Equal(t, fieldA, fieldB)
	assert.Equal(t, linesA, linesB)
}

func TestSimulateStopsAtStepLimit(t *testing.T) {
	b, err := tetris.NewBridge(config.DefaultTetrisConfig(), false, 1)
	require.NoError(t, err)

	drops := 0
	n := simulate(b, rand.New(rand.NewSource(1)), 5, 50, func(int) { drops++ })
	assert.LessOrEqual(t, n, 5)
	assert.LessOrEqual(t, drops, n)
}

func TestIsGarbageMode(t *testing.T) {
	assert.True(t, isGarbageMode("tetris_garbage"))
	assert.False(t, isGarbageMode("tetris"))
}
