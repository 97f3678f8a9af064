package core

import "time"

// RuntimeConfig is what a host hands a game on Reset.
type RuntimeConfig struct {
	ScreenW  int // Terminal columns
	ScreenH  int // Terminal rows
	TickRate int // Host ticks per second
	Seed     int64
}

// DefaultConfig returns an 80x24 screen at 60 ticks per second. A zero seed
// asks the host to pick one from the clock.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60}
}

// GameState is the status the host reads after every step.
type GameState struct {
	Lines    int           // Lines deleted since Reset
	Elapsed  time.Duration // Play time, pauses excluded
	GameOver bool
	Paused   bool
}

// StepResult is returned by Game.Step.
type StepResult struct {
	State GameState
}
