package tetris

import "time"

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StatePaused      GameStateType = "paused"
	StateGameOver    GameStateType = "game_over"
	StatePausedSmall GameStateType = "paused_small_window"
	StateInvalid     GameStateType = "invalid_config"
)

// Snapshot captures the observable game state for determinism testing.
type Snapshot struct {
	Tick    uint64
	Mode    string
	Lines   int
	Elapsed time.Duration // Engine time, pauses excluded
	Field   string        // Occupancy dump of the field buffer
	Nexts   string        // Occupancy of the next queue, one byte per cell
	Hold    string        // Occupancy of the hold slot, one byte per cell
	State   GameStateType
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Tick:    g.tick,
		Mode:    string(g.mode),
		Lines:   g.lines.Total(),
		Elapsed: g.elapsed(),
		State:   StatePlaying,
	}
	if g.bridge == nil {
		s.State = StateInvalid
		return s
	}

	s.Field = g.bridge.String()
	s.Nexts = occupancyString(g.bridge.Nexts())
	s.Hold = occupancyString(g.bridge.Hold())

	switch {
	case g.tooSmall:
		s.State = StatePausedSmall
	case g.bridge.GameOver():
		s.State = StateGameOver
	case g.paused:
		s.State = StatePaused
	}
	return s
}

func occupancyString(cells []uint8) string {
	b := make([]byte, len(cells))
	for i, v := range cells {
		b[i] = '0' + v
	}
	return string(b)
}
