// Package tetris adapts the bridge to the registry.Game interface so the
// terminal hosts can run it like any other mode.
package tetris

import (
	"time"

	"github.com/vovakirdan/tui-tetris/internal/bridge"
	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/gamemaster"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

// Mode selects the rule set.
type Mode string

const (
	ModeMarathon Mode = "tetris"
	ModeGarbage  Mode = "tetris_garbage"
)

var (
	configPath       string
	difficultyPreset config.DifficultyPreset
)

// SetConfigPath sets the config file path used by the next Reset.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset used by the next Reset.
// Unknown names clear the preset.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil || preset == "" {
		difficultyPreset = ""
		return
	}
	difficultyPreset = p
}

// LoadConfig resolves the active config file and preset.
func LoadConfig() config.TetrisConfig {
	return loadWithPreset(difficultyPreset)
}

func loadWithPreset(preset config.DifficultyPreset) config.TetrisConfig {
	cfg, err := config.Load(configPath)
	if err != nil {
		cfg = config.DefaultTetrisConfig()
	}
	if preset != "" {
		config.ApplyPreset(&cfg, preset)
	}
	return cfg
}

func (g *Game) loadConfig() config.TetrisConfig {
	if g.preset != nil {
		return loadWithPreset(*g.preset)
	}
	return LoadConfig()
}

func init() {
	registry.Register(string(ModeMarathon), func() registry.Game {
		return New(ModeMarathon)
	})
	registry.Register(string(ModeGarbage), func() registry.Game {
		return New(ModeGarbage)
	})
}

// Game runs one bridge per session.
type Game struct {
	mode    Mode
	preset  *config.DifficultyPreset
	cfg     config.TetrisConfig
	runtime core.RuntimeConfig
	bridge  *bridge.Bridge
	err     error

	tick        uint64
	lines       LineCounter
	paused      bool
	pausedAt    time.Duration
	pausedTotal time.Duration
	lastAt      time.Duration
	tooSmall    bool
}

// New creates a game in the given mode. Nothing is allocated until Reset.
func New(mode Mode) *Game {
	return &Game{mode: mode}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return string(g.mode)
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeGarbage {
		return "Tetris (Garbage)"
	}
	return "Tetris"
}

// Description summarizes the mode for menus.
func (g *Game) Description() string {
	if g.mode == ModeGarbage {
		return "Survive rising garbage rows"
	}
	return "Clear as many lines as you can"
}

// SetDifficulty overrides the package-wide preset for this game only. The
// empty preset keeps the config file values.
func (g *Game) SetDifficulty(preset config.DifficultyPreset) {
	g.preset = &preset
}

// Reset loads configuration and starts a fresh bridge.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.cfg = g.loadConfig()
	g.bridge, g.err = NewBridge(g.cfg, g.mode == ModeGarbage, runtime.Seed)
	if g.err == nil {
		g.bridge.RenderAll()
	}

	g.tick = 0
	g.lines.Reset()
	g.paused = false
	g.pausedAt = 0
	g.pausedTotal = 0
	g.lastAt = 0
	g.checkScreenSize()
}

func (g *Game) checkScreenSize() {
	w, h := layoutSize(g.cfg)
	g.tooSmall = g.runtime.ScreenW < w || g.runtime.ScreenH < h
}

// Step forwards one frame of input to the bridge and refreshes its buffers.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.bridge == nil {
		return core.StepResult{State: g.State()}
	}
	g.tick++
	g.lastAt = in.At

	if g.tooSmall || g.bridge.GameOver() {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.togglePause(in.At)
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.bridge.StepKeys(g.engineTime(in.At).Milliseconds(), keysFor(in))
	g.bridge.RenderAll()
	g.lines.Observe(g.bridge.NumDeletedLines())

	return core.StepResult{State: g.State()}
}

func (g *Game) togglePause(at time.Duration) {
	if g.paused {
		g.pausedTotal += at - g.pausedAt
		g.paused = false
		return
	}
	g.paused = true
	g.pausedAt = at
}

// elapsed is the engine time of the last step, frozen while paused.
func (g *Game) elapsed() time.Duration {
	if g.paused {
		return g.engineTime(g.pausedAt)
	}
	return g.engineTime(g.lastAt)
}

// engineTime excludes time spent paused so gravity does not jump on resume.
func (g *Game) engineTime(at time.Duration) time.Duration {
	t := at - g.pausedTotal
	if t < 0 {
		return 0
	}
	return t
}


func keysFor(in core.InputFrame) gamemaster.KeyPress {
	return gamemaster.KeyPress{
		RightRotate: in.Has(core.ActionRotateRight),
		LeftRotate:  in.Has(core.ActionRotateLeft),
		Hold:        in.Has(core.ActionHold),
		SoftDrop:    in.Has(core.ActionSoftDrop),
		HardDrop:    in.Has(core.ActionHardDrop),
		RightMove:   in.Has(core.ActionMoveRight),
		LeftMove:    in.Has(core.ActionMoveLeft),
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.bridge == nil {
		return core.GameState{GameOver: g.err != nil}
	}
	return core.GameState{
		Lines:    g.lines.Total(),
		Elapsed:  g.elapsed(),
		GameOver: g.bridge.GameOver(),
		Paused:   g.paused || g.tooSmall,
	}
}

// Err reports a configuration that no bridge could be built from.
func (g *Game) Err() error {
	return g.err
}
