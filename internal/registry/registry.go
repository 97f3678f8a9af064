// Package registry lets game modes register themselves from init so hosts
// can list and create them by ID.
package registry

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Game is one playable mode as seen by a terminal host. Implementations
// never import Bubble Tea; input mapping, timing and display stay in the
// host.
type Game interface {
	// ID is the stable identifier used on the command line and as the
	// score table key.
	ID() string
	Title() string

	// Reset starts a fresh game. It is called before the first Step and on
	// every restart.
	Reset(cfg core.RuntimeConfig)
	Step(in core.InputFrame) core.StepResult

	// Render draws into a screen that the host has already cleared.
	Render(dst *core.Screen)
	State() core.GameState
}

// Describer is implemented by modes that carry a one-line summary.
type Describer interface {
	Description() string
}

// Tunable is implemented by modes that accept a difficulty preset before
// Reset.
type Tunable interface {
	SetDifficulty(preset config.DifficultyPreset)
}

// GameInfo is the listing entry for a registered mode.
type GameInfo struct {
	ID          string
	Title       string
	Description string
}

// Factory creates a new, unreset game.
type Factory func() Game

type entry struct {
	info    GameInfo
	factory Factory
}

var (
	mu      sync.RWMutex
	entries []entry
)

func lookup(id string) (entry, bool) {
	i := slices.IndexFunc(entries, func(e entry) bool { return e.info.ID == id })
	if i < 0 {
		return entry{}, false
	}
	return entries[i], true
}

// Register adds a mode. It panics on a duplicate ID.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := lookup(id); exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	g := f()
	info := GameInfo{ID: id, Title: g.Title()}
	if d, ok := g.(Describer); ok {
		info.Description = d.Description()
	}
	entries = append(entries, entry{info: info, factory: f})
}

// List returns every registered mode sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, len(entries))
	for i, e := range entries {
		result[i] = e.info
	}
	slices.SortFunc(result, func(a, b GameInfo) int {
		return strings.Compare(a.ID, b.ID)
	})
	return result
}

// Create instantiates a mode by ID.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := lookup(id)
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return e.factory(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := lookup(id)
	return ok
}
