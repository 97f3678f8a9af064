package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/registry"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

// GameModel is the Bubble Tea model that runs one game mode.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	ticks      int64
	quitting   bool
	backToMenu bool
	scoreSaved bool
}

// NewGameModel creates a model for the given game. A zero seed is replaced
// with the current time.
func NewGameModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) GameModel {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}

	return GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
	}
}

// Init resets the game and starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}

	// Back only leaves a game that is not running.
	if m.inputFrame.Has(core.ActionBack) && (m.gameState.GameOver || m.gameState.Paused) {
		m.backToMenu = true
	}
	return m, nil
}

// handleResize follows the terminal size. The game restarts only when it is
// not already over, so a final board stays visible.
func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	resized := msg.Width != m.config.ScreenW || msg.Height != m.config.ScreenH
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if resized && !m.gameState.GameOver {
		m.restart(m.config.Seed)
	}
	return m, nil
}

func (m *GameModel) restart(seed int64) {
	m.config.Seed = seed
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	m.ticks = 0
	m.scoreSaved = false
	m.inputFrame.Clear()
}

// handleTick processes simulation ticks.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if m.backToMenu {
		return m, nil
	}

	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.restart(time.Now().UnixNano())
		return m, tickCmd(m.config.TickRate)
	}

	m.inputFrame.At = time.Duration(m.ticks) * tickInterval(m.config.TickRate)
	m.ticks++

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if m.gameState.GameOver && !m.scoreSaved {
		m.saveScore()
		m.scoreSaved = true
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// saveScore stores the run once per game over. Failures are logged and play
// continues.
func (m *GameModel) saveScore() {
	if m.store == nil || m.gameState.Lines <= 0 {
		return
	}
	_, err := m.store.SaveRun(storage.Run{
		GameID:   m.game.ID(),
		Lines:    m.gameState.Lines,
		Seed:     m.config.Seed,
		Duration: m.gameState.Elapsed,
	})
	if err != nil {
		log.Warn("could not save score", "game", m.game.ID(), "error", err)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".tetris", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.Warn("could not create screenshot directory", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		log.Warn("could not save screenshot", "error", err)
	}
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// State returns the last observed game state.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// Run starts a Bubble Tea program for one game. It returns when the player
// quits or goes back. wantsMenu reports the latter.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) (wantsMenu bool, err error) {
	model := NewGameModel(game, store, cfg)

	p := tea.NewProgram(wrapBack{model}, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return false, err
	}
	if w, ok := final.(wrapBack); ok {
		return w.BackToMenu(), nil
	}
	return false, nil
}

// wrapBack ends a standalone program when the player backs out of a game.
type wrapBack struct {
	GameModel
}

func (w wrapBack) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := w.GameModel.Update(msg)
	if gm, ok := next.(GameModel); ok {
		w.GameModel = gm
	}
	if w.BackToMenu() {
		return w, tea.Quit
	}
	return w, cmd
}
