package tetris

import (
	"math/rand"

	"github.com/vovakirdan/tui-tetris/internal/bridge"
	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/gamemaster"
)

// garbageSalt separates the garbage hole stream from the piece stream so one
// seed drives both without correlating them.
const garbageSalt = 0x5DEECE66D

// BridgeConfig converts loaded settings into bridge construction parameters.
func BridgeConfig(cfg config.TetrisConfig, garbage bool) bridge.Config {
	return bridge.Config{
		Height:   cfg.Board.Height,
		Width:    cfg.Board.Width,
		NumNexts: cfg.Preview.NumNexts,
		NextSize: cfg.Preview.NextSize,
		HoldSize: cfg.Preview.HoldSize,
		Ghost:    cfg.Rules.Ghost,
		Garbage:  garbage || cfg.Rules.Garbage,
	}
}

// EngineOptions maps timing and difficulty settings onto engine options.
func EngineOptions(cfg config.TetrisConfig) []gamemaster.Option {
	opts := []gamemaster.Option{
		gamemaster.WithFallInterval(cfg.Timing.FallInterval()),
		gamemaster.WithLockDelay(cfg.Timing.LockDelay()),
		gamemaster.WithGarbageInterval(cfg.Timing.GarbageInterval()),
		gamemaster.WithQueueDepth(cfg.Preview.NumNexts),
	}
	dm := config.NewDifficultyManager(cfg.Difficulty)
	if dm.IsEnabled() {
		floor := cfg.Timing.MinFallInterval()
		opts = append(opts, gamemaster.WithFallCurve(dm.Curve(cfg.Timing.FallInterval(), floor)))
	}
	return opts
}

// NewBridge builds a seeded bridge for one session. Every host goes through
// here so a seed reproduces the same game everywhere.
func NewBridge(cfg config.TetrisConfig, garbage bool, seed int64) (*bridge.Bridge, error) {
	pieces := rand.New(rand.NewSource(seed))
	holes := rand.New(rand.NewSource(seed ^ garbageSalt))
	return bridge.New(BridgeConfig(cfg, garbage), pieces.Uint64, holes.Uint64, EngineOptions(cfg)...)
}
