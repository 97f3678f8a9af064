// Package config provides YAML-based game configuration loading and
// difficulty management for the tetris modes.
package config

import (
	"errors"
	"fmt"
	"time"
)

// MinPieceSlot is the smallest next/hold slot that fits every tetromino.
const MinPieceSlot = 4

// ErrInvalid is returned by Validate for configurations no bridge can be
// built from.
var ErrInvalid = errors.New("config: invalid")

// TetrisConfig contains all configuration for a tetris session.
type TetrisConfig struct {
	Board      BoardConfig      `yaml:"board"`
	Preview    PreviewConfig    `yaml:"preview"`
	Rules      RulesConfig      `yaml:"rules"`
	Timing     TimingConfig     `yaml:"timing"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// BoardConfig defines the playfield dimensions in cells.
type BoardConfig struct {
	Height int `yaml:"height"`
	Width  int `yaml:"width"`
}

// PreviewConfig defines the next queue and hold slot geometry.
type PreviewConfig struct {
	NumNexts int `yaml:"num_nexts"`
	NextSize int `yaml:"next_size"`
	HoldSize int `yaml:"hold_size"`
}

// RulesConfig toggles optional rules.
type RulesConfig struct {
	Ghost   bool `yaml:"ghost"`
	Garbage bool `yaml:"garbage"`
}

// TimingConfig holds engine timings in milliseconds.
type TimingConfig struct {
	FallIntervalMs    int `yaml:"fall_interval_ms"`
	LockDelayMs       int `yaml:"lock_delay_ms"`
	GarbageIntervalMs int `yaml:"garbage_interval_ms"`
	MinFallIntervalMs int `yaml:"min_fall_interval_ms"`
}

// FallInterval returns the base gravity period.
func (t TimingConfig) FallInterval() time.Duration {
	return time.Duration(t.FallIntervalMs) * time.Millisecond
}

// MinFallInterval returns the fastest gravity period difficulty may reach.
func (t TimingConfig) MinFallInterval() time.Duration {
	return time.Duration(t.MinFallIntervalMs) * time.Millisecond
}

// LockDelay returns the grounded time before a piece locks.
func (t TimingConfig) LockDelay() time.Duration {
	return time.Duration(t.LockDelayMs) * time.Millisecond
}

// GarbageInterval returns the period between incoming garbage rows.
func (t TimingConfig) GarbageInterval() time.Duration {
	return time.Duration(t.GarbageIntervalMs) * time.Millisecond
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "lines" or "none"
	MaxAt int    `yaml:"max_at"` // Deleted lines at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Gravity speed-up factor at max difficulty
}

// Validate rejects configurations with degenerate dimensions.
func (c TetrisConfig) Validate() error {
	switch {
	case c.Board.Height <= 0 || c.Board.Width <= 0:
		return fmt.Errorf("%w: board must be at least 1x1, got %dx%d", ErrInvalid, c.Board.Height, c.Board.Width)
	case c.Board.Width < MinPieceSlot || c.Board.Height < MinPieceSlot:
		return fmt.Errorf("%w: board %dx%d cannot fit a piece", ErrInvalid, c.Board.Height, c.Board.Width)
	case c.Preview.NumNexts <= 0:
		return fmt.Errorf("%w: num_nexts must be positive", ErrInvalid)
	case c.Preview.NextSize < MinPieceSlot || c.Preview.HoldSize < MinPieceSlot:
		return fmt.Errorf("%w: next_size and hold_size must be at least %d", ErrInvalid, MinPieceSlot)
	case c.Timing.FallIntervalMs <= 0 || c.Timing.LockDelayMs < 0:
		return fmt.Errorf("%w: fall_interval_ms must be positive and lock_delay_ms not negative", ErrInvalid)
	case c.Rules.Garbage && c.Timing.GarbageIntervalMs <= 0:
		return fmt.Errorf("%w: garbage_interval_ms must be positive when garbage is on", ErrInvalid)
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a flag value into a preset. The empty string maps to
// normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (easy, normal, hard, fixed)", s)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
