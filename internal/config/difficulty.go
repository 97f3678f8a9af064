package config

import (
	"math"
	"time"
)

// DifficultyManager calculates gravity from the deleted line count.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// SetInitialLevel overrides the initial difficulty level (0.0 to 1.0).
func (d *DifficultyManager) SetInitialLevel(level float64) {
	d.initialLevel = clampF(level, 0.0, 1.0)
}

// SetEnabled enables or disables difficulty progression.
func (d *DifficultyManager) SetEnabled(enabled bool) {
	d.cfg.Enabled = enabled
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty level (0.0 to 1.0).
func (d *DifficultyManager) Level(lines int) float64 {
	if !d.IsEnabled() || d.cfg.Progression.Type != "lines" {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1
	}
	progress := clampF(float64(lines)/maxAt, 0.0, 1.0)

	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// FallInterval returns the gravity period for the given line count. The
// result never drops below floor.
func (d *DifficultyManager) FallInterval(base, floor time.Duration, lines int) time.Duration {
	speed := 1.0 + d.Level(lines)*d.cfg.Scaling.SpeedMultiplier
	if speed <= 0 {
		speed = 1
	}
	result := time.Duration(float64(base) / speed)
	if result < floor {
		result = floor
	}
	return result
}

// Curve binds base and floor into a function of the line count.
func (d *DifficultyManager) Curve(base, floor time.Duration) func(lines int) time.Duration {
	return func(lines int) time.Duration {
		return d.FallInterval(base, floor, lines)
	}
}

func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
