package config

import (
	_ "embed"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultTetrisConfig returns the hardcoded tetris configuration.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Board: BoardConfig{
			Height: 20,
			Width:  10,
		},
		Preview: PreviewConfig{
			NumNexts: 6,
			NextSize: 4,
			HoldSize: 4,
		},
		Rules: RulesConfig{
			Ghost:   true,
			Garbage: false,
		},
		Timing: TimingConfig{
			FallIntervalMs:    1000,
			LockDelayMs:       500,
			GarbageIntervalMs: 15000,
			MinFallIntervalMs: 80,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "lines",
				MaxAt: 150,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 9.0,
			},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultTetrisYAML
}
