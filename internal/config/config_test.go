package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) error: %v", err)
	}
	if cfg != DefaultTetrisConfig() {
		t.Errorf("embedded yaml = %+v, expected %+v", cfg, DefaultTetrisConfig())
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tetris.yaml")
	data := []byte("board:\n  height: 24\n  width: 12\nrules:\n  garbage: true\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Board.Height != 24 || cfg.Board.Width != 12 {
		t.Errorf("board = %+v, expected 24x12", cfg.Board)
	}
	if !cfg.Rules.Garbage {
		t.Error("garbage should be enabled from file")
	}
	// Unset keys keep their defaults.
	if cfg.Preview.NextSize != 4 || !cfg.Rules.Ghost {
		t.Errorf("defaults not preserved: %+v %+v", cfg.Preview, cfg.Rules)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load should fail for a missing custom file")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("board:\n  height: 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := Load(bad)
	if !errors.Is(err, ErrInvalid) {
		t.Errorf("Load(zero height) error = %v, expected ErrInvalid", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*TetrisConfig)
		valid  bool
	}{
		{"default", func(*TetrisConfig) {}, true},
		{"zero height", func(c *TetrisConfig) { c.Board.Height = 0 }, false},
		{"zero width", func(c *TetrisConfig) { c.Board.Width = 0 }, false},
		{"narrow board", func(c *TetrisConfig) { c.Board.Width = 3 }, false},
		{"short board", func(c *TetrisConfig) { c.Board.Height = 3 }, false},
		{"negative nexts", func(c *TetrisConfig) { c.Preview.NumNexts = -1 }, false},
		{"no nexts", func(c *TetrisConfig) { c.Preview.NumNexts = 0 }, false},
		{"one next", func(c *TetrisConfig) { c.Preview.NumNexts = 1 }, true},
		{"small next slot", func(c *TetrisConfig) { c.Preview.NextSize = 3 }, false},
		{"small hold slot", func(c *TetrisConfig) { c.Preview.HoldSize = 2 }, false},
		{"zero fall", func(c *TetrisConfig) { c.Timing.FallIntervalMs = 0 }, false},
		{"garbage without interval", func(c *TetrisConfig) {
			c.Rules.Garbage = true
			c.Timing.GarbageIntervalMs = 0
		}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultTetrisConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.valid && err != nil {
				t.Errorf("Validate() = %v, expected nil", err)
			}
			if !tc.valid && !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() = %v, expected ErrInvalid", err)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	for _, s := range []string{"easy", "normal", "hard", "fixed"} {
		p, err := ParsePreset(s)
		if err != nil || string(p) != s {
			t.Errorf("ParsePreset(%q) = %q, %v", s, p, err)
		}
	}
	if p, _ := ParsePreset(""); p != DifficultyNormal {
		t.Errorf("ParsePreset(\"\") = %q, expected normal", p)
	}
	if _, err := ParsePreset("insane"); err == nil {
		t.Error("ParsePreset should reject unknown names")
	}
}

func TestApplyPreset(t *testing.T) {
	cfg := DefaultTetrisConfig()
	ApplyPreset(&cfg, DifficultyFixed)
	if cfg.Difficulty.Enabled {
		t.Error("fixed preset should disable progression")
	}

	cfg = DefaultTetrisConfig()
	ApplyPreset(&cfg, DifficultyHard)
	if !cfg.Difficulty.Enabled || cfg.Difficulty.InitialLevel != 0.7 {
		t.Errorf("hard preset difficulty = %+v", cfg.Difficulty)
	}
	if cfg.Timing.LockDelayMs != 350 {
		t.Errorf("hard preset lock delay = %d, expected 350", cfg.Timing.LockDelayMs)
	}
}

func TestDifficultyFallInterval(t *testing.T) {
	base := time.Second
	floor := 80 * time.Millisecond

	d := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "lines", MaxAt: 100},
		Scaling:     ScalingConfig{SpeedMultiplier: 4},
	})

	tests := []struct {
		lines    int
		expected time.Duration
	}{
		{0, time.Second},
		{25, 500 * time.Millisecond},
		{100, 200 * time.Millisecond},
		{1000, 200 * time.Millisecond},
	}
	for _, tc := range tests {
		if got := d.FallInterval(base, floor, tc.lines); got != tc.expected {
			t.Errorf("FallInterval(lines=%d) = %v, expected %v", tc.lines, got, tc.expected)
		}
	}

	d.SetEnabled(false)
	if got := d.Curve(base, floor)(100); got != base {
		t.Errorf("disabled curve = %v, expected base %v", got, base)
	}

	fast := NewDifficultyManager(DifficultyConfig{
		Enabled:      true,
		InitialLevel: 1,
		Progression:  ProgressionConfig{Type: "lines", MaxAt: 10},
		Scaling:      ScalingConfig{SpeedMultiplier: 100},
	})
	if got := fast.FallInterval(base, floor, 0); got != floor {
		t.Errorf("FallInterval should clamp at floor, got %v", got)
	}
}
