package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/mathmono/internal/grid"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg := DefaultMathMonoConfig()
	if err := yaml.Unmarshal(DefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded yaml: %v", err)
	}
	want := DefaultMathMonoConfig()

	if cfg.Grid != want.Grid {
		t.Errorf("grid = %+v, want %+v", cfg.Grid, want.Grid)
	}
	if cfg.Rules != want.Rules {
		t.Errorf("rules = %+v, want %+v", cfg.Rules, want.Rules)
	}
	if cfg.Palette != want.Palette {
		t.Errorf("palette = %+v, want %+v", cfg.Palette, want.Palette)
	}
	if cfg.Difficulty != want.Difficulty {
		t.Errorf("difficulty = %q, want %q", cfg.Difficulty, want.Difficulty)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("embedded config invalid: %v", err)
	}
}

func TestLoadFilePartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	data := []byte("grid:\n  rows: 3\n  cols: 4\nrules:\n  start_health: 2\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Grid.Rows != 3 || cfg.Grid.Cols != 4 {
		t.Errorf("grid = %dx%d, want 3x4", cfg.Grid.Rows, cfg.Grid.Cols)
	}
	if cfg.Grid.Gap != grid.DefaultGap {
		t.Errorf("gap = %v, want default %v", cfg.Grid.Gap, grid.DefaultGap)
	}
	if cfg.Rules.StartHealth != 2 {
		t.Errorf("start_health = %d, want 2", cfg.Rules.StartHealth)
	}
	if cfg.Rules.MaxValue != 100 {
		t.Errorf("max_value = %d, want default 100", cfg.Rules.MaxValue)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom path should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("grid: [not, a, map"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("malformed yaml should fail")
	}

	zero := filepath.Join(dir, "zero.yaml")
	if err := os.WriteFile(zero, []byte("grid:\n  rows: 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := Load(zero)
	if !errors.Is(err, grid.ErrInvalidDimensions) {
		t.Errorf("zero rows: err = %v, want ErrInvalidDimensions", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*MathMonoConfig)
		want   error
	}{
		{"defaults", func(*MathMonoConfig) {}, nil},
		{"min above max", func(c *MathMonoConfig) { c.Rules.MinValue = 50; c.Rules.MaxValue = 10 }, ErrInvalidValueRange},
		{"zero min", func(c *MathMonoConfig) { c.Rules.MinValue = 0 }, ErrInvalidValueRange},
		{"no health", func(c *MathMonoConfig) { c.Rules.StartHealth = 0 }, ErrInvalidHealth},
		{"no damage", func(c *MathMonoConfig) { c.Rules.Damage = 0 }, ErrInvalidHealth},
		{"bad operator", func(c *MathMonoConfig) { c.Question.Operators = []string{"*"} }, ErrInvalidOperator},
		{"negative gap", func(c *MathMonoConfig) { c.Grid.Gap = -1 }, grid.ErrInvalidGap},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultMathMonoConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.want == nil {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestPresets(t *testing.T) {
	tests := []struct {
		in         string
		rows       int
		health     int
		shouldFail bool
	}{
		{"", 7, 5, false},
		{"normal", 7, 5, false},
		{"easy", 5, 8, false},
		{"hard", 9, 3, false},
		{"nightmare", 0, 0, true},
	}

	for _, tt := range tests {
		preset, err := ParsePreset(tt.in)
		if tt.shouldFail {
			if err == nil {
				t.Errorf("ParsePreset(%q) should fail", tt.in)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ParsePreset(%q): %v", tt.in, err)
		}
		cfg := DefaultMathMonoConfig()
		ApplyPreset(&cfg, preset)
		if cfg.Grid.Rows != tt.rows || cfg.Grid.Cols != tt.rows {
			t.Errorf("%q: grid = %dx%d, want %dx%d", tt.in, cfg.Grid.Rows, cfg.Grid.Cols, tt.rows, tt.rows)
		}
		if cfg.Rules.StartHealth != tt.health {
			t.Errorf("%q: health = %d, want %d", tt.in, cfg.Rules.StartHealth, tt.health)
		}
		if err := cfg.Validate(); err != nil {
			t.Errorf("%q: preset config invalid: %v", tt.in, err)
		}
	}
}

func TestMarshalRoundTripsGrid(t *testing.T) {
	data, err := Marshal(DefaultMathMonoConfig())
	if err != nil {
		t.Fatal(err)
	}
	var back MathMonoConfig
	if err := yaml.Unmarshal(data, &back); err != nil {
		t.Fatal(err)
	}
	if back.Grid != grid.DefaultConfig() {
		t.Errorf("grid after round trip = %+v", back.Grid)
	}
}
