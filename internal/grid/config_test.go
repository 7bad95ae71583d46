package grid

import (
	"errors"
	"testing"
)

func TestNewConfigValidation(t *testing.T) {
	tests := []struct {
		name    string
		rows    int
		cols    int
		size    Vec2
		gap     float64
		wantErr error
	}{
		{"valid", 7, 7, V(100, 100), 3, nil},
		{"zero gap", 1, 1, V(1, 1), 0, nil},
		{"zero rows", 0, 7, V(100, 100), 3, ErrInvalidDimensions},
		{"negative cols", 7, -1, V(100, 100), 3, ErrInvalidDimensions},
		{"zero width", 7, 7, V(0, 100), 3, ErrInvalidBlockSize},
		{"negative height", 7, 7, V(100, -5), 3, ErrInvalidBlockSize},
		{"negative gap", 7, 7, V(100, 100), -1, ErrInvalidGap},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := NewConfig(tc.rows, tc.cols, tc.size, tc.gap)
			if tc.wantErr == nil {
				if err != nil {
					t.Fatalf("NewConfig() unexpected error: %v", err)
				}
				if cfg.Rows != tc.rows || cfg.Cols != tc.cols {
					t.Errorf("NewConfig() = %+v", cfg)
				}
				return
			}
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("NewConfig() error = %v, want %v", err, tc.wantErr)
			}
			if cfg != (Config{}) {
				t.Errorf("rejected config should be zero, got %+v", cfg)
			}
		})
	}
}

func TestDefaultConfigValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.Cells() != 49 {
		t.Errorf("Cells() = %d, expected 49", cfg.Cells())
	}
}

func TestClampPosition(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		in, want Position
	}{
		{P(3, 3), P(3, 3)},
		{P(-1, -1), P(0, 0)},
		{P(7, 7), P(6, 6)},
		{P(-4, 9), P(0, 6)},
	}

	for _, tc := range tests {
		if got := Clamp(tc.in, cfg); got != tc.want {
			t.Errorf("Clamp(%v) = %v, want %v", tc.in, got, tc.want)
		}
		if !Clamp(tc.in, cfg).In(cfg) {
			t.Errorf("Clamp(%v) left the grid", tc.in)
		}
	}
}

func TestAllPositions(t *testing.T) {
	cfg := Config{Rows: 2, Cols: 3, BlockSize: V(1, 1)}
	all := All(cfg)

	if len(all) != 6 {
		t.Fatalf("All() returned %d positions, expected 6", len(all))
	}
	seen := make(map[Position]bool)
	for _, p := range all {
		if seen[p] {
			t.Errorf("duplicate position %v", p)
		}
		if !p.In(cfg) {
			t.Errorf("position %v out of grid", p)
		}
		seen[p] = true
	}
	if all[0] != P(0, 0) || all[5] != P(1, 2) {
		t.Errorf("All() not in row-major order: %v", all)
	}
}
