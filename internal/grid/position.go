package grid

import (
	"fmt"

	"github.com/vovakirdan/mathmono/internal/core"
)

// Position is a discrete grid cell.
type Position struct {
	Row int
	Col int
}

// P is a convenience constructor for Position.
func P(row, col int) Position {
	return Position{Row: row, Col: col}
}

// String returns a string representation of the position.
func (p Position) String() string {
	return fmt.Sprintf("(r%d,c%d)", p.Row, p.Col)
}

// Add returns the position offset by (dRow, dCol). The result may be out of bounds.
func (p Position) Add(dRow, dCol int) Position {
	return Position{Row: p.Row + dRow, Col: p.Col + dCol}
}

// In reports whether p lies inside the grid described by cfg.
func (p Position) In(cfg Config) bool {
	return p.Row >= 0 && p.Row < cfg.Rows && p.Col >= 0 && p.Col < cfg.Cols
}

// Clamp moves p onto the nearest cell inside the grid.
func Clamp(p Position, cfg Config) Position {
	return Position{
		Row: core.Clamp(p.Row, 0, cfg.Rows-1),
		Col: core.Clamp(p.Col, 0, cfg.Cols-1),
	}
}

// Center returns the position in the middle of the grid.
func Center(cfg Config) Position {
	return Position{Row: cfg.Rows / 2, Col: cfg.Cols / 2}
}

// All returns every position in row-major order starting at (0, 0).
func All(cfg Config) []Position {
	out := make([]Position, 0, cfg.Cells())
	for row := range cfg.Rows {
		for col := range cfg.Cols {
			out = append(out, Position{Row: row, Col: col})
		}
	}
	return out
}
