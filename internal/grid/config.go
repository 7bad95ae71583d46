// Package grid holds the layout math for a centered grid of equally sized
// blocks: configuration, discrete positions and their world coordinates.
//
// World coordinates have their origin at the grid center with y growing
// upward, so row 0 is the bottom row and col 0 the left column.
package grid

import (
	"errors"
	"fmt"
)

// Default layout parameters.
const (
	DefaultRows = 7
	DefaultCols = 7
	DefaultGap  = 3.0
)

// DefaultBlockSize is the width and height of one block in world units.
var DefaultBlockSize = Vec2{X: 100, Y: 100}

// Configuration errors.
var (
	ErrInvalidDimensions = errors.New("grid: rows and cols must be positive")
	ErrInvalidBlockSize  = errors.New("grid: block size must be positive")
	ErrInvalidGap        = errors.New("grid: gap must not be negative")
)

// Config describes the grid layout. A session copies it at start and never
// changes it afterwards.
type Config struct {
	Rows      int     `yaml:"rows"`
	Cols      int     `yaml:"cols"`
	BlockSize Vec2    `yaml:"block_size"`
	Gap       float64 `yaml:"gap"`
}

// DefaultConfig returns the 7x7 layout with 100x100 blocks and a gap of 3.
func DefaultConfig() Config {
	return Config{
		Rows:      DefaultRows,
		Cols:      DefaultCols,
		BlockSize: DefaultBlockSize,
		Gap:       DefaultGap,
	}
}

// NewConfig builds a validated Config.
func NewConfig(rows, cols int, blockSize Vec2, gap float64) (Config, error) {
	cfg := Config{Rows: rows, Cols: cols, BlockSize: blockSize, Gap: gap}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects degenerate layouts before they reach the layout math.
func (c Config) Validate() error {
	if c.Rows <= 0 || c.Cols <= 0 {
		return fmt.Errorf("%w: got %dx%d", ErrInvalidDimensions, c.Rows, c.Cols)
	}
	if c.BlockSize.X <= 0 || c.BlockSize.Y <= 0 {
		return fmt.Errorf("%w: got %v", ErrInvalidBlockSize, c.BlockSize)
	}
	if c.Gap < 0 {
		return fmt.Errorf("%w: got %g", ErrInvalidGap, c.Gap)
	}
	return nil
}

// Cells returns the number of cells in the grid.
func (c Config) Cells() int {
	return c.Rows * c.Cols
}

// Stride is the distance between the centers of adjacent blocks.
func (c Config) Stride() Vec2 {
	return c.BlockSize.Add(Vec2{X: c.Gap, Y: c.Gap})
}
