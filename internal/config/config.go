// Package config provides YAML-based game configuration loading and
// difficulty presets.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/mathmono/internal/grid"
)

// MathMonoConfig contains all configuration for the Math Mono game.
type MathMonoConfig struct {
	Grid     grid.Config    `yaml:"grid"`
	Rules    RulesConfig    `yaml:"rules"`
	Palette  PaletteConfig  `yaml:"palette"`
	Question QuestionConfig `yaml:"question"`

	// Difficulty names the preset applied by the CLI when no flag overrides it.
	Difficulty DifficultyPreset `yaml:"difficulty"`
}

// RulesConfig defines block values, scoring and health.
type RulesConfig struct {
	MinValue      int `yaml:"min_value"`      // Smallest block value (inclusive)
	MaxValue      int `yaml:"max_value"`      // Largest block value (inclusive)
	StartHealth   int `yaml:"start_health"`   // Health at session start
	Damage        int `yaml:"damage"`         // Health lost for a wrong answer
	CorrectPoints int `yaml:"correct_points"` // Score for eating the answer
}

// PaletteConfig controls block colors.
type PaletteConfig struct {
	Animate bool    `yaml:"animate"` // Cycle block colors over time
	Speed   float64 `yaml:"speed"`   // Animation speed multiplier
	Blue    float64 `yaml:"blue"`    // Fixed blue component of animated colors
}

// QuestionConfig controls the arithmetic question panel.
type QuestionConfig struct {
	Operators    []string `yaml:"operators"`     // Subset of "+", "-"
	UsableMargin float64  `yaml:"usable_margin"` // Padding fraction of the side margin
}

// Validation errors.
var (
	ErrInvalidValueRange = errors.New("config: value range must satisfy 1 <= min_value <= max_value")
	ErrInvalidHealth     = errors.New("config: start_health and damage must be positive")
	ErrInvalidOperator   = errors.New("config: unsupported question operator")
)

// Validate checks the config for values the game cannot run with.
func (c MathMonoConfig) Validate() error {
	if err := c.Grid.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.Rules.MinValue < 1 || c.Rules.MaxValue < c.Rules.MinValue {
		return fmt.Errorf("%w: got [%d, %d]", ErrInvalidValueRange, c.Rules.MinValue, c.Rules.MaxValue)
	}
	if c.Rules.StartHealth <= 0 || c.Rules.Damage <= 0 {
		return ErrInvalidHealth
	}
	if _, err := ParsePreset(string(c.Difficulty)); err != nil {
		return err
	}
	for _, op := range c.Question.Operators {
		if op != "+" && op != "-" {
			return fmt.Errorf("%w: %q", ErrInvalidOperator, op)
		}
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a flag value into a preset. Empty means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyNormal:
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyHard:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// ApplyPreset adjusts grid size and health for a difficulty preset.
// Normal keeps the loaded values.
func ApplyPreset(cfg *MathMonoConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Grid.Rows, cfg.Grid.Cols = 5, 5
		cfg.Rules.StartHealth = 8
		cfg.Question.Operators = []string{"+"}
	case DifficultyHard:
		cfg.Grid.Rows, cfg.Grid.Cols = 9, 9
		cfg.Rules.StartHealth = 3
		cfg.Rules.Damage = 1
	}
}
