package config

import (
	_ "embed"

	"github.com/vovakirdan/mathmono/internal/grid"
)

//go:embed defaults/mathmono.yaml
var defaultMathMonoYAML []byte

// DefaultMathMonoConfig returns the built-in configuration. It matches the
// embedded YAML and is used when that fails to parse.
func DefaultMathMonoConfig() MathMonoConfig {
	return MathMonoConfig{
		Grid: grid.DefaultConfig(),
		Rules: RulesConfig{
			MinValue:      1,
			MaxValue:      100,
			StartHealth:   5,
			Damage:        1,
			CorrectPoints: 10,
		},
		Palette: PaletteConfig{
			Animate: true,
			Speed:   1.0,
			Blue:    0.8,
		},
		Question: QuestionConfig{
			Operators:    []string{"+", "-"},
			UsableMargin: 0.01,
		},
		Difficulty: DifficultyNormal,
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultMathMonoYAML
}
