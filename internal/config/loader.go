package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the config file name looked up in the search directories.
const FileName = "mathmono.yaml"

// Load loads the Math Mono configuration and validates it.
// Search order: customPath -> ~/.mathmono/configs/mathmono.yaml ->
// ./configs/mathmono.yaml -> embedded default.
// A custom path that cannot be read or parsed is an error; the other
// locations are skipped silently.
func Load(customPath string) (MathMonoConfig, error) {
	cfg, err := load(customPath)
	if err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func load(customPath string) (MathMonoConfig, error) {
	if customPath != "" {
		return LoadFile(customPath)
	}

	if userCfgPath := userConfigPath(FileName); userCfgPath != "" {
		if cfg, err := LoadFile(userCfgPath); err == nil {
			return cfg, nil
		}
	}

	if cfg, err := LoadFile(filepath.Join("configs", FileName)); err == nil {
		return cfg, nil
	}

	cfg := DefaultMathMonoConfig()
	if err := yaml.Unmarshal(defaultMathMonoYAML, &cfg); err != nil {
		return DefaultMathMonoConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// LoadFile reads a single YAML file. Fields missing from the file keep their
// default values.
func LoadFile(path string) (MathMonoConfig, error) {
	cfg := DefaultMathMonoConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Marshal renders a config as YAML.
func Marshal(cfg MathMonoConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	return data, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".mathmono", "configs", filename)
}
