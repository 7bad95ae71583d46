// Package settings persists per-user preferences across runs using gdata
// for the platform data directory.
package settings

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// AppName names the gdata storage directory.
const AppName = "mathmono"

const (
	prefsObject   = "preferences"
	prefsProperty = "user"
)

// Preferences are remembered between runs.
type Preferences struct {
	Difficulty string `yaml:"difficulty"` // Preset used when no flag is given
	LastSeed   int64  `yaml:"last_seed"`  // Seed of the last played board
	BestScore  int    `yaml:"best_score"` // Best score on this machine
}

// Manager loads and saves Preferences. A nil gdata manager keeps
// preferences in memory only.
type Manager struct {
	data   *gdata.Manager
	prefs  Preferences
	logger *log.Logger
}

// Open opens the gdata store for AppName. If the store cannot be opened the
// returned Manager works in memory and the error is returned alongside it.
func Open(logger *log.Logger) (*Manager, error) {
	data, err := gdata.Open(gdata.Config{AppName: AppName})
	if err != nil {
		m, _ := NewManager(nil, logger)
		return m, fmt.Errorf("settings: cannot open data store: %w", err)
	}
	return NewManager(data, logger)
}

// NewManager creates a manager and loads saved preferences.
func NewManager(data *gdata.Manager, logger *log.Logger) (*Manager, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	m := &Manager{data: data, logger: logger}
	if err := m.Load(); err != nil {
		m.logger.Warn("failed to load preferences, using defaults", "err", err)
		return m, err
	}
	return m, nil
}

// Load reads preferences from the store. Missing data yields defaults.
func (m *Manager) Load() error {
	m.prefs = Preferences{}
	if m.data == nil || !m.data.ObjectPropExists(prefsObject, prefsProperty) {
		return nil
	}

	raw, err := m.data.LoadObjectProp(prefsObject, prefsProperty)
	if err != nil {
		return fmt.Errorf("settings: cannot load preferences: %w", err)
	}

	var p Preferences
	if err := yaml.Unmarshal(raw, &p); err != nil {
		return fmt.Errorf("settings: cannot parse preferences: %w", err)
	}
	m.prefs = p
	m.logger.Debug("preferences loaded", "difficulty", p.Difficulty, "last_seed", p.LastSeed)
	return nil
}

// Save writes preferences to the store. Without a store it is a no-op.
func (m *Manager) Save() error {
	if m.data == nil {
		return nil
	}

	raw, err := yaml.Marshal(m.prefs)
	if err != nil {
		return fmt.Errorf("settings: cannot marshal preferences: %w", err)
	}
	if err := m.data.SaveObjectProp(prefsObject, prefsProperty, raw); err != nil {
		return fmt.Errorf("settings: cannot save preferences: %w", err)
	}
	return nil
}

// Preferences returns a copy of the current preferences.
func (m *Manager) Preferences() Preferences {
	return m.prefs
}

// SetDifficulty remembers the preset name.
func (m *Manager) SetDifficulty(preset string) {
	m.prefs.Difficulty = preset
}

// RecordRun remembers the seed of a finished board and raises the best score.
// It reports whether score is a new best.
func (m *Manager) RecordRun(seed int64, score int) bool {
	m.prefs.LastSeed = seed
	if score > m.prefs.BestScore {
		m.prefs.BestScore = score
		return true
	}
	return false
}
