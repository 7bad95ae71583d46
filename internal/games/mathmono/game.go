package mathmono

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/mathmono/internal/config"
	"github.com/vovakirdan/mathmono/internal/core"
	"github.com/vovakirdan/mathmono/internal/registry"
)

// ID is the registry and score-table identifier.
const ID = "mathmono"

// Package-level settings picked up by New, set by the CLI before play.
var (
	configPath       string
	difficultyPreset string
	logger           = log.New(io.Discard)
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset ("easy", "normal", "hard").
// Empty uses the preset named in the config file.
func SetDifficultyPreset(preset string) {
	difficultyPreset = preset
}

// SetLogger sets the logger handed to new sessions.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// LoadConfig loads the config at path and applies a difficulty preset.
func LoadConfig(path, preset string) (config.MathMonoConfig, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, err
	}
	if preset == "" {
		preset = string(cfg.Difficulty)
	}
	p, err := config.ParsePreset(preset)
	if err != nil {
		return cfg, err
	}
	config.ApplyPreset(&cfg, p)
	cfg.Difficulty = p
	return cfg, nil
}

// Game adapts a Session to the registry.Game contract.
type Game struct {
	session *Session
	fixed   *config.MathMonoConfig
	path    string
	preset  string
	logger  *log.Logger
}

// New creates a game that loads its config on every Reset.
func New() *Game {
	return &Game{
		path:   configPath,
		preset: difficultyPreset,
		logger: logger,
	}
}

// NewWithConfig creates a game with a fixed config.
func NewWithConfig(cfg config.MathMonoConfig, l *log.Logger) *Game {
	if l == nil {
		l = log.New(io.Discard)
	}
	return &Game{fixed: &cfg, logger: l}
}

func init() {
	registry.Register(ID, func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Math Mono"
}

// Reset loads the config and starts a new session.
// On error the previous session, if any, is kept.
func (g *Game) Reset(rt core.RuntimeConfig) error {
	var cfg config.MathMonoConfig
	if g.fixed != nil {
		cfg = *g.fixed
	} else {
		loaded, err := LoadConfig(g.path, g.preset)
		if err != nil {
			g.logger.Error("failed to load config", "path", g.path, "err", err)
			return err
		}
		cfg = loaded
	}

	s, err := NewSession(Options{
		Config:  cfg,
		Runtime: rt,
		Logger:  g.logger,
	})
	if err != nil {
		return err
	}
	g.session = s
	return nil
}

// Step advances the simulation by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.session == nil {
		return core.StepResult{}
	}
	g.session.Tick(in)
	return core.StepResult{State: g.session.State()}
}

// Render draws the current state.
func (g *Game) Render(dst *core.Screen) {
	if g.session == nil {
		dst.DrawTextCentered(dst.Height()/2, "Display unavailable", core.ColorRed)
		return
	}
	g.session.Render(dst)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{}
	}
	return g.session.State()
}

// Resize adapts the session to a new screen size.
func (g *Game) Resize(width, height int) {
	if g.session != nil {
		g.session.Resize(width, height)
	}
}

// Stats reports run statistics for the run history.
func (g *Game) Stats() core.RunStats {
	if g.session == nil {
		return core.RunStats{}
	}
	return core.RunStats{
		Ticks:    g.session.Ticks(),
		Progress: g.session.Board().EatenCount(),
		Won:      g.session.Won(),
	}
}

// Session returns the running session, or nil before a successful Reset.
func (g *Game) Session() *Session {
	return g.session
}

// Snapshot returns the session snapshot.
func (g *Game) Snapshot() Snapshot {
	if g.session == nil {
		return Snapshot{}
	}
	return g.session.Snapshot()
}
