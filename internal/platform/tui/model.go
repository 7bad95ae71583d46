package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/mathmono/internal/core"
	"github.com/vovakirdan/mathmono/internal/registry"
	"github.com/vovakirdan/mathmono/internal/storage"
)

// helpRows is the height reserved for the full help view.
const helpRows = 4

// Options configures a game run.
type Options struct {
	Store    *storage.Store    // Optional score and run storage
	Watcher  *ConfigWatcher    // Optional; config changes restart the game
	Logger   *log.Logger       // Defaults to a discarding logger
	OnFinish func(storage.Run) // Called once per finished game
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	opts       Options
	config     core.RuntimeConfig
	keys       KeyMap
	help       help.Model
	showHelp   bool
	inputFrame core.InputFrame
	gameState  core.GameState
	err        error
	quitting   bool
	scoreSaved bool // Whether the result was recorded for the current game over
}

// NewModel creates a model and starts the game. A failed start is kept in
// Err and shown instead of the game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = defaultTickRate
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	m := Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		opts:       opts,
		config:     cfg,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		inputFrame: core.NewInputFrame(),
	}
	m.help.ShowAll = true
	m.help.Width = cfg.ScreenW

	if err := game.Reset(cfg); err != nil {
		m.err = fmt.Errorf("cannot start %s: %w", game.ID(), err)
		opts.Logger.Error("game start failed", "game", game.ID(), "err", err)
	} else {
		m.gameState = game.State()
	}
	return m
}

// Err returns the error that prevented the game from starting.
func (m Model) Err() error {
	return m.err
}

// Init starts the tick loop and the config watcher.
func (m Model) Init() tea.Cmd {
	if m.err != nil {
		return nil
	}
	cmds := []tea.Cmd{tickCmd(m.config.TickRate)}
	if m.opts.Watcher != nil {
		cmds = append(cmds, m.opts.Watcher.Wait())
	}
	return tea.Batch(cmds...)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg.Width, msg.Height)

	case TickMsg:
		return m.handleTick()

	case ConfigChangedMsg:
		return m.handleConfigChange(msg)

	case ConfigErrorMsg:
		m.opts.Logger.Warn("config watcher error", "err", msg.Err)
		return m, m.opts.Watcher.Wait()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.err != nil {
		m.quitting = true
		return m, tea.Quit
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		return m.handleResize(m.config.ScreenW, m.config.ScreenH)
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	}

	action := m.keys.Action(msg)
	if action == core.ActionRestart && !m.gameState.GameOver {
		return m, nil
	}
	if action != core.ActionNone {
		m.inputFrame.Set(action)
	}
	return m, nil
}

// playHeight is the screen height left for the game.
func (m Model) playHeight() int {
	if m.showHelp {
		return max(m.config.ScreenH-helpRows, 0)
	}
	return m.config.ScreenH
}

// handleResize processes window resize events.
func (m Model) handleResize(width, height int) (tea.Model, tea.Cmd) {
	m.config.ScreenW = width
	m.config.ScreenH = height
	m.help.Width = width
	m.screen.Resize(width, m.playHeight())

	if m.err != nil {
		return m, nil
	}

	// Games that can adapt keep their state; others restart.
	if r, ok := m.game.(registry.Resizer); ok {
		r.Resize(width, m.playHeight())
		return m, nil
	}
	if !m.gameState.GameOver {
		cfg := m.config
		cfg.ScreenH = m.playHeight()
		if err := m.game.Reset(cfg); err != nil {
			m.opts.Logger.Error("reset after resize failed", "err", err)
		}
	}
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.err != nil {
		return m, nil
	}

	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.restart()
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if m.gameState.GameOver && !m.scoreSaved {
		m.recordResult()
		m.scoreSaved = true
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// restart resets the game with the current config.
func (m *Model) restart() {
	cfg := m.config
	cfg.ScreenH = m.playHeight()
	if err := m.game.Reset(cfg); err != nil {
		m.opts.Logger.Error("restart failed", "err", err)
		return
	}
	m.gameState = m.game.State()
	m.scoreSaved = false
}

// handleConfigChange restarts the game so the new config takes effect.
func (m Model) handleConfigChange(msg ConfigChangedMsg) (tea.Model, tea.Cmd) {
	m.opts.Logger.Info("config changed, restarting", "path", msg.Path)
	if m.err == nil {
		m.restart()
	}
	return m, m.opts.Watcher.Wait()
}

// recordResult stores the finished game and notifies OnFinish.
func (m *Model) recordResult() {
	run := storage.Run{
		GameID: m.game.ID(),
		Score:  m.gameState.Score,
		Seed:   m.config.Seed,
	}
	if sr, ok := m.game.(registry.StatsReporter); ok {
		stats := sr.Stats()
		run.BlocksEaten = stats.Progress
		run.Ticks = stats.Ticks
		run.Won = stats.Won
	}

	if store := m.opts.Store; store != nil {
		if run.Score > 0 {
			if _, err := store.SaveScore(run.GameID, run.Score); err != nil {
				m.opts.Logger.Error("cannot save score", "err", err)
			}
		}
		if _, err := store.SaveRun(run); err != nil {
			m.opts.Logger.Error("cannot save run", "err", err)
		}
	}
	m.opts.Logger.Info("game finished", "score", run.Score, "eaten", run.BlocksEaten, "won", run.Won)

	if m.opts.OnFinish != nil {
		m.opts.OnFinish(run)
	}
}

// saveScreenshot saves the current screen as plain text.
func (m *Model) saveScreenshot() {
	m.screen.Clear()
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".mathmono", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.opts.Logger.Warn("cannot create screenshot directory", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.opts.Logger.Warn("cannot save screenshot", "err", err)
		return
	}
	m.opts.Logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.err != nil {
		return fmt.Sprintf("\n  %v\n\n  Press any key to exit.\n", m.err)
	}

	m.screen.Clear()
	m.game.Render(m.screen)
	out := RenderScreen(m.screen)
	if m.showHelp {
		out += "\n" + m.help.View(m.keys)
	}
	return out
}

// Run starts the Bubble Tea program for game and blocks until it exits.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)
	if err := model.Err(); err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
