package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/mathmono/internal/core"
	"github.com/vovakirdan/mathmono/internal/games/mathmono"
	"github.com/vovakirdan/mathmono/internal/platform/tui"
	"github.com/vovakirdan/mathmono/internal/registry"
	"github.com/vovakirdan/mathmono/internal/settings"
	"github.com/vovakirdan/mathmono/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagWatch      bool
	flagReplay     bool
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game (default: mathmono)",
	Long: `Start playing Math Mono.

Controls:
  WASD/Arrows - Move one block
  Space       - Eat the block under you
  P/Esc       - Pause
  R           - Restart (after game over)
  ?           - Toggle help
  Ctrl+S      - Save a screenshot
  Q/Ctrl+C    - Quit

Difficulty options:
  easy   - 5x5 grid, 8 health, addition only
  normal - 7x7 grid, 5 health
  hard   - 9x9 grid, 3 health

The last difficulty you chose is remembered.

Examples:
  mathmono play
  mathmono play --difficulty hard
  mathmono play --replay
  mathmono play --config ./mathmono.yaml --watch`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	playCmd.Flags().BoolVar(&flagWatch, "watch", false, "Restart the game when the --config file changes")
	playCmd.Flags().BoolVar(&flagReplay, "replay", false, "Replay the board of the last finished game")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := mathmono.ID
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'mathmono list' to see available games.")
		os.Exit(1)
	}
	if flagWatch && flagConfig == "" {
		fmt.Fprintln(os.Stderr, "Error: --watch needs --config")
		os.Exit(1)
	}

	logger, closeLog, err := newLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	prefs, err := settings.Open(logger)
	if err != nil {
		logger.Warn("preferences unavailable", "err", err)
	}

	difficulty := flagDifficulty
	if difficulty == "" {
		difficulty = prefs.Preferences().Difficulty
	} else {
		prefs.SetDifficulty(difficulty)
	}

	seed := flagSeed
	if flagReplay {
		if last := prefs.Preferences().LastSeed; last != 0 {
			seed = last
		} else {
			fmt.Fprintln(os.Stderr, "No finished game to replay yet, starting a new board.")
		}
	}

	// Display size; zero means unknown and the game refuses to start.
	width, height := 0, 0
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	} else {
		logger.Error("cannot read terminal size", "err", termErr)
	}

	// Fail on a broken config before taking over the terminal.
	if _, cfgErr := mathmono.LoadConfig(flagConfig, difficulty); cfgErr != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", cfgErr)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	var watcher *tui.ConfigWatcher
	if flagWatch {
		watcher, err = tui.NewConfigWatcher(flagConfig)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error watching config: %v\n", err)
			os.Exit(1)
		}
		defer watcher.Close()
	}

	runErr := playGame(gameRun{
		gameID:     gameID,
		difficulty: difficulty,
		runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     seed,
		},
		store:   store,
		watcher: watcher,
		prefs:   prefs,
		logger:  logger,
	})

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// gameRun is everything needed to start one game.
type gameRun struct {
	gameID     string
	difficulty string
	runtime    core.RuntimeConfig
	store      *storage.Store
	watcher    *tui.ConfigWatcher
	prefs      *settings.Manager
	logger     *log.Logger
}

// playGame runs one game to completion and saves preferences afterwards.
func playGame(r gameRun) error {
	// Set config path and difficulty before creation
	mathmono.SetConfigPath(flagConfig)
	mathmono.SetDifficultyPreset(r.difficulty)
	mathmono.SetLogger(r.logger)

	game, err := registry.Create(r.gameID)
	if err != nil {
		return fmt.Errorf("cannot create game: %w", err)
	}

	opts := tui.Options{
		Store:   r.store,
		Watcher: r.watcher,
		Logger:  r.logger,
		OnFinish: func(run storage.Run) {
			if r.prefs.RecordRun(run.Seed, run.Score) {
				r.logger.Info("new personal best", "score", run.Score)
			}
		},
	}

	runErr := tui.Run(game, r.runtime, opts)
	if saveErr := r.prefs.Save(); saveErr != nil {
		r.logger.Warn("cannot save preferences", "err", saveErr)
	}
	return runErr
}
