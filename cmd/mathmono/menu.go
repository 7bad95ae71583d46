package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/mathmono/internal/core"
	"github.com/vovakirdan/mathmono/internal/games/mathmono"
	"github.com/vovakirdan/mathmono/internal/platform/tui"
	"github.com/vovakirdan/mathmono/internal/settings"
	"github.com/vovakirdan/mathmono/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with the difficulty menu",
	Long: `Start Math Mono in interactive menu mode.

Pick a difficulty to play or open the high scores. After a game ends,
you return to the menu to play again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Tab          - High scores
  Q            - Quit

Examples:
  mathmono menu
  mathmono menu --fps 30
  mathmono menu --db ./scores.db`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func init() {
	// Uses global flags from main.go (--fps, --seed, --db, --log)
	menuCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
}

func runMenu(_ *cobra.Command, _ []string) {
	logger, closeLog, err := newLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	if _, cfgErr := mathmono.LoadConfig(flagConfig, ""); cfgErr != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", cfgErr)
		os.Exit(1)
	}

	prefs, err := settings.Open(logger)
	if err != nil {
		logger.Warn("preferences unavailable", "err", err)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Menu loop
	for {
		p := prefs.Preferences()
		result, menuErr := tui.RunMenu("Math Mono", p.Difficulty, p.BestScore, cfg)
		if menuErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", menuErr)
			return
		}

		// Update config with any size changes
		cfg = result.Config

		switch result.Choice {
		case tui.MenuQuit:
			return

		case tui.MenuScores:
			if sbErr := tui.RunScoreboard(store, mathmono.ID, "Math Mono", cfg.ScreenW, cfg.ScreenH); sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
				return
			}

		case tui.MenuPlay:
			prefs.SetDifficulty(result.Difficulty)
			runErr := playGame(gameRun{
				gameID:     mathmono.ID,
				difficulty: result.Difficulty,
				runtime:    cfg,
				store:      store,
				prefs:      prefs,
				logger:     logger,
			})
			if runErr != nil {
				fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
				return
			}
		}
	}
}
