// mathmono is a terminal arithmetic game: move across a grid of numbered
// blocks and eat the one that answers the question.
//
// Usage:
//
//	mathmono list              - List available games
//	mathmono play              - Play Math Mono
//	mathmono menu              - Pick a difficulty from a menu
//	mathmono serve             - Start SSH server for remote play
//	mathmono scores            - Show high scores and recent runs
//	mathmono config            - Print the effective game config
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible boards
//	--db <path>     - Set database path (default: ~/.mathmono/scores.db)
//	--log <path>    - Write debug logs to a file
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/mathmono/internal/games/mathmono"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagLogPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "mathmono",
	Short: "Math Mono - eat the block that answers the question",
	Long: `Math Mono is a terminal arithmetic game. A grid of numbered blocks
fills the screen; move with WASD or the arrow keys and press space to eat
the block whose value answers the question. Wrong answers cost health.

Available commands:
  list     - Show all available games
  play     - Play Math Mono
  menu     - Difficulty menu, returns after each game
  serve    - Start SSH server for remote play
  scores   - View high scores and recent runs
  config   - Print the effective game config

Examples:
  mathmono play
  mathmono play --difficulty easy
  mathmono play --config ./mathmono.yaml --watch
  mathmono serve --ssh :2222
  mathmono scores --plain --runs`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.mathmono/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write debug logs to this file")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger returns the CLI logger. The game owns the terminal, so logs go
// to the --log file or nowhere.
func newLogger() (*log.Logger, func(), error) {
	if flagLogPath == "" {
		return log.New(io.Discard), func() {}, nil
	}

	if err := os.MkdirAll(filepath.Dir(flagLogPath), 0o755); err != nil {
		return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(flagLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Level:           log.DebugLevel,
		Prefix:          "mathmono",
	})
	return logger, func() { f.Close() }, nil
}
