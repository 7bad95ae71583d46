package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/mathmono/internal/games/mathmono"
	"github.com/vovakirdan/mathmono/internal/platform/tui"
	"github.com/vovakirdan/mathmono/internal/registry"
	"github.com/vovakirdan/mathmono/internal/storage"
)

var (
	flagPlain bool
	flagRuns  bool
	flagClear bool
	flagLimit int
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show high scores and recent runs",
	Long: `Display the high scores for a game in an interactive table.
Press tab to switch between high scores and recent runs.

Use --plain to print a table without taking over the terminal.

Examples:
  mathmono scores
  mathmono scores --plain --runs
  mathmono scores --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print the table instead of opening the scoreboard")
	scoresCmd.Flags().BoolVar(&flagRuns, "runs", false, "List recent runs instead of high scores (with --plain)")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all scores and runs for the game")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of rows to print (with --plain)")
}

func runScores(cmd *cobra.Command, args []string) {
	gameID := mathmono.ID
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'mathmono list' to see available games.")
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	title := game.Title()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearScores(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Cleared all scores for %s.\n", title)
		return
	}

	if !flagPlain {
		width, height := 80, 24 // Defaults
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunScoreboard(store, gameID, title, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error running scoreboard: %v\n", err)
			os.Exit(1)
		}
		return
	}

	view := tui.ViewTopScores
	if flagRuns {
		view = tui.ViewRecentRuns
	}
	table, err := tui.RenderScoreTable(store, gameID, view, flagLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("%s - %s\n\n", view, title)
	fmt.Println(table)

	stats, err := store.GetGameStats(gameID)
	if err == nil && stats.GamesCount > 0 {
		fmt.Println()
		fmt.Printf("Best: %d  Games: %d  Boards cleared: %d  Average: %.1f\n",
			stats.HighScore, stats.GamesCount, stats.Wins, stats.AvgScore)
	}
}
