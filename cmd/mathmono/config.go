package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/mathmono/internal/config"
	"github.com/vovakirdan/mathmono/internal/games/mathmono"
)

var (
	flagShowConfig     string
	flagShowDifficulty string
	flagShowDefault    bool
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective game config",
	Long: `Print the game config as YAML after the search path and difficulty
preset are applied. Save the output to ~/.mathmono/configs/mathmono.yaml
to customise the game.

Examples:
  mathmono config
  mathmono config --difficulty hard
  mathmono config --default > ~/.mathmono/configs/mathmono.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagShowConfig, "config", "", "Path to custom game config YAML")
	configCmd.Flags().StringVar(&flagShowDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	configCmd.Flags().BoolVar(&flagShowDefault, "default", false, "Print the built-in default config")
}

func runConfig(cmd *cobra.Command, args []string) {
	if flagShowDefault {
		os.Stdout.Write(config.DefaultYAML())
		return
	}

	cfg, err := mathmono.LoadConfig(flagShowConfig, flagShowDifficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	out, err := config.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding config: %v\n", err)
		os.Exit(1)
	}
	os.Stdout.Write(out)
}
