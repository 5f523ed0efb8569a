// hangman is a terminal word-guessing game.
//
// Usage:
//
//	hangman play             - Play rounds (difficulty menu if none is set)
//	hangman words            - Show the word list by length
//	hangman scores           - Show results of finished rounds
//
// Global flags:
//
//	--config <path>     - Config file (default: ~/.hangman/config.yaml)
//	--db <path>         - Round history database (default: ~/.hangman/rounds.db)
//	--seed <value>      - RNG seed for reproducible word choice
//	--log-level <lvl>   - debug, info, warn, error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-hangman/internal/config"
)

var (
	// Global flags
	flagConfig   string
	flagDBPath   string
	flagSeed     int64
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "hangman",
	Short: "Hangman - guess the word before the gallows is complete",
	Long: `Hangman is a terminal word-guessing game. Guess one letter at a time;
each wrong letter brings the figure closer to completion.

Available commands:
  play     - Play rounds in the terminal
  words    - Inspect the word list
  scores   - View round history and stats

Examples:
  hangman play
  hangman play --difficulty hard
  hangman play --phrase "open sesame"
  hangman words --length 6
  hangman scores --difficulty easy`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to round history database")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(wordsCmd)
	rootCmd.AddCommand(scoresCmd)
}

// loadConfig reads the config and applies global flag overrides.
// Flags win over environment, which wins over files.
func loadConfig() config.Config {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if flagDBPath != "" {
		cfg.DBPath = flagDBPath
	}
	if flagLogLevel != "" {
		cfg.LogLevel = flagLogLevel
		if err := cfg.Validate(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
	return cfg
}
