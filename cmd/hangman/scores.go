package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-hangman/internal/hangman"
	"github.com/vovakirdan/tui-hangman/internal/platform/tui"
	"github.com/vovakirdan/tui-hangman/internal/storage"
)

var (
	flagScoresDifficulty  string
	flagScoresLimit       int
	flagScoresInteractive bool
	flagScoresClear       bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show round history and stats",
	Long: `Display stats and the most recent finished rounds.

Examples:
  hangman scores
  hangman scores --difficulty hard --limit 5
  hangman scores --interactive
  hangman scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().StringVar(&flagScoresDifficulty, "difficulty", "", "Only show this difficulty")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of rounds to show")
	scoresCmd.Flags().BoolVarP(&flagScoresInteractive, "interactive", "i", false, "Browse history in a table")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete the whole history")
}

func runScores(cmd *cobra.Command, args []string) {
	cfg := loadConfig()
	logger := newLogger(cfg)

	difficulty, err := hangman.ParseDifficulty(flagScoresDifficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening round history: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearRounds(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		logger.Info("history cleared", "db", cfg.DBPath)
		fmt.Println("Round history cleared.")
		return
	}

	if flagScoresInteractive {
		width, height := 80, 24 // Defaults
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		if err := tui.RunScoreboard(store, difficulty, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error running scoreboard: %v\n", err)
		}
		return
	}

	stats, err := store.Stats(difficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		return
	}
	rounds, err := store.RecentRoundsByDifficulty(difficulty, flagScoresLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving rounds: %v\n", err)
		return
	}
	logger.Debug("history loaded", "difficulty", difficulty, "rounds", len(rounds))

	title := "all difficulties"
	if difficulty != hangman.DifficultyUnset {
		title = difficulty.String()
	}
	fmt.Printf("Round history - %s\n", title)
	fmt.Println()

	if len(rounds) == 0 {
		fmt.Println("No rounds recorded yet.")
		fmt.Println()
		fmt.Println("Play 'hangman play' to record the first one!")
		return
	}

	// Print header
	fmt.Printf("  %-16s  %-14s  %-9s  %-6s  %s\n", "Date", "Word", "Level", "Result", "Misses")
	fmt.Printf("  %-16s  %-14s  %-9s  %-6s  %s\n", "----", "----", "-----", "------", "------")

	for _, r := range rounds {
		result := "lost"
		if r.Won {
			result = "won"
		}
		fmt.Printf("  %-16s  %-14s  %-9s  %-6s  %d\n",
			r.CreatedAt.Local().Format("2006-01-02 15:04"), r.Phrase, r.Difficulty, result, r.IncorrectGuesses)
	}

	fmt.Println()
	fmt.Println(tui.FormatStats(stats))

	if difficulty == hangman.DifficultyUnset {
		byDifficulty, err := store.AllStats()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
			return
		}
		fmt.Println()
		writeDifficultyStats(os.Stdout, byDifficulty)
	}
}

// writeDifficultyStats prints one stats line per difficulty that has rounds.
func writeDifficultyStats(w io.Writer, byDifficulty map[hangman.Difficulty]*storage.Stats) {
	for _, d := range hangman.Difficulties() {
		s := byDifficulty[d]
		if s == nil || s.Played == 0 {
			continue
		}
		fmt.Fprintf(w, "  %-9s  %s\n", d, tui.FormatStats(s))
	}
}
