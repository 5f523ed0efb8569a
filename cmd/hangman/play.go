package main

import (
	"fmt"
	"math/rand"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-hangman/internal/hangman"
	"github.com/vovakirdan/tui-hangman/internal/platform/tui"
	"github.com/vovakirdan/tui-hangman/internal/random"
	"github.com/vovakirdan/tui-hangman/internal/storage"
	"github.com/vovakirdan/tui-hangman/internal/words"
)

var (
	flagDifficulty string
	flagPhrase     string
	flagLength     int
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play hangman",
	Long: `Start playing rounds of hangman.

Controls:
  A-Z        - Guess a letter
  Enter/R    - New round (after game over)
  Esc/Ctrl+C - Quit (asks for confirmation during a round)
  Q          - Quit (after game over)

Difficulty options (wrong guesses allowed):
  hard       - 4
  normal     - 6
  easy       - 8
  very-easy  - 10

Unless --length or word_length is set, the word length equals the number
of wrong guesses allowed.

Examples:
  hangman play
  hangman play --difficulty easy
  hangman play --difficulty hard --length 7
  hangman play --phrase "open sesame"`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty: hard, normal, easy, very-easy")
	playCmd.Flags().StringVar(&flagPhrase, "phrase", "", "Secret phrase for the first round")
	playCmd.Flags().IntVar(&flagLength, "length", 0, "Word length (0 = implied by difficulty)")
}

// roundOptions describes how every round of a play session is built.
type roundOptions struct {
	Source      hangman.WordSource
	Rand        *rand.Rand
	Placeholder rune
	Difficulty  hangman.Difficulty
	WordLength  int    // 0 means implied by Difficulty
	Phrase      string // used for the first round only
}

// length returns the word length to draw.
func (o roundOptions) length() int {
	if o.WordLength > 0 {
		return o.WordLength
	}
	return o.Difficulty.ImpliedWordLength()
}

// newRoundFactory returns a factory that deals the given phrase first and
// random words afterwards. Random words are drawn up front so the display
// shows the word length before the first guess.
func newRoundFactory(opts roundOptions) tui.RoundFactory {
	phrase := opts.Phrase
	return func() (*hangman.Game, error) {
		g := hangman.New(hangman.Config{
			Source:      opts.Source,
			Rand:        opts.Rand,
			Placeholder: opts.Placeholder,
			WordLength:  opts.WordLength,
		}, phrase)
		if err := g.SetDifficulty(opts.Difficulty); err != nil {
			return nil, err
		}
		if g.Phrase() == "" {
			if _, err := g.SelectRandomPhrase(opts.length()); err != nil {
				return nil, err
			}
		}
		phrase = ""
		return g, nil
	}
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg := loadConfig()

	logger, closeLog := newFileLogger(cfg)
	defer closeLog()

	list, err := words.LoadOrDefault(cfg.WordList)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	length := cfg.WordLength
	if flagLength != 0 {
		if flagLength < 0 {
			fmt.Fprintf(os.Stderr, "Error: %v\n", fmt.Errorf("%w: %d", hangman.ErrInvalidLength, flagLength))
			os.Exit(1)
		}
		length = flagLength
	}

	// A blank phrase means a random word, like an omitted one
	phrase := ""
	if strings.TrimSpace(flagPhrase) != "" {
		phrase, err = words.CheckPhrase(flagPhrase)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	difficulty := cfg.ParsedDifficulty()
	if flagDifficulty != "" {
		difficulty, err = hangman.ParseDifficulty(flagDifficulty)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	// Ask when neither flag nor config chose a difficulty
	if difficulty == hangman.DifficultyUnset {
		var counter tui.WordCounter
		if phrase == "" {
			counter = list
		}
		difficulty, err = tui.RunDifficultyMenu(counter, length)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error running menu: %v\n", err)
			os.Exit(1)
		}
		if difficulty == hangman.DifficultyUnset {
			return
		}
	}

	rng, err := random.NewRand(flagSeed)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	opts := roundOptions{
		Source:      list,
		Rand:        rng,
		Placeholder: cfg.PlaceholderRune(),
		Difficulty:  difficulty,
		WordLength:  length,
		Phrase:      phrase,
	}

	// Random rounds follow the first one, so the list must cover the length
	if n := opts.length(); list.Count(n) == 0 {
		fmt.Fprintf(os.Stderr, "Error: %v\n", &hangman.NotFoundError{Length: n})
		fmt.Fprintln(os.Stderr, "Run 'hangman words' to see the available lengths.")
		os.Exit(1)
	}

	// Open round history
	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open round history: %v\n", err)
		logger.Warn("could not open round history", "error", err)
		// Continue without storage - rounds still work
		store = nil
	}

	logger.Info("session started", "difficulty", difficulty, "length", opts.length(), "words", list.Len())

	runErr := tui.Run(newRoundFactory(opts), store, logger)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
