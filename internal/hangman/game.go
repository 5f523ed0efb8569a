// Package hangman implements the rules of a single Hangman round: the secret
// phrase, the guess history, the obfuscated display, incorrect-guess counting
// against a difficulty limit, and win/loss determination.
//
// The package has no UI dependencies. Hosts drive a round exclusively through
// the methods of Game and read its state through accessors.
package hangman

import (
	"fmt"
	"math/rand"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

// DefaultPlaceholder is shown for every hidden position of the phrase.
const DefaultPlaceholder = '_'

// WordSource enumerates candidate words by character count.
type WordSource interface {
	WordsOfLength(n int) []string
}

// Config holds the collaborators of a round.
type Config struct {
	Source      WordSource // candidates for lazy phrase selection
	Rand        *rand.Rand // nil means a time-seeded source
	Placeholder rune       // 0 means DefaultPlaceholder
	WordLength  int        // 0 means Difficulty.ImpliedWordLength
}

// Outcome is the terminal result of a round.
type Outcome int

const (
	OutcomeInProgress Outcome = iota
	OutcomeWon
	OutcomeLost
)

func (o Outcome) String() string {
	switch o {
	case OutcomeInProgress:
		return "in_progress"
	case OutcomeWon:
		return "won"
	case OutcomeLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Phase is the position of a round in its state machine:
// Uninitialized -> AwaitingDifficulty -> InProgress -> {Won, Lost}.
type Phase int

const (
	PhaseUninitialized Phase = iota
	PhaseAwaitingDifficulty
	PhaseInProgress
	PhaseWon
	PhaseLost
)

func (p Phase) String() string {
	switch p {
	case PhaseUninitialized:
		return "uninitialized"
	case PhaseAwaitingDifficulty:
		return "awaiting_difficulty"
	case PhaseInProgress:
		return "in_progress"
	case PhaseWon:
		return "won"
	case PhaseLost:
		return "lost"
	default:
		return "unknown"
	}
}

// GuessResult classifies an accepted guess.
type GuessResult int

const (
	GuessCorrect GuessResult = iota
	GuessIncorrect
	GuessRepeated // already guessed; nothing changed
)

func (r GuessResult) String() string {
	switch r {
	case GuessCorrect:
		return "correct"
	case GuessIncorrect:
		return "incorrect"
	case GuessRepeated:
		return "repeated"
	default:
		return "unknown"
	}
}

// Game is the state of one round. A finished round cannot be restarted;
// construct a new Game instead.
type Game struct {
	source      WordSource
	rng         *rand.Rand
	placeholder rune
	wordLength  int

	phrase      string
	phraseChars []rune
	display     []rune

	guessed    map[rune]bool
	guessOrder []rune
	incorrect  int
	difficulty Difficulty
	started    bool // a guess has been accepted

	gameOver bool
	win      bool
}

// New starts a round. A non-blank phrase is uppercased and used as the
// secret; otherwise the phrase is chosen from cfg.Source on the first guess.
func New(cfg Config, phrase string) *Game {
	g := &Game{
		source:      cfg.Source,
		rng:         cfg.Rand,
		placeholder: cfg.Placeholder,
		wordLength:  cfg.WordLength,
		guessed:     make(map[rune]bool),
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if g.placeholder == 0 {
		g.placeholder = DefaultPlaceholder
	}
	if strings.TrimSpace(phrase) != "" {
		g.setPhrase(phrase)
	}
	return g
}

// setPhrase stores the normalized phrase and rebuilds everything derived from it.
func (g *Game) setPhrase(phrase string) {
	g.phrase = strings.ToUpper(phrase)
	g.phraseChars = []rune(g.phrase)
	g.recomputeDisplay()
}

// SetDifficulty chooses the mistake tolerance. It is only allowed before the
// first guess of the round.
func (g *Game) SetDifficulty(d Difficulty) error {
	if g.gameOver {
		return ErrRoundClosed
	}
	if !d.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidDifficulty, int(d))
	}
	if g.started && d != g.difficulty {
		return ErrDifficultyLocked
	}
	g.difficulty = d
	return nil
}

// SelectRandomPhrase picks a word of exactly length characters uniformly at
// random from the word source and makes it the secret phrase.
func (g *Game) SelectRandomPhrase(length int) (string, error) {
	if g.gameOver {
		return "", ErrRoundClosed
	}
	if g.started {
		return "", ErrRoundStarted
	}
	if length <= 0 {
		return "", fmt.Errorf("%w: %d", ErrInvalidLength, length)
	}
	if g.source == nil {
		return "", ErrNoWordSource
	}

	var candidates []string
	for _, w := range g.source.WordsOfLength(length) {
		if utf8.RuneCountInString(w) == length {
			candidates = append(candidates, w)
		}
	}
	if len(candidates) == 0 {
		return "", &NotFoundError{Length: length}
	}

	g.setPhrase(candidates[g.rng.Intn(len(candidates))])
	return g.phrase, nil
}

// recomputeDisplay rebuilds the obfuscated display: whitespace and guessed
// characters are shown, everything else is the placeholder.
func (g *Game) recomputeDisplay() {
	display := make([]rune, len(g.phraseChars))
	for i, ch := range g.phraseChars {
		if unicode.IsSpace(ch) || g.guessed[ch] {
			display[i] = ch
		} else {
			display[i] = g.placeholder
		}
	}
	g.display = display
}

// Guess registers a letter. Repeated letters are reported as GuessRepeated and
// change nothing. Once the round is over every guess fails with ErrRoundClosed.
func (g *Game) Guess(letter rune) (GuessResult, error) {
	if g.gameOver {
		return GuessRepeated, ErrRoundClosed
	}
	if letter == utf8.RuneError || unicode.IsSpace(letter) || unicode.IsControl(letter) {
		return GuessRepeated, fmt.Errorf("%w: %q", ErrInvalidGuess, letter)
	}

	// The default difficulty sticks only once a phrase is in place
	d := g.difficulty
	if d == DifficultyUnset {
		d = DifficultyNormal
	}
	if g.phrase == "" {
		if _, err := g.SelectRandomPhrase(g.requestedLength(d)); err != nil {
			return GuessRepeated, fmt.Errorf("hangman: choose phrase: %w", err)
		}
	}
	g.difficulty = d
	if g.guessed == nil {
		g.guessed = make(map[rune]bool)
	}

	letter = unicode.ToUpper(letter)
	if g.guessed[letter] {
		return GuessRepeated, nil
	}

	g.started = true
	g.guessed[letter] = true
	g.guessOrder = append(g.guessOrder, letter)
	g.recomputeDisplay()

	if g.inPhrase(letter) {
		if g.allRevealed() {
			g.win = true
			g.gameOver = true
		}
		return GuessCorrect, nil
	}

	g.incorrect++
	if g.incorrect >= int(g.difficulty) {
		g.gameOver = true
		g.win = false
	}
	return GuessIncorrect, nil
}

// requestedLength is the length used for lazy phrase selection.
func (g *Game) requestedLength(d Difficulty) int {
	if g.wordLength > 0 {
		return g.wordLength
	}
	return d.ImpliedWordLength()
}

func (g *Game) inPhrase(letter rune) bool {
	for _, ch := range g.phraseChars {
		if ch == letter {
			return true
		}
	}
	return false
}

// allRevealed reports whether every non-whitespace character has been guessed.
func (g *Game) allRevealed() bool {
	for _, ch := range g.phraseChars {
		if !unicode.IsSpace(ch) && !g.guessed[ch] {
			return false
		}
	}
	return true
}

// Outcome reports whether the round is still running, won or lost.
func (g *Game) Outcome() Outcome {
	switch {
	case g.gameOver && g.win:
		return OutcomeWon
	case g.gameOver:
		return OutcomeLost
	default:
		return OutcomeInProgress
	}
}

// Phase reports the state-machine position of the round.
func (g *Game) Phase() Phase {
	switch {
	case g.gameOver && g.win:
		return PhaseWon
	case g.gameOver:
		return PhaseLost
	case g.phrase == "" && g.source == nil:
		return PhaseUninitialized
	case g.difficulty == DifficultyUnset:
		return PhaseAwaitingDifficulty
	default:
		return PhaseInProgress
	}
}

// Phrase returns the uppercased secret, or "" before it has been chosen.
func (g *Game) Phrase() string {
	return g.phrase
}

// Display returns the obfuscated phrase.
func (g *Game) Display() string {
	return string(g.display)
}

// GuessedLetters returns the distinct guesses in the order they were made.
func (g *Game) GuessedLetters() []rune {
	out := make([]rune, len(g.guessOrder))
	copy(out, g.guessOrder)
	return out
}

// WrongLetters returns the guesses that do not occur in the phrase, in order.
func (g *Game) WrongLetters() []rune {
	var out []rune
	for _, r := range g.guessOrder {
		if !g.inPhrase(r) {
			out = append(out, r)
		}
	}
	return out
}

// HasGuessed reports whether letter (case-insensitively) was already guessed.
func (g *Game) HasGuessed(letter rune) bool {
	return g.guessed[unicode.ToUpper(letter)]
}

// IncorrectGuesses returns the number of distinct wrong guesses.
func (g *Game) IncorrectGuesses() int {
	return g.incorrect
}

// Difficulty returns the chosen difficulty, or DifficultyUnset.
func (g *Game) Difficulty() Difficulty {
	return g.difficulty
}

// RemainingGuesses is how many more wrong guesses are tolerated. An unset
// difficulty counts as DifficultyNormal, which the first guess will choose.
func (g *Game) RemainingGuesses() int {
	d := g.difficulty
	if d == DifficultyUnset {
		d = DifficultyNormal
	}
	return max(0, int(d)-g.incorrect)
}

// GameOver reports whether the round has ended.
func (g *Game) GameOver() bool {
	return g.gameOver
}

// Won reports whether the round ended in a win. Only meaningful after GameOver.
func (g *Game) Won() bool {
	return g.win
}
