package hangman

import (
	"errors"
	"math/rand"
	"testing"
	"unicode/utf8"
)

// mapSource is a WordSource backed by a fixed word slice.
type mapSource []string

func (s mapSource) WordsOfLength(n int) []string {
	var out []string
	for _, w := range s {
		if utf8.RuneCountInString(w) == n {
			out = append(out, w)
		}
	}
	return out
}

func newGame(t *testing.T, phrase string, d Difficulty) *Game {
	t.Helper()
	g := New(Config{Rand: rand.New(rand.NewSource(1))}, phrase)
	if d != DifficultyUnset {
		if err := g.SetDifficulty(d); err != nil {
			t.Fatalf("SetDifficulty(%v) failed: %v", d, err)
		}
	}
	return g
}

func guessAll(t *testing.T, g *Game, letters string) {
	t.Helper()
	for _, r := range letters {
		if _, err := g.Guess(r); err != nil {
			t.Fatalf("Guess(%q) failed: %v", r, err)
		}
	}
}

func TestNewNormalizesPhrase(t *testing.T) {
	g := New(Config{}, "Cat")
	if g.Phrase() != "CAT" {
		t.Errorf("Phrase() = %q, expected %q", g.Phrase(), "CAT")
	}
	if g.Display() != "___" {
		t.Errorf("Display() = %q, expected %q", g.Display(), "___")
	}
	if g.IncorrectGuesses() != 0 || g.GameOver() || g.Won() {
		t.Error("new round should start with zero counts and no outcome")
	}
	if g.Phase() != PhaseAwaitingDifficulty {
		t.Errorf("Phase() = %v, expected %v", g.Phase(), PhaseAwaitingDifficulty)
	}
}

func TestBlankPhraseIsOmitted(t *testing.T) {
	g := New(Config{}, "   ")
	if g.Phrase() != "" {
		t.Errorf("Phrase() = %q, expected empty", g.Phrase())
	}
	if g.Phase() != PhaseUninitialized {
		t.Errorf("Phase() = %v, expected %v", g.Phase(), PhaseUninitialized)
	}
}

func TestDisplayReveal(t *testing.T) {
	g := newGame(t, "CAT", DifficultyNormal)

	if g.Display() != "___" {
		t.Fatalf("Display() = %q, expected %q", g.Display(), "___")
	}

	guessAll(t, g, "A")
	if g.Display() != "_A_" {
		t.Errorf("Display() after A = %q, expected %q", g.Display(), "_A_")
	}

	guessAll(t, g, "TC")
	if g.Display() != "CAT" {
		t.Errorf("Display() after all letters = %q, expected %q", g.Display(), "CAT")
	}
}

func TestDisplayCustomPlaceholder(t *testing.T) {
	g := New(Config{Placeholder: '*'}, "go go")
	if g.Display() != "** **" {
		t.Errorf("Display() = %q, expected %q", g.Display(), "** **")
	}
}

func TestHardLoss(t *testing.T) {
	g := newGame(t, "DOG", DifficultyHard)

	for i, r := range "XQZ" {
		res, err := g.Guess(r)
		if err != nil {
			t.Fatalf("Guess(%q) failed: %v", r, err)
		}
		if res != GuessIncorrect {
			t.Errorf("Guess(%q) = %v, expected %v", r, res, GuessIncorrect)
		}
		if g.GameOver() {
			t.Fatalf("game over after %d wrong guesses", i+1)
		}
	}

	guessAll(t, g, "W")
	if g.IncorrectGuesses() != 4 {
		t.Errorf("IncorrectGuesses() = %d, expected 4", g.IncorrectGuesses())
	}
	if !g.GameOver() || g.Won() {
		t.Errorf("GameOver=%v Won=%v, expected true/false", g.GameOver(), g.Won())
	}
	if g.Outcome() != OutcomeLost || g.Phase() != PhaseLost {
		t.Errorf("Outcome=%v Phase=%v, expected lost", g.Outcome(), g.Phase())
	}
}

func TestNormalWin(t *testing.T) {
	g := newGame(t, "CAT", DifficultyNormal)

	guessAll(t, g, "CA")
	if g.GameOver() {
		t.Fatal("game should not be over before the last letter")
	}

	res, err := g.Guess('T')
	if err != nil {
		t.Fatalf("Guess('T') failed: %v", err)
	}
	if res != GuessCorrect {
		t.Errorf("Guess('T') = %v, expected %v", res, GuessCorrect)
	}
	if !g.Won() || !g.GameOver() {
		t.Errorf("Won=%v GameOver=%v, expected true/true", g.Won(), g.GameOver())
	}
	if g.IncorrectGuesses() != 0 {
		t.Errorf("IncorrectGuesses() = %d, expected 0", g.IncorrectGuesses())
	}
	if g.Outcome() != OutcomeWon {
		t.Errorf("Outcome() = %v, expected %v", g.Outcome(), OutcomeWon)
	}
}

func TestWhitespaceAlwaysRevealed(t *testing.T) {
	g := newGame(t, "A B", DifficultyNormal)

	if g.Display() != "_ _" {
		t.Errorf("Display() = %q, expected %q", g.Display(), "_ _")
	}

	guessAll(t, g, "AB")
	if !g.Won() {
		t.Error("guessing A and B should win a phrase of \"A B\"")
	}
	if g.Display() != "A B" {
		t.Errorf("Display() = %q, expected %q", g.Display(), "A B")
	}
}

func TestWhitespaceGuessRejected(t *testing.T) {
	g := newGame(t, "A B", DifficultyNormal)
	for _, r := range []rune{' ', '\t', '\n', 0x07} {
		if _, err := g.Guess(r); !errors.Is(err, ErrInvalidGuess) {
			t.Errorf("Guess(%q) error = %v, expected ErrInvalidGuess", r, err)
		}
	}
	if len(g.GuessedLetters()) != 0 {
		t.Error("rejected guesses must not be recorded")
	}
}

func TestCaseInsensitiveGuess(t *testing.T) {
	g := newGame(t, "cat", DifficultyNormal)
	guessAll(t, g, "c")

	if !g.HasGuessed('C') || !g.HasGuessed('c') {
		t.Error("guess should be normalized to uppercase")
	}
	if g.Display() != "C__" {
		t.Errorf("Display() = %q, expected %q", g.Display(), "C__")
	}

	res, err := g.Guess('C')
	if err != nil || res != GuessRepeated {
		t.Errorf("Guess('C') = %v, %v; expected repeated", res, err)
	}
}

func TestRepeatedGuessIsIdempotent(t *testing.T) {
	tests := []struct {
		name   string
		letter rune
	}{
		{"wrong letter", 'X'},
		{"right letter", 'D'},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newGame(t, "DOG", DifficultyHard)
			guessAll(t, g, string(tc.letter))
			before := g.Snapshot()

			for iter := 0; iter < 5; iter++ {
				res, err := g.Guess(tc.letter)
				if err != nil {
					t.Fatalf("Guess(%q) failed: %v", tc.letter, err)
				}
				if res != GuessRepeated {
					t.Errorf("Guess(%q) = %v, expected %v", tc.letter, res, GuessRepeated)
				}
			}

			if after := g.Snapshot(); after != before {
				t.Errorf("repeat guess changed state: %+v -> %+v", before, after)
			}
		})
	}
}

func TestGuessAfterGameOver(t *testing.T) {
	g := newGame(t, "CAT", DifficultyHard)
	guessAll(t, g, "WXYZ")
	if !g.GameOver() {
		t.Fatal("expected game over")
	}
	before := g.Snapshot()

	for _, r := range "CATQ" {
		if _, err := g.Guess(r); !errors.Is(err, ErrRoundClosed) {
			t.Errorf("Guess(%q) error = %v, expected ErrRoundClosed", r, err)
		}
	}

	if after := g.Snapshot(); after != before {
		t.Errorf("guess after game over changed state: %+v -> %+v", before, after)
	}
}

func TestWinTakesPriority(t *testing.T) {
	// The finishing correct guess never counts against the limit, so a round
	// that is one mistake from losing still wins.
	g := newGame(t, "AB", DifficultyHard)
	guessAll(t, g, "XYZ")
	guessAll(t, g, "A")
	guessAll(t, g, "B")

	if !g.Won() || g.IncorrectGuesses() != 3 {
		t.Errorf("Won=%v Incorrect=%d, expected win with 3 mistakes", g.Won(), g.IncorrectGuesses())
	}
}

func TestIncorrectCountMatchesDistinctWrongLetters(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	alphabet := []rune("ABCDEFGHIJKLMNOPQRSTUVWXYZ")

	for round := 0; round < 200; round++ {
		g := newGame(t, "BANANA SPLIT", DifficultyVeryEasy)
		wrong := make(map[rune]bool)
		var wonAt []rune

		for iter := 0; iter < 40; iter++ {
			r := alphabet[rng.Intn(len(alphabet))]
			over := g.GameOver()
			_, err := g.Guess(r)
			if over {
				if !errors.Is(err, ErrRoundClosed) {
					t.Fatalf("round %d: guess after game over error = %v", round, err)
				}
				continue
			}
			if err != nil {
				t.Fatalf("round %d: Guess(%q) failed: %v", round, r, err)
			}
			if !g.inPhrase(r) {
				wrong[r] = true
			}
			if g.Won() && wonAt == nil {
				wonAt = g.GuessedLetters()
			}
		}

		if g.IncorrectGuesses() != len(wrong) {
			t.Fatalf("round %d: IncorrectGuesses() = %d, expected %d", round, g.IncorrectGuesses(), len(wrong))
		}
		if g.IncorrectGuesses() > int(DifficultyVeryEasy) {
			t.Fatalf("round %d: incorrect count %d exceeds limit", round, g.IncorrectGuesses())
		}
		if g.Won() {
			seen := make(map[rune]bool)
			for _, r := range wonAt {
				seen[r] = true
			}
			for _, r := range "BANANASPLIT" {
				if !seen[r] {
					t.Fatalf("round %d: won without guessing %q", round, r)
				}
			}
		}
	}
}

func TestFirstGuessDefaultsDifficulty(t *testing.T) {
	g := newGame(t, "CAT", DifficultyUnset)
	if g.RemainingGuesses() != int(DifficultyNormal) {
		t.Errorf("RemainingGuesses() = %d, expected %d", g.RemainingGuesses(), int(DifficultyNormal))
	}
	guessAll(t, g, "Z")
	if g.Difficulty() != DifficultyNormal {
		t.Errorf("Difficulty() = %v, expected %v", g.Difficulty(), DifficultyNormal)
	}
	if g.RemainingGuesses() != 5 {
		t.Errorf("RemainingGuesses() = %d, expected 5", g.RemainingGuesses())
	}
}

func TestDifficultyLockedAfterFirstGuess(t *testing.T) {
	g := newGame(t, "CAT", DifficultyEasy)
	if err := g.SetDifficulty(DifficultyHard); err != nil {
		t.Fatalf("changing difficulty before guessing failed: %v", err)
	}
	guessAll(t, g, "C")

	if err := g.SetDifficulty(DifficultyEasy); !errors.Is(err, ErrDifficultyLocked) {
		t.Errorf("SetDifficulty after guess error = %v, expected ErrDifficultyLocked", err)
	}
	if err := g.SetDifficulty(DifficultyHard); err != nil {
		t.Errorf("re-selecting the same difficulty failed: %v", err)
	}
	if g.Difficulty() != DifficultyHard {
		t.Errorf("Difficulty() = %v, expected %v", g.Difficulty(), DifficultyHard)
	}
}

func TestSetDifficultyInvalid(t *testing.T) {
	g := newGame(t, "CAT", DifficultyUnset)
	for _, d := range []Difficulty{DifficultyUnset, 5, 12, -4} {
		if err := g.SetDifficulty(d); !errors.Is(err, ErrInvalidDifficulty) {
			t.Errorf("SetDifficulty(%d) error = %v, expected ErrInvalidDifficulty", int(d), err)
		}
	}
	if g.Phase() != PhaseAwaitingDifficulty {
		t.Errorf("Phase() = %v, expected %v", g.Phase(), PhaseAwaitingDifficulty)
	}
	if err := g.SetDifficulty(DifficultyNormal); err != nil {
		t.Fatalf("SetDifficulty failed: %v", err)
	}
	if g.Phase() != PhaseInProgress {
		t.Errorf("Phase() = %v, expected %v", g.Phase(), PhaseInProgress)
	}
}

func TestSelectRandomPhrase(t *testing.T) {
	src := mapSource{"tree", "bird", "fish", "planet", "rocket"}
	g := New(Config{Source: src, Rand: rand.New(rand.NewSource(7))}, "")

	for iter := 0; iter < 20; iter++ {
		phrase, err := g.SelectRandomPhrase(6)
		if err != nil {
			t.Fatalf("SelectRandomPhrase(6) failed: %v", err)
		}
		if phrase != "PLANET" && phrase != "ROCKET" {
			t.Errorf("SelectRandomPhrase(6) = %q, expected a 6-letter candidate", phrase)
		}
		if g.Phrase() != phrase {
			t.Errorf("Phrase() = %q, expected %q", g.Phrase(), phrase)
		}
		if g.Display() != "______" {
			t.Errorf("Display() = %q, expected six placeholders", g.Display())
		}
	}
}

func TestSelectRandomPhraseCoversAllCandidates(t *testing.T) {
	src := mapSource{"tree", "bird", "fish"}
	g := New(Config{Source: src, Rand: rand.New(rand.NewSource(3))}, "")

	seen := make(map[string]bool)
	for iter := 0; iter < 200; iter++ {
		phrase, err := g.SelectRandomPhrase(4)
		if err != nil {
			t.Fatalf("SelectRandomPhrase(4) failed: %v", err)
		}
		seen[phrase] = true
	}
	if len(seen) != 3 {
		t.Errorf("selected %d distinct words, expected 3: %v", len(seen), seen)
	}
}

func TestSelectRandomPhraseErrors(t *testing.T) {
	src := mapSource{"tree"}

	g := New(Config{Source: src}, "")
	_, err := g.SelectRandomPhrase(9)
	var nf *NotFoundError
	if !errors.As(err, &nf) || nf.Length != 9 {
		t.Errorf("SelectRandomPhrase(9) error = %v, expected NotFoundError{9}", err)
	}
	if !errors.Is(err, ErrNotFound) {
		t.Error("NotFoundError should match ErrNotFound")
	}
	if g.Phrase() != "" {
		t.Errorf("failed selection changed phrase to %q", g.Phrase())
	}

	if _, err := g.SelectRandomPhrase(0); !errors.Is(err, ErrInvalidLength) {
		t.Errorf("SelectRandomPhrase(0) error = %v, expected ErrInvalidLength", err)
	}

	noSource := New(Config{}, "")
	if _, err := noSource.SelectRandomPhrase(4); !errors.Is(err, ErrNoWordSource) {
		t.Errorf("SelectRandomPhrase without source error = %v, expected ErrNoWordSource", err)
	}
}

func TestSelectRandomPhraseAfterGuessRejected(t *testing.T) {
	src := mapSource{"tree", "bird"}
	g := New(Config{Source: src, Rand: rand.New(rand.NewSource(5))}, "")
	if err := g.SetDifficulty(DifficultyHard); err != nil {
		t.Fatalf("SetDifficulty failed: %v", err)
	}
	guessAll(t, g, "E")
	phrase := g.Phrase()

	if _, err := g.SelectRandomPhrase(4); !errors.Is(err, ErrRoundStarted) {
		t.Errorf("SelectRandomPhrase after guess error = %v, expected ErrRoundStarted", err)
	}
	if g.Phrase() != phrase {
		t.Errorf("phrase changed from %q to %q", phrase, g.Phrase())
	}
}

func TestLazySelectionUsesDifficultyLength(t *testing.T) {
	src := mapSource{"tree", "planet", "elephant", "television"}

	tests := []struct {
		difficulty Difficulty
		expected   string
	}{
		{DifficultyHard, "TREE"},
		{DifficultyNormal, "PLANET"},
		{DifficultyEasy, "ELEPHANT"},
		{DifficultyVeryEasy, "TELEVISION"},
	}

	for _, tc := range tests {
		t.Run(tc.difficulty.String(), func(t *testing.T) {
			g := New(Config{Source: src}, "")
			if err := g.SetDifficulty(tc.difficulty); err != nil {
				t.Fatalf("SetDifficulty failed: %v", err)
			}
			guessAll(t, g, "E")
			if g.Phrase() != tc.expected {
				t.Errorf("Phrase() = %q, expected %q", g.Phrase(), tc.expected)
			}
		})
	}
}

func TestLazySelectionExplicitLength(t *testing.T) {
	src := mapSource{"tree", "planet"}
	g := New(Config{Source: src, WordLength: 4}, "")
	guessAll(t, g, "E")

	if g.Phrase() != "TREE" {
		t.Errorf("Phrase() = %q, expected %q", g.Phrase(), "TREE")
	}
	if g.Difficulty() != DifficultyNormal {
		t.Errorf("Difficulty() = %v, expected %v", g.Difficulty(), DifficultyNormal)
	}
}

func TestLazySelectionNotFound(t *testing.T) {
	g := New(Config{Source: mapSource{"tree"}}, "")
	_, err := g.Guess('A')
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("Guess error = %v, expected ErrNotFound", err)
	}
	if len(g.GuessedLetters()) != 0 || g.GameOver() {
		t.Error("failed selection must not record the guess")
	}
}

func TestFailedSelectionKeepsRoundAwaiting(t *testing.T) {
	g := New(Config{Source: mapSource{"tree"}}, "")
	if _, err := g.Guess('A'); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Guess error = %v, expected ErrNotFound", err)
	}
	if g.Difficulty() != DifficultyUnset {
		t.Errorf("Difficulty() = %v, expected unset after a failed selection", g.Difficulty())
	}
	if g.Phase() != PhaseAwaitingDifficulty {
		t.Errorf("Phase() = %v, expected %v", g.Phase(), PhaseAwaitingDifficulty)
	}

	// Choosing a level that matches the list recovers the round
	if err := g.SetDifficulty(DifficultyHard); err != nil {
		t.Fatalf("SetDifficulty() failed: %v", err)
	}
	if _, err := g.Guess('T'); err != nil {
		t.Fatalf("Guess() after SetDifficulty failed: %v", err)
	}
	if g.Phrase() != "TREE" || g.Phase() != PhaseInProgress {
		t.Errorf("Phrase() = %q, Phase() = %v; expected TREE in progress", g.Phrase(), g.Phase())
	}
}

func TestWrongLettersAndOrder(t *testing.T) {
	g := newGame(t, "DOG", DifficultyVeryEasy)
	guessAll(t, g, "zdxo")

	if got := string(g.GuessedLetters()); got != "ZDXO" {
		t.Errorf("GuessedLetters() = %q, expected %q", got, "ZDXO")
	}
	if got := string(g.WrongLetters()); got != "ZX" {
		t.Errorf("WrongLetters() = %q, expected %q", got, "ZX")
	}

	letters := g.GuessedLetters()
	letters[0] = 'Q'
	if g.GuessedLetters()[0] != 'Z' {
		t.Error("GuessedLetters() must return a copy")
	}
}

func TestSnapshot(t *testing.T) {
	g := newGame(t, "DOG", DifficultyHard)
	guessAll(t, g, "OX")

	snap := g.Snapshot()
	expected := Snapshot{
		Phrase:           "DOG",
		Display:          "_O_",
		Guessed:          "OX",
		Wrong:            "X",
		IncorrectGuesses: 1,
		Difficulty:       DifficultyHard,
		Phase:            PhaseInProgress,
	}
	if snap != expected {
		t.Errorf("Snapshot() = %+v, expected %+v", snap, expected)
	}
}

func TestZeroValueGame(t *testing.T) {
	var g Game
	if g.Phase() != PhaseUninitialized {
		t.Errorf("Phase() = %v, expected %v", g.Phase(), PhaseUninitialized)
	}
	if _, err := g.Guess('A'); !errors.Is(err, ErrNoWordSource) {
		t.Errorf("Guess on zero Game error = %v, expected ErrNoWordSource", err)
	}
}
