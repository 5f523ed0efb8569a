package hangman

import (
	"fmt"
	"strconv"
	"strings"
)

// Difficulty is the maximum number of distinct incorrect guesses tolerated
// before the round is lost.
type Difficulty int

const (
	DifficultyUnset    Difficulty = 0
	DifficultyHard     Difficulty = 4
	DifficultyNormal   Difficulty = 6
	DifficultyEasy     Difficulty = 8
	DifficultyVeryEasy Difficulty = 10
)

// Difficulties returns the selectable levels from hardest to easiest.
func Difficulties() []Difficulty {
	return []Difficulty{DifficultyHard, DifficultyNormal, DifficultyEasy, DifficultyVeryEasy}
}

// Valid reports whether d is one of the selectable levels.
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyHard, DifficultyNormal, DifficultyEasy, DifficultyVeryEasy:
		return true
	}
	return false
}

// String returns the preset name used on the command line and in config files.
func (d Difficulty) String() string {
	switch d {
	case DifficultyUnset:
		return "unset"
	case DifficultyHard:
		return "hard"
	case DifficultyNormal:
		return "normal"
	case DifficultyEasy:
		return "easy"
	case DifficultyVeryEasy:
		return "very-easy"
	default:
		return fmt.Sprintf("difficulty(%d)", int(d))
	}
}

// ImpliedWordLength is the phrase length requested when no explicit length is
// configured. Historically the mistake tolerance doubled as the word length;
// the coupling is kept for compatibility and lives only here.
func (d Difficulty) ImpliedWordLength() int {
	return int(d)
}

// ParseDifficulty accepts a preset name ("hard", "very-easy", ...) or its
// numeric value ("4", "10", ...). An empty string yields DifficultyUnset.
func ParseDifficulty(s string) (Difficulty, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "", "unset":
		return DifficultyUnset, nil
	case "hard":
		return DifficultyHard, nil
	case "normal":
		return DifficultyNormal, nil
	case "easy":
		return DifficultyEasy, nil
	case "very-easy", "very_easy", "veryeasy":
		return DifficultyVeryEasy, nil
	}

	n, err := strconv.Atoi(s)
	if err != nil {
		return DifficultyUnset, fmt.Errorf("%w: %q", ErrInvalidDifficulty, s)
	}
	d := Difficulty(n)
	if !d.Valid() {
		return DifficultyUnset, fmt.Errorf("%w: %d", ErrInvalidDifficulty, n)
	}
	return d, nil
}
