package hangman

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is matched by *NotFoundError through errors.Is.
	ErrNotFound = errors.New("hangman: no word of requested length")

	// ErrRoundClosed is returned for any mutation attempted after the round ended.
	ErrRoundClosed = errors.New("hangman: round is over")

	// ErrRoundStarted is returned when the phrase is re-selected after a guess
	// has been accepted.
	ErrRoundStarted = errors.New("hangman: round already started")

	ErrDifficultyLocked  = errors.New("hangman: difficulty is fixed once guessing starts")
	ErrInvalidDifficulty = errors.New("hangman: invalid difficulty")
	ErrInvalidGuess      = errors.New("hangman: invalid guess")
	ErrInvalidLength     = errors.New("hangman: word length must be positive")
	ErrNoWordSource      = errors.New("hangman: no word source configured")
)

// NotFoundError reports that the word source holds no candidate of the
// requested length. Retrying with the same length cannot succeed.
type NotFoundError struct {
	Length int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("hangman: no word of length %d", e.Length)
}

// Is makes errors.Is(err, ErrNotFound) hold for any *NotFoundError.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}
