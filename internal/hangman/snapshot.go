package hangman

// Snapshot captures the observable state of a round for tests, logging and
// result persistence.
type Snapshot struct {
	Phrase           string
	Display          string
	Guessed          string // distinct guesses in order
	Wrong            string
	IncorrectGuesses int
	Difficulty       Difficulty
	Phase            Phase
	GameOver         bool
	Won              bool
}

// Snapshot returns a copy of the current round state.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Phrase:           g.phrase,
		Display:          string(g.display),
		Guessed:          string(g.guessOrder),
		Wrong:            string(g.WrongLetters()),
		IncorrectGuesses: g.incorrect,
		Difficulty:       g.difficulty,
		Phase:            g.Phase(),
		GameOver:         g.gameOver,
		Won:              g.win,
	}
}
