// Package tui hosts hangman rounds in the terminal with Bubble Tea.
// All rules live in the hangman package; this package only forwards keys
// to the engine and renders its observable state.
package tui

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-hangman/internal/hangman"
	"github.com/vovakirdan/tui-hangman/internal/storage"
)

// RoundFactory builds a fresh round. It is called once at start and again
// for every restart, since a finished Game cannot be reused.
type RoundFactory func() (*hangman.Game, error)

// Model is the Bubble Tea model for playing hangman rounds.
type Model struct {
	newRound RoundFactory
	game     *hangman.Game
	store    *storage.Store
	logger   *log.Logger
	keys     PlayKeyMap
	help     help.Model

	width   int
	height  int
	message string
	fatal   error // the factory failed, no round to play

	rounds      int
	saved       bool // result of the current round persisted
	confirmQuit bool
	quitting    bool
}

// NewModel creates a play model and builds the first round.
func NewModel(newRound RoundFactory, store *storage.Store, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	m := Model{
		newRound: newRound,
		store:    store,
		logger:   logger,
		keys:     DefaultPlayKeyMap(),
		help:     help.New(),
	}
	m.startRound()
	return m
}

// startRound replaces the current game with a new one from the factory.
func (m *Model) startRound() {
	g, err := m.newRound()
	if err != nil {
		m.game = nil
		m.fatal = err
		m.message = describeError(err)
		m.logger.Error("cannot start round", "error", err)
		return
	}
	m.game = g
	m.fatal = nil
	m.saved = false
	m.rounds++
	m.message = "Type a letter to guess."
	m.logger.Debug("round started", "round", m.rounds, "difficulty", g.Difficulty())
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.confirmQuit {
		switch {
		case key.Matches(msg, m.keys.Yes), msg.Type == tea.KeyCtrlC:
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.No):
			m.confirmQuit = false
		}
		return m, nil
	}

	if key.Matches(msg, m.keys.Quit) {
		if m.game == nil || m.game.GameOver() {
			m.quitting = true
			return m, tea.Quit
		}
		m.confirmQuit = true
		return m, nil
	}

	if m.game == nil {
		if key.Matches(msg, m.keys.Leave) {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	}

	if m.game.GameOver() {
		switch {
		case key.Matches(msg, m.keys.NewRound):
			m.startRound()
		case key.Matches(msg, m.keys.Leave):
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	}

	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	if msg.Type == tea.KeyRunes && len(msg.Runes) == 1 {
		m.guess(msg.Runes[0])
	}
	return m, nil
}

// guess forwards one letter to the engine and records the outcome.
func (m *Model) guess(r rune) {
	if !unicode.IsLetter(r) {
		m.message = "Letters only."
		return
	}

	result, err := m.game.Guess(r)
	if err != nil {
		m.message = describeError(err)
		m.logger.Warn("guess rejected", "letter", string(r), "error", err)
		return
	}

	letter := string(unicode.ToUpper(r))
	switch result {
	case hangman.GuessCorrect:
		m.message = fmt.Sprintf("Good guess: %s is in the word.", letter)
	case hangman.GuessIncorrect:
		m.message = fmt.Sprintf("No %s in the word.", letter)
	case hangman.GuessRepeated:
		m.message = fmt.Sprintf("You already tried %s.", letter)
	}
	m.logger.Debug("guess", "letter", letter, "result", result, "incorrect", m.game.IncorrectGuesses())

	if m.game.GameOver() {
		m.finishRound()
	}
}

// finishRound saves the finished round once. Storage failures are logged
// and never interrupt play.
func (m *Model) finishRound() {
	snap := m.game.Snapshot()
	if snap.Won {
		m.message = "You guessed it!"
	} else {
		m.message = fmt.Sprintf("The word was %s.", snap.Phrase)
	}
	m.logger.Info("round over", "won", snap.Won, "phrase", snap.Phrase, "incorrect", snap.IncorrectGuesses)

	if m.saved || m.store == nil {
		m.saved = true
		return
	}
	if _, err := m.store.SaveRound(storage.ResultFromSnapshot(snap)); err != nil {
		m.logger.Warn("cannot save round", "error", err)
	}
	m.saved = true
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.help.Width = msg.Width
	return m, nil
}

// describeError turns engine errors into player-facing text.
func describeError(err error) string {
	var nf *hangman.NotFoundError
	switch {
	case errors.As(err, &nf):
		return fmt.Sprintf("No word of length %d in the word list.", nf.Length)
	case errors.Is(err, hangman.ErrRoundClosed):
		return "The round is over."
	case errors.Is(err, hangman.ErrInvalidGuess):
		return "Letters only."
	default:
		return err.Error()
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("H A N G M A N"))
	b.WriteString("\n")

	if m.game == nil {
		b.WriteString(lostStyle.Render(m.message))
		b.WriteString("\n\n")
		b.WriteString(subtleStyle.Render(m.help.ShortHelpView([]key.Binding{m.keys.Leave})))
		return centerBlock(b.String(), m.width, m.height)
	}

	d := m.game.Difficulty()
	gallows := gallowsStyle.Render(RenderGallows(GallowsStage(m.game.IncorrectGuesses(), d)))
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Center, gallows, m.renderPanel()))
	b.WriteString("\n\n")

	switch {
	case m.confirmQuit:
		b.WriteString(dialogStyle.Render("Are you sure you want to exit? (y/n)"))
	case m.game.GameOver():
		banner := lostStyle.Render("YOU LOST")
		if m.game.Won() {
			banner = wonStyle.Render("YOU WON")
		}
		b.WriteString(banner + "  " + messageStyle.Render(m.message))
		b.WriteString("\n\n")
		b.WriteString(subtleStyle.Render(m.help.ShortHelpView(m.keys.OverHelp())))
	default:
		b.WriteString(messageStyle.Render(m.message))
		b.WriteString("\n\n")
		b.WriteString(subtleStyle.Render(m.help.View(m.keys)))
	}

	return centerBlock(b.String(), m.width, m.height)
}

// renderPanel renders the word, wrong letters and remaining guesses.
func (m Model) renderPanel() string {
	display := m.game.Display()
	if display == "" {
		display = "?"
	}

	d := m.game.Difficulty()
	if d == hangman.DifficultyUnset {
		d = hangman.DifficultyNormal
	}

	lines := []string{
		wordStyle.Render(spaced(display)),
		"",
		"Wrong:     " + wrongStyle.Render(letterList(m.game.WrongLetters())),
		fmt.Sprintf("Remaining: %d of %d", m.game.RemainingGuesses(), int(d)),
		subtleStyle.Render(fmt.Sprintf("Difficulty: %s  Round: %d", d, m.rounds)),
	}
	return panelStyle.Render(strings.Join(lines, "\n"))
}

// Game returns the current round, or nil if none could be started.
func (m Model) Game() *hangman.Game {
	return m.game
}

// Message returns the last status line.
func (m Model) Message() string {
	return m.message
}

// Err returns the error that prevented a round from starting, if any.
func (m Model) Err() error {
	return m.fatal
}

// Confirming reports whether the exit dialog is open.
func (m Model) Confirming() bool {
	return m.confirmQuit
}

// IsQuitting returns true if user requested to quit.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// Rounds returns how many rounds have been started.
func (m Model) Rounds() int {
	return m.rounds
}

// Run starts the Bubble Tea program for the play screen.
func Run(newRound RoundFactory, store *storage.Store, logger *log.Logger) error {
	model := NewModel(newRound, store, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
