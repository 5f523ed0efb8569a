package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-hangman/internal/hangman"
)

// MenuItem represents a selectable difficulty in the menu.
type MenuItem struct {
	Difficulty hangman.Difficulty
	Title      string
	Detail     string
}

// WordCounter reports how many words of a length are available.
type WordCounter interface {
	Count(length int) int
}

// MenuModel is the Bubble Tea model for the difficulty picker.
type MenuModel struct {
	items    []MenuItem
	cursor   int
	width    int
	height   int
	keys     MenuKeyMap
	help     help.Model
	quitting bool
	selected *MenuItem
}

// NewMenuModel creates a difficulty menu. When words is set, each entry
// shows how many words its implied length offers; wordLength overrides that
// length when positive.
func NewMenuModel(words WordCounter, wordLength int) MenuModel {
	items := make([]MenuItem, 0, len(hangman.Difficulties()))
	cursor := 0
	for i, d := range hangman.Difficulties() {
		item := MenuItem{
			Difficulty: d,
			Title:      strings.ToUpper(d.String()[:1]) + strings.ReplaceAll(d.String()[1:], "-", " "),
			Detail:     fmt.Sprintf("%d wrong guesses allowed", int(d)),
		}
		if words != nil {
			length := wordLength
			if length <= 0 {
				length = d.ImpliedWordLength()
			}
			item.Detail += fmt.Sprintf(", %d words of length %d", words.Count(length), length)
		}
		if d == hangman.DifficultyNormal {
			cursor = i
		}
		items = append(items, item)
	}

	return MenuModel{
		items:  items,
		cursor: cursor,
		keys:   DefaultMenuKeyMap(),
		help:   help.New(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Select):
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
			return m, tea.Quit // Exit menu to start the round
		}
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting || m.selected != nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("H A N G M A N"))
	b.WriteString("\n")
	b.WriteString("Choose a difficulty\n\n")

	for i, item := range m.items {
		cursor := "  "
		title := fmt.Sprintf("%-10s", item.Title)
		if i == m.cursor {
			cursor = "> "
			title = selectedStyle.Render(title)
		}
		b.WriteString(cursor + title + " " + subtleStyle.Render(item.Detail))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(subtleStyle.Render(m.help.View(m.keys)))

	return centerBlock(b.String(), m.width, m.height)
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// RunDifficultyMenu runs the menu. It returns DifficultyUnset when the user
// quits without choosing.
func RunDifficultyMenu(words WordCounter, wordLength int) (hangman.Difficulty, error) {
	p := tea.NewProgram(
		NewMenuModel(words, wordLength),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return hangman.DifficultyUnset, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok || m.Selected() == nil {
		return hangman.DifficultyUnset, nil
	}
	return m.Selected().Difficulty, nil
}
