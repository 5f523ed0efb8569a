package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-hangman/internal/hangman"
	"github.com/vovakirdan/tui-hangman/internal/storage"
)

// Scoreboard layout constants
const (
	maxRounds     = 100 // Max rounds to load
	tableMinWidth = 50
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up         key.Binding
	Down       key.Binding
	NextFilter key.Binding
	PrevFilter key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextFilter, k.PrevFilter, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.NextFilter, k.PrevFilter, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextFilter: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next difficulty"),
		),
		PrevFilter: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev difficulty"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// scoreboardFilters lists the filter tabs; DifficultyUnset shows everything.
func scoreboardFilters() []hangman.Difficulty {
	return append([]hangman.Difficulty{hangman.DifficultyUnset}, hangman.Difficulties()...)
}

// filterTitle names a filter tab.
func filterTitle(d hangman.Difficulty) string {
	if d == hangman.DifficultyUnset {
		return "all"
	}
	return d.String()
}

// ScoreboardModel is the Bubble Tea model for round history.
type ScoreboardModel struct {
	filters  []hangman.Difficulty
	cursor   int // index into filters
	store    *storage.Store
	rounds   []storage.RoundResult
	stats    *storage.Stats
	loadErr  error
	table    table.Model
	help     help.Model
	keys     ScoreboardKeyMap
	width    int
	height   int
	quitting bool
}

// NewScoreboardModel creates a scoreboard starting on the given filter.
func NewScoreboardModel(store *storage.Store, filter hangman.Difficulty, width, height int) ScoreboardModel {
	h := help.New()
	h.ShowAll = false

	m := ScoreboardModel{
		filters: scoreboardFilters(),
		store:   store,
		keys:    DefaultScoreboardKeyMap(),
		help:    h,
		width:   width,
		height:  height,
	}
	for i, d := range m.filters {
		if d == filter {
			m.cursor = i
		}
	}

	m.table = m.createTable()
	m.load()

	return m
}

// createTable creates a new table with appropriate columns.
func (m *ScoreboardModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "When", Width: 13},
		{Title: "Word", Width: 12},
		{Title: "Level", Width: 10},
		{Title: "Result", Width: 6},
		{Title: "Misses", Width: 6},
	}

	// Give the word column any spare width
	tableWidth := max(m.width-6, tableMinWidth)
	used := 0
	for _, c := range columns {
		used += c.Width + 2
	}
	if extra := tableWidth - used; extra > 0 {
		columns[1].Width += min(extra, 20)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-10, 5)), // Leave room for header, stats and help
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// load reads rounds and stats for the current filter.
func (m *ScoreboardModel) load() {
	m.rounds, m.stats, m.loadErr = nil, nil, nil
	if m.store != nil {
		d := m.Filter()
		m.rounds, m.loadErr = m.store.RecentRoundsByDifficulty(d, maxRounds)
		if m.loadErr == nil {
			m.stats, m.loadErr = m.store.Stats(d)
		}
	}
	m.updateTableRows()
}

// updateTableRows updates the table with the loaded rounds.
func (m *ScoreboardModel) updateTableRows() {
	rows := make([]table.Row, len(m.rounds))
	for i, r := range m.rounds {
		result := "lost"
		if r.Won {
			result = "won"
		}
		rows[i] = table.Row{
			r.CreatedAt.Local().Format("Jan 02 15:04"),
			r.Phrase,
			r.Difficulty.String(),
			result,
			fmt.Sprintf("%d", r.IncorrectGuesses),
		}
	}
	m.table.SetRows(rows)

	// Reset cursor to top
	m.table.GotoTop()
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextFilter):
			m.cursor = (m.cursor + 1) % len(m.filters)
			m.load()
			return m, nil

		case key.Matches(msg, m.keys.PrevFilter):
			m.cursor = (m.cursor - 1 + len(m.filters)) % len(m.filters)
			m.load()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	// Pass other messages to table for scrolling
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render(centerText("ROUND HISTORY", m.width)))
	b.WriteString("\n")
	b.WriteString(centerText(m.renderTabs(), m.width))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(tableStyle.Render(m.renderTableContent()))
	b.WriteString("\n")
	b.WriteString(m.renderStats())
	b.WriteString("\n\n")

	b.WriteString(subtleStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderTabs renders the difficulty filter tabs.
func (m ScoreboardModel) renderTabs() string {
	activeTabStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Padding(0, 1)

	tabs := make([]string, len(m.filters))
	for i, d := range m.filters {
		if i == m.cursor {
			tabs[i] = activeTabStyle.Render(filterTitle(d))
		} else {
			tabs[i] = subtleStyle.Render(" " + filterTitle(d) + " ")
		}
	}
	return strings.Join(tabs, " ")
}

// renderTableContent renders the table or empty message.
func (m ScoreboardModel) renderTableContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)

	if m.loadErr != nil {
		return emptyStyle.Render("Cannot load history:\n" + m.loadErr.Error())
	}
	if len(m.rounds) == 0 {
		return emptyStyle.Render("No rounds recorded yet.\nFinish a round to see it here!")
	}

	return m.table.View()
}

// renderStats renders the summary line for the current filter.
func (m ScoreboardModel) renderStats() string {
	if m.stats == nil || m.stats.Played == 0 {
		return ""
	}
	return subtleStyle.Render(FormatStats(m.stats))
}

// FormatStats renders stats as a single summary line.
func FormatStats(s *storage.Stats) string {
	return fmt.Sprintf("played %d  won %d  lost %d  win rate %.0f%%  avg misses %.1f  streak %d (best %d)",
		s.Played, s.Won, s.Lost, s.WinRate()*100, s.AvgIncorrect, s.CurrentStreak, s.BestStreak)
}

// Filter returns the difficulty currently shown.
func (m ScoreboardModel) Filter() hangman.Difficulty {
	return m.filters[m.cursor]
}

// Rounds returns the rounds currently listed.
func (m ScoreboardModel) Rounds() []storage.RoundResult {
	return m.rounds
}

// IsQuitting returns true if user wants to quit.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard screen.
func RunScoreboard(store *storage.Store, filter hangman.Difficulty, width, height int) error {
	p := tea.NewProgram(
		NewScoreboardModel(store, filter, width, height),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
