package tui

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229")).
			MarginBottom(1)

	gallowsStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 2)

	panelStyle = lipgloss.NewStyle().
			Padding(0, 2)

	wordStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	wrongStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9"))

	subtleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	messageStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("6")).
			Italic(true)

	wonStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("10"))

	lostStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("9"))

	dialogStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("208")).
			Padding(1, 3)

	selectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229"))
)

// spaced separates display characters so placeholders stay readable.
// Whitespace in the phrase becomes a wider gap between words.
func spaced(display string) string {
	var b strings.Builder
	for i, r := range []rune(display) {
		if i > 0 {
			b.WriteRune(' ')
		}
		if unicode.IsSpace(r) {
			b.WriteString("  ")
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// letterList renders letters as "A B C", or a dash when empty.
func letterList(letters []rune) string {
	if len(letters) == 0 {
		return "-"
	}
	return spaced(string(letters))
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// centerBlock centers a multi-line block in the available space.
func centerBlock(block string, width, height int) string {
	if width <= 0 || height <= 0 {
		return block
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, block)
}
