package tui

import (
	"strings"

	"github.com/vovakirdan/tui-hangman/internal/hangman"
)

const (
	gallowsW = 9
	gallowsH = 7
)

type cell struct {
	x, y int
	r    rune
}

// gallowsParts are drawn in order, one group per stage.
var gallowsParts = [][]cell{
	{{0, 6, '='}, {1, 6, '='}, {2, 6, '='}, {3, 6, '='}, {4, 6, '='}, {5, 6, '='}, {6, 6, '='}, {7, 6, '='}, {8, 6, '='}}, // base
	{{6, 1, '|'}, {6, 2, '|'}, {6, 3, '|'}, {6, 4, '|'}, {6, 5, '|'}},                                                 // pole
	{{2, 0, '+'}, {3, 0, '-'}, {4, 0, '-'}, {5, 0, '-'}, {6, 0, '+'}},                                                 // beam
	{{2, 1, '|'}},  // rope
	{{2, 2, 'O'}},  // head
	{{2, 3, '|'}},  // body
	{{1, 3, '/'}},  // left arm
	{{3, 3, '\\'}}, // right arm
	{{1, 4, '/'}},  // left leg
	{{3, 4, '\\'}}, // right leg
}

// GallowsStages is the number of drawable parts.
var GallowsStages = len(gallowsParts)

// GallowsStage maps a mistake count onto the drawing so that the figure is
// complete exactly when the difficulty limit is reached.
func GallowsStage(incorrect int, d hangman.Difficulty) int {
	if d == hangman.DifficultyUnset {
		d = hangman.DifficultyNormal
	}
	if incorrect <= 0 {
		return 0
	}
	if incorrect >= int(d) {
		return GallowsStages
	}
	return incorrect * GallowsStages / int(d)
}

// RenderGallows draws the first stage parts as a fixed-size block.
func RenderGallows(stage int) string {
	grid := make([][]rune, gallowsH)
	for y := range grid {
		grid[y] = []rune(strings.Repeat(" ", gallowsW))
	}

	stage = min(max(stage, 0), GallowsStages)
	for _, part := range gallowsParts[:stage] {
		for _, c := range part {
			grid[c.y][c.x] = c.r
		}
	}

	lines := make([]string, gallowsH)
	for y, row := range grid {
		lines[y] = string(row)
	}
	return strings.Join(lines, "\n")
}
