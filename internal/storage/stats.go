package storage

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-hangman/internal/hangman"
)

// Stats contains aggregated results for one difficulty, or all of them.
type Stats struct {
	Difficulty    hangman.Difficulty // DifficultyUnset means all
	Played        int
	Won           int
	Lost          int
	AvgIncorrect  float64
	CurrentStreak int // consecutive wins ending with the latest round
	BestStreak    int
	LastPlayed    time.Time
}

// WinRate returns the fraction of rounds won in [0, 1].
func (s Stats) WinRate() float64 {
	if s.Played == 0 {
		return 0
	}
	return float64(s.Won) / float64(s.Played)
}

// Stats aggregates history for d. DifficultyUnset covers every difficulty.
func (s *Store) Stats(d hangman.Difficulty) (*Stats, error) {
	stats := &Stats{Difficulty: d}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(SUM(won), 0), COALESCE(AVG(incorrect_guesses), 0)
		 FROM rounds WHERE ? = 0 OR difficulty = ?`,
		int(d), int(d),
	).Scan(&stats.Played, &stats.Won, &stats.AvgIncorrect)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}
	stats.Lost = stats.Played - stats.Won

	// Streaks need the outcome sequence in play order
	rows, err := s.db.Query(
		`SELECT won, created_at FROM rounds
		 WHERE ? = 0 OR difficulty = ?
		 ORDER BY created_at ASC, id ASC`,
		int(d), int(d),
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query streaks: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var won bool
		var createdAt any
		if err := rows.Scan(&won, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan streak row: %w", err)
		}
		if won {
			stats.CurrentStreak++
			stats.BestStreak = max(stats.BestStreak, stats.CurrentStreak)
		} else {
			stats.CurrentStreak = 0
		}
		stats.LastPlayed = parseTime(createdAt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}

// AllStats returns stats for every selectable difficulty, keyed by difficulty.
func (s *Store) AllStats() (map[hangman.Difficulty]*Stats, error) {
	out := make(map[hangman.Difficulty]*Stats)
	for _, d := range hangman.Difficulties() {
		st, err := s.Stats(d)
		if err != nil {
			return nil, err
		}
		out[d] = st
	}
	return out, nil
}
