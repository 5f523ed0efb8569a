// Package storage provides SQLite-based persistence for finished rounds.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-hangman/internal/config"
	"github.com/vovakirdan/tui-hangman/internal/hangman"
)

const sqliteTimeLayout = "2006-01-02 15:04:05"

// Store manages the SQLite database connection for round history.
type Store struct {
	db *sql.DB
}

// RoundResult is the record of a round that reached Won or Lost.
type RoundResult struct {
	ID               int64
	RoundID          string
	Phrase           string
	Difficulty       hangman.Difficulty
	Won              bool
	IncorrectGuesses int
	Guesses          string // distinct guesses in order
	CreatedAt        time.Time
}

// ResultFromSnapshot builds a record from the final snapshot of a round.
func ResultFromSnapshot(s hangman.Snapshot) RoundResult {
	return RoundResult{
		Phrase:           s.Phrase,
		Difficulty:       s.Difficulty,
		Won:              s.Won,
		IncorrectGuesses: s.IncorrectGuesses,
		Guesses:          s.Guessed,
	}
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	dbPath, err := config.ExpandHome(dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: %w", err)
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS rounds (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			round_id TEXT NOT NULL UNIQUE,
			phrase TEXT NOT NULL,
			difficulty INTEGER NOT NULL,
			won INTEGER NOT NULL,
			incorrect_guesses INTEGER NOT NULL DEFAULT 0,
			guesses TEXT NOT NULL DEFAULT '',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_rounds_difficulty ON rounds(difficulty);
		CREATE INDEX IF NOT EXISTS idx_rounds_created ON rounds(created_at DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRound records a finished round and returns the inserted row ID.
// An empty RoundID is filled with a fresh UUID; a zero CreatedAt uses now.
func (s *Store) SaveRound(r RoundResult) (int64, error) {
	if r.RoundID == "" {
		r.RoundID = uuid.NewString()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now()
	}

	result, err := s.db.Exec(
		`INSERT INTO rounds (round_id, phrase, difficulty, won, incorrect_guesses, guesses, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.RoundID, r.Phrase, int(r.Difficulty), r.Won, r.IncorrectGuesses, r.Guesses,
		r.CreatedAt.UTC().Format(sqliteTimeLayout),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save round: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentRounds returns the most recent rounds across all difficulties.
func (s *Store) RecentRounds(limit int) ([]RoundResult, error) {
	return s.RecentRoundsByDifficulty(hangman.DifficultyUnset, limit)
}

// RecentRoundsByDifficulty returns the most recent rounds, newest first.
// DifficultyUnset means every difficulty.
func (s *Store) RecentRoundsByDifficulty(d hangman.Difficulty, limit int) ([]RoundResult, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, round_id, phrase, difficulty, won, incorrect_guesses, guesses, created_at
		 FROM rounds
		 WHERE ? = 0 OR difficulty = ?
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		int(d), int(d), limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query rounds: %w", err)
	}
	defer rows.Close()

	var results []RoundResult
	for rows.Next() {
		var r RoundResult
		var difficulty int
		var createdAt any
		if err := rows.Scan(&r.ID, &r.RoundID, &r.Phrase, &difficulty, &r.Won,
			&r.IncorrectGuesses, &r.Guesses, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Difficulty = hangman.Difficulty(difficulty)
		r.CreatedAt = parseTime(createdAt)
		results = append(results, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return results, nil
}

// ClearRounds deletes the whole history.
func (s *Store) ClearRounds() error {
	if _, err := s.db.Exec("DELETE FROM rounds"); err != nil {
		return fmt.Errorf("storage: cannot clear rounds: %w", err)
	}
	return nil
}

// parseTime handles both time.Time and string datetimes returned by the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(sqliteTimeLayout, t); err == nil {
			return parsed
		}
		if parsed, err := time.Parse(time.RFC3339, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
