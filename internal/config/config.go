// Package config provides YAML-based configuration loading with environment
// overrides for the hangman program.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-hangman/internal/hangman"
)

// Config contains all user-tunable settings.
type Config struct {
	Difficulty  string `yaml:"difficulty" env:"DIFFICULTY"`
	WordLength  int    `yaml:"word_length" env:"WORD_LENGTH"`
	WordList    string `yaml:"word_list" env:"WORD_LIST"`
	Placeholder string `yaml:"placeholder" env:"PLACEHOLDER"`
	DBPath      string `yaml:"db_path" env:"DB"`
	LogLevel    string `yaml:"log_level" env:"LOG_LEVEL"`
	LogFile     string `yaml:"log_file" env:"LOG_FILE"`
}

var (
	ErrInvalidWordLength  = errors.New("config: word_length must not be negative")
	ErrInvalidPlaceholder = errors.New("config: placeholder must be a single visible character")
)

// Validate checks every field that has a restricted domain.
func (c Config) Validate() error {
	if _, err := hangman.ParseDifficulty(c.Difficulty); err != nil {
		return fmt.Errorf("config: difficulty: %w", err)
	}
	if c.WordLength < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidWordLength, c.WordLength)
	}
	if c.Placeholder != "" {
		r, size := utf8.DecodeRuneInString(c.Placeholder)
		if size != len(c.Placeholder) || r == utf8.RuneError || unicode.IsSpace(r) || !unicode.IsPrint(r) {
			return fmt.Errorf("%w: %q", ErrInvalidPlaceholder, c.Placeholder)
		}
	}
	if c.LogLevel != "" {
		if _, err := log.ParseLevel(c.LogLevel); err != nil {
			return fmt.Errorf("config: log_level: %w", err)
		}
	}
	return nil
}

// ParsedDifficulty returns the configured difficulty, or DifficultyUnset when
// the value is empty or invalid.
func (c Config) ParsedDifficulty() hangman.Difficulty {
	d, err := hangman.ParseDifficulty(c.Difficulty)
	if err != nil {
		return hangman.DifficultyUnset
	}
	return d
}

// PlaceholderRune returns the hidden-letter marker, defaulting to '_'.
func (c Config) PlaceholderRune() rune {
	if c.Placeholder == "" {
		return hangman.DefaultPlaceholder
	}
	r, _ := utf8.DecodeRuneInString(c.Placeholder)
	return r
}

// ParsedLogLevel returns the configured level, defaulting to info.
func (c Config) ParsedLogLevel() log.Level {
	lvl, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}

// ExpandHome replaces a leading "~" with the user's home directory.
func ExpandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("config: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}
