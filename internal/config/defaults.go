package config

import (
	_ "embed"
)

//go:embed defaults/hangman.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in configuration. It mirrors
// defaults/hangman.yaml and is used if the embedded file cannot be parsed.
func DefaultConfig() Config {
	return Config{
		Difficulty:  "",
		WordLength:  0,
		WordList:    "",
		Placeholder: "_",
		DBPath:      "~/.hangman/rounds.db",
		LogLevel:    "info",
		LogFile:     "~/.hangman/hangman.log",
	}
}
