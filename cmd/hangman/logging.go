package main

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-hangman/internal/config"
)

// newLogger returns a logger writing to stderr.
func newLogger(cfg config.Config) *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "hangman",
		Level:           cfg.ParsedLogLevel(),
	})
}

// newFileLogger returns a logger for full-screen programs, which cannot share
// the terminal with log output. Logs go to cfg.LogFile, or nowhere when the
// file is unset or cannot be opened. The returned func closes the file.
func newFileLogger(cfg config.Config) (*log.Logger, func()) {
	var w io.Writer = io.Discard
	closeFn := func() {}

	if path, err := config.ExpandHome(cfg.LogFile); err == nil && path != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err == nil {
			f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
			if err == nil {
				w = f
				closeFn = func() { f.Close() }
			}
		}
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "hangman",
		Level:           cfg.ParsedLogLevel(),
	})
	return logger, closeFn
}
