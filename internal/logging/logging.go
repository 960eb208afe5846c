// Package logging sets up the application logger. The TUI owns the
// terminal, so logs go to a file.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
)

func init() {
	zerolog.TimeFieldFormat = time.RFC3339
}

// Setup initializes a zerolog logger writing to the file at path.
//   - path: log file location; empty disables logging entirely
//   - level: log level string (trace, debug, info, warn, error)
//
// Returns the logger and a close function for the underlying file.
func Setup(path, level string) (zerolog.Logger, func(), error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}

	if path == "" {
		return zerolog.New(io.Discard).Level(zerolog.Disabled), func() {}, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return zerolog.Logger{}, nil, fmt.Errorf("create log dir: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return zerolog.Logger{}, nil, fmt.Errorf("open log file: %w", err)
	}

	log := zerolog.New(f).
		Level(lvl).
		With().
		Timestamp().
		Logger()

	return log, func() { f.Close() }, nil
}

// DefaultLogPath resolves the log file location:
// 1. PHYSIQ_LOG environment variable
// 2. $XDG_STATE_HOME/physiq/physiq.log
// 3. ~/.local/state/physiq/physiq.log
func DefaultLogPath() string {
	if p := os.Getenv("PHYSIQ_LOG"); p != "" {
		return p
	}

	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		stateHome = filepath.Join(home, ".local", "state")
	}

	return filepath.Join(stateHome, "physiq", "physiq.log")
}
