// Package applog provides the structured logger used by the driver
// and benchmark harness. The core engine never logs; this is purely
// ambient infrastructure for the CLI (spec.md §1 treats logging as an
// external collaborator).
package applog

import (
	"log/slog"
	"os"
	"strings"
)

// Logger wraps slog.Logger the same way de-upayan-wordle-ai's backend
// logger does, but writes human-readable text to stderr instead of
// JSON: this is a terminal tool, not a service with log aggregation.
type Logger struct {
	*slog.Logger
}

// New creates a logger whose level is controlled by WORDLE_LOG_LEVEL
// (debug|info|warn|error, default info).
func New() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: levelFromEnv(),
	})
	return &Logger{slog.New(handler)}
}

func levelFromEnv() slog.Level {
	switch strings.ToLower(os.Getenv("WORDLE_LOG_LEVEL")) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// WithGame returns a logger tagged with the current game's starter
// and word length, mirroring WithTag's per-stream tagging but keyed
// to a game instead of an HTTP stream.
func (l *Logger) WithGame(starter byte, width int) *Logger {
	return &Logger{l.Logger.With("starter", string(starter), "width", width)}
}
