// Package logging configures structured logging for the npuzzle CLI.
//
// It is a thin layer over the standard library slog package: stderr output
// by default (the solver's report goes to stdout, so logs must not), text
// format for humans or JSON for machines, and an optional quiet mode that
// discards everything.
package logging

import (
	"io"
	"log/slog"
	"os"
)

// Level represents log severity, ordered Debug < Info < Warn < Error.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) toSlogLevel() slog.Level {
	switch l {
	case LevelDebug:
		return slog.LevelDebug
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Config configures the logger. The zero value writes Info and above to
// stderr in text format.
type Config struct {
	// Level is the minimum severity emitted.
	Level Level
	// JSON switches output to one JSON object per line.
	JSON bool
	// Quiet discards all log output.
	Quiet bool
}

// New builds a slog.Logger for the given config.
func New(config Config) *slog.Logger {
	if config.Quiet {
		return slog.New(slog.DiscardHandler)
	}
	var sink io.Writer = os.Stderr
	handlerOptions := &slog.HandlerOptions{Level: config.Level.toSlogLevel()}
	if config.JSON {
		return slog.New(slog.NewJSONHandler(sink, handlerOptions))
	}
	return slog.New(slog.NewTextHandler(sink, handlerOptions))
}

// Default returns the zero-config logger: Info level, text, stderr.
func Default() *slog.Logger {
	return New(Config{})
}
