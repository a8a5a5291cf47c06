package logging

import (
	"io"
	"log/slog"
	"os"
)

var (
	level = new(slog.LevelVar)

	// Logger is the structured logger behind Debug, Warn and ForConfig.
	Logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	// Verbose is true when Setup enabled debug output.
	Verbose bool
)

// Setup selects the handler and level. Debug records are only written when
// verbose is set; jsonOutput switches from logfmt-style text to JSON. A nil
// w writes to stderr.
func Setup(verbose, jsonOutput bool, w io.Writer) {
	Verbose = verbose
	if verbose {
		level.Set(slog.LevelDebug)
	} else {
		level.Set(slog.LevelInfo)
	}

	if w == nil {
		w = os.Stderr
	}
	opts := &slog.HandlerOptions{Level: level}
	if jsonOutput {
		Logger = slog.New(slog.NewJSONHandler(w, opts))
		return
	}
	Logger = slog.New(slog.NewTextHandler(w, opts))
}

// Subject is a container configuration as the logger sees it.
type Subject interface {
	Name() string
	Flavor() string
}

// ForConfig returns a logger whose records carry the config and flavor
// attributes of c.
func ForConfig(c Subject) *slog.Logger {
	return Logger.With("config", c.Name(), "flavor", c.Flavor())
}

// Debug logs a debug message
func Debug(msg string, args ...any) {
	Logger.Debug(msg, args...)
}

// Warn logs a warning message
func Warn(msg string, args ...any) {
	Logger.Warn(msg, args...)
}
