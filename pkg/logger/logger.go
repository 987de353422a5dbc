package logger

import (
	"io"
	"log/slog"
	"os"
)

// NOOPLogger discards everything. Used as the server default so tests stay quiet.
var NOOPLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// New returns a JSON logger writing to stdout. Level is one of DEBUG, INFO,
// WARN, ERROR; anything else falls back to INFO.
func New(level string) *slog.Logger {
	return NewWithWriter(os.Stdout, level)
}

func NewWithWriter(w io.Writer, level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}

	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: lvl}))
}
