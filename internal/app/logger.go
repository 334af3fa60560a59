package app

import (
	"io"
	"log/slog"
)

// defaultLevel applies when the configured level is empty or unknown.
const defaultLevel = slog.LevelWarn

// newLogger creates an isolated slog.Logger writing to w. It never touches
// the global logger.
func newLogger(levelStr, formatStr string, w io.Writer) *slog.Logger {
	handlerOpts := &slog.HandlerOptions{Level: parseLevel(levelStr)}

	var handler slog.Handler
	if formatStr == "json" {
		handler = slog.NewJSONHandler(w, handlerOpts)
	} else {
		handler = slog.NewTextHandler(w, handlerOpts)
	}

	return slog.New(handler)
}

func parseLevel(s string) slog.Level {
	var level slog.Level
	if s == "" || level.UnmarshalText([]byte(s)) != nil {
		return defaultLevel
	}
	return level
}
