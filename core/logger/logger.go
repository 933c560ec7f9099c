// Package logger is the shell's operational log. It writes JSON records to
// app.log inside the configuration directory so the interactive stdout stays
// clean for the user.
package logger

import (
	"io"
	"log/slog"

	"github.com/octanesh/octane/core/config"
)

// New opens the app log and returns a logger writing to it. The caller owns
// the returned closer.
func New(cfg *config.Configuration) (*slog.Logger, io.Closer, error) {
	fd, err := cfg.OpenAppLog()
	if err != nil {
		return nil, nil, err
	}

	handler := slog.NewJSONHandler(fd, &slog.HandlerOptions{
		Level: Level(cfg.LogLevel),
	})

	return slog.New(handler), fd, nil
}

// Level maps a config log level to a slog level, defaulting to INFO.
func Level(level string) slog.Level {
	switch level {
	case "DEBUG":
		return slog.LevelDebug
	case "WARN":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Discard returns a logger that drops everything, for tests and tools that
// don't want an app log.
func Discard() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}
