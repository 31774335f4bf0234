package util

import (
	"io"
	"log/slog"
	"os"
)

// ParseLogLevel maps debug|info|warn|error to a slog level, defaulting to info
func ParseLogLevel(logLevel string) slog.Level {
	switch logLevel {
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

// InitLogger builds the text logger used across the module and installs it as default
func InitLogger(logLevel string, module string) *slog.Logger {
	logger := NewLogger(os.Stdout, logLevel, module)
	slog.SetDefault(logger)
	return logger
}

func NewLogger(w io.Writer, logLevel string, module string) *slog.Logger {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: ParseLogLevel(logLevel),
	})
	return slog.New(handler).With("module", module)
}

// DiscardLogger is used when a caller passes no logger
func DiscardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
