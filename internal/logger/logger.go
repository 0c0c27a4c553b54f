package logger

import (
	"log/slog"
	"os"
)

// New returns a JSON slog logger. Debug level outside production.
func New(isProduction bool) *slog.Logger {
	level := slog.LevelDebug
	if isProduction {
		level = slog.LevelInfo
	}
	h := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	return slog.New(h)
}
