package logger

import (
	"log/slog"
	"os"
)

// Initialize installs the process-wide logger used by CLI commands. Logs go
// to stderr so command output on stdout stays machine-readable.
func Initialize(level slog.Level) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))

	slog.SetDefault(logger)
}
