// Package logging configures colored structured logging with tint.
//
// The interactive shell owns stdout, so logs go to stderr by default or to a
// file when one is configured. File output disables colors.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

// Setup builds the application logger. When filePath is non-empty the log
// stream is appended to that file and the returned closer must be called on
// shutdown; otherwise the stream goes to stderr and the closer is a no-op.
func Setup(level, filePath string) (*slog.Logger, func() error, error) {
	var (
		out     io.Writer = os.Stderr
		noColor bool
		closer  = func() error { return nil }
	)
	if filePath != "" {
		f, err := os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, err
		}
		out = f
		noColor = true
		closer = f.Close
	}

	logger := slog.New(
		tint.NewHandler(out, &tint.Options{
			Level:      parseLevel(level),
			TimeFormat: time.Kitchen,
			NoColor:    noColor,
		}),
	)
	slog.SetDefault(logger)
	return logger, closer, nil
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
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
