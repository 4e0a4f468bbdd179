// Package logger builds the slog loggers used by the calcpath CLI.
//
// Text output goes through the charmbracelet/log handler; JSON output
// uses slog's JSON handler.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	charmlog "github.com/charmbracelet/log"
)

type config struct {
	level   slog.Level
	json    bool
	source  bool
	writers []io.Writer
}

// New returns a logger writing to stderr at info level unless configured
// otherwise.
func New(opts ...Option) *slog.Logger {
	c := config{level: slog.LevelInfo, writers: []io.Writer{os.Stderr}}
	for _, opt := range opts {
		opt(&c)
	}

	w := io.MultiWriter(c.writers...)
	if c.json {
		return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
			Level:     c.level,
			AddSource: c.source,
		}))
	}

	h := charmlog.NewWithOptions(w, charmlog.Options{
		Level:           charmlog.Level(c.level),
		ReportTimestamp: true,
		ReportCaller:    c.source,
	})

	return slog.New(h)
}

// Nop returns a logger that discards everything.
func Nop() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// ParseLevel maps "debug", "info", "warn" and "error" onto slog levels.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("logger: unknown level %q", s)
	}
}
