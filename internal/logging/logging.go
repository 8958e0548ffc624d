// Package logging builds the log/slog logger used by the wordgrid CLI.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Options selects the handler, level and destination of a logger.
type Options struct {
	// Level is one of debug, info, warn, error (case-insensitive). Empty means info.
	Level string
	// Format is "text" (default) or "json".
	Format string
	// Output defaults to os.Stderr.
	Output io.Writer
}

// ParseLevel maps a level name to a slog.Level.
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
		return slog.LevelInfo, fmt.Errorf("logging: unknown level %q (want debug|info|warn|error)", s)
	}
}

// New returns a logger configured by opts.
func New(opts Options) (*slog.Logger, error) {
	lvl, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, err
	}
	out := opts.Output
	if out == nil {
		out = os.Stderr
	}
	hopts := &slog.HandlerOptions{Level: lvl}

	var h slog.Handler
	switch strings.ToLower(opts.Format) {
	case "", "text":
		h = slog.NewTextHandler(out, hopts)
	case "json":
		h = slog.NewJSONHandler(out, hopts)
	default:
		return nil, fmt.Errorf("logging: unknown format %q (want text|json)", opts.Format)
	}

	return slog.New(h), nil
}
