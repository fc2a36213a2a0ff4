package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	slogmulti "github.com/samber/slog-multi"
)

// Options configures the logger of the storybook CLI.
type Options struct {
	// Level of the console handler: debug, info, warn or error.
	Level string
	// Format of the console handler: text or json.
	Format string
	// File receives debug level JSON logs in addition to the console if set.
	File string
}

// ParseLevel maps a level name to a slog.Level. An empty name means info.
func ParseLevel(name string) (slog.Level, error) {
	var level slog.Level
	if name == "" {
		return slog.LevelInfo, nil
	}
	if err := level.UnmarshalText([]byte(strings.ToUpper(name))); err != nil {
		return 0, fmt.Errorf("unknown log level %q", name)
	}
	return level, nil
}

// New builds a logger writing to console and optionally to a log file.
// The returned close function releases the log file and must be called on shutdown.
func New(console io.Writer, opts Options) (*slog.Logger, func() error, error) {
	level, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, nil, err
	}

	handlerOpts := &slog.HandlerOptions{Level: level}
	var consoleHandler slog.Handler
	switch opts.Format {
	case "", "text":
		consoleHandler = slog.NewTextHandler(console, handlerOpts)
	case "json":
		consoleHandler = slog.NewJSONHandler(console, handlerOpts)
	default:
		return nil, nil, fmt.Errorf("unknown log format %q", opts.Format)
	}

	if opts.File == "" {
		return slog.New(consoleHandler), func() error { return nil }, nil
	}

	f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}

	logger := slog.New(
		slogmulti.Fanout(
			consoleHandler,
			// Keep everything in the file for later inspection
			slog.NewJSONHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}),
		),
	)
	return logger, f.Close, nil
}
