package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Logger is the public logger instance accessible from all packages
var Logger = slog.New(slog.NewJSONHandler(io.Discard, nil))

// Options controls how Initialize builds the logger.
type Options struct {
	Debug bool
	Level string // debug, info, warn, error
	File  string // empty writes to Stderr
	// Stderr receives log lines when no file is configured.
	Stderr io.Writer
}

// Initialize sets up the logger. Without debug all logs are discarded.
// The returned closer releases the log file, if one was opened.
func Initialize(opts Options) (io.Closer, error) {
	if os.Getenv("GOBLIN_DEBUG") == "1" {
		opts.Debug = true
	}

	if !opts.Debug {
		Logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
		return nopCloser{}, nil
	}

	var (
		writer io.Writer = opts.Stderr
		closer io.Closer = nopCloser{}
		runID            = uuid.NewString()
	)
	if writer == nil {
		writer = os.Stderr
	}

	if opts.File != "" {
		if err := os.MkdirAll(filepath.Dir(opts.File), 0755); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}
		f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		writer = f
		closer = fileCloser{file: f, stderr: opts.Stderr, level: opts.Level, runID: runID}
	}

	Logger = newLogger(writer, opts.Level, runID)
	Logger.Debug("Debug logging initialized", "file", opts.File)

	return closer, nil
}

// ParseLevel converts a level name to slog.Level. Unknown names map to debug,
// since logging is only ever switched on for debugging.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelDebug
	}
}

// ValidLevel reports whether ParseLevel knows the name.
func ValidLevel(level string) bool {
	switch strings.ToLower(level) {
	case "", "debug", "info", "warn", "warning", "error":
		return true
	}
	return false
}

func newLogger(w io.Writer, level, runID string) *slog.Logger {
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: ParseLevel(level),
	})
	return slog.New(handler).With("run_id", runID)
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// fileCloser closes the log file and sends later records to stderr.
type fileCloser struct {
	file   *os.File
	stderr io.Writer
	level  string
	runID  string
}

func (c fileCloser) Close() error {
	w := c.stderr
	if w == nil {
		w = os.Stderr
	}
	Logger = newLogger(w, c.level, c.runID)
	return c.file.Close()
}
