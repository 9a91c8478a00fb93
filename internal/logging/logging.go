// Package logging builds the slog loggers used by tuix.
//
// The terminal owns stdout and stderr while a UI is showing, so logs go to
// a file. When neither a --log-file flag nor the TUIX_DEBUG environment
// variable names one, logging is a no-op.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// EnvVar names the environment variable holding a debug log path.
const EnvVar = "TUIX_DEBUG"

// New creates a text logger writing to w. The "error" key is renamed to
// "err" so both spellings read the same in the log.
func New(w io.Writer, level slog.Leveler) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == "error" {
				a.Key = "err"
			}
			return a
		},
	}))
}

// NewNop returns a logger that discards everything.
func NewNop() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// Open appends to the log file at path, creating it and its directory.
// The returned closer closes the file.
func Open(path string, level slog.Leveler) (*slog.Logger, io.Closer, error) {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, fmt.Errorf("create log directory: %w", err)
		}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return New(f, level), f, nil
}

// Setup picks the log destination: path if set, then $TUIX_DEBUG, else a
// no-op logger. A debug path from the environment logs at debug level.
func Setup(path string, level slog.Leveler) (*slog.Logger, io.Closer, error) {
	if path == "" {
		path = os.Getenv(EnvVar)
		if path != "" {
			level = slog.LevelDebug
		}
	}
	if path == "" {
		return NewNop(), io.NopCloser(nil), nil
	}
	return Open(path, level)
}

// ParseLevel maps debug, info, warn and error to slog levels.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
}
