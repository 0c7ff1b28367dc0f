// Package log configures the zerolog logger shared by uuidw.
package log

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Config holds logger configuration.
type Config struct {
	Level string
	// Output overrides the destination. Nil means a console writer on stderr.
	Output io.Writer
}

var (
	mu     sync.RWMutex
	global = zerolog.New(io.Discard)
)

// New creates a configured zerolog.Logger.
func New(cfg Config) zerolog.Logger {
	w := cfg.Output
	if w == nil {
		w = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
	}
	return zerolog.New(w).Level(ParseLevel(cfg.Level)).With().Timestamp().Logger()
}

// Init replaces the global logger.
func Init(cfg Config) {
	logger := New(cfg)
	mu.Lock()
	global = logger
	mu.Unlock()
}

// L returns the global logger.
func L() *zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	l := global
	return &l
}

// OpenFile returns a JSON writer appending to path, for use while a TUI owns
// the terminal. An empty path discards output.
func OpenFile(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{io.Discard}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return f, nil
}

// ParseLevel maps a level name to a zerolog level, defaulting to warn.
func ParseLevel(s string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "error":
		return zerolog.ErrorLevel
	case "disabled", "off":
		return zerolog.Disabled
	default:
		return zerolog.WarnLevel
	}
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }
