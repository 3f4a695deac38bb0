// Package logging routes the process's slog output to a log file.
//
// The terminal belongs to the UI, so nothing is ever written to stderr once
// Configure succeeds.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

const defaultLogFile = "selmenu.log"

var (
	mu           sync.Mutex
	level        = new(slog.LevelVar)
	baseLevel    = slog.LevelInfo
	traceEnabled bool
	logger       = slog.New(slog.NewTextHandler(io.Discard, nil))
	out          io.Closer
)

// ParseLevel maps debug, info, warn and error to slog levels. Empty is info.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("invalid log level: %s", s)
	}
}

// Configure opens path in append mode, creating missing directories, and
// installs a text handler on it as the slog default. An empty path uses
// selmenu.log in the working directory. A previously configured file is
// closed.
func Configure(path string, lvl slog.Level) (*slog.Logger, error) {
	if strings.TrimSpace(path) == "" {
		path = defaultLogFile
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file %s: %w", path, err)
	}

	mu.Lock()
	defer mu.Unlock()
	if out != nil {
		_ = out.Close()
	}
	out = f
	baseLevel = lvl
	applyLevelLocked()
	logger = slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return logger, nil
}

// Close releases the log file. Later records are discarded.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	if out == nil {
		return nil
	}
	err := out.Close()
	out = nil
	return err
}

// Logger returns the configured logger.
func Logger() *slog.Logger {
	mu.Lock()
	defer mu.Unlock()
	return logger
}

// SetTraceEnabled toggles debug records regardless of the configured level.
func SetTraceEnabled(enabled bool) {
	mu.Lock()
	traceEnabled = enabled
	applyLevelLocked()
	mu.Unlock()
}

func TraceEnabled() bool {
	mu.Lock()
	defer mu.Unlock()
	return traceEnabled
}

// Trace writes a debug record for event when tracing is enabled.
func Trace(event string, args ...any) {
	if !TraceEnabled() {
		return
	}
	Logger().Debug(event, args...)
}

func applyLevelLocked() {
	if traceEnabled {
		level.Set(slog.LevelDebug)
		return
	}
	level.Set(baseLevel)
}
