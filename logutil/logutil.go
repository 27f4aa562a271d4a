package logutil

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
)

// EnvDebug enables debug logging when set to "true" or "1".
const EnvDebug = "DOCSFORGE_DEBUG"

var (
	mu           sync.RWMutex
	logger       *slog.Logger
	debugEnabled bool
)

func init() {
	Setup(false)
}

// Setup configures the process-wide logger. When debug is true, debug-level
// messages are emitted. The logger writes text-formatted output to stderr.
// Safe for concurrent use.
func Setup(debug bool) {
	SetupWithWriter(os.Stderr, debug)
}

// SetupWithWriter configures the logger with a custom writer, which tests use
// to capture output. Safe for concurrent use.
func SetupWithWriter(w io.Writer, debug bool) {
	mu.Lock()
	defer mu.Unlock()

	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	debugEnabled = debug
	logger = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// IsDebugEnabled reports whether debug logging is on, either via Setup or the
// DOCSFORGE_DEBUG environment variable.
func IsDebugEnabled() bool {
	mu.RLock()
	enabled := debugEnabled
	mu.RUnlock()
	if enabled {
		return true
	}
	v := os.Getenv(EnvDebug)
	return v == "true" || v == "1"
}

// Debugf logs a formatted debug message. Emitted only when debug is enabled.
func Debugf(format string, args ...any) {
	if !IsDebugEnabled() {
		return
	}
	mu.RLock()
	l := logger
	mu.RUnlock()
	l.Debug(fmt.Sprintf(format, args...))
}

// Warnf logs a formatted warning message.
func Warnf(format string, args ...any) {
	mu.RLock()
	l := logger
	mu.RUnlock()
	l.Warn(fmt.Sprintf(format, args...))
}
