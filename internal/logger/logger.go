// Package logger prints diagnostics for podreport. Nothing is written
// unless verbose mode is on (the --verbose flag), in which case
// comparison results, page breaks and section placements go to stderr.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// Level tags a log line.
type Level string

// Log levels.
const (
	LevelDebug Level = "DEBUG"
	LevelInfo  Level = "INFO"
	LevelWarn  Level = "WARN"
)

var (
	mu      sync.RWMutex
	verbose bool
	output  io.Writer = os.Stderr
)

// SetVerbose enables or disables verbose logging.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
}

// IsVerbose returns true if verbose mode is enabled.
func IsVerbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return verbose
}

// SetOutput redirects log lines. Defaults to os.Stderr.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
}

// logf holds the write lock so concurrent lines never interleave.
func logf(level Level, format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()
	if !verbose {
		return
	}
	fmt.Fprintf(output, "[%s] %s\n", level, fmt.Sprintf(format, args...))
}

// Debug logs layout and comparison detail.
func Debug(format string, args ...any) { logf(LevelDebug, format, args...) }

// Info logs a completed step, e.g. a composed or written report.
func Info(format string, args ...any) { logf(LevelInfo, format, args...) }

// Warn logs a recoverable problem, e.g. an unreadable config value.
func Warn(format string, args ...any) { logf(LevelWarn, format, args...) }

// Section starts a named block of log lines.
func Section(name string) {
	mu.Lock()
	defer mu.Unlock()
	if verbose {
		fmt.Fprintf(output, "\n=== %s ===\n", name)
	}
}
