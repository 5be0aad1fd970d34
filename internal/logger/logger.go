// Package logger is the leveled stderr logger shared by the CLI and the
// fetch pipeline. Network failures are reported here rather than
// propagated, so the level gate is the only switch a user needs.
package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"sync"
)

// Level orders log severities from most to least verbose.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	}
	return "UNKNOWN"
}

var (
	mu       sync.Mutex
	minLevel = LevelInfo
	out      = log.New(os.Stderr, "", log.LstdFlags)
)

// SetLevel sets the minimum severity that gets written.
func SetLevel(l Level) {
	mu.Lock()
	defer mu.Unlock()
	minLevel = l
}

// SetOutput redirects log output. Tests use this to capture messages.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	out = log.New(w, "", log.LstdFlags)
}

// Debug logs developer detail, such as hit counts and query
// translations.
func Debug(format string, v ...any) { write(LevelDebug, format, v...) }

// Info logs user-facing progress, such as where results were saved.
func Info(format string, v ...any) { write(LevelInfo, format, v...) }

// Warn logs recoverable oddities in responses.
func Warn(format string, v ...any) { write(LevelWarn, format, v...) }

// Error logs failures that were absorbed into an empty result.
func Error(format string, v ...any) { write(LevelError, format, v...) }

func write(l Level, format string, v ...any) {
	mu.Lock()
	defer mu.Unlock()
	if l < minLevel {
		return
	}
	out.Printf("[%s] %s", l, fmt.Sprintf(format, v...))
}
