package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync"
)

// LogLevel represents the logging verbosity level
type LogLevel int

const (
	LogLevelSilent  LogLevel = iota // Only errors
	LogLevelNormal                  // Basic progress info (default)
	LogLevelVerbose                 // Detailed operational info
	LogLevelDebug                   // Full diagnostic info
)

// String returns the string representation of the log level
func (l LogLevel) String() string {
	switch l {
	case LogLevelSilent:
		return "silent"
	case LogLevelNormal:
		return "normal"
	case LogLevelVerbose:
		return "verbose"
	case LogLevelDebug:
		return "debug"
	default:
		return "unknown"
	}
}

// ParseLogLevel parses a string into a LogLevel
func ParseLogLevel(s string) (LogLevel, error) {
	switch strings.ToLower(s) {
	case "silent":
		return LogLevelSilent, nil
	case "normal":
		return LogLevelNormal, nil
	case "verbose":
		return LogLevelVerbose, nil
	case "debug":
		return LogLevelDebug, nil
	default:
		return LogLevelNormal, fmt.Errorf("invalid log level: %s (valid: silent, normal, verbose, debug)", s)
	}
}

// Logger provides leveled logging on a single writer. All output goes to
// stderr in normal operation so the report itself can use stdout.
type Logger struct {
	mu    sync.Mutex
	level LogLevel
	out   *log.Logger
}

// NewLogger creates a logger writing to stderr at the given level.
func NewLogger(level LogLevel) *Logger {
	return NewLoggerTo(level, os.Stderr)
}

// NewLoggerTo creates a logger writing to an arbitrary writer. Tests use
// this to capture output.
func NewLoggerTo(level LogLevel, w io.Writer) *Logger {
	return &Logger{
		level: level,
		out:   log.New(w, "", log.LstdFlags),
	}
}

func (l *Logger) logf(min LogLevel, prefix, format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.level < min {
		return
	}
	l.out.Printf(prefix+format, args...)
}

// Error logs error messages (always visible, even in silent mode)
func (l *Logger) Error(format string, args ...interface{}) {
	l.logf(LogLevelSilent, "ERROR: ", format, args...)
}

// Info logs informational messages (visible in normal, verbose, debug)
func (l *Logger) Info(format string, args ...interface{}) {
	l.logf(LogLevelNormal, "", format, args...)
}

// Verbose logs detailed operational messages (visible in verbose, debug)
func (l *Logger) Verbose(format string, args ...interface{}) {
	l.logf(LogLevelVerbose, "VERBOSE: ", format, args...)
}

// Debug logs diagnostic messages (visible only in debug mode)
func (l *Logger) Debug(format string, args ...interface{}) {
	l.logf(LogLevelDebug, "DEBUG: ", format, args...)
}

// SetLevel updates the logging level dynamically
func (l *Logger) SetLevel(level LogLevel) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

// GetLevel returns the current log level
func (l *Logger) GetLevel() LogLevel {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.level
}

// logger is the process-wide logger. main replaces it once the configured
// level is known; tests replace it to silence or capture output.
var logger = NewLogger(LogLevelNormal)
