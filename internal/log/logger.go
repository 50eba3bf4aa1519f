// Package log provides the leveled logger shared by the CLI and HTTP server.
package log

import (
	"io"
	"log"
	"os"
	"strings"

	"github.com/fatih/color"
)

// Level orders log verbosity.
type Level string

const (
	LevelDebug Level = "debug"
	LevelInfo  Level = "info"
	LevelError Level = "error"
)

// ParseLevel maps a level name to a Level, defaulting to info.
func ParseLevel(level string) Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return LevelDebug
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

// Logger writes printf-style messages per level.
type Logger struct {
	level       Level
	debugLogger *log.Logger
	infoLogger  *log.Logger
	errorLogger *log.Logger
}

// Options configures New.
type Options struct {
	Level string
	Out   io.Writer
	Err   io.Writer
	Color bool
}

// New builds a logger. Info and debug go to Out (default stdout), errors to
// Err (default stderr).
func New(opts Options) *Logger {
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	errOut := opts.Err
	if errOut == nil {
		errOut = os.Stderr
	}
	flags := log.Ldate | log.Ltime

	return &Logger{
		level:       ParseLevel(opts.Level),
		debugLogger: log.New(out, prefix("DEBUG: ", color.FgCyan, opts.Color), flags),
		infoLogger:  log.New(out, prefix("INFO: ", color.FgGreen, opts.Color), flags),
		errorLogger: log.New(errOut, prefix("ERROR: ", color.FgRed, opts.Color), flags),
	}
}

// NewDiscard returns a logger that drops everything.
func NewDiscard() *Logger {
	return &Logger{
		level:       LevelError,
		debugLogger: log.New(io.Discard, "", 0),
		infoLogger:  log.New(io.Discard, "", 0),
		errorLogger: log.New(io.Discard, "", 0),
	}
}

func prefix(p string, attr color.Attribute, enabled bool) string {
	if !enabled {
		return p
	}
	c := color.New(attr, color.Bold)
	c.EnableColor()
	return c.Sprint(p)
}

// Level returns the active level.
func (l *Logger) Level() Level {
	return l.level
}

// Debug logs only at debug level.
func (l *Logger) Debug(format string, v ...any) {
	if l.level != LevelDebug {
		return
	}
	l.debugLogger.Printf(format, v...)
}

// Info logs unless the level is error.
func (l *Logger) Info(format string, v ...any) {
	if l.level == LevelError {
		return
	}
	l.infoLogger.Printf(format, v...)
}

// Error always logs.
func (l *Logger) Error(format string, v ...any) {
	l.errorLogger.Printf(format, v...)
}
