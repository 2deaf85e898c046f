// Package logging provides the CLI logger and secret redaction helpers.
// Secret values never reach a log line; only lengths may be surfaced
// when diagnostics need them.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Logger writes user-facing status lines to stderr. Values registered
// with Protect are redacted from every line before it is written.
type Logger struct {
	out     io.Writer
	debug   bool
	noColor bool
	secrets []string
}

// New creates a logger. With debug false, Debug lines are dropped.
func New(debug, noColor bool) *Logger {
	return &Logger{out: os.Stderr, debug: debug, noColor: noColor}
}

// NewWithWriter creates a logger writing to out. Used by tests.
func NewWithWriter(out io.Writer, debug, noColor bool) *Logger {
	return &Logger{out: out, debug: debug, noColor: noColor}
}

// Protect registers secret values to strip from all future output.
// Commands call it as soon as a password is prompted or resolved, so a
// later format verb cannot leak it even by mistake.
func (l *Logger) Protect(values ...string) {
	l.secrets = append(l.secrets, values...)
}

func (l *Logger) emit(color, mark, format string, args ...interface{}) {
	msg := Redact(fmt.Sprintf(format, args...), l.secrets)
	if l.noColor {
		fmt.Fprintf(l.out, "%s %s\n", mark, msg)
		return
	}
	fmt.Fprintf(l.out, "%s%s\033[0m %s\n", color, mark, msg)
}

// Info logs an informational message.
func (l *Logger) Info(format string, args ...interface{}) {
	l.emit("\033[32m", "✓", format, args...)
}

// Warn logs a warning message.
func (l *Logger) Warn(format string, args ...interface{}) {
	l.emit("\033[33m", "⚠", format, args...)
}

// Error logs an error message.
func (l *Logger) Error(format string, args ...interface{}) {
	l.emit("\033[31m", "✗", format, args...)
}

// Debug logs a debug message when debug mode is enabled.
func (l *Logger) Debug(format string, args ...interface{}) {
	if !l.debug {
		return
	}
	l.emit("\033[36m", "[DEBUG]", format, args...)
}

// Secret is a string that always formats as [REDACTED]. Wrap any value
// that must not appear in output before handing it to a format verb.
type Secret string

func (s Secret) String() string {
	return "[REDACTED]"
}

func (s Secret) GoString() string {
	return "[REDACTED]"
}

// Redact replaces each of the given secret values occurring in s with
// [REDACTED]. Trivially short values are left alone to avoid mangling
// unrelated text.
func Redact(s string, secrets []string) string {
	result := s
	for _, secret := range secrets {
		if len(secret) > 3 {
			result = strings.ReplaceAll(result, secret, "[REDACTED]")
		}
	}
	return result
}
