// Package logger provides a minimal logging interface for vitals components.
// Packages log through the interface so the TUI can silence output while the
// alternate screen is active, and tests can capture messages.
package logger

import (
	"fmt"
	"log"
	"os"
)

// Logger is the logging interface used throughout vitals.
// Methods accept a format string and arguments, like fmt.Printf.
type Logger interface {
	Debug(format string, args ...interface{})
	Info(format string, args ...interface{})
	Warn(format string, args ...interface{})
	Error(format string, args ...interface{})
}

// envLogger writes to the standard log package. Debug messages are only
// emitted when VITALS_DEBUG is set, so the dashboard stays quiet by default.
type envLogger struct {
	prefix string
}

// NewEnvLogger returns a logger gated on the VITALS_DEBUG environment
// variable. The prefix is prepended to every message (e.g. "[engine]").
func NewEnvLogger(prefix string) Logger {
	return &envLogger{prefix: prefix}
}

func (l *envLogger) Debug(format string, args ...interface{}) {
	if os.Getenv("VITALS_DEBUG") != "" {
		log.Printf(l.prefix+" "+format, args...)
	}
}

func (l *envLogger) Info(format string, args ...interface{}) {
	log.Printf(l.prefix+" "+format, args...)
}

func (l *envLogger) Warn(format string, args ...interface{}) {
	log.Printf(l.prefix+" WARN: "+format, args...)
}

func (l *envLogger) Error(format string, args ...interface{}) {
	log.Printf(l.prefix+" ERROR: "+format, args...)
}

// noopLogger discards everything. Used while the TUI owns the terminal.
type noopLogger struct{}

// Noop returns a logger that discards all messages.
func Noop() Logger {
	return &noopLogger{}
}

func (l *noopLogger) Debug(format string, args ...interface{}) {}
func (l *noopLogger) Info(format string, args ...interface{})  {}
func (l *noopLogger) Warn(format string, args ...interface{})  {}
func (l *noopLogger) Error(format string, args ...interface{}) {}

// Message is a captured log entry.
type Message struct {
	Level string
	Text  string
}

// Buffer captures log messages for test assertions.
type Buffer struct {
	Messages []Message
}

// NewBuffer returns a logger that records messages instead of printing them.
func NewBuffer() *Buffer {
	return &Buffer{Messages: make([]Message, 0)}
}

func (b *Buffer) record(level, format string, args ...interface{}) {
	b.Messages = append(b.Messages, Message{Level: level, Text: fmt.Sprintf(format, args...)})
}

func (b *Buffer) Debug(format string, args ...interface{}) { b.record("debug", format, args...) }
func (b *Buffer) Info(format string, args ...interface{})  { b.record("info", format, args...) }
func (b *Buffer) Warn(format string, args ...interface{})  { b.record("warn", format, args...) }
func (b *Buffer) Error(format string, args ...interface{}) { b.record("error", format, args...) }

// HasLevel reports whether any message was recorded at the given level.
func (b *Buffer) HasLevel(level string) bool {
	for _, m := range b.Messages {
		if m.Level == level {
			return true
		}
	}
	return false
}

// Clear drops all captured messages.
func (b *Buffer) Clear() {
	b.Messages = b.Messages[:0]
}
