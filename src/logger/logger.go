package logger

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

// Logger defines the interface for logging throughout the application.
// Different implementations can be used for different contexts (console, silent, etc.)
type Logger interface {
	Info(msg string, args ...interface{})
	Error(msg string, args ...interface{})
	Debug(msg string, args ...interface{})
}

// ConsoleLogger writes leveled logs through logrus.
// Output goes to the diagnostic stream so the report on stdout stays clean.
type ConsoleLogger struct {
	log *logrus.Logger
}

// NewConsoleLogger builds a logger writing to w at the given level ("debug",
// "info", "warn", ...). Format "json" selects structured output; anything
// else is plain text.
func NewConsoleLogger(w io.Writer, level, format string) (*ConsoleLogger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	l := logrus.New()
	l.SetOutput(w)
	l.SetLevel(lvl)
	if format == "json" {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	}

	return &ConsoleLogger{log: l}, nil
}

func (c *ConsoleLogger) Info(msg string, args ...interface{}) {
	c.log.Infof(msg, args...)
}

func (c *ConsoleLogger) Error(msg string, args ...interface{}) {
	c.log.Errorf(msg, args...)
}

func (c *ConsoleLogger) Debug(msg string, args ...interface{}) {
	c.log.Debugf(msg, args...)
}

// SilentLogger discards all log messages.
// Used in tests and wherever skipped files must leave no trace.
type SilentLogger struct{}

func NewSilentLogger() *SilentLogger {
	return &SilentLogger{}
}

func (s *SilentLogger) Info(msg string, args ...interface{})  {}
func (s *SilentLogger) Error(msg string, args ...interface{}) {}
func (s *SilentLogger) Debug(msg string, args ...interface{}) {}
