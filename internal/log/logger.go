// Package log wraps logrus with the small surface the rest of the
// application uses: package-level leveled logging plus a debug toggle.
package log

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

var (
	isDebug = false
	std     = NewLogger()
)

// Field is a single structured logging key/value pair
type Field struct {
	Key   string
	Value interface{}
}

// F builds a Field for LogWithFields
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

// Logger wraps a logrus logger
type Logger struct {
	l *logrus.Logger
}

// Option configures a Logger
type Option func(*Logger)

// WithOutput redirects the logger output (used by tests)
func WithOutput(w io.Writer) Option {
	return func(lg *Logger) {
		lg.l.SetOutput(w)
	}
}

// NewLogger creates a logger writing to stdout unless overridden
func NewLogger(opts ...Option) *Logger {
	l := logrus.New()
	l.SetOutput(os.Stdout)
	l.SetLevel(logrus.DebugLevel) // gated by the package debug flag instead
	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	lg := &Logger{l: l}
	for _, opt := range opts {
		opt(lg)
	}
	return lg
}

// SetDebug enables or disables debug logging globally
func SetDebug(debug bool) {
	isDebug = debug
}

// Info logs an informational message
func (lg *Logger) Info(format string, args ...interface{}) {
	lg.l.Infof(format, args...)
}

// Infof logs a formatted informational message
func (lg *Logger) Infof(format string, args ...interface{}) {
	lg.l.Infof(format, args...)
}

// Debug logs a message when debug logging is enabled
func (lg *Logger) Debug(format string, args ...interface{}) {
	if isDebug {
		lg.l.Debugf(format, args...)
	}
}

// Debugf logs a formatted debug message
func (lg *Logger) Debugf(format string, args ...interface{}) {
	if isDebug {
		lg.l.Debugf(format, args...)
	}
}

// Warn logs a warning message
func (lg *Logger) Warn(format string, args ...interface{}) {
	lg.l.Warnf(format, args...)
}

// Warnf logs a formatted warning message
func (lg *Logger) Warnf(format string, args ...interface{}) {
	lg.l.Warnf(format, args...)
}

// Error logs an error message
func (lg *Logger) Error(format string, args ...interface{}) {
	lg.l.Errorf(format, args...)
}

// Errorf logs a formatted error message
func (lg *Logger) Errorf(format string, args ...interface{}) {
	lg.l.Errorf(format, args...)
}

// LogWithFields returns an entry carrying structured fields
func (lg *Logger) LogWithFields(fields ...Field) *logrus.Entry {
	lf := logrus.Fields{}
	for _, f := range fields {
		lf[f.Key] = f.Value
	}
	return lg.l.WithFields(lf)
}

// Package-level helpers forwarding to the default logger

func Info(format string, args ...interface{})   { std.Info(format, args...) }
func Infof(format string, args ...interface{})  { std.Infof(format, args...) }
func Debug(format string, args ...interface{})  { std.Debug(format, args...) }
func Debugf(format string, args ...interface{}) { std.Debugf(format, args...) }
func Warn(format string, args ...interface{})   { std.Warn(format, args...) }
func Warnf(format string, args ...interface{})  { std.Warnf(format, args...) }
func Error(format string, args ...interface{})  { std.Error(format, args...) }
func Errorf(format string, args ...interface{}) { std.Errorf(format, args...) }

// LogWithFields returns an entry on the default logger with structured fields
func LogWithFields(fields ...Field) *logrus.Entry {
	return std.LogWithFields(fields...)
}
