// Package log is the logging facade for the dropzone application. It
// wraps logrus behind package-level helpers so callers never carry a
// logger instance around.
package log

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

var logger = NewLogger()

// Logger wraps a logrus logger configured for console output.
type Logger struct {
	out *logrus.Logger
}

// NewLogger creates a logger writing to stdout at info level.
func NewLogger() *Logger {
	l := logrus.New()
	l.SetOutput(os.Stdout)
	l.SetLevel(logrus.InfoLevel)
	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	return &Logger{out: l}
}

// SetDebug toggles debug-level logging
func SetDebug(debug bool) {
	if debug {
		logger.out.SetLevel(logrus.DebugLevel)
	} else {
		logger.out.SetLevel(logrus.InfoLevel)
	}
}

// SetOutput redirects log output; tests use io.Discard
func SetOutput(w io.Writer) {
	logger.out.SetOutput(w)
}

// Field is a single structured logging key/value pair.
type Field struct {
	Key   string
	Value interface{}
}

// F builds a Field for LogWithFields.
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

// LogWithFields returns an entry carrying the given structured fields.
func LogWithFields(fields ...Field) *logrus.Entry {
	lf := make(logrus.Fields, len(fields))
	for _, f := range fields {
		lf[f.Key] = f.Value
	}
	return logger.out.WithFields(lf)
}

func Info(format string, args ...interface{}) {
	logger.out.Infof(format, args...)
}

// Debug logs a message with arguments
func Debug(msg string, args ...interface{}) {
	logger.out.Debugf(msg+": %v", args...)
}

// Debugf logs a formatted message
func Debugf(format string, args ...interface{}) {
	logger.out.Debugf(format, args...)
}

// Error logs an error message with arguments
func Error(msg string, args ...interface{}) {
	logger.out.Errorf(msg+": %v", args...)
}

// Errorf logs a formatted error message
func Errorf(format string, args ...interface{}) {
	logger.out.Errorf(format, args...)
}

// Warn logs a warning message with arguments
func Warn(msg string, args ...interface{}) {
	logger.out.Warnf(msg+": %v", args...)
}

// Warnf logs a formatted warning message
func Warnf(format string, args ...interface{}) {
	logger.out.Warnf(format, args...)
}

// Fatalf logs a formatted message and exits
func Fatalf(format string, args ...interface{}) {
	logger.out.Fatalf(format, args...)
}
