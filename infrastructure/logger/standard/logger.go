// ABOUTME: Logrus-backed logger implementation with optional file rotation
// ABOUTME: Adapts logrus structured logging to the core Logger interface

package standard

import (
	"io"

	"curapick-app-api/pkg/config"
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// StandardLogger implements the Logger interface using logrus
type StandardLogger struct {
	log *logrus.Logger
}

// NewStandardLogger creates a logger writing JSON lines to stdout
func NewStandardLogger() *StandardLogger {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})
	return &StandardLogger{log: log}
}

// NewFileLogger creates a logger writing to a rotated log file per the
// given configuration. An empty file path falls back to stdout.
func NewFileLogger(cfg config.LogConfig) *StandardLogger {
	logger := NewStandardLogger()
	if cfg.File == "" {
		return logger
	}

	logger.log.SetOutput(&lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
		Compress:   true,
	})
	return logger
}

// SetOutput redirects log output, used by tests
func (l *StandardLogger) SetOutput(w io.Writer) {
	l.log.SetOutput(w)
}

// SetLevel sets the minimum level that is logged
func (l *StandardLogger) SetLevel(level logrus.Level) {
	l.log.SetLevel(level)
}

// Debug logs a debug message
func (l *StandardLogger) Debug(msg string, fields map[string]interface{}) {
	l.log.WithFields(logrus.Fields(fields)).Debug(msg)
}

// Info logs an info message
func (l *StandardLogger) Info(msg string, fields map[string]interface{}) {
	l.log.WithFields(logrus.Fields(fields)).Info(msg)
}

// Warn logs a warning message
func (l *StandardLogger) Warn(msg string, fields map[string]interface{}) {
	l.log.WithFields(logrus.Fields(fields)).Warn(msg)
}

// Error logs an error message
func (l *StandardLogger) Error(msg string, fields map[string]interface{}) {
	l.log.WithFields(logrus.Fields(fields)).Error(msg)
}
