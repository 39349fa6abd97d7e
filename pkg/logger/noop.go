package logger

import "context"

// NoopLogger is a logger that does nothing.
type NoopLogger struct{}

// NewNoop creates a new no-op logger.
func NewNoop() Logger {
	return &NoopLogger{}
}

// Debug does nothing.
func (n *NoopLogger) Debug(msg string, fields ...Field) {}

// Info does nothing.
func (n *NoopLogger) Info(msg string, fields ...Field) {}

// Warn does nothing.
func (n *NoopLogger) Warn(msg string, fields ...Field) {}

// Error does nothing.
func (n *NoopLogger) Error(msg string, fields ...Field) {}

// Fatal does nothing (doesn't exit).
func (n *NoopLogger) Fatal(msg string, fields ...Field) {}

// WithContext returns the same logger.
func (n *NoopLogger) WithContext(ctx context.Context) Logger {
	return n
}

// WithFields returns the same logger.
func (n *NoopLogger) WithFields(fields ...Field) Logger {
	return n
}
