// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package logutil

import "log/slog"

// ComponentLogger tags every record with the component that produced it.
// It captures the global handler when created, so create it after setup.
type ComponentLogger struct {
	slogger *slog.Logger
}

// NewLogger creates a logger scoped to a named component.
func NewLogger(component string) *ComponentLogger {
	return &ComponentLogger{slogger: Logger().With("component", component)}
}

// WithOperation returns a logger that also records the operation name.
func (l *ComponentLogger) WithOperation(name string) *ComponentLogger {
	return &ComponentLogger{slogger: l.slogger.With("operation", name)}
}

// WithFields returns a logger carrying fields, given as alternating
// key-value pairs, on every record.
func (l *ComponentLogger) WithFields(fields ...any) *ComponentLogger {
	return &ComponentLogger{slogger: l.slogger.With(fields...)}
}

// Debug logs a message at debug level.
func (l *ComponentLogger) Debug(msg string, args ...any) {
	l.slogger.Debug(msg, args...)
}
