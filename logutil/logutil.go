// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package logutil

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
)

// Environment variable names for logging configuration.
const (
	// EnvDebug enables debug logging when set to "true" or "1".
	EnvDebug = "DIFFTW_DEBUG"
	// EnvLogFormat selects JSON logs when set to "json".
	EnvLogFormat = "DIFFTW_LOG_FORMAT"
)

var (
	mu           sync.RWMutex
	globalLogger *slog.Logger
	level                  = slog.LevelWarn
	jsonFormat             = false
	outputWriter io.Writer = os.Stderr
)

func init() {
	SetupLogger(false, false)
}

// SetupLogger configures the global logger.
//
// Parameters:
//   - debug: When true, enables debug-level logging; otherwise only warnings are shown
//   - structured: When true, outputs JSON-formatted logs; otherwise uses text format
//
// Logs always go to stderr unless redirected with SetOutput, since stdout
// carries the rewritten diff. This function is safe for concurrent use.
func SetupLogger(debug, structured bool) {
	mu.Lock()
	defer mu.Unlock()

	level = slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}
	jsonFormat = structured
	rebuild()
}

// SetupFromEnv configures the logger from DIFFTW_DEBUG and DIFFTW_LOG_FORMAT.
// Unrecognized values fall back to the defaults and are reported as a warning.
func SetupFromEnv(getenv func(string) string) {
	debugValue := getenv(EnvDebug)
	debug, debugOK := parseSwitch(debugValue)

	formatValue := strings.ToLower(getenv(EnvLogFormat))
	formatOK := formatValue == "" || formatValue == "text" || formatValue == "json"

	SetupLogger(debug, formatValue == "json")

	if !debugOK {
		Warn("ignoring unrecognized value", "var", EnvDebug, "value", debugValue)
	}
	if !formatOK {
		Warn("ignoring unrecognized value", "var", EnvLogFormat, "value", formatValue)
	}
}

func parseSwitch(v string) (on, ok bool) {
	switch strings.ToLower(v) {
	case "", "0", "false":
		return false, true
	case "1", "true":
		return true, true
	default:
		return false, false
	}
}

// SetOutput sets the output writer for the logger.
// This is useful for testing or redirecting logs.
// This function is safe for concurrent use.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()

	outputWriter = w
	rebuild()
}

// rebuild recreates the handler. Caller must hold mu.Lock().
func rebuild() {
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if jsonFormat {
		handler = slog.NewJSONHandler(outputWriter, opts)
	} else {
		handler = slog.NewTextHandler(outputWriter, opts)
	}
	globalLogger = slog.New(handler)
}

// Debug logs a debug message with optional key-value pairs.
//
// Example:
//
//	logutil.Debug("forwarding arguments", "args", args)
func Debug(msg string, args ...any) {
	Logger().Debug(msg, args...)
}

// Warn logs a warning message with optional key-value pairs.
func Warn(msg string, args ...any) {
	Logger().Warn(msg, args...)
}

// Logger returns the underlying slog.Logger.
// This function is safe for concurrent use.
func Logger() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return globalLogger
}
