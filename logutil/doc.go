// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package logutil provides structured logging for difftw built on slog.
//
// difftw's stdout carries the rewritten diff, so every log line goes to
// stderr, and by default only warnings and errors are emitted.
//
// # Basic Usage
//
//	logutil.SetupFromEnv(os.Getenv)
//	logutil.Debug("forwarding arguments", "args", args)
//
//	log := logutil.NewLogger("runner").WithOperation("stream")
//	log.Debug("stream finished", "lines", n)
//
// # Debug Mode
//
// Set DIFFTW_DEBUG=true (or 1) to enable debug output. Set
// DIFFTW_LOG_FORMAT=json to get JSON lines instead of text:
//
//	{"time":"2024-01-15T10:30:00Z","level":"DEBUG","msg":"child exited","code":1}
package logutil
