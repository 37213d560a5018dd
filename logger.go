// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package wayapp

import (
	"log/slog"

	"github.com/gogpu/wayapp/internal/logging"
)

// SetLogger configures the logger for wayapp and all its sub-packages.
// By default, wayapp produces no log output.
//
// SetLogger is safe for concurrent use: it stores the new logger
// atomically. Pass nil to disable logging (restore default silent
// behavior).
//
// Log levels used by wayapp:
//   - [slog.LevelDebug]: per-event diagnostics (input translation, frame
//     pacing decisions)
//   - [slog.LevelInfo]: surface lifecycle (container registered, removed)
//   - [slog.LevelWarn]: recovered anomalies (odd configure payloads)
//   - [slog.LevelError]: surface loss and other terminal render failures
//
// Example:
//
//	wayapp.SetLogger(slog.Default())
func SetLogger(l *slog.Logger) {
	logging.Set(l)
}

// Logger returns the current logger used by wayapp.
//
// Logger is safe for concurrent use.
func Logger() *slog.Logger {
	return logging.Logger()
}
