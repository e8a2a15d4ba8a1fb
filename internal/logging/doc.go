// Package logging assembles structured slog loggers used across sentai.
//
// It owns the configurable console/JSON handlers, centralizes level and output
// plumbing, and exposes context-aware helpers so classifier code can tag log
// lines with operation names and correlation IDs. The package also provides a
// no-op logger for tests and wiring code that cannot fail.
//
// Logs are diagnostics. The CLI points them at stderr so stdout carries only
// the classification result.
package logging
