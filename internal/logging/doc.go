// Package logging assembles the structured slog loggers used across
// scenedeck components.
//
// It centralizes handler selection (console or JSON), level parsing, and
// attribute helpers so the transport, reconciler, and director emit log lines
// with the same shape. A no-op logger is provided for tests and wiring code
// that cannot fail.
package logging
