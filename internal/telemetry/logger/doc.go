// Package logger provides structured logging for keva.
//
// It wraps the standard library log/slog with level and format
// configuration and a dynamically adjustable global level.
package logger
