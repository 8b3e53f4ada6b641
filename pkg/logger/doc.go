// Package logger provides a slog.Logger factory with environment-driven
// level/format selection and typed attribute helpers for consistent keys
// across the application.
package logger
