// Package httpserver provides a lightweight wrapper around net/http that adds
// graceful shutdown, configurable timeouts, health-check handlers, and
// structured logging via slog.
//
// Construction uses functional options (New, NewFromConfig). Run blocks until
// the context is cancelled or an interrupt/TERM signal is received, then shuts
// the server down with a configurable deadline and runs registered stop hooks.
package httpserver
