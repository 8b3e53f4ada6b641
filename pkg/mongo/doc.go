// Package mongo wraps the official MongoDB driver with environment-driven
// configuration, connection retries, and a readiness probe. The client handle
// is constructed once at startup and injected into the stores that need it,
// with an explicit Disconnect on shutdown.
package mongo
