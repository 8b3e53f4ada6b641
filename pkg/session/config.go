package session

import "time"

// Config holds session configuration.
type Config struct {
	// CookieName is the name of the session cookie.
	CookieName string `env:"SESSION_COOKIE_NAME" envDefault:"sid"`

	// TTL is the fixed session lifetime. Sessions expire passively; there is
	// no sliding renewal.
	TTL time.Duration `env:"SESSION_TTL" envDefault:"720h"`

	// SecureCookies enables the Secure flag on session cookies.
	SecureCookies bool `env:"SESSION_SECURE_COOKIES" envDefault:"false"`
}

// DefaultConfig returns default session configuration.
func DefaultConfig() Config {
	return Config{
		CookieName: "sid",
		TTL:        30 * 24 * time.Hour,
	}
}
