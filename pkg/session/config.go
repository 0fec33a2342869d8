package session

import "time"

// Config holds session manager configuration.
type Config struct {
	// CookieName is the name of the session cookie (default: "sid")
	CookieName string `env:"SESSION_COOKIE_NAME" envDefault:"sid"`

	// TTL is the server-side session lifetime. Zero means the session lives
	// until logout and the cookie is session-scoped.
	TTL time.Duration `env:"SESSION_TTL" envDefault:"24h"`

	// SecureCookies enables the Secure flag on session cookies (recommended
	// for production).
	SecureCookies bool `env:"SESSION_SECURE_COOKIES" envDefault:"false"`
}

// DefaultConfig returns default session configuration.
func DefaultConfig() Config {
	return Config{
		CookieName: "sid",
		TTL:        24 * time.Hour,
	}
}
