package rememberme

import "time"

// Config holds persistent-token configuration.
type Config struct {
	// CookieName is the name of the persistent session cookie.
	CookieName string `env:"PERSISTENT_SESSION_COOKIE_NAME" envDefault:"persistent_session_cookie"`

	// MaxAge is the token TTL; the store entry and the cookie max-age always
	// match. Default 720h (30 days).
	MaxAge time.Duration `env:"PERSISTENT_SESSION_COOKIE_MAX_AGE" envDefault:"720h"`

	// Namespace prefixes the cookie name, isolating deployments that share a
	// domain.
	Namespace string `env:"PERSISTENT_SESSION_NAMESPACE" envDefault:""`

	// SecureCookies enables the Secure flag on persistent cookies.
	SecureCookies bool `env:"PERSISTENT_SESSION_SECURE_COOKIES" envDefault:"false"`
}

// DefaultConfig returns default persistent-token configuration.
func DefaultConfig() Config {
	return Config{
		CookieName: "persistent_session_cookie",
		MaxAge:     30 * 24 * time.Hour,
	}
}

// cookieName returns the deployment-scoped cookie name.
func (c Config) cookieName() string {
	if c.Namespace == "" {
		return c.CookieName
	}
	return c.Namespace + "_" + c.CookieName
}
