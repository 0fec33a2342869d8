package session

import (
	"net/http"
	"time"
)

// CookieTransport implements Transport using an HTTP cookie.
type CookieTransport struct {
	name     string
	path     string
	domain   string
	secure   bool
	sameSite http.SameSite
}

// CookieOption is a functional option for CookieTransport.
type CookieOption func(*CookieTransport)

// WithCookiePath sets the cookie path (default "/").
func WithCookiePath(path string) CookieOption {
	return func(t *CookieTransport) {
		t.path = path
	}
}

// WithCookieDomain sets the cookie domain.
func WithCookieDomain(domain string) CookieOption {
	return func(t *CookieTransport) {
		t.domain = domain
	}
}

// WithCookieSecure enables the Secure flag.
func WithCookieSecure(secure bool) CookieOption {
	return func(t *CookieTransport) {
		t.secure = secure
	}
}

// WithCookieSameSite sets the SameSite mode (default Lax).
func WithCookieSameSite(mode http.SameSite) CookieOption {
	return func(t *CookieTransport) {
		t.sameSite = mode
	}
}

// NewCookieTransport creates a cookie-based transport. Cookies are HttpOnly
// and SameSite=Lax unless overridden.
func NewCookieTransport(name string, opts ...CookieOption) *CookieTransport {
	t := &CookieTransport{
		name:     name,
		path:     "/",
		sameSite: http.SameSiteLaxMode,
	}

	for _, opt := range opts {
		opt(t)
	}

	return t
}

// GetToken extracts the session token from the cookie.
func (t *CookieTransport) GetToken(r *http.Request) (string, error) {
	c, err := r.Cookie(t.name)
	if err != nil || c.Value == "" {
		return "", ErrNotAuthenticated
	}
	return c.Value, nil
}

// SetToken stores the session token in a cookie. A zero ttl produces a
// session-scoped cookie without Max-Age.
func (t *CookieTransport) SetToken(w http.ResponseWriter, token string, ttl time.Duration) error {
	c := &http.Cookie{
		Name:     t.name,
		Value:    token,
		Path:     t.path,
		Domain:   t.domain,
		HttpOnly: true,
		Secure:   t.secure,
		SameSite: t.sameSite,
	}
	if ttl > 0 {
		c.MaxAge = int(ttl.Seconds())
	}
	http.SetCookie(w, c)
	return nil
}

// ClearToken expires the session cookie immediately.
func (t *CookieTransport) ClearToken(w http.ResponseWriter) error {
	http.SetCookie(w, &http.Cookie{
		Name:     t.name,
		Value:    "",
		Path:     t.path,
		Domain:   t.domain,
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   t.secure,
		SameSite: t.sameSite,
	})
	return nil
}
