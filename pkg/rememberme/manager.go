package rememberme

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/authkit/pkg/auth"
	"github.com/dmitrymomot/authkit/pkg/hook"
	"github.com/dmitrymomot/authkit/pkg/logger"
	"github.com/dmitrymomot/authkit/pkg/session"
	"github.com/dmitrymomot/authkit/pkg/store"
)

// storeKeyPrefix namespaces persistent-token entries within the shared store.
const storeKeyPrefix = "persistent:"

// tokenRecord is the value stored under a persistent token.
type tokenRecord struct {
	UserID    uuid.UUID `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

// Manager owns the lifecycle of persistent "remember me" tokens. It holds no
// locks of its own; single-use semantics reduce to the store's atomic Take.
type Manager struct {
	store    store.Store
	sessions *session.Manager
	users    auth.UserRepository
	hooks    *hook.Registry
	config   Config
	logger   *slog.Logger
}

// Option is a functional option for configuring the Manager.
type Option func(*Manager)

// WithStore sets the token store backend.
func WithStore(s store.Store) Option {
	return func(m *Manager) {
		m.store = s
	}
}

// WithSessionManager sets the session manager used to re-establish a session
// after successful token consumption.
func WithSessionManager(sm *session.Manager) Option {
	return func(m *Manager) {
		m.sessions = sm
	}
}

// WithUserRepository sets the repository used to re-validate the token's
// identity against the live user record.
func WithUserRepository(users auth.UserRepository) Option {
	return func(m *Manager) {
		m.users = users
	}
}

// WithHooks sets the extension registry consulted around token consumption.
func WithHooks(reg *hook.Registry) Option {
	return func(m *Manager) {
		m.hooks = reg
	}
}

// WithConfig sets custom configuration.
func WithConfig(cfg Config) Option {
	return func(m *Manager) {
		m.config = cfg
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Manager) {
		m.logger = logger
	}
}

// New creates a persistent-token manager. Collaborators are validated lazily
// by the first operation that needs them.
func New(opts ...Option) *Manager {
	m := &Manager{
		config: DefaultConfig(),
		logger: logger.Discard(),
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// Issue generates a persistent token for userID, records it in the store and
// then sets the cookie with a matching max-age. The store write completes
// before the cookie goes out.
func (m *Manager) Issue(ctx context.Context, w http.ResponseWriter, userID uuid.UUID) (string, error) {
	if m.store == nil {
		return "", errors.Join(ErrConfiguration, ErrNoStore)
	}

	token, err := generateToken()
	if err != nil {
		return "", err
	}

	data, err := json.Marshal(tokenRecord{UserID: userID, CreatedAt: time.Now()})
	if err != nil {
		return "", fmt.Errorf("failed to encode token record: %w", err)
	}

	if err := m.store.Put(ctx, storeKeyPrefix+token, data, m.config.MaxAge); err != nil {
		return "", fmt.Errorf("failed to save persistent token: %w", err)
	}

	m.setCookie(w, token)
	return token, nil
}

// Revoke deletes the token's store entry and expires the corresponding
// cookie. Revoking an unknown token is a no-op.
func (m *Manager) Revoke(ctx context.Context, w http.ResponseWriter, token string) error {
	if m.store == nil {
		return errors.Join(ErrConfiguration, ErrNoStore)
	}

	if token != "" {
		if err := m.store.Delete(ctx, storeKeyPrefix+token); err != nil {
			return fmt.Errorf("failed to delete persistent token: %w", err)
		}
	}

	m.clearCookie(w)
	return nil
}

// Consume authenticates the request's persistent token and re-establishes a
// session. The token is claimed atomically (single-use): a replayed or
// concurrently raced token fails for every caller but the first. On success
// a fresh token is issued and the session is rotated.
//
// All runtime failures — missing cookie, expired or already-consumed token,
// vanished user — clear the stale cookie and return ErrTokenNotFound so the
// request degrades silently to "not authenticated".
func (m *Manager) Consume(ctx context.Context, w http.ResponseWriter, r *http.Request) (*session.Session, error) {
	if err := m.checkConfig(); err != nil {
		return nil, err
	}

	token := m.cookieToken(r)
	if token == "" {
		return nil, ErrTokenNotFound
	}

	// Atomic take: at most one concurrent caller observes the record.
	data, err := m.store.Take(ctx, storeKeyPrefix+token)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			m.clearCookie(w)
			return nil, ErrTokenNotFound
		}
		return nil, fmt.Errorf("failed to take persistent token: %w", err)
	}

	var rec tokenRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		m.clearCookie(w)
		return nil, ErrTokenNotFound
	}

	// The account may have been deleted or altered since issuance.
	user, err := m.users.GetByID(ctx, rec.UserID)
	if err != nil || user == nil {
		m.logger.Info("persistent token for unknown user",
			logger.UserID(rec.UserID.String()),
			logger.Component("rememberme"),
		)
		m.clearCookie(w)
		return nil, ErrTokenNotFound
	}

	if m.hooks != nil {
		if _, _, err := m.hooks.Dispatch(ctx, hook.BeforeProcess, user); err != nil {
			m.clearCookie(w)
			return nil, err
		}
	}

	// Rotate-on-use: a fresh token replaces the consumed one.
	if _, err := m.Issue(ctx, w, user.ID); err != nil {
		return nil, err
	}

	// Token consumption is a privilege change: the session rotates too.
	sess, err := m.sessions.Rotate(ctx, w, r, user.ID)
	if err != nil {
		return nil, err
	}

	return sess, nil
}

func (m *Manager) checkConfig() error {
	if m.store == nil {
		return errors.Join(ErrConfiguration, ErrNoStore)
	}
	if m.sessions == nil {
		return errors.Join(ErrConfiguration, ErrNoSessionManager)
	}
	if m.users == nil {
		return errors.Join(ErrConfiguration, ErrNoUserRepository)
	}
	return nil
}

func (m *Manager) cookieToken(r *http.Request) string {
	c, err := r.Cookie(m.config.cookieName())
	if err != nil {
		return ""
	}
	return c.Value
}

func (m *Manager) setCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     m.config.cookieName(),
		Value:    token,
		Path:     "/",
		MaxAge:   int(m.config.MaxAge.Seconds()),
		HttpOnly: true,
		Secure:   m.config.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}

func (m *Manager) clearCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     m.config.cookieName(),
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   m.config.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}

// generateToken creates a cryptographically secure random token using
// 32 bytes (256 bits) encoded as base64 URL-safe string without padding.
func generateToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", errors.Join(ErrTokenGeneration, err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
