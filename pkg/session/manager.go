package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/dmitrymomot/authkit/pkg/hook"
	"github.com/dmitrymomot/authkit/pkg/logger"
	"github.com/dmitrymomot/authkit/pkg/store"
)

// storeKeyPrefix namespaces session entries within the shared store.
const storeKeyPrefix = "session:"

// Manager owns the session identifier lifecycle. It holds no locks of its
// own; correctness under concurrency reduces to the store's per-key
// atomicity.
type Manager struct {
	store     store.Store
	transport Transport
	hooks     *hook.Registry
	config    Config
	logger    *slog.Logger
}

// Option is a functional option for configuring the Manager.
type Option func(*Manager)

// WithStore sets the session store backend.
func WithStore(s store.Store) Option {
	return func(m *Manager) {
		m.store = s
	}
}

// WithTransport sets a custom session transport.
func WithTransport(t Transport) Option {
	return func(m *Manager) {
		m.transport = t
	}
}

// WithHooks sets the extension registry consulted around create/delete.
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

// New creates a session manager. A cookie transport derived from the config
// is installed when none is supplied. The store is deliberately not
// defaulted: a missing backend is a deployment defect reported lazily by the
// first operation that needs it.
func New(opts ...Option) *Manager {
	m := &Manager{
		config: DefaultConfig(),
		logger: logger.Discard(),
	}

	for _, opt := range opts {
		opt(m)
	}

	if m.transport == nil {
		m.transport = NewCookieTransport(m.config.CookieName, WithCookieSecure(m.config.SecureCookies))
	}

	return m
}

// NewFromConfig creates a Manager from the provided Config.
func NewFromConfig(cfg Config, opts ...Option) *Manager {
	return New(append([]Option{WithConfig(cfg)}, opts...)...)
}

// Fetch resolves the current session from the request. Read-only: no store
// or response mutation. Returns ErrNotAuthenticated when the request carries
// no token or the token resolves to nothing.
func (m *Manager) Fetch(ctx context.Context, r *http.Request) (*Session, error) {
	if err := m.checkConfig(); err != nil {
		return nil, err
	}

	token, err := m.transport.GetToken(r)
	if err != nil || token == "" {
		return nil, ErrNotAuthenticated
	}

	return m.lookup(ctx, token)
}

// Create establishes a new session for userID. A fresh token is always
// generated and any session carried by the request is removed first, so a
// pre-authentication identifier never survives authentication. The store put
// completes before the token is written to the response.
func (m *Manager) Create(ctx context.Context, w http.ResponseWriter, r *http.Request, userID uuid.UUID) (*Session, error) {
	if err := m.checkConfig(); err != nil {
		return nil, err
	}

	sess, err := NewSession(userID, m.config.TTL)
	if err != nil {
		return nil, err
	}

	if m.hooks != nil {
		if _, _, err := m.hooks.Dispatch(ctx, hook.BeforeCreate, sess); err != nil {
			return nil, err
		}
	}

	// Fixation defense: drop the inbound session before installing the new one.
	if old, err := m.transport.GetToken(r); err == nil && old != "" {
		if err := m.store.Delete(ctx, storeKeyPrefix+old); err != nil {
			m.logger.Warn("failed to delete previous session", logger.Error(err), logger.Component("session"))
		}
	}

	if err := m.save(ctx, sess); err != nil {
		return nil, err
	}

	// Cookie write happens only after the store recorded the credential.
	if err := m.transport.SetToken(w, sess.Token, m.config.TTL); err != nil {
		_ = m.store.Delete(ctx, storeKeyPrefix+sess.Token)
		return nil, err
	}

	return sess, nil
}

// Destroy removes the session bound to the request (if any) and clears the
// outgoing token. Destroying an absent session is not an error.
func (m *Manager) Destroy(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	if err := m.checkConfig(); err != nil {
		return err
	}

	if token, err := m.transport.GetToken(r); err == nil && token != "" {
		if m.hooks != nil {
			if _, _, err := m.hooks.Dispatch(ctx, hook.BeforeDelete, token); err != nil {
				return err
			}
		}
		if err := m.store.Delete(ctx, storeKeyPrefix+token); err != nil {
			return fmt.Errorf("failed to delete session: %w", err)
		}
	}

	return m.transport.ClearToken(w)
}

// Rotate replaces the current session with a fresh one bound to userID:
// delete followed by create. Use it on every privilege change.
func (m *Manager) Rotate(ctx context.Context, w http.ResponseWriter, r *http.Request, userID uuid.UUID) (*Session, error) {
	if err := m.Destroy(ctx, w, r); err != nil {
		return nil, err
	}
	return m.Create(ctx, w, r, userID)
}

// lookup fetches and decodes the session stored under token.
func (m *Manager) lookup(ctx context.Context, token string) (*Session, error) {
	data, err := m.store.Get(ctx, storeKeyPrefix+token)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNotAuthenticated
		}
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, errors.Join(ErrInvalidSession, err)
	}

	// Belt-and-braces: the store hides expired entries, but a record without
	// store TTL still carries its own expiry.
	if sess.IsExpired() {
		return nil, ErrNotAuthenticated
	}

	return &sess, nil
}

func (m *Manager) save(ctx context.Context, sess *Session) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return errors.Join(ErrInvalidSession, err)
	}
	if err := m.store.Put(ctx, storeKeyPrefix+sess.Token, data, m.config.TTL); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// checkConfig validates required collaborators at operation time: fail late,
// fail precisely.
func (m *Manager) checkConfig() error {
	if m.store == nil {
		return errors.Join(ErrConfiguration, ErrNoStore)
	}
	if m.transport == nil {
		return errors.Join(ErrConfiguration, ErrNoTransport)
	}
	return nil
}
