package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrymomot/authkit/pkg/logger"
)

// PasswordStorage defines the storage operations password authentication
// needs on top of user lookup.
type PasswordStorage interface {
	UserRepository
	GetPasswordHash(ctx context.Context, userID string) ([]byte, error)
	UpdatePasswordHash(ctx context.Context, userID string, hash []byte) error
}

// PasswordAuthenticator verifies email/password credentials against bcrypt
// hashes held by a PasswordStorage.
type PasswordAuthenticator struct {
	storage    PasswordStorage
	bcryptCost int
	logger     *slog.Logger
}

// PasswordOption configures a PasswordAuthenticator during construction.
type PasswordOption func(*PasswordAuthenticator)

// WithPasswordLogger sets a custom logger for the authenticator.
func WithPasswordLogger(logger *slog.Logger) PasswordOption {
	return func(a *PasswordAuthenticator) {
		a.logger = logger
	}
}

// WithBcryptCost sets the bcrypt cost used when (re)hashing passwords.
func WithBcryptCost(cost int) PasswordOption {
	return func(a *PasswordAuthenticator) {
		a.bcryptCost = cost
	}
}

// NewPasswordAuthenticator creates a password authenticator over the given
// storage.
func NewPasswordAuthenticator(storage PasswordStorage, opts ...PasswordOption) *PasswordAuthenticator {
	a := &PasswordAuthenticator{
		storage:    storage,
		bcryptCost: bcrypt.DefaultCost,
		logger:     logger.Discard(),
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Authenticate verifies the email/password pair and returns the user on
// success. Unknown users and wrong passwords both return
// ErrInvalidCredentials; a dummy bcrypt comparison runs on the unknown-user
// path to keep response timing uniform.
func (a *PasswordAuthenticator) Authenticate(ctx context.Context, email, password string) (*User, error) {
	user, err := a.storage.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			dummyCompare()
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	hash, err := a.storage.GetPasswordHash(ctx, user.ID.String())
	if err != nil {
		return nil, fmt.Errorf("failed to load password hash: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword(hash, []byte(password)); err != nil {
		a.logger.Debug("password mismatch", logger.UserID(user.ID.String()), logger.Component("auth"))
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// SetPassword hashes and stores a new password for the user.
func (a *PasswordAuthenticator) SetPassword(ctx context.Context, userID string, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), a.bcryptCost)
	if err != nil {
		return errors.Join(ErrPasswordHash, err)
	}
	return a.storage.UpdatePasswordHash(ctx, userID, hash)
}

// dummyHash is a bcrypt hash of an unguessable value, compared against on the
// unknown-user path so lookup misses cost the same as mismatches.
var dummyHash = []byte("$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy")

func dummyCompare() {
	_ = bcrypt.CompareHashAndPassword(dummyHash, []byte("timing-equalizer"))
}
