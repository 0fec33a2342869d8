package auth_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrymomot/authkit/pkg/auth"
)

// memoryUserStorage is a test double implementing auth.PasswordStorage.
type memoryUserStorage struct {
	mu     sync.RWMutex
	users  map[uuid.UUID]*auth.User
	hashes map[string][]byte
}

func newMemoryUserStorage() *memoryUserStorage {
	return &memoryUserStorage{
		users:  make(map[uuid.UUID]*auth.User),
		hashes: make(map[string][]byte),
	}
}

func (s *memoryUserStorage) addUser(t *testing.T, email, password string) *auth.User {
	t.Helper()

	user := &auth.User{
		ID:         uuid.New(),
		Email:      email,
		IsVerified: true,
		CreatedAt:  time.Now(),
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[user.ID] = user
	s.hashes[user.ID.String()] = hash
	return user
}

func (s *memoryUserStorage) GetByID(ctx context.Context, id uuid.UUID) (*auth.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if user, ok := s.users[id]; ok {
		return user, nil
	}
	return nil, auth.ErrUserNotFound
}

func (s *memoryUserStorage) GetByEmail(ctx context.Context, email string) (*auth.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, user := range s.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, auth.ErrUserNotFound
}

func (s *memoryUserStorage) GetPasswordHash(ctx context.Context, userID string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if hash, ok := s.hashes[userID]; ok {
		return hash, nil
	}
	return nil, auth.ErrUserNotFound
}

func (s *memoryUserStorage) UpdatePasswordHash(ctx context.Context, userID string, hash []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hashes[userID] = hash
	return nil
}

func TestPasswordAuthenticator_Authenticate(t *testing.T) {
	ctx := context.Background()
	storage := newMemoryUserStorage()
	user := storage.addUser(t, "jane@example.com", "correct horse battery staple")

	authn := auth.NewPasswordAuthenticator(storage)

	t.Run("valid credentials", func(t *testing.T) {
		got, err := authn.Authenticate(ctx, "jane@example.com", "correct horse battery staple")
		require.NoError(t, err)
		assert.Equal(t, user.ID, got.ID)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := authn.Authenticate(ctx, "jane@example.com", "nope")
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})

	t.Run("unknown user yields the same error as wrong password", func(t *testing.T) {
		_, err := authn.Authenticate(ctx, "nobody@example.com", "whatever")
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})
}

func TestPasswordAuthenticator_SetPassword(t *testing.T) {
	ctx := context.Background()
	storage := newMemoryUserStorage()
	user := storage.addUser(t, "jane@example.com", "old-password")

	authn := auth.NewPasswordAuthenticator(storage, auth.WithBcryptCost(bcrypt.MinCost))

	require.NoError(t, authn.SetPassword(ctx, user.ID.String(), "new-password"))

	_, err := authn.Authenticate(ctx, "jane@example.com", "old-password")
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)

	got, err := authn.Authenticate(ctx, "jane@example.com", "new-password")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
}
