package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// User is the minimal identity record the session core binds to. Applications
// typically keep a richer profile elsewhere, keyed by ID.
type User struct {
	ID         uuid.UUID `json:"id"`
	Email      string    `json:"email"`
	IsVerified bool      `json:"is_verified"`
	CreatedAt  time.Time `json:"created_at"`
}

// UserRepository resolves user records for the session core. A nil-user,
// ErrUserNotFound result is the normal "no such user" outcome.
type UserRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
}

// Authenticator verifies primary credentials and returns the matching user.
type Authenticator interface {
	Authenticate(ctx context.Context, email, password string) (*User, error)
}
