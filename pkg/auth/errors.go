package auth

import "errors"

var (
	// ErrUserNotFound indicates no user record matches the criteria.
	ErrUserNotFound = errors.New("auth.user_not_found")

	// ErrInvalidCredentials indicates the email/password pair does not
	// authenticate. Deliberately covers both unknown user and wrong password.
	ErrInvalidCredentials = errors.New("auth.invalid_credentials")

	// ErrPasswordHash indicates password hashing failed.
	ErrPasswordHash = errors.New("auth.password_hash_failed")
)
