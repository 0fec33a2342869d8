package session

import "errors"

var (
	// ErrNotAuthenticated indicates no valid session exists for the request.
	// This is a normal outcome, not a failure.
	ErrNotAuthenticated = errors.New("session.not_authenticated")

	// ErrConfiguration indicates a required collaborator is missing. This is
	// a deployment defect: fatal, never retried.
	ErrConfiguration = errors.New("session.configuration")

	// ErrNoStore indicates no store backend is configured.
	ErrNoStore = errors.New("session.no_store")

	// ErrNoTransport indicates no transport is configured.
	ErrNoTransport = errors.New("session.no_transport")

	// ErrTokenGeneration indicates the random token source failed.
	ErrTokenGeneration = errors.New("session.token_generation_failed")

	// ErrInvalidSession indicates a stored session record could not be decoded.
	ErrInvalidSession = errors.New("session.invalid")
)
