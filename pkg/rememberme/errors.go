package rememberme

import "errors"

var (
	// ErrTokenNotFound indicates the presented token is absent, expired or
	// already consumed. An ordinary authentication failure, not a defect.
	ErrTokenNotFound = errors.New("rememberme.token_not_found")

	// ErrConfiguration indicates a required collaborator is missing. This is
	// a deployment defect: fatal, never retried.
	ErrConfiguration = errors.New("rememberme.configuration")

	// ErrNoStore indicates no store backend is configured.
	ErrNoStore = errors.New("rememberme.no_store")

	// ErrNoSessionManager indicates no session manager is configured.
	ErrNoSessionManager = errors.New("rememberme.no_session_manager")

	// ErrNoUserRepository indicates no user repository is configured.
	ErrNoUserRepository = errors.New("rememberme.no_user_repository")

	// ErrTokenGeneration indicates the random token source failed.
	ErrTokenGeneration = errors.New("rememberme.token_generation_failed")
)
