package store

import "errors"

var (
	// ErrNotFound indicates the key is absent or expired. It is a normal
	// result, not a failure; callers branch on it with errors.Is.
	ErrNotFound = errors.New("store.not_found")

	// ErrInvalidKey indicates an empty key was passed to a store operation.
	ErrInvalidKey = errors.New("store.invalid_key")

	// ErrClosed indicates the store has been closed.
	ErrClosed = errors.New("store.closed")

	// ErrFailedToParseRedisConnString indicates the redis connection URL is invalid.
	ErrFailedToParseRedisConnString = errors.New("store.failed_to_parse_redis_conn_string")

	// ErrRedisNotReady indicates the redis server did not become reachable
	// within the configured retry budget.
	ErrRedisNotReady = errors.New("store.redis_not_ready")
)
