package store

import (
	"context"
	"time"
)

// Store defines the key/value contract the authentication core depends on.
// Implementations must be safe for concurrent use and linearizable per key.
type Store interface {
	// Get retrieves the value for key. Returns ErrNotFound on a miss or when
	// the entry has expired, even if it has not been swept yet.
	Get(ctx context.Context, key string) ([]byte, error)

	// Put stores value under key with the given TTL. A zero TTL means the
	// entry never expires.
	Put(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes the entry for key. Deleting a missing key is a no-op.
	Delete(ctx context.Context, key string) error

	// Take atomically reads and deletes the entry for key. At most one of
	// several concurrent callers observes the value; the rest get ErrNotFound.
	Take(ctx context.Context, key string) ([]byte, error)
}

// Config holds store configuration loadable from the environment.
type Config struct {
	// Namespace prefixes every key, isolating deployments sharing a backend.
	Namespace string `env:"STORE_NAMESPACE" envDefault:""`

	// CleanupInterval for the in-memory sweep of expired entries (0 disables).
	CleanupInterval time.Duration `env:"STORE_CLEANUP_INTERVAL" envDefault:"5m"`
}

// DefaultConfig returns default store configuration.
func DefaultConfig() Config {
	return Config{
		CleanupInterval: 5 * time.Minute,
	}
}

// Option configures a store implementation during construction.
type Option func(*options)

type options struct {
	namespace string
}

// WithNamespace sets a key prefix applied to all operations.
func WithNamespace(ns string) Option {
	return func(o *options) {
		o.namespace = ns
	}
}

// namespacedKey joins the deployment namespace with key. Keys remain plain
// strings so backends can scan or group them by prefix.
func namespacedKey(ns, key string) string {
	if ns == "" {
		return key
	}
	return ns + ":" + key
}
