package store

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore implements Store on top of go-redis. TTL handling is delegated
// to the server; Take maps to GETDEL, which is atomic server-side.
type RedisStore struct {
	db redis.UniversalClient
	ns string
}

// NewRedisStore wraps an existing redis client. The caller owns the client's
// lifecycle; Close on the store does not close it.
func NewRedisStore(client redis.UniversalClient, opts ...Option) *RedisStore {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	return &RedisStore{
		db: client,
		ns: o.namespace,
	}
}

// Get retrieves the value for key. redis.Nil becomes ErrNotFound.
func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, ErrInvalidKey
	}

	val, err := s.db.Get(ctx, namespacedKey(s.ns, key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	return val, err
}

// Put stores value under key with expiration. Zero ttl means no expiration.
func (s *RedisStore) Put(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if key == "" {
		return ErrInvalidKey
	}
	return s.db.Set(ctx, namespacedKey(s.ns, key), value, ttl).Err()
}

// Delete removes the entry for key. Missing keys are ignored.
func (s *RedisStore) Delete(ctx context.Context, key string) error {
	if key == "" {
		return ErrInvalidKey
	}
	return s.db.Del(ctx, namespacedKey(s.ns, key)).Err()
}

// Take atomically reads and deletes the entry for key via GETDEL.
func (s *RedisStore) Take(ctx context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, ErrInvalidKey
	}

	val, err := s.db.GetDel(ctx, namespacedKey(s.ns, key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	return val, err
}

// Conn returns the underlying redis client for advanced operations.
func (s *RedisStore) Conn() redis.UniversalClient {
	return s.db
}

// RedisConfig describes the redis connection used by Connect.
type RedisConfig struct {
	ConnectionURL  string        `env:"REDIS_URL" envDefault:"redis://localhost:6379/0"`
	RetryAttempts  int           `env:"REDIS_RETRY_ATTEMPTS" envDefault:"3"`
	RetryInterval  time.Duration `env:"REDIS_RETRY_INTERVAL" envDefault:"5s"`
	ConnectTimeout time.Duration `env:"REDIS_CONNECT_TIMEOUT" envDefault:"30s"`
}

// Connect establishes a redis connection with retries, for callers that want
// the store to own connection setup. Returns ErrRedisNotReady if the server
// never answers a ping within the retry budget.
func Connect(ctx context.Context, cfg RedisConfig) (*redis.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	opt, err := redis.ParseURL(cfg.ConnectionURL)
	if err != nil {
		return nil, errors.Join(ErrFailedToParseRedisConnString, err)
	}

	for range cfg.RetryAttempts {
		client := redis.NewClient(opt)
		if err := client.Ping(ctx).Err(); err == nil {
			return client, nil
		}
		_ = client.Close()

		select {
		case <-ctx.Done():
			return nil, errors.Join(ErrRedisNotReady, ctx.Err())
		case <-time.After(cfg.RetryInterval):
		}
	}

	return nil, ErrRedisNotReady
}
