package store

import (
	"context"
	"sync"
	"time"
)

type memoryEntry struct {
	value     []byte
	expiresAt time.Time // zero means no expiry
}

func (e memoryEntry) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && now.After(e.expiresAt)
}

// MemoryStore implements Store using an in-process map.
// Expired entries are hidden from readers immediately and reclaimed by a
// background sweep; the sweep never blocks foreground operations beyond the
// map mutex.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	ns      string
	ticker  *time.Ticker
	done    chan struct{}
	closed  bool
}

// NewMemoryStore creates an in-memory store. A positive cleanupInterval
// starts a background goroutine that sweeps expired entries; call Close to
// stop it.
func NewMemoryStore(cleanupInterval time.Duration, opts ...Option) *MemoryStore {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	s := &MemoryStore{
		entries: make(map[string]memoryEntry),
		ns:      o.namespace,
		done:    make(chan struct{}),
	}

	if cleanupInterval > 0 {
		s.ticker = time.NewTicker(cleanupInterval)
		go s.sweepLoop()
	}

	return s
}

// Get retrieves the value for key, treating expired entries as absent.
func (s *MemoryStore) Get(ctx context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, ErrInvalidKey
	}
	k := namespacedKey(s.ns, key)

	s.mu.RLock()
	entry, ok := s.entries[k]
	s.mu.RUnlock()

	if !ok || entry.expired(time.Now()) {
		return nil, ErrNotFound
	}

	// Copy so callers cannot mutate the stored value.
	out := make([]byte, len(entry.value))
	copy(out, entry.value)
	return out, nil
}

// Put stores value under key. A zero ttl stores the entry without expiry.
func (s *MemoryStore) Put(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if key == "" {
		return ErrInvalidKey
	}

	entry := memoryEntry{value: make([]byte, len(value))}
	copy(entry.value, value)
	if ttl > 0 {
		entry.expiresAt = time.Now().Add(ttl)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}
	s.entries[namespacedKey(s.ns, key)] = entry
	return nil
}

// Delete removes the entry for key. Missing keys are ignored.
func (s *MemoryStore) Delete(ctx context.Context, key string) error {
	if key == "" {
		return ErrInvalidKey
	}

	s.mu.Lock()
	delete(s.entries, namespacedKey(s.ns, key))
	s.mu.Unlock()
	return nil
}

// Take atomically reads and deletes the entry for key. The read and delete
// happen under one write lock, so concurrent callers race for a single value.
func (s *MemoryStore) Take(ctx context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, ErrInvalidKey
	}
	k := namespacedKey(s.ns, key)

	s.mu.Lock()
	entry, ok := s.entries[k]
	if ok {
		delete(s.entries, k)
	}
	s.mu.Unlock()

	if !ok || entry.expired(time.Now()) {
		return nil, ErrNotFound
	}
	return entry.value, nil
}

// Len returns the number of live (unexpired) entries.
func (s *MemoryStore) Len() int {
	now := time.Now()

	s.mu.RLock()
	defer s.mu.RUnlock()

	n := 0
	for _, entry := range s.entries {
		if !entry.expired(now) {
			n++
		}
	}
	return n
}

// Close stops the background sweep. The store rejects writes afterwards.
func (s *MemoryStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true
	if s.ticker != nil {
		s.ticker.Stop()
	}
	close(s.done)
	return nil
}

// sweepLoop reclaims expired entries on a fixed interval.
func (s *MemoryStore) sweepLoop() {
	for {
		select {
		case <-s.ticker.C:
			s.sweep(time.Now())
		case <-s.done:
			return
		}
	}
}

func (s *MemoryStore) sweep(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for k, entry := range s.entries {
		if entry.expired(now) {
			delete(s.entries, k)
		}
	}
}
