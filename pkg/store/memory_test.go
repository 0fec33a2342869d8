package store_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/authkit/pkg/store"
)

func TestMemoryStore_PutGet(t *testing.T) {
	s := store.NewMemoryStore(0)
	defer s.Close()
	ctx := context.Background()

	t.Run("roundtrip", func(t *testing.T) {
		require.NoError(t, s.Put(ctx, "k1", []byte("v1"), time.Hour))

		val, err := s.Get(ctx, "k1")
		require.NoError(t, err)
		assert.Equal(t, []byte("v1"), val)
	})

	t.Run("miss returns not found", func(t *testing.T) {
		_, err := s.Get(ctx, "absent")
		assert.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("empty key rejected", func(t *testing.T) {
		assert.ErrorIs(t, s.Put(ctx, "", []byte("v"), 0), store.ErrInvalidKey)
		_, err := s.Get(ctx, "")
		assert.ErrorIs(t, err, store.ErrInvalidKey)
	})

	t.Run("overwrite replaces value", func(t *testing.T) {
		require.NoError(t, s.Put(ctx, "k2", []byte("old"), time.Hour))
		require.NoError(t, s.Put(ctx, "k2", []byte("new"), time.Hour))

		val, err := s.Get(ctx, "k2")
		require.NoError(t, err)
		assert.Equal(t, []byte("new"), val)
	})

	t.Run("stored value is isolated from caller mutation", func(t *testing.T) {
		src := []byte("original")
		require.NoError(t, s.Put(ctx, "k3", src, time.Hour))
		src[0] = 'X'

		val, err := s.Get(ctx, "k3")
		require.NoError(t, err)
		assert.Equal(t, []byte("original"), val)
	})
}

func TestMemoryStore_Delete(t *testing.T) {
	s := store.NewMemoryStore(0)
	defer s.Close()
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, "k1", []byte("v1"), time.Hour))
	require.NoError(t, s.Delete(ctx, "k1"))

	_, err := s.Get(ctx, "k1")
	assert.ErrorIs(t, err, store.ErrNotFound)

	// Deleting a missing key is a no-op.
	assert.NoError(t, s.Delete(ctx, "k1"))
}

func TestMemoryStore_TTL(t *testing.T) {
	s := store.NewMemoryStore(0)
	defer s.Close()
	ctx := context.Background()

	t.Run("expired entry is hidden before sweep", func(t *testing.T) {
		require.NoError(t, s.Put(ctx, "short", []byte("v"), 30*time.Millisecond))

		val, err := s.Get(ctx, "short")
		require.NoError(t, err)
		assert.Equal(t, []byte("v"), val)

		time.Sleep(50 * time.Millisecond)

		_, err = s.Get(ctx, "short")
		assert.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("zero ttl never expires", func(t *testing.T) {
		require.NoError(t, s.Put(ctx, "forever", []byte("v"), 0))
		time.Sleep(20 * time.Millisecond)

		_, err := s.Get(ctx, "forever")
		assert.NoError(t, err)
	})

	t.Run("expired entry cannot be taken", func(t *testing.T) {
		require.NoError(t, s.Put(ctx, "gone", []byte("v"), 10*time.Millisecond))
		time.Sleep(30 * time.Millisecond)

		_, err := s.Take(ctx, "gone")
		assert.ErrorIs(t, err, store.ErrNotFound)
	})
}

func TestMemoryStore_Sweep(t *testing.T) {
	s := store.NewMemoryStore(20 * time.Millisecond)
	defer s.Close()
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, "a", []byte("v"), 10*time.Millisecond))
	require.NoError(t, s.Put(ctx, "b", []byte("v"), time.Hour))

	assert.Eventually(t, func() bool {
		return s.Len() == 1
	}, time.Second, 10*time.Millisecond)
}

func TestMemoryStore_Take(t *testing.T) {
	ctx := context.Background()

	t.Run("take removes the entry", func(t *testing.T) {
		s := store.NewMemoryStore(0)
		defer s.Close()

		require.NoError(t, s.Put(ctx, "once", []byte("v"), time.Hour))

		val, err := s.Take(ctx, "once")
		require.NoError(t, err)
		assert.Equal(t, []byte("v"), val)

		_, err = s.Take(ctx, "once")
		assert.ErrorIs(t, err, store.ErrNotFound)
		_, err = s.Get(ctx, "once")
		assert.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("concurrent takers get exactly one value", func(t *testing.T) {
		s := store.NewMemoryStore(0)
		defer s.Close()

		require.NoError(t, s.Put(ctx, "contested", []byte("v"), time.Hour))

		const workers = 32
		var wg sync.WaitGroup
		var hits, misses int64
		var mu sync.Mutex

		for range workers {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := s.Take(ctx, "contested")
				mu.Lock()
				defer mu.Unlock()
				if err == nil {
					hits++
				} else {
					misses++
				}
			}()
		}
		wg.Wait()

		assert.EqualValues(t, 1, hits)
		assert.EqualValues(t, workers-1, misses)
	})
}

func TestMemoryStore_Namespace(t *testing.T) {
	ctx := context.Background()

	a := store.NewMemoryStore(0, store.WithNamespace("tenant-a"))
	defer a.Close()
	b := store.NewMemoryStore(0, store.WithNamespace("tenant-b"))
	defer b.Close()

	require.NoError(t, a.Put(ctx, "k", []byte("from-a"), time.Hour))

	// Namespaces keep stores isolated even when keys collide.
	_, err := b.Get(ctx, "k")
	assert.ErrorIs(t, err, store.ErrNotFound)

	val, err := a.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("from-a"), val)
}

func TestMemoryStore_Close(t *testing.T) {
	s := store.NewMemoryStore(time.Minute)
	ctx := context.Background()

	require.NoError(t, s.Close())
	assert.NoError(t, s.Close()) // idempotent

	assert.ErrorIs(t, s.Put(ctx, "k", []byte("v"), 0), store.ErrClosed)
}

func TestMemoryStore_ConcurrentAccess(t *testing.T) {
	s := store.NewMemoryStore(10 * time.Millisecond)
	defer s.Close()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := range 16 {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			key := string(rune('a' + n%8))
			for range 100 {
				_ = s.Put(ctx, key, []byte("v"), 5*time.Millisecond)
				_, _ = s.Get(ctx, key)
				_, _ = s.Take(ctx, key)
				_ = s.Delete(ctx, key)
			}
		}(i)
	}
	wg.Wait()
}
