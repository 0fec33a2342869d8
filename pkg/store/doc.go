// Package store provides a pluggable namespaced key/value cache with TTL
// eviction, used as the persistence layer for sessions and persistent
// authentication tokens.
//
// The package exposes a four-operation contract: Get, Put, Delete and Take.
// Take is an atomic read-and-delete used to implement single-use tokens; two
// concurrent Take calls for the same key are guaranteed to hand the value to
// at most one caller.
//
// A miss is a normal result, not a failure: Get and Take return ErrNotFound
// and callers branch on it with errors.Is.
//
// Two implementations ship out of the box:
//
//   - MemoryStore: a mutex-guarded in-memory map with lazy expiry on read and
//     an optional background sweep. Suitable for single-process deployments
//     and tests.
//   - RedisStore: a thin wrapper over go-redis that delegates TTL handling to
//     the server and uses GETDEL for atomic Take.
//
// Keys can be transparently prefixed with a deployment namespace so several
// applications can share one backend:
//
//	st := store.NewMemoryStore(5*time.Minute, store.WithNamespace("myapp"))
//	defer st.Close()
//
//	_ = st.Put(ctx, "session:abc", []byte("payload"), time.Hour)
//	val, err := st.Get(ctx, "session:abc")
//	if errors.Is(err, store.ErrNotFound) {
//	    // expired or never written
//	}
package store
