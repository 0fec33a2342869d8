// Package session manages the lifecycle of short-lived, rotating session
// identifiers that bind an opaque request-carried token to an authenticated
// user identity.
//
// A Manager orchestrates four operations over a pluggable store.Store and a
// Transport:
//
//   - Fetch resolves the current session from the request (read-only).
//   - Create generates a fresh cryptographically random token, persists the
//     session, and only then writes the token to the response. The inbound
//     pre-authentication token is never reused (fixation defense).
//   - Destroy removes the session and clears the outgoing token.
//   - Rotate is Destroy followed by Create, used on any privilege change:
//     login, password change, persistent-token consumption.
//
// A session miss is a normal outcome, reported as ErrNotAuthenticated, never
// as a panic or opaque failure. Missing required collaborators (store,
// transport) surface as ErrConfiguration — a fatal setup defect — and are
// checked lazily when an operation actually needs them.
//
// The store mutation always completes before the outgoing token is written,
// so a client never holds a credential the server did not record. A put that
// lands for a request aborted before the response is sent is reclaimed by
// TTL expiry.
//
// Usage:
//
//	st := store.NewMemoryStore(5 * time.Minute)
//	manager := session.New(session.WithStore(st))
//
//	func loginHandler(w http.ResponseWriter, r *http.Request) {
//	    user, err := authenticator.Authenticate(r.Context(), email, password)
//	    if err != nil { ... }
//	    sess, err := manager.Create(r.Context(), w, r, user.ID)
//	    ...
//	}
//
// Token transports are pluggable: a cookie transport is the default, a header
// transport ships for API clients, and CompositeTransport tries several in
// order.
package session
