// Package rememberme manages long-lived "remember me" tokens that
// re-establish a session without re-entering primary credentials.
//
// Tokens are strictly single-use with rotation on use. Consume claims the
// presented token through the store's atomic Take, so a replayed or
// concurrently raced token authenticates at most once: the first caller wins,
// every other caller observes an ordinary authentication failure. On success
// the manager issues a fresh token and rotates the session, because token
// consumption is a privilege change.
//
// Failures degrade silently to "not authenticated": an expired, replayed or
// orphaned token clears the stale cookie and returns ErrTokenNotFound rather
// than surfacing an error to the user.
//
// Usage:
//
//	mgr := rememberme.New(
//	    rememberme.WithStore(st),
//	    rememberme.WithSessionManager(sessions),
//	    rememberme.WithUserRepository(users),
//	)
//
//	// at login, when the user ticks "remember me":
//	_, err := mgr.Issue(ctx, w, user.ID)
//
//	// on a request without a live session:
//	sess, err := mgr.Consume(ctx, w, r)
//	if errors.Is(err, rememberme.ErrTokenNotFound) {
//	    // proceed unauthenticated; the stale cookie is already cleared
//	}
//
// The default cookie TTL is 30 days; the store entry and the cookie max-age
// always match.
package rememberme
