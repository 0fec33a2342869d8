// Package auth defines the user-identity boundary the session core depends
// on, plus a password authenticator that implements it over a pluggable
// storage interface.
//
// The core never interprets the user record beyond its identifier: session
// and persistent-token managers consume the UserRepository interface and
// treat User as opaque. How the record is persisted (relational store,
// document store, ...) is the application's concern.
//
// Authentication failures are results, not exceptions: a missing user or a
// wrong password both surface as ErrInvalidCredentials so callers cannot
// distinguish them (user enumeration defense).
//
//	repo := myUserStorage{} // implements auth.PasswordStorage
//	authn := auth.NewPasswordAuthenticator(repo)
//
//	user, err := authn.Authenticate(ctx, email, password)
//	if errors.Is(err, auth.ErrInvalidCredentials) {
//	    // show generic "wrong email or password"
//	}
package auth
