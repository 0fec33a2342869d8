// Package config loads typed configuration structs from the environment.
//
// It wraps caarlos0/env with a per-type cache so every configuration type is
// parsed at most once per process, and loads a .env file (if present) before
// the first parse. Required keys fail only when the struct that declares them
// is actually loaded: fail late, fail precisely.
//
//	type SessionConfig struct {
//	    CookieName string        `env:"SESSION_COOKIE_NAME" envDefault:"sid"`
//	    TTL        time.Duration `env:"SESSION_TTL" envDefault:"24h"`
//	}
//
//	var cfg SessionConfig
//	if err := config.Load(&cfg); err != nil {
//	    log.Fatal(err)
//	}
package config
