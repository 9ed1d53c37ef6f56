// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"

	"github.com/spf13/pflag"
)

// StructuredConfig is the top-level configuration container for the
// go-notes application. It aggregates all sub-configurations and is
// populated by merging values from a .env file, environment variables,
// command-line flags, an optional JSON or YAML file and built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the session token
	// parameters and the log level.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the relational database and the
	// optional Redis session store.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// ConfigFilePath is the optional path to a JSON or YAML configuration
	// file. The format is chosen by the file extension.
	// Populated via the CONFIG environment variable or the -c / --config flag.
	ConfigFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Name is used as the role field of the logger.
	// Env: APP_NAME
	Name string `env:"NAME"`

	// LogLevel is a zerolog level name ("debug", "info", "warn", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// TokenSignKey is the secret key used to sign and verify session tokens.
	// Must be kept confidential.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued session token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long a session remains valid after login
	// (e.g. "12h", "30m").
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// PasswordHashCost is the bcrypt cost used for new passwords.
	// Env: APP_PASSWORD_HASH_COST
	PasswordHashCost int `env:"PASSWORD_HASH_COST"`

	// SecureCookies marks the session cookie as Secure. Enable it when the
	// application is served over HTTPS.
	// Env: APP_SECURE_COOKIES
	SecureCookies bool `env:"SECURE_COOKIES"`
}

// Storage groups the configuration for all storage backends used by the
// application.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`

	// Redis holds the optional Redis connection used for revoked sessions.
	// When Address is empty, revoked sessions are kept in memory.
	Redis Redis `envPrefix:"REDIS_"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN selects the backend: "postgres://..." opens PostgreSQL,
	// "sqlite://...", "file:..." or ":memory:" open SQLite.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`

	// Env: STORAGE_DB_MAX_OPEN_CONNS
	MaxOpenConns int `env:"MAX_OPEN_CONNS"`

	// Env: STORAGE_DB_MAX_IDLE_CONNS
	MaxIdleConns int `env:"MAX_IDLE_CONNS"`

	// Env: STORAGE_DB_CONN_MAX_LIFETIME
	ConnMaxLifetime time.Duration `env:"CONN_MAX_LIFETIME"`
}

// Redis holds connection settings for the Redis session store.
type Redis struct {
	// Env: STORAGE_REDIS_ADDRESS
	Address string `env:"ADDRESS"`

	// Env: STORAGE_REDIS_PASSWORD
	Password string `env:"PASSWORD"`

	// Env: STORAGE_REDIS_DB
	DB int `env:"DB"`
}

// Server holds network and timeout settings for the HTTP server.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// Env: SERVER_READ_TIMEOUT
	ReadTimeout time.Duration `env:"READ_TIMEOUT"`

	// Env: SERVER_WRITE_TIMEOUT
	WriteTimeout time.Duration `env:"WRITE_TIMEOUT"`

	// ShutdownTimeout bounds graceful shutdown of in-flight requests.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// SessionCleanupInterval is how often expired revoked sessions are
	// dropped from the in-memory session store.
	// Env: WORKERS_SESSION_CLEANUP_INTERVAL
	SessionCleanupInterval time.Duration `env:"SESSION_CLEANUP_INTERVAL"`

	// DBStatsInterval is how often connection pool statistics are exported
	// to Prometheus.
	// Env: WORKERS_DB_STATS_INTERVAL
	DBStatsInterval time.Duration `env:"DB_STATS_INTERVAL"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources. Sources are merged in the
// following order, an earlier source winning over a later one for every
// non-zero field:
//  1. Environment variables (a .env file in the working directory is loaded
//     into the environment first, without overriding variables already set)
//  2. Command-line flags registered on fs by [RegisterFlags]
//  3. JSON or YAML file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// fs may be nil, in which case flags are skipped.
func GetStructuredConfig(fs *pflag.FlagSet) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDotEnv(".env").
		withEnv().
		withFlags(fs).
		withFile().
		withDefaults().
		build()
}
