// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-bot-host application. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds token issuing settings, the exchange timeout, the optional
	// remote issuer, the application version and the log level.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the credential database.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network addresses, timeouts, CORS origins and the static
	// files directory for the HTTP and gRPC servers.
	Server Server `envPrefix:"SERVER_"`

	// Swagger holds the API metadata served by /api/info and printed at
	// startup.
	Swagger Swagger `envPrefix:"SWAGGER_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Storage groups the configuration for all storage backends used by the
// application.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`
}

// App holds application-level configuration values that control token
// issuing and versioning.
type App struct {
	// TokenSignKey is the secret the token signing key and the credential
	// lookup key are derived from. Must be kept confidential.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued JWT token.
	// It identifies the service that issued the token and is validated on
	// every authenticated request.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenAudience is the optional "aud" claim. When set it is embedded in
	// issued tokens and required on authenticated requests.
	// Env: APP_TOKEN_AUDIENCE
	TokenAudience string `env:"TOKEN_AUDIENCE"`

	// TokenDuration specifies how long a JWT token remains valid after
	// issuance (e.g. "1h", "30m").
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// ExchangeTimeout bounds a single issuer call made by the token exchange
	// gate. Zero leaves the call bounded by the request context only.
	// Env: APP_EXCHANGE_TIMEOUT
	ExchangeTimeout time.Duration `env:"EXCHANGE_TIMEOUT"`

	// IssuerURL is the base URL of a remote host that exchanges opaque
	// credentials (POST {IssuerURL}/api/token). When empty the credentials
	// are exchanged locally.
	// Env: APP_ISSUER_URL
	IssuerURL string `env:"ISSUER_URL"`

	// Version is the semantic version string of the running application
	// (e.g. "1.2.3"). Exposed via the /api/version/ endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel is the global zerolog level ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// GRPCAddress is the TCP address on which the gRPC server listens,
	// in "host:port" format (e.g. "0.0.0.0:9090").
	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// AllowedOrigins lists the origins allowed by the CORS policy.
	// Env: SERVER_ALLOWED_ORIGINS (comma separated)
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:","`

	// StaticDir is the directory served for GET requests that match a file.
	// Empty disables static files.
	// Env: SERVER_STATIC_DIR
	StaticDir string `env:"STATIC_DIR"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN is the connection string. "postgres://" and "postgresql://" DSNs
	// open PostgreSQL through pgx, anything else is treated as a SQLite path
	// (e.g. "file:bot.db?_foreign_keys=on" or "bot.db").
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Swagger holds the public API metadata.
type Swagger struct {
	Title       string `env:"TITLE"`
	Version     string `env:"VERSION"`
	Description string `env:"DESCRIPTION"`
	License     string `env:"LICENSE"`
	Contact     string `env:"CONTACT"`
	// Endpoint is the path the metadata is served on.
	Endpoint string `env:"ENDPOINT"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// CleanupInterval defines how often stale credentials are purged.
	// Env: WORKERS_CLEANUP_INTERVAL
	CleanupInterval time.Duration `env:"CLEANUP_INTERVAL"`

	// Retention is how long expired or revoked credentials are kept before
	// they are purged.
	// Env: WORKERS_RETENTION
	Retention time.Duration `env:"RETENTION"`

	// DisableJanitor turns off periodic purging of stale credentials.
	// Env: WORKERS_DISABLE_JANITOR
	DisableJanitor bool `env:"DISABLE_JANITOR"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Defaults are applied to fields that are still zero after merging.
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
