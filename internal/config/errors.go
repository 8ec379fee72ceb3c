package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrNoServerAddress indicates that neither an HTTP nor a gRPC address
	// was configured.
	ErrNoServerAddress = errors.New("no server address configured")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an empty DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidIssuerURL indicates that the remote issuer URL is not an
	// absolute URL.
	ErrInvalidIssuerURL = errors.New("invalid issuer url")
	// ErrNegativeDuration indicates a negative token duration or timeout.
	ErrNegativeDuration = errors.New("durations must not be negative")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings.
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
