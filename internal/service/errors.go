package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidCredential marks an opaque credential that cannot be
	// exchanged: unknown, revoked or expired.
	ErrInvalidCredential = errors.New("invalid credential")
	// ErrIssuerMisconfigured marks a token issuer that lacks its signing
	// key, issuer name or token duration.
	ErrIssuerMisconfigured = errors.New("token issuer is misconfigured")
	// ErrCredentialLookupFailed wraps storage failures met during an exchange.
	ErrCredentialLookupFailed = errors.New("credential lookup failed")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpired          = errors.New("token is expired")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
