package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-bot-host/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// CredentialRepository persists opaque credentials. Credentials are addressed
// by the keyed digest of their opaque value, never by the value itself.
type CredentialRepository interface {
	// CreateCredential stores a new credential. A digest that already exists
	// yields [ErrCredentialAlreadyExists].
	CreateCredential(ctx context.Context, credential models.Credential) (models.Credential, error)
	// FindCredential returns the credential with the given digest or
	// [ErrCredentialNotFound].
	FindCredential(ctx context.Context, tokenHash string) (models.Credential, error)
	// RevokeCredential marks an active credential as revoked at the given
	// time. Unknown or already revoked credentials yield
	// [ErrCredentialNotFound].
	RevokeCredential(ctx context.Context, tokenHash string, at time.Time) error
	// DeleteStaleCredentials removes credentials that expired or were revoked
	// before the given time and returns how many were removed.
	DeleteStaleCredentials(ctx context.Context, before time.Time) (int64, error)
}

// ErrorClassificator inspects driver errors for the repository layer.
type ErrorClassificator interface {
	// Classify tells whether the failed operation may be retried.
	Classify(err error) ErrorClassification
	// IsUniqueViolation reports a unique or primary key constraint failure.
	IsUniqueViolation(err error) bool
}
