package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-bot-host/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// TokenIssuer exchanges an opaque credential for a signed bearer token.
//
// Failures are reported with [ErrInvalidCredential] when the credential is
// unknown, revoked or expired, and with [ErrIssuerMisconfigured] when the
// signing configuration is incomplete. Other errors (storage, transport) are
// returned wrapped.
type TokenIssuer interface {
	Issue(ctx context.Context, opaqueToken string) (models.Token, error)
}

// AuthService validates bearer tokens presented to protected endpoints.
type AuthService interface {
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// CredentialService manages the lifecycle of opaque credentials.
type CredentialService interface {
	Mint(ctx context.Context, request models.CredentialRequest) (models.IssuedCredential, error)
	Revoke(ctx context.Context, opaqueToken string) error
	PurgeStale(ctx context.Context, retention time.Duration) (int64, error)
}

// AppInfoService exposes build and API metadata.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetAPIInfo(ctx context.Context) models.APIInfo
}
