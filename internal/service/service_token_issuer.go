package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-bot-host/internal/config"
	"github.com/MKhiriev/go-bot-host/internal/logger"
	"github.com/MKhiriev/go-bot-host/internal/store"
	"github.com/MKhiriev/go-bot-host/internal/utils"
	"github.com/MKhiriev/go-bot-host/models"
)

// tokenIssuer is the local implementation of TokenIssuer.
// It resolves opaque credentials through a CredentialRepository and signs
// HS256 bearer tokens for them.
type tokenIssuer struct {
	// credentials resolves credential digests to stored credentials.
	credentials store.CredentialRepository

	// keys holds the signing key and the credential lookup key.
	keys keyring

	// issuer is the "iss" claim embedded in every issued token.
	issuer string

	// audience is the optional "aud" claim.
	audience string

	// duration is the lifetime of an issued token. A credential that expires
	// sooner shortens it.
	duration time.Duration

	now    func() time.Time
	logger *logger.Logger
}

// NewTokenIssuer constructs the local TokenIssuer from the App section of the
// configuration. Incomplete signing settings do not fail construction; they
// are reported by every Issue call as ErrIssuerMisconfigured.
func NewTokenIssuer(credentials store.CredentialRepository, cfg config.App, logger *logger.Logger) TokenIssuer {
	return &tokenIssuer{
		credentials: credentials,
		keys:        newKeyring(cfg.TokenSignKey),
		issuer:      cfg.TokenIssuer,
		audience:    cfg.TokenAudience,
		duration:    cfg.TokenDuration,
		now:         time.Now,
		logger:      logger,
	}
}

// Issue exchanges opaqueToken for a signed bearer token.
//
// Returns:
//   - ErrIssuerMisconfigured if the sign key, issuer or duration is missing.
//   - ErrInvalidCredential if the credential is malformed, unknown, revoked
//     or expired.
//   - ErrCredentialLookupFailed if the credential store fails.
func (i *tokenIssuer) Issue(ctx context.Context, opaqueToken string) (models.Token, error) {
	log := logger.FromContextOr(ctx, i.logger)

	if err := i.checkConfig(); err != nil {
		return models.Token{}, err
	}

	if len(opaqueToken) != utils.OpaqueTokenLength {
		return models.Token{}, fmt.Errorf("%w: unexpected length %d", ErrInvalidCredential, len(opaqueToken))
	}

	digest, err := i.keys.digest(opaqueToken)
	if err != nil {
		return models.Token{}, err
	}

	credential, err := i.credentials.FindCredential(ctx, digest)
	switch {
	case errors.Is(err, store.ErrCredentialNotFound):
		return models.Token{}, fmt.Errorf("%w: unknown credential", ErrInvalidCredential)
	case err != nil:
		log.Err(err).Str("func", "*tokenIssuer.Issue").Msg("credential lookup failed")
		return models.Token{}, fmt.Errorf("%w: %w", ErrCredentialLookupFailed, err)
	}

	now := i.now()
	if !credential.IsActive(now) {
		return models.Token{}, fmt.Errorf("%w: credential is revoked or expired", ErrInvalidCredential)
	}

	duration := i.duration
	if credential.ExpiresAt != nil {
		duration = min(duration, credential.ExpiresAt.Sub(now))
	}

	signingKey, _ := i.keys.signingKey()
	token, err := utils.GenerateJWTToken(utils.TokenParams{
		Issuer:   i.issuer,
		Audience: i.audience,
		Subject:  credential.Subject,
		Role:     credential.Role,
		Duration: duration,
		SignKey:  signingKey,
		Now:      now,
	})
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	log.Debug().Str("subject", credential.Subject).Str("role", credential.Role).Msg("credential exchanged")
	return token, nil
}

func (i *tokenIssuer) checkConfig() error {
	var missing []string
	if i.keys.err != nil {
		missing = append(missing, "sign key")
	}
	if i.issuer == "" {
		missing = append(missing, "issuer")
	}
	if i.duration <= 0 {
		missing = append(missing, "token duration")
	}

	if len(missing) > 0 {
		return fmt.Errorf("%w: missing %s", ErrIssuerMisconfigured, strings.Join(missing, ", "))
	}

	return nil
}
