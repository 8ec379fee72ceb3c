package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-bot-host/internal/config"
	"github.com/MKhiriev/go-bot-host/internal/logger"
	"github.com/MKhiriev/go-bot-host/internal/utils"
	"github.com/MKhiriev/go-bot-host/models"
	"github.com/golang-jwt/jwt/v5"
)

// authService is the concrete implementation of AuthService.
// It verifies bearer tokens signed with the key derived from the configured
// signing secret.
type authService struct {
	// keys holds the derived signing key.
	keys keyring

	// tokenIssuer is the expected "iss" claim.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenAudience is the expected "aud" claim, checked when non-empty.
	tokenAudience string

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService populated with token
// parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		keys:          newKeyring(cfg.TokenSignKey),
		tokenIssuer:   cfg.TokenIssuer,
		tokenAudience: cfg.TokenAudience,
		logger:        logger,
	}
}

// ParseToken validates and parses a raw JWT string.
//
// It delegates to utils.ValidateAndParseJWTToken, verifying the signature,
// the issuer, the audience and the expiry. Expired tokens yield
// ErrTokenIsExpired, every other validation failure is normalised to
// ErrTokenIsExpiredOrInvalid so that callers do not need to inspect
// low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	signingKey, err := a.keys.signingKey()
	if err != nil {
		return models.Token{}, err
	}
	if a.tokenIssuer == "" {
		return models.Token{}, fmt.Errorf("%w: missing issuer", ErrIssuerMisconfigured)
	}

	token, err := utils.ValidateAndParseJWTToken(tokenString, signingKey, a.tokenIssuer, a.tokenAudience)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return models.Token{}, ErrTokenIsExpired
		}
		logger.FromContextOr(ctx, a.logger).Debug().Err(err).Msg("token rejected")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
