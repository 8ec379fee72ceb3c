package service

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-bot-host/internal/config"
	"github.com/MKhiriev/go-bot-host/internal/logger"
	"github.com/MKhiriev/go-bot-host/internal/utils"
	"github.com/MKhiriev/go-bot-host/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signTestToken(t *testing.T, issuer string, duration time.Duration, now time.Time) string {
	t.Helper()
	key, err := utils.DeriveKey(testSignKey, utils.KeyPurposeTokenSigning)
	require.NoError(t, err)

	token, err := utils.GenerateJWTToken(utils.TokenParams{
		Issuer:   issuer,
		Subject:  "alice",
		Role:     models.RoleUser,
		Duration: duration,
		SignKey:  key,
		Now:      now,
	})
	require.NoError(t, err)
	return token.SignedString
}

func TestAuthService_ParseToken_Valid(t *testing.T) {
	svc := NewAuthService(testAppConfig(), logger.Nop())

	token, err := svc.ParseToken(context.Background(), signTestToken(t, testIssuer, time.Hour, time.Now()))
	require.NoError(t, err)

	principal, err := token.Principal()
	require.NoError(t, err)
	assert.Equal(t, "alice", principal.Subject)
	assert.Equal(t, models.RoleUser, principal.Role)
}

func TestAuthService_ParseToken_Expired(t *testing.T) {
	svc := NewAuthService(testAppConfig(), logger.Nop())

	raw := signTestToken(t, testIssuer, time.Minute, time.Now().Add(-time.Hour))
	_, err := svc.ParseToken(context.Background(), raw)
	assert.ErrorIs(t, err, ErrTokenIsExpired)
}

func TestAuthService_ParseToken_Invalid(t *testing.T) {
	svc := NewAuthService(testAppConfig(), logger.Nop())

	tests := map[string]string{
		"garbage":      "not-a-jwt",
		"wrong issuer": signTestToken(t, "someone-else", time.Hour, time.Now()),
		"opaque":       testOpaque,
	}
	for name, raw := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := svc.ParseToken(context.Background(), raw)
			assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
		})
	}
}

func TestAuthService_ParseToken_OtherSecret(t *testing.T) {
	cfg := testAppConfig()
	cfg.TokenSignKey = "another-secret"
	svc := NewAuthService(cfg, logger.Nop())

	_, err := svc.ParseToken(context.Background(), signTestToken(t, testIssuer, time.Hour, time.Now()))
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestAuthService_ParseToken_Misconfigured(t *testing.T) {
	svc := NewAuthService(config.App{TokenIssuer: testIssuer}, logger.Nop())

	_, err := svc.ParseToken(context.Background(), "anything")
	assert.ErrorIs(t, err, ErrIssuerMisconfigured)
}
