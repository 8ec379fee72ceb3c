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
	"github.com/MKhiriev/go-bot-host/internal/validators"
	"github.com/MKhiriev/go-bot-host/models"
)

// maxMintAttempts bounds retries on the unlikely digest collision.
const maxMintAttempts = 3

type credentialService struct {
	credentials store.CredentialRepository
	keys        keyring
	validator   validators.Validator
	now         func() time.Time
	logger      *logger.Logger
}

// NewCredentialService returns a CredentialService storing credentials in
// repo. Credential digests use the lookup key derived from cfg.TokenSignKey.
func NewCredentialService(repo store.CredentialRepository, cfg config.App, logger *logger.Logger) CredentialService {
	return &credentialService{
		credentials: repo,
		keys:        newKeyring(cfg.TokenSignKey),
		validator:   validators.NewCredentialValidator(),
		now:         time.Now,
		logger:      logger,
	}
}

// Mint creates a new opaque credential for request.Subject. The opaque value
// is returned once and only its digest is stored.
func (s *credentialService) Mint(ctx context.Context, request models.CredentialRequest) (models.IssuedCredential, error) {
	log := logger.FromContextOr(ctx, s.logger)

	if err := s.validator.Validate(ctx, request); err != nil {
		return models.IssuedCredential{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	subject := strings.TrimSpace(request.Subject)
	role := request.Role
	if role == "" {
		role = models.RoleUser
	}

	now := s.now().UTC()
	credential := models.Credential{
		Subject:   subject,
		Role:      role,
		CreatedAt: now,
	}
	if request.ExpiresIn > 0 {
		expiresAt := now.Add(time.Duration(request.ExpiresIn) * time.Second)
		credential.ExpiresAt = &expiresAt
	}

	for attempt := 1; ; attempt++ {
		opaque := utils.NewOpaqueToken()

		digest, err := s.keys.digest(opaque)
		if err != nil {
			return models.IssuedCredential{}, err
		}
		credential.TokenHash = digest

		stored, err := s.credentials.CreateCredential(ctx, credential)
		if errors.Is(err, store.ErrCredentialAlreadyExists) && attempt < maxMintAttempts {
			continue
		}
		if err != nil {
			log.Err(err).Str("func", "*credentialService.Mint").Msg("error storing credential")
			return models.IssuedCredential{}, err
		}

		log.Info().Str("subject", stored.Subject).Str("role", stored.Role).Msg("credential minted")
		return models.IssuedCredential{
			Token:     opaque,
			Subject:   stored.Subject,
			Role:      stored.Role,
			ExpiresAt: stored.ExpiresAt,
		}, nil
	}
}

// Revoke marks the credential as revoked. Malformed or unknown credentials
// yield ErrInvalidCredential.
func (s *credentialService) Revoke(ctx context.Context, opaqueToken string) error {
	if len(opaqueToken) != utils.OpaqueTokenLength {
		return fmt.Errorf("%w: unexpected length %d", ErrInvalidCredential, len(opaqueToken))
	}

	digest, err := s.keys.digest(opaqueToken)
	if err != nil {
		return err
	}

	err = s.credentials.RevokeCredential(ctx, digest, s.now().UTC())
	if errors.Is(err, store.ErrCredentialNotFound) {
		return fmt.Errorf("%w: unknown or already revoked", ErrInvalidCredential)
	}

	return err
}

// PurgeStale deletes credentials that expired or were revoked more than
// retention ago.
func (s *credentialService) PurgeStale(ctx context.Context, retention time.Duration) (int64, error) {
	if retention < 0 {
		return 0, fmt.Errorf("%w: negative retention", ErrInvalidDataProvided)
	}

	return s.credentials.DeleteStaleCredentials(ctx, s.now().UTC().Add(-retention))
}
