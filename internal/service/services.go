package service

import (
	"github.com/MKhiriev/go-bot-host/internal/config"
	"github.com/MKhiriev/go-bot-host/internal/logger"
	"github.com/MKhiriev/go-bot-host/internal/store"
)

type Services struct {
	TokenIssuer       TokenIssuer
	AuthService       AuthService
	CredentialService CredentialService
	AppInfoService    AppInfoService
}

// Option customises Services built by NewServices.
type Option func(*Services) error

// WithTokenIssuer replaces the local token issuer, e.g. with a remote one.
func WithTokenIssuer(issuer TokenIssuer) Option {
	return func(s *Services) error {
		if issuer == nil {
			return ErrInvalidDataProvided
		}
		s.TokenIssuer = issuer
		return nil
	}
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger, opts ...Option) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, cfg.Swagger, logger)
	if err != nil {
		return nil, err
	}

	services := &Services{
		TokenIssuer:       NewTokenIssuer(storages.CredentialRepository, cfg.App, logger),
		AuthService:       NewAuthService(cfg.App, logger),
		CredentialService: NewCredentialService(storages.CredentialRepository, cfg.App, logger),
		AppInfoService:    appInfo,
	}

	for _, opt := range opts {
		if err := opt(services); err != nil {
			return nil, err
		}
	}

	return services, nil
}
