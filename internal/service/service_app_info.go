package service

import (
	"context"

	"github.com/MKhiriev/go-bot-host/internal/config"
	"github.com/MKhiriev/go-bot-host/internal/logger"
	"github.com/MKhiriev/go-bot-host/models"
)

type appInfoService struct {
	appVersion string
	apiInfo    models.APIInfo

	logger *logger.Logger
}

func NewAppInfoService(app config.App, swagger config.Swagger, logger *logger.Logger) (AppInfoService, error) {
	if app.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	version := swagger.Version
	if version == "" {
		version = app.Version
	}

	return &appInfoService{
		appVersion: app.Version,
		apiInfo: models.APIInfo{
			Title:          swagger.Title,
			Version:        version,
			Description:    swagger.Description,
			License:        swagger.License,
			Contact:        swagger.Contact,
			Endpoint:       swagger.Endpoint,
			SecurityScheme: models.TokenTypeBearer,
		},
		logger: logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}

func (s *appInfoService) GetAPIInfo(ctx context.Context) models.APIInfo {
	return s.apiInfo
}
