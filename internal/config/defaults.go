package config

import "time"

// Defaults applied by [StructuredConfig.applyDefaults].
const (
	DefaultAllowedOrigin   = "http://localhost:3110"
	DefaultRequestTimeout  = 30 * time.Second
	DefaultExchangeTimeout = 5 * time.Second
	DefaultCleanupInterval = time.Hour
	DefaultRetention       = 30 * 24 * time.Hour
	DefaultSwaggerTitle    = "go-bot-host"
	DefaultSwaggerEndpoint = "/api/info"
	DefaultLogLevel        = "debug"
)

func (cfg *StructuredConfig) applyDefaults() {
	if len(cfg.Server.AllowedOrigins) == 0 {
		cfg.Server.AllowedOrigins = []string{DefaultAllowedOrigin}
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.App.ExchangeTimeout == 0 {
		cfg.App.ExchangeTimeout = DefaultExchangeTimeout
	}
	if cfg.App.LogLevel == "" {
		cfg.App.LogLevel = DefaultLogLevel
	}
	if cfg.Workers.CleanupInterval == 0 {
		cfg.Workers.CleanupInterval = DefaultCleanupInterval
	}
	if cfg.Workers.Retention == 0 {
		cfg.Workers.Retention = DefaultRetention
	}
	if cfg.Swagger.Title == "" {
		cfg.Swagger.Title = DefaultSwaggerTitle
	}
	if cfg.Swagger.Version == "" {
		cfg.Swagger.Version = cfg.App.Version
	}
	if cfg.Swagger.Endpoint == "" {
		cfg.Swagger.Endpoint = DefaultSwaggerEndpoint
	}
}
