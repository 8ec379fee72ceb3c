package http

import (
	"github.com/MKhiriev/go-bot-host/internal/config"
	"github.com/MKhiriev/go-bot-host/internal/gate"
	"github.com/MKhiriev/go-bot-host/internal/logger"
	"github.com/MKhiriev/go-bot-host/internal/metrics"
	"github.com/MKhiriev/go-bot-host/internal/service"
)

type Handler struct {
	services *service.Services
	gate     *gate.Gate
	// metrics may be nil; /metrics is not served then.
	metrics *metrics.Registry
	cfg     config.Server

	logger *logger.Logger
}

func NewHandler(services *service.Services, g *gate.Gate, registry *metrics.Registry, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		gate:     g,
		metrics:  registry,
		cfg:      cfg,
		logger:   logger,
	}
}

// credentialHeader is the header the gate rewrites and auth reads.
func (h *Handler) credentialHeader() string {
	if h.gate == nil {
		return defaultCredentialHeader
	}
	return h.gate.Header()
}
