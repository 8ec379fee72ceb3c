package handler

import (
	"github.com/MKhiriev/go-bot-host/internal/config"
	"github.com/MKhiriev/go-bot-host/internal/gate"
	"github.com/MKhiriev/go-bot-host/internal/handler/grpc"
	"github.com/MKhiriev/go-bot-host/internal/handler/http"
	"github.com/MKhiriev/go-bot-host/internal/logger"
	"github.com/MKhiriev/go-bot-host/internal/metrics"
	"github.com/MKhiriev/go-bot-host/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

// NewHandlers creates a transport handler for every configured address. Both
// transports share the same gate.
func NewHandlers(services *service.Services, g *gate.Gate, registry *metrics.Registry, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, g, registry, cfg, logger)
	}
	if cfg.GRPCAddress != "" {
		handlers.GRPC = grpc.NewHandler(services, g, logger)
	}

	if handlers.HTTP == nil && handlers.GRPC == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
