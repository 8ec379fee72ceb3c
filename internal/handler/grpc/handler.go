// Package grpc exposes the host over gRPC.
//
// Incoming calls go through the same token exchange gate as HTTP requests:
// [Handler.UnaryInterceptors] rewrites the "authorization" metadata before
// authentication runs. Only the standard health service is registered.
package grpc

import (
	"github.com/MKhiriev/go-bot-host/internal/gate"
	"github.com/MKhiriev/go-bot-host/internal/logger"
	"github.com/MKhiriev/go-bot-host/internal/service"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// Handler is the root gRPC transport handler.
//
// It stores references to the service layer, the gate and the structured
// logger. A handler instance is created once at startup and shared by the
// gRPC server.
type Handler struct {
	services *service.Services
	// gate may be nil; metadata is then passed through untouched.
	gate *gate.Gate

	health *health.Server

	logger *logger.Logger
}

// NewHandler constructs a [Handler] with the provided service container, gate
// and logger.
func NewHandler(services *service.Services, g *gate.Gate, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")
	return &Handler{
		services: services,
		gate:     g,
		health:   health.NewServer(),
		logger:   logger,
	}
}

// UnaryInterceptors returns the interceptor chain in execution order: token
// exchange first, then authentication.
func (h *Handler) UnaryInterceptors() []grpc.UnaryServerInterceptor {
	return []grpc.UnaryServerInterceptor{
		h.exchangeUnary,
		h.authUnary,
	}
}

// StreamInterceptors mirrors [Handler.UnaryInterceptors] for streaming calls.
func (h *Handler) StreamInterceptors() []grpc.StreamServerInterceptor {
	return []grpc.StreamServerInterceptor{
		h.exchangeStream,
		h.authStream,
	}
}

// Register installs the services of the handler on server.
func (h *Handler) Register(server *grpc.Server) {
	healthpb.RegisterHealthServer(server, h.health)
	h.health.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
}

// Shutdown marks every service as not serving, so health probes fail while
// in-flight calls drain.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}
