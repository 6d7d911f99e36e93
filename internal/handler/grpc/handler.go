// Package grpc exposes the standard gRPC health service for the holocron
// server. The reported status follows the reachability of the store.
package grpc

import (
	"context"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/MKhiriev/go-holocron/internal/logger"
)

// ServiceName is the health service name reported for the REST API. The
// empty name ("") reports the overall server status and is kept in sync.
const ServiceName = "holocron.v1.API"

// Pinger checks that a dependency is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handler is the root gRPC transport handler.
//
// It owns a [health.Server] whose status is derived from a storage ping.
// A handler instance is created once at startup and shared by the gRPC server.
type Handler struct {
	// health serves grpc.health.v1.Health.
	health *health.Server

	// pinger is the store whose reachability drives the status.
	pinger Pinger

	// logger is used for status change diagnostics.
	logger *logger.Logger
}

// NewHandler constructs a [Handler] reporting NOT_SERVING until the first
// successful [Handler.CheckStorage].
func NewHandler(pinger Pinger, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")

	h := &Handler{
		health: health.NewServer(),
		pinger: pinger,
		logger: logger,
	}
	h.setStatus(healthpb.HealthCheckResponse_NOT_SERVING)

	return h
}

// Register attaches the health service to s.
func (h *Handler) Register(s *grpc.Server) {
	healthpb.RegisterHealthServer(s, h.health)
}

// CheckStorage pings the store once and updates the reported status.
func (h *Handler) CheckStorage(ctx context.Context) healthpb.HealthCheckResponse_ServingStatus {
	status := healthpb.HealthCheckResponse_SERVING
	if err := h.pinger.Ping(ctx); err != nil {
		h.logger.Err(err).Str("func", "*Handler.CheckStorage").Msg("storage ping failed")
		status = healthpb.HealthCheckResponse_NOT_SERVING
	}

	h.setStatus(status)
	return status
}

// Watch re-checks the store every interval until ctx is done.
func (h *Handler) Watch(ctx context.Context, interval time.Duration) {
	h.CheckStorage(ctx)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			h.CheckStorage(ctx)
		}
	}
}

// Shutdown marks every service NOT_SERVING and ignores later updates.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}

func (h *Handler) setStatus(status healthpb.HealthCheckResponse_ServingStatus) {
	h.health.SetServingStatus("", status)
	h.health.SetServingStatus(ServiceName, status)
}
