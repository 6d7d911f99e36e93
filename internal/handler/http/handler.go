package http

import (
	"time"

	"github.com/MKhiriev/go-holocron/internal/config"
	"github.com/MKhiriev/go-holocron/internal/logger"
	"github.com/MKhiriev/go-holocron/internal/service"
	"github.com/MKhiriev/go-holocron/internal/utils"
)

type Handler struct {
	services *service.Services

	// actingUserID is injected into every request context; there is no
	// authentication.
	actingUserID   int64
	requestTimeout time.Duration
	traceIDs       *utils.UUIDGenerator

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Int64("acting_user_id", cfg.App.ActingUserID).Msg("http handler created")
	return &Handler{
		services:       services,
		actingUserID:   cfg.App.ActingUserID,
		requestTimeout: cfg.Server.RequestTimeout,
		traceIDs:       utils.NewUUIDGenerator(),
		logger:         logger,
	}
}
