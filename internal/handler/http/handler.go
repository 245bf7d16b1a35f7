package http

import (
	"time"

	"github.com/trackflow/trackflow-server/internal/config"
	"github.com/trackflow/trackflow-server/internal/logger"
	"github.com/trackflow/trackflow-server/internal/service"
)

type Handler struct {
	services *service.Services

	// statusPolicy decides the HTTP status of every envelope, see statusFor.
	statusPolicy string
	maxBodyBytes int64

	now func() time.Time

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Str("status_policy", cfg.StatusPolicy).Msg("http handler created")
	return &Handler{
		services:     services,
		statusPolicy: cfg.StatusPolicy,
		maxBodyBytes: cfg.MaxBodyBytes,
		now:          time.Now,
		logger:       logger,
	}
}
