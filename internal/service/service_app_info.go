package service

import (
	"context"

	"github.com/trackflow/trackflow-server/internal/logger"
	"github.com/trackflow/trackflow-server/internal/store"
	"github.com/trackflow/trackflow-server/models"
)

type appInfoService struct {
	buildInfo models.AppBuildInfo
	pinger    store.Pinger

	logger *logger.Logger
}

func NewAppInfoService(buildInfo models.AppBuildInfo, pinger store.Pinger, logger *logger.Logger) AppInfoService {
	return &appInfoService{
		buildInfo: buildInfo,
		pinger:    pinger,
		logger:    logger,
	}
}

func (s *appInfoService) GetAppBuildInfo(ctx context.Context) models.AppBuildInfo {
	return s.buildInfo
}

// Health pings the database. The returned error wraps store.ErrDatabaseUnavailable.
func (s *appInfoService) Health(ctx context.Context) error {
	if err := s.pinger.Ping(ctx); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "appInfoService.Health").Msg("database ping failed")
		return err
	}

	return nil
}
