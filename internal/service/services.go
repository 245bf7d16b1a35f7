package service

import (
	"github.com/trackflow/trackflow-server/internal/config"
	"github.com/trackflow/trackflow-server/internal/logger"
	"github.com/trackflow/trackflow-server/internal/store"
	"github.com/trackflow/trackflow-server/models"
)

type Services struct {
	UserService    UserService
	TokenService   TokenService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) *Services {
	tokenService := NewTokenService(cfg.App, logger)

	return &Services{
		UserService:    NewUserService(storages.UserRepository, tokenService, cfg.App, logger),
		TokenService:   tokenService,
		AppInfoService: NewAppInfoService(buildInfo, storages.Pinger, logger),
	}
}
