package service

import (
	"context"

	"github.com/trackflow/trackflow-server/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// UserService implements account registration, login and lookups.
type UserService interface {
	// Register creates an account and issues its first access token.
	Register(ctx context.Context, credentials models.Credentials) (models.User, models.Token, error)
	// Login checks credentials. Wrong credentials are reported through
	// LoginResult.Success, not through the error.
	Login(ctx context.Context, credentials models.Credentials) (models.LoginResult, error)
	GetUsers(ctx context.Context) ([]models.User, error)
	ListUsers(ctx context.Context, page models.PageRequest) (models.PaginationData[models.User], error)
	Profile(ctx context.Context, userID int64) (models.Profile, error)
}

// TokenService issues and verifies access tokens.
type TokenService interface {
	Issue(ctx context.Context, claims models.Claims) (models.Token, error)
	// Verify returns ErrTokenIsExpired or ErrTokenIsInvalid for rejected
	// tokens; any other error is an unexpected verification failure.
	Verify(ctx context.Context, token string) (models.Claims, error)
}

// AppInfoService exposes build metadata and liveness of the dependencies.
type AppInfoService interface {
	GetAppBuildInfo(ctx context.Context) models.AppBuildInfo
	Health(ctx context.Context) error
}
