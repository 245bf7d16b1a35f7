package adapter

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

import (
	"context"

	"github.com/trackflow/trackflow-server/models"
)

// ServerAdapter is a typed client of the trackflow HTTP API.
//
// Every call decodes the response envelope. A non-zero envelope code is
// returned as a *models.Error carrying the server's code and message.
type ServerAdapter interface {
	// SetToken stores the bearer token sent with authenticated requests.
	SetToken(token string)

	// Token returns the bearer token currently held, or an empty string.
	Token() string

	// Health calls GET /health.
	Health(ctx context.Context) (models.HealthStatus, error)

	// Register calls POST /api/user/register and keeps the issued token.
	Register(ctx context.Context, credentials models.Credentials) (models.User, error)

	// Login calls POST /api/user/login. A rejected login is returned as a
	// LoginResult with Success set to false and a nil error. On success the
	// issued token is kept.
	Login(ctx context.Context, credentials models.Credentials) (models.LoginResult, error)

	// Profile calls GET /api/auth/profile with the held token.
	Profile(ctx context.Context) (models.Profile, error)

	// GetUsers calls POST /api/user/getUsers.
	GetUsers(ctx context.Context) ([]models.User, error)

	// ListUsers calls GET /api/user/list for one page.
	ListUsers(ctx context.Context, page models.PageRequest) (models.PaginationData[models.User], error)
}
