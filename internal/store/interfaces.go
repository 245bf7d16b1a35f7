package store

import (
	"context"

	"github.com/trackflow/trackflow-server/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists and looks up user accounts.
type UserRepository interface {
	// CreateUser inserts user and returns it with the server-assigned id and
	// timestamps. A taken e-mail yields ErrEmailAlreadyExists.
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	// FindUserByEmail yields ErrNoUserWasFound when no account matches.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	// FindUserByID yields ErrNoUserWasFound when no account matches.
	FindUserByID(ctx context.Context, id int64) (models.User, error)
	// ListUsers returns at most limit users ordered by id, skipping offset.
	ListUsers(ctx context.Context, limit, offset int) ([]models.User, error)
	CountUsers(ctx context.Context) (int, error)
	// GetAllUsers returns every user ordered by id.
	GetAllUsers(ctx context.Context) ([]models.User, error)
}

// Pinger reports whether the database is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// ErrorClassifier maps a driver error onto one of the store sentinels
// (ErrEmailAlreadyExists, ErrDatabaseUnavailable). It returns nil for errors
// it does not recognise.
type ErrorClassifier interface {
	Classify(err error) error
}
