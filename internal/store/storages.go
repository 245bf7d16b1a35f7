package store

import (
	"context"
	"fmt"

	"github.com/trackflow/trackflow-server/internal/config"
	"github.com/trackflow/trackflow-server/internal/logger"
)

// Storages groups all repositories into a single value that can be passed
// around the service layer.
type Storages struct {
	// UserRepository persists user accounts.
	UserRepository UserRepository
	// Pinger reports database reachability for health checks.
	Pinger Pinger

	db *DB
}

// NewStorages initialises the storage layer:
//  1. Opens a connection pool for cfg.DB.Driver and pings it.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Wires the repositories to the shared [DB].
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewDB(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("database connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return newStorages(db, logger), nil
}

func newStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository: NewUserRepository(db, logger),
		Pinger:         db,
		db:             db,
	}
}

// Close releases the underlying connection pool.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
