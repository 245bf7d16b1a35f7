// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/trackflow/trackflow-server/internal/config"
	"github.com/trackflow/trackflow-server/internal/logger"
	"github.com/trackflow/trackflow-server/migrations"
)

// DB is the shared database handle of all repositories. It embeds *sql.DB
// and knows its dialect: which placeholder format queries are built with and
// how driver errors are classified.
type DB struct {
	*sql.DB
	driver          string
	placeholder     sq.PlaceholderFormat
	errorClassifier ErrorClassifier
	logger          *logger.Logger
}

// NewDB opens a connection pool for cfg.Driver, applies the pool limits and
// pings the database.
func NewDB(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		return NewConnectPostgres(ctx, cfg, log)
	case config.DriverSQLite:
		return NewConnectSQLite(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

func newDB(conn *sql.DB, driver string, log *logger.Logger) *DB {
	db := &DB{
		DB:     conn,
		driver: driver,
		logger: log,
	}

	switch driver {
	case config.DriverSQLite:
		db.placeholder = sq.Question
		db.errorClassifier = NewSQLiteErrorClassifier()
	default:
		db.placeholder = sq.Dollar
		db.errorClassifier = NewPostgresErrorClassifier()
	}

	return db
}

// Migrate applies all pending schema migrations of the handle's dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.driver)
}

// Ping checks that the database is reachable. Failures wrap
// ErrDatabaseUnavailable.
func (db *DB) Ping(ctx context.Context) error {
	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("%w: %w", ErrDatabaseUnavailable, err)
	}

	return nil
}

// builder returns a squirrel statement builder using the dialect's
// placeholder format.
func (db *DB) builder() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(db.placeholder)
}

// classify wraps err with the sentinel the dialect classifier recognises,
// or with fallback when it recognises none. Both sentinel and driver error
// stay reachable through errors.Is / errors.As.
func (db *DB) classify(err, fallback error) error {
	if sentinel := db.errorClassifier.Classify(err); sentinel != nil {
		return fmt.Errorf("%w: %w", sentinel, err)
	}

	return fmt.Errorf("%w: %w", fallback, err)
}
