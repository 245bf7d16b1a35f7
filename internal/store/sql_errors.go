package store

import (
	"database/sql"
	"database/sql/driver"
	"errors"
	"net"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
)

// PostgresErrorClassifier implements [ErrorClassifier] for PostgreSQL.
// It inspects the pgconn error code returned by the pgx driver.
type PostgresErrorClassifier struct{}

// NewPostgresErrorClassifier constructs a [PostgresErrorClassifier] ready for use.
func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify implements [ErrorClassifier].
//
//   - 23505 unique_violation → [ErrEmailAlreadyExists]
//   - Class 08 connection exceptions, 57P01..57P03 shutdown / cannot connect
//     now, pgconn connect errors and lost connections → [ErrDatabaseUnavailable]
//
// See https://www.postgresql.org/docs/current/errcodes-appendix.html for the
// full list of PostgreSQL error codes.
func (c *PostgresErrorClassifier) Classify(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return ClassifyPgError(pgErr)
	}

	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) {
		return ErrDatabaseUnavailable
	}

	return classifyConnectionError(err)
}

// ClassifyPgError maps a *pgconn.PgError to a store sentinel based on the
// PostgreSQL error code, or nil when the code carries no domain meaning.
func ClassifyPgError(pgErr *pgconn.PgError) error {
	switch {
	case pgErr.Code == pgerrcode.UniqueViolation:
		return ErrEmailAlreadyExists
	case pgerrcode.IsConnectionException(pgErr.Code):
		return ErrDatabaseUnavailable
	}

	switch pgErr.Code {
	case pgerrcode.AdminShutdown, // 57P01
		pgerrcode.CrashShutdown,    // 57P02
		pgerrcode.CannotConnectNow: // 57P03
		return ErrDatabaseUnavailable
	}

	return nil
}

// SQLiteErrorClassifier implements [ErrorClassifier] for go-sqlite3.
type SQLiteErrorClassifier struct{}

// NewSQLiteErrorClassifier constructs a [SQLiteErrorClassifier] ready for use.
func NewSQLiteErrorClassifier() *SQLiteErrorClassifier {
	return &SQLiteErrorClassifier{}
}

// Classify implements [ErrorClassifier].
//
//   - SQLITE_CONSTRAINT_UNIQUE → [ErrEmailAlreadyExists]
//   - SQLITE_CANTOPEN, SQLITE_NOTADB, SQLITE_IOERR → [ErrDatabaseUnavailable]
func (c *SQLiteErrorClassifier) Classify(err error) error {
	if err == nil {
		return nil
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		switch {
		case sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique:
			return ErrEmailAlreadyExists
		case sqliteErr.Code == sqlite3.ErrCantOpen,
			sqliteErr.Code == sqlite3.ErrNotADB,
			sqliteErr.Code == sqlite3.ErrIoErr:
			return ErrDatabaseUnavailable
		}
		return nil
	}

	return classifyConnectionError(err)
}

// classifyConnectionError recognises database/sql and network level
// connection failures common to every driver.
func classifyConnectionError(err error) error {
	if errors.Is(err, driver.ErrBadConn) || errors.Is(err, sql.ErrConnDone) {
		return ErrDatabaseUnavailable
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return ErrDatabaseUnavailable
	}

	return nil
}
