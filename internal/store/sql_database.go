package store

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-holocron/internal/logger"
	"github.com/MKhiriev/go-holocron/migrations"
)

// DB is a database handle bound to one SQL dialect. It carries the
// statement builder with the dialect's placeholder format and the error
// classifier of the driver in use.
type DB struct {
	*sql.DB
	dialect            migrations.Dialect
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// ErrorClassificator inspects driver errors.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
	IsUniqueViolation(err error) bool
}

// querier is the subset of *sql.DB and *sql.Tx used by repositories.
type querier interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func newDB(conn *sql.DB, dialect migrations.Dialect, classificator ErrorClassificator, log *logger.Logger) *DB {
	var placeholder sq.PlaceholderFormat = sq.Question
	if dialect == migrations.Postgres {
		placeholder = sq.Dollar
	}

	return &DB{
		DB:                 conn,
		dialect:            dialect,
		builder:            sq.StatementBuilder.PlaceholderFormat(placeholder),
		errorClassificator: classificator,
		logger:             log,
	}
}

// Migrate applies the schema migrations of the DB's dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

// Dialect returns the SQL dialect of the connection.
func (db *DB) Dialect() migrations.Dialect {
	return db.dialect
}

// querier returns the transaction stored in ctx by [TxManager.WithinTx],
// or the connection pool when ctx carries none.
func (db *DB) querier(ctx context.Context) querier {
	if tx, ok := txFromContext(ctx); ok {
		return tx
	}

	return db.DB
}

func (db *DB) isUniqueViolation(err error) bool {
	if db.errorClassificator == nil {
		return false
	}

	return db.errorClassificator.IsUniqueViolation(err)
}

// retryable reports whether the driver classifies err as transient.
func (db *DB) retryable(err error) bool {
	if db.errorClassificator == nil {
		return false
	}

	return db.errorClassificator.Classify(err) == Retryable
}
