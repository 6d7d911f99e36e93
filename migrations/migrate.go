// Package migrations owns the database schema of the holocron server.
//
// Schema changes live in SQL files embedded into the binary, one directory
// per supported SQL dialect, and are applied with goose.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql sqlite/*.sql
var embedMigrations embed.FS

// Dialect names a supported SQL dialect.
type Dialect string

const (
	Postgres Dialect = "postgres"
	SQLite   Dialect = "sqlite"
)

var (
	errNilDB          = errors.New("db is nil")
	errUnknownDialect = errors.New("unknown sql dialect")
)

// gooseDialects maps a Dialect to the goose dialect name.
var gooseDialects = map[Dialect]string{
	Postgres: "pgx",
	SQLite:   "sqlite3",
}

// Migrate applies every pending migration of the given dialect to db.
// Applying an up-to-date schema is a no-op.
func Migrate(db *sql.DB, dialect Dialect) error {
	if db == nil {
		return fmt.Errorf("migration error: %w", errNilDB)
	}

	gooseDialect, ok := gooseDialects[dialect]
	if !ok {
		return fmt.Errorf("migration error: %w: %q", errUnknownDialect, dialect)
	}

	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect(gooseDialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, string(dialect)); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
