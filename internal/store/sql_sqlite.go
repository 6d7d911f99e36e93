package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/go-holocron/internal/config"
	"github.com/MKhiriev/go-holocron/internal/logger"
	"github.com/MKhiriev/go-holocron/migrations"
)

// sqliteDSNOptions turns on foreign keys, waits on a locked database instead
// of failing, and starts every transaction with a write lock so that
// check-then-insert sequences are serialized.
const sqliteDSNOptions = "?_foreign_keys=on&_busy_timeout=5000&_txlock=immediate"

// NewConnectSQLite opens the SQLite file at cfg.SQLitePath, creating it when
// missing, and verifies the connection with a ping.
func NewConnectSQLite(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	// db will be in file
	if err := createLocalDBFileIfNotExists(cfg.SQLitePath); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error creating database file")
		return nil, fmt.Errorf("error creating database file: %w", err)
	}

	conn, err := sql.Open("sqlite3", cfg.SQLitePath+sqliteDSNOptions)
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database")
		return nil, fmt.Errorf("error opening connection to DB: %w", err)
	}

	// ping database
	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database (ping)")
		_ = conn.Close()
		return nil, fmt.Errorf("error connecting database: %w", err)
	}
	log.Info().Str("func", "NewConnectSQLite").Str("path", cfg.SQLitePath).Msg("connected to database successfully")

	return newDB(conn, migrations.SQLite, NewSQLiteErrorClassifier(), log), nil
}

// NewInMemorySQLite opens a private in-memory SQLite database. The pool is
// limited to one connection because every connection to ":memory:" is a
// separate database.
func NewInMemorySQLite(ctx context.Context, log *logger.Logger) (*DB, error) {
	conn, err := sql.Open("sqlite3", ":memory:"+sqliteDSNOptions)
	if err != nil {
		return nil, fmt.Errorf("error opening connection to DB: %w", err)
	}
	conn.SetMaxOpenConns(1)

	if err = conn.PingContext(ctx); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("error connecting database: %w", err)
	}

	return newDB(conn, migrations.SQLite, NewSQLiteErrorClassifier(), log), nil
}

func createLocalDBFileIfNotExists(dbFile string) error {
	if _, err := os.Stat(dbFile); os.IsNotExist(err) {
		if dir := filepath.Dir(dbFile); dir != "" {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("error creating DB directory: %w", err)
			}
		}

		// if not found - create
		f, err := os.Create(dbFile)
		if err != nil {
			return fmt.Errorf("error creating DB file: %w", err)
		}
		f.Close()
	}

	// file already exists
	return nil
}
