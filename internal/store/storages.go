package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-holocron/internal/config"
	"github.com/MKhiriev/go-holocron/internal/logger"
)

// Storages groups the database handle with every repository built on it.
type Storages struct {
	DB                 *DB
	TxManager          TxManager
	UserRepository     UserRepository
	CatalogRepository  CatalogRepository
	FavoriteRepository FavoriteRepository
}

// NewStorages connects to PostgreSQL when cfg.DB.DSN is set and to the
// SQLite file at cfg.DB.SQLitePath otherwise, applies the schema migrations
// and builds the repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	var (
		db  *DB
		err error
	)

	if cfg.DB.DSN != "" {
		db, err = NewConnectPostgres(ctx, cfg.DB, log)
	} else {
		db, err = NewConnectSQLite(ctx, cfg.DB, log)
	}
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
		_ = db.Close()
		return nil, fmt.Errorf("error applying migrations: %w", err)
	}
	log.Info().Str("func", "NewStorages").Str("dialect", string(db.Dialect())).Msg("database schema is up to date")

	return NewStoragesFromDB(db, log), nil
}

// NewStoragesFromDB builds the repositories on an already migrated db.
func NewStoragesFromDB(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		DB:                 db,
		TxManager:          NewTxManager(db),
		UserRepository:     NewUserRepository(db, log),
		CatalogRepository:  NewCatalogRepository(db, log),
		FavoriteRepository: NewFavoriteRepository(db, log),
	}
}

// Ping verifies the database connection.
func (s *Storages) Ping(ctx context.Context) error {
	return s.DB.PingContext(ctx)
}

// Close closes the database connection pool.
func (s *Storages) Close() error {
	return s.DB.Close()
}
