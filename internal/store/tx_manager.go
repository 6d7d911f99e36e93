package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/go-holocron/internal/logger"
	"github.com/MKhiriev/go-holocron/migrations"
)

type txCtxKey struct{}

type txManager struct {
	db *DB
}

// NewTxManager constructs a [TxManager] running transactions on db.
func NewTxManager(db *DB) TxManager {
	return &txManager{db: db}
}

// WithinTx begins a transaction, stores it in the context passed to fn and
// commits it when fn returns nil. It rolls back when fn fails or panics.
// A context that already carries a transaction is passed through, so
// nested calls join the outer transaction.
func (m *txManager) WithinTx(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	if _, ok := txFromContext(ctx); ok {
		return fn(ctx)
	}

	log := logger.FromContext(ctx)

	tx, err := m.db.BeginTx(ctx, m.txOptions())
	if err != nil {
		log.Err(err).Str("func", "*txManager.WithinTx").Msg("error beginning transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}

		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				log.Err(rbErr).Str("func", "*txManager.WithinTx").Msg("error rolling back transaction")
			}
			return
		}

		if commitErr := tx.Commit(); commitErr != nil {
			log.Err(commitErr).
				Str("func", "*txManager.WithinTx").
				Bool("retryable", m.db.retryable(commitErr)).
				Msg("error committing transaction")
			err = fmt.Errorf("%w: %w", ErrCommitingTransaction, commitErr)
		}
	}()

	err = fn(context.WithValue(ctx, txCtxKey{}, tx))
	return err
}

// txOptions returns nil for SQLite: its driver ignores isolation levels and
// the write lock is taken by the _txlock DSN option instead.
func (m *txManager) txOptions() *sql.TxOptions {
	if m.db.dialect == migrations.Postgres {
		return &sql.TxOptions{Isolation: sql.LevelReadCommitted}
	}

	return nil
}

func txFromContext(ctx context.Context) (*sql.Tx, bool) {
	tx, ok := ctx.Value(txCtxKey{}).(*sql.Tx)
	return tx, ok
}
