package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassification tells whether a failed statement could succeed on a
// second attempt. The store never retries; the value is only logged.
type ErrorClassification int

const (
	NonRetryable ErrorClassification = iota
	Retryable
)

// PostgresErrorClassifier implements [ErrorClassificator] on pgconn errors.
type PostgresErrorClassifier struct{}

func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify reports lost connections, serialization failures and deadlocks
// as [Retryable]. A favorite insert racing another one can only fail with
// one of these or with a unique violation.
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return NonRetryable
	}

	if pgerrcode.IsConnectionException(pgErr.Code) ||
		pgerrcode.IsTransactionRollback(pgErr.Code) ||
		pgErr.Code == pgerrcode.CannotConnectNow {
		return Retryable
	}

	return NonRetryable
}

// IsUniqueViolation reports a unique_violation (23505).
func (c *PostgresErrorClassifier) IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}
