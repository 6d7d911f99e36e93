package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrNoUserWasFound is returned when a query expected to match a user
	// record produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrEntityNotFound is returned when a character, planet or vehicle
	// with the requested identifier does not exist.
	ErrEntityNotFound = errors.New("catalog entity was not found")

	// ErrFavoriteNotFound is returned when no favorite link matches the
	// requested user and entity.
	ErrFavoriteNotFound = errors.New("favorite link was not found")

	// ErrFavoriteAlreadyExists is returned when inserting a favorite link
	// violates the (user_id, entity_id) unique constraint.
	ErrFavoriteAlreadyExists = errors.New("favorite link already exists")

	// ErrUnsupportedEntityKind is returned when a repository is asked for an
	// entity kind it has no table for.
	ErrUnsupportedEntityKind = errors.New("unsupported entity kind")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrScanningRow is returned when scanning column values from a single
	// result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when iterating a multi-row result set
	// fails mid-way.
	ErrScanningRows = errors.New("failed to scan rows")
)
