package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-holocron/internal/logger"
	"github.com/MKhiriev/go-holocron/models"
)

// favoriteRepository is the SQL implementation of [FavoriteRepository].
// Links of each entity kind live in their own table; the kind of the
// request selects the table.
type favoriteRepository struct {
	*DB
	logger *logger.Logger
}

// NewFavoriteRepository constructs a [FavoriteRepository] backed by db.
func NewFavoriteRepository(db *DB, logger *logger.Logger) FavoriteRepository {
	logger.Debug().Msg("creating favorite repository")
	return &favoriteRepository{
		DB:     db,
		logger: logger,
	}
}

// FindFavorite returns the link of userID to entityID or [ErrFavoriteNotFound].
func (r *favoriteRepository) FindFavorite(ctx context.Context, kind models.EntityKind, userID, entityID int64) (models.FavoriteLink, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindFavoriteQuery(r.builder, kind, userID, entityID)
	if err != nil {
		log.Err(err).Str("func", "*favoriteRepository.FindFavorite").Str("kind", kind.String()).Msg("failed to create query")
		return models.FavoriteLink{}, err
	}

	link := models.FavoriteLink{Kind: kind}
	err = r.querier(ctx).QueryRowContext(ctx, query, args...).Scan(&link.ID, &link.UserID, &link.EntityID)
	if errors.Is(err, sql.ErrNoRows) {
		return models.FavoriteLink{}, ErrFavoriteNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "*favoriteRepository.FindFavorite").
			Str("kind", kind.String()).
			Int64("user_id", userID).
			Int64("entity_id", entityID).
			Msg("failed to find favorite")
		return models.FavoriteLink{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return link, nil
}

// CreateFavorite inserts link and returns it with the generated id.
// A violation of the (user_id, entity_id) unique constraint is reported as
// [ErrFavoriteAlreadyExists].
func (r *favoriteRepository) CreateFavorite(ctx context.Context, link models.FavoriteLink) (models.FavoriteLink, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertFavoriteQuery(r.builder, link.Kind, link.UserID, link.EntityID)
	if err != nil {
		log.Err(err).Str("func", "*favoriteRepository.CreateFavorite").Str("kind", link.Kind.String()).Msg("failed to create query")
		return models.FavoriteLink{}, err
	}

	if err = r.querier(ctx).QueryRowContext(ctx, query, args...).Scan(&link.ID); err != nil {
		if r.isUniqueViolation(err) {
			return models.FavoriteLink{}, ErrFavoriteAlreadyExists
		}

		log.Err(err).
			Str("func", "*favoriteRepository.CreateFavorite").
			Str("kind", link.Kind.String()).
			Int64("user_id", link.UserID).
			Int64("entity_id", link.EntityID).
			Bool("retryable", r.retryable(err)).
			Msg("failed to insert favorite")
		return models.FavoriteLink{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return link, nil
}

// DeleteFavorite removes the link of link.UserID to link.EntityID.
// It returns [ErrFavoriteNotFound] when no row was deleted.
func (r *favoriteRepository) DeleteFavorite(ctx context.Context, link models.FavoriteLink) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteFavoriteQuery(r.builder, link.Kind, link.UserID, link.EntityID)
	if err != nil {
		log.Err(err).Str("func", "*favoriteRepository.DeleteFavorite").Str("kind", link.Kind.String()).Msg("failed to create query")
		return err
	}

	result, err := r.querier(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*favoriteRepository.DeleteFavorite").
			Str("kind", link.Kind.String()).
			Bool("retryable", r.retryable(err)).
			Msg("failed to delete favorite")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrFavoriteNotFound
	}

	return nil
}

// ListFavorites returns the links of userID for kind joined with entity
// names, in link id order.
func (r *favoriteRepository) ListFavorites(ctx context.Context, kind models.EntityKind, userID int64) ([]models.FavoriteEntry, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListFavoritesQuery(r.builder, kind, userID)
	if err != nil {
		log.Err(err).Str("func", "*favoriteRepository.ListFavorites").Str("kind", kind.String()).Msg("failed to create query")
		return nil, err
	}

	rows, err := r.querier(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*favoriteRepository.ListFavorites").Str("kind", kind.String()).Int64("user_id", userID).Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	entries := make([]models.FavoriteEntry, 0)
	for rows.Next() {
		var entry models.FavoriteEntry
		if scanErr := rows.Scan(&entry.LinkID, &entry.EntityID, &entry.EntityName); scanErr != nil {
			log.Err(scanErr).Str("func", "*favoriteRepository.ListFavorites").Msg("failed to scan favorite row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*favoriteRepository.ListFavorites").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return entries, nil
}
