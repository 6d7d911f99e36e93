// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-holocron/internal/logger"
	"github.com/MKhiriev/go-holocron/internal/store"
	"github.com/MKhiriev/go-holocron/models"
)

type favoritesService struct {
	txManager store.TxManager
	users     store.UserRepository
	catalog   store.CatalogRepository
	favorites store.FavoriteRepository

	logger *logger.Logger
}

// NewFavoritesService builds a [FavoritesService] over the given repositories.
// Add and remove run their checks and the write in one transaction.
func NewFavoritesService(txManager store.TxManager, users store.UserRepository, catalog store.CatalogRepository,
	favorites store.FavoriteRepository, logger *logger.Logger) FavoritesService {
	return &favoritesService{
		txManager: txManager,
		users:     users,
		catalog:   catalog,
		favorites: favorites,
		logger:    logger,
	}
}

// AddFavorite links entityID to userID. Checks are applied in order: kind,
// user, entity, existing link.
func (s *favoritesService) AddFavorite(ctx context.Context, userID int64, kind models.EntityKind, entityID int64) (models.FavoriteLink, error) {
	log := logger.FromContext(ctx)

	if !kind.Valid() {
		return models.FavoriteLink{}, fmt.Errorf("%w: %q", ErrInvalidEntityKind, kind)
	}

	var created models.FavoriteLink
	err := s.txManager.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.ensureUserExists(ctx, userID); err != nil {
			return err
		}

		exists, err := s.catalog.EntityExists(ctx, kind, entityID)
		if err != nil {
			return err
		}
		if !exists {
			return fmt.Errorf("%w: %s %d", ErrEntityNotFound, kind, entityID)
		}

		_, err = s.favorites.FindFavorite(ctx, kind, userID, entityID)
		switch {
		case err == nil:
			return ErrDuplicateFavorite
		case !errors.Is(err, store.ErrFavoriteNotFound):
			return err
		}

		created, err = s.favorites.CreateFavorite(ctx, models.FavoriteLink{Kind: kind, UserID: userID, EntityID: entityID})
		if errors.Is(err, store.ErrFavoriteAlreadyExists) {
			return ErrDuplicateFavorite
		}
		return err
	})
	if err != nil {
		if !isDomainError(err) {
			log.Err(err).Str("func", "*favoritesService.AddFavorite").
				Str("kind", kind.String()).
				Int64("user_id", userID).
				Int64("entity_id", entityID).
				Msg("error adding favorite")
		}
		return models.FavoriteLink{}, err
	}

	log.Debug().Str("func", "*favoritesService.AddFavorite").
		Str("kind", kind.String()).
		Int64("link_id", created.ID).
		Msg("favorite added")
	return created, nil
}

// RemoveFavorite deletes the link of userID to entityID. Removing a link
// that does not exist returns [ErrFavoriteNotFound].
func (s *favoritesService) RemoveFavorite(ctx context.Context, userID int64, kind models.EntityKind, entityID int64) error {
	log := logger.FromContext(ctx)

	if !kind.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidEntityKind, kind)
	}

	err := s.txManager.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.ensureUserExists(ctx, userID); err != nil {
			return err
		}

		link, err := s.favorites.FindFavorite(ctx, kind, userID, entityID)
		if errors.Is(err, store.ErrFavoriteNotFound) {
			return fmt.Errorf("%w: %s %d", ErrFavoriteNotFound, kind, entityID)
		}
		if err != nil {
			return err
		}

		err = s.favorites.DeleteFavorite(ctx, link)
		if errors.Is(err, store.ErrFavoriteNotFound) {
			return fmt.Errorf("%w: %s %d", ErrFavoriteNotFound, kind, entityID)
		}
		return err
	})
	if err != nil && !isDomainError(err) {
		log.Err(err).Str("func", "*favoritesService.RemoveFavorite").
			Str("kind", kind.String()).
			Int64("user_id", userID).
			Int64("entity_id", entityID).
			Msg("error removing favorite")
	}

	return err
}

// ListFavorites returns the favorites of userID grouped by kind. The user is
// not required to exist; an unknown user has no favorites.
func (s *favoritesService) ListFavorites(ctx context.Context, userID int64) (models.UserFavorites, error) {
	favorites := models.NewUserFavorites()

	for _, kind := range models.EntityKinds {
		entries, err := s.favorites.ListFavorites(ctx, kind, userID)
		if err != nil {
			logger.FromContext(ctx).Err(err).Str("func", "*favoritesService.ListFavorites").
				Str("kind", kind.String()).
				Int64("user_id", userID).
				Msg("error listing favorites")
			return models.UserFavorites{}, err
		}
		favorites.Set(kind, entries)
	}

	return favorites, nil
}

func (s *favoritesService) ensureUserExists(ctx context.Context, userID int64) error {
	_, err := s.users.FindUserByID(ctx, userID)
	if errors.Is(err, store.ErrNoUserWasFound) {
		return fmt.Errorf("%w: %d", ErrUserNotFound, userID)
	}

	return err
}

func isDomainError(err error) bool {
	return errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrEntityNotFound) ||
		errors.Is(err, ErrFavoriteNotFound) ||
		errors.Is(err, ErrDuplicateFavorite) ||
		errors.Is(err, ErrInvalidEntityKind)
}
