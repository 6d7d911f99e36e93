package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-holocron/internal/validators"
	"github.com/MKhiriev/go-holocron/models"
)

// FavoritesValidationService rejects malformed favorite links before they
// reach the inner service. Only the kind and the user id are checked here;
// the entity id is left to the inner service so that a missing user is
// always reported before a missing entity.
type FavoritesValidationService struct {
	inner     FavoritesService
	validator validators.Validator
}

func NewFavoritesValidationService() FavoritesServiceWrapper {
	return &FavoritesValidationService{
		validator: validators.NewFavoriteLinkValidator(),
	}
}

func (v *FavoritesValidationService) AddFavorite(ctx context.Context, userID int64, kind models.EntityKind, entityID int64) (models.FavoriteLink, error) {
	link := models.FavoriteLink{Kind: kind, UserID: userID, EntityID: entityID}
	if err := v.validator.Validate(ctx, link, validators.FieldKind, validators.FieldUserID); err != nil {
		return models.FavoriteLink{}, v.mapValidationError(err)
	}

	return v.inner.AddFavorite(ctx, userID, kind, entityID)
}

func (v *FavoritesValidationService) RemoveFavorite(ctx context.Context, userID int64, kind models.EntityKind, entityID int64) error {
	link := models.FavoriteLink{Kind: kind, UserID: userID, EntityID: entityID}
	if err := v.validator.Validate(ctx, link, validators.FieldKind, validators.FieldUserID); err != nil {
		return v.mapValidationError(err)
	}

	return v.inner.RemoveFavorite(ctx, userID, kind, entityID)
}

// ListFavorites is not validated: any user id yields a (possibly empty) result.
func (v *FavoritesValidationService) ListFavorites(ctx context.Context, userID int64) (models.UserFavorites, error) {
	return v.inner.ListFavorites(ctx, userID)
}

func (v *FavoritesValidationService) Wrap(wrapped FavoritesService) FavoritesService {
	v.inner = wrapped
	return v
}

func (v *FavoritesValidationService) mapValidationError(err error) error {
	switch {
	case errors.Is(err, validators.ErrInvalidEntityKind):
		return fmt.Errorf("%w: %w", ErrInvalidEntityKind, err)
	case errors.Is(err, validators.ErrInvalidUserID):
		return fmt.Errorf("%w: %w", ErrUserNotFound, err)
	default:
		return fmt.Errorf("error during favorite validation: %w", err)
	}
}
