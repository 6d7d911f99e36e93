package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-holocron/models"
)

// fakeFavoritesService records whether the wrapped service was reached.
type fakeFavoritesService struct {
	addFn    func(ctx context.Context, userID int64, kind models.EntityKind, entityID int64) (models.FavoriteLink, error)
	removeFn func(ctx context.Context, userID int64, kind models.EntityKind, entityID int64) error
	listFn   func(ctx context.Context, userID int64) (models.UserFavorites, error)
	calls    int
}

func (f *fakeFavoritesService) AddFavorite(ctx context.Context, userID int64, kind models.EntityKind, entityID int64) (models.FavoriteLink, error) {
	f.calls++
	return f.addFn(ctx, userID, kind, entityID)
}

func (f *fakeFavoritesService) RemoveFavorite(ctx context.Context, userID int64, kind models.EntityKind, entityID int64) error {
	f.calls++
	return f.removeFn(ctx, userID, kind, entityID)
}

func (f *fakeFavoritesService) ListFavorites(ctx context.Context, userID int64) (models.UserFavorites, error) {
	f.calls++
	return f.listFn(ctx, userID)
}

func TestFavoritesValidationService_AddFavorite(t *testing.T) {
	tests := []struct {
		name      string
		userID    int64
		kind      models.EntityKind
		entityID  int64
		wantErr   error
		wantInner bool
	}{
		{name: "valid", userID: 1, kind: models.KindCharacter, entityID: 1, wantInner: true},
		{name: "invalid kind wins over ids", userID: 0, kind: "ship", entityID: 0, wantErr: ErrInvalidEntityKind},
		{name: "user before entity", userID: -1, kind: models.KindPlanet, entityID: 0, wantErr: ErrUserNotFound},
		{name: "non-positive entity is left to the inner service", userID: 1, kind: models.KindVehicle, entityID: 0, wantInner: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inner := &fakeFavoritesService{
				addFn: func(_ context.Context, userID int64, kind models.EntityKind, entityID int64) (models.FavoriteLink, error) {
					return models.FavoriteLink{ID: 1, Kind: kind, UserID: userID, EntityID: entityID}, nil
				},
			}
			svc := NewFavoritesValidationService().Wrap(inner)

			link, err := svc.AddFavorite(context.Background(), tt.userID, tt.kind, tt.entityID)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, int64(1), link.ID)
			}
			assert.Equal(t, tt.wantInner, inner.calls == 1)
		})
	}
}

func TestFavoritesValidationService_RemoveFavorite(t *testing.T) {
	inner := &fakeFavoritesService{
		removeFn: func(context.Context, int64, models.EntityKind, int64) error { return nil },
	}
	svc := NewFavoritesValidationService().Wrap(inner)
	ctx := context.Background()

	assert.ErrorIs(t, svc.RemoveFavorite(ctx, 0, models.KindPlanet, 1), ErrUserNotFound)
	assert.ErrorIs(t, svc.RemoveFavorite(ctx, 1, "ship", 1), ErrInvalidEntityKind)
	assert.Zero(t, inner.calls)

	assert.NoError(t, svc.RemoveFavorite(ctx, 1, models.KindPlanet, -5))
	assert.NoError(t, svc.RemoveFavorite(ctx, 1, models.KindPlanet, 1))
	assert.Equal(t, 2, inner.calls)
}

func TestFavoritesValidationService_ListFavoritesPassesThrough(t *testing.T) {
	inner := &fakeFavoritesService{
		listFn: func(context.Context, int64) (models.UserFavorites, error) {
			return models.NewUserFavorites(), nil
		},
	}
	svc := NewFavoritesValidationService().Wrap(inner)

	got, err := svc.ListFavorites(context.Background(), -1)
	require.NoError(t, err)
	assert.Equal(t, models.NewUserFavorites(), got)
	assert.Equal(t, 1, inner.calls)
}
