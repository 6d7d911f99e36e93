package client

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-holocron/internal/adapter"
	"github.com/MKhiriev/go-holocron/internal/logger"
	"github.com/MKhiriev/go-holocron/models"
)

// fakeAPI implements adapter.API; only the fn fields a test sets are used.
type fakeAPI struct {
	adapter.API

	listCharactersFn func(ctx context.Context) ([]models.Character, error)
	getPlanetFn      func(ctx context.Context, id int64) (models.Planet, error)
	addFavoriteFn    func(ctx context.Context, kind models.EntityKind, id int64) (string, error)
	removeFavoriteFn func(ctx context.Context, kind models.EntityKind, id int64) (string, error)
	listFavoritesFn  func(ctx context.Context) (models.FavoritesResponse, error)
	versionFn        func(ctx context.Context) (string, error)
}

func (f *fakeAPI) ListCharacters(ctx context.Context) ([]models.Character, error) {
	return f.listCharactersFn(ctx)
}

func (f *fakeAPI) GetPlanet(ctx context.Context, id int64) (models.Planet, error) {
	return f.getPlanetFn(ctx, id)
}

func (f *fakeAPI) AddFavorite(ctx context.Context, kind models.EntityKind, id int64) (string, error) {
	return f.addFavoriteFn(ctx, kind, id)
}

func (f *fakeAPI) RemoveFavorite(ctx context.Context, kind models.EntityKind, id int64) (string, error) {
	return f.removeFavoriteFn(ctx, kind, id)
}

func (f *fakeAPI) ListFavorites(ctx context.Context) (models.FavoritesResponse, error) {
	return f.listFavoritesFn(ctx)
}

func (f *fakeAPI) Version(ctx context.Context) (string, error) {
	return f.versionFn(ctx)
}

func runApp(t *testing.T, api adapter.API, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	err := NewApp(api, &out, logger.Nop()).Run(context.Background(), args)
	return out.String(), err
}

func TestApp_ListCharacters(t *testing.T) {
	api := &fakeAPI{
		listCharactersFn: func(context.Context) ([]models.Character, error) {
			return []models.Character{{ID: 1, Name: "Luke Skywalker"}}, nil
		},
	}

	out, err := runApp(t, api, "characters")

	require.NoError(t, err)
	assert.Contains(t, out, `"name": "Luke Skywalker"`)
}

func TestApp_GetPlanet(t *testing.T) {
	var gotID int64
	api := &fakeAPI{
		getPlanetFn: func(_ context.Context, id int64) (models.Planet, error) {
			gotID = id
			return models.Planet{ID: id, Name: "Tatooine"}, nil
		},
	}

	out, err := runApp(t, api, "planets", "3")

	require.NoError(t, err)
	assert.Equal(t, int64(3), gotID)
	assert.Contains(t, out, "Tatooine")
}

func TestApp_Favorites(t *testing.T) {
	api := &fakeAPI{
		addFavoriteFn: func(_ context.Context, kind models.EntityKind, id int64) (string, error) {
			assert.Equal(t, models.KindVehicle, kind)
			assert.Equal(t, int64(2), id)
			return "The vehicle was added to the user's favorites.", nil
		},
		removeFavoriteFn: func(context.Context, models.EntityKind, int64) (string, error) {
			return "", adapter.ErrNotFound
		},
		listFavoritesFn: func(context.Context) (models.FavoritesResponse, error) {
			return models.FavoritesResponse{}, nil
		},
	}

	out, err := runApp(t, api, "add", "vehicle", "2")
	require.NoError(t, err)
	assert.Equal(t, "The vehicle was added to the user's favorites.\n", out)

	_, err = runApp(t, api, "remove", "vehicle", "2")
	assert.ErrorIs(t, err, adapter.ErrNotFound)

	out, err = runApp(t, api, "favorites")
	require.NoError(t, err)
	assert.Contains(t, out, "favorite_characters")
}

func TestApp_Version(t *testing.T) {
	api := &fakeAPI{
		versionFn: func(context.Context) (string, error) { return "1.0.0", nil },
	}

	out, err := runApp(t, api, "version")

	require.NoError(t, err)
	assert.Equal(t, "1.0.0\n", out)
}

func TestApp_PropagatesAPIError(t *testing.T) {
	boom := errors.New("boom")
	api := &fakeAPI{
		listCharactersFn: func(context.Context) ([]models.Character, error) { return nil, boom },
	}

	out, err := runApp(t, api, "characters")

	assert.ErrorIs(t, err, boom)
	assert.Empty(t, out)
}

func TestApp_UsageErrors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{name: "no command", args: nil, wantErr: ErrUsage},
		{name: "unknown command", args: []string{"starships"}, wantErr: ErrUnknownCommand},
		{name: "non-integer id", args: []string{"planets", "abc"}, wantErr: ErrUsage},
		{name: "too many ids", args: []string{"vehicles", "1", "2"}, wantErr: ErrUsage},
		{name: "add without id", args: []string{"add", "planet"}, wantErr: ErrUsage},
		{name: "remove with bad id", args: []string{"remove", "planet", "x"}, wantErr: ErrUsage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runApp(t, &fakeAPI{}, tt.args...)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
