package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-holocron/internal/logger"
	"github.com/MKhiriev/go-holocron/models"
)

// newSQLiteStorages returns repositories over a migrated in-memory database.
func newSQLiteStorages(t *testing.T) *Storages {
	t.Helper()

	db, err := NewInMemorySQLite(context.Background(), logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, db.Migrate())

	return NewStoragesFromDB(db, logger.Nop())
}

func createTestUser(t *testing.T, s *Storages, email string) models.User {
	t.Helper()

	user, err := s.UserRepository.CreateUser(context.Background(), models.User{
		Username:         "User1",
		Name:             "User",
		Lastname:         "One",
		Email:            email,
		SubscriptionDate: time.Date(2020, 5, 17, 0, 0, 0, 0, time.UTC),
		Password:         "123456",
	})
	require.NoError(t, err)

	return user
}

func TestSQLite_UserRoundTrip(t *testing.T) {
	s := newSQLiteStorages(t)
	ctx := context.Background()

	created := createTestUser(t, s, "mail@test.com")
	assert.Equal(t, int64(1), created.UserID)

	found, err := s.UserRepository.FindUserByID(ctx, created.UserID)
	require.NoError(t, err)
	assert.Equal(t, "User1", found.Username)
	assert.True(t, created.SubscriptionDate.Equal(found.SubscriptionDate))

	byEmail, err := s.UserRepository.FindUserByEmail(ctx, "mail@test.com")
	require.NoError(t, err)
	assert.Equal(t, created.UserID, byEmail.UserID)

	_, err = s.UserRepository.FindUserByID(ctx, 99)
	assert.ErrorIs(t, err, ErrNoUserWasFound)

	users, err := s.UserRepository.ListUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestSQLite_CatalogRoundTrip(t *testing.T) {
	s := newSQLiteStorages(t)
	ctx := context.Background()
	repo := s.CatalogRepository

	characters, err := repo.ListCharacters(ctx)
	require.NoError(t, err)
	assert.NotNil(t, characters)
	assert.Empty(t, characters)

	luke, err := repo.CreateCharacter(ctx, models.Character{Name: "Luke Skywalker", Age: 22, EyeColor: "Blue", HairColor: "Blonde"})
	require.NoError(t, err)
	c3po, err := repo.CreateCharacter(ctx, models.Character{Name: "C3PO", Age: 99, EyeColor: "Yellow", HairColor: "None"})
	require.NoError(t, err)

	characters, err = repo.ListCharacters(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.Character{luke, c3po}, characters)

	found, err := repo.FindCharacterByID(ctx, c3po.ID)
	require.NoError(t, err)
	assert.Equal(t, c3po, found)

	byName, err := repo.FindCharacterByName(ctx, "Luke Skywalker")
	require.NoError(t, err)
	assert.Equal(t, luke, byName)

	_, err = repo.FindCharacterByID(ctx, 999)
	assert.ErrorIs(t, err, ErrEntityNotFound)

	tatooine, err := repo.CreatePlanet(ctx, models.Planet{Name: "Tatooine", Diameter: 12500, Terrain: "Lake", Population: 2000000000})
	require.NoError(t, err)
	planet, err := repo.FindPlanetByID(ctx, tatooine.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2000000000), planet.Population)
	_, err = repo.FindPlanetByName(ctx, "Alderaan")
	assert.ErrorIs(t, err, ErrEntityNotFound)

	crawler, err := repo.CreateVehicle(ctx, models.Vehicle{Name: "Sand Crawler", Model: "Digger Crawler", Crew: 46, Passengers: 30})
	require.NoError(t, err)
	vehicles, err := repo.ListVehicles(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.Vehicle{crawler}, vehicles)
	byVehicleName, err := repo.FindVehicleByName(ctx, "Sand Crawler")
	require.NoError(t, err)
	assert.Equal(t, crawler, byVehicleName)
	_, err = repo.FindVehicleByID(ctx, crawler.ID+1)
	assert.ErrorIs(t, err, ErrEntityNotFound)

	planets, err := repo.ListPlanets(ctx)
	require.NoError(t, err)
	assert.Len(t, planets, 1)
}

func TestSQLite_EntityExists(t *testing.T) {
	s := newSQLiteStorages(t)
	ctx := context.Background()

	luke, err := s.CatalogRepository.CreateCharacter(ctx, models.Character{Name: "Luke Skywalker"})
	require.NoError(t, err)

	exists, err := s.CatalogRepository.EntityExists(ctx, models.KindCharacter, luke.ID)
	require.NoError(t, err)
	assert.True(t, exists)

	// same id, different kind
	exists, err = s.CatalogRepository.EntityExists(ctx, models.KindPlanet, luke.ID)
	require.NoError(t, err)
	assert.False(t, exists)

	_, err = s.CatalogRepository.EntityExists(ctx, models.EntityKind("starship"), 1)
	assert.ErrorIs(t, err, ErrUnsupportedEntityKind)
}

func TestSQLite_FavoritesLifecycle(t *testing.T) {
	s := newSQLiteStorages(t)
	ctx := context.Background()
	repo := s.FavoriteRepository

	user := createTestUser(t, s, "mail@test.com")
	luke, err := s.CatalogRepository.CreateCharacter(ctx, models.Character{Name: "Luke Skywalker"})
	require.NoError(t, err)
	tatooine, err := s.CatalogRepository.CreatePlanet(ctx, models.Planet{Name: "Tatooine"})
	require.NoError(t, err)

	_, err = repo.FindFavorite(ctx, models.KindCharacter, user.UserID, luke.ID)
	assert.ErrorIs(t, err, ErrFavoriteNotFound)

	link, err := repo.CreateFavorite(ctx, models.FavoriteLink{Kind: models.KindCharacter, UserID: user.UserID, EntityID: luke.ID})
	require.NoError(t, err)
	assert.NotZero(t, link.ID)

	found, err := repo.FindFavorite(ctx, models.KindCharacter, user.UserID, luke.ID)
	require.NoError(t, err)
	assert.Equal(t, link, found)

	// the unique constraint rejects a second identical link
	_, err = repo.CreateFavorite(ctx, models.FavoriteLink{Kind: models.KindCharacter, UserID: user.UserID, EntityID: luke.ID})
	assert.ErrorIs(t, err, ErrFavoriteAlreadyExists)

	planetLink, err := repo.CreateFavorite(ctx, models.FavoriteLink{Kind: models.KindPlanet, UserID: user.UserID, EntityID: tatooine.ID})
	require.NoError(t, err)

	characters, err := repo.ListFavorites(ctx, models.KindCharacter, user.UserID)
	require.NoError(t, err)
	assert.Equal(t, []models.FavoriteEntry{{LinkID: link.ID, EntityID: luke.ID, EntityName: "Luke Skywalker"}}, characters)

	planets, err := repo.ListFavorites(ctx, models.KindPlanet, user.UserID)
	require.NoError(t, err)
	assert.Equal(t, []models.FavoriteEntry{{LinkID: planetLink.ID, EntityID: tatooine.ID, EntityName: "Tatooine"}}, planets)

	vehicles, err := repo.ListFavorites(ctx, models.KindVehicle, user.UserID)
	require.NoError(t, err)
	assert.NotNil(t, vehicles)
	assert.Empty(t, vehicles)

	require.NoError(t, repo.DeleteFavorite(ctx, link))
	assert.ErrorIs(t, repo.DeleteFavorite(ctx, link), ErrFavoriteNotFound)

	characters, err = repo.ListFavorites(ctx, models.KindCharacter, user.UserID)
	require.NoError(t, err)
	assert.Empty(t, characters)
}

func TestSQLite_FavoritesForeignKeys(t *testing.T) {
	s := newSQLiteStorages(t)

	_, err := s.FavoriteRepository.CreateFavorite(context.Background(),
		models.FavoriteLink{Kind: models.KindVehicle, UserID: 1, EntityID: 1})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrFavoriteAlreadyExists)
	assert.ErrorIs(t, err, ErrExecutingStatement)
}

func TestSQLite_TransactionRollbackDiscardsWrites(t *testing.T) {
	s := newSQLiteStorages(t)
	ctx := context.Background()

	err := s.TxManager.WithinTx(ctx, func(ctx context.Context) error {
		if _, err := s.CatalogRepository.CreateCharacter(ctx, models.Character{Name: "Ghost"}); err != nil {
			return err
		}
		return ErrEntityNotFound
	})
	assert.ErrorIs(t, err, ErrEntityNotFound)

	characters, err := s.CatalogRepository.ListCharacters(ctx)
	require.NoError(t, err)
	assert.Empty(t, characters)
}
