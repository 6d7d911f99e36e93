package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-holocron/models"
)

// UserRepository reads and creates user accounts.
type UserRepository interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	CreateUser(ctx context.Context, user models.User) (models.User, error)
}

// CatalogRepository reads and creates characters, planets and vehicles.
type CatalogRepository interface {
	ListCharacters(ctx context.Context) ([]models.Character, error)
	FindCharacterByID(ctx context.Context, id int64) (models.Character, error)
	FindCharacterByName(ctx context.Context, name string) (models.Character, error)
	CreateCharacter(ctx context.Context, character models.Character) (models.Character, error)

	ListPlanets(ctx context.Context) ([]models.Planet, error)
	FindPlanetByID(ctx context.Context, id int64) (models.Planet, error)
	FindPlanetByName(ctx context.Context, name string) (models.Planet, error)
	CreatePlanet(ctx context.Context, planet models.Planet) (models.Planet, error)

	ListVehicles(ctx context.Context) ([]models.Vehicle, error)
	FindVehicleByID(ctx context.Context, id int64) (models.Vehicle, error)
	FindVehicleByName(ctx context.Context, name string) (models.Vehicle, error)
	CreateVehicle(ctx context.Context, vehicle models.Vehicle) (models.Vehicle, error)

	// EntityExists reports whether an entity of the given kind exists.
	EntityExists(ctx context.Context, kind models.EntityKind, id int64) (bool, error)
}

// FavoriteRepository manages favorite links of every entity kind.
type FavoriteRepository interface {
	FindFavorite(ctx context.Context, kind models.EntityKind, userID, entityID int64) (models.FavoriteLink, error)
	CreateFavorite(ctx context.Context, link models.FavoriteLink) (models.FavoriteLink, error)
	DeleteFavorite(ctx context.Context, link models.FavoriteLink) error
	ListFavorites(ctx context.Context, kind models.EntityKind, userID int64) ([]models.FavoriteEntry, error)
}

// TxManager runs a function inside a single database transaction.
// Repositories called with the context passed to fn take part in it.
type TxManager interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}
