package service

import (
	"context"

	"github.com/MKhiriev/go-holocron/models"
)

// UserService exposes the user listing.
type UserService interface {
	ListUsers(ctx context.Context) ([]models.User, error)
}

// CatalogService is the read side of the catalog. List methods return every
// record in storage order; Get methods return [ErrEntityNotFound] for
// unknown ids.
type CatalogService interface {
	ListCharacters(ctx context.Context) ([]models.Character, error)
	GetCharacter(ctx context.Context, id int64) (models.Character, error)

	ListPlanets(ctx context.Context) ([]models.Planet, error)
	GetPlanet(ctx context.Context, id int64) (models.Planet, error)

	ListVehicles(ctx context.Context) ([]models.Vehicle, error)
	GetVehicle(ctx context.Context, id int64) (models.Vehicle, error)
}

// FavoritesService manages the favorite links of a user.
type FavoritesService interface {
	AddFavorite(ctx context.Context, userID int64, kind models.EntityKind, entityID int64) (models.FavoriteLink, error)
	RemoveFavorite(ctx context.Context, userID int64, kind models.EntityKind, entityID int64) error
	ListFavorites(ctx context.Context, userID int64) (models.UserFavorites, error)
}

// AppInfoService reports build information.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// FavoritesServiceWrapper defines middleware composition for FavoritesService.
// Implementations wrap an existing FavoritesService to add behavior such as
// validating.
type FavoritesServiceWrapper interface {
	Wrap(FavoritesService) FavoritesService // returns a decorated FavoritesService applying additional behavior
}
