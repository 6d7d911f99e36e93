package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-holocron/internal/logger"
	"github.com/MKhiriev/go-holocron/internal/store"
	"github.com/MKhiriev/go-holocron/models"
)

type catalogService struct {
	catalog store.CatalogRepository
	logger  *logger.Logger
}

func NewCatalogService(catalog store.CatalogRepository, logger *logger.Logger) CatalogService {
	return &catalogService{
		catalog: catalog,
		logger:  logger,
	}
}

func (s *catalogService) ListCharacters(ctx context.Context) ([]models.Character, error) {
	return s.catalog.ListCharacters(ctx)
}

func (s *catalogService) GetCharacter(ctx context.Context, id int64) (models.Character, error) {
	character, err := s.catalog.FindCharacterByID(ctx, id)
	return character, s.mapFindError(ctx, models.KindCharacter, id, err)
}

func (s *catalogService) ListPlanets(ctx context.Context) ([]models.Planet, error) {
	return s.catalog.ListPlanets(ctx)
}

func (s *catalogService) GetPlanet(ctx context.Context, id int64) (models.Planet, error) {
	planet, err := s.catalog.FindPlanetByID(ctx, id)
	return planet, s.mapFindError(ctx, models.KindPlanet, id, err)
}

func (s *catalogService) ListVehicles(ctx context.Context) ([]models.Vehicle, error) {
	return s.catalog.ListVehicles(ctx)
}

func (s *catalogService) GetVehicle(ctx context.Context, id int64) (models.Vehicle, error) {
	vehicle, err := s.catalog.FindVehicleByID(ctx, id)
	return vehicle, s.mapFindError(ctx, models.KindVehicle, id, err)
}

func (s *catalogService) mapFindError(ctx context.Context, kind models.EntityKind, id int64, err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, store.ErrEntityNotFound) {
		return fmt.Errorf("%w: %s %d", ErrEntityNotFound, kind, id)
	}

	logger.FromContext(ctx).Err(err).Str("func", "*catalogService.Get").Str("kind", kind.String()).Int64("id", id).Msg("error getting entity")
	return err
}

type userService struct {
	users  store.UserRepository
	logger *logger.Logger
}

func NewUserService(users store.UserRepository, logger *logger.Logger) UserService {
	return &userService{
		users:  users,
		logger: logger,
	}
}

func (s *userService) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.users.ListUsers(ctx)
}
