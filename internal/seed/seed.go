// Package seed bootstraps the database with a default user and a small
// sample catalog so that a fresh server has something to serve.
package seed

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-holocron/internal/logger"
	"github.com/MKhiriev/go-holocron/internal/store"
	"github.com/MKhiriev/go-holocron/models"
)

// Data is the set of records ensured by [Seeder.Seed].
type Data struct {
	Users      []models.User
	Characters []models.Character
	Planets    []models.Planet
	Vehicles   []models.Vehicle
}

// DefaultData returns the records a fresh installation starts with.
func DefaultData() Data {
	return Data{
		Users: []models.User{
			{
				Username:         "User1",
				Name:             "User",
				Lastname:         "One",
				Email:            "mail@test.com",
				SubscriptionDate: time.Date(2020, time.May, 17, 0, 0, 0, 0, time.UTC),
				Password:         "123456",
			},
		},
		Characters: []models.Character{
			{Name: "Luke Skywalker", Age: 22, EyeColor: "Blue", HairColor: "Blonde"},
			{Name: "C3PO", Age: 99, EyeColor: "Yellow", HairColor: "None"},
		},
		Planets: []models.Planet{
			{Name: "Alderaan", Diameter: 12500, Terrain: "Desert", Population: 2000000000},
			{Name: "Tatooine", Diameter: 12500, Terrain: "Lake", Population: 2000000000},
		},
		Vehicles: []models.Vehicle{
			{Name: "Sand Crawler", Model: "Digger Crawler", Crew: 46, Passengers: 30},
			{Name: "T-16 skyhopper", Model: "T-16 skyhopper", Crew: 1, Passengers: 1},
		},
	}
}

// Seeder inserts [Data] records that are not stored yet.
type Seeder struct {
	txManager store.TxManager
	users     store.UserRepository
	catalog   store.CatalogRepository
	logger    *logger.Logger
}

// NewSeeder constructs a [Seeder] over the given storages.
func NewSeeder(storages *store.Storages, log *logger.Logger) *Seeder {
	return &Seeder{
		txManager: storages.TxManager,
		users:     storages.UserRepository,
		catalog:   storages.CatalogRepository,
		logger:    log,
	}
}

// Seed ensures every record of data exists, inside one transaction.
// Users are matched by email and catalog entities by name, so running Seed
// again does not create duplicates.
func (s *Seeder) Seed(ctx context.Context, data Data) error {
	created := 0

	err := s.txManager.WithinTx(ctx, func(ctx context.Context) error {
		for _, user := range data.Users {
			ok, err := ensure(ctx, s.users.FindUserByEmail, user.Email, store.ErrNoUserWasFound, s.users.CreateUser, user)
			if err != nil {
				return fmt.Errorf("error seeding user %q: %w", user.Email, err)
			}
			created += ok
		}

		for _, character := range data.Characters {
			ok, err := ensure(ctx, s.catalog.FindCharacterByName, character.Name, store.ErrEntityNotFound, s.catalog.CreateCharacter, character)
			if err != nil {
				return fmt.Errorf("error seeding character %q: %w", character.Name, err)
			}
			created += ok
		}

		for _, planet := range data.Planets {
			ok, err := ensure(ctx, s.catalog.FindPlanetByName, planet.Name, store.ErrEntityNotFound, s.catalog.CreatePlanet, planet)
			if err != nil {
				return fmt.Errorf("error seeding planet %q: %w", planet.Name, err)
			}
			created += ok
		}

		for _, vehicle := range data.Vehicles {
			ok, err := ensure(ctx, s.catalog.FindVehicleByName, vehicle.Name, store.ErrEntityNotFound, s.catalog.CreateVehicle, vehicle)
			if err != nil {
				return fmt.Errorf("error seeding vehicle %q: %w", vehicle.Name, err)
			}
			created += ok
		}

		return nil
	})
	if err != nil {
		s.logger.Err(err).Str("func", "*Seeder.Seed").Msg("seeding failed")
		return err
	}

	s.logger.Info().Str("func", "*Seeder.Seed").Int("created", created).Msg("database seeded")
	return nil
}

// ensure creates record when find reports notFound for key. It returns 1
// when a record was created and 0 when it already existed.
func ensure[K, T any](ctx context.Context, find func(context.Context, K) (T, error), key K, notFound error,
	create func(context.Context, T) (T, error), record T) (int, error) {
	_, err := find(ctx, key)
	if err == nil {
		return 0, nil
	}
	if !errors.Is(err, notFound) {
		return 0, err
	}

	if _, err = create(ctx, record); err != nil {
		return 0, err
	}

	return 1, nil
}
