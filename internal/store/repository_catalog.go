package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-holocron/internal/logger"
	"github.com/MKhiriev/go-holocron/models"
)

// catalogRepository is the SQL implementation of [CatalogRepository] over
// the characters, planets and vehicles tables.
type catalogRepository struct {
	*DB
	logger *logger.Logger
}

// NewCatalogRepository constructs a [CatalogRepository] backed by db.
func NewCatalogRepository(db *DB, logger *logger.Logger) CatalogRepository {
	logger.Debug().Msg("creating catalog repository")
	return &catalogRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *catalogRepository) ListCharacters(ctx context.Context) ([]models.Character, error) {
	return selectEntities(ctx, r.DB, "*catalogRepository.ListCharacters", models.KindCharacter, nil, scanCharacter)
}

func (r *catalogRepository) FindCharacterByID(ctx context.Context, id int64) (models.Character, error) {
	return selectEntity(ctx, r.DB, "*catalogRepository.FindCharacterByID", models.KindCharacter, sq.Eq{"id": id}, scanCharacter)
}

func (r *catalogRepository) FindCharacterByName(ctx context.Context, name string) (models.Character, error) {
	return selectEntity(ctx, r.DB, "*catalogRepository.FindCharacterByName", models.KindCharacter, sq.Eq{"name": name}, scanCharacter)
}

func (r *catalogRepository) CreateCharacter(ctx context.Context, character models.Character) (models.Character, error) {
	id, err := insertEntity(ctx, r.DB, "*catalogRepository.CreateCharacter", models.KindCharacter,
		character.Name, character.Age, character.EyeColor, character.HairColor)
	if err != nil {
		return models.Character{}, err
	}

	character.ID = id
	return character, nil
}

func (r *catalogRepository) ListPlanets(ctx context.Context) ([]models.Planet, error) {
	return selectEntities(ctx, r.DB, "*catalogRepository.ListPlanets", models.KindPlanet, nil, scanPlanet)
}

func (r *catalogRepository) FindPlanetByID(ctx context.Context, id int64) (models.Planet, error) {
	return selectEntity(ctx, r.DB, "*catalogRepository.FindPlanetByID", models.KindPlanet, sq.Eq{"id": id}, scanPlanet)
}

func (r *catalogRepository) FindPlanetByName(ctx context.Context, name string) (models.Planet, error) {
	return selectEntity(ctx, r.DB, "*catalogRepository.FindPlanetByName", models.KindPlanet, sq.Eq{"name": name}, scanPlanet)
}

func (r *catalogRepository) CreatePlanet(ctx context.Context, planet models.Planet) (models.Planet, error) {
	id, err := insertEntity(ctx, r.DB, "*catalogRepository.CreatePlanet", models.KindPlanet,
		planet.Name, planet.Diameter, planet.Terrain, planet.Population)
	if err != nil {
		return models.Planet{}, err
	}

	planet.ID = id
	return planet, nil
}

func (r *catalogRepository) ListVehicles(ctx context.Context) ([]models.Vehicle, error) {
	return selectEntities(ctx, r.DB, "*catalogRepository.ListVehicles", models.KindVehicle, nil, scanVehicle)
}

func (r *catalogRepository) FindVehicleByID(ctx context.Context, id int64) (models.Vehicle, error) {
	return selectEntity(ctx, r.DB, "*catalogRepository.FindVehicleByID", models.KindVehicle, sq.Eq{"id": id}, scanVehicle)
}

func (r *catalogRepository) FindVehicleByName(ctx context.Context, name string) (models.Vehicle, error) {
	return selectEntity(ctx, r.DB, "*catalogRepository.FindVehicleByName", models.KindVehicle, sq.Eq{"name": name}, scanVehicle)
}

func (r *catalogRepository) CreateVehicle(ctx context.Context, vehicle models.Vehicle) (models.Vehicle, error) {
	id, err := insertEntity(ctx, r.DB, "*catalogRepository.CreateVehicle", models.KindVehicle,
		vehicle.Name, vehicle.Model, vehicle.Crew, vehicle.Passengers)
	if err != nil {
		return models.Vehicle{}, err
	}

	vehicle.ID = id
	return vehicle, nil
}

// EntityExists reports whether an entity of kind with the given id exists.
func (r *catalogRepository) EntityExists(ctx context.Context, kind models.EntityKind, id int64) (bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildEntityExistsQuery(r.builder, kind, id)
	if err != nil {
		log.Err(err).Str("func", "*catalogRepository.EntityExists").Str("kind", kind.String()).Msg("failed to create query")
		return false, err
	}

	var one int
	err = r.querier(ctx).QueryRowContext(ctx, query, args...).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		log.Err(err).Str("func", "*catalogRepository.EntityExists").Str("kind", kind.String()).Int64("id", id).Msg("failed to check entity")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return true, nil
}

func scanCharacter(row rowScanner) (models.Character, error) {
	var c models.Character
	err := row.Scan(&c.ID, &c.Name, &c.Age, &c.EyeColor, &c.HairColor)
	return c, err
}

func scanPlanet(row rowScanner) (models.Planet, error) {
	var p models.Planet
	err := row.Scan(&p.ID, &p.Name, &p.Diameter, &p.Terrain, &p.Population)
	return p, err
}

func scanVehicle(row rowScanner) (models.Vehicle, error) {
	var v models.Vehicle
	err := row.Scan(&v.ID, &v.Name, &v.Model, &v.Crew, &v.Passengers)
	return v, err
}

// selectEntities runs a select over the table of kind and scans every row
// with scan. An empty result is an empty, non-nil slice.
func selectEntities[T any](ctx context.Context, db *DB, funcName string, kind models.EntityKind, where sq.Sqlizer, scan func(rowScanner) (T, error)) ([]T, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectEntitiesQuery(db.builder, kind, where)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to create query")
		return nil, err
	}

	rows, err := db.querier(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	result := make([]T, 0)
	for rows.Next() {
		item, scanErr := scan(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", funcName).Msg("failed to scan row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		result = append(result, item)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", funcName).Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return result, nil
}

// selectEntity returns the first row matching where or [ErrEntityNotFound].
func selectEntity[T any](ctx context.Context, db *DB, funcName string, kind models.EntityKind, where sq.Sqlizer, scan func(rowScanner) (T, error)) (T, error) {
	var zero T

	entities, err := selectEntities(ctx, db, funcName, kind, where, scan)
	if err != nil {
		return zero, err
	}
	if len(entities) == 0 {
		return zero, ErrEntityNotFound
	}

	return entities[0], nil
}

func insertEntity(ctx context.Context, db *DB, funcName string, kind models.EntityKind, values ...any) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertEntityQuery(db.builder, kind, values...)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to create query")
		return 0, err
	}

	var id int64
	if err = db.querier(ctx).QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to insert entity")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return id, nil
}
