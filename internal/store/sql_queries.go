package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-holocron/models"
)

// entityTable describes the storage of one catalog entity kind and of the
// favorite links pointing to it.
type entityTable struct {
	table        string
	linkTable    string
	linkColumn   string
	entityColumn []string
}

var (
	userColumns = []string{"id", "username", "name", "lastname", "email", "subscription_date", "password"}

	characterColumns = []string{"id", "name", "age", "eye_color", "hair_color"}
	planetColumns    = []string{"id", "name", "diameter", "terrain", "population"}
	vehicleColumns   = []string{"id", "name", "model", "crew", "passengers"}
)

var entityTables = map[models.EntityKind]entityTable{
	models.KindCharacter: {
		table:        models.Character{}.TableName(),
		linkTable:    "favorite_characters",
		linkColumn:   "character_id",
		entityColumn: characterColumns,
	},
	models.KindPlanet: {
		table:        models.Planet{}.TableName(),
		linkTable:    "favorite_planets",
		linkColumn:   "planet_id",
		entityColumn: planetColumns,
	},
	models.KindVehicle: {
		table:        models.Vehicle{}.TableName(),
		linkTable:    "favorite_vehicles",
		linkColumn:   "vehicle_id",
		entityColumn: vehicleColumns,
	},
}

func tableFor(kind models.EntityKind) (entityTable, error) {
	t, ok := entityTables[kind]
	if !ok {
		return entityTable{}, fmt.Errorf("%w: %q", ErrUnsupportedEntityKind, kind)
	}

	return t, nil
}

// toSQL finalizes a squirrel builder and wraps its error in ErrBuildingSQLQuery.
func toSQL(s sq.Sqlizer) (string, []any, error) {
	query, args, err := s.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// ── users ───────────────────────────────────────────────────────────────────

func buildListUsersQuery(b sq.StatementBuilderType) (string, []any, error) {
	return toSQL(b.Select(userColumns...).
		From(models.User{}.TableName()).
		OrderBy("id"))
}

// buildFindUserQuery selects the first user whose column equals value.
func buildFindUserQuery(b sq.StatementBuilderType, column string, value any) (string, []any, error) {
	return toSQL(b.Select(userColumns...).
		From(models.User{}.TableName()).
		Where(sq.Eq{column: value}).
		OrderBy("id").
		Limit(1))
}

func buildCreateUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return toSQL(b.Insert(models.User{}.TableName()).
		Columns(userColumns[1:]...).
		Values(user.Username, user.Name, user.Lastname, user.Email, user.SubscriptionDate, user.Password).
		Suffix("RETURNING id"))
}

// ── catalog ─────────────────────────────────────────────────────────────────

// buildSelectEntitiesQuery selects the rows of an entity table in id order,
// optionally narrowed by where.
func buildSelectEntitiesQuery(b sq.StatementBuilderType, kind models.EntityKind, where sq.Sqlizer) (string, []any, error) {
	t, err := tableFor(kind)
	if err != nil {
		return "", nil, err
	}

	q := b.Select(t.entityColumn...).From(t.table)
	if where != nil {
		q = q.Where(where)
	}

	return toSQL(q.OrderBy("id"))
}

// buildInsertEntityQuery inserts values (without id) into the entity table of
// kind and returns the generated id.
func buildInsertEntityQuery(b sq.StatementBuilderType, kind models.EntityKind, values ...any) (string, []any, error) {
	t, err := tableFor(kind)
	if err != nil {
		return "", nil, err
	}

	return toSQL(b.Insert(t.table).
		Columns(t.entityColumn[1:]...).
		Values(values...).
		Suffix("RETURNING id"))
}

func buildEntityExistsQuery(b sq.StatementBuilderType, kind models.EntityKind, id int64) (string, []any, error) {
	t, err := tableFor(kind)
	if err != nil {
		return "", nil, err
	}

	return toSQL(b.Select("1").
		From(t.table).
		Where(sq.Eq{"id": id}).
		Limit(1))
}

// ── favorites ───────────────────────────────────────────────────────────────

func buildFindFavoriteQuery(b sq.StatementBuilderType, kind models.EntityKind, userID, entityID int64) (string, []any, error) {
	t, err := tableFor(kind)
	if err != nil {
		return "", nil, err
	}

	return toSQL(b.Select("id", "user_id", t.linkColumn).
		From(t.linkTable).
		Where(sq.Eq{"user_id": userID, t.linkColumn: entityID}).
		Limit(1))
}

func buildInsertFavoriteQuery(b sq.StatementBuilderType, kind models.EntityKind, userID, entityID int64) (string, []any, error) {
	t, err := tableFor(kind)
	if err != nil {
		return "", nil, err
	}

	return toSQL(b.Insert(t.linkTable).
		Columns("user_id", t.linkColumn).
		Values(userID, entityID).
		Suffix("RETURNING id"))
}

// buildDeleteFavoriteQuery deletes the link of userID to entityID.
func buildDeleteFavoriteQuery(b sq.StatementBuilderType, kind models.EntityKind, userID, entityID int64) (string, []any, error) {
	t, err := tableFor(kind)
	if err != nil {
		return "", nil, err
	}

	return toSQL(b.Delete(t.linkTable).
		Where(sq.Eq{"user_id": userID, t.linkColumn: entityID}))
}

// buildListFavoritesQuery joins the links of userID with the entity table
// and projects link id, entity id and entity name in link order.
func buildListFavoritesQuery(b sq.StatementBuilderType, kind models.EntityKind, userID int64) (string, []any, error) {
	t, err := tableFor(kind)
	if err != nil {
		return "", nil, err
	}

	return toSQL(b.Select("f.id", "f."+t.linkColumn, "e.name").
		From(t.linkTable + " f").
		Join(fmt.Sprintf("%s e ON e.id = f.%s", t.table, t.linkColumn)).
		Where(sq.Eq{"f.user_id": userID}).
		OrderBy("f.id"))
}
