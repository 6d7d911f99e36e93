// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// FavoriteLink is a join record between a user and a single catalog entity
// of a given kind. The pair (UserID, EntityID) is unique per Kind.
type FavoriteLink struct {
	// ID is the identifier of the link row.
	ID int64 `json:"id"`

	// Kind is the entity kind the link refers to. It selects the link table.
	Kind EntityKind `json:"kind"`

	// UserID is the owner of the favorite.
	UserID int64 `json:"user_id"`

	// EntityID is the identifier of the favorited catalog entity.
	EntityID int64 `json:"entity_id"`
}

// FavoriteEntry is a favorite link joined with the name of the entity it
// points to.
type FavoriteEntry struct {
	LinkID     int64
	EntityID   int64
	EntityName string
}

// UserFavorites groups all favorites of a single user by entity kind.
// Each slice is non-nil, so empty groups serialize as [] rather than null.
type UserFavorites struct {
	Characters []FavoriteEntry
	Planets    []FavoriteEntry
	Vehicles   []FavoriteEntry
}

// NewUserFavorites returns a [UserFavorites] with empty, non-nil groups.
func NewUserFavorites() UserFavorites {
	return UserFavorites{
		Characters: []FavoriteEntry{},
		Planets:    []FavoriteEntry{},
		Vehicles:   []FavoriteEntry{},
	}
}

// Set stores entries under the group matching kind. Unknown kinds are ignored.
func (f *UserFavorites) Set(kind EntityKind, entries []FavoriteEntry) {
	if entries == nil {
		entries = []FavoriteEntry{}
	}

	switch kind {
	case KindCharacter:
		f.Characters = entries
	case KindPlanet:
		f.Planets = entries
	case KindVehicle:
		f.Vehicles = entries
	}
}

// Get returns the group matching kind, or nil for unknown kinds.
func (f UserFavorites) Get(kind EntityKind) []FavoriteEntry {
	switch kind {
	case KindCharacter:
		return f.Characters
	case KindPlanet:
		return f.Planets
	case KindVehicle:
		return f.Vehicles
	}

	return nil
}
