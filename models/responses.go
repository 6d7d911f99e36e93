// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// MessageResponse is the body of every favorite mutation response and of
// every handled error.
type MessageResponse struct {
	Message string `json:"Message"`
}

// FavoriteCharacterResponse is a single entry of the favorite_characters group.
type FavoriteCharacterResponse struct {
	ID            int64  `json:"id"`
	CharacterID   int64  `json:"character_id"`
	CharacterName string `json:"character_name"`
}

// FavoritePlanetResponse is a single entry of the favorite_planets group.
type FavoritePlanetResponse struct {
	ID         int64  `json:"id"`
	PlanetID   int64  `json:"planet_id"`
	PlanetName string `json:"planet_name"`
}

// FavoriteVehicleResponse is a single entry of the favorite_vehicles group.
type FavoriteVehicleResponse struct {
	ID          int64  `json:"id"`
	VehicleID   int64  `json:"vehicle_id"`
	VehicleName string `json:"vehicle_name"`
}

// FavoritesResponse is the body returned by GET /user/favorites.
type FavoritesResponse struct {
	FavoriteCharacters []FavoriteCharacterResponse `json:"favorite_characters"`
	FavoritePlanets    []FavoritePlanetResponse    `json:"favorite_planets"`
	FavoriteVehicles   []FavoriteVehicleResponse   `json:"favorite_vehicles"`
}

// NewFavoritesResponse projects grouped favorites onto the wire format.
// Every group is a non-nil slice.
func NewFavoritesResponse(favorites UserFavorites) FavoritesResponse {
	response := FavoritesResponse{
		FavoriteCharacters: make([]FavoriteCharacterResponse, 0, len(favorites.Characters)),
		FavoritePlanets:    make([]FavoritePlanetResponse, 0, len(favorites.Planets)),
		FavoriteVehicles:   make([]FavoriteVehicleResponse, 0, len(favorites.Vehicles)),
	}

	for _, entry := range favorites.Characters {
		response.FavoriteCharacters = append(response.FavoriteCharacters, FavoriteCharacterResponse{
			ID:            entry.LinkID,
			CharacterID:   entry.EntityID,
			CharacterName: entry.EntityName,
		})
	}
	for _, entry := range favorites.Planets {
		response.FavoritePlanets = append(response.FavoritePlanets, FavoritePlanetResponse{
			ID:         entry.LinkID,
			PlanetID:   entry.EntityID,
			PlanetName: entry.EntityName,
		})
	}
	for _, entry := range favorites.Vehicles {
		response.FavoriteVehicles = append(response.FavoriteVehicles, FavoriteVehicleResponse{
			ID:          entry.LinkID,
			VehicleID:   entry.EntityID,
			VehicleName: entry.EntityName,
		})
	}

	return response
}

// Endpoint describes a single registered route.
type Endpoint struct {
	Method string `json:"method"`
	Path   string `json:"path"`
}

// SitemapResponse is the body returned by GET /.
type SitemapResponse struct {
	Endpoints []Endpoint `json:"endpoints"`
}
