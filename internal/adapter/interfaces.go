// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a typed client for the holocron REST API.
//
// [NewHTTPAPIClient] returns an [API] backed by resty. Non-2xx responses are
// mapped by mapHTTPError to the sentinel errors in errors.go, carrying the
// server's message, so callers can use [errors.Is] (e.g. [ErrNotFound] for
// 404, [ErrBadRequest] for a duplicate favorite).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-holocron/models"
)

// API is the client side of the holocron REST API. Favorite operations act
// on behalf of the user the server is configured with.
type API interface {
	ListUsers(ctx context.Context) ([]models.User, error)

	ListCharacters(ctx context.Context) ([]models.Character, error)
	GetCharacter(ctx context.Context, id int64) (models.Character, error)
	ListPlanets(ctx context.Context) ([]models.Planet, error)
	GetPlanet(ctx context.Context, id int64) (models.Planet, error)
	ListVehicles(ctx context.Context) ([]models.Vehicle, error)
	GetVehicle(ctx context.Context, id int64) (models.Vehicle, error)

	// AddFavorite returns the confirmation message of the server.
	AddFavorite(ctx context.Context, kind models.EntityKind, id int64) (string, error)
	// RemoveFavorite returns the confirmation message of the server.
	RemoveFavorite(ctx context.Context, kind models.EntityKind, id int64) (string, error)
	ListFavorites(ctx context.Context) (models.FavoritesResponse, error)

	Sitemap(ctx context.Context) (models.SitemapResponse, error)
	Version(ctx context.Context) (string, error)
}
