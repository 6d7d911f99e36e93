package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-holocron/internal/logger"
	"github.com/MKhiriev/go-holocron/models"
)

type httpAPIClient struct {
	client *resty.Client

	logger *logger.Logger
}

// NewHTTPAPIClient builds an [API] for the server at address ("host:port" or
// a full URL). A non-positive timeout disables the request timeout.
func NewHTTPAPIClient(address string, timeout time.Duration, logger *logger.Logger) (API, error) {
	baseURL, err := normalizeBaseURL(address)
	if err != nil {
		return nil, fmt.Errorf("invalid api address: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json")
	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	logger.Debug().Str("base_url", baseURL).Msg("api client created")
	return &httpAPIClient{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpAPIClient) ListUsers(ctx context.Context) ([]models.User, error) {
	return getJSON[[]models.User](ctx, h, "/users")
}

func (h *httpAPIClient) ListCharacters(ctx context.Context) ([]models.Character, error) {
	return getJSON[[]models.Character](ctx, h, "/characters")
}

func (h *httpAPIClient) GetCharacter(ctx context.Context, id int64) (models.Character, error) {
	return getJSON[models.Character](ctx, h, "/characters/"+strconv.FormatInt(id, 10))
}

func (h *httpAPIClient) ListPlanets(ctx context.Context) ([]models.Planet, error) {
	return getJSON[[]models.Planet](ctx, h, "/planets")
}

func (h *httpAPIClient) GetPlanet(ctx context.Context, id int64) (models.Planet, error) {
	return getJSON[models.Planet](ctx, h, "/planets/"+strconv.FormatInt(id, 10))
}

func (h *httpAPIClient) ListVehicles(ctx context.Context) ([]models.Vehicle, error) {
	return getJSON[[]models.Vehicle](ctx, h, "/vehicles")
}

func (h *httpAPIClient) GetVehicle(ctx context.Context, id int64) (models.Vehicle, error) {
	return getJSON[models.Vehicle](ctx, h, "/vehicles/"+strconv.FormatInt(id, 10))
}

func (h *httpAPIClient) AddFavorite(ctx context.Context, kind models.EntityKind, id int64) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Post(favoritePath(kind, id))
	if err != nil {
		return "", fmt.Errorf("add favorite request: %w", err)
	}

	return messageOrError(resp)
}

func (h *httpAPIClient) RemoveFavorite(ctx context.Context, kind models.EntityKind, id int64) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Delete(favoritePath(kind, id))
	if err != nil {
		return "", fmt.Errorf("remove favorite request: %w", err)
	}

	return messageOrError(resp)
}

func (h *httpAPIClient) ListFavorites(ctx context.Context) (models.FavoritesResponse, error) {
	return getJSON[models.FavoritesResponse](ctx, h, "/user/favorites")
}

func (h *httpAPIClient) Sitemap(ctx context.Context) (models.SitemapResponse, error) {
	return getJSON[models.SitemapResponse](ctx, h, "/")
}

func (h *httpAPIClient) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return resp.String(), nil
}

func getJSON[T any](ctx context.Context, h *httpAPIClient, path string) (T, error) {
	var result T

	resp, err := h.client.R().
		SetContext(ctx).
		Get(path)
	if err != nil {
		return result, fmt.Errorf("GET %s request: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return result, err
	}

	if err = json.Unmarshal(resp.Body(), &result); err != nil {
		h.logger.Err(err).Str("func", "getJSON").Str("path", path).Msg("error decoding response")
		return result, fmt.Errorf("decode %s response: %w", path, err)
	}

	return result, nil
}

func messageOrError(resp *resty.Response) (string, error) {
	if err := mapHTTPError(resp); err != nil {
		return "", err
	}

	return responseMessage(resp), nil
}

func favoritePath(kind models.EntityKind, id int64) string {
	return "/favorite/" + url.PathEscape(kind.String()) + "/" + strconv.FormatInt(id, 10)
}
