package http

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-holocron/models"
)

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.services.UserService.ListUsers(r.Context())
	if err != nil {
		writeError(w, r, "*Handler.listUsers", err, "")
		return
	}

	writeJSON(w, r, "*Handler.listUsers", nonNil(users), http.StatusOK)
}

func (h *Handler) listCharacters(w http.ResponseWriter, r *http.Request) {
	listEntities(w, r, "*Handler.listCharacters", h.services.CatalogService.ListCharacters)
}

func (h *Handler) getCharacter(w http.ResponseWriter, r *http.Request) {
	getEntity(w, r, "*Handler.getCharacter", models.KindCharacter, h.services.CatalogService.GetCharacter)
}

func (h *Handler) listPlanets(w http.ResponseWriter, r *http.Request) {
	listEntities(w, r, "*Handler.listPlanets", h.services.CatalogService.ListPlanets)
}

func (h *Handler) getPlanet(w http.ResponseWriter, r *http.Request) {
	getEntity(w, r, "*Handler.getPlanet", models.KindPlanet, h.services.CatalogService.GetPlanet)
}

func (h *Handler) listVehicles(w http.ResponseWriter, r *http.Request) {
	listEntities(w, r, "*Handler.listVehicles", h.services.CatalogService.ListVehicles)
}

func (h *Handler) getVehicle(w http.ResponseWriter, r *http.Request) {
	getEntity(w, r, "*Handler.getVehicle", models.KindVehicle, h.services.CatalogService.GetVehicle)
}

func listEntities[T any](w http.ResponseWriter, r *http.Request, funcName string, list func(context.Context) ([]T, error)) {
	entities, err := list(r.Context())
	if err != nil {
		writeError(w, r, funcName, err, "")
		return
	}

	writeJSON(w, r, funcName, nonNil(entities), http.StatusOK)
}

func getEntity[T any](w http.ResponseWriter, r *http.Request, funcName string, kind models.EntityKind,
	get func(context.Context, int64) (T, error)) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, funcName, err, kind)
		return
	}

	entity, err := get(r.Context(), id)
	if err != nil {
		writeError(w, r, funcName, err, kind)
		return
	}

	writeJSON(w, r, funcName, entity, http.StatusOK)
}

// pathID parses the {id} route parameter.
func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0, errInvalidPathID
	}

	return id, nil
}

// nonNil makes empty results serialize as [] instead of null.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
