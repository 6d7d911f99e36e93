package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-holocron/internal/utils"
	"github.com/MKhiriev/go-holocron/models"
)

// unstorableEntityID stands in for a path id that matches no row.
const unstorableEntityID int64 = 0

func (h *Handler) addFavorite(w http.ResponseWriter, r *http.Request) {
	kind, entityID, ok := favoriteTarget(w, r, "*Handler.addFavorite")
	if !ok {
		return
	}

	userID, found := utils.GetUserIDFromContext(r.Context())
	if !found {
		writeError(w, r, "*Handler.addFavorite", errNoActingUser, kind)
		return
	}

	if _, err := h.services.FavoritesService.AddFavorite(r.Context(), userID, kind, entityID); err != nil {
		writeError(w, r, "*Handler.addFavorite", err, kind)
		return
	}

	writeMessage(w, r, "*Handler.addFavorite", favoriteAddedMessage(kind), http.StatusCreated)
}

func (h *Handler) removeFavorite(w http.ResponseWriter, r *http.Request) {
	kind, entityID, ok := favoriteTarget(w, r, "*Handler.removeFavorite")
	if !ok {
		return
	}

	userID, found := utils.GetUserIDFromContext(r.Context())
	if !found {
		writeError(w, r, "*Handler.removeFavorite", errNoActingUser, kind)
		return
	}

	if err := h.services.FavoritesService.RemoveFavorite(r.Context(), userID, kind, entityID); err != nil {
		writeError(w, r, "*Handler.removeFavorite", err, kind)
		return
	}

	writeMessage(w, r, "*Handler.removeFavorite", favoriteRemovedMessage(kind), http.StatusOK)
}

func (h *Handler) listFavorites(w http.ResponseWriter, r *http.Request) {
	userID, found := utils.GetUserIDFromContext(r.Context())
	if !found {
		writeError(w, r, "*Handler.listFavorites", errNoActingUser, "")
		return
	}

	favorites, err := h.services.FavoritesService.ListFavorites(r.Context(), userID)
	if err != nil {
		writeError(w, r, "*Handler.listFavorites", err, "")
		return
	}

	writeJSON(w, r, "*Handler.listFavorites", models.NewFavoritesResponse(favorites), http.StatusOK)
}

// favoriteTarget reads {kind} and {id} from the path. An unknown kind is
// answered with 404 here, as if the route did not exist.
func favoriteTarget(w http.ResponseWriter, r *http.Request, funcName string) (models.EntityKind, int64, bool) {
	kind, err := models.ParseEntityKind(chi.URLParam(r, "kind"))
	if err != nil {
		writeMessage(w, r, funcName, msgNotFound, http.StatusNotFound)
		return "", 0, false
	}

	// An id that overflows int64 cannot be stored; it still goes through the
	// service so the acting user is checked first.
	entityID, err := pathID(r)
	if err != nil {
		entityID = unstorableEntityID
	}

	return kind, entityID, true
}
