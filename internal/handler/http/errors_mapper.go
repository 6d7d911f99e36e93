package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-holocron/internal/logger"
	"github.com/MKhiriev/go-holocron/internal/service"
	"github.com/MKhiriev/go-holocron/internal/store"
	"github.com/MKhiriev/go-holocron/internal/utils"
	"github.com/MKhiriev/go-holocron/models"
)

var errorStatusMap = map[error]int{
	service.ErrUserNotFound:      http.StatusNotFound,
	service.ErrEntityNotFound:    http.StatusNotFound,
	service.ErrFavoriteNotFound:  http.StatusNotFound,
	service.ErrInvalidEntityKind: http.StatusNotFound,
	service.ErrDuplicateFavorite: http.StatusBadRequest,
	errInvalidPathID:             http.StatusNotFound,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrExecutingStatement:   http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

const (
	msgUserNotFound  = "User not found."
	msgNotFound      = "Resource not found."
	msgInternalError = "Internal server error."
)

// messageFromError builds the user-facing message for err. kind selects the
// wording of entity related messages and may be empty.
func messageFromError(err error, kind models.EntityKind) string {
	switch {
	case errors.Is(err, service.ErrUserNotFound):
		return msgUserNotFound
	case errors.Is(err, service.ErrInvalidEntityKind):
		return msgNotFound
	case errors.Is(err, service.ErrEntityNotFound), errors.Is(err, errInvalidPathID):
		return kind.Title() + " not found."
	case errors.Is(err, service.ErrDuplicateFavorite):
		return duplicateFavoriteMessage(kind)
	case errors.Is(err, service.ErrFavoriteNotFound):
		return "The " + kind.String() + " is not a favorite."
	default:
		return msgInternalError
	}
}

// duplicateFavoriteMessage keeps the historical wording, which differs for
// characters.
func duplicateFavoriteMessage(kind models.EntityKind) string {
	if kind == models.KindCharacter {
		return "Character is already on user's favorites"
	}

	return "The " + kind.String() + " is already on user's favorites"
}

func favoriteAddedMessage(kind models.EntityKind) string {
	return "The " + kind.String() + " was added to the user's favorites."
}

func favoriteRemovedMessage(kind models.EntityKind) string {
	return kind.Title() + " deleted from favorites."
}

// writeError logs err and writes the mapped status with a message body.
func writeError(w http.ResponseWriter, r *http.Request, funcName string, err error, kind models.EntityKind) {
	status := statusFromError(err)

	log := logger.FromRequest(r)
	event := log.Warn()
	if status >= http.StatusInternalServerError {
		event = log.Error()
	}
	event.Err(err).Str("func", funcName).Int("status", status).Msg("request failed")

	writeMessage(w, r, funcName, messageFromError(err, kind), status)
}

func writeMessage(w http.ResponseWriter, r *http.Request, funcName, message string, status int) {
	writeJSON(w, r, funcName, models.MessageResponse{Message: message}, status)
}

func writeJSON(w http.ResponseWriter, r *http.Request, funcName string, data any, status int) {
	if _, err := utils.WriteJSON(w, data, status); err != nil {
		logger.FromRequest(r).Err(err).Str("func", funcName).Msg("error writing response")
	}
}
