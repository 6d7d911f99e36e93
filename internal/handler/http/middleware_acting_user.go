// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-holocron/internal/utils"
)

// withActingUser stores the configured acting user id in the request context
// under [utils.UserIDCtxKey]. Handlers read it with
// [utils.GetUserIDFromContext] and never assume a fixed id.
func (h *Handler) withActingUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, r.WithContext(utils.WithUserID(r.Context(), h.actingUserID)))
	})
}
