// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod returns a handler meant for [chi.Mux.MethodNotAllowed].
//
// chi answers a known path with an unregistered method with 405. This
// handler answers 404 instead, so the API behaves as if the route did not
// exist for that method. If the method turns out to be registered for a
// route whose pattern equals the raw request path, the request is handed
// back to the router.
//
//	router := chi.NewRouter()
//	// ... register routes ...
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		var foundRoute chi.Route
		for _, route := range router.Routes() {
			if route.Pattern == r.URL.Path {
				foundRoute = route
				break
			}
		}

		if _, ok := foundRoute.Handlers[r.Method]; !ok {
			writeMessage(w, r, "CheckHTTPMethod", msgNotFound, http.StatusNotFound)
			return
		}

		router.ServeHTTP(w, r)
	}
}
