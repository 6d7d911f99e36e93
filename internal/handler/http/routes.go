package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// idParam matches integer path ids only, so "/characters/abc" is a 404.
const idParam = "{id:[0-9]+}"

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(middleware.StripSlashes)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}
	router.Use(h.withTraceID, h.withLogging, withGZip, h.withActingUser)

	router.Get("/", h.sitemap)
	router.Get("/version", h.getServerVersion)

	router.Get("/users", h.listUsers)

	router.Get("/characters", h.listCharacters)
	router.Get("/characters/"+idParam, h.getCharacter)
	router.Get("/planets", h.listPlanets)
	router.Get("/planets/"+idParam, h.getPlanet)
	router.Get("/vehicles", h.listVehicles)
	router.Get("/vehicles/"+idParam, h.getVehicle)

	router.Post("/favorite/{kind}/"+idParam, h.addFavorite)
	router.Delete("/favorite/{kind}/"+idParam, h.removeFavorite)
	router.Get("/user/favorites", h.listFavorites)

	router.NotFound(h.notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
