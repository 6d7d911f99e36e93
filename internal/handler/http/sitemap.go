package http

import (
	"net/http"
	"sort"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-holocron/models"
)

// sitemap lists every registered route of the router serving the request.
func (h *Handler) sitemap(w http.ResponseWriter, r *http.Request) {
	routes := chi.RouteContext(r.Context()).Routes

	endpoints := make([]models.Endpoint, 0)
	err := chi.Walk(routes, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		endpoints = append(endpoints, models.Endpoint{Method: method, Path: displayRoute(route)})
		return nil
	})
	if err != nil {
		writeError(w, r, "*Handler.sitemap", err, "")
		return
	}

	sort.Slice(endpoints, func(i, j int) bool {
		if endpoints[i].Path != endpoints[j].Path {
			return endpoints[i].Path < endpoints[j].Path
		}
		return endpoints[i].Method < endpoints[j].Method
	})

	writeJSON(w, r, "*Handler.sitemap", models.SitemapResponse{Endpoints: endpoints}, http.StatusOK)
}

// displayRoute drops regexp constraints from route parameters:
// "/characters/{id:[0-9]+}" becomes "/characters/{id}".
func displayRoute(route string) string {
	var b strings.Builder
	for {
		start := strings.Index(route, "{")
		if start < 0 {
			break
		}
		end := strings.Index(route[start:], "}")
		if end < 0 {
			break
		}
		param := route[start+1 : start+end]
		if name, _, found := strings.Cut(param, ":"); found {
			param = name
		}
		b.WriteString(route[:start])
		b.WriteString("{" + param + "}")
		route = route[start+end+1:]
	}
	b.WriteString(route)

	if p := b.String(); len(p) > 1 {
		return strings.TrimSuffix(p, "/")
	}
	return b.String()
}

func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	writeMessage(w, r, "*Handler.notFound", msgNotFound, http.StatusNotFound)
}
