package http

import (
	"net/http"

	"github.com/MKhiriev/go-bot-host/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	for _, s := range h.pipeline() {
		router.Use(s.middleware)
	}

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/api/version/", h.getServerVersion)
		r.Get(h.infoEndpoint(), h.getAPIInfo)
		r.Post("/api/token", h.exchangeToken)

		if h.metrics != nil {
			r.Method(http.MethodGet, "/metrics", h.metrics.Handler())
		}
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/me", h.me)

		r.Group(func(r chi.Router) {
			r.Use(h.requireRole(models.RoleAdmin))

			r.Post("/api/credentials", h.mintCredential)
			r.Delete("/api/credentials/{token}", h.revokeCredential)
		})
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
