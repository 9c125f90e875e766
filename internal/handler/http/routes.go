package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "gaia-backend/docs"
)

// Init assembles the route table.
//
// Verb mapping is intentional and load-bearing: PUT on the collection
// creates a resource with a server-assigned identifier, and POST on an
// instance applies a partial update. Clients depend on this exact mapping.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPut,
			http.MethodPatch, http.MethodDelete, http.MethodOptions, http.MethodHead,
		},
		AllowedHeaders: []string{"*"},
	}))
	router.Use(h.withLogging)

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", h.health)

		r.Put("/users", h.createUser)
		r.Get("/users/{user_id}", h.getUser)
		r.Post("/users/{user_id}", h.updateUser)
	})

	router.Get("/api-docs/openapi.json", h.openapiDocument)
	router.Get("/swagger-ui/*", httpSwagger.Handler(
		httpSwagger.URL("/api-docs/openapi.json"),
	))

	return router
}
