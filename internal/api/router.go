package api

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// NewRouter assembles the full HTTP surface. Each route group is mounted
// with an explicit access scope; the API-key guard applies to the
// non-public groups when adminAPIKey is configured.
func NewRouter(
	uploadHandler *UploadHandler,
	bookHandler *BookHandler,
	healthHandler *HealthHandler,
	adminAPIKey string,
) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Get("/_health", healthHandler.Health)

	r.Route("/admin/api/v1", func(r chi.Router) {
		r.Use(RouteScope(ScopeAdmin))
		r.Use(RequireAPIKey(adminAPIKey))
		r.Post("/upload", uploadHandler.UploadFile)
		r.Post("/book", bookHandler.CreateBook)
	})

	r.With(RouteScope(ScopePublic)).Get("/api/v1/books", bookHandler.ListBooks)

	r.Route("/_private/api/v1", func(r chi.Router) {
		r.Use(RouteScope(ScopePrivate))
		r.Use(RequireAPIKey(adminAPIKey))
		r.Get("/books/{id}", bookHandler.GetBookDetail)
	})

	return r
}
