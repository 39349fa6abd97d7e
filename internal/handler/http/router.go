package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// NewRouter wires the aggregate handlers into a chi router with the common
// middleware stack.
func NewRouter(categories *CategoryHandler, genres *GenreHandler, castMembers *CastMemberHandler, videos *VideoHandler) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Route("/api/v1", func(r chi.Router) {
		r.Mount("/categories", categories.Routes())
		r.Mount("/genres", genres.Routes())
		r.Mount("/cast_members", castMembers.Routes())
		r.Mount("/videos", videos.Routes())
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"status":    "ok",
			"timestamp": time.Now().UTC(),
		})
	})

	return r
}
