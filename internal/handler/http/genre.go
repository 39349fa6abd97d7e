package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/kinotek/catalog/internal/application/genre"
	"github.com/kinotek/catalog/pkg/logger"
	"github.com/kinotek/catalog/pkg/pagination"
)

// GenreHandler serves the /genres routes.
type GenreHandler struct {
	service *genre.Service
	log     logger.Logger
}

// NewGenreHandler creates a genre handler.
func NewGenreHandler(service *genre.Service, log logger.Logger) *GenreHandler {
	return &GenreHandler{service: service, log: log}
}

// Routes mounts the genre endpoints.
func (h *GenreHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Put("/{id}", h.update)
	r.Delete("/{id}", h.delete)
	return r
}

type genreRequest struct {
	Name       string   `json:"name"`
	Active     bool     `json:"is_active"`
	Categories []string `json:"categories_id"`
}

type genreResponse struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Active     bool       `json:"is_active"`
	Categories []string   `json:"categories_id"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
	DeletedAt  *time.Time `json:"deleted_at,omitempty"`
}

func genreResponseFrom(out genre.GenreOutput) genreResponse {
	return genreResponse{
		ID:         out.ID,
		Name:       out.Name,
		Active:     out.Active,
		Categories: out.Categories,
		CreatedAt:  out.CreatedAt,
		UpdatedAt:  out.UpdatedAt,
		DeletedAt:  out.DeletedAt,
	}
}

func (h *GenreHandler) create(w http.ResponseWriter, r *http.Request) {
	var req genreRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	out, err := h.service.Create(r.Context(), genre.CreateGenreCommand{
		Name:       req.Name,
		Active:     req.Active,
		Categories: req.Categories,
	})
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"id": out.ID})
}

func (h *GenreHandler) update(w http.ResponseWriter, r *http.Request) {
	var req genreRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	out, err := h.service.Update(r.Context(), genre.UpdateGenreCommand{
		ID:         chi.URLParam(r, "id"),
		Name:       req.Name,
		Active:     req.Active,
		Categories: req.Categories,
	})
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, genreResponseFrom(out))
}

func (h *GenreHandler) get(w http.ResponseWriter, r *http.Request) {
	out, err := h.service.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, genreResponseFrom(out))
}

func (h *GenreHandler) list(w http.ResponseWriter, r *http.Request) {
	page, err := h.service.List(r.Context(), searchQuery(r))
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, pagination.Map(page, genreResponseFrom))
}

func (h *GenreHandler) delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
