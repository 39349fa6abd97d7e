// Package http exposes the catalog use cases over a JSON REST API.
package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/kinotek/catalog/internal/application/category"
	"github.com/kinotek/catalog/pkg/logger"
	"github.com/kinotek/catalog/pkg/pagination"
)

// CategoryHandler serves the /categories routes.
type CategoryHandler struct {
	service *category.Service
	log     logger.Logger
}

// NewCategoryHandler creates a category handler.
func NewCategoryHandler(service *category.Service, log logger.Logger) *CategoryHandler {
	return &CategoryHandler{service: service, log: log}
}

// Routes mounts the category endpoints.
func (h *CategoryHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Put("/{id}", h.update)
	r.Delete("/{id}", h.delete)
	return r
}

type categoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Active      bool   `json:"is_active"`
}

type categoryResponse struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Active      bool       `json:"is_active"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	DeletedAt   *time.Time `json:"deleted_at,omitempty"`
}

func categoryResponseFrom(out category.CategoryOutput) categoryResponse {
	return categoryResponse{
		ID:          out.ID,
		Name:        out.Name,
		Description: out.Description,
		Active:      out.Active,
		CreatedAt:   out.CreatedAt,
		UpdatedAt:   out.UpdatedAt,
		DeletedAt:   out.DeletedAt,
	}
}

func (h *CategoryHandler) create(w http.ResponseWriter, r *http.Request) {
	var req categoryRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	out, err := h.service.Create(r.Context(), category.CreateCategoryCommand{
		Name:        req.Name,
		Description: req.Description,
		Active:      req.Active,
	})
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"id": out.ID})
}

func (h *CategoryHandler) update(w http.ResponseWriter, r *http.Request) {
	var req categoryRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	out, err := h.service.Update(r.Context(), category.UpdateCategoryCommand{
		ID:          chi.URLParam(r, "id"),
		Name:        req.Name,
		Description: req.Description,
		Active:      req.Active,
	})
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, categoryResponseFrom(out))
}

func (h *CategoryHandler) get(w http.ResponseWriter, r *http.Request) {
	out, err := h.service.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, categoryResponseFrom(out))
}

func (h *CategoryHandler) list(w http.ResponseWriter, r *http.Request) {
	page, err := h.service.List(r.Context(), searchQuery(r))
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, pagination.Map(page, categoryResponseFrom))
}

func (h *CategoryHandler) delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
