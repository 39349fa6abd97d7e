package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/kinotek/catalog/internal/application/castmember"
	"github.com/kinotek/catalog/pkg/logger"
	"github.com/kinotek/catalog/pkg/pagination"
)

// CastMemberHandler serves the /cast_members routes.
type CastMemberHandler struct {
	service *castmember.Service
	log     logger.Logger
}

// NewCastMemberHandler creates a cast member handler.
func NewCastMemberHandler(service *castmember.Service, log logger.Logger) *CastMemberHandler {
	return &CastMemberHandler{service: service, log: log}
}

// Routes mounts the cast member endpoints.
func (h *CastMemberHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Put("/{id}", h.update)
	r.Delete("/{id}", h.delete)
	return r
}

type castMemberRequest struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

type castMemberResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func castMemberResponseFrom(out castmember.CastMemberOutput) castMemberResponse {
	return castMemberResponse{
		ID:        out.ID,
		Name:      out.Name,
		Type:      out.Type,
		CreatedAt: out.CreatedAt,
		UpdatedAt: out.UpdatedAt,
	}
}

func (h *CastMemberHandler) create(w http.ResponseWriter, r *http.Request) {
	var req castMemberRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	out, err := h.service.Create(r.Context(), castmember.CreateCastMemberCommand{
		Name: req.Name,
		Type: req.Type,
	})
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"id": out.ID})
}

func (h *CastMemberHandler) update(w http.ResponseWriter, r *http.Request) {
	var req castMemberRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	out, err := h.service.Update(r.Context(), castmember.UpdateCastMemberCommand{
		ID:   chi.URLParam(r, "id"),
		Name: req.Name,
		Type: req.Type,
	})
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, castMemberResponseFrom(out))
}

func (h *CastMemberHandler) get(w http.ResponseWriter, r *http.Request) {
	out, err := h.service.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, castMemberResponseFrom(out))
}

func (h *CastMemberHandler) list(w http.ResponseWriter, r *http.Request) {
	page, err := h.service.List(r.Context(), searchQuery(r))
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, pagination.Map(page, castMemberResponseFrom))
}

func (h *CastMemberHandler) delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
