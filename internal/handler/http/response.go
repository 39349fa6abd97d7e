package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/kinotek/catalog/internal/domain/validation"
	apperrors "github.com/kinotek/catalog/pkg/errors"
	"github.com/kinotek/catalog/pkg/logger"
	"github.com/kinotek/catalog/pkg/pagination"
)

// ErrorResponse is the JSON body returned for every failed request.
type ErrorResponse struct {
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors,omitempty"`
}

// FieldError is one rule violation inside an ErrorResponse.
type FieldError struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body != nil {
		json.NewEncoder(w).Encode(body)
	}
}

// writeError maps application errors onto HTTP statuses: rule violations
// become 422, missing aggregates 404, everything else 500.
func writeError(w http.ResponseWriter, log logger.Logger, err error) {
	var domainErr *validation.DomainError
	if errors.As(err, &domainErr) {
		fields := make([]FieldError, len(domainErr.Errors()))
		for i, e := range domainErr.Errors() {
			fields[i] = FieldError{Message: e.Message}
		}
		writeJSON(w, http.StatusUnprocessableEntity, ErrorResponse{
			Message: domainErr.Message(),
			Errors:  fields,
		})
		return
	}

	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		switch appErr.Type {
		case apperrors.ErrorTypeNotFound:
			writeJSON(w, http.StatusNotFound, ErrorResponse{Message: appErr.Message})
			return
		case apperrors.ErrorTypeValidation:
			writeJSON(w, http.StatusUnprocessableEntity, ErrorResponse{Message: appErr.Message})
			return
		case apperrors.ErrorTypeConflict:
			writeJSON(w, http.StatusConflict, ErrorResponse{Message: appErr.Message})
			return
		}
	}

	log.Error("Request failed", logger.Error(err))
	writeJSON(w, http.StatusInternalServerError, ErrorResponse{Message: "internal server error"})
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Message: "invalid request body"})
		return false
	}
	return true
}

// searchQuery reads the pagination parameters every list endpoint accepts.
func searchQuery(r *http.Request) pagination.SearchQuery {
	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	perPage, err := strconv.Atoi(q.Get("per_page"))
	if err != nil || perPage <= 0 {
		perPage = 10
	}
	direction := q.Get("dir")
	if direction == "" {
		direction = "asc"
	}
	sort := q.Get("sort")
	if sort == "" {
		sort = "name"
	}
	return pagination.SearchQuery{
		Page:      page,
		PerPage:   perPage,
		Terms:     q.Get("search"),
		Sort:      sort,
		Direction: direction,
	}
}
