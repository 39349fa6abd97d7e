package http

import (
	"errors"
	"io"
	"mime"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	appvideo "github.com/kinotek/catalog/internal/application/video"
	"github.com/kinotek/catalog/internal/domain/video"
	"github.com/kinotek/catalog/pkg/logger"
	"github.com/kinotek/catalog/pkg/pagination"
)

// maxUploadSize bounds the in-memory portion of multipart uploads.
const maxUploadSize = 32 << 20

// VideoHandler serves the /videos routes. Create and update accept both
// application/json bodies and multipart/form-data carrying the binary media
// slots alongside the scalar fields.
type VideoHandler struct {
	service *appvideo.Service
	log     logger.Logger
}

// NewVideoHandler creates a video handler.
func NewVideoHandler(service *appvideo.Service, log logger.Logger) *VideoHandler {
	return &VideoHandler{service: service, log: log}
}

// Routes mounts the video endpoints.
func (h *VideoHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Put("/{id}", h.update)
	r.Delete("/{id}", h.delete)
	return r
}

type videoRequest struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	YearLaunched *int     `json:"year_launched"`
	Duration     float64  `json:"duration"`
	Opened       bool     `json:"opened"`
	Published    bool     `json:"published"`
	Rating       string   `json:"rating"`
	Categories   []string `json:"categories_id"`
	Genres       []string `json:"genres_id"`
	CastMembers  []string `json:"cast_members_id"`
}

type audioVideoMediaResponse struct {
	Checksum        string `json:"checksum"`
	Name            string `json:"name"`
	RawLocation     string `json:"raw_location"`
	EncodedLocation string `json:"encoded_location"`
	Status          string `json:"status"`
}

type imageMediaResponse struct {
	Checksum string `json:"checksum"`
	Name     string `json:"name"`
	Location string `json:"location"`
}

type videoResponse struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	YearLaunched *int     `json:"year_launched"`
	Duration     float64  `json:"duration"`
	Opened       bool     `json:"opened"`
	Published    bool     `json:"published"`
	Rating       string   `json:"rating"`
	Categories   []string `json:"categories_id"`
	Genres       []string `json:"genres_id"`
	CastMembers  []string `json:"cast_members_id"`

	Video         *audioVideoMediaResponse `json:"video,omitempty"`
	Trailer       *audioVideoMediaResponse `json:"trailer,omitempty"`
	Banner        *imageMediaResponse      `json:"banner,omitempty"`
	Thumbnail     *imageMediaResponse      `json:"thumbnail,omitempty"`
	ThumbnailHalf *imageMediaResponse      `json:"thumbnail_half,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func videoResponseFrom(out appvideo.VideoOutput) videoResponse {
	return videoResponse{
		ID:            out.ID,
		Title:         out.Title,
		Description:   out.Description,
		YearLaunched:  out.LaunchedAt,
		Duration:      out.Duration,
		Opened:        out.Opened,
		Published:     out.Published,
		Rating:        out.Rating,
		Categories:    out.Categories,
		Genres:        out.Genres,
		CastMembers:   out.CastMembers,
		Video:         audioVideoResponse(out.Video),
		Trailer:       audioVideoResponse(out.Trailer),
		Banner:        imageResponse(out.Banner),
		Thumbnail:     imageResponse(out.Thumbnail),
		ThumbnailHalf: imageResponse(out.ThumbnailHalf),
		CreatedAt:     out.CreatedAt,
		UpdatedAt:     out.UpdatedAt,
	}
}

func audioVideoResponse(m *appvideo.AudioVideoMediaOutput) *audioVideoMediaResponse {
	if m == nil {
		return nil
	}
	return &audioVideoMediaResponse{
		Checksum:        m.Checksum,
		Name:            m.Name,
		RawLocation:     m.RawLocation,
		EncodedLocation: m.EncodedLocation,
		Status:          m.Status,
	}
}

func imageResponse(m *appvideo.ImageMediaOutput) *imageMediaResponse {
	if m == nil {
		return nil
	}
	return &imageMediaResponse{Checksum: m.Checksum, Name: m.Name, Location: m.Location}
}

// videoForm is the decoded body of a create or update request, whichever
// content type carried it.
type videoForm struct {
	videoRequest
	resources map[video.MediaType]*video.Resource
}

func (h *VideoHandler) decodeVideoForm(w http.ResponseWriter, r *http.Request) (videoForm, bool) {
	contentType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if contentType != "multipart/form-data" {
		var form videoForm
		if !decodeJSON(w, r, &form.videoRequest) {
			return videoForm{}, false
		}
		return form, true
	}

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Message: "invalid multipart body"})
		return videoForm{}, false
	}

	form := videoForm{resources: map[video.MediaType]*video.Resource{}}
	form.Title = r.FormValue("title")
	form.Description = r.FormValue("description")
	form.Duration, _ = strconv.ParseFloat(r.FormValue("duration"), 64)
	form.Opened = r.FormValue("opened") == "true"
	form.Published = r.FormValue("published") == "true"
	form.Rating = r.FormValue("rating")
	form.Categories = splitIDs(r.FormValue("categories_id"))
	form.Genres = splitIDs(r.FormValue("genres_id"))
	form.CastMembers = splitIDs(r.FormValue("cast_members_id"))
	if year, err := strconv.Atoi(r.FormValue("year_launched")); err == nil {
		form.YearLaunched = &year
	}

	files := map[video.MediaType]string{
		video.MediaTypeVideo:         "video_file",
		video.MediaTypeTrailer:       "trailer_file",
		video.MediaTypeBanner:        "banner_file",
		video.MediaTypeThumbnail:     "thumb_file",
		video.MediaTypeThumbnailHalf: "thumb_half_file",
	}
	for mediaType, field := range files {
		resource, err := readResource(r, field, mediaType)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Message: "could not read " + field})
			return videoForm{}, false
		}
		if resource != nil {
			form.resources[mediaType] = resource
		}
	}
	return form, true
}

func readResource(r *http.Request, field string, mediaType video.MediaType) (*video.Resource, error) {
	file, header, err := r.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}
	resource := video.NewResource(content, header.Header.Get("Content-Type"), header.Filename, mediaType)
	return &resource, nil
}

func splitIDs(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	ids := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			ids = append(ids, trimmed)
		}
	}
	return ids
}

func (h *VideoHandler) create(w http.ResponseWriter, r *http.Request) {
	form, ok := h.decodeVideoForm(w, r)
	if !ok {
		return
	}

	out, err := h.service.Create(r.Context(), appvideo.CreateVideoCommand{
		Title:         form.Title,
		Description:   form.Description,
		LaunchedAt:    form.YearLaunched,
		Duration:      form.Duration,
		Opened:        form.Opened,
		Published:     form.Published,
		Rating:        form.Rating,
		Categories:    form.Categories,
		Genres:        form.Genres,
		CastMembers:   form.CastMembers,
		Video:         form.resources[video.MediaTypeVideo],
		Trailer:       form.resources[video.MediaTypeTrailer],
		Banner:        form.resources[video.MediaTypeBanner],
		Thumbnail:     form.resources[video.MediaTypeThumbnail],
		ThumbnailHalf: form.resources[video.MediaTypeThumbnailHalf],
	})
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"id": out.ID})
}

func (h *VideoHandler) update(w http.ResponseWriter, r *http.Request) {
	form, ok := h.decodeVideoForm(w, r)
	if !ok {
		return
	}

	out, err := h.service.Update(r.Context(), appvideo.UpdateVideoCommand{
		ID:            chi.URLParam(r, "id"),
		Title:         form.Title,
		Description:   form.Description,
		LaunchedAt:    form.YearLaunched,
		Duration:      form.Duration,
		Opened:        form.Opened,
		Published:     form.Published,
		Rating:        form.Rating,
		Categories:    form.Categories,
		Genres:        form.Genres,
		CastMembers:   form.CastMembers,
		Video:         form.resources[video.MediaTypeVideo],
		Trailer:       form.resources[video.MediaTypeTrailer],
		Banner:        form.resources[video.MediaTypeBanner],
		Thumbnail:     form.resources[video.MediaTypeThumbnail],
		ThumbnailHalf: form.resources[video.MediaTypeThumbnailHalf],
	})
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, videoResponseFrom(out))
}

func (h *VideoHandler) get(w http.ResponseWriter, r *http.Request) {
	out, err := h.service.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, videoResponseFrom(out))
}

func (h *VideoHandler) list(w http.ResponseWriter, r *http.Request) {
	query := searchQuery(r)
	if r.URL.Query().Get("sort") == "" {
		query.Sort = "title"
	}
	page, err := h.service.List(r.Context(), query)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, pagination.Map(page, videoResponseFrom))
}

func (h *VideoHandler) delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
