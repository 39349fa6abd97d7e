package http_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/kinotek/catalog/internal/domain/video"
	handler "github.com/kinotek/catalog/internal/handler/http"
	"github.com/kinotek/catalog/test/testutil"
)

func TestCreateVideo_JSONWithoutMedia(t *testing.T) {
	f := newRouterFixture()
	created := testutil.CreateTestVideo("System Design Interviews")
	f.videos.On("Create", mock.Anything, mock.AnythingOfType("*video.Video")).
		Return(created, nil)

	w := f.do(t, http.MethodPost, "/api/v1/videos/", map[string]any{
		"title":         "System Design Interviews",
		"description":   "A course about system design",
		"year_launched": 2022,
		"duration":      120.5,
		"published":     true,
		"rating":        "L",
	})

	require.Equal(t, http.StatusCreated, w.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, created.ID.String(), body["id"])
	f.media.AssertNotCalled(t, "StoreAudioVideo")
}

func TestCreateVideo_MultipartWithVideoFile(t *testing.T) {
	f := newRouterFixture()
	created := testutil.CreateTestVideo("System Design Interviews")
	resource := testutil.CreateTestResource("movie.mp4", video.MediaTypeVideo)

	f.videos.On("Create", mock.Anything, mock.AnythingOfType("*video.Video")).
		Return(created, nil)
	f.media.On("StoreAudioVideo", mock.Anything, mock.AnythingOfType("video.ID"), mock.AnythingOfType("video.Resource")).
		Return(video.NewAudioVideoMedia("sum", "movie.mp4", "loc"), nil)

	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)
	require.NoError(t, form.WriteField("title", "System Design Interviews"))
	require.NoError(t, form.WriteField("description", "A course about system design"))
	require.NoError(t, form.WriteField("year_launched", "2022"))
	require.NoError(t, form.WriteField("duration", "120.5"))
	require.NoError(t, form.WriteField("published", "true"))
	require.NoError(t, form.WriteField("rating", "L"))
	part, err := form.CreateFormFile("video_file", "movie.mp4")
	require.NoError(t, err)
	_, err = part.Write(resource.Content)
	require.NoError(t, err)
	require.NoError(t, form.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/videos/", &buf)
	req.Header.Set("Content-Type", form.FormDataContentType())
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	f.media.AssertNumberOfCalls(t, "StoreAudioVideo", 1)
}

func TestCreateVideo_ValidationErrorListsEveryField(t *testing.T) {
	f := newRouterFixture()

	w := f.do(t, http.MethodPost, "/api/v1/videos/", map[string]any{})

	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	var body handler.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Could not create Aggregate Video", body.Message)
	assert.Len(t, body.Errors, 5)
	f.videos.AssertNotCalled(t, "Create")
}
