package video_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kinotek/catalog/internal/domain/category"
	"github.com/kinotek/catalog/internal/domain/genre"
	"github.com/kinotek/catalog/internal/domain/validation"
	"github.com/kinotek/catalog/internal/domain/video"
)

func year(y int) *int { return &y }

func newValidVideo() *video.Video {
	return video.NewVideo(
		"System Design Interviews",
		"A course about system design",
		year(2022),
		120.5,
		false,
		true,
		video.RatingL,
		nil,
		nil,
		nil,
	)
}

func TestRatingOf(t *testing.T) {
	for _, code := range []string{"ER", "L", "10", "12", "14", "16", "18"} {
		rating, ok := video.RatingOf(code)
		assert.True(t, ok, code)
		assert.Equal(t, code, rating.String())
	}

	_, ok := video.RatingOf("PG-13")
	assert.False(t, ok)

	_, ok = video.RatingOf("")
	assert.False(t, ok)
}

func TestNewVideo_CollapsesDuplicateReferences(t *testing.T) {
	c := category.NewID()
	g1, g2 := genre.NewID(), genre.NewID()

	v := video.NewVideo("Title", "Description", year(2022), 60, true, true, video.RatingAge12,
		[]category.ID{c, c},
		[]genre.ID{g1, g2, g1},
		nil,
	)

	assert.Equal(t, []category.ID{c}, v.Categories)
	assert.Equal(t, []genre.ID{g1, g2}, v.Genres)
	assert.Empty(t, v.CastMembers)
}

func TestVideo_ValidateValid(t *testing.T) {
	n := validation.NewNotification()
	newValidVideo().Validate(n)
	assert.Empty(t, n.Errors())
}

func TestVideo_ValidateTitle(t *testing.T) {
	cases := []struct {
		name     string
		title    string
		expected string
	}{
		{"null title", "", "'title' should not be null"},
		{"blank title", "  ", "'title' should not be empty"},
		{"too long", strings.Repeat("a", 256), "'title' must be between 1 and 255 characters"},
		{"too long multibyte", strings.Repeat("é", 256), "'title' must be between 1 and 255 characters"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			v := newValidVideo()
			v.Title = tc.title
			n := validation.NewNotification()

			v.Validate(n)

			require.Len(t, n.Errors(), 1)
			assert.Equal(t, tc.expected, n.Errors()[0].Message)
		})
	}
}

func TestVideo_ValidateDescription(t *testing.T) {
	v := newValidVideo()
	v.Description = ""
	n := validation.NewNotification()
	v.Validate(n)
	require.Len(t, n.Errors(), 1)
	assert.Equal(t, "'description' should not be empty", n.Errors()[0].Message)

	v = newValidVideo()
	v.Description = strings.Repeat("a", 4001)
	n = validation.NewNotification()
	v.Validate(n)
	require.Len(t, n.Errors(), 1)
	assert.Equal(t, "'description' must be between 1 and 4000 characters", n.Errors()[0].Message)
}

func TestVideo_ValidateCollectsEveryFieldError(t *testing.T) {
	v := video.NewVideo("", "", nil, 0, false, false, video.Rating(""), nil, nil, nil)
	n := validation.NewNotification()

	v.Validate(n)

	require.Len(t, n.Errors(), 5)
	assert.Equal(t, "'title' should not be null", n.Errors()[0].Message)
	assert.Equal(t, "'description' should not be empty", n.Errors()[1].Message)
	assert.Equal(t, "'launchedAt' should not be null", n.Errors()[2].Message)
	assert.Equal(t, "'rating' should not be null", n.Errors()[3].Message)
	assert.Equal(t, "'duration' must be greater than zero", n.Errors()[4].Message)
}

func TestVideo_UpdateKeepsMedia(t *testing.T) {
	v := newValidVideo()
	media := video.NewAudioVideoMedia("abc", "movie.mp4", "raw/movie.mp4")
	v.SetVideo(&media)

	v.Update("New Title", "New description", year(2023), 90, true, false, video.RatingAge16, nil, nil, nil)

	assert.Equal(t, "New Title", v.Title)
	assert.Equal(t, video.RatingAge16, v.Rating)
	require.NotNil(t, v.Video)
	assert.True(t, v.Video.Equals(media))
}

func TestVideo_SettersBumpUpdatedAt(t *testing.T) {
	v := newValidVideo()
	created := v.UpdatedAt

	banner := video.NewImageMedia("sum", "banner.png", "id/banner/banner.png")
	v.SetBanner(&banner)

	require.NotNil(t, v.Banner)
	assert.False(t, v.UpdatedAt.Before(created))
}

func TestAudioVideoMedia_NewStartsPending(t *testing.T) {
	media := video.NewAudioVideoMedia("abc", "movie.mp4", "raw/movie.mp4")

	assert.Equal(t, video.MediaStatusPending, media.Status)
	assert.Empty(t, media.EncodedLocation)
}

func TestAudioVideoMedia_EqualsByChecksumAndRawLocation(t *testing.T) {
	a := video.NewAudioVideoMedia("abc", "movie.mp4", "raw/movie.mp4")
	b := video.AudioVideoMediaWith("abc", "other.mp4", "raw/movie.mp4", "enc/movie.mp4", video.MediaStatusCompleted)
	c := video.NewAudioVideoMedia("abc", "movie.mp4", "raw/elsewhere.mp4")

	assert.True(t, a.Equals(b))
	assert.False(t, a.Equals(c))
}

func TestImageMedia_EqualsByChecksumAndLocation(t *testing.T) {
	a := video.NewImageMedia("abc", "banner.png", "id/banner/banner.png")
	b := video.NewImageMedia("abc", "other.png", "id/banner/banner.png")
	c := video.NewImageMedia("def", "banner.png", "id/banner/banner.png")

	assert.True(t, a.Equals(b))
	assert.False(t, a.Equals(c))
}
