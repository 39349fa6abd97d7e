package video

import (
	"time"

	"github.com/kinotek/catalog/internal/domain/video"
)

// CreateVideoCommand carries the already-deserialized parameters for creating
// a video, including up to five optional binary resources.
type CreateVideoCommand struct {
	Title       string
	Description string
	LaunchedAt  *int
	Duration    float64
	Opened      bool
	Published   bool
	Rating      string
	Categories  []string
	Genres      []string
	CastMembers []string

	Video         *video.Resource
	Trailer       *video.Resource
	Banner        *video.Resource
	Thumbnail     *video.Resource
	ThumbnailHalf *video.Resource
}

// UpdateVideoCommand carries the parameters for updating a video. Resources
// present replace the stored asset in the same slot.
type UpdateVideoCommand struct {
	ID          string
	Title       string
	Description string
	LaunchedAt  *int
	Duration    float64
	Opened      bool
	Published   bool
	Rating      string
	Categories  []string
	Genres      []string
	CastMembers []string

	Video         *video.Resource
	Trailer       *video.Resource
	Banner        *video.Resource
	Thumbnail     *video.Resource
	ThumbnailHalf *video.Resource
}

// CreateVideoOutput is the projection returned on successful creation.
type CreateVideoOutput struct {
	ID string
}

// AudioVideoMediaOutput projects an audio-video asset descriptor.
type AudioVideoMediaOutput struct {
	Checksum        string
	Name            string
	RawLocation     string
	EncodedLocation string
	Status          string
}

// ImageMediaOutput projects an image asset descriptor.
type ImageMediaOutput struct {
	Checksum string
	Name     string
	Location string
}

// VideoOutput is the full projection of a video aggregate.
type VideoOutput struct {
	ID          string
	Title       string
	Description string
	LaunchedAt  *int
	Duration    float64
	Opened      bool
	Published   bool
	Rating      string
	Categories  []string
	Genres      []string
	CastMembers []string

	Video         *AudioVideoMediaOutput
	Trailer       *AudioVideoMediaOutput
	Banner        *ImageMediaOutput
	Thumbnail     *ImageMediaOutput
	ThumbnailHalf *ImageMediaOutput

	CreatedAt time.Time
	UpdatedAt time.Time
}

// VideoOutputFrom projects an aggregate.
func VideoOutputFrom(v *video.Video) VideoOutput {
	return VideoOutput{
		ID:            v.ID.String(),
		Title:         v.Title,
		Description:   v.Description,
		LaunchedAt:    v.LaunchedAt,
		Duration:      v.Duration,
		Opened:        v.Opened,
		Published:     v.Published,
		Rating:        v.Rating.String(),
		Categories:    idStrings(v.Categories),
		Genres:        idStrings(v.Genres),
		CastMembers:   idStrings(v.CastMembers),
		Video:         audioVideoOutput(v.Video),
		Trailer:       audioVideoOutput(v.Trailer),
		Banner:        imageOutput(v.Banner),
		Thumbnail:     imageOutput(v.Thumbnail),
		ThumbnailHalf: imageOutput(v.ThumbnailHalf),
		CreatedAt:     v.CreatedAt,
		UpdatedAt:     v.UpdatedAt,
	}
}

func idStrings[T ~string](ids []T) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = string(id)
	}
	return out
}

func audioVideoOutput(m *video.AudioVideoMedia) *AudioVideoMediaOutput {
	if m == nil {
		return nil
	}
	return &AudioVideoMediaOutput{
		Checksum:        m.Checksum,
		Name:            m.Name,
		RawLocation:     m.RawLocation,
		EncodedLocation: m.EncodedLocation,
		Status:          string(m.Status),
	}
}

func imageOutput(m *video.ImageMedia) *ImageMediaOutput {
	if m == nil {
		return nil
	}
	return &ImageMediaOutput{
		Checksum: m.Checksum,
		Name:     m.Name,
		Location: m.Location,
	}
}
