// Package video holds the Video aggregate and its media value objects. A
// video references categories, genres and cast members by ID only; whether
// those IDs exist is checked by the application layer against the aggregate
// gateways, never enforced structurally here.
package video

import (
	"time"

	"github.com/google/uuid"

	"github.com/kinotek/catalog/internal/domain/castmember"
	"github.com/kinotek/catalog/internal/domain/category"
	"github.com/kinotek/catalog/internal/domain/genre"
	"github.com/kinotek/catalog/internal/domain/validation"
)

// ID identifies a Video. Equality is by string value.
type ID string

// NewID generates a unique video ID.
func NewID() ID {
	return ID(uuid.NewString())
}

// IDFrom wraps an externally supplied identifier.
func IDFrom(value string) ID {
	return ID(value)
}

// String returns the identifier's opaque string value.
func (id ID) String() string {
	return string(id)
}

// Video is the aggregate root for a catalog video.
type Video struct {
	ID          ID
	Title       string
	Description string
	LaunchedAt  *int
	Duration    float64
	Opened      bool
	Published   bool
	Rating      Rating

	Categories  []category.ID
	Genres      []genre.ID
	CastMembers []castmember.ID

	Video         *AudioVideoMedia
	Trailer       *AudioVideoMedia
	Banner        *ImageMedia
	Thumbnail     *ImageMedia
	ThumbnailHalf *ImageMedia

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewVideo creates a video without media attachments. Reference ID slices
// collapse duplicates preserving first-appearance order.
func NewVideo(
	title, description string,
	launchedAt *int,
	duration float64,
	opened, published bool,
	rating Rating,
	categories []category.ID,
	genres []genre.ID,
	members []castmember.ID,
) *Video {
	now := time.Now().UTC()
	return &Video{
		ID:          NewID(),
		Title:       title,
		Description: description,
		LaunchedAt:  launchedAt,
		Duration:    duration,
		Opened:      opened,
		Published:   published,
		Rating:      rating,
		Categories:  DedupeIDs(categories),
		Genres:      DedupeIDs(genres),
		CastMembers: DedupeIDs(members),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// With restores a video from persisted state.
func With(
	id ID,
	title, description string,
	launchedAt *int,
	duration float64,
	opened, published bool,
	rating Rating,
	categories []category.ID,
	genres []genre.ID,
	members []castmember.ID,
	videoMedia, trailer *AudioVideoMedia,
	banner, thumbnail, thumbnailHalf *ImageMedia,
	createdAt, updatedAt time.Time,
) *Video {
	return &Video{
		ID:            id,
		Title:         title,
		Description:   description,
		LaunchedAt:    launchedAt,
		Duration:      duration,
		Opened:        opened,
		Published:     published,
		Rating:        rating,
		Categories:    DedupeIDs(categories),
		Genres:        DedupeIDs(genres),
		CastMembers:   DedupeIDs(members),
		Video:         videoMedia,
		Trailer:       trailer,
		Banner:        banner,
		Thumbnail:     thumbnail,
		ThumbnailHalf: thumbnailHalf,
		CreatedAt:     createdAt,
		UpdatedAt:     updatedAt,
	}
}

// Validate runs the video rule set against the given handler.
func (v *Video) Validate(handler validation.Handler) {
	newValidator(v, handler).Validate()
}

// Update replaces the video's mutable scalar fields and references, keeping
// the current media attachments.
func (v *Video) Update(
	title, description string,
	launchedAt *int,
	duration float64,
	opened, published bool,
	rating Rating,
	categories []category.ID,
	genres []genre.ID,
	members []castmember.ID,
) *Video {
	v.Title = title
	v.Description = description
	v.LaunchedAt = launchedAt
	v.Duration = duration
	v.Opened = opened
	v.Published = published
	v.Rating = rating
	v.Categories = DedupeIDs(categories)
	v.Genres = DedupeIDs(genres)
	v.CastMembers = DedupeIDs(members)
	v.UpdatedAt = time.Now().UTC()
	return v
}

// SetVideo attaches the main audio-video asset.
func (v *Video) SetVideo(media *AudioVideoMedia) *Video {
	v.Video = media
	v.UpdatedAt = time.Now().UTC()
	return v
}

// SetTrailer attaches the trailer asset.
func (v *Video) SetTrailer(media *AudioVideoMedia) *Video {
	v.Trailer = media
	v.UpdatedAt = time.Now().UTC()
	return v
}

// SetBanner attaches the banner image.
func (v *Video) SetBanner(media *ImageMedia) *Video {
	v.Banner = media
	v.UpdatedAt = time.Now().UTC()
	return v
}

// SetThumbnail attaches the thumbnail image.
func (v *Video) SetThumbnail(media *ImageMedia) *Video {
	v.Thumbnail = media
	v.UpdatedAt = time.Now().UTC()
	return v
}

// SetThumbnailHalf attaches the half-size thumbnail image.
func (v *Video) SetThumbnailHalf(media *ImageMedia) *Video {
	v.ThumbnailHalf = media
	v.UpdatedAt = time.Now().UTC()
	return v
}

// DedupeIDs collapses duplicate identifiers preserving first-appearance order.
func DedupeIDs[T comparable](ids []T) []T {
	if len(ids) == 0 {
		return nil
	}
	seen := make(map[T]struct{}, len(ids))
	out := make([]T, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
