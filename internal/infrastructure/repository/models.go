// Package repository implements the aggregate gateways on GORM.
package repository

import (
	"time"

	"github.com/kinotek/catalog/internal/domain/castmember"
	"github.com/kinotek/catalog/internal/domain/category"
	"github.com/kinotek/catalog/internal/domain/genre"
	"github.com/kinotek/catalog/internal/domain/video"
)

// CategoryModel is the database row for a category. DeletedAt is domain
// state (set on deactivation), not a GORM soft-delete marker; deletion is
// physical.
type CategoryModel struct {
	ID          string `gorm:"type:uuid;primaryKey"`
	Name        string `gorm:"size:255;not null;index"`
	Description string `gorm:"type:text"`
	Active      bool   `gorm:"not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time
}

// TableName overrides the table name.
func (CategoryModel) TableName() string { return "categories" }

// GenreModel is the database row for a genre.
type GenreModel struct {
	ID        string `gorm:"type:uuid;primaryKey"`
	Name      string `gorm:"size:255;not null;index"`
	Active    bool   `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time

	Categories []GenreCategoryModel `gorm:"foreignKey:GenreID;constraint:OnDelete:CASCADE"`
}

// TableName overrides the table name.
func (GenreModel) TableName() string { return "genres" }

// GenreCategoryModel joins a genre to a referenced category ID. Position keeps
// the reference set's first-appearance order stable across round trips.
type GenreCategoryModel struct {
	GenreID    string `gorm:"type:uuid;primaryKey"`
	CategoryID string `gorm:"type:uuid;primaryKey"`
	Position   int    `gorm:"not null"`
}

// TableName overrides the table name.
func (GenreCategoryModel) TableName() string { return "genres_categories" }

// CastMemberModel is the database row for a cast member.
type CastMemberModel struct {
	ID        string `gorm:"type:uuid;primaryKey"`
	Name      string `gorm:"size:255;not null;index"`
	Type      string `gorm:"size:20;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName overrides the table name.
func (CastMemberModel) TableName() string { return "cast_members" }

// VideoModel is the database row for a video. The five optional media assets
// are flattened onto the row; absence is a NULL checksum.
type VideoModel struct {
	ID          string `gorm:"type:uuid;primaryKey"`
	Title       string `gorm:"size:255;not null;index"`
	Description string `gorm:"type:text"`
	LaunchedAt  *int
	Duration    float64
	Opened      bool
	Published   bool
	Rating      string `gorm:"size:5"`

	VideoChecksum        *string
	VideoName            *string
	VideoRawLocation     *string
	VideoEncodedLocation *string
	VideoStatus          *string

	TrailerChecksum        *string
	TrailerName            *string
	TrailerRawLocation     *string
	TrailerEncodedLocation *string
	TrailerStatus          *string

	BannerChecksum *string
	BannerName     *string
	BannerLocation *string

	ThumbChecksum *string
	ThumbName     *string
	ThumbLocation *string

	ThumbHalfChecksum *string
	ThumbHalfName     *string
	ThumbHalfLocation *string

	CreatedAt time.Time
	UpdatedAt time.Time

	Categories  []VideoCategoryModel   `gorm:"foreignKey:VideoID;constraint:OnDelete:CASCADE"`
	Genres      []VideoGenreModel      `gorm:"foreignKey:VideoID;constraint:OnDelete:CASCADE"`
	CastMembers []VideoCastMemberModel `gorm:"foreignKey:VideoID;constraint:OnDelete:CASCADE"`
}

// TableName overrides the table name.
func (VideoModel) TableName() string { return "videos" }

// VideoCategoryModel joins a video to a referenced category ID.
type VideoCategoryModel struct {
	VideoID    string `gorm:"type:uuid;primaryKey"`
	CategoryID string `gorm:"type:uuid;primaryKey"`
	Position   int    `gorm:"not null"`
}

// TableName overrides the table name.
func (VideoCategoryModel) TableName() string { return "videos_categories" }

// VideoGenreModel joins a video to a referenced genre ID.
type VideoGenreModel struct {
	VideoID  string `gorm:"type:uuid;primaryKey"`
	GenreID  string `gorm:"type:uuid;primaryKey"`
	Position int    `gorm:"not null"`
}

// TableName overrides the table name.
func (VideoGenreModel) TableName() string { return "videos_genres" }

// VideoCastMemberModel joins a video to a referenced cast member ID.
type VideoCastMemberModel struct {
	VideoID      string `gorm:"type:uuid;primaryKey"`
	CastMemberID string `gorm:"type:uuid;primaryKey"`
	Position     int    `gorm:"not null"`
}

// TableName overrides the table name.
func (VideoCastMemberModel) TableName() string { return "videos_cast_members" }

// Models lists every model for auto-migration.
func Models() []interface{} {
	return []interface{}{
		&CategoryModel{},
		&GenreModel{},
		&GenreCategoryModel{},
		&CastMemberModel{},
		&VideoModel{},
		&VideoCategoryModel{},
		&VideoGenreModel{},
		&VideoCastMemberModel{},
	}
}

func categoryToModel(c *category.Category) *CategoryModel {
	return &CategoryModel{
		ID:          c.ID.String(),
		Name:        c.Name,
		Description: c.Description,
		Active:      c.Active,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
		DeletedAt:   c.DeletedAt,
	}
}

func categoryToAggregate(m *CategoryModel) *category.Category {
	return category.With(
		category.IDFrom(m.ID),
		m.Name,
		m.Description,
		m.Active,
		m.CreatedAt,
		m.UpdatedAt,
		m.DeletedAt,
	)
}

func genreToModel(g *genre.Genre) *GenreModel {
	categories := make([]GenreCategoryModel, len(g.Categories))
	for i, id := range g.Categories {
		categories[i] = GenreCategoryModel{
			GenreID:    g.ID.String(),
			CategoryID: id.String(),
			Position:   i,
		}
	}
	return &GenreModel{
		ID:         g.ID.String(),
		Name:       g.Name,
		Active:     g.Active,
		CreatedAt:  g.CreatedAt,
		UpdatedAt:  g.UpdatedAt,
		DeletedAt:  g.DeletedAt,
		Categories: categories,
	}
}

func genreToAggregate(m *GenreModel) *genre.Genre {
	categories := make([]category.ID, len(m.Categories))
	for i, join := range m.Categories {
		categories[i] = category.IDFrom(join.CategoryID)
	}
	return genre.With(
		genre.IDFrom(m.ID),
		m.Name,
		m.Active,
		categories,
		m.CreatedAt,
		m.UpdatedAt,
		m.DeletedAt,
	)
}

func castMemberToModel(c *castmember.CastMember) *CastMemberModel {
	return &CastMemberModel{
		ID:        c.ID.String(),
		Name:      c.Name,
		Type:      string(c.Type),
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func castMemberToAggregate(m *CastMemberModel) *castmember.CastMember {
	memberType, _ := castmember.TypeOf(m.Type)
	return castmember.With(
		castmember.IDFrom(m.ID),
		m.Name,
		memberType,
		m.CreatedAt,
		m.UpdatedAt,
	)
}

func videoToModel(v *video.Video) *VideoModel {
	m := &VideoModel{
		ID:          v.ID.String(),
		Title:       v.Title,
		Description: v.Description,
		LaunchedAt:  v.LaunchedAt,
		Duration:    v.Duration,
		Opened:      v.Opened,
		Published:   v.Published,
		Rating:      v.Rating.String(),
		CreatedAt:   v.CreatedAt,
		UpdatedAt:   v.UpdatedAt,
	}

	if media := v.Video; media != nil {
		status := string(media.Status)
		m.VideoChecksum = &media.Checksum
		m.VideoName = &media.Name
		m.VideoRawLocation = &media.RawLocation
		m.VideoEncodedLocation = &media.EncodedLocation
		m.VideoStatus = &status
	}
	if media := v.Trailer; media != nil {
		status := string(media.Status)
		m.TrailerChecksum = &media.Checksum
		m.TrailerName = &media.Name
		m.TrailerRawLocation = &media.RawLocation
		m.TrailerEncodedLocation = &media.EncodedLocation
		m.TrailerStatus = &status
	}
	if media := v.Banner; media != nil {
		m.BannerChecksum = &media.Checksum
		m.BannerName = &media.Name
		m.BannerLocation = &media.Location
	}
	if media := v.Thumbnail; media != nil {
		m.ThumbChecksum = &media.Checksum
		m.ThumbName = &media.Name
		m.ThumbLocation = &media.Location
	}
	if media := v.ThumbnailHalf; media != nil {
		m.ThumbHalfChecksum = &media.Checksum
		m.ThumbHalfName = &media.Name
		m.ThumbHalfLocation = &media.Location
	}

	for i, id := range v.Categories {
		m.Categories = append(m.Categories, VideoCategoryModel{
			VideoID:    m.ID,
			CategoryID: id.String(),
			Position:   i,
		})
	}
	for i, id := range v.Genres {
		m.Genres = append(m.Genres, VideoGenreModel{
			VideoID:  m.ID,
			GenreID:  id.String(),
			Position: i,
		})
	}
	for i, id := range v.CastMembers {
		m.CastMembers = append(m.CastMembers, VideoCastMemberModel{
			VideoID:      m.ID,
			CastMemberID: id.String(),
			Position:     i,
		})
	}

	return m
}

func videoToAggregate(m *VideoModel) *video.Video {
	categories := make([]category.ID, len(m.Categories))
	for i, join := range m.Categories {
		categories[i] = category.IDFrom(join.CategoryID)
	}
	genres := make([]genre.ID, len(m.Genres))
	for i, join := range m.Genres {
		genres[i] = genre.IDFrom(join.GenreID)
	}
	members := make([]castmember.ID, len(m.CastMembers))
	for i, join := range m.CastMembers {
		members[i] = castmember.IDFrom(join.CastMemberID)
	}

	var videoMedia, trailer *video.AudioVideoMedia
	if m.VideoChecksum != nil {
		media := video.AudioVideoMediaWith(
			*m.VideoChecksum, deref(m.VideoName), deref(m.VideoRawLocation),
			deref(m.VideoEncodedLocation), video.MediaStatus(deref(m.VideoStatus)),
		)
		videoMedia = &media
	}
	if m.TrailerChecksum != nil {
		media := video.AudioVideoMediaWith(
			*m.TrailerChecksum, deref(m.TrailerName), deref(m.TrailerRawLocation),
			deref(m.TrailerEncodedLocation), video.MediaStatus(deref(m.TrailerStatus)),
		)
		trailer = &media
	}

	var banner, thumbnail, thumbnailHalf *video.ImageMedia
	if m.BannerChecksum != nil {
		media := video.NewImageMedia(*m.BannerChecksum, deref(m.BannerName), deref(m.BannerLocation))
		banner = &media
	}
	if m.ThumbChecksum != nil {
		media := video.NewImageMedia(*m.ThumbChecksum, deref(m.ThumbName), deref(m.ThumbLocation))
		thumbnail = &media
	}
	if m.ThumbHalfChecksum != nil {
		media := video.NewImageMedia(*m.ThumbHalfChecksum, deref(m.ThumbHalfName), deref(m.ThumbHalfLocation))
		thumbnailHalf = &media
	}

	return video.With(
		video.IDFrom(m.ID),
		m.Title,
		m.Description,
		m.LaunchedAt,
		m.Duration,
		m.Opened,
		m.Published,
		video.Rating(m.Rating),
		categories,
		genres,
		members,
		videoMedia,
		trailer,
		banner,
		thumbnail,
		thumbnailHalf,
		m.CreatedAt,
		m.UpdatedAt,
	)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
