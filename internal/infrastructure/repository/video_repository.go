package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/kinotek/catalog/internal/domain/video"
	apperrors "github.com/kinotek/catalog/pkg/errors"
	"github.com/kinotek/catalog/pkg/pagination"
)

// VideoRepository implements video.Gateway on GORM.
type VideoRepository struct {
	db *gorm.DB
}

// NewVideoRepository creates a video repository.
func NewVideoRepository(db *gorm.DB) *VideoRepository {
	return &VideoRepository{db: db}
}

// Create persists a new video and its reference joins in one transaction.
func (r *VideoRepository) Create(ctx context.Context, v *video.Video) (*video.Video, error) {
	if err := r.db.WithContext(ctx).Create(videoToModel(v)).Error; err != nil {
		return nil, fmt.Errorf("failed to create video: %w", err)
	}
	return v, nil
}

// Update replaces a video row and rewrites its reference joins.
func (r *VideoRepository) Update(ctx context.Context, v *video.Video) (*video.Video, error) {
	model := videoToModel(v)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("video_id = ?", model.ID).Delete(&VideoCategoryModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("video_id = ?", model.ID).Delete(&VideoGenreModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("video_id = ?", model.ID).Delete(&VideoCastMemberModel{}).Error; err != nil {
			return err
		}
		return tx.Save(model).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update video: %w", err)
	}
	return v, nil
}

// DeleteByID removes a video row. Absent rows are a no-op; joins cascade.
func (r *VideoRepository) DeleteByID(ctx context.Context, id video.ID) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("video_id = ?", id.String()).Delete(&VideoCategoryModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("video_id = ?", id.String()).Delete(&VideoGenreModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("video_id = ?", id.String()).Delete(&VideoCastMemberModel{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id.String()).Delete(&VideoModel{}).Error
	})
	if err != nil {
		return fmt.Errorf("failed to delete video: %w", err)
	}
	return nil
}

// FindByID retrieves a video or a not-found application error.
func (r *VideoRepository) FindByID(ctx context.Context, id video.ID) (*video.Video, error) {
	var model VideoModel
	err := r.preloaded(r.db.WithContext(ctx)).First(&model, "id = ?", id.String()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.AggregateNotFound("Video", id.String())
		}
		return nil, fmt.Errorf("failed to find video: %w", err)
	}
	return videoToAggregate(&model), nil
}

// FindAll returns a page of videos matching the search query over titles.
func (r *VideoRepository) FindAll(ctx context.Context, query pagination.SearchQuery) (pagination.Page[*video.Video], error) {
	base := applyTerms(r.db.WithContext(ctx).Model(&VideoModel{}), query.Terms, "title")

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return pagination.Page[*video.Video]{}, fmt.Errorf("failed to count videos: %w", err)
	}

	var models []VideoModel
	q := r.preloaded(applyPaging(applyOrder(base, query, []string{"title", "created_at", "updated_at"}), query))
	if err := q.Find(&models).Error; err != nil {
		return pagination.Page[*video.Video]{}, fmt.Errorf("failed to list videos: %w", err)
	}

	items := make([]*video.Video, len(models))
	for i := range models {
		items[i] = videoToAggregate(&models[i])
	}
	return pagination.NewPage(query.Page, query.PerPage, total, items), nil
}

// ExistsByIDs returns the subset of the requested IDs that have rows, in the
// request's iteration order.
func (r *VideoRepository) ExistsByIDs(ctx context.Context, ids []video.ID) ([]video.ID, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	requested := make([]string, len(ids))
	for i, id := range ids {
		requested[i] = id.String()
	}

	var found []string
	err := r.db.WithContext(ctx).
		Model(&VideoModel{}).
		Where("id IN ?", requested).
		Pluck("id", &found).Error
	if err != nil {
		return nil, fmt.Errorf("failed to check video ids: %w", err)
	}

	existing := existingSubset(requested, found)
	out := make([]video.ID, len(existing))
	for i, id := range existing {
		out[i] = video.IDFrom(id)
	}
	return out, nil
}

func (r *VideoRepository) preloaded(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Categories", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		Preload("Genres", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		Preload("CastMembers", func(db *gorm.DB) *gorm.DB { return db.Order("position") })
}
