package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/kinotek/catalog/internal/domain/genre"
	apperrors "github.com/kinotek/catalog/pkg/errors"
	"github.com/kinotek/catalog/pkg/pagination"
)

// GenreRepository implements genre.Gateway on GORM.
type GenreRepository struct {
	db *gorm.DB
}

// NewGenreRepository creates a genre repository.
func NewGenreRepository(db *gorm.DB) *GenreRepository {
	return &GenreRepository{db: db}
}

// Create persists a new genre and its category references.
func (r *GenreRepository) Create(ctx context.Context, g *genre.Genre) (*genre.Genre, error) {
	if err := r.db.WithContext(ctx).Create(genreToModel(g)).Error; err != nil {
		return nil, fmt.Errorf("failed to create genre: %w", err)
	}
	return g, nil
}

// Update replaces a genre row and rewrites its category references.
func (r *GenreRepository) Update(ctx context.Context, g *genre.Genre) (*genre.Genre, error) {
	model := genreToModel(g)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("genre_id = ?", model.ID).Delete(&GenreCategoryModel{}).Error; err != nil {
			return err
		}
		return tx.Save(model).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update genre: %w", err)
	}
	return g, nil
}

// DeleteByID removes a genre row. Absent rows are a no-op; references cascade.
func (r *GenreRepository) DeleteByID(ctx context.Context, id genre.ID) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("genre_id = ?", id.String()).Delete(&GenreCategoryModel{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id.String()).Delete(&GenreModel{}).Error
	})
	if err != nil {
		return fmt.Errorf("failed to delete genre: %w", err)
	}
	return nil
}

// FindByID retrieves a genre or a not-found application error.
func (r *GenreRepository) FindByID(ctx context.Context, id genre.ID) (*genre.Genre, error) {
	var model GenreModel
	err := r.db.WithContext(ctx).
		Preload("Categories", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		First(&model, "id = ?", id.String()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.AggregateNotFound("Genre", id.String())
		}
		return nil, fmt.Errorf("failed to find genre: %w", err)
	}
	return genreToAggregate(&model), nil
}

// FindAll returns a page of genres matching the search query.
func (r *GenreRepository) FindAll(ctx context.Context, query pagination.SearchQuery) (pagination.Page[*genre.Genre], error) {
	base := applyTerms(r.db.WithContext(ctx).Model(&GenreModel{}), query.Terms, "name")

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return pagination.Page[*genre.Genre]{}, fmt.Errorf("failed to count genres: %w", err)
	}

	var models []GenreModel
	q := applyPaging(applyOrder(base, query, []string{"name", "created_at", "updated_at"}), query).
		Preload("Categories", func(db *gorm.DB) *gorm.DB { return db.Order("position") })
	if err := q.Find(&models).Error; err != nil {
		return pagination.Page[*genre.Genre]{}, fmt.Errorf("failed to list genres: %w", err)
	}

	items := make([]*genre.Genre, len(models))
	for i := range models {
		items[i] = genreToAggregate(&models[i])
	}
	return pagination.NewPage(query.Page, query.PerPage, total, items), nil
}

// ExistsByIDs returns the subset of the requested IDs that have rows, in the
// request's iteration order.
func (r *GenreRepository) ExistsByIDs(ctx context.Context, ids []genre.ID) ([]genre.ID, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	requested := make([]string, len(ids))
	for i, id := range ids {
		requested[i] = id.String()
	}

	var found []string
	err := r.db.WithContext(ctx).
		Model(&GenreModel{}).
		Where("id IN ?", requested).
		Pluck("id", &found).Error
	if err != nil {
		return nil, fmt.Errorf("failed to check genre ids: %w", err)
	}

	existing := existingSubset(requested, found)
	out := make([]genre.ID, len(existing))
	for i, id := range existing {
		out[i] = genre.IDFrom(id)
	}
	return out, nil
}
