package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/kinotek/catalog/internal/domain/category"
	apperrors "github.com/kinotek/catalog/pkg/errors"
	"github.com/kinotek/catalog/pkg/pagination"
)

// CategoryRepository implements category.Gateway on GORM.
type CategoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a category repository.
func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

// Create persists a new category.
func (r *CategoryRepository) Create(ctx context.Context, c *category.Category) (*category.Category, error) {
	if err := r.db.WithContext(ctx).Create(categoryToModel(c)).Error; err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}
	return c, nil
}

// Update replaces a category row.
func (r *CategoryRepository) Update(ctx context.Context, c *category.Category) (*category.Category, error) {
	if err := r.db.WithContext(ctx).Save(categoryToModel(c)).Error; err != nil {
		return nil, fmt.Errorf("failed to update category: %w", err)
	}
	return c, nil
}

// DeleteByID removes a category row. Absent rows are a no-op.
func (r *CategoryRepository) DeleteByID(ctx context.Context, id category.ID) error {
	if err := r.db.WithContext(ctx).Where("id = ?", id.String()).Delete(&CategoryModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}
	return nil
}

// FindByID retrieves a category or a not-found application error.
func (r *CategoryRepository) FindByID(ctx context.Context, id category.ID) (*category.Category, error) {
	var model CategoryModel
	err := r.db.WithContext(ctx).First(&model, "id = ?", id.String()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.AggregateNotFound("Category", id.String())
		}
		return nil, fmt.Errorf("failed to find category: %w", err)
	}
	return categoryToAggregate(&model), nil
}

// FindAll returns a page of categories matching the search query.
func (r *CategoryRepository) FindAll(ctx context.Context, query pagination.SearchQuery) (pagination.Page[*category.Category], error) {
	base := applyTerms(r.db.WithContext(ctx).Model(&CategoryModel{}), query.Terms, "name")

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return pagination.Page[*category.Category]{}, fmt.Errorf("failed to count categories: %w", err)
	}

	var models []CategoryModel
	q := applyPaging(applyOrder(base, query, []string{"name", "created_at", "updated_at"}), query)
	if err := q.Find(&models).Error; err != nil {
		return pagination.Page[*category.Category]{}, fmt.Errorf("failed to list categories: %w", err)
	}

	items := make([]*category.Category, len(models))
	for i := range models {
		items[i] = categoryToAggregate(&models[i])
	}
	return pagination.NewPage(query.Page, query.PerPage, total, items), nil
}

// ExistsByIDs returns the subset of the requested IDs that have rows, in the
// request's iteration order.
func (r *CategoryRepository) ExistsByIDs(ctx context.Context, ids []category.ID) ([]category.ID, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	requested := make([]string, len(ids))
	for i, id := range ids {
		requested[i] = id.String()
	}

	var found []string
	err := r.db.WithContext(ctx).
		Model(&CategoryModel{}).
		Where("id IN ?", requested).
		Pluck("id", &found).Error
	if err != nil {
		return nil, fmt.Errorf("failed to check category ids: %w", err)
	}

	existing := existingSubset(requested, found)
	out := make([]category.ID, len(existing))
	for i, id := range existing {
		out[i] = category.IDFrom(id)
	}
	return out, nil
}
