package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/kinotek/catalog/internal/domain/castmember"
	apperrors "github.com/kinotek/catalog/pkg/errors"
	"github.com/kinotek/catalog/pkg/pagination"
)

// CastMemberRepository implements castmember.Gateway on GORM.
type CastMemberRepository struct {
	db *gorm.DB
}

// NewCastMemberRepository creates a cast member repository.
func NewCastMemberRepository(db *gorm.DB) *CastMemberRepository {
	return &CastMemberRepository{db: db}
}

// Create persists a new cast member.
func (r *CastMemberRepository) Create(ctx context.Context, m *castmember.CastMember) (*castmember.CastMember, error) {
	if err := r.db.WithContext(ctx).Create(castMemberToModel(m)).Error; err != nil {
		return nil, fmt.Errorf("failed to create cast member: %w", err)
	}
	return m, nil
}

// Update replaces a cast member row.
func (r *CastMemberRepository) Update(ctx context.Context, m *castmember.CastMember) (*castmember.CastMember, error) {
	if err := r.db.WithContext(ctx).Save(castMemberToModel(m)).Error; err != nil {
		return nil, fmt.Errorf("failed to update cast member: %w", err)
	}
	return m, nil
}

// DeleteByID removes a cast member row. Absent rows are a no-op.
func (r *CastMemberRepository) DeleteByID(ctx context.Context, id castmember.ID) error {
	if err := r.db.WithContext(ctx).Where("id = ?", id.String()).Delete(&CastMemberModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete cast member: %w", err)
	}
	return nil
}

// FindByID retrieves a cast member or a not-found application error.
func (r *CastMemberRepository) FindByID(ctx context.Context, id castmember.ID) (*castmember.CastMember, error) {
	var model CastMemberModel
	err := r.db.WithContext(ctx).First(&model, "id = ?", id.String()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.AggregateNotFound("CastMember", id.String())
		}
		return nil, fmt.Errorf("failed to find cast member: %w", err)
	}
	return castMemberToAggregate(&model), nil
}

// FindAll returns a page of cast members matching the search query.
func (r *CastMemberRepository) FindAll(ctx context.Context, query pagination.SearchQuery) (pagination.Page[*castmember.CastMember], error) {
	base := applyTerms(r.db.WithContext(ctx).Model(&CastMemberModel{}), query.Terms, "name")

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return pagination.Page[*castmember.CastMember]{}, fmt.Errorf("failed to count cast members: %w", err)
	}

	var models []CastMemberModel
	q := applyPaging(applyOrder(base, query, []string{"name", "created_at", "updated_at"}), query)
	if err := q.Find(&models).Error; err != nil {
		return pagination.Page[*castmember.CastMember]{}, fmt.Errorf("failed to list cast members: %w", err)
	}

	items := make([]*castmember.CastMember, len(models))
	for i := range models {
		items[i] = castMemberToAggregate(&models[i])
	}
	return pagination.NewPage(query.Page, query.PerPage, total, items), nil
}

// ExistsByIDs returns the subset of the requested IDs that have rows, in the
// request's iteration order.
func (r *CastMemberRepository) ExistsByIDs(ctx context.Context, ids []castmember.ID) ([]castmember.ID, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	requested := make([]string, len(ids))
	for i, id := range ids {
		requested[i] = id.String()
	}

	var found []string
	err := r.db.WithContext(ctx).
		Model(&CastMemberModel{}).
		Where("id IN ?", requested).
		Pluck("id", &found).Error
	if err != nil {
		return nil, fmt.Errorf("failed to check cast member ids: %w", err)
	}

	existing := existingSubset(requested, found)
	out := make([]castmember.ID, len(existing))
	for i, id := range existing {
		out[i] = castmember.IDFrom(id)
	}
	return out, nil
}
