package category

import (
	"time"

	"github.com/kinotek/catalog/internal/domain/category"
)

// CreateCategoryCommand carries the already-deserialized parameters for
// creating a category.
type CreateCategoryCommand struct {
	Name        string
	Description string
	Active      bool
}

// UpdateCategoryCommand carries the parameters for updating a category.
type UpdateCategoryCommand struct {
	ID          string
	Name        string
	Description string
	Active      bool
}

// CreateCategoryOutput is the projection returned on successful creation.
type CreateCategoryOutput struct {
	ID string
}

// CategoryOutput is the full projection of a category aggregate.
type CategoryOutput struct {
	ID          string
	Name        string
	Description string
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time
}

// CategoryOutputFrom projects an aggregate.
func CategoryOutputFrom(c *category.Category) CategoryOutput {
	return CategoryOutput{
		ID:          c.ID.String(),
		Name:        c.Name,
		Description: c.Description,
		Active:      c.Active,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
		DeletedAt:   c.DeletedAt,
	}
}
