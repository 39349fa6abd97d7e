// Package category holds the Category aggregate: a named grouping that videos
// and genres reference by ID.
package category

import (
	"time"

	"github.com/google/uuid"

	"github.com/kinotek/catalog/internal/domain/validation"
)

// ID identifies a Category. Equality is by string value.
type ID string

// NewID generates a unique category ID.
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

// Category is the aggregate root for a catalog category.
type Category struct {
	ID          ID
	Name        string
	Description string
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time
}

// NewCategory creates a category. An inactive category starts with DeletedAt
// already set.
func NewCategory(name, description string, active bool) *Category {
	now := time.Now().UTC()
	var deletedAt *time.Time
	if !active {
		deletedAt = &now
	}
	return &Category{
		ID:          NewID(),
		Name:        name,
		Description: description,
		Active:      active,
		CreatedAt:   now,
		UpdatedAt:   now,
		DeletedAt:   deletedAt,
	}
}

// With restores a category from persisted state.
func With(id ID, name, description string, active bool, createdAt, updatedAt time.Time, deletedAt *time.Time) *Category {
	return &Category{
		ID:          id,
		Name:        name,
		Description: description,
		Active:      active,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
		DeletedAt:   deletedAt,
	}
}

// Validate runs the category rule set against the given handler.
func (c *Category) Validate(handler validation.Handler) {
	newValidator(c, handler).Validate()
}

// Activate marks the category active and clears DeletedAt unconditionally.
func (c *Category) Activate() *Category {
	c.Active = true
	c.DeletedAt = nil
	c.UpdatedAt = time.Now().UTC()
	return c
}

// Deactivate marks the category inactive. DeletedAt is set only on the first
// call; repeated calls still refresh UpdatedAt.
func (c *Category) Deactivate() *Category {
	if c.DeletedAt == nil {
		now := time.Now().UTC()
		c.DeletedAt = &now
	}
	c.Active = false
	c.UpdatedAt = time.Now().UTC()
	return c
}

// Update replaces the category's mutable fields and bumps UpdatedAt.
func (c *Category) Update(name, description string, active bool) *Category {
	if active {
		c.Activate()
	} else {
		c.Deactivate()
	}
	c.Name = name
	c.Description = description
	c.UpdatedAt = time.Now().UTC()
	return c
}
