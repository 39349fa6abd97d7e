// Package genre holds the Genre aggregate. A genre references the categories
// it belongs to by ID only; the referenced aggregates are never embedded.
package genre

import (
	"time"

	"github.com/google/uuid"

	"github.com/kinotek/catalog/internal/domain/category"
	"github.com/kinotek/catalog/internal/domain/validation"
)

// ID identifies a Genre. Equality is by string value.
type ID string

// NewID generates a unique genre ID.
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

// Genre is the aggregate root for a catalog genre.
type Genre struct {
	ID         ID
	Name       string
	Active     bool
	Categories []category.ID
	CreatedAt  time.Time
	UpdatedAt  time.Time
	DeletedAt  *time.Time
}

// NewGenre creates a genre. Duplicate category IDs collapse, keeping
// first-appearance order.
func NewGenre(name string, active bool, categories []category.ID) *Genre {
	now := time.Now().UTC()
	var deletedAt *time.Time
	if !active {
		deletedAt = &now
	}
	return &Genre{
		ID:         NewID(),
		Name:       name,
		Active:     active,
		Categories: dedupe(categories),
		CreatedAt:  now,
		UpdatedAt:  now,
		DeletedAt:  deletedAt,
	}
}

// With restores a genre from persisted state.
func With(id ID, name string, active bool, categories []category.ID, createdAt, updatedAt time.Time, deletedAt *time.Time) *Genre {
	return &Genre{
		ID:         id,
		Name:       name,
		Active:     active,
		Categories: dedupe(categories),
		CreatedAt:  createdAt,
		UpdatedAt:  updatedAt,
		DeletedAt:  deletedAt,
	}
}

// Validate runs the genre rule set against the given handler.
func (g *Genre) Validate(handler validation.Handler) {
	newValidator(g, handler).Validate()
}

// Activate marks the genre active and clears DeletedAt unconditionally.
func (g *Genre) Activate() *Genre {
	g.Active = true
	g.DeletedAt = nil
	g.UpdatedAt = time.Now().UTC()
	return g
}

// Deactivate marks the genre inactive. DeletedAt is set only on the first
// call; repeated calls still refresh UpdatedAt.
func (g *Genre) Deactivate() *Genre {
	if g.DeletedAt == nil {
		now := time.Now().UTC()
		g.DeletedAt = &now
	}
	g.Active = false
	g.UpdatedAt = time.Now().UTC()
	return g
}

// Update replaces the genre's mutable fields and bumps UpdatedAt. Duplicate
// category IDs collapse; first-appearance order is kept.
func (g *Genre) Update(name string, active bool, categories []category.ID) *Genre {
	if active {
		g.Activate()
	} else {
		g.Deactivate()
	}
	g.Name = name
	g.Categories = dedupe(categories)
	g.UpdatedAt = time.Now().UTC()
	return g
}

// AddCategory appends a category reference if not already present.
func (g *Genre) AddCategory(id category.ID) *Genre {
	for _, existing := range g.Categories {
		if existing == id {
			return g
		}
	}
	g.Categories = append(g.Categories, id)
	g.UpdatedAt = time.Now().UTC()
	return g
}

// RemoveCategory drops a category reference if present.
func (g *Genre) RemoveCategory(id category.ID) *Genre {
	for i, existing := range g.Categories {
		if existing == id {
			g.Categories = append(g.Categories[:i], g.Categories[i+1:]...)
			g.UpdatedAt = time.Now().UTC()
			return g
		}
	}
	return g
}

// dedupe collapses duplicates while preserving first-appearance order.
func dedupe(ids []category.ID) []category.ID {
	if len(ids) == 0 {
		return nil
	}
	seen := make(map[category.ID]struct{}, len(ids))
	out := make([]category.ID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
