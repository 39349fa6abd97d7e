package category

import (
	"context"

	"github.com/kinotek/catalog/pkg/pagination"
)

// Gateway is the persistence contract for categories. FindByID returns a
// not-found application error when no record backs the ID; DeleteByID is a
// no-op for absent records; ExistsByIDs returns the subset of the requested
// IDs that have backing records.
type Gateway interface {
	Create(ctx context.Context, category *Category) (*Category, error)
	Update(ctx context.Context, category *Category) (*Category, error)
	DeleteByID(ctx context.Context, id ID) error
	FindByID(ctx context.Context, id ID) (*Category, error)
	FindAll(ctx context.Context, query pagination.SearchQuery) (pagination.Page[*Category], error)
	ExistsByIDs(ctx context.Context, ids []ID) ([]ID, error)
}
