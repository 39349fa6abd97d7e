package genre

import (
	"context"

	"github.com/kinotek/catalog/pkg/pagination"
)

// Gateway is the persistence contract for genres. Semantics match the other
// aggregate gateways: not-found FindByID, no-op DeleteByID for absent records,
// ExistsByIDs returning the existing subset.
type Gateway interface {
	Create(ctx context.Context, genre *Genre) (*Genre, error)
	Update(ctx context.Context, genre *Genre) (*Genre, error)
	DeleteByID(ctx context.Context, id ID) error
	FindByID(ctx context.Context, id ID) (*Genre, error)
	FindAll(ctx context.Context, query pagination.SearchQuery) (pagination.Page[*Genre], error)
	ExistsByIDs(ctx context.Context, ids []ID) ([]ID, error)
}
