package castmember

import (
	"context"

	"github.com/kinotek/catalog/pkg/pagination"
)

// Gateway is the persistence contract for cast members.
type Gateway interface {
	Create(ctx context.Context, member *CastMember) (*CastMember, error)
	Update(ctx context.Context, member *CastMember) (*CastMember, error)
	DeleteByID(ctx context.Context, id ID) error
	FindByID(ctx context.Context, id ID) (*CastMember, error)
	FindAll(ctx context.Context, query pagination.SearchQuery) (pagination.Page[*CastMember], error)
	ExistsByIDs(ctx context.Context, ids []ID) ([]ID, error)
}
