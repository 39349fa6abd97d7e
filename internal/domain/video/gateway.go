package video

import (
	"context"

	"github.com/kinotek/catalog/pkg/pagination"
)

// Gateway is the persistence contract for videos.
type Gateway interface {
	Create(ctx context.Context, video *Video) (*Video, error)
	Update(ctx context.Context, video *Video) (*Video, error)
	DeleteByID(ctx context.Context, id ID) error
	FindByID(ctx context.Context, id ID) (*Video, error)
	FindAll(ctx context.Context, query pagination.SearchQuery) (pagination.Page[*Video], error)
	ExistsByIDs(ctx context.Context, ids []ID) ([]ID, error)
}

// MediaResourceGateway stores and removes the binary assets attached to a
// video. All assets for one video share an ID-scoped location so that
// ClearResources can roll back every stored asset in one call.
type MediaResourceGateway interface {
	StoreAudioVideo(ctx context.Context, id ID, resource Resource) (AudioVideoMedia, error)
	StoreImage(ctx context.Context, id ID, resource Resource) (ImageMedia, error)
	ClearResources(ctx context.Context, id ID) error
}
