// Package mocks provides testify mocks for the aggregate gateways.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/kinotek/catalog/internal/domain/castmember"
	"github.com/kinotek/catalog/internal/domain/category"
	"github.com/kinotek/catalog/internal/domain/genre"
	"github.com/kinotek/catalog/internal/domain/video"
	"github.com/kinotek/catalog/pkg/pagination"
)

// MockCategoryGateway mocks category.Gateway.
type MockCategoryGateway struct {
	mock.Mock
}

func (m *MockCategoryGateway) Create(ctx context.Context, c *category.Category) (*category.Category, error) {
	args := m.Called(ctx, c)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*category.Category), args.Error(1)
}

func (m *MockCategoryGateway) Update(ctx context.Context, c *category.Category) (*category.Category, error) {
	args := m.Called(ctx, c)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*category.Category), args.Error(1)
}

func (m *MockCategoryGateway) DeleteByID(ctx context.Context, id category.ID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCategoryGateway) FindByID(ctx context.Context, id category.ID) (*category.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*category.Category), args.Error(1)
}

func (m *MockCategoryGateway) FindAll(ctx context.Context, query pagination.SearchQuery) (pagination.Page[*category.Category], error) {
	args := m.Called(ctx, query)
	return args.Get(0).(pagination.Page[*category.Category]), args.Error(1)
}

func (m *MockCategoryGateway) ExistsByIDs(ctx context.Context, ids []category.ID) ([]category.ID, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]category.ID), args.Error(1)
}

// MockGenreGateway mocks genre.Gateway.
type MockGenreGateway struct {
	mock.Mock
}

func (m *MockGenreGateway) Create(ctx context.Context, g *genre.Genre) (*genre.Genre, error) {
	args := m.Called(ctx, g)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*genre.Genre), args.Error(1)
}

func (m *MockGenreGateway) Update(ctx context.Context, g *genre.Genre) (*genre.Genre, error) {
	args := m.Called(ctx, g)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*genre.Genre), args.Error(1)
}

func (m *MockGenreGateway) DeleteByID(ctx context.Context, id genre.ID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockGenreGateway) FindByID(ctx context.Context, id genre.ID) (*genre.Genre, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*genre.Genre), args.Error(1)
}

func (m *MockGenreGateway) FindAll(ctx context.Context, query pagination.SearchQuery) (pagination.Page[*genre.Genre], error) {
	args := m.Called(ctx, query)
	return args.Get(0).(pagination.Page[*genre.Genre]), args.Error(1)
}

func (m *MockGenreGateway) ExistsByIDs(ctx context.Context, ids []genre.ID) ([]genre.ID, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]genre.ID), args.Error(1)
}

// MockCastMemberGateway mocks castmember.Gateway.
type MockCastMemberGateway struct {
	mock.Mock
}

func (m *MockCastMemberGateway) Create(ctx context.Context, c *castmember.CastMember) (*castmember.CastMember, error) {
	args := m.Called(ctx, c)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*castmember.CastMember), args.Error(1)
}

func (m *MockCastMemberGateway) Update(ctx context.Context, c *castmember.CastMember) (*castmember.CastMember, error) {
	args := m.Called(ctx, c)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*castmember.CastMember), args.Error(1)
}

func (m *MockCastMemberGateway) DeleteByID(ctx context.Context, id castmember.ID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCastMemberGateway) FindByID(ctx context.Context, id castmember.ID) (*castmember.CastMember, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*castmember.CastMember), args.Error(1)
}

func (m *MockCastMemberGateway) FindAll(ctx context.Context, query pagination.SearchQuery) (pagination.Page[*castmember.CastMember], error) {
	args := m.Called(ctx, query)
	return args.Get(0).(pagination.Page[*castmember.CastMember]), args.Error(1)
}

func (m *MockCastMemberGateway) ExistsByIDs(ctx context.Context, ids []castmember.ID) ([]castmember.ID, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]castmember.ID), args.Error(1)
}

// MockVideoGateway mocks video.Gateway.
type MockVideoGateway struct {
	mock.Mock
}

func (m *MockVideoGateway) Create(ctx context.Context, v *video.Video) (*video.Video, error) {
	args := m.Called(ctx, v)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*video.Video), args.Error(1)
}

func (m *MockVideoGateway) Update(ctx context.Context, v *video.Video) (*video.Video, error) {
	args := m.Called(ctx, v)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*video.Video), args.Error(1)
}

func (m *MockVideoGateway) DeleteByID(ctx context.Context, id video.ID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockVideoGateway) FindByID(ctx context.Context, id video.ID) (*video.Video, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*video.Video), args.Error(1)
}

func (m *MockVideoGateway) FindAll(ctx context.Context, query pagination.SearchQuery) (pagination.Page[*video.Video], error) {
	args := m.Called(ctx, query)
	return args.Get(0).(pagination.Page[*video.Video]), args.Error(1)
}

func (m *MockVideoGateway) ExistsByIDs(ctx context.Context, ids []video.ID) ([]video.ID, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]video.ID), args.Error(1)
}

// MockMediaResourceGateway mocks video.MediaResourceGateway.
type MockMediaResourceGateway struct {
	mock.Mock
}

func (m *MockMediaResourceGateway) StoreAudioVideo(ctx context.Context, id video.ID, resource video.Resource) (video.AudioVideoMedia, error) {
	args := m.Called(ctx, id, resource)
	return args.Get(0).(video.AudioVideoMedia), args.Error(1)
}

func (m *MockMediaResourceGateway) StoreImage(ctx context.Context, id video.ID, resource video.Resource) (video.ImageMedia, error) {
	args := m.Called(ctx, id, resource)
	return args.Get(0).(video.ImageMedia), args.Error(1)
}

func (m *MockMediaResourceGateway) ClearResources(ctx context.Context, id video.ID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
