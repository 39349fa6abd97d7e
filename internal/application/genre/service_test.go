package genre_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	appgenre "github.com/kinotek/catalog/internal/application/genre"
	"github.com/kinotek/catalog/internal/domain/category"
	"github.com/kinotek/catalog/internal/domain/genre"
	"github.com/kinotek/catalog/internal/domain/validation"
	apperrors "github.com/kinotek/catalog/pkg/errors"
	"github.com/kinotek/catalog/pkg/events"
	"github.com/kinotek/catalog/pkg/logger"
	"github.com/kinotek/catalog/test/mocks"
	"github.com/kinotek/catalog/test/testutil"
)

type GenreServiceTestSuite struct {
	suite.Suite

	ctx        context.Context
	gateway    *mocks.MockGenreGateway
	categories *mocks.MockCategoryGateway
	service    *appgenre.Service
}

func (suite *GenreServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.gateway = new(mocks.MockGenreGateway)
	suite.categories = new(mocks.MockCategoryGateway)
	suite.service = appgenre.NewService(
		suite.gateway,
		suite.categories,
		events.NewInMemoryEventBus(logger.NewNoop()),
		logger.NewNoop(),
	)
}

func (suite *GenreServiceTestSuite) TearDownTest() {
	suite.gateway.AssertExpectations(suite.T())
	suite.categories.AssertExpectations(suite.T())
}

func (suite *GenreServiceTestSuite) TestCreate_Success() {
	categoryID := category.NewID()
	created := testutil.CreateTestGenre("Action", categoryID)

	suite.categories.On("ExistsByIDs", suite.ctx, []category.ID{categoryID}).
		Return([]category.ID{categoryID}, nil)
	suite.gateway.On("Create", suite.ctx, mock.AnythingOfType("*genre.Genre")).
		Return(created, nil)

	out, err := suite.service.Create(suite.ctx, appgenre.CreateGenreCommand{
		Name:       "Action",
		Active:     true,
		Categories: []string{categoryID.String()},
	})

	suite.Require().NoError(err)
	suite.Equal(created.ID.String(), out.ID)
}

func (suite *GenreServiceTestSuite) TestCreate_WithoutCategoriesSkipsExistenceCheck() {
	created := testutil.CreateTestGenre("Action")
	suite.gateway.On("Create", suite.ctx, mock.AnythingOfType("*genre.Genre")).
		Return(created, nil)

	_, err := suite.service.Create(suite.ctx, appgenre.CreateGenreCommand{
		Name:   "Action",
		Active: true,
	})

	suite.Require().NoError(err)
	suite.categories.AssertNotCalled(suite.T(), "ExistsByIDs")
}

func (suite *GenreServiceTestSuite) TestCreate_MissingCategoriesReportedBeforeFieldErrors() {
	suite.categories.On("ExistsByIDs", suite.ctx, []category.ID{"123", "456", "789"}).
		Return([]category.ID{"123"}, nil)

	_, err := suite.service.Create(suite.ctx, appgenre.CreateGenreCommand{
		Name:       "",
		Active:     true,
		Categories: []string{"123", "456", "789"},
	})

	var domainErr *validation.DomainError
	suite.Require().ErrorAs(err, &domainErr)
	suite.Equal("Could not create Aggregate Genre", domainErr.Message())
	suite.Require().Len(domainErr.Errors(), 2)
	suite.Equal("Some categories could not be found: 456, 789", domainErr.Errors()[0].Message)
	suite.Equal("'name' should not be null", domainErr.Errors()[1].Message)
	suite.gateway.AssertNotCalled(suite.T(), "Create")
}

func (suite *GenreServiceTestSuite) TestCreate_ExistenceGatewayFailure() {
	boom := errors.New("connection refused")
	suite.categories.On("ExistsByIDs", suite.ctx, []category.ID{"123"}).
		Return(nil, boom)

	_, err := suite.service.Create(suite.ctx, appgenre.CreateGenreCommand{
		Name:       "Action",
		Active:     true,
		Categories: []string{"123"},
	})

	suite.ErrorIs(err, boom)
	suite.gateway.AssertNotCalled(suite.T(), "Create")
}

func (suite *GenreServiceTestSuite) TestCreate_DuplicateCategoriesCheckedOnce() {
	categoryID := category.NewID()
	created := testutil.CreateTestGenre("Action", categoryID)

	suite.categories.On("ExistsByIDs", suite.ctx, []category.ID{categoryID}).
		Return([]category.ID{categoryID}, nil)
	suite.gateway.On("Create", suite.ctx, mock.AnythingOfType("*genre.Genre")).
		Return(created, nil)

	_, err := suite.service.Create(suite.ctx, appgenre.CreateGenreCommand{
		Name:       "Action",
		Active:     true,
		Categories: []string{categoryID.String(), categoryID.String()},
	})

	suite.Require().NoError(err)
}

func (suite *GenreServiceTestSuite) TestUpdate_Success() {
	existing := testutil.CreateTestGenre("Action")
	categoryID := category.NewID()

	suite.gateway.On("FindByID", suite.ctx, existing.ID).Return(existing, nil)
	suite.categories.On("ExistsByIDs", suite.ctx, []category.ID{categoryID}).
		Return([]category.ID{categoryID}, nil)
	suite.gateway.On("Update", suite.ctx, mock.AnythingOfType("*genre.Genre")).
		Return(existing, nil)

	out, err := suite.service.Update(suite.ctx, appgenre.UpdateGenreCommand{
		ID:         existing.ID.String(),
		Name:       "Adventure",
		Active:     true,
		Categories: []string{categoryID.String()},
	})

	suite.Require().NoError(err)
	suite.Equal("Adventure", out.Name)
	suite.Equal([]string{categoryID.String()}, out.Categories)
}

func (suite *GenreServiceTestSuite) TestUpdate_NotFound() {
	suite.gateway.On("FindByID", suite.ctx, genre.IDFrom("missing")).
		Return(nil, apperrors.AggregateNotFound("Genre", "missing"))

	_, err := suite.service.Update(suite.ctx, appgenre.UpdateGenreCommand{
		ID:   "missing",
		Name: "Action",
	})

	suite.True(apperrors.IsNotFound(err))
	suite.categories.AssertNotCalled(suite.T(), "ExistsByIDs")
}

func (suite *GenreServiceTestSuite) TestDelete() {
	suite.gateway.On("DeleteByID", suite.ctx, genre.IDFrom("123")).Return(nil)

	suite.NoError(suite.service.Delete(suite.ctx, "123"))
}

func TestGenreServiceTestSuite(t *testing.T) {
	suite.Run(t, new(GenreServiceTestSuite))
}
