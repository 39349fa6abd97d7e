package category_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	appcategory "github.com/kinotek/catalog/internal/application/category"
	"github.com/kinotek/catalog/internal/domain/category"
	"github.com/kinotek/catalog/internal/domain/validation"
	apperrors "github.com/kinotek/catalog/pkg/errors"
	"github.com/kinotek/catalog/pkg/events"
	"github.com/kinotek/catalog/pkg/logger"
	"github.com/kinotek/catalog/pkg/pagination"
	"github.com/kinotek/catalog/test/mocks"
	"github.com/kinotek/catalog/test/testutil"
)

type CategoryServiceTestSuite struct {
	suite.Suite

	ctx     context.Context
	gateway *mocks.MockCategoryGateway
	service *appcategory.Service
}

func (suite *CategoryServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.gateway = new(mocks.MockCategoryGateway)
	suite.service = appcategory.NewService(
		suite.gateway,
		events.NewInMemoryEventBus(logger.NewNoop()),
		logger.NewNoop(),
	)
}

func (suite *CategoryServiceTestSuite) TearDownTest() {
	suite.gateway.AssertExpectations(suite.T())
}

func (suite *CategoryServiceTestSuite) TestCreate_Success() {
	created := testutil.CreateTestCategory("Movies")
	suite.gateway.On("Create", suite.ctx, mock.AnythingOfType("*category.Category")).
		Return(created, nil)

	out, err := suite.service.Create(suite.ctx, appcategory.CreateCategoryCommand{
		Name:        "Movies",
		Description: "Feature films",
		Active:      true,
	})

	suite.Require().NoError(err)
	suite.Equal(created.ID.String(), out.ID)
}

func (suite *CategoryServiceTestSuite) TestCreate_InvalidNameDoesNotPersist() {
	out, err := suite.service.Create(suite.ctx, appcategory.CreateCategoryCommand{
		Name:   "",
		Active: true,
	})

	suite.Require().Error(err)
	suite.Empty(out.ID)

	var domainErr *validation.DomainError
	suite.Require().ErrorAs(err, &domainErr)
	suite.Equal("Could not create Aggregate Category", domainErr.Message())
	suite.Require().Len(domainErr.Errors(), 1)
	suite.Equal("'name' should not be null", domainErr.Errors()[0].Message)
	suite.gateway.AssertNotCalled(suite.T(), "Create")
}

func (suite *CategoryServiceTestSuite) TestCreate_GatewayError() {
	boom := errors.New("connection refused")
	suite.gateway.On("Create", suite.ctx, mock.AnythingOfType("*category.Category")).
		Return(nil, boom)

	_, err := suite.service.Create(suite.ctx, appcategory.CreateCategoryCommand{
		Name:   "Movies",
		Active: true,
	})

	suite.ErrorIs(err, boom)
}

func (suite *CategoryServiceTestSuite) TestUpdate_Success() {
	existing := testutil.CreateTestCategory("Movies")
	suite.gateway.On("FindByID", suite.ctx, existing.ID).Return(existing, nil)
	suite.gateway.On("Update", suite.ctx, mock.AnythingOfType("*category.Category")).
		Return(existing, nil)

	out, err := suite.service.Update(suite.ctx, appcategory.UpdateCategoryCommand{
		ID:          existing.ID.String(),
		Name:        "Series",
		Description: "TV series",
		Active:      false,
	})

	suite.Require().NoError(err)
	suite.Equal("Series", out.Name)
	suite.False(out.Active)
	suite.NotNil(out.DeletedAt)
}

func (suite *CategoryServiceTestSuite) TestUpdate_NotFound() {
	suite.gateway.On("FindByID", suite.ctx, category.IDFrom("missing")).
		Return(nil, apperrors.AggregateNotFound("Category", "missing"))

	_, err := suite.service.Update(suite.ctx, appcategory.UpdateCategoryCommand{
		ID:   "missing",
		Name: "Series",
	})

	suite.Require().Error(err)
	suite.True(apperrors.IsNotFound(err))
	suite.gateway.AssertNotCalled(suite.T(), "Update")
}

func (suite *CategoryServiceTestSuite) TestUpdate_InvalidName() {
	existing := testutil.CreateTestCategory("Movies")
	suite.gateway.On("FindByID", suite.ctx, existing.ID).Return(existing, nil)

	_, err := suite.service.Update(suite.ctx, appcategory.UpdateCategoryCommand{
		ID:   existing.ID.String(),
		Name: strings.Repeat("a", 256),
	})

	var domainErr *validation.DomainError
	suite.Require().ErrorAs(err, &domainErr)
	suite.Equal("Could not update Aggregate Category", domainErr.Message())
	suite.gateway.AssertNotCalled(suite.T(), "Update")
}

func (suite *CategoryServiceTestSuite) TestGetByID_Success() {
	existing := testutil.CreateTestCategory("Movies")
	suite.gateway.On("FindByID", suite.ctx, existing.ID).Return(existing, nil)

	out, err := suite.service.GetByID(suite.ctx, existing.ID.String())

	suite.Require().NoError(err)
	suite.Equal(existing.ID.String(), out.ID)
	suite.Equal("Movies", out.Name)
}

func (suite *CategoryServiceTestSuite) TestList() {
	items := []*category.Category{
		testutil.CreateTestCategory("Documentaries"),
		testutil.CreateTestCategory("Movies"),
	}
	query := pagination.NewSearchQuery(0, 10, "", "name", "asc")
	suite.gateway.On("FindAll", suite.ctx, query).
		Return(pagination.NewPage(0, 10, 2, items), nil)

	page, err := suite.service.List(suite.ctx, query)

	suite.Require().NoError(err)
	suite.Equal(int64(2), page.Total)
	suite.Require().Len(page.Items, 2)
	suite.Equal("Documentaries", page.Items[0].Name)
}

func (suite *CategoryServiceTestSuite) TestDelete() {
	suite.gateway.On("DeleteByID", suite.ctx, category.IDFrom("123")).Return(nil)

	suite.NoError(suite.service.Delete(suite.ctx, "123"))
}

func TestCategoryServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CategoryServiceTestSuite))
}
