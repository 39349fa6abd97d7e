package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/kinotek/catalog/internal/domain/category"
	"github.com/kinotek/catalog/internal/infrastructure/repository"
	apperrors "github.com/kinotek/catalog/pkg/errors"
	"github.com/kinotek/catalog/pkg/pagination"
	"github.com/kinotek/catalog/test/testutil"
)

type CategoryRepositoryTestSuite struct {
	suite.Suite

	ctx  context.Context
	repo *repository.CategoryRepository
}

func (suite *CategoryRepositoryTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.repo = repository.NewCategoryRepository(testutil.NewSQLiteDB(suite.T()))
}

func (suite *CategoryRepositoryTestSuite) TestCreateAndFindByID() {
	c := testutil.CreateTestCategory("Movies")

	_, err := suite.repo.Create(suite.ctx, c)
	suite.Require().NoError(err)

	found, err := suite.repo.FindByID(suite.ctx, c.ID)
	suite.Require().NoError(err)
	suite.Equal(c.ID, found.ID)
	suite.Equal("Movies", found.Name)
	suite.True(found.Active)
	suite.Nil(found.DeletedAt)
}

func (suite *CategoryRepositoryTestSuite) TestFindByID_NotFound() {
	_, err := suite.repo.FindByID(suite.ctx, category.IDFrom("missing"))

	suite.Require().Error(err)
	suite.True(apperrors.IsNotFound(err))
	suite.Contains(err.Error(), "Category with ID missing was not found")
}

func (suite *CategoryRepositoryTestSuite) TestUpdate() {
	c := testutil.CreateTestCategory("Movies")
	_, err := suite.repo.Create(suite.ctx, c)
	suite.Require().NoError(err)

	c.Update("Series", "TV series", false)
	_, err = suite.repo.Update(suite.ctx, c)
	suite.Require().NoError(err)

	found, err := suite.repo.FindByID(suite.ctx, c.ID)
	suite.Require().NoError(err)
	suite.Equal("Series", found.Name)
	suite.False(found.Active)
	suite.NotNil(found.DeletedAt)
}

func (suite *CategoryRepositoryTestSuite) TestDeleteByID() {
	c := testutil.CreateTestCategory("Movies")
	_, err := suite.repo.Create(suite.ctx, c)
	suite.Require().NoError(err)

	suite.Require().NoError(suite.repo.DeleteByID(suite.ctx, c.ID))

	_, err = suite.repo.FindByID(suite.ctx, c.ID)
	suite.True(apperrors.IsNotFound(err))
}

func (suite *CategoryRepositoryTestSuite) TestDeleteByID_AbsentIsNoOp() {
	suite.NoError(suite.repo.DeleteByID(suite.ctx, category.IDFrom("missing")))
}

func (suite *CategoryRepositoryTestSuite) TestFindAll_PagingAndSorting() {
	for _, name := range []string{"Documentaries", "Movies", "Series"} {
		_, err := suite.repo.Create(suite.ctx, testutil.CreateTestCategory(name))
		suite.Require().NoError(err)
	}

	page, err := suite.repo.FindAll(suite.ctx, pagination.NewSearchQuery(0, 2, "", "name", "asc"))
	suite.Require().NoError(err)
	suite.Equal(int64(3), page.Total)
	suite.Require().Len(page.Items, 2)
	suite.Equal("Documentaries", page.Items[0].Name)
	suite.Equal("Movies", page.Items[1].Name)

	page, err = suite.repo.FindAll(suite.ctx, pagination.NewSearchQuery(1, 2, "", "name", "asc"))
	suite.Require().NoError(err)
	suite.Require().Len(page.Items, 1)
	suite.Equal("Series", page.Items[0].Name)
}

func (suite *CategoryRepositoryTestSuite) TestFindAll_TermsFilterIsCaseInsensitive() {
	for _, name := range []string{"Documentaries", "Movies"} {
		_, err := suite.repo.Create(suite.ctx, testutil.CreateTestCategory(name))
		suite.Require().NoError(err)
	}

	page, err := suite.repo.FindAll(suite.ctx, pagination.NewSearchQuery(0, 10, "MOV", "name", "asc"))
	suite.Require().NoError(err)
	suite.Equal(int64(1), page.Total)
	suite.Require().Len(page.Items, 1)
	suite.Equal("Movies", page.Items[0].Name)
}

func (suite *CategoryRepositoryTestSuite) TestExistsByIDs_KeepsRequestOrder() {
	a := testutil.CreateTestCategory("Movies")
	b := testutil.CreateTestCategory("Series")
	_, err := suite.repo.Create(suite.ctx, a)
	suite.Require().NoError(err)
	_, err = suite.repo.Create(suite.ctx, b)
	suite.Require().NoError(err)

	existing, err := suite.repo.ExistsByIDs(suite.ctx, []category.ID{b.ID, "missing", a.ID})
	suite.Require().NoError(err)
	suite.Equal([]category.ID{b.ID, a.ID}, existing)
}

func (suite *CategoryRepositoryTestSuite) TestExistsByIDs_EmptySet() {
	existing, err := suite.repo.ExistsByIDs(suite.ctx, nil)
	suite.Require().NoError(err)
	suite.Empty(existing)
}

func TestCategoryRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(CategoryRepositoryTestSuite))
}
