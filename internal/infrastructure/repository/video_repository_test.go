package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/kinotek/catalog/internal/domain/castmember"
	"github.com/kinotek/catalog/internal/domain/category"
	"github.com/kinotek/catalog/internal/domain/genre"
	"github.com/kinotek/catalog/internal/domain/video"
	"github.com/kinotek/catalog/internal/infrastructure/repository"
	apperrors "github.com/kinotek/catalog/pkg/errors"
	"github.com/kinotek/catalog/pkg/pagination"
	"github.com/kinotek/catalog/test/testutil"
)

type VideoRepositoryTestSuite struct {
	suite.Suite

	ctx  context.Context
	repo *repository.VideoRepository
}

func (suite *VideoRepositoryTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.repo = repository.NewVideoRepository(testutil.NewSQLiteDB(suite.T()))
}

func (suite *VideoRepositoryTestSuite) newVideoWithReferences() *video.Video {
	year := 2022
	return video.NewVideo(
		"System Design Interviews",
		"A course about system design",
		&year,
		120.5,
		false,
		true,
		video.RatingL,
		[]category.ID{category.NewID(), category.NewID()},
		[]genre.ID{genre.NewID()},
		[]castmember.ID{castmember.NewID()},
	)
}

func (suite *VideoRepositoryTestSuite) TestCreateAndFindByID_RoundTripsReferences() {
	v := suite.newVideoWithReferences()

	_, err := suite.repo.Create(suite.ctx, v)
	suite.Require().NoError(err)

	found, err := suite.repo.FindByID(suite.ctx, v.ID)
	suite.Require().NoError(err)
	suite.Equal(v.Title, found.Title)
	suite.Equal(v.Categories, found.Categories)
	suite.Equal(v.Genres, found.Genres)
	suite.Equal(v.CastMembers, found.CastMembers)
	suite.Require().NotNil(found.LaunchedAt)
	suite.Equal(2022, *found.LaunchedAt)
	suite.Equal(video.RatingL, found.Rating)
	suite.Nil(found.Video)
	suite.Nil(found.Banner)
}

func (suite *VideoRepositoryTestSuite) TestCreateAndFindByID_RoundTripsMedia() {
	v := testutil.CreateTestVideo("System Design Interviews")
	videoMedia := video.NewAudioVideoMedia("sum-video", "movie.mp4", v.ID.String()+"/video/movie.mp4")
	banner := video.NewImageMedia("sum-banner", "banner.png", v.ID.String()+"/banner/banner.png")
	v.SetVideo(&videoMedia)
	v.SetBanner(&banner)

	_, err := suite.repo.Create(suite.ctx, v)
	suite.Require().NoError(err)

	found, err := suite.repo.FindByID(suite.ctx, v.ID)
	suite.Require().NoError(err)
	suite.Require().NotNil(found.Video)
	suite.True(found.Video.Equals(videoMedia))
	suite.Equal(video.MediaStatusPending, found.Video.Status)
	suite.Require().NotNil(found.Banner)
	suite.True(found.Banner.Equals(banner))
	suite.Nil(found.Trailer)
	suite.Nil(found.Thumbnail)
	suite.Nil(found.ThumbnailHalf)
}

func (suite *VideoRepositoryTestSuite) TestFindByID_NotFound() {
	_, err := suite.repo.FindByID(suite.ctx, video.IDFrom("missing"))

	suite.True(apperrors.IsNotFound(err))
	suite.Contains(err.Error(), "Video with ID missing was not found")
}

func (suite *VideoRepositoryTestSuite) TestUpdate_RewritesReferences() {
	v := suite.newVideoWithReferences()
	_, err := suite.repo.Create(suite.ctx, v)
	suite.Require().NoError(err)

	newCategory := category.NewID()
	year := 2023
	v.Update("New Title", "New description", &year, 90, true, false, video.RatingAge16,
		[]category.ID{newCategory}, nil, nil)
	_, err = suite.repo.Update(suite.ctx, v)
	suite.Require().NoError(err)

	found, err := suite.repo.FindByID(suite.ctx, v.ID)
	suite.Require().NoError(err)
	suite.Equal("New Title", found.Title)
	suite.Equal([]category.ID{newCategory}, found.Categories)
	suite.Empty(found.Genres)
	suite.Empty(found.CastMembers)
}

func (suite *VideoRepositoryTestSuite) TestDeleteByID() {
	v := suite.newVideoWithReferences()
	_, err := suite.repo.Create(suite.ctx, v)
	suite.Require().NoError(err)

	suite.Require().NoError(suite.repo.DeleteByID(suite.ctx, v.ID))

	_, err = suite.repo.FindByID(suite.ctx, v.ID)
	suite.True(apperrors.IsNotFound(err))
}

func (suite *VideoRepositoryTestSuite) TestFindAll_FiltersOnTitle() {
	for _, title := range []string{"System Design Interviews", "Clean Architecture"} {
		_, err := suite.repo.Create(suite.ctx, testutil.CreateTestVideo(title))
		suite.Require().NoError(err)
	}

	page, err := suite.repo.FindAll(suite.ctx, pagination.NewSearchQuery(0, 10, "design", "title", "asc"))
	suite.Require().NoError(err)
	suite.Equal(int64(1), page.Total)
	suite.Require().Len(page.Items, 1)
	suite.Equal("System Design Interviews", page.Items[0].Title)
}

func (suite *VideoRepositoryTestSuite) TestExistsByIDs() {
	v := testutil.CreateTestVideo("System Design Interviews")
	_, err := suite.repo.Create(suite.ctx, v)
	suite.Require().NoError(err)

	existing, err := suite.repo.ExistsByIDs(suite.ctx, []video.ID{v.ID, "missing"})
	suite.Require().NoError(err)
	suite.Equal([]video.ID{v.ID}, existing)
}

func TestVideoRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(VideoRepositoryTestSuite))
}
