// Package testutil provides aggregate fixtures shared by the test suites.
package testutil

import (
	"github.com/kinotek/catalog/internal/domain/castmember"
	"github.com/kinotek/catalog/internal/domain/category"
	"github.com/kinotek/catalog/internal/domain/genre"
	"github.com/kinotek/catalog/internal/domain/video"
)

// CreateTestCategory creates an active category fixture.
func CreateTestCategory(name string) *category.Category {
	return category.NewCategory(name, name+" description", true)
}

// CreateTestGenre creates an active genre fixture referencing the given
// categories.
func CreateTestGenre(name string, categories ...category.ID) *genre.Genre {
	return genre.NewGenre(name, true, categories)
}

// CreateTestCastMember creates an actor fixture.
func CreateTestCastMember(name string) *castmember.CastMember {
	return castmember.NewCastMember(name, castmember.TypeActor)
}

// CreateTestVideo creates a valid video fixture without media attachments.
func CreateTestVideo(title string) *video.Video {
	year := 2022
	return video.NewVideo(
		title,
		title+" description",
		&year,
		120.5,
		false,
		true,
		video.RatingL,
		nil,
		nil,
		nil,
	)
}

// CreateTestResource creates a small binary resource for the given slot.
func CreateTestResource(name string, mediaType video.MediaType) video.Resource {
	return video.NewResource([]byte(name+" content"), "application/octet-stream", name, mediaType)
}
