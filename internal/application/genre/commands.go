package genre

import (
	"time"

	"github.com/kinotek/catalog/internal/domain/genre"
)

// CreateGenreCommand carries the parameters for creating a genre. Category
// IDs are raw strings; duplicates collapse on the aggregate.
type CreateGenreCommand struct {
	Name       string
	Active     bool
	Categories []string
}

// UpdateGenreCommand carries the parameters for updating a genre.
type UpdateGenreCommand struct {
	ID         string
	Name       string
	Active     bool
	Categories []string
}

// CreateGenreOutput is the projection returned on successful creation.
type CreateGenreOutput struct {
	ID string
}

// GenreOutput is the full projection of a genre aggregate.
type GenreOutput struct {
	ID         string
	Name       string
	Active     bool
	Categories []string
	CreatedAt  time.Time
	UpdatedAt  time.Time
	DeletedAt  *time.Time
}

// GenreOutputFrom projects an aggregate.
func GenreOutputFrom(g *genre.Genre) GenreOutput {
	categories := make([]string, len(g.Categories))
	for i, id := range g.Categories {
		categories[i] = id.String()
	}
	return GenreOutput{
		ID:         g.ID.String(),
		Name:       g.Name,
		Active:     g.Active,
		Categories: categories,
		CreatedAt:  g.CreatedAt,
		UpdatedAt:  g.UpdatedAt,
		DeletedAt:  g.DeletedAt,
	}
}
