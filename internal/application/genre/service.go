// Package genre implements the genre use cases. Creating or updating a genre
// cross-checks its category references against the category gateway.
package genre

import (
	"context"

	"github.com/kinotek/catalog/internal/application/refs"
	"github.com/kinotek/catalog/internal/domain/category"
	"github.com/kinotek/catalog/internal/domain/genre"
	"github.com/kinotek/catalog/internal/domain/validation"
	"github.com/kinotek/catalog/pkg/events"
	"github.com/kinotek/catalog/pkg/logger"
	"github.com/kinotek/catalog/pkg/pagination"
)

// Service orchestrates genre aggregates against their gateway and the
// category gateway for reference checks.
type Service struct {
	gateway    genre.Gateway
	categories category.Gateway
	bus        events.EventBus
	log        logger.Logger
}

// NewService creates a genre service.
func NewService(gateway genre.Gateway, categories category.Gateway, bus events.EventBus, log logger.Logger) *Service {
	return &Service{gateway: gateway, categories: categories, bus: bus, log: log}
}

// Create builds and validates a genre. Reference errors are reported before
// field errors, all in one pass; nothing is persisted when any exist.
func (s *Service) Create(ctx context.Context, cmd CreateGenreCommand) (CreateGenreOutput, error) {
	categoryIDs := refs.ToIDs[category.ID](cmd.Categories)

	notification := validation.NewNotification()
	existence, err := refs.CheckExists(ctx, "categories", categoryIDs, s.categories.ExistsByIDs)
	if err != nil {
		return CreateGenreOutput{}, err
	}
	notification.AppendHandler(existence)

	aggregate := genre.NewGenre(cmd.Name, cmd.Active, categoryIDs)
	aggregate.Validate(notification)

	if notification.HasError() {
		return CreateGenreOutput{}, validation.DomainErrorFrom("Could not create Aggregate Genre", notification)
	}

	created, err := s.gateway.Create(ctx, aggregate)
	if err != nil {
		s.log.Error("Failed to create genre", logger.Error(err))
		return CreateGenreOutput{}, err
	}

	s.bus.PublishAsync(ctx, events.NewAggregateEvent("genre.created", created.ID.String(), nil))
	s.log.Info("Genre created",
		logger.String("id", created.ID.String()),
		logger.String("name", created.Name))

	return CreateGenreOutput{ID: created.ID.String()}, nil
}

// Update mutates an existing genre, re-running the category reference check.
func (s *Service) Update(ctx context.Context, cmd UpdateGenreCommand) (GenreOutput, error) {
	aggregate, err := s.gateway.FindByID(ctx, genre.IDFrom(cmd.ID))
	if err != nil {
		return GenreOutput{}, err
	}

	categoryIDs := refs.ToIDs[category.ID](cmd.Categories)

	notification := validation.NewNotification()
	existence, err := refs.CheckExists(ctx, "categories", categoryIDs, s.categories.ExistsByIDs)
	if err != nil {
		return GenreOutput{}, err
	}
	notification.AppendHandler(existence)

	aggregate.Update(cmd.Name, cmd.Active, categoryIDs)
	aggregate.Validate(notification)

	if notification.HasError() {
		return GenreOutput{}, validation.DomainErrorFrom("Could not update Aggregate Genre", notification)
	}

	updated, err := s.gateway.Update(ctx, aggregate)
	if err != nil {
		s.log.Error("Failed to update genre", logger.Error(err))
		return GenreOutput{}, err
	}

	s.bus.PublishAsync(ctx, events.NewAggregateEvent("genre.updated", updated.ID.String(), nil))

	return GenreOutputFrom(updated), nil
}

// GetByID retrieves a genre by its identifier.
func (s *Service) GetByID(ctx context.Context, id string) (GenreOutput, error) {
	aggregate, err := s.gateway.FindByID(ctx, genre.IDFrom(id))
	if err != nil {
		return GenreOutput{}, err
	}
	return GenreOutputFrom(aggregate), nil
}

// List returns a page of genres matching the search query.
func (s *Service) List(ctx context.Context, query pagination.SearchQuery) (pagination.Page[GenreOutput], error) {
	page, err := s.gateway.FindAll(ctx, query)
	if err != nil {
		return pagination.Page[GenreOutput]{}, err
	}
	return pagination.Map(page, GenreOutputFrom), nil
}

// Delete removes a genre by ID. Deleting an absent genre is a no-op.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.gateway.DeleteByID(ctx, genre.IDFrom(id)); err != nil {
		s.log.Error("Failed to delete genre", logger.String("id", id), logger.Error(err))
		return err
	}
	s.bus.PublishAsync(ctx, events.NewAggregateEvent("genre.deleted", id, nil))
	return nil
}
