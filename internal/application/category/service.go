// Package category implements the category use cases: create, update, get,
// list and delete.
package category

import (
	"context"

	"github.com/kinotek/catalog/internal/domain/category"
	"github.com/kinotek/catalog/internal/domain/validation"
	"github.com/kinotek/catalog/pkg/events"
	"github.com/kinotek/catalog/pkg/logger"
	"github.com/kinotek/catalog/pkg/pagination"
)

// Service orchestrates category aggregates against their gateway.
type Service struct {
	gateway category.Gateway
	bus     events.EventBus
	log     logger.Logger
}

// NewService creates a category service.
func NewService(gateway category.Gateway, bus events.EventBus, log logger.Logger) *Service {
	return &Service{gateway: gateway, bus: bus, log: log}
}

// Create builds and validates a category, persisting it only when the full
// validation pass found no violations.
func (s *Service) Create(ctx context.Context, cmd CreateCategoryCommand) (CreateCategoryOutput, error) {
	aggregate := category.NewCategory(cmd.Name, cmd.Description, cmd.Active)

	notification := validation.NewNotification()
	aggregate.Validate(notification)
	if notification.HasError() {
		return CreateCategoryOutput{}, validation.DomainErrorFrom("Could not create Aggregate Category", notification)
	}

	created, err := s.gateway.Create(ctx, aggregate)
	if err != nil {
		s.log.Error("Failed to create category", logger.Error(err))
		return CreateCategoryOutput{}, err
	}

	s.bus.PublishAsync(ctx, events.NewAggregateEvent("category.created", created.ID.String(), nil))
	s.log.Info("Category created",
		logger.String("id", created.ID.String()),
		logger.String("name", created.Name))

	return CreateCategoryOutput{ID: created.ID.String()}, nil
}

// Update mutates an existing category. A missing ID is a not-found error; rule
// violations are reported together as a domain error.
func (s *Service) Update(ctx context.Context, cmd UpdateCategoryCommand) (CategoryOutput, error) {
	aggregate, err := s.gateway.FindByID(ctx, category.IDFrom(cmd.ID))
	if err != nil {
		return CategoryOutput{}, err
	}

	aggregate.Update(cmd.Name, cmd.Description, cmd.Active)

	notification := validation.NewNotification()
	aggregate.Validate(notification)
	if notification.HasError() {
		return CategoryOutput{}, validation.DomainErrorFrom("Could not update Aggregate Category", notification)
	}

	updated, err := s.gateway.Update(ctx, aggregate)
	if err != nil {
		s.log.Error("Failed to update category", logger.Error(err))
		return CategoryOutput{}, err
	}

	s.bus.PublishAsync(ctx, events.NewAggregateEvent("category.updated", updated.ID.String(), nil))

	return CategoryOutputFrom(updated), nil
}

// GetByID retrieves a category by its identifier.
func (s *Service) GetByID(ctx context.Context, id string) (CategoryOutput, error) {
	aggregate, err := s.gateway.FindByID(ctx, category.IDFrom(id))
	if err != nil {
		return CategoryOutput{}, err
	}
	return CategoryOutputFrom(aggregate), nil
}

// List returns a page of categories matching the search query.
func (s *Service) List(ctx context.Context, query pagination.SearchQuery) (pagination.Page[CategoryOutput], error) {
	page, err := s.gateway.FindAll(ctx, query)
	if err != nil {
		return pagination.Page[CategoryOutput]{}, err
	}
	return pagination.Map(page, CategoryOutputFrom), nil
}

// Delete removes a category by ID. Deleting an absent category is a no-op.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.gateway.DeleteByID(ctx, category.IDFrom(id)); err != nil {
		s.log.Error("Failed to delete category", logger.String("id", id), logger.Error(err))
		return err
	}
	s.bus.PublishAsync(ctx, events.NewAggregateEvent("category.deleted", id, nil))
	return nil
}
