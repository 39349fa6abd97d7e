// Package castmember implements the cast member use cases.
package castmember

import (
	"context"

	"github.com/kinotek/catalog/internal/domain/castmember"
	"github.com/kinotek/catalog/internal/domain/validation"
	"github.com/kinotek/catalog/pkg/events"
	"github.com/kinotek/catalog/pkg/logger"
	"github.com/kinotek/catalog/pkg/pagination"
)

// Service orchestrates cast member aggregates against their gateway.
type Service struct {
	gateway castmember.Gateway
	bus     events.EventBus
	log     logger.Logger
}

// NewService creates a cast member service.
func NewService(gateway castmember.Gateway, bus events.EventBus, log logger.Logger) *Service {
	return &Service{gateway: gateway, bus: bus, log: log}
}

// Create builds and validates a cast member. An unknown type code is reported
// by the validator, not rejected at parse time.
func (s *Service) Create(ctx context.Context, cmd CreateCastMemberCommand) (CreateCastMemberOutput, error) {
	memberType, _ := castmember.TypeOf(cmd.Type)
	aggregate := castmember.NewCastMember(cmd.Name, memberType)

	notification := validation.NewNotification()
	aggregate.Validate(notification)
	if notification.HasError() {
		return CreateCastMemberOutput{}, validation.DomainErrorFrom("Could not create Aggregate CastMember", notification)
	}

	created, err := s.gateway.Create(ctx, aggregate)
	if err != nil {
		s.log.Error("Failed to create cast member", logger.Error(err))
		return CreateCastMemberOutput{}, err
	}

	s.bus.PublishAsync(ctx, events.NewAggregateEvent("castmember.created", created.ID.String(), nil))
	s.log.Info("Cast member created",
		logger.String("id", created.ID.String()),
		logger.String("name", created.Name))

	return CreateCastMemberOutput{ID: created.ID.String()}, nil
}

// Update mutates an existing cast member.
func (s *Service) Update(ctx context.Context, cmd UpdateCastMemberCommand) (CastMemberOutput, error) {
	aggregate, err := s.gateway.FindByID(ctx, castmember.IDFrom(cmd.ID))
	if err != nil {
		return CastMemberOutput{}, err
	}

	memberType, _ := castmember.TypeOf(cmd.Type)
	aggregate.Update(cmd.Name, memberType)

	notification := validation.NewNotification()
	aggregate.Validate(notification)
	if notification.HasError() {
		return CastMemberOutput{}, validation.DomainErrorFrom("Could not update Aggregate CastMember", notification)
	}

	updated, err := s.gateway.Update(ctx, aggregate)
	if err != nil {
		s.log.Error("Failed to update cast member", logger.Error(err))
		return CastMemberOutput{}, err
	}

	s.bus.PublishAsync(ctx, events.NewAggregateEvent("castmember.updated", updated.ID.String(), nil))

	return CastMemberOutputFrom(updated), nil
}

// GetByID retrieves a cast member by its identifier.
func (s *Service) GetByID(ctx context.Context, id string) (CastMemberOutput, error) {
	aggregate, err := s.gateway.FindByID(ctx, castmember.IDFrom(id))
	if err != nil {
		return CastMemberOutput{}, err
	}
	return CastMemberOutputFrom(aggregate), nil
}

// List returns a page of cast members matching the search query.
func (s *Service) List(ctx context.Context, query pagination.SearchQuery) (pagination.Page[CastMemberOutput], error) {
	page, err := s.gateway.FindAll(ctx, query)
	if err != nil {
		return pagination.Page[CastMemberOutput]{}, err
	}
	return pagination.Map(page, CastMemberOutputFrom), nil
}

// Delete removes a cast member by ID. Deleting an absent member is a no-op.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.gateway.DeleteByID(ctx, castmember.IDFrom(id)); err != nil {
		s.log.Error("Failed to delete cast member", logger.String("id", id), logger.Error(err))
		return err
	}
	s.bus.PublishAsync(ctx, events.NewAggregateEvent("castmember.deleted", id, nil))
	return nil
}
