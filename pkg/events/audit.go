package events

import (
	"context"

	"github.com/kinotek/catalog/pkg/logger"
)

// AuditLogHandler records every event of one type in the service log, giving
// the catalog an append-only trail of aggregate changes.
type AuditLogHandler struct {
	eventType string
	log       logger.Logger
}

// NewAuditLogHandler creates an audit handler for a single event type.
func NewAuditLogHandler(eventType string, log logger.Logger) *AuditLogHandler {
	return &AuditLogHandler{eventType: eventType, log: log}
}

// Handle logs the event and never fails.
func (h *AuditLogHandler) Handle(ctx context.Context, event Event) error {
	h.log.Info("Domain event",
		logger.String("event_type", event.EventType()),
		logger.String("aggregate_id", event.AggregateID()))
	return nil
}

// EventType returns the event type this handler processes
func (h *AuditLogHandler) EventType() string {
	return h.eventType
}
