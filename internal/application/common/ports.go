// Package common holds the ports and lookups shared by the ticketing use
// cases.
package common

import (
	"context"
	"fmt"

	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/domain/shared/events"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/shared/logger"
)

// EventPublisher sends domain events to the event bus.
type EventPublisher interface {
	Publish(ctx context.Context, event events.DomainEvent) error
}

// PublishAll publishes events after the state they describe has committed.
// Failures are logged; committed state is never rolled back.
func PublishAll(ctx context.Context, publisher EventPublisher, log logger.Interface, evts ...events.DomainEvent) {
	if publisher == nil {
		return
	}
	for _, evt := range evts {
		if err := publisher.Publish(ctx, evt); err != nil {
			log.Warnw("failed to publish domain event",
				"event_id", evt.EventHeader().ID,
				"event_type", fmt.Sprintf("%T", evt),
				"error", err,
			)
		}
	}
}
