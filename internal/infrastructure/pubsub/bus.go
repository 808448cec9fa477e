package pubsub

import (
	"context"
	"fmt"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/components/cqrs"
	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/domain/shared/events"
)

func topicFor(eventName string) string {
	return "events." + eventName
}

func newMarshaler() cqrs.JSONMarshaler {
	return cqrs.JSONMarshaler{GenerateName: cqrs.StructName}
}

// EventBus publishes domain events under their struct name.
type EventBus struct {
	bus *cqrs.EventBus
}

func NewEventBus(pub message.Publisher, logger watermill.LoggerAdapter) (*EventBus, error) {
	bus, err := cqrs.NewEventBusWithConfig(pub, cqrs.EventBusConfig{
		GeneratePublishTopic: func(params cqrs.GenerateEventPublishTopicParams) (string, error) {
			return topicFor(params.EventName), nil
		},
		Marshaler: newMarshaler(),
		Logger:    logger,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create event bus: %w", err)
	}
	return &EventBus{bus: bus}, nil
}

func (b *EventBus) Publish(ctx context.Context, event events.DomainEvent) error {
	return b.bus.Publish(ctx, event)
}
