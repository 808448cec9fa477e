package usecases

import (
	"context"

	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/application/event/dto"
)

type CreateEventExecutor interface {
	Execute(ctx context.Context, cmd CreateEventCommand) (*dto.EventDTO, error)
}

type UpdateEventExecutor interface {
	Execute(ctx context.Context, cmd UpdateEventCommand) (*dto.EventDTO, error)
}

type GetEventExecutor interface {
	Execute(ctx context.Context, query GetEventQuery) (*dto.EventDTO, error)
}

type ListEventsExecutor interface {
	Execute(ctx context.Context, query ListEventsQuery) ([]*dto.EventDTO, error)
}

type PreviewEventExecutor interface {
	Execute(ctx context.Context, cmd PreviewEventCommand) (*dto.EventDTO, error)
}

type PublishEventExecutor interface {
	Execute(ctx context.Context, cmd PublishEventCommand) (*dto.EventDTO, error)
}

type DisableEventExecutor interface {
	Execute(ctx context.Context, cmd DisableEventCommand) (*dto.EventDTO, error)
}

type DeleteEventExecutor interface {
	Execute(ctx context.Context, cmd DeleteEventCommand) error
}

type AddStaffExecutor interface {
	Execute(ctx context.Context, cmd AddStaffCommand) (*dto.StaffDTO, error)
}

type ListStaffExecutor interface {
	Execute(ctx context.Context, query ListStaffQuery) ([]*dto.StaffDTO, error)
}

type RemoveStaffExecutor interface {
	Execute(ctx context.Context, cmd RemoveStaffCommand) error
}

// ArtifactPublisher pins event metadata and returns its content URI.
type ArtifactPublisher interface {
	PublishEventMetadata(ctx context.Context, metadata EventMetadata) (string, error)
}

// EventMetadata is the public description pinned when an event enters
// PREVIEW.
type EventMetadata struct {
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Image       string            `json:"image"`
	Attributes  map[string]string `json:"attributes"`
}
