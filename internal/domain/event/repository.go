package event

import (
	"context"

	vo "github.com/SportsX-xyz/sportsx-ticket-backend/internal/domain/event/valueobjects"
)

type Repository interface {
	Create(ctx context.Context, event *Event) error
	// Update persists the event, failing with InvalidTransition when the
	// stored version no longer matches.
	Update(ctx context.Context, event *Event) error
	Delete(ctx context.Context, eventID string) error
	GetByID(ctx context.Context, eventID string) (*Event, error)
	ListByOrganizer(ctx context.Context, organizerID string) ([]*Event, error)
	ListByStatus(ctx context.Context, statuses ...vo.EventStatus) ([]*Event, error)
}

type TicketTypeRepository interface {
	Create(ctx context.Context, ticketType *TicketType) error
	Update(ctx context.Context, ticketType *TicketType) error
	Delete(ctx context.Context, typeID string) error
	DeleteByEvent(ctx context.Context, eventID string) error
	GetByID(ctx context.Context, typeID string) (*TicketType, error)
	ListByEvent(ctx context.Context, eventID string) ([]*TicketType, error)
}

type StaffRepository interface {
	// Create fails with ConstraintViolation when the staff member is already
	// registered for the event.
	Create(ctx context.Context, staff *Staff) error
	Delete(ctx context.Context, eventID, staffID string) error
	DeleteByEvent(ctx context.Context, eventID string) error
	Exists(ctx context.Context, eventID, staffID string) (bool, error)
	ListByEvent(ctx context.Context, eventID string) ([]*Staff, error)
}
