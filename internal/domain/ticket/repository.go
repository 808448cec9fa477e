package ticket

import (
	"context"
	"time"

	vo "github.com/SportsX-xyz/sportsx-ticket-backend/internal/domain/ticket/valueobjects"
)

type Repository interface {
	GetByID(ctx context.Context, ticketID string) (*Ticket, error)
	// CompareAndSwap persists t only if the stored status is still from.
	// A lost race yields InvalidTransition; a seat-coordinate collision
	// yields ConstraintViolation.
	CompareAndSwap(ctx context.Context, t *Ticket, from vo.TicketStatus) error
	// BulkInsertIgnoringConflicts inserts seats in one statement, skipping
	// coordinates already taken within the ticket type.
	BulkInsertIgnoringConflicts(ctx context.Context, tickets []*Ticket) (int64, error)
	// UpdateSaleWindow rewrites the sale window of every seat of the event.
	UpdateSaleWindow(ctx context.Context, eventID string, start, end time.Time) error

	ListByEvent(ctx context.Context, eventID string, statuses ...vo.TicketStatus) ([]*Ticket, error)
	ListByOwner(ctx context.Context, ownerID string, statuses ...vo.TicketStatus) ([]*Ticket, error)
	CountByEvent(ctx context.Context, eventID string, statuses ...vo.TicketStatus) (int64, error)
	CountByTicketType(ctx context.Context, typeID string, statuses ...vo.TicketStatus) (int64, error)
	MaxCoordinates(ctx context.Context, eventID string) (maxRow int, maxColumn int, err error)

	DeleteByTicketType(ctx context.Context, typeID string) error
	DeleteByEvent(ctx context.Context, eventID string) error
}
