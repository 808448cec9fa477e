package common

import (
	"context"
	"fmt"

	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/domain/customer"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/domain/event"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/domain/order"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/domain/ticket"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/shared/errors"
)

// Repositories return (nil, nil) for a missing row; these helpers turn that
// into NotFound.

func LoadEvent(ctx context.Context, repo event.Repository, eventID string) (*event.Event, error) {
	e, err := repo.GetByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to get event: %w", err)
	}
	if e == nil {
		return nil, errors.NewNotFoundError("event not found", "event_id="+eventID)
	}
	return e, nil
}

// LoadOwnedEvent loads an event and checks that organizerID owns it.
func LoadOwnedEvent(ctx context.Context, repo event.Repository, organizerID, eventID string) (*event.Event, error) {
	e, err := LoadEvent(ctx, repo, eventID)
	if err != nil {
		return nil, err
	}
	if !e.BelongsTo(organizerID) {
		return nil, errors.NewForbiddenError("event belongs to another organizer", "event_id="+eventID)
	}
	return e, nil
}

func LoadTicketType(ctx context.Context, repo event.TicketTypeRepository, eventID, typeID string) (*event.TicketType, error) {
	tt, err := repo.GetByID(ctx, typeID)
	if err != nil {
		return nil, fmt.Errorf("failed to get ticket type: %w", err)
	}
	if tt == nil || !tt.BelongsTo(eventID) {
		return nil, errors.NewNotFoundError("ticket type not found", "ticket_type_id="+typeID)
	}
	return tt, nil
}

func LoadTicket(ctx context.Context, repo ticket.Repository, ticketID string) (*ticket.Ticket, error) {
	t, err := repo.GetByID(ctx, ticketID)
	if err != nil {
		return nil, fmt.Errorf("failed to get ticket: %w", err)
	}
	if t == nil {
		return nil, errors.NewNotFoundError("ticket not found", "ticket_id="+ticketID)
	}
	return t, nil
}

func LoadOrder(ctx context.Context, repo order.Repository, orderID string) (*order.Order, error) {
	o, err := repo.GetByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	if o == nil {
		return nil, errors.NewNotFoundError("order not found", "order_id="+orderID)
	}
	return o, nil
}

func LoadCustomer(ctx context.Context, repo customer.Repository, customerID string) (*customer.Customer, error) {
	c, err := repo.GetByID(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}
	if c == nil {
		return nil, errors.NewNotFoundError("customer not found", "customer_id="+customerID)
	}
	return c, nil
}

// LoadActiveCustomer loads a customer and rejects disabled accounts.
func LoadActiveCustomer(ctx context.Context, repo customer.Repository, customerID string) (*customer.Customer, error) {
	c, err := LoadCustomer(ctx, repo, customerID)
	if err != nil {
		return nil, err
	}
	if err := c.AssertActive(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadOrganizer loads an active customer holding organizer capability.
func LoadOrganizer(ctx context.Context, repo customer.Repository, customerID string) (*customer.Customer, error) {
	c, err := LoadCustomer(ctx, repo, customerID)
	if err != nil {
		return nil, err
	}
	if err := c.AssertOrganizer(); err != nil {
		return nil, err
	}
	return c, nil
}
