package usecases

import (
	"context"
	"fmt"

	commondto "github.com/SportsX-xyz/sportsx-ticket-backend/internal/application/common/dto"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/domain/ticket"
	tvo "github.com/SportsX-xyz/sportsx-ticket-backend/internal/domain/ticket/valueobjects"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/shared/logger"
)

type ListOwnedTicketsQuery struct {
	CustomerID string
}

// ListOwnedTicketsUseCase lists a customer's seats in a fixed set of
// statuses. One instance serves "my tickets" (SOLD, USED) and another "my
// resales" (RESALE).
type ListOwnedTicketsUseCase struct {
	ticketRepo ticket.Repository
	statuses   []tvo.TicketStatus
	logger     logger.Interface
}

func NewListMyTicketsUseCase(ticketRepo ticket.Repository, logger logger.Interface) *ListOwnedTicketsUseCase {
	return &ListOwnedTicketsUseCase{
		ticketRepo: ticketRepo,
		statuses:   []tvo.TicketStatus{tvo.StatusSold, tvo.StatusUsed},
		logger:     logger,
	}
}

func NewListMyResalesUseCase(ticketRepo ticket.Repository, logger logger.Interface) *ListOwnedTicketsUseCase {
	return &ListOwnedTicketsUseCase{
		ticketRepo: ticketRepo,
		statuses:   []tvo.TicketStatus{tvo.StatusResale},
		logger:     logger,
	}
}

func (uc *ListOwnedTicketsUseCase) Execute(ctx context.Context, query ListOwnedTicketsQuery) ([]*commondto.TicketDTO, error) {
	seats, err := uc.ticketRepo.ListByOwner(ctx, query.CustomerID, uc.statuses...)
	if err != nil {
		uc.logger.Errorw("failed to list owned tickets", "customer_id", query.CustomerID, "error", err)
		return nil, fmt.Errorf("failed to list owned tickets: %w", err)
	}
	return commondto.ToTicketDTOs(seats), nil
}
