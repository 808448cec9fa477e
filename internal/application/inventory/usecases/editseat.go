package usecases

import (
	"context"

	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/application/common"
	commondto "github.com/SportsX-xyz/sportsx-ticket-backend/internal/application/common/dto"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/domain/event"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/domain/ticket"
	tvo "github.com/SportsX-xyz/sportsx-ticket-backend/internal/domain/ticket/valueobjects"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/shared/errors"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/shared/logger"
)

type EditSeatCommand struct {
	OrganizerID string
	EventID     string
	TicketID    string
	Status      string
	// TicketTypeID moves the seat to another tier of the same event.
	TicketTypeID *string
}

type EditSeatUseCase struct {
	eventRepo      event.Repository
	ticketTypeRepo event.TicketTypeRepository
	ticketRepo     ticket.Repository
	logger         logger.Interface
}

func NewEditSeatUseCase(
	eventRepo event.Repository,
	ticketTypeRepo event.TicketTypeRepository,
	ticketRepo ticket.Repository,
	logger logger.Interface,
) *EditSeatUseCase {
	return &EditSeatUseCase{
		eventRepo:      eventRepo,
		ticketTypeRepo: ticketTypeRepo,
		ticketRepo:     ticketRepo,
		logger:         logger,
	}
}

func (uc *EditSeatUseCase) Execute(ctx context.Context, cmd EditSeatCommand) (*commondto.TicketDTO, error) {
	e, err := common.LoadOwnedEvent(ctx, uc.eventRepo, cmd.OrganizerID, cmd.EventID)
	if err != nil {
		return nil, err
	}
	if err := e.AssertInventoryMutable(); err != nil {
		return nil, err
	}

	seat, err := common.LoadTicket(ctx, uc.ticketRepo, cmd.TicketID)
	if err != nil {
		return nil, err
	}
	if seat.EventID() != e.ID() {
		return nil, errors.NewNotFoundError("ticket not found", "ticket_id="+cmd.TicketID)
	}

	from := seat.Status()
	if err := seat.Configure(tvo.TicketStatus(cmd.Status)); err != nil {
		return nil, err
	}
	if cmd.TicketTypeID != nil && *cmd.TicketTypeID != seat.TicketTypeID() {
		tt, err := common.LoadTicketType(ctx, uc.ticketTypeRepo, e.ID(), *cmd.TicketTypeID)
		if err != nil {
			return nil, err
		}
		if err := seat.MoveToType(tt.ID(), tt.TierPrice()); err != nil {
			return nil, err
		}
	}

	if err := uc.ticketRepo.CompareAndSwap(ctx, seat, from); err != nil {
		uc.logger.Warnw("seat edit rejected", "ticket_id", seat.ID(), "error", err)
		return nil, err
	}

	uc.logger.Infow("seat edited", "ticket_id", seat.ID(), "from", from, "to", seat.Status())
	return commondto.ToTicketDTO(seat), nil
}
