package usecases

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/application/common"
	commondto "github.com/SportsX-xyz/sportsx-ticket-backend/internal/application/common/dto"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/domain/customer"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/domain/event"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/domain/shared/events"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/domain/ticket"
	tvo "github.com/SportsX-xyz/sportsx-ticket-backend/internal/domain/ticket/valueobjects"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/shared/biztime"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/shared/logger"
)

type RelistTicketCommand struct {
	OwnerID  string
	TicketID string
	Price    decimal.Decimal
}

// RelistTicketUseCase puts an owned SOLD seat up for resale, or reprices a
// seat already listed. The resale cap is enforced when a resale settles.
// Listings close with the event's sale window.
type RelistTicketUseCase struct {
	eventRepo    event.Repository
	ticketRepo   ticket.Repository
	customerRepo customer.Repository
	publisher    common.EventPublisher
	logger       logger.Interface
}

func NewRelistTicketUseCase(
	eventRepo event.Repository,
	ticketRepo ticket.Repository,
	customerRepo customer.Repository,
	publisher common.EventPublisher,
	logger logger.Interface,
) *RelistTicketUseCase {
	return &RelistTicketUseCase{
		eventRepo:    eventRepo,
		ticketRepo:   ticketRepo,
		customerRepo: customerRepo,
		publisher:    publisher,
		logger:       logger,
	}
}

func (uc *RelistTicketUseCase) Execute(ctx context.Context, cmd RelistTicketCommand) (*commondto.TicketDTO, error) {
	if _, err := common.LoadActiveCustomer(ctx, uc.customerRepo, cmd.OwnerID); err != nil {
		return nil, err
	}
	seat, err := common.LoadTicket(ctx, uc.ticketRepo, cmd.TicketID)
	if err != nil {
		return nil, err
	}
	e, err := common.LoadEvent(ctx, uc.eventRepo, seat.EventID())
	if err != nil {
		return nil, err
	}
	if err := e.AssertOnSale(biztime.NowUTC()); err != nil {
		return nil, err
	}

	from := seat.Status()
	if err := seat.Relist(cmd.OwnerID, cmd.Price); err != nil {
		return nil, err
	}
	if err := uc.ticketRepo.CompareAndSwap(ctx, seat, from); err != nil {
		uc.logger.Warnw("relist lost a race", "ticket_id", seat.ID(), "error", err)
		return nil, err
	}

	uc.logger.Infow("ticket relisted", "ticket_id", seat.ID(), "owner_id", cmd.OwnerID, "price", seat.Price().String())
	common.PublishAll(ctx, uc.publisher, uc.logger, events.TicketRelisted{
		Header:   events.NewHeader(),
		TicketID: seat.ID(),
		EventID:  seat.EventID(),
		OwnerID:  cmd.OwnerID,
		Price:    seat.Price().String(),
	})
	return commondto.ToTicketDTO(seat), nil
}

type UnlistTicketCommand struct {
	OwnerID  string
	TicketID string
}

// UnlistTicketUseCase withdraws a resale listing, restoring the seat to SOLD
// at its pre-listing price.
type UnlistTicketUseCase struct {
	ticketRepo   ticket.Repository
	customerRepo customer.Repository
	publisher    common.EventPublisher
	logger       logger.Interface
}

func NewUnlistTicketUseCase(
	ticketRepo ticket.Repository,
	customerRepo customer.Repository,
	publisher common.EventPublisher,
	logger logger.Interface,
) *UnlistTicketUseCase {
	return &UnlistTicketUseCase{ticketRepo: ticketRepo, customerRepo: customerRepo, publisher: publisher, logger: logger}
}

func (uc *UnlistTicketUseCase) Execute(ctx context.Context, cmd UnlistTicketCommand) (*commondto.TicketDTO, error) {
	if _, err := common.LoadActiveCustomer(ctx, uc.customerRepo, cmd.OwnerID); err != nil {
		return nil, err
	}
	seat, err := common.LoadTicket(ctx, uc.ticketRepo, cmd.TicketID)
	if err != nil {
		return nil, err
	}
	if err := seat.Unlist(cmd.OwnerID); err != nil {
		return nil, err
	}
	if err := uc.ticketRepo.CompareAndSwap(ctx, seat, tvo.StatusResale); err != nil {
		uc.logger.Warnw("unlist lost a race", "ticket_id", seat.ID(), "error", err)
		return nil, err
	}

	uc.logger.Infow("ticket unlisted", "ticket_id", seat.ID(), "owner_id", cmd.OwnerID)
	common.PublishAll(ctx, uc.publisher, uc.logger, events.TicketUnlisted{
		Header:   events.NewHeader(),
		TicketID: seat.ID(),
		EventID:  seat.EventID(),
		OwnerID:  cmd.OwnerID,
	})
	return commondto.ToTicketDTO(seat), nil
}
