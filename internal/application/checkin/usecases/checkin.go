package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/application/common"
	commondto "github.com/SportsX-xyz/sportsx-ticket-backend/internal/application/common/dto"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/domain/customer"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/domain/event"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/domain/shared/events"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/domain/ticket"
	tvo "github.com/SportsX-xyz/sportsx-ticket-backend/internal/domain/ticket/valueobjects"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/shared/biztime"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/shared/errors"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/shared/logger"
)

// gate runs the admission checks shared by check-in and its dry run.
type gate struct {
	eventRepo    event.Repository
	staffRepo    event.StaffRepository
	ticketRepo   ticket.Repository
	customerRepo customer.Repository
	issuer       TicketCodeIssuer
	logger       logger.Interface
}

// admit returns the seat a code admits once every check passes. The order
// of the checks decides which error a caller sees.
func (g *gate) admit(ctx context.Context, code, staffID string, now time.Time) (*ticket.Ticket, error) {
	claims, err := g.issuer.Parse(code)
	if err != nil {
		return nil, err
	}

	seat, err := common.LoadTicket(ctx, g.ticketRepo, claims.TicketID)
	if err != nil {
		return nil, err
	}
	e, err := common.LoadEvent(ctx, g.eventRepo, seat.EventID())
	if err != nil {
		return nil, err
	}

	isStaff, err := g.staffRepo.Exists(ctx, e.ID(), staffID)
	if err != nil {
		return nil, fmt.Errorf("failed to check event staff: %w", err)
	}
	if !isStaff {
		return nil, errors.NewForbiddenError("not a staff member of this event", "event_id="+e.ID())
	}
	if e.HasEnded(now) {
		return nil, errors.NewExpiredError("event has ended", "event_id="+e.ID())
	}

	if !seat.IsOwnedBy(claims.CustomerID) {
		return nil, errors.NewForbiddenError("code holder does not own this ticket", "ticket_id="+seat.ID())
	}
	holder, err := common.LoadCustomer(ctx, g.customerRepo, claims.CustomerID)
	if err != nil {
		return nil, err
	}
	if err := holder.AssertActive(); err != nil {
		return nil, err
	}

	if seat.Status() != tvo.StatusSold {
		return nil, errors.NewInvalidTransitionError(
			fmt.Sprintf("ticket is %s, cannot check in", seat.Status()),
			"ticket_id="+seat.ID(),
		)
	}
	return seat, nil
}

type CheckInCommand struct {
	StaffID string
	Code    string
	TxRef   string
}

// CheckInUseCase consumes a SOLD ticket at the gate. A ticket is admitted at
// most once; a concurrent second attempt loses the SOLD -> USED swap.
type CheckInUseCase struct {
	gate      *gate
	publisher common.EventPublisher
}

func NewCheckInUseCase(
	eventRepo event.Repository,
	staffRepo event.StaffRepository,
	ticketRepo ticket.Repository,
	customerRepo customer.Repository,
	issuer TicketCodeIssuer,
	publisher common.EventPublisher,
	logger logger.Interface,
) *CheckInUseCase {
	return &CheckInUseCase{
		gate: &gate{
			eventRepo:    eventRepo,
			staffRepo:    staffRepo,
			ticketRepo:   ticketRepo,
			customerRepo: customerRepo,
			issuer:       issuer,
			logger:       logger,
		},
		publisher: publisher,
	}
}

func (uc *CheckInUseCase) Execute(ctx context.Context, cmd CheckInCommand) (*commondto.TicketDTO, error) {
	log := uc.gate.logger
	now := biztime.NowUTC()

	seat, err := uc.gate.admit(ctx, cmd.Code, cmd.StaffID, now)
	if err != nil {
		log.Warnw("check-in rejected", "staff_id", cmd.StaffID, "error", err)
		return nil, err
	}

	customerID := *seat.OwnerID()
	if err := seat.CheckIn(cmd.StaffID, cmd.TxRef, now); err != nil {
		return nil, err
	}
	if err := uc.gate.ticketRepo.CompareAndSwap(ctx, seat, tvo.StatusSold); err != nil {
		log.Warnw("check-in lost a race", "ticket_id", seat.ID(), "staff_id", cmd.StaffID, "error", err)
		return nil, err
	}

	log.Infow("ticket checked in", "ticket_id", seat.ID(), "staff_id", cmd.StaffID, "tx_ref", cmd.TxRef)
	common.PublishAll(ctx, uc.publisher, log, events.TicketCheckedIn{
		Header:     events.NewHeader(),
		TicketID:   seat.ID(),
		EventID:    seat.EventID(),
		CustomerID: customerID,
		StaffID:    cmd.StaffID,
	})
	return commondto.ToTicketDTO(seat), nil
}

type VerifyCheckInQuery struct {
	StaffID string
	Code    string
}

// VerifyCheckInUseCase runs the check-in admission checks without consuming
// the ticket.
type VerifyCheckInUseCase struct {
	gate *gate
}

func NewVerifyCheckInUseCase(
	eventRepo event.Repository,
	staffRepo event.StaffRepository,
	ticketRepo ticket.Repository,
	customerRepo customer.Repository,
	issuer TicketCodeIssuer,
	logger logger.Interface,
) *VerifyCheckInUseCase {
	return &VerifyCheckInUseCase{gate: &gate{
		eventRepo:    eventRepo,
		staffRepo:    staffRepo,
		ticketRepo:   ticketRepo,
		customerRepo: customerRepo,
		issuer:       issuer,
		logger:       logger,
	}}
}

func (uc *VerifyCheckInUseCase) Execute(ctx context.Context, query VerifyCheckInQuery) (*commondto.TicketDTO, error) {
	seat, err := uc.gate.admit(ctx, query.Code, query.StaffID, biztime.NowUTC())
	if err != nil {
		return nil, err
	}
	return commondto.ToTicketDTO(seat), nil
}
