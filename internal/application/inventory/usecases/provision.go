package usecases

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/application/common"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/application/inventory/dto"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/domain/event"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/domain/shared/events"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/domain/ticket"
	tvo "github.com/SportsX-xyz/sportsx-ticket-backend/internal/domain/ticket/valueobjects"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/shared/errors"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/shared/logger"
)

type SeatInput struct {
	Row    int
	Column int
	Status string
	Name   string
	Price  decimal.Decimal
}

type ProvisionSeatsCommand struct {
	OrganizerID  string
	EventID      string
	TicketTypeID string
	Seats        []SeatInput
}

// ProvisionSeatsUseCase materializes seats under a ticket type in one bulk
// insert. Coordinates already taken within the type are skipped.
type ProvisionSeatsUseCase struct {
	eventRepo      event.Repository
	ticketTypeRepo event.TicketTypeRepository
	ticketRepo     ticket.Repository
	publisher      common.EventPublisher
	logger         logger.Interface
}

func NewProvisionSeatsUseCase(
	eventRepo event.Repository,
	ticketTypeRepo event.TicketTypeRepository,
	ticketRepo ticket.Repository,
	publisher common.EventPublisher,
	logger logger.Interface,
) *ProvisionSeatsUseCase {
	return &ProvisionSeatsUseCase{
		eventRepo:      eventRepo,
		ticketTypeRepo: ticketTypeRepo,
		ticketRepo:     ticketRepo,
		publisher:      publisher,
		logger:         logger,
	}
}

func (uc *ProvisionSeatsUseCase) Execute(ctx context.Context, cmd ProvisionSeatsCommand) (*dto.ProvisionResultDTO, error) {
	if len(cmd.Seats) == 0 {
		return nil, errors.NewValidationError("at least one seat is required")
	}

	e, err := common.LoadOwnedEvent(ctx, uc.eventRepo, cmd.OrganizerID, cmd.EventID)
	if err != nil {
		return nil, err
	}
	if err := e.AssertInventoryMutable(); err != nil {
		return nil, err
	}
	tt, err := common.LoadTicketType(ctx, uc.ticketTypeRepo, e.ID(), cmd.TicketTypeID)
	if err != nil {
		return nil, err
	}

	seats := make([]*ticket.Ticket, 0, len(cmd.Seats))
	for _, input := range cmd.Seats {
		status := tvo.TicketStatus(input.Status)
		if !status.IsConfigurable() {
			continue
		}
		seat, err := ticket.NewSeat(
			e.ID(),
			tt.ID(),
			ticket.SeatSpec{
				Row:    input.Row,
				Column: input.Column,
				Status: status,
				Name:   input.Name,
				Price:  input.Price,
			},
			tt.PriceFor(input.Price),
			e.SaleStartTime(),
			e.SaleEndTime(),
		)
		if err != nil {
			return nil, err
		}
		seats = append(seats, seat)
	}

	var created int64
	if len(seats) > 0 {
		created, err = uc.ticketRepo.BulkInsertIgnoringConflicts(ctx, seats)
		if err != nil {
			uc.logger.Errorw("failed to provision seats", "ticket_type_id", tt.ID(), "error", err)
			return nil, fmt.Errorf("failed to provision seats: %w", err)
		}
	}
	skipped := int64(len(cmd.Seats)) - created

	uc.logger.Infow("seats provisioned",
		"event_id", e.ID(),
		"ticket_type_id", tt.ID(),
		"created", created,
		"skipped", skipped,
	)
	common.PublishAll(ctx, uc.publisher, uc.logger, events.SeatsProvisioned{
		Header:       events.NewHeader(),
		EventID:      e.ID(),
		TicketTypeID: tt.ID(),
		Created:      created,
		Skipped:      skipped,
	})

	return &dto.ProvisionResultDTO{
		TicketTypeID: tt.ID(),
		Created:      created,
		Skipped:      skipped,
	}, nil
}
