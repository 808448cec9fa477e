package usecases

import (
	"context"
	"fmt"

	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/application/common"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/domain/event"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/domain/order"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/domain/ticket"
	tvo "github.com/SportsX-xyz/sportsx-ticket-backend/internal/domain/ticket/valueobjects"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/shared/db"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/shared/errors"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/shared/logger"
)

type DeleteEventCommand struct {
	OrganizerID string
	EventID     string
}

// DeleteEventUseCase removes a DRAFT event together with its ticket types,
// tickets, orders and staff.
type DeleteEventUseCase struct {
	eventRepo      event.Repository
	ticketTypeRepo event.TicketTypeRepository
	staffRepo      event.StaffRepository
	ticketRepo     ticket.Repository
	orderRepo      order.Repository
	txManager      db.Transactor
	logger         logger.Interface
}

func NewDeleteEventUseCase(
	eventRepo event.Repository,
	ticketTypeRepo event.TicketTypeRepository,
	staffRepo event.StaffRepository,
	ticketRepo ticket.Repository,
	orderRepo order.Repository,
	txManager db.Transactor,
	logger logger.Interface,
) *DeleteEventUseCase {
	return &DeleteEventUseCase{
		eventRepo:      eventRepo,
		ticketTypeRepo: ticketTypeRepo,
		staffRepo:      staffRepo,
		ticketRepo:     ticketRepo,
		orderRepo:      orderRepo,
		txManager:      txManager,
		logger:         logger,
	}
}

func (uc *DeleteEventUseCase) Execute(ctx context.Context, cmd DeleteEventCommand) error {
	e, err := common.LoadOwnedEvent(ctx, uc.eventRepo, cmd.OrganizerID, cmd.EventID)
	if err != nil {
		return err
	}
	if err := e.AssertDeletable(); err != nil {
		return err
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		inMarket, err := uc.ticketRepo.CountByEvent(txCtx, e.ID(), tvo.MarketStatuses...)
		if err != nil {
			return fmt.Errorf("failed to count market tickets: %w", err)
		}
		if inMarket > 0 {
			return errors.NewConstraintViolationError(
				fmt.Sprintf("event has %d tickets in the marketplace", inMarket),
				"event_id="+e.ID(),
			)
		}

		if err := uc.ticketRepo.DeleteByEvent(txCtx, e.ID()); err != nil {
			return fmt.Errorf("failed to delete tickets: %w", err)
		}
		if err := uc.orderRepo.DeleteByEvent(txCtx, e.ID()); err != nil {
			return fmt.Errorf("failed to delete orders: %w", err)
		}
		if err := uc.ticketTypeRepo.DeleteByEvent(txCtx, e.ID()); err != nil {
			return fmt.Errorf("failed to delete ticket types: %w", err)
		}
		if err := uc.staffRepo.DeleteByEvent(txCtx, e.ID()); err != nil {
			return fmt.Errorf("failed to delete staff: %w", err)
		}
		if err := uc.eventRepo.Delete(txCtx, e.ID()); err != nil {
			return fmt.Errorf("failed to delete event: %w", err)
		}
		return nil
	})
	if err != nil {
		uc.logger.Warnw("event deletion failed", "event_id", e.ID(), "error", err)
		return err
	}

	uc.logger.Infow("event deleted", "event_id", e.ID())
	return nil
}
