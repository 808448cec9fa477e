package usecases

import (
	"context"
	"fmt"

	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/application/common"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/application/event/dto"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/domain/event"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/domain/ticket"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/shared/biztime"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/shared/db"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/shared/logger"
)

type UpdateEventCommand struct {
	OrganizerID string
	EventID     string
	EventFields
}

// UpdateEventUseCase edits a DRAFT event. Seats already provisioned follow
// the new schedule: their sale window is rewritten in the same transaction.
type UpdateEventUseCase struct {
	eventRepo  event.Repository
	ticketRepo ticket.Repository
	txManager  db.Transactor
	logger     logger.Interface
}

func NewUpdateEventUseCase(
	eventRepo event.Repository,
	ticketRepo ticket.Repository,
	txManager db.Transactor,
	logger logger.Interface,
) *UpdateEventUseCase {
	return &UpdateEventUseCase{
		eventRepo:  eventRepo,
		ticketRepo: ticketRepo,
		txManager:  txManager,
		logger:     logger,
	}
}

func (uc *UpdateEventUseCase) Execute(ctx context.Context, cmd UpdateEventCommand) (*dto.EventDTO, error) {
	e, err := common.LoadOwnedEvent(ctx, uc.eventRepo, cmd.OrganizerID, cmd.EventID)
	if err != nil {
		return nil, err
	}

	if err := e.Update(cmd.details(), cmd.settings(e.Settings())); err != nil {
		uc.logger.Warnw("event update rejected", "event_id", e.ID(), "error", err)
		return nil, err
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.eventRepo.Update(txCtx, e); err != nil {
			return err
		}
		return uc.ticketRepo.UpdateSaleWindow(txCtx, e.ID(), e.SaleStartTime(), e.SaleEndTime())
	})
	if err != nil {
		uc.logger.Errorw("failed to update event", "event_id", e.ID(), "error", err)
		return nil, fmt.Errorf("failed to update event: %w", err)
	}

	uc.logger.Infow("event updated", "event_id", e.ID())
	return dto.ToEventDTO(e, biztime.NowUTC()), nil
}
