package usecases

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/application/common"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/application/inventory/dto"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/domain/event"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/domain/ticket"
	tvo "github.com/SportsX-xyz/sportsx-ticket-backend/internal/domain/ticket/valueobjects"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/shared/db"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/shared/errors"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/shared/logger"
)

type AddTicketTypeCommand struct {
	OrganizerID string
	EventID     string
	TierName    string
	TierPrice   decimal.Decimal
	Color       string
}

type AddTicketTypeUseCase struct {
	eventRepo      event.Repository
	ticketTypeRepo event.TicketTypeRepository
	logger         logger.Interface
}

func NewAddTicketTypeUseCase(
	eventRepo event.Repository,
	ticketTypeRepo event.TicketTypeRepository,
	logger logger.Interface,
) *AddTicketTypeUseCase {
	return &AddTicketTypeUseCase{
		eventRepo:      eventRepo,
		ticketTypeRepo: ticketTypeRepo,
		logger:         logger,
	}
}

func (uc *AddTicketTypeUseCase) Execute(ctx context.Context, cmd AddTicketTypeCommand) (*dto.TicketTypeDTO, error) {
	e, err := common.LoadOwnedEvent(ctx, uc.eventRepo, cmd.OrganizerID, cmd.EventID)
	if err != nil {
		return nil, err
	}
	if err := e.AssertInventoryMutable(); err != nil {
		return nil, err
	}

	tt, err := event.NewTicketType(e.ID(), cmd.TierName, cmd.TierPrice, cmd.Color)
	if err != nil {
		return nil, err
	}
	if err := uc.ticketTypeRepo.Create(ctx, tt); err != nil {
		uc.logger.Errorw("failed to create ticket type", "event_id", e.ID(), "error", err)
		return nil, fmt.Errorf("failed to create ticket type: %w", err)
	}

	uc.logger.Infow("ticket type added", "event_id", e.ID(), "ticket_type_id", tt.ID(), "tier", tt.TierName())
	return dto.ToTicketTypeDTO(tt), nil
}

type UpdateTicketTypeCommand struct {
	OrganizerID  string
	EventID      string
	TicketTypeID string
	TierName     string
	TierPrice    decimal.Decimal
	Color        string
}

type UpdateTicketTypeUseCase struct {
	eventRepo      event.Repository
	ticketTypeRepo event.TicketTypeRepository
	logger         logger.Interface
}

func NewUpdateTicketTypeUseCase(
	eventRepo event.Repository,
	ticketTypeRepo event.TicketTypeRepository,
	logger logger.Interface,
) *UpdateTicketTypeUseCase {
	return &UpdateTicketTypeUseCase{
		eventRepo:      eventRepo,
		ticketTypeRepo: ticketTypeRepo,
		logger:         logger,
	}
}

func (uc *UpdateTicketTypeUseCase) Execute(ctx context.Context, cmd UpdateTicketTypeCommand) (*dto.TicketTypeDTO, error) {
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

	if err := tt.Update(cmd.TierName, cmd.TierPrice, cmd.Color); err != nil {
		return nil, err
	}
	if err := uc.ticketTypeRepo.Update(ctx, tt); err != nil {
		uc.logger.Errorw("failed to update ticket type", "ticket_type_id", tt.ID(), "error", err)
		return nil, fmt.Errorf("failed to update ticket type: %w", err)
	}

	uc.logger.Infow("ticket type updated", "ticket_type_id", tt.ID())
	return dto.ToTicketTypeDTO(tt), nil
}

type RemoveTicketTypeCommand struct {
	OrganizerID  string
	EventID      string
	TicketTypeID string
}

// RemoveTicketTypeUseCase deletes a ticket type and its seats, provided none
// of them has entered the marketplace.
type RemoveTicketTypeUseCase struct {
	eventRepo      event.Repository
	ticketTypeRepo event.TicketTypeRepository
	ticketRepo     ticket.Repository
	txManager      db.Transactor
	logger         logger.Interface
}

func NewRemoveTicketTypeUseCase(
	eventRepo event.Repository,
	ticketTypeRepo event.TicketTypeRepository,
	ticketRepo ticket.Repository,
	txManager db.Transactor,
	logger logger.Interface,
) *RemoveTicketTypeUseCase {
	return &RemoveTicketTypeUseCase{
		eventRepo:      eventRepo,
		ticketTypeRepo: ticketTypeRepo,
		ticketRepo:     ticketRepo,
		txManager:      txManager,
		logger:         logger,
	}
}

func (uc *RemoveTicketTypeUseCase) Execute(ctx context.Context, cmd RemoveTicketTypeCommand) error {
	e, err := common.LoadOwnedEvent(ctx, uc.eventRepo, cmd.OrganizerID, cmd.EventID)
	if err != nil {
		return err
	}
	if err := e.AssertInventoryMutable(); err != nil {
		return err
	}
	tt, err := common.LoadTicketType(ctx, uc.ticketTypeRepo, e.ID(), cmd.TicketTypeID)
	if err != nil {
		return err
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		inMarket, err := uc.ticketRepo.CountByTicketType(txCtx, tt.ID(), tvo.MarketStatuses...)
		if err != nil {
			return fmt.Errorf("failed to count market tickets: %w", err)
		}
		if inMarket > 0 {
			return errors.NewConstraintViolationError(
				fmt.Sprintf("ticket type has %d tickets in the marketplace", inMarket),
				"ticket_type_id="+tt.ID(),
			)
		}
		if err := uc.ticketRepo.DeleteByTicketType(txCtx, tt.ID()); err != nil {
			return fmt.Errorf("failed to delete tickets: %w", err)
		}
		if err := uc.ticketTypeRepo.Delete(txCtx, tt.ID()); err != nil {
			return fmt.Errorf("failed to delete ticket type: %w", err)
		}
		return nil
	})
	if err != nil {
		uc.logger.Warnw("ticket type removal failed", "ticket_type_id", tt.ID(), "error", err)
		return err
	}

	uc.logger.Infow("ticket type removed", "event_id", e.ID(), "ticket_type_id", tt.ID())
	return nil
}

type ListTicketTypesQuery struct {
	OrganizerID string
	EventID     string
}

type ListTicketTypesUseCase struct {
	eventRepo      event.Repository
	ticketTypeRepo event.TicketTypeRepository
	ticketRepo     ticket.Repository
	logger         logger.Interface
}

func NewListTicketTypesUseCase(
	eventRepo event.Repository,
	ticketTypeRepo event.TicketTypeRepository,
	ticketRepo ticket.Repository,
	logger logger.Interface,
) *ListTicketTypesUseCase {
	return &ListTicketTypesUseCase{
		eventRepo:      eventRepo,
		ticketTypeRepo: ticketTypeRepo,
		ticketRepo:     ticketRepo,
		logger:         logger,
	}
}

func (uc *ListTicketTypesUseCase) Execute(ctx context.Context, query ListTicketTypesQuery) ([]*dto.TicketTypeDTO, error) {
	e, err := common.LoadOwnedEvent(ctx, uc.eventRepo, query.OrganizerID, query.EventID)
	if err != nil {
		return nil, err
	}

	types, err := uc.ticketTypeRepo.ListByEvent(ctx, e.ID())
	if err != nil {
		return nil, fmt.Errorf("failed to list ticket types: %w", err)
	}

	result := make([]*dto.TicketTypeDTO, 0, len(types))
	for _, tt := range types {
		item := dto.ToTicketTypeDTO(tt)
		if item.Total, err = uc.ticketRepo.CountByTicketType(ctx, tt.ID(), tvo.CountedStatuses...); err != nil {
			return nil, fmt.Errorf("failed to count tickets: %w", err)
		}
		if item.Sold, err = uc.ticketRepo.CountByTicketType(ctx, tt.ID(), tvo.SoldStatuses...); err != nil {
			return nil, fmt.Errorf("failed to count sold tickets: %w", err)
		}
		result = append(result, item)
	}
	return result, nil
}
