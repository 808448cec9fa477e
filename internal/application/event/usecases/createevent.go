package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/application/common"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/application/event/dto"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/domain/customer"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/domain/event"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/shared/biztime"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/shared/logger"
)

// EventFields are the organizer-editable fields of an event. Nil market
// settings fall back to the organizer's defaults on create and to the
// current values on update.
type EventFields struct {
	Name              string
	Address           string
	Description       string
	Avatar            string
	StartTime         time.Time
	EndTime           time.Time
	TicketReleaseTime time.Time
	StopSaleBefore    int
	ResaleFeeRate     *decimal.Decimal
	MaxResaleTimes    *int
}

func (f EventFields) details() event.Details {
	return event.Details{
		Name:              f.Name,
		Address:           f.Address,
		Description:       f.Description,
		Avatar:            f.Avatar,
		StartTime:         f.StartTime.UTC(),
		EndTime:           f.EndTime.UTC(),
		TicketReleaseTime: f.TicketReleaseTime.UTC(),
		StopSaleBefore:    f.StopSaleBefore,
	}
}

func (f EventFields) settings(fallback event.MarketSettings) event.MarketSettings {
	s := fallback
	if f.ResaleFeeRate != nil {
		s.ResaleFeeRate = *f.ResaleFeeRate
	}
	if f.MaxResaleTimes != nil {
		s.MaxResaleTimes = *f.MaxResaleTimes
	}
	return s
}

type CreateEventCommand struct {
	OrganizerID string
	EventFields
}

type CreateEventUseCase struct {
	eventRepo    event.Repository
	customerRepo customer.Repository
	logger       logger.Interface
}

func NewCreateEventUseCase(
	eventRepo event.Repository,
	customerRepo customer.Repository,
	logger logger.Interface,
) *CreateEventUseCase {
	return &CreateEventUseCase{
		eventRepo:    eventRepo,
		customerRepo: customerRepo,
		logger:       logger,
	}
}

func (uc *CreateEventUseCase) Execute(ctx context.Context, cmd CreateEventCommand) (*dto.EventDTO, error) {
	organizer, err := common.LoadOrganizer(ctx, uc.customerRepo, cmd.OrganizerID)
	if err != nil {
		return nil, err
	}

	defaults := organizer.Defaults()
	settings := cmd.settings(event.MarketSettings{
		ResaleFeeRate:  defaults.ResaleFeeRate,
		MaxResaleTimes: defaults.MaxResaleTimes,
	})

	e, err := event.NewEvent(organizer.ID(), cmd.details(), settings)
	if err != nil {
		return nil, err
	}

	if err := uc.eventRepo.Create(ctx, e); err != nil {
		uc.logger.Errorw("failed to create event", "organizer_id", organizer.ID(), "error", err)
		return nil, fmt.Errorf("failed to create event: %w", err)
	}

	uc.logger.Infow("event created", "event_id", e.ID(), "organizer_id", organizer.ID())
	return dto.ToEventDTO(e, biztime.NowUTC()), nil
}
