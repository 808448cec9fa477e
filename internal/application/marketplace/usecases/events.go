package usecases

import (
	"context"
	"fmt"

	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/application/common"
	commondto "github.com/SportsX-xyz/sportsx-ticket-backend/internal/application/common/dto"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/application/marketplace/dto"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/domain/event"
	evo "github.com/SportsX-xyz/sportsx-ticket-backend/internal/domain/event/valueobjects"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/domain/ticket"
	tvo "github.com/SportsX-xyz/sportsx-ticket-backend/internal/domain/ticket/valueobjects"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/shared/biztime"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/shared/errors"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/shared/logger"
)

// ListMarketEventsUseCase lists PREVIEW and ACTIVE events with their seat counts.
type ListMarketEventsUseCase struct {
	eventRepo  event.Repository
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewListMarketEventsUseCase(eventRepo event.Repository, ticketRepo ticket.Repository, logger logger.Interface) *ListMarketEventsUseCase {
	return &ListMarketEventsUseCase{eventRepo: eventRepo, ticketRepo: ticketRepo, logger: logger}
}

func (uc *ListMarketEventsUseCase) Execute(ctx context.Context) ([]*dto.MarketEventDTO, error) {
	list, err := uc.eventRepo.ListByStatus(ctx, evo.EventStatusPreview, evo.EventStatusActive)
	if err != nil {
		uc.logger.Errorw("failed to list market events", "error", err)
		return nil, fmt.Errorf("failed to list market events: %w", err)
	}

	now := biztime.NowUTC()
	result := make([]*dto.MarketEventDTO, 0, len(list))
	for _, e := range list {
		summary, err := summarize(ctx, uc.ticketRepo, e.ID())
		if err != nil {
			uc.logger.Errorw("failed to summarize market event", "event_id", e.ID(), "error", err)
			return nil, err
		}
		result = append(result, dto.ToMarketEventDTO(e, summary, now))
	}
	return result, nil
}

type GetMarketEventUseCase struct {
	eventRepo  event.Repository
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewGetMarketEventUseCase(eventRepo event.Repository, ticketRepo ticket.Repository, logger logger.Interface) *GetMarketEventUseCase {
	return &GetMarketEventUseCase{eventRepo: eventRepo, ticketRepo: ticketRepo, logger: logger}
}

func (uc *GetMarketEventUseCase) Execute(ctx context.Context, eventID string) (*dto.MarketEventDTO, error) {
	e, err := loadListedEvent(ctx, uc.eventRepo, eventID)
	if err != nil {
		return nil, err
	}
	summary, err := summarize(ctx, uc.ticketRepo, e.ID())
	if err != nil {
		uc.logger.Errorw("failed to summarize market event", "event_id", e.ID(), "error", err)
		return nil, err
	}
	return dto.ToMarketEventDTO(e, summary, biztime.NowUTC()), nil
}

// ListEventSeatsUseCase returns the seat map of an ACTIVE event while its
// sale window is open. Removed seats are omitted.
type ListEventSeatsUseCase struct {
	eventRepo  event.Repository
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewListEventSeatsUseCase(eventRepo event.Repository, ticketRepo ticket.Repository, logger logger.Interface) *ListEventSeatsUseCase {
	return &ListEventSeatsUseCase{eventRepo: eventRepo, ticketRepo: ticketRepo, logger: logger}
}

func (uc *ListEventSeatsUseCase) Execute(ctx context.Context, eventID string) ([]*commondto.TicketDTO, error) {
	e, err := loadListedEvent(ctx, uc.eventRepo, eventID)
	if err != nil {
		return nil, err
	}
	if e.Status() != evo.EventStatusActive {
		return nil, errors.NewInvalidTransitionError(
			fmt.Sprintf("event is %s, seats are not listed yet", e.Status()),
			"event_id="+e.ID(),
		)
	}
	if !biztime.NowUTC().Before(e.SaleEndTime()) {
		return nil, errors.NewExpiredError("ticket sale has stopped", "event_id="+e.ID())
	}

	seats, err := uc.ticketRepo.ListByEvent(ctx, e.ID(),
		tvo.StatusNew, tvo.StatusNotForSale, tvo.StatusLock, tvo.StatusSold, tvo.StatusResale, tvo.StatusUsed)
	if err != nil {
		return nil, fmt.Errorf("failed to list seats: %w", err)
	}
	return commondto.ToTicketDTOs(seats), nil
}

// loadListedEvent hides DRAFT and DISABLED events from the marketplace.
func loadListedEvent(ctx context.Context, repo event.Repository, eventID string) (*event.Event, error) {
	e, err := common.LoadEvent(ctx, repo, eventID)
	if err != nil {
		return nil, err
	}
	if !e.Status().IsListed() {
		return nil, errors.NewNotFoundError("event not found", "event_id="+eventID)
	}
	return e, nil
}
