package usecases

import (
	"context"
	"fmt"

	"github.com/samber/lo"

	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/application/common"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/application/event/dto"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/domain/event"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/shared/biztime"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/shared/logger"
)

type GetEventQuery struct {
	OrganizerID string
	EventID     string
}

type GetEventUseCase struct {
	eventRepo event.Repository
	logger    logger.Interface
}

func NewGetEventUseCase(eventRepo event.Repository, logger logger.Interface) *GetEventUseCase {
	return &GetEventUseCase{eventRepo: eventRepo, logger: logger}
}

func (uc *GetEventUseCase) Execute(ctx context.Context, query GetEventQuery) (*dto.EventDTO, error) {
	e, err := common.LoadOwnedEvent(ctx, uc.eventRepo, query.OrganizerID, query.EventID)
	if err != nil {
		return nil, err
	}
	return dto.ToEventDTO(e, biztime.NowUTC()), nil
}

type ListEventsQuery struct {
	OrganizerID string
}

type ListEventsUseCase struct {
	eventRepo event.Repository
	logger    logger.Interface
}

func NewListEventsUseCase(eventRepo event.Repository, logger logger.Interface) *ListEventsUseCase {
	return &ListEventsUseCase{eventRepo: eventRepo, logger: logger}
}

func (uc *ListEventsUseCase) Execute(ctx context.Context, query ListEventsQuery) ([]*dto.EventDTO, error) {
	events, err := uc.eventRepo.ListByOrganizer(ctx, query.OrganizerID)
	if err != nil {
		uc.logger.Errorw("failed to list organizer events", "organizer_id", query.OrganizerID, "error", err)
		return nil, fmt.Errorf("failed to list events: %w", err)
	}

	now := biztime.NowUTC()
	return lo.Map(events, func(e *event.Event, _ int) *dto.EventDTO {
		return dto.ToEventDTO(e, now)
	}), nil
}
