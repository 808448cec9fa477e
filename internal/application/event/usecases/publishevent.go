package usecases

import (
	"context"
	"fmt"

	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/application/common"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/application/event/dto"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/domain/event"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/domain/shared/events"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/shared/biztime"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/shared/logger"
)

type PublishEventCommand struct {
	OrganizerID string
	EventID     string
}

// PublishEventUseCase moves a PREVIEW event to ACTIVE. ACTIVE is
// irreversible.
type PublishEventUseCase struct {
	eventRepo event.Repository
	publisher common.EventPublisher
	logger    logger.Interface
}

func NewPublishEventUseCase(
	eventRepo event.Repository,
	publisher common.EventPublisher,
	logger logger.Interface,
) *PublishEventUseCase {
	return &PublishEventUseCase{
		eventRepo: eventRepo,
		publisher: publisher,
		logger:    logger,
	}
}

func (uc *PublishEventUseCase) Execute(ctx context.Context, cmd PublishEventCommand) (*dto.EventDTO, error) {
	e, err := common.LoadOwnedEvent(ctx, uc.eventRepo, cmd.OrganizerID, cmd.EventID)
	if err != nil {
		return nil, err
	}

	if err := e.Publish(); err != nil {
		return nil, err
	}
	if err := uc.eventRepo.Update(ctx, e); err != nil {
		uc.logger.Errorw("failed to save published event", "event_id", e.ID(), "error", err)
		return nil, fmt.Errorf("failed to update event: %w", err)
	}

	uc.logger.Infow("event published", "event_id", e.ID())
	common.PublishAll(ctx, uc.publisher, uc.logger, events.EventPublished{
		Header:      events.NewHeader(),
		EventID:     e.ID(),
		OrganizerID: e.OrganizerID(),
	})
	return dto.ToEventDTO(e, biztime.NowUTC()), nil
}

type DisableEventCommand struct {
	OrganizerID string
	EventID     string
}

type DisableEventUseCase struct {
	eventRepo event.Repository
	logger    logger.Interface
}

func NewDisableEventUseCase(eventRepo event.Repository, logger logger.Interface) *DisableEventUseCase {
	return &DisableEventUseCase{eventRepo: eventRepo, logger: logger}
}

func (uc *DisableEventUseCase) Execute(ctx context.Context, cmd DisableEventCommand) (*dto.EventDTO, error) {
	e, err := common.LoadOwnedEvent(ctx, uc.eventRepo, cmd.OrganizerID, cmd.EventID)
	if err != nil {
		return nil, err
	}

	if err := e.Disable(); err != nil {
		return nil, err
	}
	if err := uc.eventRepo.Update(ctx, e); err != nil {
		uc.logger.Errorw("failed to save disabled event", "event_id", e.ID(), "error", err)
		return nil, fmt.Errorf("failed to update event: %w", err)
	}

	uc.logger.Infow("event disabled", "event_id", e.ID())
	return dto.ToEventDTO(e, biztime.NowUTC()), nil
}
