package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/application/common"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/application/event/dto"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/domain/event"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/shared/biztime"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/shared/errors"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/shared/logger"
)

type PreviewEventCommand struct {
	OrganizerID string
	EventID     string
}

type PreviewEventUseCase struct {
	eventRepo event.Repository
	publisher ArtifactPublisher
	logger    logger.Interface
}

func NewPreviewEventUseCase(
	eventRepo event.Repository,
	publisher ArtifactPublisher,
	logger logger.Interface,
) *PreviewEventUseCase {
	return &PreviewEventUseCase{
		eventRepo: eventRepo,
		publisher: publisher,
		logger:    logger,
	}
}

func (uc *PreviewEventUseCase) Execute(ctx context.Context, cmd PreviewEventCommand) (*dto.EventDTO, error) {
	e, err := common.LoadOwnedEvent(ctx, uc.eventRepo, cmd.OrganizerID, cmd.EventID)
	if err != nil {
		return nil, err
	}

	// Check before pinning so a rejected move never leaves an orphan artifact.
	if err := e.AssertPreviewable(); err != nil {
		return nil, err
	}

	uri, err := uc.publisher.PublishEventMetadata(ctx, metadataFor(e))
	if err != nil {
		uc.logger.Errorw("failed to publish event metadata", "event_id", e.ID(), "error", err)
		return nil, errors.NewExternalDependencyError("failed to publish event metadata", err.Error())
	}

	if err := e.MarkPreviewed(uri); err != nil {
		return nil, err
	}
	if err := uc.eventRepo.Update(ctx, e); err != nil {
		uc.logger.Errorw("failed to save previewed event", "event_id", e.ID(), "error", err)
		return nil, fmt.Errorf("failed to update event: %w", err)
	}

	uc.logger.Infow("event moved to preview", "event_id", e.ID(), "artifact_uri", uri)
	return dto.ToEventDTO(e, biztime.NowUTC()), nil
}

func metadataFor(e *event.Event) EventMetadata {
	d := e.Details()
	return EventMetadata{
		Name:        d.Name,
		Description: d.Description,
		Image:       d.Avatar,
		Attributes: map[string]string{
			"event_id":            e.ID(),
			"address":             d.Address,
			"start_time":          d.StartTime.Format(time.RFC3339),
			"end_time":            d.EndTime.Format(time.RFC3339),
			"ticket_release_time": d.TicketReleaseTime.Format(time.RFC3339),
		},
	}
}
