package usecases

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/application/marketplace/dto"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/domain/ticket"
	tvo "github.com/SportsX-xyz/sportsx-ticket-backend/internal/domain/ticket/valueobjects"
)

// summarize runs the per-event seat counts concurrently.
func summarize(ctx context.Context, ticketRepo ticket.Repository, eventID string) (dto.InventorySummary, error) {
	var summary dto.InventorySummary
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		summary.TicketsLeft, err = ticketRepo.CountByEvent(gctx, eventID, tvo.StatusNew, tvo.StatusResale)
		return err
	})
	g.Go(func() (err error) {
		summary.TotalTickets, err = ticketRepo.CountByEvent(gctx, eventID, tvo.CountedStatuses...)
		return err
	})
	g.Go(func() (err error) {
		summary.ResaleTicketsLeft, err = ticketRepo.CountByEvent(gctx, eventID, tvo.StatusResale)
		return err
	})
	g.Go(func() (err error) {
		summary.MaxRow, summary.MaxColumn, err = ticketRepo.MaxCoordinates(gctx, eventID)
		return err
	})

	if err := g.Wait(); err != nil {
		return dto.InventorySummary{}, fmt.Errorf("failed to summarize event %s: %w", eventID, err)
	}
	return summary, nil
}
