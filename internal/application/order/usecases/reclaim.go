package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/application/common"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/domain/order"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/domain/shared/events"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/domain/ticket"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/shared/db"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/shared/logger"
)

const reclaimBatchSize = 100

// ReclaimOrdersUseCase abandons OPEN orders older than reclaimAfter and
// releases their seats. Settlement artifacts expire before an order becomes
// reclaimable.
type ReclaimOrdersUseCase struct {
	orderRepo    order.Repository
	reclaimAfter time.Duration
	releaser     *seatReleaser
	logger       logger.Interface
}

func NewReclaimOrdersUseCase(
	ticketRepo ticket.Repository,
	orderRepo order.Repository,
	txManager db.Transactor,
	publisher common.EventPublisher,
	reclaimAfter time.Duration,
	logger logger.Interface,
) *ReclaimOrdersUseCase {
	return &ReclaimOrdersUseCase{
		orderRepo:    orderRepo,
		reclaimAfter: reclaimAfter,
		releaser: &seatReleaser{
			ticketRepo: ticketRepo,
			orderRepo:  orderRepo,
			txManager:  txManager,
			publisher:  publisher,
			logger:     logger,
		},
		logger: logger,
	}
}

// Execute returns the number of orders reclaimed. A failure on one order is
// logged and does not stop the batch.
func (uc *ReclaimOrdersUseCase) Execute(ctx context.Context, now time.Time) (int, error) {
	stale, err := uc.orderRepo.ListStaleOpen(ctx, now.Add(-uc.reclaimAfter), reclaimBatchSize)
	if err != nil {
		uc.logger.Errorw("failed to list stale orders", "error", err)
		return 0, fmt.Errorf("failed to list stale orders: %w", err)
	}

	reclaimed := 0
	for _, o := range stale {
		if err := ctx.Err(); err != nil {
			return reclaimed, err
		}
		if err := uc.releaser.release(ctx, o, events.AbandonReasonStale); err != nil {
			uc.logger.Warnw("failed to reclaim order", "order_id", o.ID(), "error", err)
			continue
		}
		reclaimed++
	}

	if reclaimed > 0 {
		uc.logger.Infow("stale orders reclaimed", "count", reclaimed)
	}
	return reclaimed, nil
}
