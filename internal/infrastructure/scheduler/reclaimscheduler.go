package scheduler

import (
	"context"
	"sync"
	"time"

	orderUsecases "github.com/SportsX-xyz/sportsx-ticket-backend/internal/application/order/usecases"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/infrastructure/metrics"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/shared/biztime"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/shared/goroutine"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/shared/logger"
)

const reclaimRunTimeout = 30 * time.Second

// ReclaimScheduler periodically abandons stale OPEN orders and releases
// their seats.
type ReclaimScheduler struct {
	reclaimUC orderUsecases.ReclaimOrdersExecutor
	logger    logger.Interface
	stopChan  chan struct{}
	stopOnce  sync.Once
	wg        sync.WaitGroup
	interval  time.Duration
	now       func() time.Time
}

func NewReclaimScheduler(
	reclaimUC orderUsecases.ReclaimOrdersExecutor,
	interval time.Duration,
	logger logger.Interface,
) *ReclaimScheduler {
	return &ReclaimScheduler{
		reclaimUC: reclaimUC,
		logger:    logger,
		stopChan:  make(chan struct{}),
		interval:  interval,
		now:       biztime.NowUTC,
	}
}

// Start starts the scheduler
func (s *ReclaimScheduler) Start(ctx context.Context) {
	s.logger.Infow("starting order reclaim scheduler", "interval", s.interval)

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.runLoop(ctx)
	}()
}

// Stop stops the scheduler and waits for an in-flight run to finish.
func (s *ReclaimScheduler) Stop() {
	s.stopOnce.Do(func() {
		s.logger.Infow("stopping order reclaim scheduler")
		close(s.stopChan)
		s.wg.Wait()
		s.logger.Infow("order reclaim scheduler stopped")
	})
}

func (s *ReclaimScheduler) runLoop(ctx context.Context) {
	s.reclaim(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Infow("order reclaim scheduler stopped due to context cancellation")
			return
		case <-s.stopChan:
			return
		case <-ticker.C:
			s.reclaim(ctx)
		}
	}
}

func (s *ReclaimScheduler) reclaim(ctx context.Context) {
	defer goroutine.Recover(s.logger, "order-reclaim")

	runCtx, cancel := context.WithTimeout(ctx, reclaimRunTimeout)
	defer cancel()

	startTime := time.Now()
	count, err := s.reclaimUC.Execute(runCtx, s.now())
	if err != nil {
		metrics.ReclaimRuns.WithLabelValues("error").Inc()
		s.logger.Errorw("failed to reclaim stale orders",
			"error", err,
			"duration", time.Since(startTime),
		)
		return
	}

	metrics.ReclaimRuns.WithLabelValues("ok").Inc()
	if count > 0 {
		s.logger.Infow("stale orders reclaimed",
			"count", count,
			"duration", time.Since(startTime),
		)
	} else {
		s.logger.Debugw("no stale orders to reclaim", "duration", time.Since(startTime))
	}
}
