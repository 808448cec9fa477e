package usecases

import (
	"context"
	"fmt"

	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/application/common"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/domain/order"
	ovo "github.com/SportsX-xyz/sportsx-ticket-backend/internal/domain/order/valueobjects"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/domain/shared/events"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/domain/ticket"
	tvo "github.com/SportsX-xyz/sportsx-ticket-backend/internal/domain/ticket/valueobjects"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/shared/biztime"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/shared/db"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/shared/logger"
)

// seatReleaser abandons an OPEN order and hands its LOCKed seat back to the
// market in one transaction.
type seatReleaser struct {
	ticketRepo ticket.Repository
	orderRepo  order.Repository
	txManager  db.Transactor
	publisher  common.EventPublisher
	logger     logger.Interface
}

func (r *seatReleaser) release(ctx context.Context, o *order.Order, reason string) error {
	err := r.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		seat, err := common.LoadTicket(txCtx, r.ticketRepo, o.TicketID())
		if err != nil {
			return err
		}
		if seat.Status() == tvo.StatusLock {
			if err := seat.Release(o.SellerID()); err != nil {
				return err
			}
			if err := r.ticketRepo.CompareAndSwap(txCtx, seat, tvo.StatusLock); err != nil {
				return err
			}
		}

		if err := o.Abandon(biztime.NowUTC()); err != nil {
			return err
		}
		if err := r.orderRepo.CompareAndSwap(txCtx, o, ovo.OrderStatusOpen); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to release order %s: %w", o.ID(), err)
	}

	r.logger.Infow("order abandoned and seat released",
		"order_id", o.ID(),
		"ticket_id", o.TicketID(),
		"reason", reason,
	)
	common.PublishAll(ctx, r.publisher, r.logger, events.OrderAbandoned{
		Header:   events.NewHeader(),
		OrderID:  o.ID(),
		TicketID: o.TicketID(),
		EventID:  o.EventID(),
		Reason:   reason,
	})
	return nil
}
