package usecases

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/application/common"
	commondto "github.com/SportsX-xyz/sportsx-ticket-backend/internal/application/common/dto"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/domain/event"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/domain/order"
	ovo "github.com/SportsX-xyz/sportsx-ticket-backend/internal/domain/order/valueobjects"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/domain/shared/events"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/domain/ticket"
	tvo "github.com/SportsX-xyz/sportsx-ticket-backend/internal/domain/ticket/valueobjects"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/shared/biztime"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/shared/db"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/shared/errors"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/shared/logger"
)

type PayOrderCommand struct {
	BuyerID string
	OrderID string
	TxHash  string
}

// PayOrderUseCase settles an OPEN order once the ledger confirms the buyer's
// transaction. It is the only path that hands a seat to a buyer, and repeated
// calls for a settled order return the settled order.
type PayOrderUseCase struct {
	eventRepo  event.Repository
	ticketRepo ticket.Repository
	orderRepo  order.Repository
	ledger     SettlementLedger
	txManager  db.Transactor
	publisher  common.EventPublisher
	releaser   *seatReleaser
	logger     logger.Interface
}

func NewPayOrderUseCase(
	eventRepo event.Repository,
	ticketRepo ticket.Repository,
	orderRepo order.Repository,
	ledger SettlementLedger,
	txManager db.Transactor,
	publisher common.EventPublisher,
	logger logger.Interface,
) *PayOrderUseCase {
	return &PayOrderUseCase{
		eventRepo:  eventRepo,
		ticketRepo: ticketRepo,
		orderRepo:  orderRepo,
		ledger:     ledger,
		txManager:  txManager,
		publisher:  publisher,
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

func (uc *PayOrderUseCase) Execute(ctx context.Context, cmd PayOrderCommand) (*commondto.OrderDTO, error) {
	if strings.TrimSpace(cmd.TxHash) == "" {
		return nil, errors.NewValidationError("transaction hash is required")
	}

	o, err := common.LoadOrder(ctx, uc.orderRepo, cmd.OrderID)
	if err != nil {
		return nil, err
	}
	if o.BuyerID() != cmd.BuyerID {
		return nil, errors.NewForbiddenError("order belongs to another customer", "order_id="+o.ID())
	}

	switch o.Status() {
	case ovo.OrderStatusTransfered:
		return commondto.ToOrderDTO(o), nil
	case ovo.OrderStatusAbandoned:
		return nil, errors.NewInvalidTransitionError("order is ABANDONED, cannot pay", "order_id="+o.ID())
	}

	seat, err := common.LoadTicket(ctx, uc.ticketRepo, o.TicketID())
	if err != nil {
		return nil, err
	}
	e, err := common.LoadEvent(ctx, uc.eventRepo, o.EventID())
	if err != nil {
		return nil, err
	}

	if err := seat.AssertCanSettle(o.IsResale(), e.MaxResaleTimes()); err != nil {
		uc.logger.Warnw("resale cap reached, releasing seat", "order_id", o.ID(), "ticket_id", seat.ID())
		if releaseErr := uc.releaser.release(ctx, o, events.AbandonReasonResaleCap); releaseErr != nil {
			uc.logger.Errorw("failed to release seat after cap violation", "order_id", o.ID(), "error", releaseErr)
		}
		return nil, err
	}

	settlement := o.Settlement()
	if settlement == nil {
		return nil, errors.NewInvalidTransitionError("order has no settlement authorization", "order_id="+o.ID())
	}

	confirmation, err := uc.ledger.Confirm(ctx, cmd.TxHash, settlement.Nonce)
	if err != nil {
		uc.logger.Errorw("ledger confirmation failed", "order_id", o.ID(), "tx_hash", cmd.TxHash, "error", err)
		return nil, errors.NewExternalDependencyError("settlement ledger unavailable", err.Error())
	}
	if confirmation == nil || !confirmation.Success {
		uc.logger.Warnw("transaction not confirmed by ledger", "order_id", o.ID(), "tx_hash", cmd.TxHash)
		return nil, errors.NewExternalDependencyError("transaction is not confirmed", "tx_hash="+cmd.TxHash)
	}

	fee := decimal.Zero
	if o.IsResale() {
		fee = order.Fee(o.Price(), e.ResaleFeeRate())
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		now := biztime.NowUTC()
		if err := o.MarkPaid(cmd.TxHash, now); err != nil {
			return err
		}
		if err := o.MarkTransfered(fee, now); err != nil {
			return err
		}
		if err := uc.orderRepo.CompareAndSwap(txCtx, o, ovo.OrderStatusOpen); err != nil {
			return err
		}
		if err := seat.Settle(o.BuyerID(), o.ID(), o.IsResale(), e.MaxResaleTimes()); err != nil {
			return err
		}
		return uc.ticketRepo.CompareAndSwap(txCtx, seat, tvo.StatusLock)
	})
	if err != nil {
		if errors.IsInvalidTransitionError(err) {
			// A concurrent call may have settled the order first.
			if current, loadErr := common.LoadOrder(ctx, uc.orderRepo, o.ID()); loadErr == nil &&
				current.Status() == ovo.OrderStatusTransfered {
				return commondto.ToOrderDTO(current), nil
			}
		}
		uc.logger.Errorw("failed to settle order", "order_id", o.ID(), "error", err)
		return nil, err
	}

	uc.logger.Infow("order settled",
		"order_id", o.ID(),
		"ticket_id", seat.ID(),
		"buyer_id", o.BuyerID(),
		"fee", fee.String(),
	)
	common.PublishAll(ctx, uc.publisher, uc.logger, events.TicketSold{
		Header:   events.NewHeader(),
		TicketID: seat.ID(),
		EventID:  e.ID(),
		OrderID:  o.ID(),
		BuyerID:  o.BuyerID(),
		SellerID: o.SellerID(),
		Price:    o.Price().String(),
		Fee:      fee.String(),
		TxHash:   cmd.TxHash,
	})
	return commondto.ToOrderDTO(o), nil
}
