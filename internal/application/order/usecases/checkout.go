package usecases

import (
	"context"
	"fmt"

	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/application/common"
	commondto "github.com/SportsX-xyz/sportsx-ticket-backend/internal/application/common/dto"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/domain/customer"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/domain/event"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/domain/order"
	ovo "github.com/SportsX-xyz/sportsx-ticket-backend/internal/domain/order/valueobjects"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/domain/shared/events"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/domain/ticket"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/shared/biztime"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/shared/db"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/shared/errors"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/shared/logger"
)

type CheckoutCommand struct {
	BuyerID  string
	TicketID string
}

type CheckoutResult struct {
	Order      *commondto.OrderDTO `json:"order"`
	Settlement *order.Settlement   `json:"settlement"`
}

// CheckoutUseCase locks a seat for a buyer, opens an order and obtains the
// settlement artifact the buyer signs. A ledger failure releases the seat.
type CheckoutUseCase struct {
	eventRepo    event.Repository
	ticketRepo   ticket.Repository
	orderRepo    order.Repository
	customerRepo customer.Repository
	ledger       SettlementLedger
	txManager    db.Transactor
	publisher    common.EventPublisher
	releaser     *seatReleaser
	logger       logger.Interface
}

func NewCheckoutUseCase(
	eventRepo event.Repository,
	ticketRepo ticket.Repository,
	orderRepo order.Repository,
	customerRepo customer.Repository,
	ledger SettlementLedger,
	txManager db.Transactor,
	publisher common.EventPublisher,
	logger logger.Interface,
) *CheckoutUseCase {
	return &CheckoutUseCase{
		eventRepo:    eventRepo,
		ticketRepo:   ticketRepo,
		orderRepo:    orderRepo,
		customerRepo: customerRepo,
		ledger:       ledger,
		txManager:    txManager,
		publisher:    publisher,
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

func (uc *CheckoutUseCase) Execute(ctx context.Context, cmd CheckoutCommand) (*CheckoutResult, error) {
	buyer, err := common.LoadActiveCustomer(ctx, uc.customerRepo, cmd.BuyerID)
	if err != nil {
		return nil, err
	}
	seat, err := common.LoadTicket(ctx, uc.ticketRepo, cmd.TicketID)
	if err != nil {
		return nil, err
	}
	e, err := common.LoadEvent(ctx, uc.eventRepo, seat.EventID())
	if err != nil {
		return nil, err
	}
	if err := e.AssertOnSale(biztime.NowUTC()); err != nil {
		return nil, err
	}

	var o *order.Order
	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		from := seat.Status()
		seller, err := seat.Reserve(buyer.ID())
		if err != nil {
			return err
		}
		o, err = order.NewOrder(seat.ID(), e.ID(), buyer.ID(), seller, seat.Price())
		if err != nil {
			return err
		}
		if err := uc.ticketRepo.CompareAndSwap(txCtx, seat, from); err != nil {
			return err
		}
		if err := uc.orderRepo.Create(txCtx, o); err != nil {
			return fmt.Errorf("failed to create order: %w", err)
		}
		return nil
	})
	if err != nil {
		uc.logger.Warnw("checkout rejected", "ticket_id", cmd.TicketID, "buyer_id", buyer.ID(), "error", err)
		return nil, err
	}

	settlement, err := uc.ledger.RequestSettlement(ctx, SettlementRequest{
		TicketID:     seat.ID(),
		BuyerWallet:  buyer.WalletAddress(),
		PriceCeiling: o.Price(),
		Row:          seat.RowNumber(),
		Column:       seat.ColumnNumber(),
	})
	if err != nil {
		uc.logger.Errorw("settlement request failed, releasing seat",
			"order_id", o.ID(),
			"ticket_id", seat.ID(),
			"error", err,
		)
		if releaseErr := uc.releaser.release(ctx, o, events.AbandonReasonLedgerFailure); releaseErr != nil {
			uc.logger.Errorw("failed to release seat after ledger failure", "order_id", o.ID(), "error", releaseErr)
		}
		return nil, errors.NewExternalDependencyError("settlement ledger unavailable", err.Error())
	}

	if err := uc.storeSettlement(ctx, o, *settlement); err != nil {
		uc.logger.Errorw("failed to store settlement on order, releasing seat", "order_id", o.ID(), "error", err)
		if releaseErr := uc.releaser.release(ctx, o, events.AbandonReasonLedgerFailure); releaseErr != nil {
			uc.logger.Errorw("failed to release seat after settlement write failure", "order_id", o.ID(), "error", releaseErr)
		}
		return nil, err
	}

	uc.logger.Infow("ticket reserved",
		"order_id", o.ID(),
		"ticket_id", seat.ID(),
		"buyer_id", buyer.ID(),
		"resale", o.IsResale(),
	)
	common.PublishAll(ctx, uc.publisher, uc.logger, events.TicketReserved{
		Header:   events.NewHeader(),
		TicketID: seat.ID(),
		EventID:  e.ID(),
		OrderID:  o.ID(),
		BuyerID:  buyer.ID(),
		Resale:   o.IsResale(),
		Price:    o.Price().String(),
	})

	return &CheckoutResult{
		Order:      commondto.ToOrderDTO(o),
		Settlement: settlement,
	}, nil
}

func (uc *CheckoutUseCase) storeSettlement(ctx context.Context, o *order.Order, settlement order.Settlement) error {
	if err := o.AttachSettlement(settlement); err != nil {
		return err
	}
	return uc.orderRepo.CompareAndSwap(ctx, o, ovo.OrderStatusOpen)
}
