package usecases

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/application/testutil"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/domain/customer"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/domain/event"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/domain/order"
	ovo "github.com/SportsX-xyz/sportsx-ticket-backend/internal/domain/order/valueobjects"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/domain/shared/events"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/domain/ticket"
	tvo "github.com/SportsX-xyz/sportsx-ticket-backend/internal/domain/ticket/valueobjects"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/shared/errors"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/shared/logger"
)

type fixture struct {
	events    *testutil.EventRepository
	tickets   *testutil.TicketRepository
	orders    *testutil.OrderRepository
	customers *testutil.CustomerRepository
	recorder  *testutil.EventRecorder
	ledger    *mockLedger
	log       logger.Interface

	event *event.Event
	seat  *ticket.Ticket
}

func newFixture(t *testing.T, maxResaleTimes int) *fixture {
	t.Helper()
	f := &fixture{
		events:    testutil.NewEventRepository(),
		tickets:   testutil.NewTicketRepository(),
		orders:    testutil.NewOrderRepository(),
		customers: testutil.NewCustomerRepository(),
		recorder:  &testutil.EventRecorder{},
		ledger:    &mockLedger{},
		log:       logger.NewNopLogger(),
	}

	release := time.Now().UTC().Add(-time.Hour)
	e, err := event.NewEvent("organizer-1", event.Details{
		Name:              "Cup Final",
		Avatar:            "ipfs://avatar",
		TicketReleaseTime: release,
		StartTime:         release.Add(24 * time.Hour),
		EndTime:           release.Add(27 * time.Hour),
	}, event.MarketSettings{ResaleFeeRate: decimal.RequireFromString("0.1"), MaxResaleTimes: maxResaleTimes})
	require.NoError(t, err)
	require.NoError(t, e.MarkPreviewed("ipfs://meta"))
	require.NoError(t, e.Publish())
	require.NoError(t, f.events.Create(context.Background(), e))
	f.event = e

	seat, err := ticket.NewSeat(e.ID(), "type-1", ticket.SeatSpec{Row: 1, Column: 1, Status: tvo.StatusNew},
		decimal.NewFromInt(100), e.SaleStartTime(), e.SaleEndTime())
	require.NoError(t, err)
	f.tickets.Put(seat)
	f.seat = seat
	return f
}

func (f *fixture) customer(t *testing.T, wallet string) *customer.Customer {
	t.Helper()
	c, err := customer.NewCustomer(wallet, wallet+"@example.com")
	require.NoError(t, err)
	require.NoError(t, f.customers.Create(context.Background(), c))
	return c
}

func (f *fixture) checkout() *CheckoutUseCase {
	return NewCheckoutUseCase(f.events, f.tickets, f.orders, f.customers, f.ledger, testutil.Transactor{}, f.recorder, f.log)
}

func (f *fixture) pay() *PayOrderUseCase {
	return NewPayOrderUseCase(f.events, f.tickets, f.orders, f.ledger, testutil.Transactor{}, f.recorder, f.log)
}

func (f *fixture) relist(t *testing.T, ownerID string, price int64) {
	t.Helper()
	seat := f.currentSeat(t)
	from := seat.Status()
	require.NoError(t, seat.Relist(ownerID, decimal.NewFromInt(price)))
	require.NoError(t, f.tickets.CompareAndSwap(context.Background(), seat, from))
}

func (f *fixture) buy(t *testing.T, buyer *customer.Customer, txHash string) string {
	t.Helper()
	result, err := f.checkout().Execute(context.Background(), CheckoutCommand{BuyerID: buyer.ID(), TicketID: f.seat.ID()})
	require.NoError(t, err)
	_, err = f.pay().Execute(context.Background(), PayOrderCommand{BuyerID: buyer.ID(), OrderID: result.Order.ID, TxHash: txHash})
	require.NoError(t, err)
	return result.Order.ID
}

func (f *fixture) addSeat(t *testing.T, row, column int) *ticket.Ticket {
	t.Helper()
	seat, err := ticket.NewSeat(f.event.ID(), "type-1", ticket.SeatSpec{Row: row, Column: column, Status: tvo.StatusNew},
		decimal.NewFromInt(100), f.event.SaleStartTime(), f.event.SaleEndTime())
	require.NoError(t, err)
	f.tickets.Put(seat)
	return seat
}

func (f *fixture) currentSeat(t *testing.T) *ticket.Ticket {
	t.Helper()
	seat, err := f.tickets.GetByID(context.Background(), f.seat.ID())
	require.NoError(t, err)
	return seat
}

func TestCheckoutAndPay_PrimarySale(t *testing.T) {
	f := newFixture(t, 1)
	alice := f.customer(t, "alice")

	result, err := f.checkout().Execute(context.Background(), CheckoutCommand{BuyerID: alice.ID(), TicketID: f.seat.ID()})
	require.NoError(t, err)
	assert.Equal(t, "OPEN", result.Order.Status)
	assert.Nil(t, result.Order.SellerID)
	require.NotNil(t, result.Settlement)
	assert.NotEmpty(t, result.Settlement.Nonce)
	assert.Equal(t, tvo.StatusLock, f.currentSeat(t).Status())

	paid, err := f.pay().Execute(context.Background(), PayOrderCommand{BuyerID: alice.ID(), OrderID: result.Order.ID, TxHash: "0xabc"})
	require.NoError(t, err)
	assert.Equal(t, "TRANSFERED", paid.Status)
	assert.True(t, paid.Fee.IsZero())

	seat := f.currentSeat(t)
	assert.Equal(t, tvo.StatusSold, seat.Status())
	assert.True(t, seat.IsOwnedBy(alice.ID()))
	assert.Equal(t, 0, seat.ResaleTimes())
	assert.Equal(t, result.Order.ID, *seat.LastOrderID())
}

func TestPay_IsIdempotent(t *testing.T) {
	f := newFixture(t, 1)
	alice := f.customer(t, "alice")
	orderID := f.buy(t, alice, "0xabc")
	calls := f.ledger.confirmCalls.Load()

	again, err := f.pay().Execute(context.Background(), PayOrderCommand{BuyerID: alice.ID(), OrderID: orderID, TxHash: "0xabc"})
	require.NoError(t, err)
	assert.Equal(t, "TRANSFERED", again.Status)
	assert.Equal(t, calls, f.ledger.confirmCalls.Load())
	assert.True(t, f.currentSeat(t).IsOwnedBy(alice.ID()))
}

func TestPay_RequiresLedgerConfirmation(t *testing.T) {
	f := newFixture(t, 1)
	alice := f.customer(t, "alice")
	result, err := f.checkout().Execute(context.Background(), CheckoutCommand{BuyerID: alice.ID(), TicketID: f.seat.ID()})
	require.NoError(t, err)

	f.ledger.ConfirmFunc = func(ctx context.Context, txHash, nonce string) (*Confirmation, error) {
		return &Confirmation{Success: false}, nil
	}
	_, err = f.pay().Execute(context.Background(), PayOrderCommand{BuyerID: alice.ID(), OrderID: result.Order.ID, TxHash: "0xabc"})
	assert.True(t, errors.IsExternalDependencyError(err))

	f.ledger.ConfirmFunc = func(ctx context.Context, txHash, nonce string) (*Confirmation, error) {
		return nil, fmt.Errorf("rpc timeout")
	}
	_, err = f.pay().Execute(context.Background(), PayOrderCommand{BuyerID: alice.ID(), OrderID: result.Order.ID, TxHash: "0xabc"})
	assert.True(t, errors.IsExternalDependencyError(err))

	assert.Equal(t, tvo.StatusLock, f.currentSeat(t).Status())
	o, _ := f.orders.GetByID(context.Background(), result.Order.ID)
	assert.Equal(t, ovo.OrderStatusOpen, o.Status())

	_, err = f.pay().Execute(context.Background(), PayOrderCommand{BuyerID: "someone-else", OrderID: result.Order.ID, TxHash: "0xabc"})
	assert.True(t, errors.IsForbiddenError(err))
}

func TestPay_BindsTransactionToSettlementNonce(t *testing.T) {
	f := newFixture(t, 1)
	alice := f.customer(t, "alice")
	result, err := f.checkout().Execute(context.Background(), CheckoutCommand{BuyerID: alice.ID(), TicketID: f.seat.ID()})
	require.NoError(t, err)

	var gotNonce string
	f.ledger.ConfirmFunc = func(ctx context.Context, txHash, nonce string) (*Confirmation, error) {
		gotNonce = nonce
		now := time.Now().UTC()
		return &Confirmation{Success: true, FinalizedAt: &now}, nil
	}
	_, err = f.pay().Execute(context.Background(), PayOrderCommand{BuyerID: alice.ID(), OrderID: result.Order.ID, TxHash: "tx-1"})
	require.NoError(t, err)
	assert.Equal(t, result.Settlement.Nonce, gotNonce)
}

func TestPay_RejectsTransactionHashOfAnotherOrder(t *testing.T) {
	f := newFixture(t, 1)
	alice := f.customer(t, "alice")
	f.buy(t, alice, "tx-1")

	second := f.addSeat(t, 1, 2)
	result, err := f.checkout().Execute(context.Background(), CheckoutCommand{BuyerID: alice.ID(), TicketID: second.ID()})
	require.NoError(t, err)

	_, err = f.pay().Execute(context.Background(), PayOrderCommand{BuyerID: alice.ID(), OrderID: result.Order.ID, TxHash: "tx-1"})
	assert.True(t, errors.IsConstraintViolationError(err), "unexpected error: %v", err)

	seat, err := f.tickets.GetByID(context.Background(), second.ID())
	require.NoError(t, err)
	assert.Equal(t, tvo.StatusLock, seat.Status())
	assert.Nil(t, seat.OwnerID())

	o, _ := f.orders.GetByID(context.Background(), result.Order.ID)
	assert.Equal(t, ovo.OrderStatusOpen, o.Status())
	assert.Nil(t, o.TxHash())
}

func TestCheckout_LedgerFailureReleasesSeat(t *testing.T) {
	f := newFixture(t, 1)
	alice := f.customer(t, "alice")
	f.ledger.RequestSettlementFunc = func(ctx context.Context, req SettlementRequest) (*order.Settlement, error) {
		return nil, fmt.Errorf("connection refused")
	}

	_, err := f.checkout().Execute(context.Background(), CheckoutCommand{BuyerID: alice.ID(), TicketID: f.seat.ID()})
	assert.True(t, errors.IsExternalDependencyError(err))

	assert.Equal(t, tvo.StatusNew, f.currentSeat(t).Status())
	orders := f.orders.All()
	require.Len(t, orders, 1)
	assert.Equal(t, ovo.OrderStatusAbandoned, orders[0].Status())
	assert.Equal(t, 1, f.recorder.Count(func(e events.DomainEvent) bool {
		abandoned, ok := e.(events.OrderAbandoned)
		return ok && abandoned.Reason == events.AbandonReasonLedgerFailure
	}))

	_, err = f.pay().Execute(context.Background(), PayOrderCommand{BuyerID: alice.ID(), OrderID: orders[0].ID(), TxHash: "0xabc"})
	assert.True(t, errors.IsInvalidTransitionError(err))
}

// settlementWriteFailure fails the write that attaches a settlement to an
// OPEN order and passes every other write through.
type settlementWriteFailure struct {
	*testutil.OrderRepository
}

func (r settlementWriteFailure) CompareAndSwap(ctx context.Context, o *order.Order, from ovo.OrderStatus) error {
	if o.Status() == ovo.OrderStatusOpen && o.Settlement() != nil {
		return fmt.Errorf("lost connection to database")
	}
	return r.OrderRepository.CompareAndSwap(ctx, o, from)
}

func TestCheckout_SettlementWriteFailureReleasesSeat(t *testing.T) {
	f := newFixture(t, 1)
	alice := f.customer(t, "alice")
	uc := NewCheckoutUseCase(f.events, f.tickets, settlementWriteFailure{f.orders}, f.customers, f.ledger,
		testutil.Transactor{}, f.recorder, f.log)

	_, err := uc.Execute(context.Background(), CheckoutCommand{BuyerID: alice.ID(), TicketID: f.seat.ID()})
	require.Error(t, err)

	seat := f.currentSeat(t)
	assert.Equal(t, tvo.StatusNew, seat.Status())
	assert.Nil(t, seat.OwnerID())
	orders := f.orders.All()
	require.Len(t, orders, 1)
	assert.Equal(t, ovo.OrderStatusAbandoned, orders[0].Status())
	assert.Equal(t, 1, f.recorder.Count(func(e events.DomainEvent) bool {
		_, ok := e.(events.OrderAbandoned)
		return ok
	}))
	assert.Zero(t, f.recorder.Count(func(e events.DomainEvent) bool {
		_, ok := e.(events.TicketReserved)
		return ok
	}))

	// the seat is back on the market
	_, err = f.checkout().Execute(context.Background(), CheckoutCommand{BuyerID: f.customer(t, "bob").ID(), TicketID: f.seat.ID()})
	assert.NoError(t, err)
}

func TestCheckout_Rejections(t *testing.T) {
	t.Run("owner cannot buy own listing", func(t *testing.T) {
		f := newFixture(t, 1)
		alice := f.customer(t, "alice")
		f.buy(t, alice, "0x1")
		f.relist(t, alice.ID(), 150)

		_, err := f.checkout().Execute(context.Background(), CheckoutCommand{BuyerID: alice.ID(), TicketID: f.seat.ID()})
		assert.True(t, errors.IsForbiddenError(err))
	})

	t.Run("sold seat cannot be checked out", func(t *testing.T) {
		f := newFixture(t, 1)
		f.buy(t, f.customer(t, "alice"), "0x1")

		_, err := f.checkout().Execute(context.Background(), CheckoutCommand{BuyerID: f.customer(t, "bob").ID(), TicketID: f.seat.ID()})
		assert.True(t, errors.IsInvalidTransitionError(err))
	})

	t.Run("disabled buyer is forbidden", func(t *testing.T) {
		f := newFixture(t, 1)
		bob := f.customer(t, "bob")
		bob.Disable()
		require.NoError(t, f.customers.Update(context.Background(), bob))

		_, err := f.checkout().Execute(context.Background(), CheckoutCommand{BuyerID: bob.ID(), TicketID: f.seat.ID()})
		assert.True(t, errors.IsForbiddenError(err))
	})
}

func TestCheckout_ConcurrentBuyersGetOneOrder(t *testing.T) {
	f := newFixture(t, 1)
	buyers := []*customer.Customer{f.customer(t, "alice"), f.customer(t, "bob")}

	results := make([]error, len(buyers))
	var g errgroup.Group
	for i, buyer := range buyers {
		g.Go(func() error {
			_, results[i] = f.checkout().Execute(context.Background(), CheckoutCommand{BuyerID: buyer.ID(), TicketID: f.seat.ID()})
			return nil
		})
	}
	require.NoError(t, g.Wait())

	succeeded := 0
	for _, err := range results {
		if err == nil {
			succeeded++
			continue
		}
		assert.True(t, errors.IsInvalidTransitionError(err), "unexpected error: %v", err)
	}
	assert.Equal(t, 1, succeeded)
	assert.Len(t, f.orders.All(), 1)
	assert.Equal(t, tvo.StatusLock, f.currentSeat(t).Status())
}

func TestResale_FeeAndCap(t *testing.T) {
	t.Run("resale within cap pays a fee and moves ownership", func(t *testing.T) {
		f := newFixture(t, 1)
		alice, bob := f.customer(t, "alice"), f.customer(t, "bob")
		f.buy(t, alice, "0x1")
		f.relist(t, alice.ID(), 200)

		result, err := f.checkout().Execute(context.Background(), CheckoutCommand{BuyerID: bob.ID(), TicketID: f.seat.ID()})
		require.NoError(t, err)
		require.NotNil(t, result.Order.SellerID)
		assert.Equal(t, alice.ID(), *result.Order.SellerID)
		assert.Nil(t, f.currentSeat(t).OwnerID())

		paid, err := f.pay().Execute(context.Background(), PayOrderCommand{BuyerID: bob.ID(), OrderID: result.Order.ID, TxHash: "0x2"})
		require.NoError(t, err)
		assert.True(t, paid.Fee.Equal(decimal.NewFromInt(20)))

		seat := f.currentSeat(t)
		assert.True(t, seat.IsOwnedBy(bob.ID()))
		assert.Equal(t, 1, seat.ResaleTimes())
	})

	t.Run("sold at the cap: relist and checkout succeed, pay is rejected", func(t *testing.T) {
		f := newFixture(t, 0)
		alice, bob := f.customer(t, "alice"), f.customer(t, "bob")
		f.buy(t, alice, "0x1")
		f.relist(t, alice.ID(), 200)

		result, err := f.checkout().Execute(context.Background(), CheckoutCommand{BuyerID: bob.ID(), TicketID: f.seat.ID()})
		require.NoError(t, err)

		_, err = f.pay().Execute(context.Background(), PayOrderCommand{BuyerID: bob.ID(), OrderID: result.Order.ID, TxHash: "0x2"})
		assert.True(t, errors.IsConstraintViolationError(err))
		assert.Equal(t, int32(1), f.ledger.confirmCalls.Load(), "only the primary sale reaches the ledger")

		seat := f.currentSeat(t)
		assert.Equal(t, tvo.StatusResale, seat.Status())
		assert.True(t, seat.IsOwnedBy(alice.ID()))
		assert.Equal(t, 0, seat.ResaleTimes())

		o, _ := f.orders.GetByID(context.Background(), result.Order.ID)
		assert.Equal(t, ovo.OrderStatusAbandoned, o.Status())
	})
}

func TestReclaimOrders(t *testing.T) {
	f := newFixture(t, 1)
	alice, bob := f.customer(t, "alice"), f.customer(t, "bob")
	f.buy(t, alice, "0x1")
	f.relist(t, alice.ID(), 200)

	_, err := f.checkout().Execute(context.Background(), CheckoutCommand{BuyerID: bob.ID(), TicketID: f.seat.ID()})
	require.NoError(t, err)

	uc := NewReclaimOrdersUseCase(f.tickets, f.orders, testutil.Transactor{}, f.recorder, 15*time.Minute, f.log)

	n, err := uc.Execute(context.Background(), time.Now().UTC())
	require.NoError(t, err)
	assert.Zero(t, n)

	n, err = uc.Execute(context.Background(), time.Now().UTC().Add(16*time.Minute))
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	seat := f.currentSeat(t)
	assert.Equal(t, tvo.StatusResale, seat.Status())
	assert.True(t, seat.IsOwnedBy(alice.ID()))
}

func TestGetOrder_OnlyParties(t *testing.T) {
	f := newFixture(t, 1)
	alice := f.customer(t, "alice")
	orderID := f.buy(t, alice, "0x1")

	got, err := NewGetOrderUseCase(f.orders, f.log).Execute(context.Background(), GetOrderQuery{CustomerID: alice.ID(), OrderID: orderID})
	require.NoError(t, err)
	assert.Equal(t, "0x1", *got.TxHash)

	_, err = NewGetOrderUseCase(f.orders, f.log).Execute(context.Background(), GetOrderQuery{CustomerID: "stranger", OrderID: orderID})
	assert.True(t, errors.IsForbiddenError(err))

	list, err := NewListMyOrdersUseCase(f.orders, f.log).Execute(context.Background(), ListMyOrdersQuery{CustomerID: alice.ID()})
	require.NoError(t, err)
	assert.Len(t, list, 1)
}
