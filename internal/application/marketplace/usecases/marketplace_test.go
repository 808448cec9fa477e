package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/application/testutil"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/domain/customer"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/domain/event"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/domain/shared/events"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/domain/ticket"
	tvo "github.com/SportsX-xyz/sportsx-ticket-backend/internal/domain/ticket/valueobjects"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/shared/errors"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/shared/logger"
)

type market struct {
	events    *testutil.EventRepository
	tickets   *testutil.TicketRepository
	customers *testutil.CustomerRepository
	recorder  *testutil.EventRecorder
	log       logger.Interface
}

func newMarket() *market {
	return &market{
		events:    testutil.NewEventRepository(),
		tickets:   testutil.NewTicketRepository(),
		customers: testutil.NewCustomerRepository(),
		recorder:  &testutil.EventRecorder{},
		log:       logger.NewNopLogger(),
	}
}

func (m *market) customer(t *testing.T, wallet string) *customer.Customer {
	t.Helper()
	c, err := customer.NewCustomer(wallet, wallet+"@example.com")
	require.NoError(t, err)
	require.NoError(t, m.customers.Create(context.Background(), c))
	return c
}

func (m *market) relist() *RelistTicketUseCase {
	return NewRelistTicketUseCase(m.events, m.tickets, m.customers, m.recorder, m.log)
}

func (m *market) unlist() *UnlistTicketUseCase {
	return NewUnlistTicketUseCase(m.tickets, m.customers, m.recorder, m.log)
}

// addEvent stores an event advanced to the given stage of its lifecycle:
// 0 DRAFT, 1 PREVIEW, 2 ACTIVE.
func (m *market) addEvent(t *testing.T, steps int, release time.Time, end time.Time, stopSaleBefore int) *event.Event {
	t.Helper()
	e, err := event.NewEvent("organizer-1", event.Details{
		Name:              "Derby",
		Avatar:            "ipfs://avatar",
		TicketReleaseTime: release,
		StartTime:         release.Add(time.Hour),
		EndTime:           end,
		StopSaleBefore:    stopSaleBefore,
	}, event.MarketSettings{ResaleFeeRate: decimal.RequireFromString("0.05"), MaxResaleTimes: 2})
	require.NoError(t, err)
	if steps >= 1 {
		require.NoError(t, e.MarkPreviewed("ipfs://meta"))
	}
	if steps >= 2 {
		require.NoError(t, e.Publish())
	}
	require.NoError(t, m.events.Create(context.Background(), e))
	return e
}

func (m *market) onSaleEvent(t *testing.T) *event.Event {
	now := time.Now().UTC()
	return m.addEvent(t, 2, now.Add(-time.Hour), now.Add(48*time.Hour), 0)
}

func (m *market) addSeat(t *testing.T, e *event.Event, row, col int, status tvo.TicketStatus) *ticket.Ticket {
	t.Helper()
	seat, err := ticket.NewSeat(e.ID(), "type-1", ticket.SeatSpec{Row: row, Column: col, Status: status},
		decimal.NewFromInt(80), e.SaleStartTime(), e.SaleEndTime())
	require.NoError(t, err)
	m.tickets.Put(seat)
	return seat
}

func (m *market) addOwnedSeat(t *testing.T, e *event.Event, row, col int, ownerID string) *ticket.Ticket {
	t.Helper()
	seat := m.addSeat(t, e, row, col, tvo.StatusNew)
	_, err := seat.Reserve(ownerID)
	require.NoError(t, err)
	require.NoError(t, seat.Settle(ownerID, "order-"+ownerID, false, e.MaxResaleTimes()))
	m.tickets.Put(seat)
	return seat
}

func TestListMarketEvents_CountsInventory(t *testing.T) {
	m := newMarket()
	active := m.onSaleEvent(t)
	m.addSeat(t, active, 1, 1, tvo.StatusNew)
	m.addSeat(t, active, 1, 2, tvo.StatusNotForSale)
	m.addSeat(t, active, 3, 4, tvo.StatusNotExist)
	owned := m.addOwnedSeat(t, active, 2, 1, "alice")
	require.NoError(t, owned.Relist("alice", decimal.NewFromInt(120)))
	m.tickets.Put(owned)

	now := time.Now().UTC()
	m.addEvent(t, 1, now.Add(24*time.Hour), now.Add(48*time.Hour), 0)
	m.addEvent(t, 0, now.Add(24*time.Hour), now.Add(48*time.Hour), 0)

	list, err := NewListMarketEventsUseCase(m.events, m.tickets, m.log).Execute(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)

	var found bool
	for _, item := range list {
		if item.ID != active.ID() {
			assert.Zero(t, item.TotalTickets)
			continue
		}
		found = true
		assert.Equal(t, int64(2), item.TicketsLeft)
		assert.Equal(t, int64(3), item.TotalTickets)
		assert.Equal(t, int64(1), item.ResaleTicketsLeft)
		assert.Equal(t, 3, item.MaxRow)
		assert.Equal(t, 4, item.MaxColumn)
		assert.Equal(t, "ONSALE", item.Stage)
	}
	assert.True(t, found)
}

func TestGetMarketEvent_HidesDrafts(t *testing.T) {
	m := newMarket()
	now := time.Now().UTC()
	draft := m.addEvent(t, 0, now.Add(time.Hour), now.Add(48*time.Hour), 0)

	_, err := NewGetMarketEventUseCase(m.events, m.tickets, m.log).Execute(context.Background(), draft.ID())
	assert.True(t, errors.IsNotFoundError(err))
}

func TestListEventSeats(t *testing.T) {
	t.Run("active event lists seats except removed ones", func(t *testing.T) {
		m := newMarket()
		e := m.onSaleEvent(t)
		m.addSeat(t, e, 1, 1, tvo.StatusNew)
		m.addSeat(t, e, 1, 2, tvo.StatusNotExist)

		seats, err := NewListEventSeatsUseCase(m.events, m.tickets, m.log).Execute(context.Background(), e.ID())
		require.NoError(t, err)
		require.Len(t, seats, 1)
		assert.Equal(t, "R1-C1", seats[0].Name)
	})

	t.Run("preview event is not browsable yet", func(t *testing.T) {
		m := newMarket()
		now := time.Now().UTC()
		e := m.addEvent(t, 1, now.Add(time.Hour), now.Add(48*time.Hour), 0)

		_, err := NewListEventSeatsUseCase(m.events, m.tickets, m.log).Execute(context.Background(), e.ID())
		assert.True(t, errors.IsInvalidTransitionError(err))
	})

	t.Run("past the stop-sale cut-off", func(t *testing.T) {
		m := newMarket()
		now := time.Now().UTC()
		e := m.addEvent(t, 2, now.Add(-3*time.Hour), now.Add(10*time.Minute), 30)

		_, err := NewListEventSeatsUseCase(m.events, m.tickets, m.log).Execute(context.Background(), e.ID())
		assert.True(t, errors.IsExpiredError(err))
	})
}

func TestRelistAndUnlist_RoundTrip(t *testing.T) {
	m := newMarket()
	e := m.onSaleEvent(t)
	alice := m.customer(t, "alice")
	seat := m.addOwnedSeat(t, e, 1, 1, alice.ID())

	relisted, err := m.relist().Execute(context.Background(),
		RelistTicketCommand{OwnerID: alice.ID(), TicketID: seat.ID(), Price: decimal.NewFromInt(150)})
	require.NoError(t, err)
	assert.Equal(t, "RESALE", relisted.Status)
	assert.True(t, relisted.Price.Equal(decimal.NewFromInt(150)))
	assert.True(t, relisted.PreviousPrice.Equal(decimal.NewFromInt(80)))

	resales, err := NewListMyResalesUseCase(m.tickets, m.log).Execute(context.Background(), ListOwnedTicketsQuery{CustomerID: alice.ID()})
	require.NoError(t, err)
	assert.Len(t, resales, 1)

	unlisted, err := m.unlist().Execute(context.Background(),
		UnlistTicketCommand{OwnerID: alice.ID(), TicketID: seat.ID()})
	require.NoError(t, err)
	assert.Equal(t, "SOLD", unlisted.Status)
	assert.True(t, unlisted.Price.Equal(decimal.NewFromInt(80)))

	mine, err := NewListMyTicketsUseCase(m.tickets, m.log).Execute(context.Background(), ListOwnedTicketsQuery{CustomerID: alice.ID()})
	require.NoError(t, err)
	assert.Len(t, mine, 1)

	assert.Equal(t, 1, m.recorder.Count(func(ev events.DomainEvent) bool {
		_, ok := ev.(events.TicketRelisted)
		return ok
	}))
	assert.Equal(t, 1, m.recorder.Count(func(ev events.DomainEvent) bool {
		_, ok := ev.(events.TicketUnlisted)
		return ok
	}))
}

func TestRelist_Rejections(t *testing.T) {
	m := newMarket()
	e := m.onSaleEvent(t)
	alice := m.customer(t, "alice")
	mallory := m.customer(t, "mallory")
	seat := m.addOwnedSeat(t, e, 1, 1, alice.ID())
	fresh := m.addSeat(t, e, 1, 2, tvo.StatusNew)
	uc := m.relist()

	_, err := uc.Execute(context.Background(), RelistTicketCommand{OwnerID: mallory.ID(), TicketID: seat.ID(), Price: decimal.NewFromInt(150)})
	assert.True(t, errors.IsForbiddenError(err))

	_, err = uc.Execute(context.Background(), RelistTicketCommand{OwnerID: alice.ID(), TicketID: seat.ID(), Price: decimal.Zero})
	assert.True(t, errors.IsValidationError(err))

	_, err = uc.Execute(context.Background(), RelistTicketCommand{OwnerID: alice.ID(), TicketID: fresh.ID(), Price: decimal.NewFromInt(150)})
	assert.Error(t, err)

	_, err = m.unlist().Execute(context.Background(),
		UnlistTicketCommand{OwnerID: alice.ID(), TicketID: seat.ID()})
	assert.True(t, errors.IsInvalidTransitionError(err))

	assert.Zero(t, m.recorder.Count(func(events.DomainEvent) bool { return true }))
}

func TestRelistAndUnlist_DisabledOwner(t *testing.T) {
	m := newMarket()
	e := m.onSaleEvent(t)
	alice := m.customer(t, "alice")
	listed := m.addOwnedSeat(t, e, 1, 1, alice.ID())
	require.NoError(t, listed.Relist(alice.ID(), decimal.NewFromInt(120)))
	m.tickets.Put(listed)
	held := m.addOwnedSeat(t, e, 1, 2, alice.ID())

	alice.Disable()
	require.NoError(t, m.customers.Update(context.Background(), alice))

	_, err := m.relist().Execute(context.Background(),
		RelistTicketCommand{OwnerID: alice.ID(), TicketID: held.ID(), Price: decimal.NewFromInt(150)})
	assert.True(t, errors.IsForbiddenError(err))

	_, err = m.unlist().Execute(context.Background(),
		UnlistTicketCommand{OwnerID: alice.ID(), TicketID: listed.ID()})
	assert.True(t, errors.IsForbiddenError(err))

	stored, err := m.tickets.GetByID(context.Background(), held.ID())
	require.NoError(t, err)
	assert.Equal(t, tvo.StatusSold, stored.Status())
	stored, err = m.tickets.GetByID(context.Background(), listed.ID())
	require.NoError(t, err)
	assert.Equal(t, tvo.StatusResale, stored.Status())
	assert.Zero(t, m.recorder.Count(func(events.DomainEvent) bool { return true }))
}

func TestRelist_ClosesWithSaleWindow(t *testing.T) {
	m := newMarket()
	now := time.Now().UTC()
	e := m.addEvent(t, 2, now.Add(-3*time.Hour), now.Add(10*time.Minute), 30)
	alice := m.customer(t, "alice")
	seat := m.addOwnedSeat(t, e, 1, 1, alice.ID())

	_, err := m.relist().Execute(context.Background(),
		RelistTicketCommand{OwnerID: alice.ID(), TicketID: seat.ID(), Price: decimal.NewFromInt(150)})
	assert.True(t, errors.IsExpiredError(err))
}
