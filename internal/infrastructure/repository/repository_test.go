package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/domain/customer"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/domain/event"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/domain/order"
	ovo "github.com/SportsX-xyz/sportsx-ticket-backend/internal/domain/order/valueobjects"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/domain/ticket"
	tvo "github.com/SportsX-xyz/sportsx-ticket-backend/internal/domain/ticket/valueobjects"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/infrastructure/persistence/models"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/shared/db"
	apperrors "github.com/SportsX-xyz/sportsx-ticket-backend/internal/shared/errors"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, gdb.AutoMigrate(
		&models.EventModel{},
		&models.TicketTypeModel{},
		&models.EventStaffModel{},
		&models.TicketModel{},
		&models.OrderModel{},
		&models.CustomerModel{},
	))
	return gdb
}

func newSeat(t *testing.T, eventID, typeID string, row, col int) *ticket.Ticket {
	t.Helper()
	now := time.Now().UTC()
	seat, err := ticket.NewSeat(eventID, typeID, ticket.SeatSpec{Row: row, Column: col, Status: tvo.StatusNew},
		decimal.NewFromInt(100), now, now.Add(24*time.Hour))
	require.NoError(t, err)
	return seat
}

func TestTicketRepository_BulkInsertSkipsTakenCoordinates(t *testing.T) {
	repo := NewTicketRepository(setupTestDB(t))
	ctx := context.Background()

	created, err := repo.BulkInsertIgnoringConflicts(ctx, []*ticket.Ticket{
		newSeat(t, "event-1", "type-1", 1, 1),
		newSeat(t, "event-1", "type-1", 1, 2),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), created)

	created, err = repo.BulkInsertIgnoringConflicts(ctx, []*ticket.Ticket{
		newSeat(t, "event-1", "type-1", 1, 1),
		newSeat(t, "event-1", "type-1", 2, 5),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), created)

	total, err := repo.CountByEvent(ctx, "event-1")
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)

	maxRow, maxColumn, err := repo.MaxCoordinates(ctx, "event-1")
	require.NoError(t, err)
	assert.Equal(t, 2, maxRow)
	assert.Equal(t, 5, maxColumn)

	maxRow, maxColumn, err = repo.MaxCoordinates(ctx, "no-such-event")
	require.NoError(t, err)
	assert.Zero(t, maxRow)
	assert.Zero(t, maxColumn)
}

func TestTicketRepository_CompareAndSwap(t *testing.T) {
	repo := NewTicketRepository(setupTestDB(t))
	ctx := context.Background()
	seat := newSeat(t, "event-1", "type-1", 1, 1)
	_, err := repo.BulkInsertIgnoringConflicts(ctx, []*ticket.Ticket{seat})
	require.NoError(t, err)

	first, err := repo.GetByID(ctx, seat.ID())
	require.NoError(t, err)
	second, err := repo.GetByID(ctx, seat.ID())
	require.NoError(t, err)

	_, err = first.Reserve("alice")
	require.NoError(t, err)
	require.NoError(t, repo.CompareAndSwap(ctx, first, tvo.StatusNew))

	_, err = second.Reserve("bob")
	require.NoError(t, err)
	err = repo.CompareAndSwap(ctx, second, tvo.StatusNew)
	assert.True(t, apperrors.IsInvalidTransitionError(err))

	require.NoError(t, first.Settle("alice", "order-1", false, 0))
	require.NoError(t, repo.CompareAndSwap(ctx, first, tvo.StatusLock))

	stored, err := repo.GetByID(ctx, seat.ID())
	require.NoError(t, err)
	assert.Equal(t, tvo.StatusSold, stored.Status())
	assert.True(t, stored.IsOwnedBy("alice"))
	assert.Equal(t, "order-1", *stored.LastOrderID())
	assert.True(t, stored.Price().Equal(decimal.NewFromInt(100)))

	owned, err := repo.ListByOwner(ctx, "alice", tvo.StatusSold, tvo.StatusUsed)
	require.NoError(t, err)
	assert.Len(t, owned, 1)

	missing, err := repo.GetByID(ctx, "missing")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestTicketRepository_CountsAndDeletes(t *testing.T) {
	repo := NewTicketRepository(setupTestDB(t))
	ctx := context.Background()

	_, err := repo.BulkInsertIgnoringConflicts(ctx, []*ticket.Ticket{
		newSeat(t, "event-1", "type-a", 1, 1),
		newSeat(t, "event-1", "type-a", 1, 2),
		newSeat(t, "event-1", "type-b", 1, 1),
	})
	require.NoError(t, err)

	n, err := repo.CountByTicketType(ctx, "type-a", tvo.StatusNew)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	list, err := repo.ListByEvent(ctx, "event-1", tvo.StatusResale)
	require.NoError(t, err)
	assert.Empty(t, list)

	require.NoError(t, repo.DeleteByTicketType(ctx, "type-a"))
	n, err = repo.CountByEvent(ctx, "event-1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	require.NoError(t, repo.DeleteByEvent(ctx, "event-1"))
	n, err = repo.CountByEvent(ctx, "event-1")
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestTicketRepository_RollbackDiscardsSwap(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewTicketRepository(gdb)
	tm := db.NewTransactionManager(gdb)
	ctx := context.Background()

	seat := newSeat(t, "event-1", "type-1", 1, 1)
	_, err := repo.BulkInsertIgnoringConflicts(ctx, []*ticket.Ticket{seat})
	require.NoError(t, err)

	err = tm.RunInTransaction(ctx, func(txCtx context.Context) error {
		if _, err := seat.Reserve("alice"); err != nil {
			return err
		}
		if err := repo.CompareAndSwap(txCtx, seat, tvo.StatusNew); err != nil {
			return err
		}
		return fmt.Errorf("order insert failed")
	})
	require.Error(t, err)

	stored, err := repo.GetByID(ctx, seat.ID())
	require.NoError(t, err)
	assert.Equal(t, tvo.StatusNew, stored.Status())
}

func TestOrderRepository_RoundTripAndQueries(t *testing.T) {
	repo := NewOrderRepository(setupTestDB(t))
	ctx := context.Background()

	seller := "alice"
	resale, err := order.NewOrder("ticket-1", "event-1", "bob", &seller, decimal.RequireFromString("150.5"))
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, resale))

	validUntil := time.Now().UTC().Add(10 * time.Minute).Truncate(time.Second)
	require.NoError(t, resale.AttachSettlement(order.Settlement{
		Message: "m", Signature: "s", Nonce: "n", ValidUntil: validUntil,
	}))
	require.NoError(t, repo.CompareAndSwap(ctx, resale, ovo.OrderStatusOpen))

	stored, err := repo.GetByID(ctx, resale.ID())
	require.NoError(t, err)
	require.NotNil(t, stored.Settlement())
	assert.Equal(t, "n", stored.Settlement().Nonce)
	assert.True(t, stored.Settlement().ValidUntil.Equal(validUntil))
	assert.Equal(t, "alice", *stored.SellerID())
	assert.True(t, stored.Price().Equal(decimal.RequireFromString("150.5")))

	asSeller, err := repo.ListByCustomer(ctx, "alice")
	require.NoError(t, err)
	assert.Len(t, asSeller, 1)

	stale, err := repo.ListStaleOpen(ctx, time.Now().UTC().Add(time.Minute), 100)
	require.NoError(t, err)
	assert.Len(t, stale, 1)

	require.NoError(t, resale.Abandon(time.Now().UTC()))
	require.NoError(t, repo.CompareAndSwap(ctx, resale, ovo.OrderStatusOpen))
	err = repo.CompareAndSwap(ctx, resale, ovo.OrderStatusOpen)
	assert.True(t, apperrors.IsInvalidTransitionError(err))

	stale, err = repo.ListStaleOpen(ctx, time.Now().UTC().Add(time.Minute), 100)
	require.NoError(t, err)
	assert.Empty(t, stale)
}

func TestOrderRepository_TxHashSettlesOneOrder(t *testing.T) {
	repo := NewOrderRepository(setupTestDB(t))
	ctx := context.Background()
	now := time.Now().UTC()

	settle := func(ticketID string) error {
		o, err := order.NewOrder(ticketID, "event-1", "alice", nil, decimal.NewFromInt(100))
		require.NoError(t, err)
		require.NoError(t, repo.Create(ctx, o))
		require.NoError(t, o.MarkPaid("tx-1", now))
		return repo.CompareAndSwap(ctx, o, ovo.OrderStatusOpen)
	}

	require.NoError(t, settle("ticket-1"))
	err := settle("ticket-2")
	assert.True(t, apperrors.IsConstraintViolationError(err), "unexpected error: %v", err)
}

func TestTicketRepository_MoveOntoTakenSeatIsConstraintViolation(t *testing.T) {
	repo := NewTicketRepository(setupTestDB(t))
	ctx := context.Background()
	_, err := repo.BulkInsertIgnoringConflicts(ctx, []*ticket.Ticket{
		newSeat(t, "event-1", "type-a", 1, 1),
		newSeat(t, "event-1", "type-b", 1, 1),
	})
	require.NoError(t, err)

	seats, err := repo.ListByEvent(ctx, "event-1")
	require.NoError(t, err)
	require.Len(t, seats, 2)
	moving := seats[0]
	if moving.TicketTypeID() == "type-a" {
		moving = seats[1]
	}

	require.NoError(t, moving.MoveToType("type-a", decimal.NewFromInt(80)))
	err = repo.CompareAndSwap(ctx, moving, tvo.StatusNew)
	require.True(t, apperrors.IsConstraintViolationError(err), "unexpected error: %v", err)
	assert.Contains(t, err.Error(), "seat (1, 1) already exists in ticket type type-a")

	stored, err := repo.GetByID(ctx, moving.ID())
	require.NoError(t, err)
	assert.Equal(t, "type-b", stored.TicketTypeID())
}

func TestTicketRepository_UpdateSaleWindow(t *testing.T) {
	repo := NewTicketRepository(setupTestDB(t))
	ctx := context.Background()
	_, err := repo.BulkInsertIgnoringConflicts(ctx, []*ticket.Ticket{
		newSeat(t, "event-1", "type-1", 1, 1),
		newSeat(t, "event-2", "type-2", 1, 1),
	})
	require.NoError(t, err)

	start := time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC)
	end := start.Add(48 * time.Hour)
	require.NoError(t, repo.UpdateSaleWindow(ctx, "event-1", start, end))

	moved, err := repo.ListByEvent(ctx, "event-1")
	require.NoError(t, err)
	require.Len(t, moved, 1)
	assert.True(t, moved[0].SaleStartTime().Equal(start))
	assert.True(t, moved[0].SaleEndTime().Equal(end))
	assert.Equal(t, 2, moved[0].Version())

	untouched, err := repo.ListByEvent(ctx, "event-2")
	require.NoError(t, err)
	require.Len(t, untouched, 1)
	assert.False(t, untouched[0].SaleStartTime().Equal(start))
}

func TestEventRepositories(t *testing.T) {
	gdb := setupTestDB(t)
	events := NewEventRepository(gdb)
	types := NewTicketTypeRepository(gdb)
	staff := NewEventStaffRepository(gdb)
	ctx := context.Background()

	release := time.Now().UTC().Add(time.Hour).Truncate(time.Millisecond)
	e, err := event.NewEvent("organizer-1", event.Details{
		Name:              "Opening Night",
		Avatar:            "ipfs://avatar",
		TicketReleaseTime: release,
		StartTime:         release.Add(time.Hour),
		EndTime:           release.Add(3 * time.Hour),
		StopSaleBefore:    30,
	}, event.MarketSettings{ResaleFeeRate: decimal.RequireFromString("0.1"), MaxResaleTimes: 2})
	require.NoError(t, err)
	require.NoError(t, events.Create(ctx, e))

	require.NoError(t, e.MarkPreviewed("ipfs://meta"))
	require.NoError(t, events.Update(ctx, e))

	stored, err := events.GetByID(ctx, e.ID())
	require.NoError(t, err)
	assert.Equal(t, "PREVIEW", stored.Status().String())
	assert.True(t, stored.TicketReleaseTime().Equal(release))
	assert.True(t, stored.ResaleFeeRate().Equal(decimal.RequireFromString("0.1")))
	assert.Equal(t, 30, stored.StopSaleBefore())

	listed, err := events.ListByStatus(ctx, "PREVIEW", "ACTIVE")
	require.NoError(t, err)
	assert.Len(t, listed, 1)

	tt, err := event.NewTicketType(e.ID(), "VIP", decimal.NewFromInt(250), "#FFAA00")
	require.NoError(t, err)
	require.NoError(t, types.Create(ctx, tt))
	require.NoError(t, tt.Update("VIP Gold", decimal.NewFromInt(300), "#FFD700"))
	require.NoError(t, types.Update(ctx, tt))

	gotType, err := types.GetByID(ctx, tt.ID())
	require.NoError(t, err)
	assert.Equal(t, "VIP Gold", gotType.TierName())

	member, err := event.NewStaff(e.ID(), "staff-1", "organizer-1")
	require.NoError(t, err)
	require.NoError(t, staff.Create(ctx, member))

	dup, err := event.NewStaff(e.ID(), "staff-1", "organizer-1")
	require.NoError(t, err)
	err = staff.Create(ctx, dup)
	assert.True(t, apperrors.IsConstraintViolationError(err))

	ok, err := staff.Exists(ctx, e.ID(), "staff-1")
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, staff.Delete(ctx, e.ID(), "staff-1"))
	ok, err = staff.Exists(ctx, e.ID(), "staff-1")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCustomerRepository(t *testing.T) {
	repo := NewCustomerRepository(setupTestDB(t))
	ctx := context.Background()

	c, err := customer.NewCustomer("0xabc", "Fan@Example.com")
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, c))

	dup, err := customer.NewCustomer("0xabc", "other@example.com")
	require.NoError(t, err)
	assert.True(t, apperrors.IsConstraintViolationError(repo.Create(ctx, dup)))

	c.GrantOrganizer()
	require.NoError(t, repo.Update(ctx, c))

	byWallet, err := repo.GetByWallet(ctx, "0xabc")
	require.NoError(t, err)
	require.NotNil(t, byWallet)
	assert.True(t, byWallet.IsOrganizer())

	byEmail, err := repo.GetByEmail(ctx, " FAN@example.com ")
	require.NoError(t, err)
	require.NotNil(t, byEmail)
	assert.Equal(t, c.ID(), byEmail.ID())

	none, err := repo.GetByWallet(ctx, "0xdef")
	require.NoError(t, err)
	assert.Nil(t, none)
}
