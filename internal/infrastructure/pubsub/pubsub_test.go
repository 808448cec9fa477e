package pubsub

import (
	"context"
	"testing"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/domain/shared/events"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/infrastructure/metrics"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/shared/config"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/shared/logger"
)

func startBus(t *testing.T) *EventBus {
	t.Helper()
	wlog := NewWatermillLogger(logger.NewNopLogger())

	transport, err := NewTransport(config.PubSubConfig{Driver: DriverGoChannel}, nil, wlog)
	require.NoError(t, err)

	router, err := NewRouter(transport, NewMetricsHandler(logger.NewNopLogger()).Handlers(), wlog)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		_ = router.Run(ctx)
	}()
	t.Cleanup(func() {
		cancel()
		_ = router.Close()
	})

	select {
	case <-router.Running():
	case <-time.After(5 * time.Second):
		t.Fatal("router did not start")
	}

	bus, err := NewEventBus(transport.Publisher, wlog)
	require.NoError(t, err)
	return bus
}

func TestEventBus_SalesReachMetrics(t *testing.T) {
	bus := startBus(t)
	ctx := context.Background()

	resale := testutil.ToFloat64(metrics.TicketSales.WithLabelValues(marketResale))
	primary := testutil.ToFloat64(metrics.TicketSales.WithLabelValues(marketPrimary))
	fees := testutil.ToFloat64(metrics.ResaleFees)

	seller := "seller-1"
	require.NoError(t, bus.Publish(ctx, events.TicketSold{
		Header:   events.NewHeader(),
		TicketID: "t-1",
		OrderID:  "o-1",
		BuyerID:  "b-1",
		SellerID: &seller,
		Price:    "200",
		Fee:      "20",
	}))
	require.NoError(t, bus.Publish(ctx, events.TicketSold{
		Header:   events.NewHeader(),
		TicketID: "t-2",
		OrderID:  "o-2",
		BuyerID:  "b-1",
		Price:    "100",
		Fee:      "0",
	}))

	assert.Eventually(t, func() bool {
		return testutil.ToFloat64(metrics.TicketSales.WithLabelValues(marketResale)) == resale+1 &&
			testutil.ToFloat64(metrics.TicketSales.WithLabelValues(marketPrimary)) == primary+1 &&
			testutil.ToFloat64(metrics.ResaleFees) == fees+20
	}, 5*time.Second, 10*time.Millisecond)
}

func TestEventBus_AbandonedOrdersByReason(t *testing.T) {
	bus := startBus(t)
	before := testutil.ToFloat64(metrics.OrdersAbandoned.WithLabelValues(events.AbandonReasonStale))

	require.NoError(t, bus.Publish(context.Background(), events.OrderAbandoned{
		Header:   events.NewHeader(),
		OrderID:  "o-1",
		TicketID: "t-1",
		Reason:   events.AbandonReasonStale,
	}))

	assert.Eventually(t, func() bool {
		return testutil.ToFloat64(metrics.OrdersAbandoned.WithLabelValues(events.AbandonReasonStale)) == before+1
	}, 5*time.Second, 10*time.Millisecond)
}

func TestNewTransport_Drivers(t *testing.T) {
	wlog := watermill.NopLogger{}

	_, err := NewTransport(config.PubSubConfig{Driver: "kafka"}, nil, wlog)
	assert.Error(t, err)

	_, err = NewTransport(config.PubSubConfig{Driver: DriverRedis}, nil, wlog)
	assert.Error(t, err)

	tr, err := NewTransport(config.PubSubConfig{}, nil, wlog)
	require.NoError(t, err)
	assert.NoError(t, tr.Close())
}

func TestAmount(t *testing.T) {
	assert.Equal(t, 12.5, amount(logger.NewNopLogger(), "price", "12.5"))
	assert.Equal(t, 0.0, amount(logger.NewNopLogger(), "price", "twelve"))
}
