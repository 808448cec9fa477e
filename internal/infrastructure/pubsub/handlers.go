package pubsub

import (
	"context"

	"github.com/ThreeDotsLabs/watermill/components/cqrs"
	"github.com/shopspring/decimal"

	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/domain/shared/events"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/infrastructure/metrics"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/shared/logger"
)

const (
	marketPrimary = "primary"
	marketResale  = "resale"
)

// MetricsHandler projects domain events onto prometheus collectors.
type MetricsHandler struct {
	logger logger.Interface
}

func NewMetricsHandler(logger logger.Interface) *MetricsHandler {
	return &MetricsHandler{logger: logger}
}

func (h *MetricsHandler) Handlers() []cqrs.EventHandler {
	return []cqrs.EventHandler{
		cqrs.NewEventHandler("metrics.OnEventPublished", h.onEventPublished),
		cqrs.NewEventHandler("metrics.OnSeatsProvisioned", h.onSeatsProvisioned),
		cqrs.NewEventHandler("metrics.OnTicketReserved", h.onTicketReserved),
		cqrs.NewEventHandler("metrics.OnTicketSold", h.onTicketSold),
		cqrs.NewEventHandler("metrics.OnTicketRelisted", h.onTicketRelisted),
		cqrs.NewEventHandler("metrics.OnTicketUnlisted", h.onTicketUnlisted),
		cqrs.NewEventHandler("metrics.OnTicketCheckedIn", h.onTicketCheckedIn),
		cqrs.NewEventHandler("metrics.OnOrderAbandoned", h.onOrderAbandoned),
	}
}

func (h *MetricsHandler) onEventPublished(ctx context.Context, e *events.EventPublished) error {
	metrics.EventsPublished.Inc()
	h.logger.Infow("event published", "event_id", e.EventID, "organizer_id", e.OrganizerID)
	return nil
}

func (h *MetricsHandler) onSeatsProvisioned(ctx context.Context, e *events.SeatsProvisioned) error {
	metrics.SeatsProvisioned.WithLabelValues("created").Add(float64(e.Created))
	metrics.SeatsProvisioned.WithLabelValues("skipped").Add(float64(e.Skipped))
	return nil
}

func (h *MetricsHandler) onTicketReserved(ctx context.Context, e *events.TicketReserved) error {
	metrics.TicketTransitions.WithLabelValues("reserve").Inc()
	return nil
}

func (h *MetricsHandler) onTicketSold(ctx context.Context, e *events.TicketSold) error {
	market := marketPrimary
	if e.SellerID != nil {
		market = marketResale
	}
	metrics.TicketTransitions.WithLabelValues("settle").Inc()
	metrics.TicketSales.WithLabelValues(market).Inc()
	metrics.SalesVolume.WithLabelValues(market).Add(amount(h.logger, "price", e.Price))
	if market == marketResale {
		metrics.ResaleFees.Add(amount(h.logger, "fee", e.Fee))
	}
	h.logger.Infow("ticket sold",
		"ticket_id", e.TicketID,
		"order_id", e.OrderID,
		"market", market,
		"price", e.Price,
	)
	return nil
}

func (h *MetricsHandler) onTicketRelisted(ctx context.Context, e *events.TicketRelisted) error {
	metrics.TicketTransitions.WithLabelValues("relist").Inc()
	return nil
}

func (h *MetricsHandler) onTicketUnlisted(ctx context.Context, e *events.TicketUnlisted) error {
	metrics.TicketTransitions.WithLabelValues("unlist").Inc()
	return nil
}

func (h *MetricsHandler) onTicketCheckedIn(ctx context.Context, e *events.TicketCheckedIn) error {
	metrics.TicketTransitions.WithLabelValues("check_in").Inc()
	return nil
}

func (h *MetricsHandler) onOrderAbandoned(ctx context.Context, e *events.OrderAbandoned) error {
	metrics.OrdersAbandoned.WithLabelValues(e.Reason).Inc()
	metrics.TicketTransitions.WithLabelValues("abandon").Inc()
	h.logger.Infow("order abandoned", "order_id", e.OrderID, "ticket_id", e.TicketID, "reason", e.Reason)
	return nil
}

// amount parses a decimal string carried on an event. A malformed value is
// logged and counted as zero.
func amount(log logger.Interface, field, raw string) float64 {
	d, err := decimal.NewFromString(raw)
	if err != nil {
		log.Warnw("malformed amount on domain event", "field", field, "value", raw, "error", err)
		return 0
	}
	f, _ := d.Float64()
	return f
}
