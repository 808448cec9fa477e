package order

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	vo "github.com/SportsX-xyz/sportsx-ticket-backend/internal/domain/order/valueobjects"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/shared/biztime"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/shared/errors"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/shared/id"
)

// Order records one purchase attempt of a ticket. It moves
// OPEN -> PAID -> TRANSFERED, or OPEN -> ABANDONED.
type Order struct {
	id           string
	ticketID     string
	eventID      string
	buyerID      string
	sellerID     *string
	price        decimal.Decimal
	fee          decimal.Decimal
	status       vo.OrderStatus
	txHash       *string
	settlement   *Settlement
	paidAt       *time.Time
	transferedAt *time.Time
	abandonedAt  *time.Time
	version      int
	createdAt    time.Time
	updatedAt    time.Time
}

// NewOrder opens an order. sellerID is nil for a primary sale.
func NewOrder(ticketID, eventID, buyerID string, sellerID *string, price decimal.Decimal) (*Order, error) {
	if ticketID == "" || eventID == "" || buyerID == "" {
		return nil, errors.NewValidationError("ticket, event and buyer are required")
	}
	if price.IsNegative() {
		return nil, errors.NewValidationError("order price must not be negative")
	}

	now := biztime.NowUTC()
	return &Order{
		id:        id.New(),
		ticketID:  ticketID,
		eventID:   eventID,
		buyerID:   buyerID,
		sellerID:  sellerID,
		price:     price,
		fee:       decimal.Zero,
		status:    vo.OrderStatusOpen,
		version:   1,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// Snapshot carries every persisted field of an Order.
type Snapshot struct {
	ID           string
	TicketID     string
	EventID      string
	BuyerID      string
	SellerID     *string
	Price        decimal.Decimal
	Fee          decimal.Decimal
	Status       vo.OrderStatus
	TxHash       *string
	Settlement   *Settlement
	PaidAt       *time.Time
	TransferedAt *time.Time
	AbandonedAt  *time.Time
	Version      int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func ReconstructOrder(s Snapshot) (*Order, error) {
	if s.ID == "" {
		return nil, fmt.Errorf("order ID cannot be empty")
	}
	if !s.Status.IsValid() {
		return nil, fmt.Errorf("invalid order status: %s", s.Status)
	}
	return &Order{
		id:           s.ID,
		ticketID:     s.TicketID,
		eventID:      s.EventID,
		buyerID:      s.BuyerID,
		sellerID:     s.SellerID,
		price:        s.Price,
		fee:          s.Fee,
		status:       s.Status,
		txHash:       s.TxHash,
		settlement:   s.Settlement,
		paidAt:       s.PaidAt,
		transferedAt: s.TransferedAt,
		abandonedAt:  s.AbandonedAt,
		version:      s.Version,
		createdAt:    s.CreatedAt,
		updatedAt:    s.UpdatedAt,
	}, nil
}

func (o *Order) Snapshot() Snapshot {
	return Snapshot{
		ID:           o.id,
		TicketID:     o.ticketID,
		EventID:      o.eventID,
		BuyerID:      o.buyerID,
		SellerID:     o.sellerID,
		Price:        o.price,
		Fee:          o.fee,
		Status:       o.status,
		TxHash:       o.txHash,
		Settlement:   o.settlement,
		PaidAt:       o.paidAt,
		TransferedAt: o.transferedAt,
		AbandonedAt:  o.abandonedAt,
		Version:      o.version,
		CreatedAt:    o.createdAt,
		UpdatedAt:    o.updatedAt,
	}
}

// AttachSettlement records the artifact issued for this order.
func (o *Order) AttachSettlement(s Settlement) error {
	if o.status != vo.OrderStatusOpen {
		return o.transitionError("attach a settlement")
	}
	o.settlement = &s
	o.touch()
	return nil
}

// MarkPaid records the confirmed ledger transaction.
func (o *Order) MarkPaid(txHash string, at time.Time) error {
	if strings.TrimSpace(txHash) == "" {
		return errors.NewValidationError("transaction hash is required")
	}
	if !o.status.CanTransitionTo(vo.OrderStatusPaid) {
		return o.transitionError("pay")
	}
	o.status = vo.OrderStatusPaid
	o.txHash = &txHash
	o.paidAt = &at
	o.touch()
	return nil
}

// MarkTransfered completes a paid order, recording the marketplace fee.
func (o *Order) MarkTransfered(fee decimal.Decimal, at time.Time) error {
	if !o.status.CanTransitionTo(vo.OrderStatusTransfered) {
		return o.transitionError("transfer")
	}
	o.status = vo.OrderStatusTransfered
	o.fee = fee
	o.transferedAt = &at
	o.touch()
	return nil
}

func (o *Order) Abandon(at time.Time) error {
	if !o.status.CanTransitionTo(vo.OrderStatusAbandoned) {
		return o.transitionError("abandon")
	}
	o.status = vo.OrderStatusAbandoned
	o.abandonedAt = &at
	o.touch()
	return nil
}

func (o *Order) transitionError(action string) error {
	return errors.NewInvalidTransitionError(
		fmt.Sprintf("order is %s, cannot %s", o.status, action),
		"order_id="+o.id,
	)
}

// IsStale reports whether an OPEN order is older than after at now.
func (o *Order) IsStale(now time.Time, after time.Duration) bool {
	return o.status == vo.OrderStatusOpen && !now.Before(o.createdAt.Add(after))
}

func (o *Order) IsResale() bool {
	return o.sellerID != nil
}

// IsParty reports whether customerID bought or sold in this order.
func (o *Order) IsParty(customerID string) bool {
	return o.buyerID == customerID || (o.sellerID != nil && *o.sellerID == customerID)
}

func (o *Order) touch() {
	o.updatedAt = biztime.NowUTC()
	o.version++
}

func (o *Order) ID() string               { return o.id }
func (o *Order) TicketID() string         { return o.ticketID }
func (o *Order) EventID() string          { return o.eventID }
func (o *Order) BuyerID() string          { return o.buyerID }
func (o *Order) SellerID() *string        { return o.sellerID }
func (o *Order) Price() decimal.Decimal   { return o.price }
func (o *Order) Fee() decimal.Decimal     { return o.fee }
func (o *Order) Status() vo.OrderStatus   { return o.status }
func (o *Order) TxHash() *string          { return o.txHash }
func (o *Order) Settlement() *Settlement  { return o.settlement }
func (o *Order) PaidAt() *time.Time       { return o.paidAt }
func (o *Order) TransferedAt() *time.Time { return o.transferedAt }
func (o *Order) AbandonedAt() *time.Time  { return o.abandonedAt }
func (o *Order) Version() int             { return o.version }
func (o *Order) CreatedAt() time.Time     { return o.createdAt }
func (o *Order) UpdatedAt() time.Time     { return o.updatedAt }
