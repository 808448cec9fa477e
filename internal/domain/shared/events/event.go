// Package events defines the domain events emitted after ticket and order
// state changes commit. They are published on the event bus under their
// struct name.
package events

import (
	"time"

	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/shared/id"
)

type Header struct {
	ID          string    `json:"id"`
	PublishedAt time.Time `json:"published_at"`
}

func NewHeader() Header {
	return Header{
		ID:          id.New(),
		PublishedAt: time.Now().UTC(),
	}
}

// DomainEvent is implemented by every event in this package.
type DomainEvent interface {
	EventHeader() Header
}

func (h Header) EventHeader() Header {
	return h
}

type EventPublished struct {
	Header      `json:"header"`
	EventID     string `json:"event_id"`
	OrganizerID string `json:"organizer_id"`
}

type SeatsProvisioned struct {
	Header       `json:"header"`
	EventID      string `json:"event_id"`
	TicketTypeID string `json:"ticket_type_id"`
	Created      int64  `json:"created"`
	Skipped      int64  `json:"skipped"`
}

type TicketReserved struct {
	Header   `json:"header"`
	TicketID string `json:"ticket_id"`
	EventID  string `json:"event_id"`
	OrderID  string `json:"order_id"`
	BuyerID  string `json:"buyer_id"`
	Resale   bool   `json:"resale"`
	Price    string `json:"price"`
}

type TicketSold struct {
	Header   `json:"header"`
	TicketID string  `json:"ticket_id"`
	EventID  string  `json:"event_id"`
	OrderID  string  `json:"order_id"`
	BuyerID  string  `json:"buyer_id"`
	SellerID *string `json:"seller_id,omitempty"`
	Price    string  `json:"price"`
	Fee      string  `json:"fee"`
	TxHash   string  `json:"tx_hash"`
}

type TicketRelisted struct {
	Header   `json:"header"`
	TicketID string `json:"ticket_id"`
	EventID  string `json:"event_id"`
	OwnerID  string `json:"owner_id"`
	Price    string `json:"price"`
}

type TicketUnlisted struct {
	Header   `json:"header"`
	TicketID string `json:"ticket_id"`
	EventID  string `json:"event_id"`
	OwnerID  string `json:"owner_id"`
}

type TicketCheckedIn struct {
	Header     `json:"header"`
	TicketID   string `json:"ticket_id"`
	EventID    string `json:"event_id"`
	CustomerID string `json:"customer_id"`
	StaffID    string `json:"staff_id"`
}

type OrderAbandoned struct {
	Header   `json:"header"`
	OrderID  string `json:"order_id"`
	TicketID string `json:"ticket_id"`
	EventID  string `json:"event_id"`
	Reason   string `json:"reason"`
}

// Reasons recorded on OrderAbandoned.
const (
	AbandonReasonLedgerFailure = "ledger_failure"
	AbandonReasonResaleCap     = "resale_cap"
	AbandonReasonStale         = "stale"
)
