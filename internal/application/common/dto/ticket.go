// Package dto provides data transfer objects shared across the ticketing
// use cases.
package dto

import (
	"time"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/domain/order"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/domain/ticket"
)

type TicketDTO struct {
	ID            string          `json:"id"`
	EventID       string          `json:"event_id"`
	TicketTypeID  string          `json:"ticket_type_id"`
	RowNumber     int             `json:"row_number"`
	ColumnNumber  int             `json:"column_number"`
	Name          string          `json:"name"`
	InitialPrice  decimal.Decimal `json:"initial_price"`
	PreviousPrice decimal.Decimal `json:"previous_price"`
	Price         decimal.Decimal `json:"price"`
	SaleStartTime time.Time       `json:"sale_start_time"`
	SaleEndTime   time.Time       `json:"sale_end_time"`
	ResaleTimes   int             `json:"resale_times"`
	OwnerID       *string         `json:"owner_id,omitempty"`
	Status        string          `json:"status"`
	CheckInAt     *time.Time      `json:"check_in_at,omitempty"`
}

func ToTicketDTO(t *ticket.Ticket) *TicketDTO {
	return &TicketDTO{
		ID:            t.ID(),
		EventID:       t.EventID(),
		TicketTypeID:  t.TicketTypeID(),
		RowNumber:     t.RowNumber(),
		ColumnNumber:  t.ColumnNumber(),
		Name:          t.Name(),
		InitialPrice:  t.InitialPrice(),
		PreviousPrice: t.PreviousPrice(),
		Price:         t.Price(),
		SaleStartTime: t.SaleStartTime(),
		SaleEndTime:   t.SaleEndTime(),
		ResaleTimes:   t.ResaleTimes(),
		OwnerID:       t.OwnerID(),
		Status:        t.Status().String(),
		CheckInAt:     t.CheckInAt(),
	}
}

func ToTicketDTOs(tickets []*ticket.Ticket) []*TicketDTO {
	return lo.Map(tickets, func(t *ticket.Ticket, _ int) *TicketDTO {
		return ToTicketDTO(t)
	})
}

type OrderDTO struct {
	ID           string            `json:"id"`
	TicketID     string            `json:"ticket_id"`
	EventID      string            `json:"event_id"`
	BuyerID      string            `json:"buyer_id"`
	SellerID     *string           `json:"seller_id,omitempty"`
	Price        decimal.Decimal   `json:"price"`
	Fee          decimal.Decimal   `json:"fee"`
	Status       string            `json:"status"`
	TxHash       *string           `json:"tx_hash,omitempty"`
	Settlement   *order.Settlement `json:"settlement,omitempty"`
	PaidAt       *time.Time        `json:"paid_at,omitempty"`
	TransferedAt *time.Time        `json:"transfered_at,omitempty"`
	AbandonedAt  *time.Time        `json:"abandoned_at,omitempty"`
	CreatedAt    time.Time         `json:"created_at"`
}

func ToOrderDTO(o *order.Order) *OrderDTO {
	return &OrderDTO{
		ID:           o.ID(),
		TicketID:     o.TicketID(),
		EventID:      o.EventID(),
		BuyerID:      o.BuyerID(),
		SellerID:     o.SellerID(),
		Price:        o.Price(),
		Fee:          o.Fee(),
		Status:       o.Status().String(),
		TxHash:       o.TxHash(),
		Settlement:   o.Settlement(),
		PaidAt:       o.PaidAt(),
		TransferedAt: o.TransferedAt(),
		AbandonedAt:  o.AbandonedAt(),
		CreatedAt:    o.CreatedAt(),
	}
}

func ToOrderDTOs(orders []*order.Order) []*OrderDTO {
	return lo.Map(orders, func(o *order.Order, _ int) *OrderDTO {
		return ToOrderDTO(o)
	})
}
