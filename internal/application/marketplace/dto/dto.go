package dto

import (
	"time"

	eventdto "github.com/SportsX-xyz/sportsx-ticket-backend/internal/application/event/dto"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/domain/event"
)

// InventorySummary aggregates seat counts of one event.
type InventorySummary struct {
	TicketsLeft       int64 `json:"tickets_left"`
	TotalTickets      int64 `json:"total_tickets"`
	ResaleTicketsLeft int64 `json:"resale_tickets_left"`
	MaxRow            int   `json:"max_row"`
	MaxColumn         int   `json:"max_column"`
}

type MarketEventDTO struct {
	*eventdto.EventDTO
	InventorySummary
}

func ToMarketEventDTO(e *event.Event, summary InventorySummary, now time.Time) *MarketEventDTO {
	return &MarketEventDTO{
		EventDTO:         eventdto.ToEventDTO(e, now),
		InventorySummary: summary,
	}
}
