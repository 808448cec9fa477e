package dto

import (
	"github.com/shopspring/decimal"

	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/domain/event"
)

type TicketTypeDTO struct {
	ID        string          `json:"id"`
	EventID   string          `json:"event_id"`
	TierName  string          `json:"tier_name"`
	TierPrice decimal.Decimal `json:"tier_price"`
	Color     string          `json:"color"`
	Total     int64           `json:"total"`
	Sold      int64           `json:"sold"`
}

func ToTicketTypeDTO(tt *event.TicketType) *TicketTypeDTO {
	return &TicketTypeDTO{
		ID:        tt.ID(),
		EventID:   tt.EventID(),
		TierName:  tt.TierName(),
		TierPrice: tt.TierPrice(),
		Color:     tt.Color(),
	}
}

type ProvisionResultDTO struct {
	TicketTypeID string `json:"ticket_type_id"`
	Created      int64  `json:"created"`
	Skipped      int64  `json:"skipped"`
}
