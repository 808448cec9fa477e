package organizer

import (
	"time"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	eventUsecases "github.com/SportsX-xyz/sportsx-ticket-backend/internal/application/event/usecases"
	inventoryUsecases "github.com/SportsX-xyz/sportsx-ticket-backend/internal/application/inventory/usecases"
	tvo "github.com/SportsX-xyz/sportsx-ticket-backend/internal/domain/ticket/valueobjects"
)

// EventRequest carries times as unix milliseconds and money as decimal
// strings.
type EventRequest struct {
	Name              string `json:"name" validate:"required,max=200"`
	Address           string `json:"address" validate:"max=500"`
	Description       string `json:"description" validate:"max=5000"`
	Avatar            string `json:"avatar" validate:"max=1024"`
	StartTime         int64  `json:"start_time" validate:"required,gt=0"`
	EndTime           int64  `json:"end_time" validate:"required,gt=0"`
	TicketReleaseTime int64  `json:"ticket_release_time" validate:"required,gt=0"`
	StopSaleBefore    int    `json:"stop_sale_before" validate:"gte=0"`
	ResaleFeeRate     string `json:"resale_fee_rate" validate:"omitempty,decimal_gte=0,decimal_lt=1"`
	MaxResaleTimes    *int   `json:"max_resale_times" validate:"omitempty,gte=0,lte=1000"`
}

// ToFields leaves market settings nil when omitted so the organizer's
// defaults apply.
func (r *EventRequest) ToFields() eventUsecases.EventFields {
	fields := eventUsecases.EventFields{
		Name:              r.Name,
		Address:           r.Address,
		Description:       r.Description,
		Avatar:            r.Avatar,
		StartTime:         time.UnixMilli(r.StartTime).UTC(),
		EndTime:           time.UnixMilli(r.EndTime).UTC(),
		TicketReleaseTime: time.UnixMilli(r.TicketReleaseTime).UTC(),
		StopSaleBefore:    r.StopSaleBefore,
		MaxResaleTimes:    r.MaxResaleTimes,
	}
	if r.ResaleFeeRate != "" {
		// validated by decimal_gte
		fields.ResaleFeeRate = lo.ToPtr(decimal.RequireFromString(r.ResaleFeeRate))
	}
	return fields
}

type AddStaffRequest struct {
	Email string `json:"email" validate:"required,email,max=255"`
}

type TicketTypeRequest struct {
	TierName  string `json:"tier_name" validate:"required,max=100"`
	TierPrice string `json:"tier_price" validate:"required,decimal_gte=0"`
	Color     string `json:"color" validate:"omitempty,hexcolor"`
}

func (r *TicketTypeRequest) Price() decimal.Decimal {
	return decimal.RequireFromString(r.TierPrice)
}

type SeatRequest struct {
	Row    int    `json:"row" validate:"required,gte=1,lte=10000"`
	Column int    `json:"column" validate:"required,gte=1,lte=10000"`
	Status string `json:"status" validate:"omitempty,oneof=NEW NOT_FOR_SALE NOT_EXIST"`
	Name   string `json:"name" validate:"max=100"`
	// Price overrides the tier price when positive.
	Price string `json:"price" validate:"omitempty,decimal_gte=0"`
}

type ProvisionSeatsRequest struct {
	Seats []SeatRequest `json:"seats" validate:"required,min=1,max=5000,dive"`
}

func (r *ProvisionSeatsRequest) ToSeatInputs() []inventoryUsecases.SeatInput {
	return lo.Map(r.Seats, func(s SeatRequest, _ int) inventoryUsecases.SeatInput {
		status := s.Status
		if status == "" {
			status = tvo.StatusNew.String()
		}
		price := decimal.Zero
		if s.Price != "" {
			price = decimal.RequireFromString(s.Price)
		}
		return inventoryUsecases.SeatInput{
			Row:    s.Row,
			Column: s.Column,
			Status: status,
			Name:   s.Name,
			Price:  price,
		}
	})
}

type EditSeatRequest struct {
	Status       string  `json:"status" validate:"required,oneof=NEW NOT_FOR_SALE NOT_EXIST"`
	TicketTypeID *string `json:"ticket_type_id" validate:"omitempty,uuid"`
}
