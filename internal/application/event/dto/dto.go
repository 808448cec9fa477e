package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/domain/event"
)

type EventDTO struct {
	ID                string          `json:"id"`
	OrganizerID       string          `json:"organizer_id"`
	Name              string          `json:"name"`
	Address           string          `json:"address"`
	Description       string          `json:"description"`
	Avatar            string          `json:"avatar"`
	StartTime         time.Time       `json:"start_time"`
	EndTime           time.Time       `json:"end_time"`
	TicketReleaseTime time.Time       `json:"ticket_release_time"`
	StopSaleBefore    int             `json:"stop_sale_before"`
	ResaleFeeRate     decimal.Decimal `json:"resale_fee_rate"`
	MaxResaleTimes    int             `json:"max_resale_times"`
	Status            string          `json:"status"`
	Stage             string          `json:"stage"`
	ArtifactURI       string          `json:"artifact_uri,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// ToEventDTO renders e with its stage derived at now.
func ToEventDTO(e *event.Event, now time.Time) *EventDTO {
	d := e.Details()
	return &EventDTO{
		ID:                e.ID(),
		OrganizerID:       e.OrganizerID(),
		Name:              d.Name,
		Address:           d.Address,
		Description:       d.Description,
		Avatar:            d.Avatar,
		StartTime:         d.StartTime,
		EndTime:           d.EndTime,
		TicketReleaseTime: d.TicketReleaseTime,
		StopSaleBefore:    d.StopSaleBefore,
		ResaleFeeRate:     e.ResaleFeeRate(),
		MaxResaleTimes:    e.MaxResaleTimes(),
		Status:            e.Status().String(),
		Stage:             e.Stage(now).String(),
		ArtifactURI:       e.ArtifactURI(),
		CreatedAt:         e.CreatedAt(),
		UpdatedAt:         e.UpdatedAt(),
	}
}

type StaffDTO struct {
	StaffID    string    `json:"staff_id"`
	Email      string    `json:"email,omitempty"`
	Wallet     string    `json:"wallet_address,omitempty"`
	OperatorID string    `json:"operator_id"`
	CreatedAt  time.Time `json:"created_at"`
}
