package dto

import "time"

type TicketCodeDTO struct {
	TicketID  string    `json:"ticket_id"`
	Code      string    `json:"code"`
	ExpiresAt time.Time `json:"expires_at"`
}
