package event

import (
	"time"

	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/shared/biztime"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/shared/errors"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/shared/id"
)

// Staff grants a customer check-in authority for one event.
type Staff struct {
	id         string
	eventID    string
	staffID    string
	operatorID string
	createdAt  time.Time
}

func NewStaff(eventID, staffID, operatorID string) (*Staff, error) {
	if eventID == "" || staffID == "" {
		return nil, errors.NewValidationError("event ID and staff ID are required")
	}
	return &Staff{
		id:         id.New(),
		eventID:    eventID,
		staffID:    staffID,
		operatorID: operatorID,
		createdAt:  biztime.NowUTC(),
	}, nil
}

func ReconstructStaff(rowID, eventID, staffID, operatorID string, createdAt time.Time) *Staff {
	return &Staff{
		id:         rowID,
		eventID:    eventID,
		staffID:    staffID,
		operatorID: operatorID,
		createdAt:  createdAt,
	}
}

func (s *Staff) ID() string           { return s.id }
func (s *Staff) EventID() string      { return s.eventID }
func (s *Staff) StaffID() string      { return s.staffID }
func (s *Staff) OperatorID() string   { return s.operatorID }
func (s *Staff) CreatedAt() time.Time { return s.createdAt }
