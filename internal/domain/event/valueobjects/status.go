package valueobjects

import "fmt"

// EventStatus is the persisted lifecycle status of an event.
type EventStatus string

const (
	EventStatusDraft    EventStatus = "DRAFT"
	EventStatusPreview  EventStatus = "PREVIEW"
	EventStatusActive   EventStatus = "ACTIVE"
	EventStatusDisabled EventStatus = "DISABLED"
)

var validEventStatuses = map[EventStatus]bool{
	EventStatusDraft:    true,
	EventStatusPreview:  true,
	EventStatusActive:   true,
	EventStatusDisabled: true,
}

// ACTIVE is irreversible for ordinary flows; DISABLED is terminal.
var eventStatusTransitions = map[EventStatus][]EventStatus{
	EventStatusDraft:   {EventStatusPreview},
	EventStatusPreview: {EventStatusActive},
	EventStatusActive:  {EventStatusDisabled},
}

func (s EventStatus) String() string {
	return string(s)
}

func (s EventStatus) IsValid() bool {
	return validEventStatuses[s]
}

func (s EventStatus) CanTransitionTo(next EventStatus) bool {
	for _, allowed := range eventStatusTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// AllowsFullEdit reports whether name, schedule and market settings may change.
func (s EventStatus) AllowsFullEdit() bool {
	return s == EventStatusDraft
}

// AllowsInventoryEdit reports whether ticket types and seats may change.
func (s EventStatus) AllowsInventoryEdit() bool {
	return s == EventStatusDraft || s == EventStatusPreview
}

// IsListed reports whether the event is visible on the marketplace.
func (s EventStatus) IsListed() bool {
	return s == EventStatusActive || s == EventStatusPreview
}

func NewEventStatus(s string) (EventStatus, error) {
	status := EventStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid event status: %s", s)
	}
	return status, nil
}
