package event

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	vo "github.com/SportsX-xyz/sportsx-ticket-backend/internal/domain/event/valueobjects"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/shared/biztime"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/shared/errors"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/shared/id"
)

// Details is the organizer-editable description and schedule of an event.
type Details struct {
	Name              string
	Address           string
	Description       string
	Avatar            string
	StartTime         time.Time
	EndTime           time.Time
	TicketReleaseTime time.Time
	// StopSaleBefore is the number of minutes before EndTime at which sales stop.
	StopSaleBefore int
}

func (d Details) validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return errors.NewValidationError("event name is required")
	}
	if d.StartTime.IsZero() || d.EndTime.IsZero() || d.TicketReleaseTime.IsZero() {
		return errors.NewValidationError("event start, end and ticket release times are required")
	}
	if !d.StartTime.Before(d.EndTime) {
		return errors.NewValidationError("event start time must be before end time")
	}
	if d.TicketReleaseTime.After(d.StartTime) {
		return errors.NewValidationError("ticket release time must not be after start time")
	}
	if d.StopSaleBefore < 0 {
		return errors.NewValidationError("stop sale before must not be negative")
	}
	return nil
}

// MarketSettings are the resale rules the organizer applies to the event.
type MarketSettings struct {
	ResaleFeeRate  decimal.Decimal
	MaxResaleTimes int
}

// Validate rejects fee rates outside [0, 1) and negative resale caps.
func (m MarketSettings) Validate() error {
	if m.ResaleFeeRate.IsNegative() || m.ResaleFeeRate.GreaterThanOrEqual(decimal.NewFromInt(1)) {
		return errors.NewConstraintViolationError(
			"resale fee rate must be in [0, 1)",
			fmt.Sprintf("resale_fee_rate=%s", m.ResaleFeeRate),
		)
	}
	if m.MaxResaleTimes < 0 {
		return errors.NewConstraintViolationError(
			"max resale times must not be negative",
			fmt.Sprintf("max_resale_times=%d", m.MaxResaleTimes),
		)
	}
	return nil
}

// Event is the aggregate root for an organizer's event. Its status moves
// DRAFT -> PREVIEW -> ACTIVE -> DISABLED; its Stage is derived on read.
type Event struct {
	id          string
	organizerID string
	details     Details
	settings    MarketSettings
	status      vo.EventStatus
	artifactURI string
	version     int
	createdAt   time.Time
	updatedAt   time.Time
}

// NewEvent creates a DRAFT event owned by organizerID.
func NewEvent(organizerID string, details Details, settings MarketSettings) (*Event, error) {
	if organizerID == "" {
		return nil, errors.NewValidationError("organizer ID is required")
	}
	if err := details.validate(); err != nil {
		return nil, err
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	now := biztime.NowUTC()
	return &Event{
		id:          id.New(),
		organizerID: organizerID,
		details:     details,
		settings:    settings,
		status:      vo.EventStatusDraft,
		version:     1,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// ReconstructEvent rebuilds an Event from persistence.
func ReconstructEvent(
	eventID string,
	organizerID string,
	details Details,
	settings MarketSettings,
	status vo.EventStatus,
	artifactURI string,
	version int,
	createdAt, updatedAt time.Time,
) (*Event, error) {
	if eventID == "" {
		return nil, fmt.Errorf("event ID cannot be empty")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid event status: %s", status)
	}

	return &Event{
		id:          eventID,
		organizerID: organizerID,
		details:     details,
		settings:    settings,
		status:      status,
		artifactURI: artifactURI,
		version:     version,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

// Update replaces the event's details and market settings. Only DRAFT events
// can be edited.
func (e *Event) Update(details Details, settings MarketSettings) error {
	if !e.status.AllowsFullEdit() {
		return errors.NewInvalidTransitionError(
			fmt.Sprintf("event is %s, only DRAFT events can be edited", e.status),
			"event_id="+e.id,
		)
	}
	if err := details.validate(); err != nil {
		return err
	}
	if err := settings.Validate(); err != nil {
		return err
	}

	e.details = details
	e.settings = settings
	e.touch()
	return nil
}

// AssertInventoryMutable fails unless ticket types and seats may be edited.
func (e *Event) AssertInventoryMutable() error {
	if !e.status.AllowsInventoryEdit() {
		return errors.NewInvalidTransitionError(
			fmt.Sprintf("event is %s, ticket types and seats can only change while DRAFT or PREVIEW", e.status),
			"event_id="+e.id,
		)
	}
	return nil
}

// AssertPreviewable checks the preconditions of MarkPreviewed before the
// artifact is published.
func (e *Event) AssertPreviewable() error {
	if !e.status.CanTransitionTo(vo.EventStatusPreview) {
		return errors.NewInvalidTransitionError(
			fmt.Sprintf("event is %s, cannot move to PREVIEW", e.status),
			"event_id="+e.id,
		)
	}
	if strings.TrimSpace(e.details.Avatar) == "" {
		return errors.NewConstraintViolationError(
			"event avatar is required before preview",
			"event_id="+e.id,
		)
	}
	return nil
}

// MarkPreviewed moves a DRAFT event to PREVIEW, recording the URI of its
// published artifact.
func (e *Event) MarkPreviewed(artifactURI string) error {
	if err := e.AssertPreviewable(); err != nil {
		return err
	}
	if strings.TrimSpace(artifactURI) == "" {
		return errors.NewValidationError("artifact URI is required")
	}

	e.status = vo.EventStatusPreview
	e.artifactURI = artifactURI
	e.touch()
	return nil
}

// Publish moves a PREVIEW event to ACTIVE.
func (e *Event) Publish() error {
	return e.transitionTo(vo.EventStatusActive)
}

// Disable moves an ACTIVE event to DISABLED.
func (e *Event) Disable() error {
	return e.transitionTo(vo.EventStatusDisabled)
}

// AssertDeletable fails unless the event is still a DRAFT. Callers must also
// check that no seat has entered the marketplace.
func (e *Event) AssertDeletable() error {
	if e.status != vo.EventStatusDraft {
		return errors.NewInvalidTransitionError(
			fmt.Sprintf("event is %s, only DRAFT events can be deleted", e.status),
			"event_id="+e.id,
		)
	}
	return nil
}

func (e *Event) transitionTo(next vo.EventStatus) error {
	if !e.status.CanTransitionTo(next) {
		return errors.NewInvalidTransitionError(
			fmt.Sprintf("event is %s, cannot move to %s", e.status, next),
			"event_id="+e.id,
		)
	}
	e.status = next
	e.touch()
	return nil
}

// Stage derives the event's temporal phase at now. Explicit non-ACTIVE
// statuses win; an ACTIVE event is PREVIEW before ticket release, ONSALE
// until start, LIVE until end and ENDED afterwards.
func (e *Event) Stage(now time.Time) vo.Stage {
	switch e.status {
	case vo.EventStatusDraft:
		return vo.StageDraft
	case vo.EventStatusPreview:
		return vo.StagePreview
	case vo.EventStatusDisabled:
		return vo.StageDisabled
	}

	switch {
	case now.Before(e.details.TicketReleaseTime):
		return vo.StagePreview
	case now.Before(e.details.StartTime):
		return vo.StageOnSale
	case now.Before(e.details.EndTime):
		return vo.StageLive
	default:
		return vo.StageEnded
	}
}

// SaleStartTime is when seats of this event may first be bought.
func (e *Event) SaleStartTime() time.Time {
	return e.details.TicketReleaseTime
}

// SaleEndTime is EndTime minus the stop-sale window.
func (e *Event) SaleEndTime() time.Time {
	return e.details.EndTime.Add(-time.Duration(e.details.StopSaleBefore) * time.Minute)
}

// AssertOnSale fails unless the event is ACTIVE and now is inside
// [SaleStartTime, SaleEndTime).
func (e *Event) AssertOnSale(now time.Time) error {
	if e.status != vo.EventStatusActive {
		return errors.NewInvalidTransitionError(
			fmt.Sprintf("event is %s, tickets are not on sale", e.status),
			"event_id="+e.id,
		)
	}
	if now.Before(e.SaleStartTime()) {
		return errors.NewInvalidTransitionError("ticket sale has not started", "event_id="+e.id)
	}
	if !now.Before(e.SaleEndTime()) {
		return errors.NewExpiredError("ticket sale has stopped", "event_id="+e.id)
	}
	return nil
}

// HasEnded reports whether now is at or past the event's end time.
func (e *Event) HasEnded(now time.Time) bool {
	return !now.Before(e.details.EndTime)
}

func (e *Event) BelongsTo(organizerID string) bool {
	return e.organizerID == organizerID
}

func (e *Event) touch() {
	e.updatedAt = biztime.NowUTC()
	e.version++
}

func (e *Event) ID() string {
	return e.id
}

func (e *Event) OrganizerID() string {
	return e.organizerID
}

func (e *Event) Details() Details {
	return e.details
}

func (e *Event) Name() string {
	return e.details.Name
}

func (e *Event) StartTime() time.Time {
	return e.details.StartTime
}

func (e *Event) EndTime() time.Time {
	return e.details.EndTime
}

func (e *Event) TicketReleaseTime() time.Time {
	return e.details.TicketReleaseTime
}

func (e *Event) StopSaleBefore() int {
	return e.details.StopSaleBefore
}

func (e *Event) Settings() MarketSettings {
	return e.settings
}

func (e *Event) ResaleFeeRate() decimal.Decimal {
	return e.settings.ResaleFeeRate
}

func (e *Event) MaxResaleTimes() int {
	return e.settings.MaxResaleTimes
}

func (e *Event) Status() vo.EventStatus {
	return e.status
}

func (e *Event) ArtifactURI() string {
	return e.artifactURI
}

func (e *Event) Version() int {
	return e.version
}

func (e *Event) CreatedAt() time.Time {
	return e.createdAt
}

func (e *Event) UpdatedAt() time.Time {
	return e.updatedAt
}
