package ticket

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	vo "github.com/SportsX-xyz/sportsx-ticket-backend/internal/domain/ticket/valueobjects"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/shared/biztime"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/shared/errors"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/shared/id"
)

// MinResalePrice is the lowest price a seat can be relisted at.
var MinResalePrice = decimal.NewFromInt(1)

// SeatSpec describes one seat to provision under a ticket type.
type SeatSpec struct {
	Row    int
	Column int
	Status vo.TicketStatus
	Name   string
	// Price overrides the tier price when positive.
	Price decimal.Decimal
}

// Ticket is one seat of an event. OwnerID is set iff the status is SOLD,
// RESALE or USED; while a resale seat is LOCKed its seller lives on the order.
type Ticket struct {
	id            string
	eventID       string
	ticketTypeID  string
	rowNumber     int
	columnNumber  int
	name          string
	initialPrice  decimal.Decimal
	previousPrice decimal.Decimal
	price         decimal.Decimal
	saleStartTime time.Time
	saleEndTime   time.Time
	resaleTimes   int
	ownerID       *string
	status        vo.TicketStatus
	lastOrderID   *string
	staffID       *string
	checkInAt     *time.Time
	checkInTxRef  string
	version       int
	createdAt     time.Time
	updatedAt     time.Time
}

// NewSeat materializes a seat from spec. Only configurable statuses are
// accepted.
func NewSeat(
	eventID, ticketTypeID string,
	spec SeatSpec,
	price decimal.Decimal,
	saleStart, saleEnd time.Time,
) (*Ticket, error) {
	if !spec.Status.IsConfigurable() {
		return nil, errors.NewValidationError(
			fmt.Sprintf("seat status %s cannot be provisioned", spec.Status),
		)
	}
	if spec.Row < 1 || spec.Column < 1 {
		return nil, errors.NewValidationError(
			fmt.Sprintf("seat coordinates must be positive, got (%d, %d)", spec.Row, spec.Column),
		)
	}
	name := spec.Name
	if name == "" {
		name = fmt.Sprintf("R%d-C%d", spec.Row, spec.Column)
	}

	now := biztime.NowUTC()
	return &Ticket{
		id:            id.New(),
		eventID:       eventID,
		ticketTypeID:  ticketTypeID,
		rowNumber:     spec.Row,
		columnNumber:  spec.Column,
		name:          name,
		initialPrice:  price,
		previousPrice: price,
		price:         price,
		saleStartTime: saleStart,
		saleEndTime:   saleEnd,
		status:        spec.Status,
		version:       1,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

// Snapshot carries every persisted field of a Ticket.
type Snapshot struct {
	ID            string
	EventID       string
	TicketTypeID  string
	RowNumber     int
	ColumnNumber  int
	Name          string
	InitialPrice  decimal.Decimal
	PreviousPrice decimal.Decimal
	Price         decimal.Decimal
	SaleStartTime time.Time
	SaleEndTime   time.Time
	ResaleTimes   int
	OwnerID       *string
	Status        vo.TicketStatus
	LastOrderID   *string
	StaffID       *string
	CheckInAt     *time.Time
	CheckInTxRef  string
	Version       int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func ReconstructTicket(s Snapshot) (*Ticket, error) {
	if s.ID == "" {
		return nil, fmt.Errorf("ticket ID cannot be empty")
	}
	if !s.Status.IsValid() {
		return nil, fmt.Errorf("invalid ticket status: %s", s.Status)
	}
	return &Ticket{
		id:            s.ID,
		eventID:       s.EventID,
		ticketTypeID:  s.TicketTypeID,
		rowNumber:     s.RowNumber,
		columnNumber:  s.ColumnNumber,
		name:          s.Name,
		initialPrice:  s.InitialPrice,
		previousPrice: s.PreviousPrice,
		price:         s.Price,
		saleStartTime: s.SaleStartTime,
		saleEndTime:   s.SaleEndTime,
		resaleTimes:   s.ResaleTimes,
		ownerID:       s.OwnerID,
		status:        s.Status,
		lastOrderID:   s.LastOrderID,
		staffID:       s.StaffID,
		checkInAt:     s.CheckInAt,
		checkInTxRef:  s.CheckInTxRef,
		version:       s.Version,
		createdAt:     s.CreatedAt,
		updatedAt:     s.UpdatedAt,
	}, nil
}

func (t *Ticket) Snapshot() Snapshot {
	return Snapshot{
		ID:            t.id,
		EventID:       t.eventID,
		TicketTypeID:  t.ticketTypeID,
		RowNumber:     t.rowNumber,
		ColumnNumber:  t.columnNumber,
		Name:          t.name,
		InitialPrice:  t.initialPrice,
		PreviousPrice: t.previousPrice,
		Price:         t.price,
		SaleStartTime: t.saleStartTime,
		SaleEndTime:   t.saleEndTime,
		ResaleTimes:   t.resaleTimes,
		OwnerID:       t.ownerID,
		Status:        t.status,
		LastOrderID:   t.lastOrderID,
		StaffID:       t.staffID,
		CheckInAt:     t.checkInAt,
		CheckInTxRef:  t.checkInTxRef,
		Version:       t.version,
		CreatedAt:     t.createdAt,
		UpdatedAt:     t.updatedAt,
	}
}

func (t *Ticket) apply(trigger vo.Trigger) error {
	next, ok := vo.Next(t.status, trigger)
	if !ok {
		return errors.NewInvalidTransitionError(
			fmt.Sprintf("ticket is %s, cannot %s", t.status, trigger),
			"ticket_id="+t.id,
		)
	}
	t.status = next
	t.touch()
	return nil
}

// Configure sets an organizer-controlled status. Both the current and the
// target status must be configurable.
func (t *Ticket) Configure(to vo.TicketStatus) error {
	trigger, ok := vo.ConfigureTrigger(to)
	if !ok {
		return errors.NewValidationError(
			fmt.Sprintf("seat status %s cannot be set by an organizer", to),
		)
	}
	return t.apply(trigger)
}

// MoveToType reassigns a configurable seat to another tier of the same event.
func (t *Ticket) MoveToType(ticketTypeID string, price decimal.Decimal) error {
	if !t.status.IsConfigurable() {
		return errors.NewInvalidTransitionError(
			fmt.Sprintf("ticket is %s, cannot change its ticket type", t.status),
			"ticket_id="+t.id,
		)
	}
	t.ticketTypeID = ticketTypeID
	t.initialPrice = price
	t.previousPrice = price
	t.price = price
	t.touch()
	return nil
}

// Reserve locks the seat for buyerID and returns the seller, nil for a
// primary sale. The owner is cleared while the seat is locked.
func (t *Ticket) Reserve(buyerID string) (*string, error) {
	if t.IsOwnedBy(buyerID) {
		return nil, errors.NewForbiddenError(
			"buyer already owns this ticket",
			"ticket_id="+t.id,
		)
	}
	seller := t.ownerID
	if err := t.apply(vo.TriggerReserve); err != nil {
		return nil, err
	}
	t.ownerID = nil
	return seller, nil
}

// AssertCanSettle rejects a resale settlement that would push resaleTimes
// past maxResaleTimes.
func (t *Ticket) AssertCanSettle(isResale bool, maxResaleTimes int) error {
	if isResale && t.resaleTimes+1 > maxResaleTimes {
		return errors.NewConstraintViolationError(
			fmt.Sprintf("ticket has been resold %d times, the event allows %d", t.resaleTimes, maxResaleTimes),
			"ticket_id="+t.id,
		)
	}
	return nil
}

// Settle completes a LOCKed sale and hands the seat to buyerID.
func (t *Ticket) Settle(buyerID, orderID string, isResale bool, maxResaleTimes int) error {
	if err := t.AssertCanSettle(isResale, maxResaleTimes); err != nil {
		return err
	}
	if err := t.apply(vo.TriggerSettle); err != nil {
		return err
	}
	if isResale {
		t.resaleTimes++
	}
	t.ownerID = &buyerID
	t.lastOrderID = &orderID
	return nil
}

// Release undoes Reserve. A resale seat goes back to RESALE owned by seller.
func (t *Ticket) Release(seller *string) error {
	if seller == nil {
		return t.apply(vo.TriggerAbandon)
	}
	if err := t.apply(vo.TriggerAbandonResale); err != nil {
		return err
	}
	owner := *seller
	t.ownerID = &owner
	return nil
}

// Relist puts an owned seat on the resale market at price.
func (t *Ticket) Relist(ownerID string, price decimal.Decimal) error {
	if err := t.AssertOwnedBy(ownerID); err != nil {
		return err
	}
	if price.LessThan(MinResalePrice) {
		return errors.NewValidationError(
			fmt.Sprintf("resale price must be at least %s", MinResalePrice),
		)
	}
	from := t.status
	if err := t.apply(vo.TriggerRelist); err != nil {
		return err
	}
	if from == vo.StatusSold {
		t.previousPrice = t.price
	}
	t.price = price
	return nil
}

// Unlist withdraws a resale listing, restoring the pre-listing price.
func (t *Ticket) Unlist(ownerID string) error {
	if err := t.AssertOwnedBy(ownerID); err != nil {
		return err
	}
	if err := t.apply(vo.TriggerUnlist); err != nil {
		return err
	}
	t.price = t.previousPrice
	return nil
}

// CheckIn consumes a SOLD ticket.
func (t *Ticket) CheckIn(staffID, txRef string, at time.Time) error {
	if err := t.apply(vo.TriggerCheckIn); err != nil {
		return err
	}
	t.staffID = &staffID
	t.checkInAt = &at
	t.checkInTxRef = txRef
	return nil
}

func (t *Ticket) AssertOwnedBy(customerID string) error {
	if !t.IsOwnedBy(customerID) {
		return errors.NewForbiddenError(
			"customer does not own this ticket",
			"ticket_id="+t.id,
		)
	}
	return nil
}

func (t *Ticket) IsOwnedBy(customerID string) bool {
	return t.ownerID != nil && *t.ownerID == customerID
}

func (t *Ticket) touch() {
	t.updatedAt = biztime.NowUTC()
	t.version++
}

func (t *Ticket) ID() string                     { return t.id }
func (t *Ticket) EventID() string                { return t.eventID }
func (t *Ticket) TicketTypeID() string           { return t.ticketTypeID }
func (t *Ticket) RowNumber() int                 { return t.rowNumber }
func (t *Ticket) ColumnNumber() int              { return t.columnNumber }
func (t *Ticket) Name() string                   { return t.name }
func (t *Ticket) InitialPrice() decimal.Decimal  { return t.initialPrice }
func (t *Ticket) PreviousPrice() decimal.Decimal { return t.previousPrice }
func (t *Ticket) Price() decimal.Decimal         { return t.price }
func (t *Ticket) SaleStartTime() time.Time       { return t.saleStartTime }
func (t *Ticket) SaleEndTime() time.Time         { return t.saleEndTime }
func (t *Ticket) ResaleTimes() int               { return t.resaleTimes }
func (t *Ticket) OwnerID() *string               { return t.ownerID }
func (t *Ticket) Status() vo.TicketStatus        { return t.status }
func (t *Ticket) LastOrderID() *string           { return t.lastOrderID }
func (t *Ticket) StaffID() *string               { return t.staffID }
func (t *Ticket) CheckInAt() *time.Time          { return t.checkInAt }
func (t *Ticket) CheckInTxRef() string           { return t.checkInTxRef }
func (t *Ticket) Version() int                   { return t.version }
func (t *Ticket) CreatedAt() time.Time           { return t.createdAt }
func (t *Ticket) UpdatedAt() time.Time           { return t.updatedAt }
