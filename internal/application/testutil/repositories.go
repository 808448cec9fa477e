// Package testutil provides in-memory repositories and collaborators for
// testing the ticketing use cases.
package testutil

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/domain/customer"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/domain/event"
	evo "github.com/SportsX-xyz/sportsx-ticket-backend/internal/domain/event/valueobjects"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/domain/order"
	ovo "github.com/SportsX-xyz/sportsx-ticket-backend/internal/domain/order/valueobjects"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/domain/ticket"
	tvo "github.com/SportsX-xyz/sportsx-ticket-backend/internal/domain/ticket/valueobjects"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/shared/errors"
)

func statusIn[S comparable](s S, statuses []S) bool {
	if len(statuses) == 0 {
		return true
	}
	for _, candidate := range statuses {
		if s == candidate {
			return true
		}
	}
	return false
}

// EventRepository keeps events in memory.
type EventRepository struct {
	mu     sync.RWMutex
	events map[string]*event.Event
}

func NewEventRepository() *EventRepository {
	return &EventRepository{events: make(map[string]*event.Event)}
}

func (r *EventRepository) Create(ctx context.Context, e *event.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events[e.ID()] = e
	return nil
}

func (r *EventRepository) Update(ctx context.Context, e *event.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.events[e.ID()]; !ok {
		return errors.NewNotFoundError("event not found")
	}
	r.events[e.ID()] = e
	return nil
}

func (r *EventRepository) Delete(ctx context.Context, eventID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.events, eventID)
	return nil
}

func (r *EventRepository) GetByID(ctx context.Context, eventID string) (*event.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.events[eventID], nil
}

func (r *EventRepository) ListByOrganizer(ctx context.Context, organizerID string) ([]*event.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*event.Event
	for _, e := range r.events {
		if e.BelongsTo(organizerID) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *EventRepository) ListByStatus(ctx context.Context, statuses ...evo.EventStatus) ([]*event.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*event.Event
	for _, e := range r.events {
		if statusIn(e.Status(), statuses) {
			out = append(out, e)
		}
	}
	return out, nil
}

// TicketTypeRepository keeps ticket types in memory.
type TicketTypeRepository struct {
	mu    sync.RWMutex
	types map[string]*event.TicketType
}

func NewTicketTypeRepository() *TicketTypeRepository {
	return &TicketTypeRepository{types: make(map[string]*event.TicketType)}
}

func (r *TicketTypeRepository) Create(ctx context.Context, tt *event.TicketType) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.types[tt.ID()] = tt
	return nil
}

func (r *TicketTypeRepository) Update(ctx context.Context, tt *event.TicketType) error {
	return r.Create(ctx, tt)
}

func (r *TicketTypeRepository) Delete(ctx context.Context, typeID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.types, typeID)
	return nil
}

func (r *TicketTypeRepository) DeleteByEvent(ctx context.Context, eventID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, tt := range r.types {
		if tt.BelongsTo(eventID) {
			delete(r.types, id)
		}
	}
	return nil
}

func (r *TicketTypeRepository) GetByID(ctx context.Context, typeID string) (*event.TicketType, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.types[typeID], nil
}

func (r *TicketTypeRepository) ListByEvent(ctx context.Context, eventID string) ([]*event.TicketType, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*event.TicketType
	for _, tt := range r.types {
		if tt.BelongsTo(eventID) {
			out = append(out, tt)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt().Before(out[j].CreatedAt()) })
	return out, nil
}

// StaffRepository keeps event staff in memory.
type StaffRepository struct {
	mu    sync.RWMutex
	staff map[string]*event.Staff
}

func NewStaffRepository() *StaffRepository {
	return &StaffRepository{staff: make(map[string]*event.Staff)}
}

func staffKey(eventID, staffID string) string {
	return eventID + "/" + staffID
}

func (r *StaffRepository) Create(ctx context.Context, s *event.Staff) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := staffKey(s.EventID(), s.StaffID())
	if _, ok := r.staff[key]; ok {
		return errors.NewConstraintViolationError("staff member already registered for event")
	}
	r.staff[key] = s
	return nil
}

func (r *StaffRepository) Delete(ctx context.Context, eventID, staffID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.staff, staffKey(eventID, staffID))
	return nil
}

func (r *StaffRepository) DeleteByEvent(ctx context.Context, eventID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for key, s := range r.staff {
		if s.EventID() == eventID {
			delete(r.staff, key)
		}
	}
	return nil
}

func (r *StaffRepository) Exists(ctx context.Context, eventID, staffID string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.staff[staffKey(eventID, staffID)]
	return ok, nil
}

func (r *StaffRepository) ListByEvent(ctx context.Context, eventID string) ([]*event.Staff, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*event.Staff
	for _, s := range r.staff {
		if s.EventID() == eventID {
			out = append(out, s)
		}
	}
	return out, nil
}

// TicketRepository stores ticket snapshots so callers never share state with
// the store, mirroring a database round-trip.
type TicketRepository struct {
	mu      sync.Mutex
	tickets map[string]ticket.Snapshot
}

func NewTicketRepository() *TicketRepository {
	return &TicketRepository{tickets: make(map[string]ticket.Snapshot)}
}

func (r *TicketRepository) load(s ticket.Snapshot) *ticket.Ticket {
	t, err := ticket.ReconstructTicket(s)
	if err != nil {
		panic(err)
	}
	return t
}

func (r *TicketRepository) GetByID(ctx context.Context, ticketID string) (*ticket.Ticket, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.tickets[ticketID]
	if !ok {
		return nil, nil
	}
	return r.load(s), nil
}

func (r *TicketRepository) CompareAndSwap(ctx context.Context, t *ticket.Ticket, from tvo.TicketStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.tickets[t.ID()]
	if !ok {
		return errors.NewNotFoundError("ticket not found")
	}
	if stored.Status != from {
		return errors.NewInvalidTransitionError(
			fmt.Sprintf("ticket is %s, expected %s", stored.Status, from),
			"ticket_id="+t.ID(),
		)
	}
	for id, other := range r.tickets {
		if id != t.ID() && other.TicketTypeID == t.TicketTypeID() &&
			other.RowNumber == t.RowNumber() && other.ColumnNumber == t.ColumnNumber() {
			return errors.NewConstraintViolationError(
				fmt.Sprintf("seat (%d, %d) already exists in ticket type %s", t.RowNumber(), t.ColumnNumber(), t.TicketTypeID()),
				"ticket_id="+t.ID(),
			)
		}
	}
	r.tickets[t.ID()] = t.Snapshot()
	return nil
}

func (r *TicketRepository) BulkInsertIgnoringConflicts(ctx context.Context, tickets []*ticket.Ticket) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	taken := make(map[string]bool, len(r.tickets))
	for _, s := range r.tickets {
		taken[fmt.Sprintf("%s/%d/%d", s.TicketTypeID, s.RowNumber, s.ColumnNumber)] = true
	}
	var created int64
	for _, t := range tickets {
		key := fmt.Sprintf("%s/%d/%d", t.TicketTypeID(), t.RowNumber(), t.ColumnNumber())
		if taken[key] {
			continue
		}
		taken[key] = true
		r.tickets[t.ID()] = t.Snapshot()
		created++
	}
	return created, nil
}

func (r *TicketRepository) UpdateSaleWindow(ctx context.Context, eventID string, start, end time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, s := range r.tickets {
		if s.EventID == eventID {
			s.SaleStartTime = start
			s.SaleEndTime = end
			s.Version++
			r.tickets[id] = s
		}
	}
	return nil
}

func (r *TicketRepository) filter(match func(ticket.Snapshot) bool) []*ticket.Ticket {
	var out []*ticket.Ticket
	for _, s := range r.tickets {
		if match(s) {
			out = append(out, r.load(s))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].RowNumber() != out[j].RowNumber() {
			return out[i].RowNumber() < out[j].RowNumber()
		}
		return out[i].ColumnNumber() < out[j].ColumnNumber()
	})
	return out
}

func (r *TicketRepository) ListByEvent(ctx context.Context, eventID string, statuses ...tvo.TicketStatus) ([]*ticket.Ticket, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.filter(func(s ticket.Snapshot) bool {
		return s.EventID == eventID && statusIn(s.Status, statuses)
	}), nil
}

func (r *TicketRepository) ListByOwner(ctx context.Context, ownerID string, statuses ...tvo.TicketStatus) ([]*ticket.Ticket, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.filter(func(s ticket.Snapshot) bool {
		return s.OwnerID != nil && *s.OwnerID == ownerID && statusIn(s.Status, statuses)
	}), nil
}

func (r *TicketRepository) CountByEvent(ctx context.Context, eventID string, statuses ...tvo.TicketStatus) (int64, error) {
	list, _ := r.ListByEvent(ctx, eventID, statuses...)
	return int64(len(list)), nil
}

func (r *TicketRepository) CountByTicketType(ctx context.Context, typeID string, statuses ...tvo.TicketStatus) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.filter(func(s ticket.Snapshot) bool {
		return s.TicketTypeID == typeID && statusIn(s.Status, statuses)
	}))), nil
}

func (r *TicketRepository) MaxCoordinates(ctx context.Context, eventID string) (int, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var maxRow, maxColumn int
	for _, s := range r.tickets {
		if s.EventID != eventID {
			continue
		}
		maxRow = max(maxRow, s.RowNumber)
		maxColumn = max(maxColumn, s.ColumnNumber)
	}
	return maxRow, maxColumn, nil
}

func (r *TicketRepository) DeleteByTicketType(ctx context.Context, typeID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, s := range r.tickets {
		if s.TicketTypeID == typeID {
			delete(r.tickets, id)
		}
	}
	return nil
}

func (r *TicketRepository) DeleteByEvent(ctx context.Context, eventID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, s := range r.tickets {
		if s.EventID == eventID {
			delete(r.tickets, id)
		}
	}
	return nil
}

// Put stores t unconditionally. Tests use it to arrange fixtures.
func (r *TicketRepository) Put(t *ticket.Ticket) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tickets[t.ID()] = t.Snapshot()
}

// OrderRepository stores order snapshots in memory.
type OrderRepository struct {
	mu     sync.Mutex
	orders map[string]order.Snapshot
}

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{orders: make(map[string]order.Snapshot)}
}

func (r *OrderRepository) load(s order.Snapshot) *order.Order {
	o, err := order.ReconstructOrder(s)
	if err != nil {
		panic(err)
	}
	return o
}

func (r *OrderRepository) Create(ctx context.Context, o *order.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders[o.ID()] = o.Snapshot()
	return nil
}

func (r *OrderRepository) GetByID(ctx context.Context, orderID string) (*order.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.orders[orderID]
	if !ok {
		return nil, nil
	}
	return r.load(s), nil
}

func (r *OrderRepository) CompareAndSwap(ctx context.Context, o *order.Order, from ovo.OrderStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.orders[o.ID()]
	if !ok {
		return errors.NewNotFoundError("order not found")
	}
	if stored.Status != from {
		return errors.NewInvalidTransitionError(
			fmt.Sprintf("order is %s, expected %s", stored.Status, from),
			"order_id="+o.ID(),
		)
	}
	if hash := o.TxHash(); hash != nil {
		for id, other := range r.orders {
			if id != o.ID() && other.TxHash != nil && *other.TxHash == *hash {
				return errors.NewConstraintViolationError(
					"transaction hash already settled another order",
					"tx_hash="+*hash,
				)
			}
		}
	}
	r.orders[o.ID()] = o.Snapshot()
	return nil
}

func (r *OrderRepository) ListByCustomer(ctx context.Context, customerID string) ([]*order.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*order.Order
	for _, s := range r.orders {
		o := r.load(s)
		if o.IsParty(customerID) {
			out = append(out, o)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt().After(out[j].CreatedAt()) })
	return out, nil
}

func (r *OrderRepository) ListStaleOpen(ctx context.Context, createdBefore time.Time, limit int) ([]*order.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*order.Order
	for _, s := range r.orders {
		if s.Status == ovo.OrderStatusOpen && s.CreatedAt.Before(createdBefore) {
			out = append(out, r.load(s))
		}
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

func (r *OrderRepository) DeleteByEvent(ctx context.Context, eventID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, s := range r.orders {
		if s.EventID == eventID {
			delete(r.orders, id)
		}
	}
	return nil
}

// All returns every stored order.
func (r *OrderRepository) All() []*order.Order {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*order.Order, 0, len(r.orders))
	for _, s := range r.orders {
		out = append(out, r.load(s))
	}
	return out
}

// CustomerRepository keeps customers in memory.
type CustomerRepository struct {
	mu        sync.RWMutex
	customers map[string]*customer.Customer
}

func NewCustomerRepository() *CustomerRepository {
	return &CustomerRepository{customers: make(map[string]*customer.Customer)}
}

func (r *CustomerRepository) Create(ctx context.Context, c *customer.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.customers {
		if existing.WalletAddress() == c.WalletAddress() {
			return errors.NewConstraintViolationError("wallet address already registered")
		}
	}
	r.customers[c.ID()] = c
	return nil
}

func (r *CustomerRepository) Update(ctx context.Context, c *customer.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.customers[c.ID()] = c
	return nil
}

func (r *CustomerRepository) GetByID(ctx context.Context, customerID string) (*customer.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.customers[customerID], nil
}

func (r *CustomerRepository) GetByWallet(ctx context.Context, walletAddress string) (*customer.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.customers {
		if c.WalletAddress() == walletAddress {
			return c, nil
		}
	}
	return nil, nil
}

func (r *CustomerRepository) GetByEmail(ctx context.Context, email string) (*customer.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.customers {
		if c.Email() == email {
			return c, nil
		}
	}
	return nil, nil
}
