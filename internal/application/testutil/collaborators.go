package testutil

import (
	"context"
	"sync"

	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/domain/shared/events"
)

// Transactor runs fn directly. In-memory repositories apply each write
// immediately, so there is nothing to roll back.
type Transactor struct{}

func (Transactor) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// EventRecorder captures published domain events.
type EventRecorder struct {
	mu     sync.Mutex
	events []events.DomainEvent
	Err    error
}

func (r *EventRecorder) Publish(ctx context.Context, evt events.DomainEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	r.events = append(r.events, evt)
	return nil
}

func (r *EventRecorder) Events() []events.DomainEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]events.DomainEvent(nil), r.events...)
}

// Count returns how many recorded events satisfy match.
func (r *EventRecorder) Count(match func(events.DomainEvent) bool) int {
	n := 0
	for _, evt := range r.Events() {
		if match(evt) {
			n++
		}
	}
	return n
}
