package order

import (
	"context"
	"time"

	vo "github.com/SportsX-xyz/sportsx-ticket-backend/internal/domain/order/valueobjects"
)

type Repository interface {
	Create(ctx context.Context, order *Order) error
	GetByID(ctx context.Context, orderID string) (*Order, error)
	// CompareAndSwap persists o only if the stored status is still from.
	CompareAndSwap(ctx context.Context, o *Order, from vo.OrderStatus) error
	// ListByCustomer returns orders where customerID is buyer or seller,
	// newest first.
	ListByCustomer(ctx context.Context, customerID string) ([]*Order, error)
	ListStaleOpen(ctx context.Context, createdBefore time.Time, limit int) ([]*Order, error)
	DeleteByEvent(ctx context.Context, eventID string) error
}
