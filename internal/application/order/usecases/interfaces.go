package usecases

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	commondto "github.com/SportsX-xyz/sportsx-ticket-backend/internal/application/common/dto"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/domain/order"
)

type CheckoutExecutor interface {
	Execute(ctx context.Context, cmd CheckoutCommand) (*CheckoutResult, error)
}

type PayOrderExecutor interface {
	Execute(ctx context.Context, cmd PayOrderCommand) (*commondto.OrderDTO, error)
}

type GetOrderExecutor interface {
	Execute(ctx context.Context, query GetOrderQuery) (*commondto.OrderDTO, error)
}

type ListMyOrdersExecutor interface {
	Execute(ctx context.Context, query ListMyOrdersQuery) ([]*commondto.OrderDTO, error)
}

type ReclaimOrdersExecutor interface {
	Execute(ctx context.Context, now time.Time) (int, error)
}

// SettlementRequest asks the ledger to authorize the purchase of one seat.
type SettlementRequest struct {
	TicketID     string
	BuyerWallet  string
	PriceCeiling decimal.Decimal
	Row          int
	Column       int
}

// Confirmation is the ledger's verdict on a submitted transaction.
type Confirmation struct {
	Success     bool
	FinalizedAt *time.Time
}

// SettlementLedger is the narrow interface to the external settlement
// program.
type SettlementLedger interface {
	RequestSettlement(ctx context.Context, req SettlementRequest) (*order.Settlement, error)
	// Confirm succeeds only if txHash executed the authorization issued under
	// nonce.
	Confirm(ctx context.Context, txHash, nonce string) (*Confirmation, error)
}
