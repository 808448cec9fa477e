package usecases

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/domain/order"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/shared/id"
)

type mockLedger struct {
	RequestSettlementFunc func(ctx context.Context, req SettlementRequest) (*order.Settlement, error)
	ConfirmFunc           func(ctx context.Context, txHash, nonce string) (*Confirmation, error)
	confirmCalls          atomic.Int32
}

func (m *mockLedger) RequestSettlement(ctx context.Context, req SettlementRequest) (*order.Settlement, error) {
	if m.RequestSettlementFunc != nil {
		return m.RequestSettlementFunc(ctx, req)
	}
	return &order.Settlement{
		Message:    "authorize:" + req.TicketID,
		Signature:  "sig",
		Nonce:      id.New(),
		ValidUntil: time.Now().UTC().Add(10 * time.Minute),
	}, nil
}

func (m *mockLedger) Confirm(ctx context.Context, txHash, nonce string) (*Confirmation, error) {
	m.confirmCalls.Add(1)
	if m.ConfirmFunc != nil {
		return m.ConfirmFunc(ctx, txHash, nonce)
	}
	now := time.Now().UTC()
	return &Confirmation{Success: true, FinalizedAt: &now}, nil
}
