package usecases

import (
	"context"

	commondto "github.com/SportsX-xyz/sportsx-ticket-backend/internal/application/common/dto"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/application/marketplace/dto"
)

type ListMarketEventsExecutor interface {
	Execute(ctx context.Context) ([]*dto.MarketEventDTO, error)
}

type GetMarketEventExecutor interface {
	Execute(ctx context.Context, eventID string) (*dto.MarketEventDTO, error)
}

type ListEventSeatsExecutor interface {
	Execute(ctx context.Context, eventID string) ([]*commondto.TicketDTO, error)
}

type RelistTicketExecutor interface {
	Execute(ctx context.Context, cmd RelistTicketCommand) (*commondto.TicketDTO, error)
}

type UnlistTicketExecutor interface {
	Execute(ctx context.Context, cmd UnlistTicketCommand) (*commondto.TicketDTO, error)
}

type ListOwnedTicketsExecutor interface {
	Execute(ctx context.Context, query ListOwnedTicketsQuery) ([]*commondto.TicketDTO, error)
}
