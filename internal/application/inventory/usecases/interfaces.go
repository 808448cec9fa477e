package usecases

import (
	"context"

	commondto "github.com/SportsX-xyz/sportsx-ticket-backend/internal/application/common/dto"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/application/inventory/dto"
)

type AddTicketTypeExecutor interface {
	Execute(ctx context.Context, cmd AddTicketTypeCommand) (*dto.TicketTypeDTO, error)
}

type UpdateTicketTypeExecutor interface {
	Execute(ctx context.Context, cmd UpdateTicketTypeCommand) (*dto.TicketTypeDTO, error)
}

type RemoveTicketTypeExecutor interface {
	Execute(ctx context.Context, cmd RemoveTicketTypeCommand) error
}

type ListTicketTypesExecutor interface {
	Execute(ctx context.Context, query ListTicketTypesQuery) ([]*dto.TicketTypeDTO, error)
}

type ProvisionSeatsExecutor interface {
	Execute(ctx context.Context, cmd ProvisionSeatsCommand) (*dto.ProvisionResultDTO, error)
}

type EditSeatExecutor interface {
	Execute(ctx context.Context, cmd EditSeatCommand) (*commondto.TicketDTO, error)
}
