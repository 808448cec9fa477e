package usecases

import (
	"context"
	"fmt"

	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/application/checkin/dto"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/application/common"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/domain/ticket"
	tvo "github.com/SportsX-xyz/sportsx-ticket-backend/internal/domain/ticket/valueobjects"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/shared/errors"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/shared/logger"
)

type IssueTicketCodeCommand struct {
	CustomerID string
	TicketID   string
}

type IssueTicketCodeUseCase struct {
	ticketRepo ticket.Repository
	issuer     TicketCodeIssuer
	logger     logger.Interface
}

func NewIssueTicketCodeUseCase(ticketRepo ticket.Repository, issuer TicketCodeIssuer, logger logger.Interface) *IssueTicketCodeUseCase {
	return &IssueTicketCodeUseCase{ticketRepo: ticketRepo, issuer: issuer, logger: logger}
}

func (uc *IssueTicketCodeUseCase) Execute(ctx context.Context, cmd IssueTicketCodeCommand) (*dto.TicketCodeDTO, error) {
	seat, err := common.LoadTicket(ctx, uc.ticketRepo, cmd.TicketID)
	if err != nil {
		return nil, err
	}
	if err := seat.AssertOwnedBy(cmd.CustomerID); err != nil {
		return nil, err
	}
	if seat.Status() != tvo.StatusSold {
		return nil, errors.NewInvalidTransitionError(
			fmt.Sprintf("ticket is %s, only SOLD tickets get a check-in code", seat.Status()),
			"ticket_id="+seat.ID(),
		)
	}

	code, expiresAt, err := uc.issuer.Issue(seat.ID(), cmd.CustomerID)
	if err != nil {
		uc.logger.Errorw("failed to issue ticket code", "ticket_id", seat.ID(), "error", err)
		return nil, errors.NewInternalError("failed to issue ticket code")
	}

	uc.logger.Debugw("ticket code issued", "ticket_id", seat.ID(), "expires_at", expiresAt)
	return &dto.TicketCodeDTO{TicketID: seat.ID(), Code: code, ExpiresAt: expiresAt}, nil
}
