package usecases

import (
	"context"
	"time"

	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/application/checkin/dto"
	commondto "github.com/SportsX-xyz/sportsx-ticket-backend/internal/application/common/dto"
)

type IssueTicketCodeExecutor interface {
	Execute(ctx context.Context, cmd IssueTicketCodeCommand) (*dto.TicketCodeDTO, error)
}

type CheckInExecutor interface {
	Execute(ctx context.Context, cmd CheckInCommand) (*commondto.TicketDTO, error)
}

type VerifyCheckInExecutor interface {
	Execute(ctx context.Context, query VerifyCheckInQuery) (*commondto.TicketDTO, error)
}

// TicketCodeClaims identify the ticket and the customer a code was minted for.
type TicketCodeClaims struct {
	TicketID   string
	CustomerID string
}

// TicketCodeIssuer mints and parses short-lived check-in codes. Parse returns
// an Expired error for a code past its expiry and a Forbidden error for any
// code it did not sign.
type TicketCodeIssuer interface {
	Issue(ticketID, customerID string) (code string, expiresAt time.Time, err error)
	Parse(code string) (*TicketCodeClaims, error)
}
