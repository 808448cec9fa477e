package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	checkinUsecases "github.com/SportsX-xyz/sportsx-ticket-backend/internal/application/checkin/usecases"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/shared/biztime"
	apperrors "github.com/SportsX-xyz/sportsx-ticket-backend/internal/shared/errors"
)

type ticketCodeClaims struct {
	TicketID   string `json:"ticket_id"`
	CustomerID string `json:"customer_id"`
	jwt.RegisteredClaims
}

// TicketCodeService mints the short-lived codes a ticket holder shows at the
// gate. Its secret is never the session secret.
type TicketCodeService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTicketCodeService(secret string, ttl time.Duration) *TicketCodeService {
	return &TicketCodeService{
		secret: []byte(secret),
		ttl:    ttl,
		now:    biztime.NowUTC,
	}
}

func (s *TicketCodeService) Issue(ticketID, customerID string) (string, time.Time, error) {
	now := s.now()
	exp := now.Add(s.ttl)

	claims := &ticketCodeClaims{
		TicketID:   ticketID,
		CustomerID: customerID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(exp),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	code, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign ticket code: %w", err)
	}
	return code, exp, nil
}

func (s *TicketCodeService) Parse(code string) (*checkinUsecases.TicketCodeClaims, error) {
	claims := &ticketCodeClaims{}
	_, err := jwt.ParseWithClaims(code, claims, func(token *jwt.Token) (interface{}, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperrors.NewExpiredError("ticket code has expired")
		}
		return nil, apperrors.NewForbiddenError("invalid ticket code")
	}
	if claims.TicketID == "" || claims.CustomerID == "" {
		return nil, apperrors.NewForbiddenError("invalid ticket code")
	}

	return &checkinUsecases.TicketCodeClaims{
		TicketID:   claims.TicketID,
		CustomerID: claims.CustomerID,
	}, nil
}
