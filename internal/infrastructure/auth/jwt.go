package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	identityUsecases "github.com/SportsX-xyz/sportsx-ticket-backend/internal/application/identity/usecases"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/shared/biztime"
	apperrors "github.com/SportsX-xyz/sportsx-ticket-backend/internal/shared/errors"
)

type TokenType string

const (
	TokenTypeSession TokenType = "session"
)

type Claims struct {
	CustomerID    string    `json:"customer_id"`
	WalletAddress string    `json:"wallet_address"`
	TokenType     TokenType `json:"token_type"`
	jwt.RegisteredClaims
}

// JWTService issues and verifies customer session tokens.
type JWTService struct {
	secret           []byte
	accessExpMinutes int
}

func NewJWTService(secret string, accessExpMinutes int) *JWTService {
	return &JWTService{
		secret:           []byte(secret),
		accessExpMinutes: accessExpMinutes,
	}
}

// IssueSession implements the identity SessionIssuer port.
func (s *JWTService) IssueSession(customerID, walletAddress string) (*identityUsecases.Session, error) {
	now := biztime.NowUTC()
	exp := now.Add(time.Duration(s.accessExpMinutes) * time.Minute)

	claims := &Claims{
		CustomerID:    customerID,
		WalletAddress: walletAddress,
		TokenType:     TokenTypeSession,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   customerID,
			ExpiresAt: jwt.NewNumericDate(exp),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return nil, fmt.Errorf("failed to sign session token: %w", err)
	}

	return &identityUsecases.Session{Token: signed, ExpiresAt: exp}, nil
}

func (s *JWTService) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperrors.NewTokenExpiredError("session token")
		}
		return nil, apperrors.NewTokenInvalidError("session token")
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, apperrors.NewTokenInvalidError("session token")
	}
	if claims.TokenType != TokenTypeSession || claims.CustomerID == "" {
		return nil, apperrors.NewTokenInvalidError("session token")
	}
	return claims, nil
}

// AccessExpMinutes returns the session lifetime in minutes
func (s *JWTService) AccessExpMinutes() int {
	return s.accessExpMinutes
}
