package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/shared/errors"
)

func TestJWTService_IssueAndVerify(t *testing.T) {
	svc := NewJWTService("session-secret", 60)

	session, err := svc.IssueSession("cust-1", "wallet-1")
	require.NoError(t, err)
	assert.NotEmpty(t, session.Token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), session.ExpiresAt, 5*time.Second)

	claims, err := svc.Verify(session.Token)
	require.NoError(t, err)
	assert.Equal(t, "cust-1", claims.CustomerID)
	assert.Equal(t, "wallet-1", claims.WalletAddress)
	assert.Equal(t, TokenTypeSession, claims.TokenType)
}

func TestJWTService_RejectsForeignTokens(t *testing.T) {
	svc := NewJWTService("session-secret", 60)
	other := NewJWTService("another-secret", 60)

	session, err := other.IssueSession("cust-1", "wallet-1")
	require.NoError(t, err)

	_, err = svc.Verify(session.Token)
	assert.Error(t, err)

	_, err = svc.Verify("not-a-token")
	assert.Error(t, err)
}

func TestJWTService_RejectsTicketCodes(t *testing.T) {
	codes := NewTicketCodeService("shared", 5*time.Minute)
	code, _, err := codes.Issue("ticket-1", "cust-1")
	require.NoError(t, err)

	_, err = NewJWTService("shared", 60).Verify(code)
	assert.Error(t, err)
}

func TestTicketCodeService_RoundTrip(t *testing.T) {
	svc := NewTicketCodeService("checkin-secret", 5*time.Minute)

	code, exp, err := svc.Issue("ticket-1", "cust-1")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(5*time.Minute), exp, 5*time.Second)

	claims, err := svc.Parse(code)
	require.NoError(t, err)
	assert.Equal(t, "ticket-1", claims.TicketID)
	assert.Equal(t, "cust-1", claims.CustomerID)
}

func TestTicketCodeService_Expired(t *testing.T) {
	svc := NewTicketCodeService("checkin-secret", 5*time.Minute)
	issuedAt := time.Now().Add(-10 * time.Minute)
	svc.now = func() time.Time { return issuedAt }

	code, _, err := svc.Issue("ticket-1", "cust-1")
	require.NoError(t, err)

	svc.now = time.Now
	_, err = svc.Parse(code)
	assert.True(t, errors.IsExpiredError(err))
}

func TestTicketCodeService_Forbidden(t *testing.T) {
	svc := NewTicketCodeService("checkin-secret", 5*time.Minute)
	forged, _, err := NewTicketCodeService("other-secret", 5*time.Minute).Issue("ticket-1", "cust-1")
	require.NoError(t, err)

	noneAlg, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"ticket_id":   "ticket-1",
		"customer_id": "cust-1",
		"exp":         time.Now().Add(time.Minute).Unix(),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name string
		code string
	}{
		{"wrong secret", forged},
		{"unsigned", noneAlg},
		{"garbage", "abc.def.ghi"},
		{"empty", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Parse(tt.code)
			assert.True(t, errors.IsForbiddenError(err), "got %v", err)
		})
	}
}

func TestJWTService_ExpiredSession(t *testing.T) {
	svc := NewJWTService("session-secret", 60)
	claims := &Claims{
		CustomerID: "cust-1",
		TokenType:  TokenTypeSession,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("session-secret"))
	require.NoError(t, err)

	_, err = svc.Verify(token)
	require.Error(t, err)
	assert.Equal(t, errors.ErrorTypeTokenExpired, errors.GetAppError(err).Type)
	assert.False(t, errors.ShouldLogAuthError(err))
}
