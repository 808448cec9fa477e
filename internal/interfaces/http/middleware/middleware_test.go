package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/application/testutil"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/domain/customer"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/infrastructure/auth"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/shared/constants"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/shared/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newEngine(handlers ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	chain := append(handlers, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"customer_id": c.GetString(constants.ContextKeyCustomerID),
			"wallet":      c.GetString(constants.ContextKeyWalletAddress),
		})
	})
	r.GET("/protected", chain...)
	return r
}

func serve(r http.Handler, header map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	for k, v := range header {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequireAuth(t *testing.T) {
	jwtService := auth.NewJWTService("session-secret", 60)
	mw := NewAuthMiddleware(jwtService, logger.NewNopLogger())
	r := newEngine(mw.RequireAuth())

	session, err := jwtService.IssueSession("cust-1", "wallet-1")
	require.NoError(t, err)

	t.Run("valid session", func(t *testing.T) {
		w := serve(r, map[string]string{"Authorization": "Bearer " + session.Token})
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"customer_id":"cust-1"`)
		assert.Contains(t, w.Body.String(), `"wallet":"wallet-1"`)
	})

	tests := []struct {
		name   string
		header map[string]string
	}{
		{"missing header", nil},
		{"wrong scheme", map[string]string{"Authorization": "Basic " + session.Token}},
		{"empty token", map[string]string{"Authorization": "Bearer "}},
		{"foreign signature", map[string]string{"Authorization": "Bearer " + mustSession(t, "other-secret")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(r, tt.header)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}

func mustSession(t *testing.T, secret string) string {
	t.Helper()
	session, err := auth.NewJWTService(secret, 60).IssueSession("cust-1", "wallet-1")
	require.NoError(t, err)
	return session.Token
}

func TestRequireOrganizer(t *testing.T) {
	repo := testutil.NewCustomerRepository()
	ctx := context.Background()

	organizer, err := customer.NewCustomer("wallet-org", "org@example.com")
	require.NoError(t, err)
	organizer.GrantOrganizer()
	require.NoError(t, repo.Create(ctx, organizer))

	buyer, err := customer.NewCustomer("wallet-buyer", "")
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, buyer))

	mw := NewOrganizerMiddleware(repo, logger.NewNopLogger())

	as := func(customerID string) gin.HandlerFunc {
		return func(c *gin.Context) {
			if customerID != "" {
				c.Set(constants.ContextKeyCustomerID, customerID)
			}
			c.Next()
		}
	}

	tests := []struct {
		name       string
		customerID string
		wantStatus int
	}{
		{"organizer admitted", organizer.ID(), http.StatusOK},
		{"plain customer forbidden", buyer.ID(), http.StatusForbidden},
		{"unknown customer", "11111111-1111-1111-1111-111111111111", http.StatusNotFound},
		{"unauthenticated", "", http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newEngine(as(tt.customerID), mw.RequireOrganizer())
			w := serve(r, nil)
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestRateLimiter(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	limiter := NewRateLimiter(client, "login", 2, time.Minute, logger.NewNopLogger())
	r := newEngine(limiter.Limit())

	assert.Equal(t, http.StatusOK, serve(r, nil).Code)
	assert.Equal(t, http.StatusOK, serve(r, nil).Code)

	w := serve(r, nil)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "60", w.Header().Get("Retry-After"))
}

func TestRateLimiter_FailsOpenWithoutRedis(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	mr.Close()

	limiter := NewRateLimiter(client, "login", 1, time.Minute, logger.NewNopLogger())
	r := newEngine(limiter.Limit())

	assert.Equal(t, http.StatusOK, serve(r, nil).Code)
	assert.Equal(t, http.StatusOK, serve(r, nil).Code)
}

func TestCORS(t *testing.T) {
	r := gin.New()
	r.Use(CORS([]string{"https://app.sportsx.xyz"}))
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/ping", nil)
	req.Header.Set("Origin", "https://app.sportsx.xyz")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://app.sportsx.xyz", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Origin", "https://evil.example")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRecovery(t *testing.T) {
	r := gin.New()
	r.Use(RequestID(), Recovery(logger.NewNopLogger()))
	r.GET("/panic", func(c *gin.Context) { panic("boom") })

	req := httptest.NewRequest(http.MethodGet, "/panic", nil)
	req.Header.Set(constants.HeaderXRequestID, "req-42")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "req-42", w.Header().Get(constants.HeaderXRequestID))
	assert.Contains(t, w.Body.String(), `"success":false`)
}
