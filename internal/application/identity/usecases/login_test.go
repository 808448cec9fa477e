package usecases

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/application/testutil"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/shared/errors"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/shared/logger"
)

type mockVerifier struct {
	VerifyFunc func(ctx context.Context, credential string) (*Identity, error)
}

func (m *mockVerifier) Verify(ctx context.Context, credential string) (*Identity, error) {
	return m.VerifyFunc(ctx, credential)
}

type mockSessions struct {
	IssueSessionFunc func(customerID, walletAddress string) (*Session, error)
}

func (m *mockSessions) IssueSession(customerID, walletAddress string) (*Session, error) {
	if m.IssueSessionFunc != nil {
		return m.IssueSessionFunc(customerID, walletAddress)
	}
	return &Session{Token: "session-" + customerID, ExpiresAt: time.Now().Add(time.Hour)}, nil
}

func identityFor(wallet, email string) *mockVerifier {
	return &mockVerifier{VerifyFunc: func(ctx context.Context, credential string) (*Identity, error) {
		return &Identity{Subject: "sub-" + wallet, WalletAddress: wallet, Email: email}, nil
	}}
}

func TestLogin_RegistersThenRecognizes(t *testing.T) {
	repo := testutil.NewCustomerRepository()
	uc := NewLoginUseCase(repo, identityFor("Wallet1", "Fan@Example.com"), &mockSessions{}, nil, logger.NewNopLogger())

	first, err := uc.Execute(context.Background(), LoginCommand{Credential: "jwt"})
	require.NoError(t, err)
	assert.True(t, first.IsNewAccount)
	assert.False(t, first.IsOrganizer)
	assert.Equal(t, "session-"+first.CustomerID, first.Token)

	second, err := uc.Execute(context.Background(), LoginCommand{Credential: "jwt"})
	require.NoError(t, err)
	assert.False(t, second.IsNewAccount)
	assert.Equal(t, first.CustomerID, second.CustomerID)

	c, err := repo.GetByID(context.Background(), first.CustomerID)
	require.NoError(t, err)
	assert.Equal(t, "fan@example.com", c.Email())
}

func TestLogin_GrantsOrganizerFromAllowList(t *testing.T) {
	repo := testutil.NewCustomerRepository()
	uc := NewLoginUseCase(repo, identityFor("0xOrganizer", ""), &mockSessions{}, []string{" 0xorganizer "}, logger.NewNopLogger())

	result, err := uc.Execute(context.Background(), LoginCommand{Credential: "jwt"})
	require.NoError(t, err)
	assert.True(t, result.IsOrganizer)
}

func TestLogin_Rejections(t *testing.T) {
	t.Run("empty credential", func(t *testing.T) {
		uc := NewLoginUseCase(testutil.NewCustomerRepository(), identityFor("w", ""), &mockSessions{}, nil, logger.NewNopLogger())
		_, err := uc.Execute(context.Background(), LoginCommand{})
		assert.True(t, errors.IsValidationError(err))
	})

	t.Run("provider rejects credential", func(t *testing.T) {
		verifier := &mockVerifier{VerifyFunc: func(context.Context, string) (*Identity, error) {
			return nil, fmt.Errorf("signature mismatch")
		}}
		uc := NewLoginUseCase(testutil.NewCustomerRepository(), verifier, &mockSessions{}, nil, logger.NewNopLogger())
		_, err := uc.Execute(context.Background(), LoginCommand{Credential: "forged"})
		require.NotNil(t, errors.GetAppError(err))
		assert.Equal(t, errors.ErrorTypeUnauthorized, errors.GetAppError(err).Type)
	})

	t.Run("disabled customer", func(t *testing.T) {
		repo := testutil.NewCustomerRepository()
		uc := NewLoginUseCase(repo, identityFor("w", ""), &mockSessions{}, nil, logger.NewNopLogger())
		first, err := uc.Execute(context.Background(), LoginCommand{Credential: "jwt"})
		require.NoError(t, err)

		c, _ := repo.GetByID(context.Background(), first.CustomerID)
		c.Disable()
		require.NoError(t, repo.Update(context.Background(), c))

		_, err = uc.Execute(context.Background(), LoginCommand{Credential: "jwt"})
		assert.True(t, errors.IsForbiddenError(err))
	})
}
