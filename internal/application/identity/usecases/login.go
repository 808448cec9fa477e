package usecases

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/samber/lo"

	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/domain/customer"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/shared/errors"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/shared/logger"
)

// Identity is what the identity provider vouches for.
type Identity struct {
	Subject       string
	WalletAddress string
	Email         string
}

type IdentityVerifier interface {
	Verify(ctx context.Context, credential string) (*Identity, error)
}

type Session struct {
	Token     string
	ExpiresAt time.Time
}

type SessionIssuer interface {
	IssueSession(customerID, walletAddress string) (*Session, error)
}

type LoginExecutor interface {
	Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error)
}

type LoginCommand struct {
	Credential string
}

type LoginResult struct {
	CustomerID    string    `json:"customer_id"`
	WalletAddress string    `json:"wallet_address"`
	IsNewAccount  bool      `json:"is_new_account"`
	IsOrganizer   bool      `json:"is_organizer"`
	Token         string    `json:"token"`
	ExpiresAt     time.Time `json:"expires_at"`
}

// LoginUseCase exchanges an identity provider credential for a session,
// registering the customer on first sight. Wallets on the organizer
// allow-list gain the organizer capability.
type LoginUseCase struct {
	customerRepo     customer.Repository
	verifier         IdentityVerifier
	sessions         SessionIssuer
	organizerWallets []string
	logger           logger.Interface
}

func NewLoginUseCase(
	customerRepo customer.Repository,
	verifier IdentityVerifier,
	sessions SessionIssuer,
	organizerWallets []string,
	logger logger.Interface,
) *LoginUseCase {
	return &LoginUseCase{
		customerRepo: customerRepo,
		verifier:     verifier,
		sessions:     sessions,
		organizerWallets: lo.Map(organizerWallets, func(w string, _ int) string {
			return strings.ToLower(strings.TrimSpace(w))
		}),
		logger: logger,
	}
}

func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error) {
	if strings.TrimSpace(cmd.Credential) == "" {
		return nil, errors.NewValidationError("credential is required")
	}

	identity, err := uc.verifier.Verify(ctx, cmd.Credential)
	if err != nil {
		uc.logger.Warnw("credential rejected", "error", err)
		if errors.IsAppError(err) {
			return nil, err
		}
		return nil, errors.NewUnauthorizedError("invalid credential")
	}

	c, err := uc.customerRepo.GetByWallet(ctx, identity.WalletAddress)
	if err != nil {
		uc.logger.Errorw("failed to get customer by wallet", "error", err)
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}

	isNew := c == nil
	if isNew {
		c, err = uc.register(ctx, identity)
		if err != nil {
			return nil, err
		}
	} else if err := uc.refresh(ctx, c, identity); err != nil {
		return nil, err
	}

	session, err := uc.sessions.IssueSession(c.ID(), c.WalletAddress())
	if err != nil {
		uc.logger.Errorw("failed to issue session", "customer_id", c.ID(), "error", err)
		return nil, errors.NewInternalError("failed to issue session")
	}

	uc.logger.Infow("customer logged in", "customer_id", c.ID(), "new_account", isNew)
	return &LoginResult{
		CustomerID:    c.ID(),
		WalletAddress: c.WalletAddress(),
		IsNewAccount:  isNew,
		IsOrganizer:   c.IsOrganizer(),
		Token:         session.Token,
		ExpiresAt:     session.ExpiresAt,
	}, nil
}

func (uc *LoginUseCase) register(ctx context.Context, identity *Identity) (*customer.Customer, error) {
	c, err := customer.NewCustomer(identity.WalletAddress, identity.Email)
	if err != nil {
		return nil, err
	}
	if uc.isOrganizerWallet(c.WalletAddress()) {
		c.GrantOrganizer()
	}
	if err := uc.customerRepo.Create(ctx, c); err != nil {
		uc.logger.Errorw("failed to create customer", "error", err)
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}
	return c, nil
}

// refresh syncs a returning customer with what the provider reports.
func (uc *LoginUseCase) refresh(ctx context.Context, c *customer.Customer, identity *Identity) error {
	if err := c.AssertActive(); err != nil {
		return err
	}
	changed := c.UpdateEmail(identity.Email)
	if uc.isOrganizerWallet(c.WalletAddress()) && c.GrantOrganizer() {
		changed = true
	}
	if !changed {
		return nil
	}
	if err := uc.customerRepo.Update(ctx, c); err != nil {
		uc.logger.Errorw("failed to update customer", "customer_id", c.ID(), "error", err)
		return fmt.Errorf("failed to update customer: %w", err)
	}
	return nil
}

func (uc *LoginUseCase) isOrganizerWallet(wallet string) bool {
	return lo.Contains(uc.organizerWallets, strings.ToLower(wallet))
}
