package customer

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/shared/biztime"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/shared/errors"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/shared/id"
)

type Status string

const (
	StatusActive   Status = "ACTIVE"
	StatusDisabled Status = "DISABLED"
)

func (s Status) IsValid() bool {
	return s == StatusActive || s == StatusDisabled
}

// OrganizerDefaults seed the market settings of new events.
type OrganizerDefaults struct {
	ResaleFeeRate  decimal.Decimal
	MaxResaleTimes int
}

type Customer struct {
	id            string
	email         string
	walletAddress string
	status        Status
	isOrganizer   bool
	defaults      OrganizerDefaults
	createdAt     time.Time
	updatedAt     time.Time
}

func NewCustomer(walletAddress, email string) (*Customer, error) {
	walletAddress = strings.TrimSpace(walletAddress)
	if walletAddress == "" {
		return nil, errors.NewValidationError("wallet address is required")
	}
	now := biztime.NowUTC()
	return &Customer{
		id:            id.New(),
		email:         strings.ToLower(strings.TrimSpace(email)),
		walletAddress: walletAddress,
		status:        StatusActive,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

func ReconstructCustomer(
	customerID, email, walletAddress string,
	status Status,
	isOrganizer bool,
	defaults OrganizerDefaults,
	createdAt, updatedAt time.Time,
) (*Customer, error) {
	if customerID == "" {
		return nil, fmt.Errorf("customer ID cannot be empty")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid customer status: %s", status)
	}
	return &Customer{
		id:            customerID,
		email:         email,
		walletAddress: walletAddress,
		status:        status,
		isOrganizer:   isOrganizer,
		defaults:      defaults,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}, nil
}

func (c *Customer) AssertActive() error {
	if c.status != StatusActive {
		return errors.NewForbiddenError("customer account is disabled", "customer_id="+c.id)
	}
	return nil
}

func (c *Customer) AssertOrganizer() error {
	if err := c.AssertActive(); err != nil {
		return err
	}
	if !c.isOrganizer {
		return errors.NewForbiddenError("customer is not an organizer", "customer_id="+c.id)
	}
	return nil
}

// GrantOrganizer reports whether the flag changed.
func (c *Customer) GrantOrganizer() bool {
	if c.isOrganizer {
		return false
	}
	c.isOrganizer = true
	c.updatedAt = biztime.NowUTC()
	return true
}

// UpdateEmail fills in an email learned from the identity provider.
func (c *Customer) UpdateEmail(email string) bool {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || email == c.email {
		return false
	}
	c.email = email
	c.updatedAt = biztime.NowUTC()
	return true
}

func (c *Customer) Disable() {
	c.status = StatusDisabled
	c.updatedAt = biztime.NowUTC()
}

func (c *Customer) ID() string                  { return c.id }
func (c *Customer) Email() string               { return c.email }
func (c *Customer) WalletAddress() string       { return c.walletAddress }
func (c *Customer) Status() Status              { return c.status }
func (c *Customer) IsOrganizer() bool           { return c.isOrganizer }
func (c *Customer) Defaults() OrganizerDefaults { return c.defaults }
func (c *Customer) CreatedAt() time.Time        { return c.createdAt }
func (c *Customer) UpdatedAt() time.Time        { return c.updatedAt }
