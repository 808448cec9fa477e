package customer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/shared/errors"
)

func TestCustomer(t *testing.T) {
	c, err := NewCustomer(" wallet-1 ", "Fan@Example.com")
	require.NoError(t, err)
	assert.Equal(t, "wallet-1", c.WalletAddress())
	assert.Equal(t, "fan@example.com", c.Email())
	assert.NoError(t, c.AssertActive())
	assert.True(t, errors.IsForbiddenError(c.AssertOrganizer()))

	assert.True(t, c.GrantOrganizer())
	assert.False(t, c.GrantOrganizer())
	assert.NoError(t, c.AssertOrganizer())

	c.Disable()
	assert.True(t, errors.IsForbiddenError(c.AssertActive()))
	assert.True(t, errors.IsForbiddenError(c.AssertOrganizer()))

	_, err = NewCustomer("", "")
	assert.True(t, errors.IsValidationError(err))
}
