package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/application/testutil"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/domain/customer"
)

type mockArtifactPublisher struct {
	PublishEventMetadataFunc func(ctx context.Context, metadata EventMetadata) (string, error)
	calls                    int
}

func (m *mockArtifactPublisher) PublishEventMetadata(ctx context.Context, metadata EventMetadata) (string, error) {
	m.calls++
	if m.PublishEventMetadataFunc != nil {
		return m.PublishEventMetadataFunc(ctx, metadata)
	}
	return "ipfs://metadata", nil
}

func seedOrganizer(t *testing.T, repo *testutil.CustomerRepository) *customer.Customer {
	t.Helper()
	c, err := customer.ReconstructCustomer(
		"organizer-1", "org@example.com", "wallet-org",
		customer.StatusActive, true,
		customer.OrganizerDefaults{ResaleFeeRate: decimal.RequireFromString("0.1"), MaxResaleTimes: 3},
		time.Now(), time.Now(),
	)
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), c))
	return c
}

func seedCustomer(t *testing.T, repo *testutil.CustomerRepository, wallet, email string) *customer.Customer {
	t.Helper()
	c, err := customer.NewCustomer(wallet, email)
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), c))
	return c
}

func validFields() EventFields {
	release := time.Now().UTC().Add(time.Hour)
	return EventFields{
		Name:              "Cup Final",
		Address:           "National Stadium",
		Avatar:            "ipfs://avatar",
		TicketReleaseTime: release,
		StartTime:         release.Add(24 * time.Hour),
		EndTime:           release.Add(27 * time.Hour),
		StopSaleBefore:    30,
	}
}
