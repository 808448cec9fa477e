package event

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "github.com/SportsX-xyz/sportsx-ticket-backend/internal/domain/event/valueobjects"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/shared/errors"
)

var baseTime = time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

func testDetails() Details {
	return Details{
		Name:              "Cup Final",
		Address:           "National Stadium",
		Avatar:            "ipfs://avatar",
		TicketReleaseTime: baseTime,
		StartTime:         baseTime.Add(48 * time.Hour),
		EndTime:           baseTime.Add(51 * time.Hour),
		StopSaleBefore:    30,
	}
}

func testSettings() MarketSettings {
	return MarketSettings{ResaleFeeRate: decimal.RequireFromString("0.05"), MaxResaleTimes: 1}
}

func newDraft(t *testing.T) *Event {
	t.Helper()
	e, err := NewEvent("organizer-1", testDetails(), testSettings())
	require.NoError(t, err)
	return e
}

func newActive(t *testing.T) *Event {
	t.Helper()
	e := newDraft(t)
	require.NoError(t, e.MarkPreviewed("ipfs://meta"))
	require.NoError(t, e.Publish())
	return e
}

func TestNewEvent(t *testing.T) {
	t.Run("creates a draft", func(t *testing.T) {
		e := newDraft(t)
		assert.NotEmpty(t, e.ID())
		assert.Equal(t, vo.EventStatusDraft, e.Status())
		assert.Equal(t, 1, e.Version())
		assert.True(t, e.BelongsTo("organizer-1"))
	})

	t.Run("rejects end before start", func(t *testing.T) {
		d := testDetails()
		d.EndTime = d.StartTime.Add(-time.Hour)
		_, err := NewEvent("organizer-1", d, testSettings())
		assert.True(t, errors.IsValidationError(err))
	})

	t.Run("rejects fee rate of one", func(t *testing.T) {
		s := testSettings()
		s.ResaleFeeRate = decimal.NewFromInt(1)
		_, err := NewEvent("organizer-1", testDetails(), s)
		assert.True(t, errors.IsConstraintViolationError(err))
	})

	t.Run("rejects negative resale cap", func(t *testing.T) {
		s := testSettings()
		s.MaxResaleTimes = -1
		_, err := NewEvent("organizer-1", testDetails(), s)
		assert.True(t, errors.IsConstraintViolationError(err))
	})
}

func TestEvent_Lifecycle(t *testing.T) {
	t.Run("preview requires avatar", func(t *testing.T) {
		d := testDetails()
		d.Avatar = ""
		e, err := NewEvent("organizer-1", d, testSettings())
		require.NoError(t, err)

		err = e.MarkPreviewed("ipfs://meta")
		assert.True(t, errors.IsConstraintViolationError(err))
		assert.Equal(t, vo.EventStatusDraft, e.Status())
	})

	t.Run("draft to preview to active to disabled", func(t *testing.T) {
		e := newDraft(t)
		require.NoError(t, e.MarkPreviewed("ipfs://meta"))
		assert.Equal(t, "ipfs://meta", e.ArtifactURI())
		assert.NoError(t, e.AssertInventoryMutable())

		require.NoError(t, e.Publish())
		assert.Equal(t, vo.EventStatusActive, e.Status())
		assert.True(t, errors.IsInvalidTransitionError(e.AssertInventoryMutable()))

		require.NoError(t, e.Disable())
		assert.Equal(t, vo.EventStatusDisabled, e.Status())
	})

	t.Run("publish from draft is rejected", func(t *testing.T) {
		e := newDraft(t)
		err := e.Publish()
		assert.True(t, errors.IsInvalidTransitionError(err))
		assert.Contains(t, err.Error(), "DRAFT")
	})

	t.Run("only draft events can be edited or deleted", func(t *testing.T) {
		e := newActive(t)
		assert.True(t, errors.IsInvalidTransitionError(e.Update(testDetails(), testSettings())))
		assert.True(t, errors.IsInvalidTransitionError(e.AssertDeletable()))
		assert.NoError(t, newDraft(t).AssertDeletable())
	})
}

func TestEvent_Stage(t *testing.T) {
	active := newActive(t)
	d := testDetails()

	tests := []struct {
		name string
		now  time.Time
		want vo.Stage
	}{
		{"before release", d.TicketReleaseTime.Add(-time.Minute), vo.StagePreview},
		{"at release", d.TicketReleaseTime, vo.StageOnSale},
		{"between release and start", d.TicketReleaseTime.Add(time.Hour), vo.StageOnSale},
		{"at start", d.StartTime, vo.StageLive},
		{"during", d.StartTime.Add(time.Hour), vo.StageLive},
		{"at end", d.EndTime, vo.StageEnded},
		{"past end", d.EndTime.Add(time.Hour), vo.StageEnded},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, active.Stage(tt.now))
		})
	}

	t.Run("explicit status wins", func(t *testing.T) {
		draft := newDraft(t)
		assert.Equal(t, vo.StageDraft, draft.Stage(d.StartTime.Add(time.Hour)))

		require.NoError(t, draft.MarkPreviewed("ipfs://meta"))
		assert.Equal(t, vo.StagePreview, draft.Stage(d.EndTime.Add(time.Hour)))

		disabled := newActive(t)
		require.NoError(t, disabled.Disable())
		assert.Equal(t, vo.StageDisabled, disabled.Stage(d.StartTime.Add(time.Hour)))
	})
}

func TestEvent_AssertOnSale(t *testing.T) {
	e := newActive(t)
	d := testDetails()

	assert.Equal(t, d.EndTime.Add(-30*time.Minute), e.SaleEndTime())
	assert.NoError(t, e.AssertOnSale(d.TicketReleaseTime))
	assert.True(t, errors.IsInvalidTransitionError(e.AssertOnSale(d.TicketReleaseTime.Add(-time.Second))))
	assert.True(t, errors.IsExpiredError(e.AssertOnSale(e.SaleEndTime())))
	assert.True(t, errors.IsInvalidTransitionError(newDraft(t).AssertOnSale(d.TicketReleaseTime)))
}

func TestTicketType(t *testing.T) {
	tt, err := NewTicketType("event-1", "VIP", decimal.NewFromInt(100), "#ff0000")
	require.NoError(t, err)
	assert.True(t, tt.BelongsTo("event-1"))
	assert.True(t, tt.PriceFor(decimal.Zero).Equal(decimal.NewFromInt(100)))
	assert.True(t, tt.PriceFor(decimal.NewFromInt(80)).Equal(decimal.NewFromInt(80)))

	_, err = NewTicketType("event-1", "VIP", decimal.Zero, "")
	assert.True(t, errors.IsValidationError(err))

	err = tt.Update("VIP", decimal.NewFromInt(120), "red")
	assert.True(t, errors.IsValidationError(err))
}
