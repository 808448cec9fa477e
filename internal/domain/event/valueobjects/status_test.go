package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEventStatus_CanTransitionTo(t *testing.T) {
	all := []EventStatus{EventStatusDraft, EventStatusPreview, EventStatusActive, EventStatusDisabled}
	legal := map[[2]EventStatus]bool{
		{EventStatusDraft, EventStatusPreview}:   true,
		{EventStatusPreview, EventStatusActive}:  true,
		{EventStatusActive, EventStatusDisabled}: true,
	}

	for _, from := range all {
		for _, to := range all {
			assert.Equal(t, legal[[2]EventStatus{from, to}], from.CanTransitionTo(to), "%s -> %s", from, to)
		}
	}
}

func TestEventStatus_EditWindows(t *testing.T) {
	assert.True(t, EventStatusDraft.AllowsFullEdit())
	assert.False(t, EventStatusPreview.AllowsFullEdit())

	assert.True(t, EventStatusDraft.AllowsInventoryEdit())
	assert.True(t, EventStatusPreview.AllowsInventoryEdit())
	assert.False(t, EventStatusActive.AllowsInventoryEdit())
	assert.False(t, EventStatusDisabled.AllowsInventoryEdit())
}

func TestNewEventStatus(t *testing.T) {
	s, err := NewEventStatus("ACTIVE")
	assert.NoError(t, err)
	assert.Equal(t, EventStatusActive, s)

	_, err = NewEventStatus("active")
	assert.Error(t, err)
}
