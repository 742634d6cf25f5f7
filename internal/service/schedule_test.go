package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWaterfallSameCapabilityQueues(t *testing.T) {
	start := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	schedule := newWaterfall(start)

	// Two Editor tasks share one track and queue sequentially; the
	// Designer task runs in parallel from the stage start.
	first := schedule.deadline("Editor", 2)
	second := schedule.deadline("Editor", 3)
	third := schedule.deadline("Designer", 1)

	assert.Equal(t, time.Date(2026, 2, 3, 0, 0, 0, 0, time.UTC), first)
	assert.Equal(t, time.Date(2026, 2, 6, 0, 0, 0, 0, time.UTC), second)
	assert.Equal(t, time.Date(2026, 2, 2, 0, 0, 0, 0, time.UTC), third)
}

func TestWaterfallCapabilityMatchingIsCaseAndSpaceInsensitive(t *testing.T) {
	start := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	schedule := newWaterfall(start)

	first := schedule.deadline("Editor", 2)
	second := schedule.deadline("  editor ", 1)

	assert.Equal(t, start.AddDate(0, 0, 2), first)
	assert.Equal(t, first.AddDate(0, 0, 1), second, "normalized capabilities must share a track")
}

func TestWaterfallEmptyCapabilitySharesUnassignedTrack(t *testing.T) {
	start := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	schedule := newWaterfall(start)

	first := schedule.deadline("", 3)
	second := schedule.deadline("   ", 1)

	assert.Equal(t, start.AddDate(0, 0, 3), first)
	assert.Equal(t, first.AddDate(0, 0, 1), second)
}

func TestWaterfallZeroDurationDoesNotAdvanceTrack(t *testing.T) {
	start := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	schedule := newWaterfall(start)

	first := schedule.deadline("QA", 0)
	second := schedule.deadline("QA", 2)

	assert.Equal(t, start, first)
	assert.Equal(t, start.AddDate(0, 0, 2), second)
}

func TestCapabilityKey(t *testing.T) {
	tests := []struct {
		name       string
		capability string
		expected   string
	}{
		{name: "lowercases", capability: "Editor", expected: "editor"},
		{name: "trims whitespace", capability: "  Designer  ", expected: "designer"},
		{name: "empty maps to unassigned", capability: "", expected: capabilityKeyUnassigned},
		{name: "blank maps to unassigned", capability: "   ", expected: capabilityKeyUnassigned},
		{name: "already normalized", capability: "qa", expected: "qa"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, capabilityKey(tt.capability))
		})
	}
}
