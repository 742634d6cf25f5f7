package service

import (
	"strings"
	"time"
)

// capabilityKeyUnassigned is the waterfall track used by task definitions
// without a required capability.
const capabilityKeyUnassigned = "unassigned"

// waterfall computes deadlines so that tasks sharing a capability key queue
// sequentially while different keys run on independent parallel tracks from
// the stage start. Each task's window starts when the previous task on its
// track ends, producing a staffing-aware schedule rather than a flat
// "start + duration" for every task.
type waterfall struct {
	start    time.Time
	nextFree map[string]time.Time
}

// newWaterfall creates a scheduler anchored at the stage start time
func newWaterfall(start time.Time) *waterfall {
	return &waterfall{
		start:    start,
		nextFree: make(map[string]time.Time),
	}
}

// capabilityKey normalizes a required capability into a waterfall track key
func capabilityKey(capability string) string {
	capability = strings.TrimSpace(capability)
	if capability == "" {
		return capabilityKeyUnassigned
	}
	return strings.ToLower(capability)
}

// deadline returns the next deadline for the given capability and advances
// that track's free point to it.
func (w *waterfall) deadline(capability string, durationDays int) time.Time {
	key := capabilityKey(capability)

	base, ok := w.nextFree[key]
	if !ok {
		base = w.start
	}

	d := base.AddDate(0, 0, durationDays)
	w.nextFree[key] = d
	return d
}
