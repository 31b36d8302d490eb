// Package schedule computes, for one academic space and one date,
// which booking slots are free and whether a requested time window may
// be submitted. All results are advisory: the backend remains the
// authority when a reservation is actually created.
package schedule

import "agenda-espacos/internal/pkg/timeutil"

// Default slot grid offered in the booking form.
const (
	DefaultStartHour   = 7
	DefaultEndHour     = 23
	DefaultStepMinutes = 10
)

// GenerateSlots produces the fixed grid of candidate start/end times
// from startHour:00 through endHour:00 inclusive. With the defaults
// (7, 23, 10) that is exactly 97 slots. Deterministic and cheap; the
// grid is regenerated per call rather than cached.
func GenerateSlots(startHour, endHour, stepMinutes int) []timeutil.ClockTime {
	if stepMinutes <= 0 || endHour < startHour {
		return nil
	}

	first := startHour * 60
	last := endHour * 60
	slots := make([]timeutil.ClockTime, 0, (last-first)/stepMinutes+1)
	for m := first; m <= last; m += stepMinutes {
		slots = append(slots, timeutil.ClockTime{Hour: m / 60, Minute: m % 60})
	}
	return slots
}

// DefaultSlots returns the standard booking grid.
func DefaultSlots() []timeutil.ClockTime {
	return GenerateSlots(DefaultStartHour, DefaultEndHour, DefaultStepMinutes)
}
