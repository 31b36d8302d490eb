package reservation

import (
	"time"

	"agenda-espacos/internal/pkg/timeutil"
)

// Derive recomputes the status a reservation should display at the
// given instant, overriding whatever stale status the backend last
// persisted. It is a pure function: same reservation and now, same
// answer.
//
// Terminal stored statuses win unconditionally. Otherwise the answer
// follows from now relative to the [start, end) window: before it the
// reservation is scheduled, inside it in use, at or past the end it
// awaits confirmation of actual use. When the time fields are missing
// or malformed the same ladder runs on the calendar date alone, and a
// malformed date falls back to the stored status.
func Derive(r Reservation, now time.Time) Status {
	if r.StoredStatus == StatusCancelled {
		return StatusCancelled
	}
	if r.StoredStatus == StatusUsed {
		return StatusUsed
	}

	date, ok := r.Date()
	if !ok {
		return r.StoredStatus
	}

	start, end, haveWindow := r.Window()
	if haveWindow {
		startAt := date.At(start, now.Location())
		endAt := date.At(end, now.Location())
		if !now.Before(startAt) && now.Before(endAt) {
			return StatusInUse
		}
	}

	today := timeutil.DateOf(now)
	switch date.Compare(today) {
	case -1:
		return StatusAwaitingConfirmation
	case 1:
		return StatusScheduled
	}

	// Same calendar day: position relative to the window, if known.
	if endTime, ok := r.EndTime(); ok {
		if !now.Before(date.At(endTime, now.Location())) {
			return StatusAwaitingConfirmation
		}
	}
	if startTime, ok := r.StartTime(); ok {
		if now.Before(date.At(startTime, now.Location())) {
			return StatusScheduled
		}
	}

	return r.StoredStatus.Normalize()
}

// Derived pairs a reservation with its effective status at one
// instant. The pairing is discarded after the render that requested
// it; nothing derived is ever cached or written back.
type Derived struct {
	Reservation
	Effective Status
}

// DeriveAll recomputes every reservation's effective status at now.
func DeriveAll(rs []Reservation, now time.Time) []Derived {
	out := make([]Derived, len(rs))
	for i, r := range rs {
		out[i] = Derived{Reservation: r, Effective: Derive(r, now)}
	}
	return out
}
