package reservation

import (
	"agenda-espacos/internal/pkg/timeutil"

	"github.com/google/uuid"
)

// Reservation is a booking of an academic space for a single date and
// time window, exactly as received from the backend. Date and time
// fields keep their raw wire strings; normalization happens lazily so
// one malformed record degrades gracefully instead of failing a whole
// list.
//
// The core never mutates reservations and never writes derived state
// back to the backend.
type Reservation struct {
	ID          uuid.UUID
	SpaceID     uuid.UUID
	ProfessorID uuid.UUID

	// RawDate is "YYYY-MM-DD" or "DD/MM/YYYY" on the wire.
	RawDate string
	// RawStartTime and RawEndTime are "HH:MM" or "HH:MM:SS".
	RawStartTime string
	RawEndTime   string

	StoredStatus Status
}

// Date normalizes the calendar date. ok is false for malformed input;
// such records are excluded from date-based reasoning by callers.
func (r Reservation) Date() (timeutil.Date, bool) {
	return timeutil.ParseDate(r.RawDate)
}

// StartTime normalizes the window start.
func (r Reservation) StartTime() (timeutil.ClockTime, bool) {
	return timeutil.ParseClock(r.RawStartTime)
}

// EndTime normalizes the window end.
func (r Reservation) EndTime() (timeutil.ClockTime, bool) {
	return timeutil.ParseClock(r.RawEndTime)
}

// Window normalizes both ends of the time window at once. ok is false
// when either side is missing or malformed, in which case derivation
// falls back to date-only reasoning.
func (r Reservation) Window() (start, end timeutil.ClockTime, ok bool) {
	start, okStart := r.StartTime()
	end, okEnd := r.EndTime()
	return start, end, okStart && okEnd
}
