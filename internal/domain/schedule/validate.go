package schedule

import (
	"time"

	"agenda-espacos/internal/pkg/timeutil"

	"github.com/google/uuid"
)

// RejectReason tells the form which rule a slot selection broke, so
// the UI can attach the message to the right field.
type RejectReason string

const (
	ReasonNone           RejectReason = ""
	ReasonInvalidRange   RejectReason = "invalid_range"
	ReasonPastDate       RejectReason = "past_date"
	ReasonAlreadyStarted RejectReason = "already_started"
	ReasonConflict       RejectReason = "conflict"
)

func (r RejectReason) Message() string {
	switch r {
	case ReasonInvalidRange:
		return "end time must be after start time"
	case ReasonPastDate:
		return "date is in the past"
	case ReasonAlreadyStarted:
		return "start time has already passed"
	case ReasonConflict:
		return "time window conflicts with an existing reservation"
	default:
		return ""
	}
}

// ValidationResult is returned instead of an error: an invalid
// selection is an expected outcome, not a failure.
type ValidationResult struct {
	OK     bool
	Reason RejectReason
	// ConflictsWith identifies the blocking reservation when Reason is
	// ReasonConflict.
	ConflictsWith uuid.UUID
}

func accept() ValidationResult {
	return ValidationResult{OK: true}
}

func reject(reason RejectReason) ValidationResult {
	return ValidationResult{Reason: reason}
}

// ValidateSelection checks a requested [start, end) window for a date
// against the occupied intervals of the target space. Rules, in order:
// the window must be non-empty, the date must not be past, a
// same-day start must still be ahead of now's clock, and the whole
// span must be free. Overlap is checked against the full occupied
// interval with its end boundary inclusive, matching IsSlotOccupied.
func ValidateSelection(start, end timeutil.ClockTime, occupied []OccupiedInterval, now time.Time, date timeutil.Date) ValidationResult {
	if end.Compare(start) <= 0 {
		return reject(ReasonInvalidRange)
	}

	today := timeutil.DateOf(now)
	if date.Before(today) {
		return reject(ReasonPastDate)
	}
	if date.Equal(today) && start.Compare(timeutil.ClockOf(now)) <= 0 {
		return reject(ReasonAlreadyStarted)
	}

	// Requested [start, end) intersects occupied [ivStart, ivEnd]
	// (end-inclusive) iff ivStart < end and ivEnd >= start. Checking
	// the whole span, not just the two endpoints, catches occupied
	// intervals strictly inside the request.
	for _, iv := range occupied {
		if iv.Start.Compare(end) < 0 && iv.End.Compare(start) >= 0 {
			return ValidationResult{Reason: ReasonConflict, ConflictsWith: iv.ReservationID}
		}
	}

	return accept()
}
