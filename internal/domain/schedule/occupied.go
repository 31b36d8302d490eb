package schedule

import (
	"agenda-espacos/internal/domain/reservation"
	"agenda-espacos/internal/pkg/timeutil"

	"github.com/google/uuid"
)

// OccupiedInterval is a booked time range blocking new selections for
// a space on a date.
type OccupiedInterval struct {
	Start         timeutil.ClockTime
	End           timeutil.ClockTime
	ReservationID uuid.UUID
}

// ComputeOccupied extracts the occupied intervals for one space and
// date from a reservation list. Cancelled reservations never block,
// and excludeID removes a reservation's own interval so an edit does
// not conflict with itself (pass uuid.Nil otherwise). Records with a
// malformed date or window are skipped.
//
// Overlapping intervals are returned as-is; slot containment handles
// overlap implicitly, so no merging is needed.
func ComputeOccupied(rs []reservation.Reservation, spaceID uuid.UUID, date timeutil.Date, excludeID uuid.UUID) []OccupiedInterval {
	occupied := make([]OccupiedInterval, 0, len(rs))
	for _, r := range rs {
		if r.SpaceID != spaceID {
			continue
		}
		if r.StoredStatus == reservation.StatusCancelled {
			continue
		}
		if excludeID != uuid.Nil && r.ID == excludeID {
			continue
		}
		d, ok := r.Date()
		if !ok || !d.Equal(date) {
			continue
		}
		start, end, ok := r.Window()
		if !ok {
			continue
		}
		occupied = append(occupied, OccupiedInterval{Start: start, End: end, ReservationID: r.ID})
	}
	return occupied
}

// IsSlotOccupied reports whether a candidate slot falls inside any
// occupied interval. The end boundary is inclusive: a slot equal to an
// existing reservation's end time is still occupied, which blocks
// back-to-back bookings that would start exactly when another ends.
func IsSlotOccupied(slot timeutil.ClockTime, occupied []OccupiedInterval) bool {
	for _, iv := range occupied {
		if slot.Compare(iv.Start) >= 0 && slot.Compare(iv.End) <= 0 {
			return true
		}
	}
	return false
}
