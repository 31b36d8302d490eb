package reservation

import "slices"

// Compare defines the display order for reservation lists: date
// ascending, then start time ascending, then status priority. Records
// whose date or time fails to normalize are simply skipped for that
// key, so a malformed record still lands deterministically instead of
// poisoning the sort.
func Compare(a, b Reservation) int {
	return compareWithPriority(a, b, a.StoredStatus.Priority(), b.StoredStatus.Priority())
}

// CompareDerived orders by the same keys but ranks on the effective
// status, which is what the user actually sees in the table.
func CompareDerived(a, b Derived) int {
	return compareWithPriority(a.Reservation, b.Reservation, a.Effective.Priority(), b.Effective.Priority())
}

func compareWithPriority(a, b Reservation, prioA, prioB int) int {
	dateA, okA := a.Date()
	dateB, okB := b.Date()
	if okA && okB {
		if c := dateA.Compare(dateB); c != 0 {
			return c
		}
	}

	startA, okA := a.StartTime()
	startB, okB := b.StartTime()
	if okA && okB {
		if c := startA.Compare(startB); c != 0 {
			return c
		}
	}

	return sign(prioA - prioB)
}

// SortForDisplay sorts in place, stably: ties beyond the status key
// keep their original relative order, so repeated sorts are no-ops.
func SortForDisplay(rs []Reservation) {
	slices.SortStableFunc(rs, Compare)
}

// SortDerived stably sorts derived rows for display.
func SortDerived(rs []Derived) {
	slices.SortStableFunc(rs, CompareDerived)
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}
