package request

import (
	"agenda-espacos/internal/pkg/errs"
	"agenda-espacos/internal/pkg/timeutil"

	"github.com/google/uuid"
)

// AvailabilityQuery selects the day shown on the booking grid.
type AvailabilityQuery struct {
	Date    string `form:"date" binding:"required"`
	Exclude string `form:"exclude"`
}

func (q AvailabilityQuery) ParsedDate() (timeutil.Date, error) {
	date, ok := timeutil.ParseDate(q.Date)
	if !ok {
		return timeutil.Date{}, errs.ErrInvalidDate
	}
	return date, nil
}

// ExcludeID returns the reservation under edit, or uuid.Nil. An
// unparseable value is treated as absent rather than failing the grid.
func (q AvailabilityQuery) ExcludeID() uuid.UUID {
	if q.Exclude == "" {
		return uuid.Nil
	}
	id, err := uuid.Parse(q.Exclude)
	if err != nil {
		return uuid.Nil
	}
	return id
}
