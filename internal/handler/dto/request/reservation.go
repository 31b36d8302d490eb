package request

import (
	"agenda-espacos/internal/pkg/errs"
	"agenda-espacos/internal/pkg/timeutil"
	"agenda-espacos/internal/usecase/queries"

	"github.com/google/uuid"
)

// ListReservationsQuery narrows a listing. All fields are optional;
// scope defaults from the caller's role are applied by the handler.
// IDs arrive as strings because gin's form binding has no UUID support.
type ListReservationsQuery struct {
	ProfessorID string `form:"professor_id"`
	SpaceID     string `form:"space_id"`
	Date        string `form:"date"`
}

func (q ListReservationsQuery) ToFilter() (queries.ReservationFilter, error) {
	var filter queries.ReservationFilter

	if q.ProfessorID != "" {
		id, err := uuid.Parse(q.ProfessorID)
		if err != nil {
			return queries.ReservationFilter{}, errs.Wrap(err, "parsing professor_id")
		}
		filter.ProfessorID = &id
	}
	if q.SpaceID != "" {
		id, err := uuid.Parse(q.SpaceID)
		if err != nil {
			return queries.ReservationFilter{}, errs.Mark(err, errs.ErrInvalidSpaceID)
		}
		filter.SpaceID = &id
	}
	if q.Date != "" {
		date, ok := timeutil.ParseDate(q.Date)
		if !ok {
			return queries.ReservationFilter{}, errs.ErrInvalidDate
		}
		filter.Date = &date
	}
	return filter, nil
}

// ValidateSelectionRequest is the booking form asking whether a window
// can be submitted. Dates and times arrive as strings in either
// accepted shape and are normalized here.
type ValidateSelectionRequest struct {
	SpaceID              uuid.UUID  `json:"space_id" binding:"required"`
	Date                 string     `json:"date" binding:"required"`
	StartTime            string     `json:"start_time" binding:"required"`
	EndTime              string     `json:"end_time" binding:"required"`
	ExcludeReservationID *uuid.UUID `json:"exclude_reservation_id,omitempty"`
}

func (r ValidateSelectionRequest) ToParams() (queries.ValidateSelectionParams, error) {
	date, ok := timeutil.ParseDate(r.Date)
	if !ok {
		return queries.ValidateSelectionParams{}, errs.ErrInvalidDate
	}
	start, ok := timeutil.ParseClock(r.StartTime)
	if !ok {
		return queries.ValidateSelectionParams{}, errs.ErrInvalidTime
	}
	end, ok := timeutil.ParseClock(r.EndTime)
	if !ok {
		return queries.ValidateSelectionParams{}, errs.ErrInvalidTime
	}

	params := queries.ValidateSelectionParams{
		SpaceID: r.SpaceID,
		Date:    date,
		Start:   start,
		End:     end,
	}
	if r.ExcludeReservationID != nil {
		params.ExcludeReservationID = *r.ExcludeReservationID
	}
	return params, nil
}
