package queries

import (
	"context"
	"time"

	"agenda-espacos/internal/domain/reservation"
	"agenda-espacos/internal/pkg/clock"
	"agenda-espacos/internal/pkg/errs"
	"agenda-espacos/internal/pkg/timeutil"
)

type ReservationQueries interface {
	// List returns display-ready rows for the filter, sorted by date,
	// start time and effective status. Statuses are derived against
	// the clock at call time.
	List(ctx context.Context, token string, filter ReservationFilter) ([]*ReservationView, error)

	// Fetch returns the raw rows for the filter. Callers that hold on
	// to the result re-derive with ViewsAt as the clock moves.
	Fetch(ctx context.Context, token string, filter ReservationFilter) ([]reservation.Reservation, error)
}

type SpaceQueries interface {
	ListSpaces(ctx context.Context, token string) ([]*SpaceView, error)
}

type reservationQueriesImpl struct {
	backend Backend
	clk     clock.Clock
}

func NewReservationQueries(backend Backend, clk clock.Clock) ReservationQueries {
	return &reservationQueriesImpl{backend: backend, clk: clk}
}

func (q *reservationQueriesImpl) List(ctx context.Context, token string, filter ReservationFilter) ([]*ReservationView, error) {
	rs, err := q.backend.ListReservations(ctx, token, filter)
	if err != nil {
		return nil, errs.Wrap(err, "listing reservations")
	}
	return ViewsAt(rs, q.clk.Now()), nil
}

func (q *reservationQueriesImpl) Fetch(ctx context.Context, token string, filter ReservationFilter) ([]reservation.Reservation, error) {
	rs, err := q.backend.ListReservations(ctx, token, filter)
	if err != nil {
		return nil, errs.Wrap(err, "fetching reservations")
	}
	return rs, nil
}

// ViewsAt derives, sorts and converts raw rows for the given instant.
// Pure so the live stream can re-run it on every tick without touching
// the backend.
func ViewsAt(rs []reservation.Reservation, now time.Time) []*ReservationView {
	derived := reservation.DeriveAll(rs, now)
	reservation.SortDerived(derived)

	views := make([]*ReservationView, len(derived))
	for i, d := range derived {
		views[i] = toReservationView(d)
	}
	return views
}

func toReservationView(d reservation.Derived) *ReservationView {
	view := &ReservationView{
		ID:          d.ID,
		SpaceID:     d.SpaceID,
		ProfessorID: d.ProfessorID,
		Date:        d.RawDate,
		StartTime:   d.RawStartTime,
		EndTime:     d.RawEndTime,
		Status:      d.Effective.Normalize().String(),
		StatusLabel: d.Effective.Label(),
	}
	// Canonicalize what parses; keep the raw string otherwise so the
	// row still renders something.
	if date, ok := d.Date(); ok {
		view.Date = date.ISO()
	}
	if start, ok := d.StartTime(); ok {
		view.StartTime = start.String()
	}
	if end, ok := d.EndTime(); ok {
		view.EndTime = end.String()
	}
	return view
}

type spaceQueriesImpl struct {
	backend Backend
}

func NewSpaceQueries(backend Backend) SpaceQueries {
	return &spaceQueriesImpl{backend: backend}
}

func (q *spaceQueriesImpl) ListSpaces(ctx context.Context, token string) ([]*SpaceView, error) {
	spaces, err := q.backend.ListSpaces(ctx, token)
	if err != nil {
		return nil, errs.Wrap(err, "listing spaces")
	}
	views := make([]*SpaceView, len(spaces))
	for i := range spaces {
		s := spaces[i]
		views[i] = &s
	}
	return views, nil
}

// dateFilter is a small helper shared with availability queries.
func dateFilter(d timeutil.Date) *timeutil.Date {
	return &d
}
