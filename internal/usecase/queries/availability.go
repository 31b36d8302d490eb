package queries

import (
	"context"

	"agenda-espacos/internal/domain/schedule"
	"agenda-espacos/internal/pkg/clock"
	"agenda-espacos/internal/pkg/config"
	"agenda-espacos/internal/pkg/errs"
	"agenda-espacos/internal/pkg/timeutil"

	"github.com/google/uuid"
)

// ValidateSelectionParams is a requested booking window to check
// before the form enables submission. ExcludeReservationID carries the
// reservation being edited, if any, so it does not conflict with
// itself.
type ValidateSelectionParams struct {
	SpaceID              uuid.UUID
	Date                 timeutil.Date
	Start                timeutil.ClockTime
	End                  timeutil.ClockTime
	ExcludeReservationID uuid.UUID
}

type AvailabilityQueries interface {
	// SpaceDay returns the slot grid for one space and date with each
	// tick flagged free or occupied.
	SpaceDay(ctx context.Context, token string, spaceID uuid.UUID, date timeutil.Date, excludeID uuid.UUID) (*AvailabilityView, error)

	// ValidateSelection checks a window against current occupancy.
	// An invalid selection is a normal result, not an error.
	ValidateSelection(ctx context.Context, token string, params ValidateSelectionParams) (*ValidationView, error)
}

type availabilityQueriesImpl struct {
	backend Backend
	clk     clock.Clock
	grid    config.SlotsConfig
}

func NewAvailabilityQueries(backend Backend, clk clock.Clock, cfg config.Config) AvailabilityQueries {
	return &availabilityQueriesImpl{backend: backend, clk: clk, grid: cfg.Slots}
}

func (q *availabilityQueriesImpl) SpaceDay(ctx context.Context, token string, spaceID uuid.UUID, date timeutil.Date, excludeID uuid.UUID) (*AvailabilityView, error) {
	occupied, err := q.fetchOccupied(ctx, token, spaceID, date, excludeID)
	if err != nil {
		return nil, err
	}

	grid := schedule.GenerateSlots(q.grid.StartHour, q.grid.EndHour, q.grid.StepMinutes)
	slots := make([]SlotView, len(grid))
	for i, slot := range grid {
		slots[i] = SlotView{
			Time:     slot.String(),
			Occupied: schedule.IsSlotOccupied(slot, occupied),
		}
	}

	view := &AvailabilityView{
		SpaceID:  spaceID,
		Date:     date.ISO(),
		Slots:    slots,
		Occupied: make([]OccupiedView, len(occupied)),
	}
	for i, iv := range occupied {
		view.Occupied[i] = OccupiedView{
			StartTime:     iv.Start.String(),
			EndTime:       iv.End.String(),
			ReservationID: iv.ReservationID,
		}
	}
	return view, nil
}

func (q *availabilityQueriesImpl) ValidateSelection(ctx context.Context, token string, params ValidateSelectionParams) (*ValidationView, error) {
	occupied, err := q.fetchOccupied(ctx, token, params.SpaceID, params.Date, params.ExcludeReservationID)
	if err != nil {
		return nil, err
	}

	result := schedule.ValidateSelection(params.Start, params.End, occupied, q.clk.Now(), params.Date)

	view := &ValidationView{
		Valid:   result.OK,
		Reason:  string(result.Reason),
		Message: result.Reason.Message(),
	}
	if result.ConflictsWith != uuid.Nil {
		id := result.ConflictsWith
		view.ConflictsWith = &id
	}
	return view, nil
}

func (q *availabilityQueriesImpl) fetchOccupied(ctx context.Context, token string, spaceID uuid.UUID, date timeutil.Date, excludeID uuid.UUID) ([]schedule.OccupiedInterval, error) {
	id := spaceID
	rs, err := q.backend.ListReservations(ctx, token, ReservationFilter{
		SpaceID: &id,
		Date:    dateFilter(date),
	})
	if err != nil {
		return nil, errs.Wrap(err, "listing reservations for availability")
	}
	return schedule.ComputeOccupied(rs, spaceID, date, excludeID), nil
}
