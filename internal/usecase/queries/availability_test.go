//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"agenda-espacos/internal/domain/reservation"
	"agenda-espacos/internal/pkg/clock"
	"agenda-espacos/internal/pkg/config"
	"agenda-espacos/internal/pkg/timeutil"
	"agenda-espacos/internal/usecase/queries"
	queriesmock "agenda-espacos/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAvailabilitySpaceDay(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := queriesmock.NewMockBackend(ctrl)
	q := queries.NewAvailabilityQueries(backend, clock.NewFakeClock(fixedNow()), config.NewTestConfig())

	spaceID := uuid.New()
	date := timeutil.Date{Year: 2024, Month: time.March, Day: 6}

	booked := reservation.Reservation{
		ID:           uuid.New(),
		SpaceID:      spaceID,
		ProfessorID:  uuid.New(),
		RawDate:      "2024-03-06",
		RawStartTime: "09:00",
		RawEndTime:   "10:00",
		StoredStatus: reservation.StatusScheduled,
	}
	cancelled := booked
	cancelled.ID = uuid.New()
	cancelled.RawStartTime = "14:00"
	cancelled.RawEndTime = "15:00"
	cancelled.StoredStatus = reservation.StatusCancelled

	backend.EXPECT().
		ListReservations(gomock.Any(), "tok", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, f queries.ReservationFilter) ([]reservation.Reservation, error) {
			// The query narrows the fetch to the space and date.
			require.NotNil(t, f.SpaceID)
			assert.Equal(t, spaceID, *f.SpaceID)
			require.NotNil(t, f.Date)
			assert.Equal(t, date, *f.Date)
			return []reservation.Reservation{booked, cancelled}, nil
		})

	view, err := q.SpaceDay(context.Background(), "tok", spaceID, date, uuid.Nil)
	require.NoError(t, err)

	assert.Equal(t, spaceID, view.SpaceID)
	assert.Equal(t, "2024-03-06", view.Date)
	require.Len(t, view.Slots, 97)
	require.Len(t, view.Occupied, 1, "cancelled reservations do not occupy")
	assert.Equal(t, booked.ID, view.Occupied[0].ReservationID)

	bySlot := make(map[string]bool, len(view.Slots))
	for _, s := range view.Slots {
		bySlot[s.Time] = s.Occupied
	}
	assert.False(t, bySlot["08:50"])
	assert.True(t, bySlot["09:00"])
	assert.True(t, bySlot["09:50"])
	assert.True(t, bySlot["10:00"], "end boundary slot stays blocked")
	assert.False(t, bySlot["10:10"])
	assert.False(t, bySlot["14:30"], "cancelled window stays free")
}

func TestAvailabilityValidateSelection(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := queriesmock.NewMockBackend(ctrl)
	q := queries.NewAvailabilityQueries(backend, clock.NewFakeClock(fixedNow()), config.NewTestConfig())

	spaceID := uuid.New()
	date := timeutil.Date{Year: 2024, Month: time.March, Day: 6}

	existing := reservation.Reservation{
		ID:           uuid.New(),
		SpaceID:      spaceID,
		ProfessorID:  uuid.New(),
		RawDate:      "2024-03-06",
		RawStartTime: "09:00",
		RawEndTime:   "10:00",
		StoredStatus: reservation.StatusScheduled,
	}

	params := func(start, end timeutil.ClockTime) queries.ValidateSelectionParams {
		return queries.ValidateSelectionParams{
			SpaceID: spaceID,
			Date:    date,
			Start:   start,
			End:     end,
		}
	}

	t.Run("free window accepted", func(t *testing.T) {
		backend.EXPECT().ListReservations(gomock.Any(), "tok", gomock.Any()).
			Return([]reservation.Reservation{existing}, nil)

		view, err := q.ValidateSelection(context.Background(), "tok", params(
			timeutil.ClockTime{Hour: 11}, timeutil.ClockTime{Hour: 12}))
		require.NoError(t, err)
		assert.True(t, view.Valid)
		assert.Empty(t, view.Reason)
		assert.Nil(t, view.ConflictsWith)
	})

	t.Run("overlap reports the blocking reservation", func(t *testing.T) {
		backend.EXPECT().ListReservations(gomock.Any(), "tok", gomock.Any()).
			Return([]reservation.Reservation{existing}, nil)

		view, err := q.ValidateSelection(context.Background(), "tok", params(
			timeutil.ClockTime{Hour: 9, Minute: 30}, timeutil.ClockTime{Hour: 10, Minute: 30}))
		require.NoError(t, err)
		assert.False(t, view.Valid)
		assert.Equal(t, "conflict", view.Reason)
		assert.NotEmpty(t, view.Message)
		require.NotNil(t, view.ConflictsWith)
		assert.Equal(t, existing.ID, *view.ConflictsWith)
	})

	t.Run("editing a reservation ignores its own interval", func(t *testing.T) {
		backend.EXPECT().ListReservations(gomock.Any(), "tok", gomock.Any()).
			Return([]reservation.Reservation{existing}, nil)

		p := params(timeutil.ClockTime{Hour: 9, Minute: 30}, timeutil.ClockTime{Hour: 10, Minute: 30})
		p.ExcludeReservationID = existing.ID

		view, err := q.ValidateSelection(context.Background(), "tok", p)
		require.NoError(t, err)
		assert.True(t, view.Valid)
	})

	t.Run("reversed window rejected without consulting occupancy semantics", func(t *testing.T) {
		backend.EXPECT().ListReservations(gomock.Any(), "tok", gomock.Any()).
			Return(nil, nil)

		view, err := q.ValidateSelection(context.Background(), "tok", params(
			timeutil.ClockTime{Hour: 9, Minute: 30}, timeutil.ClockTime{Hour: 9}))
		require.NoError(t, err)
		assert.False(t, view.Valid)
		assert.Equal(t, "invalid_range", view.Reason)
	})
}
