//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"agenda-espacos/internal/domain/reservation"
	"agenda-espacos/internal/pkg/clock"
	"agenda-espacos/internal/pkg/errs"
	"agenda-espacos/internal/usecase/queries"
	queriesmock "agenda-espacos/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var brt = time.FixedZone("BRT", -3*3600)

// 2024-03-05 09:30 institution time.
func fixedNow() time.Time {
	return time.Date(2024, time.March, 5, 9, 30, 0, 0, brt)
}

func record(date, start, end string, status reservation.Status) reservation.Reservation {
	return reservation.Reservation{
		ID:           uuid.New(),
		SpaceID:      uuid.New(),
		ProfessorID:  uuid.New(),
		RawDate:      date,
		RawStartTime: start,
		RawEndTime:   end,
		StoredStatus: status,
	}
}

func TestReservationQueriesList(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := queriesmock.NewMockBackend(ctrl)
	q := queries.NewReservationQueries(backend, clock.NewFakeClock(fixedNow()))

	t.Run("derives, labels and sorts", func(t *testing.T) {
		running := record("2024-03-05", "09:00", "10:00", reservation.StatusPending)
		tomorrow := record("06/03/2024", "08:00", "09:00", reservation.StatusScheduled)
		elapsed := record("2024-03-04", "10:00", "11:00", reservation.StatusScheduled)

		backend.EXPECT().
			ListReservations(gomock.Any(), "tok", gomock.Any()).
			Return([]reservation.Reservation{tomorrow, running, elapsed}, nil)

		views, err := q.List(context.Background(), "tok", queries.ReservationFilter{})
		require.NoError(t, err)
		require.Len(t, views, 3)

		// Date ascending: yesterday, today, tomorrow.
		assert.Equal(t, elapsed.ID, views[0].ID)
		assert.Equal(t, "awaiting_confirmation", views[0].Status)
		assert.Equal(t, "Aguardando confirmação", views[0].StatusLabel)

		assert.Equal(t, running.ID, views[1].ID)
		assert.Equal(t, "in_use", views[1].Status)
		assert.Equal(t, "Em uso", views[1].StatusLabel)

		assert.Equal(t, tomorrow.ID, views[2].ID)
		assert.Equal(t, "scheduled", views[2].Status)
		assert.Equal(t, "Agendado", views[2].StatusLabel)
		// Slash date canonicalized for the wire.
		assert.Equal(t, "2024-03-06", views[2].Date)
	})

	t.Run("raw pending never leaks", func(t *testing.T) {
		future := record("2024-03-09", "08:00", "09:00", reservation.StatusPending)
		backend.EXPECT().
			ListReservations(gomock.Any(), "tok", gomock.Any()).
			Return([]reservation.Reservation{future}, nil)

		views, err := q.List(context.Background(), "tok", queries.ReservationFilter{})
		require.NoError(t, err)
		assert.Equal(t, "scheduled", views[0].Status)
	})

	t.Run("malformed record degrades instead of failing the list", func(t *testing.T) {
		broken := record("not-a-date", "", "", reservation.StatusScheduled)
		backend.EXPECT().
			ListReservations(gomock.Any(), "tok", gomock.Any()).
			Return([]reservation.Reservation{broken}, nil)

		views, err := q.List(context.Background(), "tok", queries.ReservationFilter{})
		require.NoError(t, err)
		require.Len(t, views, 1)
		assert.Equal(t, "not-a-date", views[0].Date)
		assert.Equal(t, "scheduled", views[0].Status)
	})

	t.Run("backend failure surfaces marked error", func(t *testing.T) {
		backend.EXPECT().
			ListReservations(gomock.Any(), "tok", gomock.Any()).
			Return(nil, errs.ErrBackendUnavailable)

		_, err := q.List(context.Background(), "tok", queries.ReservationFilter{})
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrBackendUnavailable)
	})
}

func TestSpaceQueriesList(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := queriesmock.NewMockBackend(ctrl)
	q := queries.NewSpaceQueries(backend)

	space := queries.SpaceView{ID: uuid.New(), Name: "Laboratório 2", Code: "LAB-02", Capacity: 40, Available: true}
	backend.EXPECT().ListSpaces(gomock.Any(), "tok").Return([]queries.SpaceView{space}, nil)

	views, err := q.ListSpaces(context.Background(), "tok")
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, space, *views[0])
}
