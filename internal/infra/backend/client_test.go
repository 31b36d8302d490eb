//go:build unit

package backend_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"agenda-espacos/internal/domain/reservation"
	"agenda-espacos/internal/infra/backend"
	"agenda-espacos/internal/pkg/config"
	"agenda-espacos/internal/pkg/errs"
	"agenda-espacos/internal/pkg/timeutil"
	"agenda-espacos/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClient(t *testing.T, handler http.HandlerFunc) *backend.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	cfg := config.BackendConfig{BaseURL: srv.URL, Timeout: 5 * time.Second}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return backend.NewClient(cfg, logger)
}

func TestClientListReservations(t *testing.T) {
	resID := uuid.New()
	spaceID := uuid.New()
	profID := uuid.New()

	t.Run("forwards token and filter, maps payload", func(t *testing.T) {
		client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/reservations", r.URL.Path)
			assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
			assert.Equal(t, spaceID.String(), r.URL.Query().Get("spaceId"))
			assert.Equal(t, "2024-03-06", r.URL.Query().Get("date"))

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`[{
				"id": "` + resID.String() + `",
				"space_id": "` + spaceID.String() + `",
				"professor_id": "` + profID.String() + `",
				"date": "06/03/2024",
				"start_time": "09:00",
				"end_time": "10:00",
				"status": "pendente"
			}]`))
		})

		date := timeutil.Date{Year: 2024, Month: time.March, Day: 6}
		rs, err := client.ListReservations(context.Background(), "tok", queries.ReservationFilter{
			SpaceID: &spaceID,
			Date:    &date,
		})
		require.NoError(t, err)
		require.Len(t, rs, 1)

		assert.Equal(t, resID, rs[0].ID)
		assert.Equal(t, "06/03/2024", rs[0].RawDate)
		assert.Equal(t, reservation.StatusPending, rs[0].StoredStatus)
	})

	t.Run("unauthorized maps to sentinel", func(t *testing.T) {
		client := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		})

		_, err := client.ListReservations(context.Background(), "bad", queries.ReservationFilter{})
		assert.ErrorIs(t, err, errs.ErrUnauthorized)
	})

	t.Run("server error marks backend unavailable", func(t *testing.T) {
		client := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		})

		_, err := client.ListReservations(context.Background(), "tok", queries.ReservationFilter{})
		assert.ErrorIs(t, err, errs.ErrBackendUnavailable)
	})

	t.Run("garbled body marks backend unavailable", func(t *testing.T) {
		client := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{not json`))
		})

		_, err := client.ListReservations(context.Background(), "tok", queries.ReservationFilter{})
		assert.ErrorIs(t, err, errs.ErrBackendUnavailable)
	})
}

func TestClientListSpaces(t *testing.T) {
	spaceID := uuid.New()

	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/spaces", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{
			"id": "` + spaceID.String() + `",
			"name": "Auditório Central",
			"code": "AUD-01",
			"capacity": 120,
			"available": true
		}]`))
	})

	spaces, err := client.ListSpaces(context.Background(), "tok")
	require.NoError(t, err)
	require.Len(t, spaces, 1)
	assert.Equal(t, queries.SpaceView{
		ID:        spaceID,
		Name:      "Auditório Central",
		Code:      "AUD-01",
		Capacity:  120,
		Available: true,
	}, spaces[0])
}

func TestClientNotFound(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := client.ListSpaces(context.Background(), "tok")
	assert.ErrorIs(t, err, errs.ErrNotFound)
}
