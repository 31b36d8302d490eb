//go:generate mockgen -destination ../../../tests/mock/queries/queries.go -package queriesmock agenda-espacos/internal/usecase/queries Backend,ReservationQueries,SpaceQueries,AvailabilityQueries

package queries

import (
	"context"

	"agenda-espacos/internal/domain/reservation"
	"agenda-espacos/internal/pkg/timeutil"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

// ReservationView is a display-ready reservation row: dates and times
// in canonical form, status already derived and labeled.
type ReservationView struct {
	ID          uuid.UUID `json:"id"`
	SpaceID     uuid.UUID `json:"space_id"`
	ProfessorID uuid.UUID `json:"professor_id"`
	Date        string    `json:"date"`       // YYYY-MM-DD, or raw when unparseable
	StartTime   string    `json:"start_time"` // HH:MM
	EndTime     string    `json:"end_time"`
	Status      string    `json:"status"` // effective, never raw pending
	StatusLabel string    `json:"status_label"`
}

// SpaceView represents read-optimized academic space data.
type SpaceView struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Code      string    `json:"code"`
	Capacity  int       `json:"capacity"`
	Available bool      `json:"available"`
}

// SlotView is one selectable tick of the booking grid.
type SlotView struct {
	Time     string `json:"time"`
	Occupied bool   `json:"occupied"`
}

// OccupiedView is a blocked range shown alongside the grid.
type OccupiedView struct {
	StartTime     string    `json:"start_time"`
	EndTime       string    `json:"end_time"`
	ReservationID uuid.UUID `json:"reservation_id"`
}

// AvailabilityView is the booking form's picture of one space-day.
type AvailabilityView struct {
	SpaceID  uuid.UUID      `json:"space_id"`
	Date     string         `json:"date"`
	Slots    []SlotView     `json:"slots"`
	Occupied []OccupiedView `json:"occupied"`
}

// ValidationView mirrors schedule.ValidationResult for the wire.
type ValidationView struct {
	Valid         bool       `json:"valid"`
	Reason        string     `json:"reason,omitempty"`
	Message       string     `json:"message,omitempty"`
	ConflictsWith *uuid.UUID `json:"conflicts_with,omitempty"`
}

// ReservationFilter scopes a backend listing. Nil fields mean "all".
type ReservationFilter struct {
	ProfessorID *uuid.UUID
	SpaceID     *uuid.UUID
	Date        *timeutil.Date
}

// Backend is the read port onto the authoritative reservations API.
// The caller's bearer token is forwarded verbatim on each call; the
// gateway holds no ambient credentials.
type Backend interface {
	ListReservations(ctx context.Context, token string, filter ReservationFilter) ([]reservation.Reservation, error)
	ListSpaces(ctx context.Context, token string) ([]SpaceView, error)
}
