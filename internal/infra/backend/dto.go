package backend

import (
	"agenda-espacos/internal/domain/reservation"
	"agenda-espacos/internal/usecase/queries"

	"github.com/google/uuid"
)

// The backend is loose about field shapes: dates may come as
// YYYY-MM-DD or DD/MM/YYYY and times with or without seconds. DTOs
// keep the raw strings and let the domain normalize on demand.
type reservationDTO struct {
	ID          uuid.UUID `json:"id"`
	SpaceID     uuid.UUID `json:"space_id"`
	ProfessorID uuid.UUID `json:"professor_id"`
	Date        string    `json:"date"`
	StartTime   string    `json:"start_time"`
	EndTime     string    `json:"end_time"`
	Status      string    `json:"status"`
}

func (d reservationDTO) toDomain() reservation.Reservation {
	return reservation.Reservation{
		ID:           d.ID,
		SpaceID:      d.SpaceID,
		ProfessorID:  d.ProfessorID,
		RawDate:      d.Date,
		RawStartTime: d.StartTime,
		RawEndTime:   d.EndTime,
		StoredStatus: reservation.ParseStatus(d.Status),
	}
}

type spaceDTO struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Code      string    `json:"code"`
	Capacity  int       `json:"capacity"`
	Available bool      `json:"available"`
}

func (d spaceDTO) toView() queries.SpaceView {
	return queries.SpaceView{
		ID:        d.ID,
		Name:      d.Name,
		Code:      d.Code,
		Capacity:  d.Capacity,
		Available: d.Available,
	}
}
