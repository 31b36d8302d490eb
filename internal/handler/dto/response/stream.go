package response

import (
	"time"

	"agenda-espacos/internal/usecase/queries"
)

// StreamEvent is one push on the live reservations stream. At carries
// the instant the statuses were derived for, so the client can show
// staleness if the stream stalls.
type StreamEvent struct {
	At           time.Time                  `json:"at"`
	Reservations []*queries.ReservationView `json:"reservations"`
}

func NewStreamEvent(at time.Time, views []*queries.ReservationView) StreamEvent {
	return StreamEvent{At: at, Reservations: views}
}
