package reservation

import "strings"

// Status is a reservation lifecycle state. The backend persists one of
// these; the effective state shown to users is recomputed from the
// clock (see Derive) and may differ from what is stored.
type Status string

const (
	// StatusPending is a legacy spelling of StatusScheduled still
	// emitted by older backend records. Both mean "not yet started,
	// not cancelled". Pending is never surfaced as a label.
	StatusPending              Status = "pending"
	StatusScheduled            Status = "scheduled"
	StatusInUse                Status = "in_use"
	StatusAwaitingConfirmation Status = "awaiting_confirmation"
	StatusUsed                 Status = "used"
	StatusCancelled            Status = "cancelled"
)

// ParseStatus maps backend spellings onto the canonical set. Unknown
// values degrade to StatusPending so derivation can still run on the
// time window.
func ParseStatus(s string) Status {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pending", "pendente":
		return StatusPending
	case "scheduled", "agendado", "agendada":
		return StatusScheduled
	case "in_use", "in-use", "em_uso":
		return StatusInUse
	case "awaiting_confirmation", "aguardando_confirmacao":
		return StatusAwaitingConfirmation
	case "used", "utilizado", "utilizada":
		return StatusUsed
	case "cancelled", "canceled", "cancelado", "cancelada":
		return StatusCancelled
	default:
		return StatusPending
	}
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusScheduled, StatusInUse, StatusAwaitingConfirmation, StatusUsed, StatusCancelled:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether the status is authoritative: once
// reached it is never overridden by time-based derivation.
func (s Status) IsTerminal() bool {
	return s == StatusCancelled || s == StatusUsed
}

// Normalize folds the legacy pending spelling into scheduled. Raw
// pending must never reach the display layer.
func (s Status) Normalize() Status {
	if s == StatusPending {
		return StatusScheduled
	}
	return s
}

// Label returns the display label. The strings are fixed by the
// existing UI and must not drift.
func (s Status) Label() string {
	switch s.Normalize() {
	case StatusScheduled:
		return "Agendado"
	case StatusInUse:
		return "Em uso"
	case StatusAwaitingConfirmation:
		return "Aguardando confirmação"
	case StatusUsed:
		return "Utilizado"
	case StatusCancelled:
		return "Cancelado"
	default:
		return "Agendado"
	}
}

// Priority is the display sort weight used as the last ordering key:
// in-use first, cancelled last.
func (s Status) Priority() int {
	switch s.Normalize() {
	case StatusInUse:
		return 1
	case StatusAwaitingConfirmation:
		return 2
	case StatusScheduled:
		return 3
	case StatusUsed:
		return 4
	case StatusCancelled:
		return 5
	default:
		return 3
	}
}
