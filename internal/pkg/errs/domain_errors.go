package errs

import "errors"

// Sentinel errors shared between the query layer and the HTTP surface.
var (
	// Backend collaborator errors
	ErrBackendUnavailable = errors.New("reservations backend unavailable")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrNotFound           = errors.New("not found")

	// Input errors
	ErrInvalidDate    = errors.New("invalid date")
	ErrInvalidTime    = errors.New("invalid time")
	ErrInvalidSpaceID = errors.New("invalid space id")
)
