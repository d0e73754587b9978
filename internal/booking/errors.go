package booking

import (
	"errors"
	"fmt"
	"strings"

	"roomBooker/internal/lib/datetime"
	"roomBooker/internal/models"
)

var (
	ErrInvalidReservation = errors.New("invalid reservation")
	ErrConflictDetected   = errors.New("time slot is already booked")
	ErrStoreUnavailable   = errors.New("reservation store unavailable")
)

// ValidationError is a structural rejection of a candidate reservation.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s: %s", ErrInvalidReservation, e.Reason)
	}
	return fmt.Sprintf("%s: %s %s", ErrInvalidReservation, e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidReservation
}

// ConflictError carries the live reservations a candidate overlaps.
type ConflictError struct {
	Conflicts []models.Reservation
}

func (e *ConflictError) Error() string {
	if len(e.Conflicts) == 0 {
		return ErrConflictDetected.Error()
	}

	slots := make([]string, 0, len(e.Conflicts))
	for _, r := range e.Conflicts {
		slots = append(slots, fmt.Sprintf("%s-%s",
			datetime.FormatTimeForDisplay(r.StartTime),
			datetime.FormatTimeForDisplay(r.EndTime),
		))
	}

	first := e.Conflicts[0]
	return fmt.Sprintf("%s: room %d on %s (%s)",
		ErrConflictDetected,
		first.RoomID,
		datetime.FormatDateForDisplay(first.Date),
		strings.Join(slots, ", "),
	)
}

func (e *ConflictError) Unwrap() error {
	return ErrConflictDetected
}
