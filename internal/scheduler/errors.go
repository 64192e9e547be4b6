package scheduler

import (
	"errors"
	"fmt"

	"github.com/ecrodrig/SLN-AgendaService/internal/domain"
)

var (
	// ErrIncompleteRequest is returned when a booking request is missing a
	// required field.
	ErrIncompleteRequest = errors.New("scheduler: incomplete booking request")

	// ErrInvalidTimeRange is returned when the entry time is not strictly
	// before the exit time.
	ErrInvalidTimeRange = errors.New("scheduler: entry time must be before exit time")

	// ErrConflict marks a scheduling conflict. Use errors.As with
	// *ConflictError to reach the conflicting appointment.
	ErrConflict = errors.New("scheduler: time slot conflict")
)

// ConflictError reports a rejected proposal together with the appointment
// that occupies the slot, so callers can build a human-readable message.
type ConflictError struct {
	Conflicting *domain.Appointment
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("scheduler: slot conflicts with appointment id=%d (%s, %s)",
		e.Conflicting.ID, e.Conflicting.ClientName, e.Conflicting.TimeRange())
}

// Is lets errors.Is(err, ErrConflict) match a *ConflictError.
func (e *ConflictError) Is(target error) bool {
	return target == ErrConflict
}
