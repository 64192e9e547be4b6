package domain

import "errors"

// AppointmentStatus is the lifecycle tag of an appointment. The stored
// values are the original wire vocabulary of the API.
type AppointmentStatus string

const (
	StatusScheduled AppointmentStatus = "agendado"
	StatusConfirmed AppointmentStatus = "confirmado"
	StatusCompleted AppointmentStatus = "concluido"
	StatusCancelled AppointmentStatus = "cancelado"
)

var (
	// ErrUnknownStatus is returned for a status value outside the lifecycle.
	ErrUnknownStatus = errors.New("domain: unknown appointment status")

	// ErrIllegalTransition is returned for a status change the lifecycle
	// graph does not allow.
	ErrIllegalTransition = errors.New("domain: illegal status transition")
)

// allowedTransitions is the lifecycle graph:
// agendado -> confirmado | cancelado, confirmado -> concluido | cancelado.
// concluido and cancelado are terminal.
var allowedTransitions = map[AppointmentStatus][]AppointmentStatus{
	StatusScheduled: {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCompleted, StatusCancelled},
	StatusCompleted: {},
	StatusCancelled: {},
}

// ParseStatus validates a wire status value.
func ParseStatus(s string) (AppointmentStatus, error) {
	status := AppointmentStatus(s)
	if _, ok := allowedTransitions[status]; !ok {
		return "", ErrUnknownStatus
	}
	return status, nil
}

// IsTerminal reports whether no transition leaves the status.
func (s AppointmentStatus) IsTerminal() bool {
	return len(allowedTransitions[s]) == 0
}

// Transition checks that moving from current to requested is legal.
// Re-entering the current status is a no-op success; transitions out of a
// terminal status or edges missing from the graph are rejected.
func Transition(current, requested AppointmentStatus) error {
	if _, ok := allowedTransitions[requested]; !ok {
		return ErrUnknownStatus
	}
	if requested == current {
		return nil
	}
	for _, next := range allowedTransitions[current] {
		if next == requested {
			return nil
		}
	}
	return ErrIllegalTransition
}
