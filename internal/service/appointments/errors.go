package appointments

import "errors"

var (
	// ErrAppointmentNotFound is returned when the appointment does not exist.
	ErrAppointmentNotFound = errors.New("appointment not found")

	// ErrUnknownStatus is returned for a status value outside the lifecycle.
	ErrUnknownStatus = errors.New("unknown appointment status")

	// ErrIllegalTransition is returned when the requested status change is
	// not allowed by the lifecycle graph.
	ErrIllegalTransition = errors.New("illegal status transition")

	// ErrInvalidInput is returned for malformed filters or parameters.
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned for unexpected service failures.
	ErrInternal = errors.New("service: internal error")
)
