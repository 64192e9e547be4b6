package create_appointment

import "errors"

var (
	// ErrServiceNotFound is returned when the referenced catalog service
	// does not exist.
	ErrServiceNotFound = errors.New("create_appointment: service not found")

	// ErrInternal is returned for unexpected usecase failures.
	ErrInternal = errors.New("create_appointment: internal error")
)
