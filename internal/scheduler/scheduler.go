// Package scheduler is the conflict-checking core of the service. It is
// pure: it receives the proposal and the already-booked appointments for
// the date and returns a decision, leaving every write to the caller. The
// caller is responsible for running read-check-insert atomically (the
// create usecase does so inside a serializable transaction).
package scheduler

import (
	"fmt"
	"time"

	"github.com/ecrodrig/SLN-AgendaService/internal/domain"
	"github.com/ecrodrig/SLN-AgendaService/pkg/types"
)

// CheckConflict returns the first non-cancelled appointment on date whose
// [entry, exit) interval overlaps the proposed one, or nil when the slot is
// free.
//
// Intervals are half-open: [a, b) and [c, d) overlap iff a < d && c < b.
// An appointment ending exactly when another begins does not conflict, so
// back-to-back bookings are legal. Times are zero-padded HH:MM strings,
// which makes string comparison order-preserving.
func CheckConflict(date time.Time, entry, exit types.TimeString, existing []*domain.Appointment) *domain.Appointment {
	for _, appt := range existing {
		if appt.IsCancelled() {
			continue
		}
		if !sameDate(appt.Date, date) {
			continue
		}
		if appt.EntryTime.IsBefore(exit) && entry.IsBefore(appt.ExitTime) {
			return appt
		}
	}
	return nil
}

// ProposeBooking validates req against the appointments already on its
// date and either returns a draft appointment ready for the store to
// persist, or the error describing the rejection: ErrIncompleteRequest,
// ErrInvalidTimeRange, or a *ConflictError carrying the blocking
// appointment.
func ProposeBooking(req *Request, existing []*domain.Appointment) (*domain.Appointment, error) {
	if err := ValidateRequest(req); err != nil {
		return nil, err
	}

	if conflict := CheckConflict(req.Date, req.EntryTime, req.ExitTime, existing); conflict != nil {
		return nil, &ConflictError{Conflicting: conflict}
	}

	return &domain.Appointment{
		ClientName: req.ClientName,
		ServiceID:  req.ServiceID,
		Date:       req.Date,
		EntryTime:  req.EntryTime,
		ExitTime:   req.ExitTime,
		Status:     domain.StatusScheduled,
	}, nil
}

// ValidateRequest checks the required fields and the time pair. Callers
// that need the validation verdict before reading the store (the create
// usecase rejects incomplete requests without opening a transaction) can
// invoke it directly; ProposeBooking always runs it.
func ValidateRequest(req *Request) error {
	if req.ClientName == "" {
		return fmt.Errorf("%w: nomeCliente is required", ErrIncompleteRequest)
	}
	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: servicoId is required", ErrIncompleteRequest)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: data is required", ErrIncompleteRequest)
	}
	if req.EntryTime.IsZero() {
		return fmt.Errorf("%w: horaEntrada is required", ErrIncompleteRequest)
	}
	if req.ExitTime.IsZero() {
		return fmt.Errorf("%w: horaSaida is required", ErrIncompleteRequest)
	}
	if !req.EntryTime.IsBefore(req.ExitTime) {
		return ErrInvalidTimeRange
	}
	return nil
}

// sameDate compares calendar dates ignoring the clock part.
func sameDate(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
