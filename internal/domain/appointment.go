package domain

import (
	"time"

	"github.com/ecrodrig/SLN-AgendaService/pkg/types"
)

// Appointment represents a booked slot: a client, a catalog service and a
// half-open [EntryTime, ExitTime) interval on a calendar date.
type Appointment struct {
	ID         int64
	ClientName string
	ServiceID  int64
	Date       time.Time
	EntryTime  types.TimeString
	ExitTime   types.TimeString
	Status     AppointmentStatus

	// ServiceName is resolved from the catalog at read time, never stored.
	ServiceName string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsCancelled reports whether the appointment no longer occupies its slot.
func (a *Appointment) IsCancelled() bool {
	return a.Status == StatusCancelled
}

// TimeRange returns the interval in the "HH:MM - HH:MM" display form used
// in conflict messages.
func (a *Appointment) TimeRange() string {
	return a.EntryTime.String() + " - " + a.ExitTime.String()
}

// AppointmentsFilter narrows appointment listings.
type AppointmentsFilter struct {
	Date   *time.Time         // exact date match, nil = all dates
	Status *AppointmentStatus // exact status match, nil = all statuses
}
