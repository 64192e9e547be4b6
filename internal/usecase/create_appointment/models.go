package create_appointment

import (
	"time"

	"github.com/ecrodrig/SLN-AgendaService/internal/scheduler"
	"github.com/ecrodrig/SLN-AgendaService/pkg/types"
)

// Request asks for a new appointment.
type Request struct {
	ClientName string           // who the slot is for
	ServiceID  int64            // referenced catalog service
	Date       time.Time        // calendar date, no clock part
	EntryTime  types.TimeString // slot start, e.g. "10:00"
	ExitTime   types.TimeString // slot end, exclusive
}

// toSchedulerRequest converts the usecase request for the conflict engine.
func (r *Request) toSchedulerRequest() *scheduler.Request {
	return &scheduler.Request{
		ClientName: r.ClientName,
		ServiceID:  r.ServiceID,
		Date:       r.Date,
		EntryTime:  r.EntryTime,
		ExitTime:   r.ExitTime,
	}
}

// Response is the created appointment.
type Response struct {
	ID          int64
	ClientName  string
	ServiceID   int64
	ServiceName string
	Date        time.Time
	EntryTime   types.TimeString
	ExitTime    types.TimeString
	Status      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
