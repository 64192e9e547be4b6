package scheduler

import (
	"time"

	"github.com/ecrodrig/SLN-AgendaService/pkg/types"
)

// Request is a proposed booking: who, which service, and the wanted slot.
type Request struct {
	ClientName string
	ServiceID  int64
	Date       time.Time
	EntryTime  types.TimeString
	ExitTime   types.TimeString
}
