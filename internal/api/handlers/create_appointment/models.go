package create_appointment

import (
	"time"

	"github.com/ecrodrig/SLN-AgendaService/internal/domain"
	createAppointment "github.com/ecrodrig/SLN-AgendaService/internal/usecase/create_appointment"
	"github.com/ecrodrig/SLN-AgendaService/pkg/types"
)

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	ClientName string `json:"nomeCliente"`
	ServiceID  int64  `json:"servicoId"`
	Date       string `json:"data"`        // "2025-10-15"
	EntryTime  string `json:"horaEntrada"` // "10:00"
	ExitTime   string `json:"horaSaida"`   // "10:30"
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID          int64  `json:"id"`
	ClientName  string `json:"nomeCliente"`
	ServiceName string `json:"servico"`
	ServiceID   int64  `json:"servicoId"`
	Date        string `json:"data"`
	EntryTime   string `json:"horaEntrada"`
	ExitTime    string `json:"horaSaida"`
	Status      string `json:"status"`
	CreatedAt   string `json:"criadoEm"`
}

// ConflictResponse carries the occupied slot back to the caller.
type ConflictResponse struct {
	Error    string          `json:"erro"`
	Conflict ConflictDetails `json:"conflito"`
}

// ConflictDetails identifies the appointment blocking the slot.
type ConflictDetails struct {
	ClientName string `json:"cliente"`
	TimeRange  string `json:"horario"` // "09:00 - 10:00"
}

// ToUseCaseRequest converts the HTTP request, parsing date and times.
// Empty fields pass through as zero values so the usecase can answer with
// its incomplete-request error rather than a format error.
func (r *CreateAppointmentRequest) ToUseCaseRequest() (*createAppointment.Request, error) {
	req := &createAppointment.Request{
		ClientName: r.ClientName,
		ServiceID:  r.ServiceID,
	}

	if r.Date != "" {
		date, err := time.Parse(domain.DateFormat, r.Date)
		if err != nil {
			return nil, err
		}
		req.Date = date
	}

	if r.EntryTime != "" {
		entry, err := types.NewTimeStringFromString(r.EntryTime)
		if err != nil {
			return nil, err
		}
		req.EntryTime = entry
	}

	if r.ExitTime != "" {
		exit, err := types.NewTimeStringFromString(r.ExitTime)
		if err != nil {
			return nil, err
		}
		req.ExitTime = exit
	}

	return req, nil
}

// FromUseCaseResponse converts the usecase response to the HTTP model.
func FromUseCaseResponse(resp *createAppointment.Response) *AppointmentResponse {
	return &AppointmentResponse{
		ID:          resp.ID,
		ClientName:  resp.ClientName,
		ServiceName: resp.ServiceName,
		ServiceID:   resp.ServiceID,
		Date:        resp.Date.Format(domain.DateFormat),
		EntryTime:   resp.EntryTime.String(),
		ExitTime:    resp.ExitTime.String(),
		Status:      resp.Status,
		CreatedAt:   resp.CreatedAt.Format(time.RFC3339),
	}
}
