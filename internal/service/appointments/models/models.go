package models

import (
	"time"

	"github.com/ecrodrig/SLN-AgendaService/internal/domain"
)

// Request models

// UpdateStatusRequest asks for a lifecycle transition on an appointment.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// ListRequest narrows an appointment listing.
type ListRequest struct {
	Date   *time.Time // exact date, nil = all dates
	Status *string    // exact status, nil = all statuses
}

// ToDomainFilter converts the request into a store filter, validating the
// status value when present.
func (r *ListRequest) ToDomainFilter() (domain.AppointmentsFilter, error) {
	filter := domain.AppointmentsFilter{Date: r.Date}

	if r.Status != nil {
		status, err := domain.ParseStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response models

// AppointmentResponse is an appointment in the API's wire vocabulary.
type AppointmentResponse struct {
	ID          int64     `json:"id"`
	ClientName  string    `json:"nomeCliente"`
	ServiceName string    `json:"servico"`
	ServiceID   int64     `json:"servicoId"`
	Date        string    `json:"data"`        // "2025-10-15"
	EntryTime   string    `json:"horaEntrada"` // "10:00"
	ExitTime    string    `json:"horaSaida"`   // "10:30"
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"criadoEm"`
	UpdatedAt   time.Time `json:"atualizadoEm"`
}

// FromDomainAppointment converts a domain appointment into the wire DTO.
func FromDomainAppointment(a *domain.Appointment) *AppointmentResponse {
	if a == nil {
		return nil
	}

	return &AppointmentResponse{
		ID:          a.ID,
		ClientName:  a.ClientName,
		ServiceName: a.ServiceName,
		ServiceID:   a.ServiceID,
		Date:        a.Date.Format(domain.DateFormat),
		EntryTime:   a.EntryTime.String(),
		ExitTime:    a.ExitTime.String(),
		Status:      string(a.Status),
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

// FromDomainAppointmentList converts a slice of domain appointments.
func FromDomainAppointmentList(appointments []*domain.Appointment) []AppointmentResponse {
	result := make([]AppointmentResponse, 0, len(appointments))
	for _, appt := range appointments {
		if resp := FromDomainAppointment(appt); resp != nil {
			result = append(result, *resp)
		}
	}
	return result
}
