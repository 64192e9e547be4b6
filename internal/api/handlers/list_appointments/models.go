package list_appointments

import (
	"time"

	"github.com/ecrodrig/SLN-AgendaService/internal/domain"
	"github.com/ecrodrig/SLN-AgendaService/internal/service/appointments/models"
)

// ToServiceRequest builds the list filter from query parameters.
func ToServiceRequest(dateStr, statusStr string) (*models.ListRequest, error) {
	req := &models.ListRequest{}

	if dateStr != "" {
		date, err := time.Parse(domain.DateFormat, dateStr)
		if err != nil {
			return nil, err
		}
		req.Date = &date
	}

	if statusStr != "" {
		req.Status = &statusStr
	}

	return req, nil
}
