package models

import (
	"time"

	"github.com/ecrodrig/SLN-AgendaService/internal/domain"
)

// CreateServiceRequest adds a bookable offering to the catalog.
type CreateServiceRequest struct {
	Name            string  `json:"nome"`
	DurationMinutes int     `json:"duracao"`
	Price           float64 `json:"preco"`
}

// ToDomainService converts the request into the domain entity.
func (r *CreateServiceRequest) ToDomainService() *domain.Service {
	return &domain.Service{
		Name:            r.Name,
		DurationMinutes: r.DurationMinutes,
		Price:           r.Price,
	}
}

// ServiceResponse is a catalog service in the API's wire vocabulary.
type ServiceResponse struct {
	ID              int64     `json:"id"`
	Name            string    `json:"nome"`
	DurationMinutes int       `json:"duracao"`
	Price           float64   `json:"preco"`
	CreatedAt       time.Time `json:"criadoEm"`
	UpdatedAt       time.Time `json:"atualizadoEm"`
}

// FromDomainService converts a domain service into the wire DTO.
func FromDomainService(s *domain.Service) *ServiceResponse {
	if s == nil {
		return nil
	}

	return &ServiceResponse{
		ID:              s.ID,
		Name:            s.Name,
		DurationMinutes: s.DurationMinutes,
		Price:           s.Price,
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}
}

// FromDomainServiceList converts a slice of domain services.
func FromDomainServiceList(services []*domain.Service) []ServiceResponse {
	result := make([]ServiceResponse, 0, len(services))
	for _, svc := range services {
		if resp := FromDomainService(svc); resp != nil {
			result = append(result, *resp)
		}
	}
	return result
}
