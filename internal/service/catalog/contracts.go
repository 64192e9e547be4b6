package catalog

import (
	"context"

	"github.com/ecrodrig/SLN-AgendaService/internal/domain"
)

// ServiceRepository is the store surface the catalog needs.
type ServiceRepository interface {
	Create(ctx context.Context, svc *domain.Service) (*domain.Service, error)
	List(ctx context.Context) ([]*domain.Service, error)
	Count(ctx context.Context) (int64, error)
	CreateBatch(ctx context.Context, services []*domain.Service) error
}

// Logger is the logging surface the catalog needs.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
