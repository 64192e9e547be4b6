package catalog

import (
	"context"
	"fmt"

	"github.com/ecrodrig/SLN-AgendaService/internal/domain"
	"github.com/ecrodrig/SLN-AgendaService/internal/service/catalog/models"
)

// defaultServices seeds an empty catalog on first start.
var defaultServices = []*domain.Service{
	{Name: "Corte de Cabelo", DurationMinutes: 30, Price: 35.0},
	{Name: "Barba", DurationMinutes: 20, Price: 25.0},
	{Name: "Manicure", DurationMinutes: 45, Price: 30.0},
	{Name: "Pedicure", DurationMinutes: 45, Price: 35.0},
	{Name: "Corte + Barba", DurationMinutes: 50, Price: 55.0},
}

// Service manages the catalog of bookable offerings.
type Service struct {
	serviceRepo ServiceRepository
	logger      Logger
}

// NewService creates the catalog service.
func NewService(serviceRepo ServiceRepository, logger Logger) *Service {
	return &Service{
		serviceRepo: serviceRepo,
		logger:      logger,
	}
}

// List returns the catalog ordered by name.
func (s *Service) List(ctx context.Context) ([]models.ServiceResponse, error) {
	services, err := s.serviceRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainServiceList(services), nil
}

// Create adds an offering to the catalog. Editing an existing offering
// never rewrites past appointments: they reference the service by id and
// resolve its name only at read time.
func (s *Service) Create(ctx context.Context, req *models.CreateServiceRequest) (*models.ServiceResponse, error) {
	if req.Name == "" {
		s.logger.Warn("Create: missing service name")
		return nil, fmt.Errorf("%w: nome is required", ErrInvalidInput)
	}
	if req.DurationMinutes <= 0 {
		s.logger.Warn("Create: non-positive duration for service %q", req.Name)
		return nil, fmt.Errorf("%w: duracao must be positive", ErrInvalidInput)
	}
	if req.Price < 0 {
		s.logger.Warn("Create: negative price for service %q", req.Name)
		return nil, fmt.Errorf("%w: preco must not be negative", ErrInvalidInput)
	}

	created, err := s.serviceRepo.Create(ctx, req.ToDomainService())
	if err != nil {
		s.logger.Error("Create: repository error for service %q: %v", req.Name, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: service id=%d (%s) created", created.ID, created.Name)
	return models.FromDomainService(created), nil
}

// EnsureDefaults seeds the default offerings when the catalog is empty.
// Called once at startup.
func (s *Service) EnsureDefaults(ctx context.Context) error {
	count, err := s.serviceRepo.Count(ctx)
	if err != nil {
		return fmt.Errorf("%w: EnsureDefaults - repository error: %v", ErrInternal, err)
	}
	if count > 0 {
		return nil
	}

	if err := s.serviceRepo.CreateBatch(ctx, defaultServices); err != nil {
		return fmt.Errorf("%w: EnsureDefaults - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("EnsureDefaults: seeded %d default services", len(defaultServices))
	return nil
}
