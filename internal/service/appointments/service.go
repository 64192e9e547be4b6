package appointments

import (
	"context"
	"errors"
	"fmt"

	"github.com/ecrodrig/SLN-AgendaService/internal/domain"
	apptRepo "github.com/ecrodrig/SLN-AgendaService/internal/infra/storage/appointment"
	"github.com/ecrodrig/SLN-AgendaService/internal/service/appointments/models"
)

// Service covers the appointment flows that do not touch the conflict
// invariant: reads, status transitions and deletion. Creation lives in the
// create_appointment usecase because it needs the transactional
// read-check-insert sequence.
type Service struct {
	apptRepo AppointmentRepository
	logger   Logger
}

// NewService creates the appointment service.
func NewService(apptRepo AppointmentRepository, logger Logger) *Service {
	return &Service{
		apptRepo: apptRepo,
		logger:   logger,
	}
}

// GetByID fetches one appointment.
func (s *Service) GetByID(ctx context.Context, id int64) (*models.AppointmentResponse, error) {
	appt, err := s.apptRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
			s.logger.Warn("GetByID: appointment id=%d not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("GetByID: repository error for appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainAppointment(appt), nil
}

// List fetches appointments with optional exact-date and status filters,
// ordered by date descending and entry time ascending within a date.
func (s *Service) List(ctx context.Context, req *models.ListRequest) ([]models.AppointmentResponse, error) {
	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: invalid status filter", ErrInvalidInput)
	}

	appointments, err := s.apptRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d appointments", len(appointments))
	return models.FromDomainAppointmentList(appointments), nil
}

// UpdateStatus moves an appointment through its lifecycle. The transition
// graph is enforced: out of a terminal status, or along a missing edge,
// the request is rejected. Re-requesting the current status succeeds
// without a write. Cancelling frees the slot for future bookings without
// deleting the record.
func (s *Service) UpdateStatus(ctx context.Context, id int64, req *models.UpdateStatusRequest) (*models.AppointmentResponse, error) {
	s.logger.Info("UpdateStatus: appointment id=%d, requested status=%s", id, req.Status)

	requested, err := domain.ParseStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: unknown status=%q for appointment id=%d", req.Status, id)
		return nil, ErrUnknownStatus
	}

	appt, err := s.apptRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
			s.logger.Warn("UpdateStatus: appointment id=%d not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("UpdateStatus: repository error for appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	if err := domain.Transition(appt.Status, requested); err != nil {
		s.logger.Warn("UpdateStatus: illegal transition %s -> %s for appointment id=%d",
			appt.Status, requested, id)
		return nil, ErrIllegalTransition
	}

	// Same-status re-entry is a no-op success.
	if requested == appt.Status {
		return models.FromDomainAppointment(appt), nil
	}

	if err := s.apptRepo.UpdateStatus(ctx, id, requested); err != nil {
		if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("UpdateStatus: repository error for appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	updated, err := s.apptRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("UpdateStatus: failed to re-read appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: appointment id=%d moved %s -> %s", id, appt.Status, requested)
	return models.FromDomainAppointment(updated), nil
}

// Delete removes an appointment permanently.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.apptRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Delete: appointment id=%d not found", id)
			return ErrAppointmentNotFound
		}
		s.logger.Error("Delete: repository error for appointment id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: appointment id=%d deleted", id)
	return nil
}
