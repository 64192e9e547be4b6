package create_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/ecrodrig/SLN-AgendaService/internal/domain"
	serviceRepo "github.com/ecrodrig/SLN-AgendaService/internal/infra/storage/service"
	"github.com/ecrodrig/SLN-AgendaService/internal/scheduler"
)

// UseCase creates appointments while keeping the no-double-booking
// invariant. The conflict decision itself is the pure scheduler; this
// usecase supplies the data and the transaction boundary around it.
type UseCase struct {
	apptRepo    AppointmentRepository
	serviceRepo ServiceRepository
	txManager   TransactionManager
	logger      Logger
}

// NewUseCase creates the usecase.
func NewUseCase(
	apptRepo AppointmentRepository,
	serviceRepo ServiceRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		apptRepo:    apptRepo,
		serviceRepo: serviceRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// Execute validates the request, resolves the catalog service and runs
// read-existing -> check-conflict -> insert inside a serializable
// transaction, so two concurrent requests for overlapping slots on the
// same date cannot both succeed.
//
// Error surface: scheduler.ErrIncompleteRequest, scheduler.ErrInvalidTimeRange,
// *scheduler.ConflictError, ErrServiceNotFound, ErrInternal.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: client=%q, service=%d, date=%s, slot=%s-%s",
		req.ClientName, req.ServiceID, req.Date.Format(domain.DateFormat), req.EntryTime, req.ExitTime)

	schedReq := req.toSchedulerRequest()

	// 1. Reject incomplete requests before touching the store.
	if err := scheduler.ValidateRequest(schedReq); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. The referenced service must exist.
	svc, err := uc.serviceRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			uc.logger.Warn("CreateAppointment: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	var result *domain.Appointment

	// 3. Read-check-insert under SERIALIZABLE isolation; the per-date read
	// additionally locks the rows FOR UPDATE.
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		existing, err := uc.apptRepo.GetByDate(txCtx, req.Date)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to get appointments for date: %v", err)
			return fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
		}

		draft, err := scheduler.ProposeBooking(schedReq, existing)
		if err != nil {
			var conflict *scheduler.ConflictError
			if errors.As(err, &conflict) {
				uc.logger.Warn("CreateAppointment: slot %s-%s on %s conflicts with appointment id=%d",
					req.EntryTime, req.ExitTime, req.Date.Format(domain.DateFormat), conflict.Conflicting.ID)
			}
			return err
		}

		created, err := uc.apptRepo.Create(txCtx, draft)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		result = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateAppointment: successfully created appointment id=%d", result.ID)

	return &Response{
		ID:          result.ID,
		ClientName:  result.ClientName,
		ServiceID:   result.ServiceID,
		ServiceName: svc.Name,
		Date:        result.Date,
		EntryTime:   result.EntryTime,
		ExitTime:    result.ExitTime,
		Status:      string(result.Status),
		CreatedAt:   result.CreatedAt,
		UpdatedAt:   result.UpdatedAt,
	}, nil
}
