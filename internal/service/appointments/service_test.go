package appointments

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecrodrig/SLN-AgendaService/internal/domain"
	apptRepo "github.com/ecrodrig/SLN-AgendaService/internal/infra/storage/appointment"
	"github.com/ecrodrig/SLN-AgendaService/internal/service/appointments/models"
	"github.com/ecrodrig/SLN-AgendaService/pkg/ptr"
)

type fakeRepo struct {
	appointments map[int64]*domain.Appointment
	listResult   []*domain.Appointment
	listFilter   domain.AppointmentsFilter

	updateStatusCalls int
	deleteErr         error
}

func (f *fakeRepo) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	appt, ok := f.appointments[id]
	if !ok {
		return nil, apptRepo.ErrAppointmentNotFound
	}
	copied := *appt
	return &copied, nil
}

func (f *fakeRepo) GetByDate(ctx context.Context, date time.Time) ([]*domain.Appointment, error) {
	return nil, nil
}

func (f *fakeRepo) List(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	f.listFilter = filter
	return f.listResult, nil
}

func (f *fakeRepo) UpdateStatus(ctx context.Context, id int64, status domain.AppointmentStatus) error {
	f.updateStatusCalls++
	appt, ok := f.appointments[id]
	if !ok {
		return apptRepo.ErrAppointmentNotFound
	}
	appt.Status = status
	return nil
}

func (f *fakeRepo) Delete(ctx context.Context, id int64) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	delete(f.appointments, id)
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

var testDate = time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)

func storedAppointment(status domain.AppointmentStatus) *domain.Appointment {
	return &domain.Appointment{
		ID:          1,
		ClientName:  "Maria Silva",
		ServiceID:   1,
		ServiceName: "Corte de Cabelo",
		Date:        testDate,
		EntryTime:   "10:00",
		ExitTime:    "10:30",
		Status:      status,
	}
}

func newTestService(appointments ...*domain.Appointment) (*Service, *fakeRepo) {
	repo := &fakeRepo{appointments: map[int64]*domain.Appointment{}}
	for _, appt := range appointments {
		repo.appointments[appt.ID] = appt
	}
	return NewService(repo, nopLogger{}), repo
}

func TestGetByID(t *testing.T) {
	svc, _ := newTestService(storedAppointment(domain.StatusScheduled))

	resp, err := svc.GetByID(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "Maria Silva", resp.ClientName)
	assert.Equal(t, "Corte de Cabelo", resp.ServiceName)
	assert.Equal(t, "2025-10-15", resp.Date)
	assert.Equal(t, "10:00", resp.EntryTime)
	assert.Equal(t, "10:30", resp.ExitTime)
	assert.Equal(t, "agendado", resp.Status)
}

func TestGetByID_NotFound(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestList_FilterConversion(t *testing.T) {
	svc, repo := newTestService()

	_, err := svc.List(context.Background(), &models.ListRequest{
		Date:   &testDate,
		Status: ptr.Ptr("agendado"),
	})
	require.NoError(t, err)

	require.NotNil(t, repo.listFilter.Date)
	assert.Equal(t, testDate, *repo.listFilter.Date)
	require.NotNil(t, repo.listFilter.Status)
	assert.Equal(t, domain.StatusScheduled, *repo.listFilter.Status)
}

func TestList_InvalidStatusFilter(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.List(context.Background(), &models.ListRequest{
		Status: ptr.Ptr("pendente"),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdateStatus(t *testing.T) {
	tests := []struct {
		name      string
		current   domain.AppointmentStatus
		requested string
		wantErr   error
	}{
		{name: "confirm scheduled", current: domain.StatusScheduled, requested: "confirmado"},
		{name: "cancel scheduled", current: domain.StatusScheduled, requested: "cancelado"},
		{name: "complete confirmed", current: domain.StatusConfirmed, requested: "concluido"},
		{name: "cancel confirmed", current: domain.StatusConfirmed, requested: "cancelado"},
		{name: "complete scheduled skips confirmation", current: domain.StatusScheduled, requested: "concluido", wantErr: ErrIllegalTransition},
		{name: "revive cancelled", current: domain.StatusCancelled, requested: "agendado", wantErr: ErrIllegalTransition},
		{name: "cancel completed", current: domain.StatusCompleted, requested: "cancelado", wantErr: ErrIllegalTransition},
		{name: "unknown status", current: domain.StatusScheduled, requested: "pendente", wantErr: ErrUnknownStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newTestService(storedAppointment(tt.current))

			resp, err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{Status: tt.requested})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.requested, resp.Status)
		})
	}
}

func TestUpdateStatus_SameStatusIsNoOp(t *testing.T) {
	svc, repo := newTestService(storedAppointment(domain.StatusConfirmed))

	resp, err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{Status: "confirmado"})
	require.NoError(t, err)
	assert.Equal(t, "confirmado", resp.Status)
	assert.Equal(t, 0, repo.updateStatusCalls)
}

func TestUpdateStatus_NotFound(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.UpdateStatus(context.Background(), 99, &models.UpdateStatusRequest{Status: "confirmado"})
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestDelete(t *testing.T) {
	svc, repo := newTestService(storedAppointment(domain.StatusScheduled))

	require.NoError(t, svc.Delete(context.Background(), 1))
	assert.Empty(t, repo.appointments)
}

func TestDelete_NotFound(t *testing.T) {
	fake := &fakeRepo{
		appointments: map[int64]*domain.Appointment{},
		deleteErr:    apptRepo.ErrAppointmentNotFound,
	}
	svc := NewService(fake, nopLogger{})

	assert.ErrorIs(t, svc.Delete(context.Background(), 1), ErrAppointmentNotFound)
}
