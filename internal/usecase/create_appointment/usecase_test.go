package create_appointment

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecrodrig/SLN-AgendaService/internal/domain"
	serviceRepo "github.com/ecrodrig/SLN-AgendaService/internal/infra/storage/service"
	"github.com/ecrodrig/SLN-AgendaService/internal/scheduler"
	"github.com/ecrodrig/SLN-AgendaService/pkg/types"
)

type fakeApptRepo struct {
	byDate  []*domain.Appointment
	created *domain.Appointment

	getByDateCalls int
	createCalls    int

	createErr error
}

func (f *fakeApptRepo) GetByDate(ctx context.Context, date time.Time) ([]*domain.Appointment, error) {
	f.getByDateCalls++
	requireTx(ctx)
	return f.byDate, nil
}

func (f *fakeApptRepo) Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	f.createCalls++
	requireTx(ctx)
	if f.createErr != nil {
		return nil, f.createErr
	}

	created := *appt
	created.ID = 42
	created.CreatedAt = time.Date(2025, 10, 14, 12, 0, 0, 0, time.UTC)
	created.UpdatedAt = created.CreatedAt
	f.created = &created
	return &created, nil
}

type fakeServiceRepo struct {
	svc *domain.Service
	err error
}

func (f *fakeServiceRepo) GetByID(ctx context.Context, id int64) (*domain.Service, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.svc, nil
}

type txMarker struct{}

// requireTx panics when a repository call happens outside the transaction
// the fake manager opened.
func requireTx(ctx context.Context) {
	if ctx.Value(txMarker{}) == nil {
		panic("repository called outside a transaction")
	}
}

type fakeTxManager struct {
	calls int
}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(context.WithValue(ctx, txMarker{}, true))
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

var testDate = time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)

func validRequest() *Request {
	return &Request{
		ClientName: "Maria Silva",
		ServiceID:  1,
		Date:       testDate,
		EntryTime:  "10:00",
		ExitTime:   "10:30",
	}
}

func corteDeCabelo() *domain.Service {
	return &domain.Service{ID: 1, Name: "Corte de Cabelo", DurationMinutes: 30, Price: 35.0}
}

func newTestUseCase(apptRepo *fakeApptRepo, svcRepo *fakeServiceRepo) (*UseCase, *fakeTxManager) {
	tx := &fakeTxManager{}
	return NewUseCase(apptRepo, svcRepo, tx, nopLogger{}), tx
}

func TestExecute_Success(t *testing.T) {
	repo := &fakeApptRepo{}
	uc, tx := newTestUseCase(repo, &fakeServiceRepo{svc: corteDeCabelo()})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	require.NotNil(t, resp)

	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, "Maria Silva", resp.ClientName)
	assert.Equal(t, int64(1), resp.ServiceID)
	assert.Equal(t, "Corte de Cabelo", resp.ServiceName)
	assert.Equal(t, testDate, resp.Date)
	assert.Equal(t, types.TimeString("10:00"), resp.EntryTime)
	assert.Equal(t, types.TimeString("10:30"), resp.ExitTime)
	assert.Equal(t, string(domain.StatusScheduled), resp.Status)

	assert.Equal(t, 1, tx.calls)
	assert.Equal(t, 1, repo.getByDateCalls)
	assert.Equal(t, 1, repo.createCalls)
}

func TestExecute_IncompleteRequestSkipsStore(t *testing.T) {
	repo := &fakeApptRepo{}
	uc, tx := newTestUseCase(repo, &fakeServiceRepo{svc: corteDeCabelo()})

	req := validRequest()
	req.ClientName = ""

	resp, err := uc.Execute(context.Background(), req)
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, scheduler.ErrIncompleteRequest)

	assert.Equal(t, 0, tx.calls)
	assert.Equal(t, 0, repo.getByDateCalls)
	assert.Equal(t, 0, repo.createCalls)
}

func TestExecute_InvalidTimeRange(t *testing.T) {
	repo := &fakeApptRepo{}
	uc, _ := newTestUseCase(repo, &fakeServiceRepo{svc: corteDeCabelo()})

	req := validRequest()
	req.EntryTime = "11:00"
	req.ExitTime = "10:00"

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, scheduler.ErrInvalidTimeRange)
	assert.Equal(t, 0, repo.createCalls)
}

func TestExecute_ServiceNotFound(t *testing.T) {
	repo := &fakeApptRepo{}
	uc, tx := newTestUseCase(repo, &fakeServiceRepo{err: serviceRepo.ErrServiceNotFound})

	resp, err := uc.Execute(context.Background(), validRequest())
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrServiceNotFound)

	assert.Equal(t, 0, tx.calls)
	assert.Equal(t, 0, repo.createCalls)
}

func TestExecute_Conflict(t *testing.T) {
	occupied := &domain.Appointment{
		ID:         7,
		ClientName: "Ana Costa",
		ServiceID:  2,
		Date:       testDate,
		EntryTime:  "10:00",
		ExitTime:   "11:00",
		Status:     domain.StatusConfirmed,
	}
	repo := &fakeApptRepo{byDate: []*domain.Appointment{occupied}}
	uc, tx := newTestUseCase(repo, &fakeServiceRepo{svc: corteDeCabelo()})

	resp, err := uc.Execute(context.Background(), validRequest())
	assert.Nil(t, resp)

	var conflict *scheduler.ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, int64(7), conflict.Conflicting.ID)
	assert.Equal(t, "Ana Costa", conflict.Conflicting.ClientName)

	assert.Equal(t, 1, tx.calls)
	assert.Equal(t, 0, repo.createCalls)
}

func TestExecute_CancelledSlotCanBeRebooked(t *testing.T) {
	cancelled := &domain.Appointment{
		ID:        7,
		Date:      testDate,
		EntryTime: "10:00",
		ExitTime:  "10:30",
		Status:    domain.StatusCancelled,
	}
	repo := &fakeApptRepo{byDate: []*domain.Appointment{cancelled}}
	uc, _ := newTestUseCase(repo, &fakeServiceRepo{svc: corteDeCabelo()})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusScheduled), resp.Status)
	assert.Equal(t, 1, repo.createCalls)
}

func TestExecute_CreateFailure(t *testing.T) {
	repo := &fakeApptRepo{createErr: errors.New("connection reset")}
	uc, _ := newTestUseCase(repo, &fakeServiceRepo{svc: corteDeCabelo()})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrInternal)
}
