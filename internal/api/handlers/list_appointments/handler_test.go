package list_appointments

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecrodrig/SLN-AgendaService/internal/service/appointments"
	"github.com/ecrodrig/SLN-AgendaService/internal/service/appointments/models"
)

type fakeService struct {
	resp []models.AppointmentResponse
	err  error

	gotReq *models.ListRequest
}

func (f *fakeService) List(ctx context.Context, req *models.ListRequest) ([]models.AppointmentResponse, error) {
	f.gotReq = req
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func doRequest(t *testing.T, svc *fakeService, query string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/api/agendamentos"+query, nil)
	rec := httptest.NewRecorder()

	NewHandler(svc, nopLogger{}).Handle(rec, req)
	return rec
}

func TestHandle_NoFilters(t *testing.T) {
	svc := &fakeService{
		resp: []models.AppointmentResponse{
			{ID: 2, Date: "2025-10-16", EntryTime: "09:00"},
			{ID: 1, Date: "2025-10-15", EntryTime: "10:00"},
		},
	}

	rec := doRequest(t, svc, "")
	require.Equal(t, http.StatusOK, rec.Code)

	require.NotNil(t, svc.gotReq)
	assert.Nil(t, svc.gotReq.Date)
	assert.Nil(t, svc.gotReq.Status)

	var resp []models.AppointmentResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	assert.Equal(t, int64(2), resp[0].ID)
	assert.Equal(t, int64(1), resp[1].ID)
}

func TestHandle_EmptyListIsJSONArray(t *testing.T) {
	svc := &fakeService{resp: []models.AppointmentResponse{}}

	rec := doRequest(t, svc, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestHandle_DateAndStatusFilters(t *testing.T) {
	svc := &fakeService{resp: []models.AppointmentResponse{}}

	rec := doRequest(t, svc, "?data=2025-10-15&status=agendado")
	require.Equal(t, http.StatusOK, rec.Code)

	require.NotNil(t, svc.gotReq.Date)
	assert.Equal(t, time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC), *svc.gotReq.Date)
	require.NotNil(t, svc.gotReq.Status)
	assert.Equal(t, "agendado", *svc.gotReq.Status)
}

func TestHandle_MalformedDate(t *testing.T) {
	rec := doRequest(t, &fakeService{}, "?data=15/10/2025")

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Parâmetros de consulta inválidos")
}

func TestHandle_InvalidStatusFilter(t *testing.T) {
	svc := &fakeService{err: appointments.ErrInvalidInput}
	rec := doRequest(t, svc, "?status=pendente")

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Parâmetros de consulta inválidos")
}

func TestHandle_InternalError(t *testing.T) {
	svc := &fakeService{err: appointments.ErrInternal}
	rec := doRequest(t, svc, "")

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Erro ao buscar agendamentos")
}
