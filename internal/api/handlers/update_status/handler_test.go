package update_status

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecrodrig/SLN-AgendaService/internal/service/appointments"
	"github.com/ecrodrig/SLN-AgendaService/internal/service/appointments/models"
)

type fakeService struct {
	resp *models.AppointmentResponse
	err  error

	gotID     int64
	gotStatus string
}

func (f *fakeService) UpdateStatus(ctx context.Context, id int64, req *models.UpdateStatusRequest) (*models.AppointmentResponse, error) {
	f.gotID = id
	f.gotStatus = req.Status
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func doRequest(t *testing.T, svc *fakeService, id, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPut, "/api/agendamentos/"+id, strings.NewReader(body))
	req = mux.SetURLVars(req, map[string]string{"id": id})
	rec := httptest.NewRecorder()

	NewHandler(svc, nopLogger{}).Handle(rec, req)
	return rec
}

func TestHandle_OK(t *testing.T) {
	svc := &fakeService{
		resp: &models.AppointmentResponse{
			ID:     1,
			Status: "confirmado",
		},
	}

	rec := doRequest(t, svc, "1", `{"status": "confirmado"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, int64(1), svc.gotID)
	assert.Equal(t, "confirmado", svc.gotStatus)

	var resp models.AppointmentResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "confirmado", resp.Status)
}

func TestHandle_InvalidID(t *testing.T) {
	rec := doRequest(t, &fakeService{}, "abc", `{"status": "confirmado"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "ID de agendamento inválido")
}

func TestHandle_InvalidBody(t *testing.T) {
	rec := doRequest(t, &fakeService{}, "1", "{not json")

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Corpo da requisição inválido")
}

func TestHandle_NotFound(t *testing.T) {
	svc := &fakeService{err: appointments.ErrAppointmentNotFound}
	rec := doRequest(t, svc, "99", `{"status": "confirmado"}`)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Agendamento não encontrado")
}

func TestHandle_UnknownStatus(t *testing.T) {
	svc := &fakeService{err: appointments.ErrUnknownStatus}
	rec := doRequest(t, svc, "1", `{"status": "pendente"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Status inválido")
}

func TestHandle_IllegalTransition(t *testing.T) {
	svc := &fakeService{err: appointments.ErrIllegalTransition}
	rec := doRequest(t, svc, "1", `{"status": "concluido"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Transição de status não permitida")
}

func TestHandle_InternalError(t *testing.T) {
	svc := &fakeService{err: errors.New("connection reset")}
	rec := doRequest(t, svc, "1", `{"status": "confirmado"}`)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Erro ao atualizar agendamento")
}
