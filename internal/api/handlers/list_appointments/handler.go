package list_appointments

import (
	"errors"
	"net/http"

	"github.com/ecrodrig/SLN-AgendaService/internal/api/handlers"
	"github.com/ecrodrig/SLN-AgendaService/internal/service/appointments"
)

const (
	msgInvalidParams = "Parâmetros de consulta inválidos"
	msgFetchErr      = "Erro ao buscar agendamentos"
)

type Handler struct {
	service AppointmentService
	logger  Logger
}

func NewHandler(service AppointmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/agendamentos
// Query params: data (YYYY-MM-DD), status (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	serviceReq, err := ToServiceRequest(r.URL.Query().Get("data"), r.URL.Query().Get("status"))
	if err != nil {
		h.logger.Warn("GET /agendamentos - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.service.List(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrInvalidInput):
			h.logger.Warn("GET /agendamentos - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /agendamentos - Failed to list: %v", err)
			handlers.RespondError(w, http.StatusInternalServerError, msgFetchErr)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
