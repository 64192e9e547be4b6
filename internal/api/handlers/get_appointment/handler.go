package get_appointment

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/ecrodrig/SLN-AgendaService/internal/api/handlers"
	"github.com/ecrodrig/SLN-AgendaService/internal/service/appointments"
)

const (
	msgInvalidID = "ID de agendamento inválido"
	msgNotFound  = "Agendamento não encontrado"
	msgFetchErr  = "Erro ao buscar agendamento"
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

// Handle GET /api/agendamentos/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	id, err := strconv.ParseInt(vars["id"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /agendamentos/{id} - Invalid appointment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	result, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrAppointmentNotFound):
			h.logger.Warn("GET /agendamentos/{id} - Not found: id=%d", id)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /agendamentos/{id} - Failed to fetch: id=%d, error=%v", id, err)
			handlers.RespondError(w, http.StatusInternalServerError, msgFetchErr)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
