package delete_appointment

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
	msgDeleteErr = "Erro ao excluir agendamento"
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

// Handle DELETE /api/agendamentos/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	id, err := strconv.ParseInt(vars["id"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /agendamentos/{id} - Invalid appointment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, appointments.ErrAppointmentNotFound):
			h.logger.Warn("DELETE /agendamentos/{id} - Not found: id=%d", id)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /agendamentos/{id} - Failed to delete: id=%d, error=%v", id, err)
			handlers.RespondError(w, http.StatusInternalServerError, msgDeleteErr)
		}
		return
	}

	h.logger.Info("DELETE /agendamentos/{id} - Appointment deleted: id=%d", id)
	w.WriteHeader(http.StatusNoContent)
}
