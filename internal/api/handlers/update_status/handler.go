package update_status

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/ecrodrig/SLN-AgendaService/internal/api/handlers"
	"github.com/ecrodrig/SLN-AgendaService/internal/service/appointments"
	"github.com/ecrodrig/SLN-AgendaService/internal/service/appointments/models"
)

const (
	msgInvalidID          = "ID de agendamento inválido"
	msgInvalidRequestBody = "Corpo da requisição inválido"
	msgNotFound           = "Agendamento não encontrado"
	msgUnknownStatus      = "Status inválido"
	msgIllegalTransition  = "Transição de status não permitida"
	msgUpdateErr          = "Erro ao atualizar agendamento"
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

// Handle PUT /api/agendamentos/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	id, err := strconv.ParseInt(vars["id"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /agendamentos/{id} - Invalid appointment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	var req models.UpdateStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /agendamentos/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpdateStatus(r.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrAppointmentNotFound):
			h.logger.Warn("PUT /agendamentos/{id} - Not found: id=%d", id)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, appointments.ErrUnknownStatus):
			h.logger.Warn("PUT /agendamentos/{id} - Unknown status %q: id=%d", req.Status, id)
			handlers.RespondBadRequest(w, msgUnknownStatus)

		case errors.Is(err, appointments.ErrIllegalTransition):
			h.logger.Warn("PUT /agendamentos/{id} - Illegal transition to %q: id=%d", req.Status, id)
			handlers.RespondBadRequest(w, msgIllegalTransition)

		default:
			h.logger.Error("PUT /agendamentos/{id} - Failed to update: id=%d, error=%v", id, err)
			handlers.RespondError(w, http.StatusInternalServerError, msgUpdateErr)
		}
		return
	}

	h.logger.Info("PUT /agendamentos/{id} - Status updated: id=%d, status=%s", id, result.Status)
	handlers.RespondJSON(w, http.StatusOK, result)
}
