package create_appointment

import (
	"errors"
	"net/http"

	"github.com/ecrodrig/SLN-AgendaService/internal/api/handlers"
	"github.com/ecrodrig/SLN-AgendaService/internal/scheduler"
	createAppointment "github.com/ecrodrig/SLN-AgendaService/internal/usecase/create_appointment"
)

const (
	msgInvalidRequestBody = "Corpo da requisição inválido"
	msgIncompleteData     = "Dados incompletos"
	msgInvalidTimeRange   = "Horário de entrada deve ser anterior ao de saída"
	msgServiceNotFound    = "Serviço não encontrado"
	msgConflict           = "Já existe um agendamento neste horário"
	msgCreateFailed       = "Erro ao criar agendamento"
)

type Handler struct {
	useCase CreateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CreateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/agendamentos
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /agendamentos - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /agendamentos - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgIncompleteData)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var conflict *scheduler.ConflictError

		switch {
		case errors.As(err, &conflict):
			h.logger.Warn("POST /agendamentos - Slot conflict: client=%q, blocking_id=%d",
				req.ClientName, conflict.Conflicting.ID)
			handlers.RespondJSON(w, http.StatusConflict, ConflictResponse{
				Error: msgConflict,
				Conflict: ConflictDetails{
					ClientName: conflict.Conflicting.ClientName,
					TimeRange:  conflict.Conflicting.TimeRange(),
				},
			})

		case errors.Is(err, scheduler.ErrIncompleteRequest):
			h.logger.Warn("POST /agendamentos - Incomplete request: %v", err)
			handlers.RespondBadRequest(w, msgIncompleteData)

		case errors.Is(err, scheduler.ErrInvalidTimeRange):
			h.logger.Warn("POST /agendamentos - Invalid time range: client=%q", req.ClientName)
			handlers.RespondBadRequest(w, msgInvalidTimeRange)

		case errors.Is(err, createAppointment.ErrServiceNotFound):
			h.logger.Warn("POST /agendamentos - Service not found: service_id=%d", req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		default:
			h.logger.Error("POST /agendamentos - Failed to create appointment: client=%q, error=%v",
				req.ClientName, err)
			handlers.RespondError(w, http.StatusInternalServerError, msgCreateFailed)
		}
		return
	}

	h.logger.Info("POST /agendamentos - Appointment created: id=%d, client=%q", result.ID, result.ClientName)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
