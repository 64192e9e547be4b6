package create_service

import (
	"errors"
	"net/http"

	"github.com/ecrodrig/SLN-AgendaService/internal/api/handlers"
	"github.com/ecrodrig/SLN-AgendaService/internal/service/catalog"
	"github.com/ecrodrig/SLN-AgendaService/internal/service/catalog/models"
)

const (
	msgInvalidRequestBody = "Corpo da requisição inválido"
	msgInvalidService     = "Dados do serviço inválidos"
	msgCreateErr          = "Erro ao criar serviço"
)

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/servicos
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateServiceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /servicos - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrInvalidInput):
			h.logger.Warn("POST /servicos - Invalid service: %v", err)
			handlers.RespondBadRequest(w, msgInvalidService)

		default:
			h.logger.Error("POST /servicos - Failed to create: %v", err)
			handlers.RespondError(w, http.StatusInternalServerError, msgCreateErr)
		}
		return
	}

	h.logger.Info("POST /servicos - Service created: id=%d, name=%q", result.ID, result.Name)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
