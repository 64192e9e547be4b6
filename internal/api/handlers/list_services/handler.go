package list_services

import (
	"net/http"

	"github.com/ecrodrig/SLN-AgendaService/internal/api/handlers"
)

const msgFetchErr = "Erro ao buscar serviços"

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

// Handle GET /api/servicos
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /servicos - Failed to list: %v", err)
		handlers.RespondError(w, http.StatusInternalServerError, msgFetchErr)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
