package list_services

import (
	"net/http"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	"github.com/m04kA/SMC-AppointmentService/internal/domain"
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

// Handle GET /api/v1/services
// Query params: orderBy (optional, name|category)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	order := domain.ServiceOrder(r.URL.Query().Get("orderBy"))

	result, err := h.service.ListActive(r.Context(), order)
	if err != nil {
		h.logger.Error("GET /services - Failed to list services: order=%q, error=%v", order, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /services - Services retrieved successfully: count=%d", len(result.Services))
	handlers.RespondJSON(w, http.StatusOK, result)
}
