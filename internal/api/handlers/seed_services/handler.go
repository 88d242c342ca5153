package seed_services

import (
	"net/http"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
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

// Handle POST /api/v1/services/seed
// Повторный вызов на непустом каталоге ничего не добавляет
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.SeedDefaults(r.Context())
	if err != nil {
		h.logger.Error("POST /services/seed - Failed to seed services: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /services/seed - Seed finished: added=%d", result.Added)
	handlers.RespondJSON(w, http.StatusOK, result)
}
