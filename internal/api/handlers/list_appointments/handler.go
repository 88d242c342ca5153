package list_appointments

import (
	"net/http"
	"strings"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
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

// Handle GET /api/v1/appointments
// Query params: search (optional, по ФИО, телефону, email и услуге)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	search := strings.TrimSpace(r.URL.Query().Get("search"))

	result, err := h.service.List(r.Context(), search)
	if err != nil {
		h.logger.Error("GET /appointments - Failed to list appointments: search=%q, error=%v", search, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /appointments - Appointments retrieved successfully: search=%q, count=%d",
		search, len(result.Appointments))
	handlers.RespondJSON(w, http.StatusOK, result)
}
