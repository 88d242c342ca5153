package check_start_time

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	checkStartTime "github.com/m04kA/SMC-AppointmentService/internal/usecase/check_start_time"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidStartTime   = "некорректный формат времени начала, ожидается YYYY-MM-DDTHH:MM"
	msgNotFound           = "запись не найдена"
)

type Handler struct {
	useCase CheckStartTimeUseCase
	logger  Logger
}

func NewHandler(useCase CheckStartTimeUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments/check-start-time
// Проверяет время по тем же правилам, что и сохранение, ничего не записывая
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CheckStartTimeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments/check-start-time - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /appointments/check-start-time - Invalid start time %q", req.StartTime)
		handlers.RespondBadRequest(w, msgInvalidStartTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, checkStartTime.ErrAppointmentNotFound):
			h.logger.Warn("POST /appointments/check-start-time - Appointment not found: appointment_id=%d", *req.AppointmentID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, checkStartTime.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidStartTime)

		default:
			h.logger.Error("POST /appointments/check-start-time - Failed to check start time: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
