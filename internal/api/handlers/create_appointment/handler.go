package create_appointment

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/internal/service/appointments/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidStartTime   = "Укажите дату и время в формате ГГГГ-ММ-ДДTЧЧ:ММ"
	fieldStartTime        = "startTime"
)

type Handler struct {
	useCase   CreateAppointmentUseCase
	validator Validator
	logger    Logger
}

func NewHandler(useCase CreateAppointmentUseCase, validator Validator, logger Logger) *Handler {
	return &Handler{
		useCase:   useCase,
		validator: validator,
		logger:    logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		// startTime последнее поле формы, его ошибка идет после ошибок остальных полей
		verrs := h.validator.Struct(useCaseReq)
		verrs.Add(fieldStartTime, msgInvalidStartTime)
		h.logger.Warn("POST /appointments - Invalid start time %q: fields=%v", req.StartTime, verrs.Fields())
		handlers.RespondValidationError(w, verrs)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var verrs domain.ValidationErrors
		switch {
		case errors.As(err, &verrs):
			h.logger.Warn("POST /appointments - Validation failed: fields=%v", verrs.Fields())
			handlers.RespondValidationError(w, verrs)

		default:
			h.logger.Error("POST /appointments - Failed to create appointment: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments - Appointment created successfully: appointment_id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, models.FromDomainAppointment(result))
}
