package update_appointment

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/internal/service/appointments/models"
	updateAppointment "github.com/m04kA/SMC-AppointmentService/internal/usecase/update_appointment"
)

const (
	msgInvalidAppointmentID = "некорректный ID записи"
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidStartTime     = "Укажите дату и время в формате ГГГГ-ММ-ДДTЧЧ:ММ"
	msgNotFound             = "запись не найдена"
	fieldStartTime          = "startTime"
	fieldStatus             = "status"
)

type Handler struct {
	useCase   UpdateAppointmentUseCase
	validator Validator
	logger    Logger
}

func NewHandler(useCase UpdateAppointmentUseCase, validator Validator, logger Logger) *Handler {
	return &Handler{
		useCase:   useCase,
		validator: validator,
		logger:    logger,
	}
}

// Handle PUT /api/v1/appointments/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.ParseID(r, "id")
	if err != nil {
		h.logger.Warn("PUT /appointments/{id} - Invalid appointment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	var req UpdateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /appointments/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		verrs := withStartTimeError(h.validator.Struct(useCaseReq))
		h.logger.Warn("PUT /appointments/{id} - Invalid start time %q: appointment_id=%d, fields=%v", req.StartTime, id, verrs.Fields())
		handlers.RespondValidationError(w, verrs)
		return
	}

	result, err := h.useCase.Execute(r.Context(), id, useCaseReq)
	if err != nil {
		var verrs domain.ValidationErrors
		switch {
		case errors.Is(err, updateAppointment.ErrAppointmentNotFound):
			h.logger.Warn("PUT /appointments/{id} - Appointment not found: appointment_id=%d", id)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.As(err, &verrs):
			h.logger.Warn("PUT /appointments/{id} - Validation failed: appointment_id=%d, fields=%v", id, verrs.Fields())
			handlers.RespondValidationError(w, verrs)

		default:
			h.logger.Error("PUT /appointments/{id} - Failed to update appointment: appointment_id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /appointments/{id} - Appointment updated successfully: appointment_id=%d", id)
	handlers.RespondJSON(w, http.StatusOK, models.FromDomainAppointment(result))
}

// withStartTimeError добавляет ошибку формата startTime в порядке полей формы: перед статусом
func withStartTimeError(fieldErrs domain.ValidationErrors) domain.ValidationErrors {
	result := make(domain.ValidationErrors, 0, len(fieldErrs)+1)
	added := false
	for _, fe := range fieldErrs {
		if fe.Field == fieldStatus && !added {
			result.Add(fieldStartTime, msgInvalidStartTime)
			added = true
		}
		result = append(result, fe)
	}
	if !added {
		result.Add(fieldStartTime, msgInvalidStartTime)
	}
	return result
}
