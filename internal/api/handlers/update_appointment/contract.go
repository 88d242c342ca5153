package update_appointment

import (
	"context"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	updateAppointment "github.com/m04kA/SMC-AppointmentService/internal/usecase/update_appointment"
)

type UpdateAppointmentUseCase interface {
	Execute(ctx context.Context, id int64, req *updateAppointment.Request) (*domain.Appointment, error)
}

type Validator interface {
	Struct(s interface{}) domain.ValidationErrors
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
