package check_start_time

import (
	"context"

	checkStartTime "github.com/m04kA/SMC-AppointmentService/internal/usecase/check_start_time"
)

type CheckStartTimeUseCase interface {
	Execute(ctx context.Context, req *checkStartTime.Request) (*checkStartTime.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
