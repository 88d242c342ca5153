package check_start_time

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// Request проверка времени начала без сохранения.
// С AppointmentID время проверяется по правилам редактирования
type Request struct {
	StartTime     time.Time
	AppointmentID *int64
}

// Response результат проверки
type Response struct {
	Valid  bool
	Errors domain.ValidationErrors
}
