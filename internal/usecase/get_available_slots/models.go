package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// Request модель запроса на получение свободных слотов
type Request struct {
	Date  time.Time         // Дата (время суток игнорируется)
	After *types.TimeString // Не предлагать слоты раньше этого времени
}

// Response модель ответа со слотами на дату
type Response struct {
	Date             time.Time
	Interval         int
	WorkDayStart     types.TimeString
	WorkDayEnd       types.TimeString
	Slots            []domain.AvailableSlot
	NoSlotsAvailable bool
}
