package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-AppointmentService/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// SlotResponse HTTP модель слота
type SlotResponse struct {
	StartTime string `json:"startTime"` // "10:20"
	Soon      bool   `json:"soon"`      // Сегодня, менее чем через 30 минут
}

// AvailableSlotsResponse HTTP модель ответа
type AvailableSlotsResponse struct {
	Date             string         `json:"date"`
	Interval         int            `json:"interval"`
	WorkStart        string         `json:"workStart"`
	WorkEnd          string         `json:"workEnd"`
	Slots            []SlotResponse `json:"slots"`
	NoSlotsAvailable bool           `json:"noSlotsAvailable"`
}

// ToUseCaseRequest конвертирует параметры запроса в модель use case
func ToUseCaseRequest(dateStr, afterStr string) (*getAvailableSlots.Request, error) {
	date, err := time.ParseInLocation(domain.DateFormat, dateStr, time.Local)
	if err != nil {
		return nil, err
	}

	req := &getAvailableSlots.Request{Date: date}
	if afterStr != "" {
		after, err := types.NewTimeStringFromString(afterStr)
		if err != nil {
			return nil, err
		}
		req.After = &after
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]SlotResponse, 0, len(resp.Slots))
	for _, slot := range resp.Slots {
		slots = append(slots, SlotResponse{
			StartTime: slot.StartTime.String(),
			Soon:      slot.Soon,
		})
	}

	return &AvailableSlotsResponse{
		Date:             resp.Date.Format(domain.DateFormat),
		Interval:         resp.Interval,
		WorkStart:        resp.WorkDayStart.String(),
		WorkEnd:          resp.WorkDayEnd.String(),
		Slots:            slots,
		NoSlotsAvailable: resp.NoSlotsAvailable,
	}
}
