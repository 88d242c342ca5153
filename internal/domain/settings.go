package domain

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// Settings scheduling parameters of the business (single row, id = SettingsID)
type Settings struct {
	SlotIntervalMinutes      int
	WorkDayStart             types.TimeString
	WorkDayEnd               types.TimeString
	BreakBetweenSlotsMinutes int // Хранится и отображается, но в расчётах не участвует
	LastUpdated              time.Time
}

// DefaultSettings возвращает настройки, которые действуют, пока строка не сохранена
func DefaultSettings() *Settings {
	return &Settings{
		SlotIntervalMinutes:      DefaultSlotIntervalMinutes,
		WorkDayStart:             DefaultWorkDayStart,
		WorkDayEnd:               DefaultWorkDayEnd,
		BreakBetweenSlotsMinutes: DefaultBreakBetweenSlotsMinutes,
	}
}

// EffectiveInterval returns the slot interval, falling back to the default for non-positive values
func (s *Settings) EffectiveInterval() int {
	if s == nil || s.SlotIntervalMinutes <= 0 {
		return DefaultSlotIntervalMinutes
	}
	return s.SlotIntervalMinutes
}
