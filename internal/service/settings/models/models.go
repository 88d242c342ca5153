package models

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// UpdateSettingsRequest запрос на изменение настроек расписания
type UpdateSettingsRequest struct {
	Interval          int              `json:"interval" validate:"gte=5,lte=60"`
	WorkStart         types.TimeString `json:"workStart" validate:"required,hhmm"`
	WorkEnd           types.TimeString `json:"workEnd" validate:"required,hhmm"`
	BreakBetweenSlots int              `json:"breakBetweenSlots" validate:"gte=0,lte=60"`
}

// ToDomainSettings конвертирует запрос в domain модель
func (r *UpdateSettingsRequest) ToDomainSettings() *domain.Settings {
	return &domain.Settings{
		SlotIntervalMinutes:      r.Interval,
		WorkDayStart:             r.WorkStart,
		WorkDayEnd:               r.WorkEnd,
		BreakBetweenSlotsMinutes: r.BreakBetweenSlots,
	}
}

// SettingsResponse ответ с настройками расписания
type SettingsResponse struct {
	Interval          int              `json:"interval"`
	WorkStart         types.TimeString `json:"workStart"`
	WorkEnd           types.TimeString `json:"workEnd"`
	BreakBetweenSlots int              `json:"breakBetweenSlots"`
	LastUpdated       *time.Time       `json:"lastUpdated,omitempty"` // nil, пока настройки не сохранялись
}

// FromDomainSettings конвертирует domain модель в DTO
func FromDomainSettings(s *domain.Settings) *SettingsResponse {
	if s == nil {
		return nil
	}

	resp := &SettingsResponse{
		Interval:          s.SlotIntervalMinutes,
		WorkStart:         s.WorkDayStart,
		WorkEnd:           s.WorkDayEnd,
		BreakBetweenSlots: s.BreakBetweenSlotsMinutes,
	}
	if !s.LastUpdated.IsZero() {
		lastUpdated := s.LastUpdated
		resp.LastUpdated = &lastUpdated
	}

	return resp
}
