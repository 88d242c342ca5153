package slotrules

import (
	"fmt"
	"iter"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// LeadTime минимальный запас между текущим моментом и началом записи на сегодня
const LeadTime = domain.LeadTimeMinutes * time.Minute

// Mode режим проверки времени записи
type Mode int

const (
	// ModeCreate новая запись: прошлое запрещено
	ModeCreate Mode = iota
	// ModeEdit редактирование: прошлое разрешено, запас и кратность проверяются
	ModeEdit
)

// DefaultSettings настройки, действующие при отсутствии сохранённых
func DefaultSettings() *domain.Settings {
	return domain.DefaultSettings()
}

// ValidateStartTime проверяет время начала записи и возвращает все нарушения по порядку.
// Границы рабочего дня и перерыв между записями здесь не проверяются
func ValidateStartTime(candidate time.Time, settings *domain.Settings, now time.Time, mode Mode) domain.ValidationErrors {
	var errs domain.ValidationErrors

	candidate = candidate.Truncate(time.Minute)
	sameDay := SameDate(candidate, now)
	nowLabel := now.Format(domain.TimeFormat)

	switch mode {
	case ModeCreate:
		switch {
		case dateOnly(candidate).Before(dateOnly(now)):
			errs.Add(FieldStartTime, msgPastDate)
		case sameDay && timeOfDay(candidate) < timeOfDay(now):
			errs.Add(FieldStartTime, fmt.Sprintf(msgPastTime, nowLabel))
		case sameDay && timeOfDay(candidate) < timeOfDay(now.Add(LeadTime)):
			// Сравнивается только время суток: около полуночи now+15 переходит на следующие сутки
			errs.Add(FieldStartTime, fmt.Sprintf(msgLeadTime, domain.LeadTimeMinutes, nowLabel))
		}
	case ModeEdit:
		if sameDay && candidate.After(now) && candidate.Sub(now) < LeadTime {
			errs.Add(FieldStartTime, fmt.Sprintf(msgLeadTime, domain.LeadTimeMinutes, nowLabel))
		}
	}

	interval := settings.EffectiveInterval()
	if candidate.Minute()%interval != 0 {
		errs.Add(FieldStartTime, fmt.Sprintf(msgAlign, interval, alignmentExample(interval)))
	}

	return errs
}

// EnumerateSlots возвращает ленивую последовательность времён начала на день day.
// Шаг - интервал слота от начала рабочего дня, конец рабочего дня не включается.
// Слоты раньше minimumStart (или now+LeadTime для сегодня) пропускаются.
// Существующие записи не учитываются
func EnumerateSlots(day time.Time, settings *domain.Settings, now time.Time, minimumStart *time.Time) iter.Seq[types.TimeString] {
	return func(yield func(types.TimeString) bool) {
		if settings == nil {
			settings = domain.DefaultSettings()
		}

		start, err := settings.WorkDayStart.Minutes()
		if err != nil {
			return
		}
		end, err := settings.WorkDayEnd.Minutes()
		if err != nil {
			return
		}
		interval := settings.EffectiveInterval()

		minimum := effectiveMinimum(day, settings, now, minimumStart)
		y, mon, d := day.Date()

		for m := start; m < end; m += interval {
			instant := time.Date(y, mon, d, 0, m, 0, 0, day.Location())
			if instant.Before(minimum) {
				continue
			}
			slot, err := types.NewTimeStringFromMinutes(m)
			if err != nil {
				return
			}
			if !yield(slot) {
				return
			}
		}
	}
}

// CollectSlots материализует последовательность слотов. Пустой результат не nil
func CollectSlots(day time.Time, settings *domain.Settings, now time.Time, minimumStart *time.Time) []types.TimeString {
	slots := make([]types.TimeString, 0)
	for slot := range EnumerateSlots(day, settings, now, minimumStart) {
		slots = append(slots, slot)
	}
	return slots
}

// IsSoon сообщает, что слот сегодня и начинается менее чем через SoonThresholdMinutes
func IsSoon(day time.Time, slot types.TimeString, now time.Time) bool {
	if !SameDate(day, now) {
		return false
	}
	instant, err := slot.OnDate(day)
	if err != nil {
		return false
	}
	return instant.Sub(now) < domain.SoonThresholdMinutes*time.Minute
}

// SameDate сравнивает календарные даты двух моментов
func SameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func effectiveMinimum(day time.Time, settings *domain.Settings, now time.Time, minimumStart *time.Time) time.Time {
	if minimumStart != nil {
		return *minimumStart
	}
	if SameDate(day, now) {
		return now.Add(LeadTime)
	}
	startOfWork, err := settings.WorkDayStart.OnDate(day)
	if err != nil {
		return dateOnly(day)
	}
	return startOfWork
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func timeOfDay(t time.Time) time.Duration {
	return t.Sub(dateOnly(t))
}
