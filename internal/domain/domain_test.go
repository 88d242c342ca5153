package domain

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppointment_EndTime(t *testing.T) {
	a := &Appointment{
		StartTime:       time.Date(2024, 6, 1, 20, 40, 0, 0, time.UTC),
		DurationMinutes: 90,
	}

	assert.Equal(t, time.Date(2024, 6, 1, 22, 10, 0, 0, time.UTC), a.EndTime())
}

func TestParseAppointmentStatus(t *testing.T) {
	for _, st := range AllStatuses {
		got, err := ParseAppointmentStatus(string(st))
		require.NoError(t, err)
		assert.Equal(t, st, got)
	}

	_, err := ParseAppointmentStatus("Scheduled")
	assert.Error(t, err)
}

func TestSettings_EffectiveInterval(t *testing.T) {
	assert.Equal(t, 30, (&Settings{SlotIntervalMinutes: 30}).EffectiveInterval())
	assert.Equal(t, DefaultSlotIntervalMinutes, (&Settings{}).EffectiveInterval())
	assert.Equal(t, DefaultSlotIntervalMinutes, (&Settings{SlotIntervalMinutes: -5}).EffectiveInterval())
}

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()

	assert.Equal(t, 20, s.SlotIntervalMinutes)
	assert.Equal(t, "09:00", s.WorkDayStart.String())
	assert.Equal(t, "21:00", s.WorkDayEnd.String())
	assert.Equal(t, 20, s.BreakBetweenSlotsMinutes)
}

func TestValidationErrors(t *testing.T) {
	var errs ValidationErrors
	assert.False(t, errs.HasErrors())

	errs.Add("fullName", "ФИО обязательно")
	errs.Append(ValidationErrors{{Field: "startTime", Message: "Нельзя записать на прошедшую дату"}})

	require.True(t, errs.HasErrors())
	assert.Equal(t, []string{"fullName", "startTime"}, errs.Fields())

	wrapped := fmt.Errorf("create: %w", errs)
	var target ValidationErrors
	require.True(t, errors.As(wrapped, &target))
	assert.Len(t, target, 2)
	assert.Contains(t, wrapped.Error(), "fullName: ФИО обязательно")
}
