package domain

import "github.com/m04kA/SMC-AppointmentService/pkg/types"

// AvailableSlot represents a start time offered for booking
type AvailableSlot struct {
	StartTime types.TimeString
	Soon      bool // Начинается менее чем через SoonThresholdMinutes
}
