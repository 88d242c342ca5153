package domain

import "github.com/m04kA/SMC-AppointmentService/pkg/types"

// SettingsID фиксированный идентификатор единственной строки настроек
const SettingsID = 1

// Default configuration values
const (
	DefaultSlotIntervalMinutes                       = 20
	DefaultWorkDayStart             types.TimeString = "09:00"
	DefaultWorkDayEnd               types.TimeString = "21:00"
	DefaultBreakBetweenSlotsMinutes                  = 20
	DefaultServiceDurationMinutes                    = 60
)

// Scheduling rules
const (
	LeadTimeMinutes      = 15 // Минимальный запас до начала записи на сегодня
	SoonThresholdMinutes = 30 // Слоты ближе этого порога помечаются как "скоро"
)

// Business validation constants
const (
	MinSlotIntervalMinutes      = 5
	MaxSlotIntervalMinutes      = 60
	MinBreakBetweenSlotsMinutes = 0
	MaxBreakBetweenSlotsMinutes = 60

	MaxServiceNameLength        = 100
	MaxServiceDescriptionLength = 500
	MaxServiceCategoryLength    = 50
	MinServicePrice             = 0
	MaxServicePrice             = 100000
	MinServiceDurationMinutes   = 1
	MaxServiceDurationMinutes   = 480
)

// Time format constants
const (
	TimeFormat     = "15:04"            // HH:MM
	DateFormat     = "2006-01-02"       // YYYY-MM-DD
	DateTimeFormat = "2006-01-02T15:04" // YYYY-MM-DDTHH:MM
)
