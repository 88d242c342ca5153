package create_appointment

import "time"

// Request модель запроса на создание записи
type Request struct {
	FullName    string    `json:"fullName" validate:"notblank"`
	Phone       string    `json:"phone" validate:"notblank"`
	Email       *string   `json:"email" validate:"omitempty,email"`
	Notes       *string   `json:"notes"`
	ServiceName string    `json:"serviceName" validate:"notblank"` // Точное название активной услуги
	StartTime   time.Time `json:"startTime"`                       // Секунды отбрасываются
}
