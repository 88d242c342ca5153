package update_appointment

import "time"

// Request модель запроса на редактирование записи.
// Пустой статус оставляет текущий без изменений
type Request struct {
	FullName    string    `json:"fullName" validate:"notblank"`
	Phone       string    `json:"phone" validate:"notblank"`
	Email       *string   `json:"email" validate:"omitempty,email"`
	Notes       *string   `json:"notes"`
	ServiceName string    `json:"serviceName" validate:"notblank"`
	StartTime   time.Time `json:"startTime"`
	Status      string    `json:"status" validate:"omitempty,oneof=scheduled confirmed in_progress completed cancelled"`
}
