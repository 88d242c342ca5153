package create_appointment

import (
	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	createAppointment "github.com/m04kA/SMC-AppointmentService/internal/usecase/create_appointment"
)

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	FullName    string  `json:"fullName"`
	Phone       string  `json:"phone"`
	Email       *string `json:"email,omitempty"`
	Notes       *string `json:"notes,omitempty"`
	ServiceName string  `json:"serviceName"`
	StartTime   string  `json:"startTime"` // "2025-10-15T10:20"
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case.
// При ошибке разбора startTime запрос все равно возвращается (с нулевым временем),
// чтобы можно было проверить остальные поля
func (r *CreateAppointmentRequest) ToUseCaseRequest() (*createAppointment.Request, error) {
	startTime, err := handlers.ParseDateTime(r.StartTime)

	return &createAppointment.Request{
		FullName:    r.FullName,
		Phone:       r.Phone,
		Email:       emptyToNil(r.Email),
		Notes:       emptyToNil(r.Notes),
		ServiceName: r.ServiceName,
		StartTime:   startTime,
	}, err
}

// Пустые строки из формы сохраняются как NULL
func emptyToNil(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}
