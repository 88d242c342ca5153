package update_appointment

import (
	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	updateAppointment "github.com/m04kA/SMC-AppointmentService/internal/usecase/update_appointment"
)

// UpdateAppointmentRequest HTTP request model
type UpdateAppointmentRequest struct {
	FullName    string  `json:"fullName"`
	Phone       string  `json:"phone"`
	Email       *string `json:"email,omitempty"`
	Notes       *string `json:"notes,omitempty"`
	ServiceName string  `json:"serviceName"`
	StartTime   string  `json:"startTime"`
	Status      string  `json:"status,omitempty"` // Пусто - статус не меняется
}

// ToUseCaseRequest при ошибке разбора startTime тоже возвращает запрос
func (r *UpdateAppointmentRequest) ToUseCaseRequest() (*updateAppointment.Request, error) {
	startTime, err := handlers.ParseDateTime(r.StartTime)

	req := &updateAppointment.Request{
		FullName:    r.FullName,
		Phone:       r.Phone,
		ServiceName: r.ServiceName,
		StartTime:   startTime,
		Status:      r.Status,
	}
	if r.Email != nil && *r.Email != "" {
		req.Email = r.Email
	}
	if r.Notes != nil && *r.Notes != "" {
		req.Notes = r.Notes
	}

	return req, err
}
