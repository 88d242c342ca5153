package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// AppointmentResponse ответ с данными записи
type AppointmentResponse struct {
	ID              int64           `json:"id"`
	FullName        string          `json:"fullName"`
	Phone           string          `json:"phone"`
	Email           *string         `json:"email,omitempty"`
	Notes           *string         `json:"notes,omitempty"`
	ServiceName     string          `json:"serviceName"`
	Price           decimal.Decimal `json:"price"`
	DurationMinutes int             `json:"durationMinutes"`
	StartTime       string          `json:"startTime"` // "2025-10-15T10:20"
	EndTime         string          `json:"endTime"`
	Status          string          `json:"status"`
	CreatedAt       time.Time       `json:"createdAt"`
}

// AppointmentListResponse ответ со списком записей
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
}

// FromDomainAppointment конвертирует domain модель в DTO
func FromDomainAppointment(a *domain.Appointment) *AppointmentResponse {
	if a == nil {
		return nil
	}

	return &AppointmentResponse{
		ID:              a.ID,
		FullName:        a.FullName,
		Phone:           a.Phone,
		Email:           a.Email,
		Notes:           a.Notes,
		ServiceName:     a.ServiceName,
		Price:           a.Price,
		DurationMinutes: a.DurationMinutes,
		StartTime:       a.StartTime.Format(domain.DateTimeFormat),
		EndTime:         a.EndTime().Format(domain.DateTimeFormat),
		Status:          string(a.Status),
		CreatedAt:       a.CreatedAt,
	}
}

// FromDomainAppointmentList конвертирует список domain моделей в DTO
func FromDomainAppointmentList(appointments []*domain.Appointment) *AppointmentListResponse {
	resp := &AppointmentListResponse{
		Appointments: make([]AppointmentResponse, 0, len(appointments)),
	}

	for _, a := range appointments {
		if item := FromDomainAppointment(a); item != nil {
			resp.Appointments = append(resp.Appointments, *item)
		}
	}

	return resp
}
