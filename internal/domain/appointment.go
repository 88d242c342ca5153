package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// AppointmentStatus represents the lifecycle status of an appointment
type AppointmentStatus string

const (
	StatusScheduled  AppointmentStatus = "scheduled"
	StatusConfirmed  AppointmentStatus = "confirmed"
	StatusInProgress AppointmentStatus = "in_progress"
	StatusCompleted  AppointmentStatus = "completed"
	StatusCancelled  AppointmentStatus = "cancelled"
)

// AllStatuses список всех допустимых статусов
var AllStatuses = []AppointmentStatus{
	StatusScheduled,
	StatusConfirmed,
	StatusInProgress,
	StatusCompleted,
	StatusCancelled,
}

// ParseAppointmentStatus возвращает статус по строке или ошибку для неизвестного значения
func ParseAppointmentStatus(s string) (AppointmentStatus, error) {
	for _, st := range AllStatuses {
		if string(st) == s {
			return st, nil
		}
	}
	return "", fmt.Errorf("unknown appointment status %q", s)
}

// Appointment represents a client booking for a catalog service
type Appointment struct {
	ID       int64
	FullName string
	Phone    string
	Email    *string
	Notes    *string

	// Снимок услуги на момент записи
	ServiceName     string
	Price           decimal.Decimal
	DurationMinutes int

	StartTime time.Time
	Status    AppointmentStatus
	CreatedAt time.Time
}

// EndTime returns the derived end of the appointment
func (a *Appointment) EndTime() time.Time {
	return a.StartTime.Add(time.Duration(a.DurationMinutes) * time.Minute)
}

// IsCancelled returns true if the appointment has been cancelled
func (a *Appointment) IsCancelled() bool {
	return a.Status == StatusCancelled
}

// AppointmentFilter фильтр списка записей
type AppointmentFilter struct {
	Search string // Подстрока для поиска по ФИО, телефону, email и услуге (пусто - все записи)
}
