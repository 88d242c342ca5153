package update_appointment

import "errors"

const (
	fieldServiceName   = "serviceName"
	msgServiceNotFound = "Выбранная услуга не найдена или неактивна"
)

var (
	ErrAppointmentNotFound = errors.New("update_appointment: appointment not found")
	ErrServiceNotFound     = errors.New("update_appointment: service not found")
	ErrInternal            = errors.New("update_appointment: internal error")
)
