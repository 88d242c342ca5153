package create_appointment

import "errors"

const (
	fieldServiceName   = "serviceName"
	msgServiceNotFound = "Выбранная услуга не найдена или неактивна"
)

var (
	// ErrServiceNotFound возвращается вместе с ошибками валидации, когда услуга не найдена или неактивна
	ErrServiceNotFound = errors.New("create_appointment: service not found")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_appointment: internal error")
)
