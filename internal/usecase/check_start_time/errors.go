package check_start_time

import "errors"

var (
	ErrInvalidInput        = errors.New("check_start_time: invalid input")
	ErrAppointmentNotFound = errors.New("check_start_time: appointment not found")
	ErrInternal            = errors.New("check_start_time: internal error")
)
