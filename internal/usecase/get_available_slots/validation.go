package get_available_slots

import (
	"fmt"
	"time"
)

// validateRequest валидирует входные данные и возвращает нижнюю границу слотов, если она задана
func validateRequest(req *Request) (*time.Time, error) {
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.After == nil {
		return nil, nil
	}

	minimum, err := req.After.OnDate(req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: after: %v", ErrInvalidInput, err)
	}

	return &minimum, nil
}
