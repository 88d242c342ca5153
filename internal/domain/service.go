package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Service represents an entry of the service catalog
type Service struct {
	ID              int64
	Name            string
	Price           decimal.Decimal
	DurationMinutes int
	Description     *string
	Category        *string
	IsActive        bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// ServiceOrder порядок сортировки каталога
type ServiceOrder string

const (
	ServiceOrderByName     ServiceOrder = "name"
	ServiceOrderByCategory ServiceOrder = "category"
)

// IsValid returns true for a known sort order
func (o ServiceOrder) IsValid() bool {
	return o == ServiceOrderByName || o == ServiceOrderByCategory
}

// DefaultServices услуги, которые добавляются в пустой каталог
func DefaultServices() []*Service {
	return []*Service{
		{
			Name:            "Стрижка",
			Price:           decimal.NewFromInt(1500),
			DurationMinutes: 60,
			IsActive:        true,
		},
		{
			Name:            "Маникюр",
			Price:           decimal.NewFromInt(2000),
			DurationMinutes: 90,
			IsActive:        true,
		},
	}
}
