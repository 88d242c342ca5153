package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// ServiceRequest запрос на создание или изменение услуги
type ServiceRequest struct {
	Name            string          `json:"name" validate:"notblank,max=100"`
	Price           decimal.Decimal `json:"price" validate:"gte=0,lte=100000"`
	DurationMinutes int             `json:"durationMinutes" validate:"gte=1,lte=480"` // 0 заменяется значением по умолчанию
	Description     *string         `json:"description,omitempty" validate:"omitempty,max=500"`
	Category        *string         `json:"category,omitempty" validate:"omitempty,max=50"`
}

// ApplyDefaults подставляет длительность по умолчанию
func (r *ServiceRequest) ApplyDefaults() {
	if r.DurationMinutes == 0 {
		r.DurationMinutes = domain.DefaultServiceDurationMinutes
	}
}

// ToDomainService конвертирует запрос в domain модель
func (r *ServiceRequest) ToDomainService() *domain.Service {
	return &domain.Service{
		Name:            r.Name,
		Price:           r.Price,
		DurationMinutes: r.DurationMinutes,
		Description:     r.Description,
		Category:        r.Category,
		IsActive:        true,
	}
}

// ServiceResponse ответ с данными услуги
type ServiceResponse struct {
	ID              int64           `json:"id"`
	Name            string          `json:"name"`
	Price           decimal.Decimal `json:"price"`
	DurationMinutes int             `json:"durationMinutes"`
	Description     *string         `json:"description,omitempty"`
	Category        *string         `json:"category,omitempty"`
	IsActive        bool            `json:"isActive"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

// ServiceListResponse ответ со списком услуг
type ServiceListResponse struct {
	Services []ServiceResponse `json:"services"`
}

// SeedResponse результат заполнения пустого каталога
type SeedResponse struct {
	Added    int               `json:"added"`
	Services []ServiceResponse `json:"services"`
}

// FromDomainService конвертирует domain модель в DTO
func FromDomainService(s *domain.Service) *ServiceResponse {
	if s == nil {
		return nil
	}

	return &ServiceResponse{
		ID:              s.ID,
		Name:            s.Name,
		Price:           s.Price,
		DurationMinutes: s.DurationMinutes,
		Description:     s.Description,
		Category:        s.Category,
		IsActive:        s.IsActive,
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}
}

// FromDomainServiceList конвертирует список domain моделей в DTO
func FromDomainServiceList(services []*domain.Service) []ServiceResponse {
	list := make([]ServiceResponse, 0, len(services))
	for _, s := range services {
		if item := FromDomainService(s); item != nil {
			list = append(list, *item)
		}
	}
	return list
}
