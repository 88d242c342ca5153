package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	catalogRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/catalog"
	"github.com/m04kA/SMC-AppointmentService/internal/service/catalog/models"
)

// Service сервис каталога услуг
type Service struct {
	serviceRepo ServiceRepository
	txManager   TransactionManager
	validator   Validator
	logger      Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(
	serviceRepo ServiceRepository,
	txManager TransactionManager,
	validator Validator,
	logger Logger,
) *Service {
	return &Service{
		serviceRepo: serviceRepo,
		txManager:   txManager,
		validator:   validator,
		logger:      logger,
	}
}

// ListActive возвращает активные услуги по названию или по категории
func (s *Service) ListActive(ctx context.Context, order domain.ServiceOrder) (*models.ServiceListResponse, error) {
	if !order.IsValid() {
		order = domain.ServiceOrderByName
	}

	services, err := s.serviceRepo.ListActive(ctx, order)
	if err != nil {
		s.logger.Error("ListServices: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListActive - repository error: %v", ErrInternal, err)
	}

	return &models.ServiceListResponse{Services: models.FromDomainServiceList(services)}, nil
}

// Create добавляет активную услугу
func (s *Service) Create(ctx context.Context, req *models.ServiceRequest) (*models.ServiceResponse, error) {
	s.logger.Info("CreateService: name=%q, price=%s, duration=%d", req.Name, req.Price, req.DurationMinutes)

	req.ApplyDefaults()
	if errs := s.validator.Struct(req); errs.HasErrors() {
		s.logger.Warn("CreateService: validation failed: %v", errs)
		return nil, errs
	}

	created, err := s.serviceRepo.Create(ctx, req.ToDomainService())
	if err != nil {
		s.logger.Error("CreateService: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateService: created service id=%d", created.ID)
	return models.FromDomainService(created), nil
}

// Update изменяет активную услугу. Сохранённые записи не меняются
func (s *Service) Update(ctx context.Context, id int64, req *models.ServiceRequest) (*models.ServiceResponse, error) {
	s.logger.Info("UpdateService: id=%d, name=%q", id, req.Name)

	req.ApplyDefaults()
	if errs := s.validator.Struct(req); errs.HasErrors() {
		s.logger.Warn("UpdateService: validation failed for id=%d: %v", id, errs)
		return nil, errs
	}

	service, err := s.serviceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, s.mapRepoError("UpdateService", id, err)
	}

	service.Name = req.Name
	service.Price = req.Price
	service.DurationMinutes = req.DurationMinutes
	service.Description = req.Description
	service.Category = req.Category

	if err := s.serviceRepo.Update(ctx, service); err != nil {
		return nil, s.mapRepoError("UpdateService", id, err)
	}

	return models.FromDomainService(service), nil
}

// Delete мягко удаляет услугу
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("DeleteService: id=%d", id)

	if err := s.serviceRepo.Deactivate(ctx, id); err != nil {
		return s.mapRepoError("DeleteService", id, err)
	}

	return nil
}

// SeedDefaults добавляет тестовые услуги, если каталог пуст (включая неактивные)
func (s *Service) SeedDefaults(ctx context.Context) (*models.SeedResponse, error) {
	created := make([]*domain.Service, 0)

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		count, err := s.serviceRepo.CountAll(txCtx)
		if err != nil {
			return fmt.Errorf("%w: SeedDefaults - count services: %v", ErrInternal, err)
		}

		if count > 0 {
			s.logger.Info("SeedServices: catalog already has %d services, nothing to add", count)
			return nil
		}

		for _, service := range domain.DefaultServices() {
			saved, err := s.serviceRepo.Create(txCtx, service)
			if err != nil {
				return fmt.Errorf("%w: SeedDefaults - create %q: %v", ErrInternal, service.Name, err)
			}
			created = append(created, saved)
		}
		return nil
	})

	if err != nil {
		s.logger.Error("SeedServices: %v", err)
		return nil, err
	}

	s.logger.Info("SeedServices: added %d services", len(created))
	return &models.SeedResponse{
		Added:    len(created),
		Services: models.FromDomainServiceList(created),
	}, nil
}

func (s *Service) mapRepoError(op string, id int64, err error) error {
	if errors.Is(err, catalogRepo.ErrServiceNotFound) {
		s.logger.Warn("%s: service id=%d not found", op, id)
		return ErrServiceNotFound
	}
	s.logger.Error("%s: repository error for id=%d: %v", op, id, err)
	return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
}
