package update_appointment

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/appointment"
	catalogRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/catalog"
	settingsRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/settings"
	"github.com/m04kA/SMC-AppointmentService/internal/slotrules"
)

// UseCase use case для редактирования записи
type UseCase struct {
	appointmentRepo AppointmentRepository
	serviceRepo     ServiceRepository
	settingsRepo    SettingsRepository
	txManager       TransactionManager
	validator       Validator
	metrics         MetricsRecorder
	timeProvider    TimeProvider
	logger          Logger
}

func NewUseCase(
	appointmentRepo AppointmentRepository,
	serviceRepo ServiceRepository,
	settingsRepo SettingsRepository,
	txManager TransactionManager,
	validator Validator,
	metrics MetricsRecorder,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		serviceRepo:     serviceRepo,
		settingsRepo:    settingsRepo,
		txManager:       txManager,
		validator:       validator,
		metrics:         metrics,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute перезаписывает все редактируемые поля записи.
// Цена и длительность пересчитываются из выбранной услуги, дата создания не меняется
func (uc *UseCase) Execute(ctx context.Context, id int64, req *Request) (*domain.Appointment, error) {
	uc.logger.Info("UpdateAppointment: id=%d, service=%q, start=%s",
		id, req.ServiceName, req.StartTime.Format(domain.DateTimeFormat))

	// 1. Проверяем поля и время начала в режиме редактирования
	errs := uc.validator.Struct(req)

	now := uc.timeProvider.Now()
	settings, err := uc.loadSettings(ctx)
	if err != nil {
		return nil, err
	}
	errs.Append(slotrules.ValidateStartTime(req.StartTime, settings, now, slotrules.ModeEdit))

	var updated *domain.Appointment
	err = uc.txManager.Do(ctx, func(ctx context.Context) error {
		// 2. Загружаем запись с блокировкой строки
		existing, err := uc.appointmentRepo.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
				return ErrAppointmentNotFound
			}
			return fmt.Errorf("%w: failed to get appointment: %v", ErrInternal, err)
		}

		// 3. Ищем услугу
		var service *domain.Service
		serviceMissing := false
		if strings.TrimSpace(req.ServiceName) != "" {
			service, err = uc.serviceRepo.GetActiveByName(ctx, req.ServiceName)
			if err != nil {
				if !errors.Is(err, catalogRepo.ErrServiceNotFound) {
					return fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
				}
				serviceMissing = true
				errs.Add(fieldServiceName, msgServiceNotFound)
			}
		}

		if errs.HasErrors() {
			if serviceMissing {
				return fmt.Errorf("%w: %w", ErrServiceNotFound, errs)
			}
			return errs
		}

		// 4. Перезаписываем поля
		existing.FullName = req.FullName
		existing.Phone = req.Phone
		existing.Email = req.Email
		existing.Notes = req.Notes
		existing.ServiceName = service.Name
		existing.Price = service.Price
		existing.DurationMinutes = service.DurationMinutes
		existing.StartTime = req.StartTime.Truncate(time.Minute)
		if req.Status != "" {
			status, err := domain.ParseAppointmentStatus(req.Status)
			if err != nil {
				return fmt.Errorf("%w: %v", ErrInternal, err)
			}
			existing.Status = status
		}

		if err := uc.appointmentRepo.Update(ctx, existing); err != nil {
			if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
				return ErrAppointmentNotFound
			}
			return fmt.Errorf("%w: failed to update appointment: %v", ErrInternal, err)
		}

		updated = existing
		return nil
	})
	if err != nil {
		var verrs domain.ValidationErrors
		switch {
		case errors.As(err, &verrs):
			uc.logger.Warn("UpdateAppointment: validation failed for id=%d: %v", id, verrs)
			for _, field := range verrs.Fields() {
				uc.metrics.ValidationFailed(field)
			}
		case errors.Is(err, ErrAppointmentNotFound):
			uc.logger.Warn("UpdateAppointment: appointment not found: id=%d", id)
		default:
			uc.logger.Error("UpdateAppointment: failed to update appointment id=%d: %v", id, err)
			if !errors.Is(err, ErrInternal) {
				return nil, fmt.Errorf("%w: %v", ErrInternal, err)
			}
		}
		return nil, err
	}

	uc.logger.Info("UpdateAppointment: successfully updated appointment id=%d", id)

	return updated, nil
}

func (uc *UseCase) loadSettings(ctx context.Context) (*domain.Settings, error) {
	settings, err := uc.settingsRepo.Get(ctx)
	if err == nil {
		return settings, nil
	}
	if errors.Is(err, settingsRepo.ErrSettingsNotFound) {
		return domain.DefaultSettings(), nil
	}
	uc.logger.Error("UpdateAppointment: failed to get settings: %v", err)
	return nil, fmt.Errorf("%w: failed to get settings: %v", ErrInternal, err)
}
