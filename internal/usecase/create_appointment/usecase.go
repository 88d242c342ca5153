package create_appointment

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	catalogRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/catalog"
	settingsRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/settings"
	"github.com/m04kA/SMC-AppointmentService/internal/slotrules"
)

// UseCase use case для создания записи
type UseCase struct {
	appointmentRepo AppointmentRepository
	serviceRepo     ServiceRepository
	settingsRepo    SettingsRepository
	validator       Validator
	metrics         MetricsRecorder
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	serviceRepo ServiceRepository,
	settingsRepo SettingsRepository,
	validator Validator,
	metrics MetricsRecorder,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		serviceRepo:     serviceRepo,
		settingsRepo:    settingsRepo,
		validator:       validator,
		metrics:         metrics,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case создания записи.
// Все ошибки полей собираются вместе и возвращаются как domain.ValidationErrors.
// Проверка и сохранение не защищены от одновременной записи на то же время
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*domain.Appointment, error) {
	uc.logger.Info("CreateAppointment: client=%q, service=%q, start=%s",
		req.FullName, req.ServiceName, req.StartTime.Format(domain.DateTimeFormat))

	// 1. Проверяем обязательные поля
	errs := uc.validator.Struct(req)

	// 2. Получаем текущее время и настройки расписания
	now := uc.timeProvider.Now()

	settings, err := uc.loadSettings(ctx)
	if err != nil {
		return nil, err
	}

	// 3. Проверяем время начала по правилам расписания
	errs.Append(slotrules.ValidateStartTime(req.StartTime, settings, now, slotrules.ModeCreate))

	// 4. Ищем активную услугу по названию
	var service *domain.Service
	serviceMissing := false
	if strings.TrimSpace(req.ServiceName) != "" {
		service, err = uc.serviceRepo.GetActiveByName(ctx, req.ServiceName)
		if err != nil {
			if !errors.Is(err, catalogRepo.ErrServiceNotFound) {
				uc.logger.Error("CreateAppointment: failed to get service %q: %v", req.ServiceName, err)
				return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
			}
			serviceMissing = true
			errs.Add(fieldServiceName, msgServiceNotFound)
		}
	}

	// 5. Возвращаем все ошибки полей разом
	if errs.HasErrors() {
		uc.logger.Warn("CreateAppointment: validation failed: %v", errs)
		for _, field := range errs.Fields() {
			uc.metrics.ValidationFailed(field)
		}
		if serviceMissing {
			return nil, fmt.Errorf("%w: %w", ErrServiceNotFound, errs)
		}
		return nil, errs
	}

	// 6. Цена и длительность всегда берутся из услуги
	appointment := &domain.Appointment{
		FullName:        req.FullName,
		Phone:           req.Phone,
		Email:           req.Email,
		Notes:           req.Notes,
		ServiceName:     service.Name,
		Price:           service.Price,
		DurationMinutes: service.DurationMinutes,
		StartTime:       req.StartTime.Truncate(time.Minute),
		Status:          domain.StatusScheduled,
	}

	// 7. Сохраняем запись
	created, err := uc.appointmentRepo.Create(ctx, appointment)
	if err != nil {
		uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
		return nil, fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
	}

	uc.metrics.AppointmentCreated()
	uc.logger.Info("CreateAppointment: successfully created appointment id=%d", created.ID)

	return created, nil
}

// loadSettings возвращает сохранённые настройки или значения по умолчанию
func (uc *UseCase) loadSettings(ctx context.Context) (*domain.Settings, error) {
	settings, err := uc.settingsRepo.Get(ctx)
	if err == nil {
		return settings, nil
	}
	if errors.Is(err, settingsRepo.ErrSettingsNotFound) {
		uc.logger.Info("CreateAppointment: settings not saved yet, using defaults")
		return domain.DefaultSettings(), nil
	}
	uc.logger.Error("CreateAppointment: failed to get settings: %v", err)
	return nil, fmt.Errorf("%w: failed to get settings: %v", ErrInternal, err)
}
