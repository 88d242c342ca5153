package check_start_time

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/appointment"
	settingsRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/settings"
	"github.com/m04kA/SMC-AppointmentService/internal/slotrules"
)

// UseCase предварительная проверка времени записи для формы
type UseCase struct {
	settingsRepo    SettingsRepository
	appointmentRepo AppointmentRepository
	timeProvider    TimeProvider
	logger          Logger
}

func NewUseCase(settingsRepo SettingsRepository, appointmentRepo AppointmentRepository, logger Logger) *UseCase {
	return &UseCase{
		settingsRepo:    settingsRepo,
		appointmentRepo: appointmentRepo,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if req.StartTime.IsZero() {
		return nil, fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	// 2. Режим редактирования только для существующей записи
	mode := slotrules.ModeCreate
	if req.AppointmentID != nil {
		if _, err := uc.appointmentRepo.GetByID(ctx, *req.AppointmentID); err != nil {
			if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
				uc.logger.Warn("CheckStartTime: appointment not found: id=%d", *req.AppointmentID)
				return nil, ErrAppointmentNotFound
			}
			uc.logger.Error("CheckStartTime: failed to get appointment id=%d: %v", *req.AppointmentID, err)
			return nil, fmt.Errorf("%w: failed to get appointment: %v", ErrInternal, err)
		}
		mode = slotrules.ModeEdit
	}

	// 3. Настройки расписания
	settings, err := uc.settingsRepo.Get(ctx)
	if err != nil {
		if !errors.Is(err, settingsRepo.ErrSettingsNotFound) {
			uc.logger.Error("CheckStartTime: failed to get settings: %v", err)
			return nil, fmt.Errorf("%w: failed to get settings: %v", ErrInternal, err)
		}
		settings = domain.DefaultSettings()
	}

	// 4. Проверка
	errs := slotrules.ValidateStartTime(req.StartTime, settings, uc.timeProvider.Now(), mode)
	if errs == nil {
		errs = domain.ValidationErrors{}
	}

	return &Response{
		Valid:  !errs.HasErrors(),
		Errors: errs,
	}, nil
}
