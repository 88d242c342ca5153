package settings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	settingsRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/settings"
	"github.com/m04kA/SMC-AppointmentService/internal/service/settings/models"
)

const msgWorkDayBounds = "Окончание рабочего дня должно быть позже начала"

// Service сервис настроек расписания
type Service struct {
	settingsRepo SettingsRepository
	validator    Validator
	logger       Logger
}

// NewService создает новый экземпляр сервиса настроек
func NewService(settingsRepo SettingsRepository, validator Validator, logger Logger) *Service {
	return &Service{
		settingsRepo: settingsRepo,
		validator:    validator,
		logger:       logger,
	}
}

// Get возвращает текущие настройки. Если они не сохранены, возвращаются значения по умолчанию
func (s *Service) Get(ctx context.Context) (*models.SettingsResponse, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		if !errors.Is(err, settingsRepo.ErrSettingsNotFound) {
			s.logger.Error("GetSettings: repository error: %v", err)
			return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
		}
		s.logger.Info("GetSettings: settings not saved yet, using defaults")
		settings = domain.DefaultSettings()
	}

	return models.FromDomainSettings(settings), nil
}

// Update проверяет и сохраняет настройки
func (s *Service) Update(ctx context.Context, req *models.UpdateSettingsRequest) (*models.SettingsResponse, error) {
	s.logger.Info("UpdateSettings: interval=%d, workStart=%s, workEnd=%s, break=%d",
		req.Interval, req.WorkStart, req.WorkEnd, req.BreakBetweenSlots)

	errs := s.validator.Struct(req)
	if !errs.HasErrors() && !req.WorkStart.IsBefore(req.WorkEnd) {
		errs.Add("workEnd", msgWorkDayBounds)
	}
	if errs.HasErrors() {
		s.logger.Warn("UpdateSettings: validation failed: %v", errs)
		return nil, errs
	}

	saved, err := s.settingsRepo.Upsert(ctx, req.ToDomainSettings())
	if err != nil {
		s.logger.Error("UpdateSettings: repository error: %v", err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateSettings: settings saved at %s", saved.LastUpdated.Format(domain.DateTimeFormat))
	return models.FromDomainSettings(saved), nil
}
