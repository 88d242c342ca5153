package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	settingsRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/settings"
	"github.com/m04kA/SMC-AppointmentService/internal/slotrules"
)

// UseCase use case для получения свободных слотов на дату
type UseCase struct {
	settingsRepo SettingsRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(settingsRepo SettingsRepository, logger Logger) *UseCase {
	return &UseCase{
		settingsRepo: settingsRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute перечисляет слоты по сетке рабочего дня.
// Занятость существующими записями не учитывается
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	minimumStart, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("GetAvailableSlots: invalid request: %v", err)
		return nil, err
	}

	uc.logger.Info("GetAvailableSlots: date=%s", req.Date.Format(domain.DateFormat))

	// 2. Получаем настройки расписания (или значения по умолчанию)
	settings, err := uc.settingsRepo.Get(ctx)
	if err != nil {
		if !errors.Is(err, settingsRepo.ErrSettingsNotFound) {
			uc.logger.Error("GetAvailableSlots: failed to get settings: %v", err)
			return nil, fmt.Errorf("%w: failed to get settings: %v", ErrInternal, err)
		}
		uc.logger.Info("GetAvailableSlots: settings not saved yet, using defaults")
		settings = slotrules.DefaultSettings()
	}

	// 3. Перебираем слоты и помечаем ближайшие
	now := uc.timeProvider.Now()
	slots := make([]domain.AvailableSlot, 0)
	for start := range slotrules.EnumerateSlots(req.Date, settings, now, minimumStart) {
		slots = append(slots, domain.AvailableSlot{
			StartTime: start,
			Soon:      slotrules.IsSoon(req.Date, start, now),
		})
	}

	uc.logger.Info("GetAvailableSlots: found %d slots for %s", len(slots), req.Date.Format(domain.DateFormat))

	return &Response{
		Date:             req.Date,
		Interval:         settings.EffectiveInterval(),
		WorkDayStart:     settings.WorkDayStart,
		WorkDayEnd:       settings.WorkDayEnd,
		Slots:            slots,
		NoSlotsAvailable: len(slots) == 0,
	}, nil
}
