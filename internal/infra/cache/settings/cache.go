package settings

import (
	"context"
	"errors"
	"time"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// Key ключ Redis, под которым хранятся настройки
const Key = "appointments:settings"

type cachedSettings struct {
	SlotIntervalMinutes      int              `json:"slotIntervalMinutes"`
	WorkDayStart             types.TimeString `json:"workDayStart"`
	WorkDayEnd               types.TimeString `json:"workDayEnd"`
	BreakBetweenSlotsMinutes int              `json:"breakBetweenSlotsMinutes"`
	LastUpdated              time.Time        `json:"lastUpdated"`
}

// Repository кэширующая обёртка над репозиторием настроек.
// Ошибки Redis не прерывают запрос: чтение идёт в БД
type Repository struct {
	next   Store
	client RedisClient
	ttl    time.Duration
	logger Logger
}

// NewRepository создает кэш настроек с заданным временем жизни
func NewRepository(next Store, client RedisClient, ttl time.Duration, logger Logger) *Repository {
	return &Repository{
		next:   next,
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

// Get возвращает настройки из кэша, при промахе читает из БД и кладёт в кэш.
// Отсутствие строки не кэшируется
func (r *Repository) Get(ctx context.Context) (*domain.Settings, error) {
	raw, err := r.client.Get(ctx, Key).Bytes()
	switch {
	case err == nil:
		var cached cachedSettings
		if err := json.Unmarshal(raw, &cached); err == nil {
			return cached.toDomain(), nil
		}
		r.logger.Warn("SettingsCache: corrupted value under %s, reloading", Key)
	case !errors.Is(err, redis.Nil):
		r.logger.Warn("SettingsCache: redis get failed: %v", err)
	}

	s, err := r.next.Get(ctx)
	if err != nil {
		return nil, err
	}

	r.store(ctx, s)
	return s, nil
}

// Upsert сохраняет настройки в БД и записывает сохранённое значение в кэш.
// Если записать не удалось, ключ удаляется.
// Get, прочитавший старую строку до записи в БД, может положить её в кэш после нас:
// устаревшие настройки тогда живут не дольше ttl
func (r *Repository) Upsert(ctx context.Context, s *domain.Settings) (*domain.Settings, error) {
	saved, err := r.next.Upsert(ctx, s)
	if err != nil {
		return nil, err
	}

	if !r.store(ctx, saved) {
		if err := r.client.Del(ctx, Key).Err(); err != nil {
			r.logger.Error("SettingsCache: failed to invalidate %s: %v", Key, err)
		}
	}

	return saved, nil
}

func (r *Repository) store(ctx context.Context, s *domain.Settings) bool {
	payload, err := json.Marshal(fromDomain(s))
	if err != nil {
		r.logger.Error("SettingsCache: failed to marshal settings: %v", err)
		return false
	}
	if err := r.client.Set(ctx, Key, payload, r.ttl).Err(); err != nil {
		r.logger.Warn("SettingsCache: redis set failed: %v", err)
		return false
	}
	return true
}

func fromDomain(s *domain.Settings) cachedSettings {
	return cachedSettings{
		SlotIntervalMinutes:      s.SlotIntervalMinutes,
		WorkDayStart:             s.WorkDayStart,
		WorkDayEnd:               s.WorkDayEnd,
		BreakBetweenSlotsMinutes: s.BreakBetweenSlotsMinutes,
		LastUpdated:              s.LastUpdated,
	}
}

func (c cachedSettings) toDomain() *domain.Settings {
	return &domain.Settings{
		SlotIntervalMinutes:      c.SlotIntervalMinutes,
		WorkDayStart:             c.WorkDayStart,
		WorkDayEnd:               c.WorkDayEnd,
		BreakBetweenSlotsMinutes: c.BreakBetweenSlotsMinutes,
		LastUpdated:              c.LastUpdated,
	}
}
