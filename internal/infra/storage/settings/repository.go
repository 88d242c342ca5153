package settings

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AppointmentService/pkg/psqlbuilder"
)

const tableName = "settings"

// Repository репозиторий единственной строки настроек расписания
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория настроек
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Get возвращает сохранённые настройки или ErrSettingsNotFound
func (r *Repository) Get(ctx context.Context) (*domain.Settings, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"slot_interval_minutes",
		"work_day_start",
		"work_day_end",
		"break_between_slots_minutes",
		"last_updated",
	).
		From(tableName).
		Where(squirrel.Eq{"id": domain.SettingsID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	var s domain.Settings
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&s.SlotIntervalMinutes,
		&s.WorkDayStart,
		&s.WorkDayEnd,
		&s.BreakBetweenSlotsMinutes,
		&s.LastUpdated,
	)

	if err == sql.ErrNoRows {
		return nil, ErrSettingsNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - scan settings: %v", ErrScanRow, err)
	}

	return &s, nil
}

// Upsert создаёт или перезаписывает строку настроек и выставляет LastUpdated
func (r *Repository) Upsert(ctx context.Context, s *domain.Settings) (*domain.Settings, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(tableName).
		Columns(
			"id",
			"slot_interval_minutes",
			"work_day_start",
			"work_day_end",
			"break_between_slots_minutes",
			"last_updated",
		).
		Values(
			domain.SettingsID,
			s.SlotIntervalMinutes,
			s.WorkDayStart,
			s.WorkDayEnd,
			s.BreakBetweenSlotsMinutes,
			squirrel.Expr("NOW()"),
		).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			slot_interval_minutes = EXCLUDED.slot_interval_minutes,
			work_day_start = EXCLUDED.work_day_start,
			work_day_end = EXCLUDED.work_day_end,
			break_between_slots_minutes = EXCLUDED.break_between_slots_minutes,
			last_updated = EXCLUDED.last_updated
			RETURNING last_updated`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&s.LastUpdated); err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute upsert: %v", ErrExecQuery, err)
	}

	return s, nil
}
