package settings

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

func newRepository(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewRepository(dbmetrics.Wrap(db, nil, "test")), mock
}

func TestRepository_Get(t *testing.T) {
	repo, mock := newRepository(t)
	updated := time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("FROM settings WHERE id = $1")).
		WithArgs(domain.SettingsID).
		WillReturnRows(sqlmock.NewRows([]string{
			"slot_interval_minutes", "work_day_start", "work_day_end", "break_between_slots_minutes", "last_updated",
		}).AddRow(30, "10:00:00", "19:30:00", 10, updated))

	got, err := repo.Get(context.Background())

	require.NoError(t, err)
	assert.Equal(t, &domain.Settings{
		SlotIntervalMinutes:      30,
		WorkDayStart:             types.TimeString("10:00"),
		WorkDayEnd:               types.TimeString("19:30"),
		BreakBetweenSlotsMinutes: 10,
		LastUpdated:              updated,
	}, got)
}

func TestRepository_Get_NotFound(t *testing.T) {
	repo, mock := newRepository(t)

	mock.ExpectQuery("FROM settings").WillReturnError(sql.ErrNoRows)

	_, err := repo.Get(context.Background())

	assert.ErrorIs(t, err, ErrSettingsNotFound)
}

func TestRepository_Upsert(t *testing.T) {
	repo, mock := newRepository(t)
	updated := time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO settings (id,slot_interval_minutes,work_day_start,work_day_end,break_between_slots_minutes,last_updated) VALUES ($1,$2,$3,$4,$5,NOW()) ON CONFLICT (id) DO UPDATE")).
		WithArgs(domain.SettingsID, 15, "08:00", "20:00", 0).
		WillReturnRows(sqlmock.NewRows([]string{"last_updated"}).AddRow(updated))

	got, err := repo.Upsert(context.Background(), &domain.Settings{
		SlotIntervalMinutes:      15,
		WorkDayStart:             "08:00",
		WorkDayEnd:               "20:00",
		BreakBetweenSlotsMinutes: 0,
	})

	require.NoError(t, err)
	assert.Equal(t, updated, got.LastUpdated)
}

func TestRepository_Upsert_Error(t *testing.T) {
	repo, mock := newRepository(t)

	mock.ExpectQuery("INSERT INTO settings").WillReturnError(errors.New("check constraint violated"))

	_, err := repo.Upsert(context.Background(), domain.DefaultSettings())

	assert.ErrorIs(t, err, ErrExecQuery)
}
