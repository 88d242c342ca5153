package appointment

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AppointmentService/pkg/ptr"
)

func newRepository(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewRepository(dbmetrics.Wrap(db, nil, "test")), mock
}

func appointmentRow(id int64, start time.Time) *sqlmock.Rows {
	return sqlmock.NewRows(columns).AddRow(
		id, "Иванова Анна", "+7 900 000-00-00", "anna@example.com", nil,
		"Стрижка", "1500.00", 60, start, "scheduled", start.Add(-24*time.Hour),
	)
}

func TestRepository_Create(t *testing.T) {
	repo, mock := newRepository(t)
	start := time.Date(2024, 6, 2, 10, 20, 0, 0, time.UTC)
	createdAt := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO appointments (full_name,phone,email,notes,service_name,price,duration_minutes,start_time,status) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9) RETURNING id, created_at")).
		WithArgs("Иванова Анна", "+7 900", sqlmock.AnyArg(), sqlmock.AnyArg(), "Стрижка", sqlmock.AnyArg(), 60, start, "scheduled").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(7), createdAt))

	created, err := repo.Create(context.Background(), &domain.Appointment{
		FullName:        "Иванова Анна",
		Phone:           "+7 900",
		ServiceName:     "Стрижка",
		Price:           decimal.NewFromInt(1500),
		DurationMinutes: 60,
		StartTime:       start,
		Status:          domain.StatusScheduled,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(7), created.ID)
	assert.Equal(t, createdAt, created.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Create_ExecError(t *testing.T) {
	repo, mock := newRepository(t)

	mock.ExpectQuery("INSERT INTO appointments").WillReturnError(errors.New("connection reset"))

	_, err := repo.Create(context.Background(), &domain.Appointment{Status: domain.StatusScheduled})

	assert.ErrorIs(t, err, ErrExecQuery)
}

func TestRepository_GetByID(t *testing.T) {
	repo, mock := newRepository(t)
	start := time.Date(2024, 6, 2, 10, 20, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("FROM appointments WHERE id = $1")).
		WithArgs(int64(7)).
		WillReturnRows(appointmentRow(7, start))

	got, err := repo.GetByID(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, int64(7), got.ID)
	assert.Equal(t, ptr.Ptr("anna@example.com"), got.Email)
	assert.Nil(t, got.Notes)
	assert.True(t, decimal.NewFromInt(1500).Equal(got.Price))
	assert.Equal(t, domain.StatusScheduled, got.Status)
	assert.True(t, start.Add(time.Hour).Equal(got.EndTime()))
}

func TestRepository_GetByID_StartTimeInLocalZone(t *testing.T) {
	local := time.Local
	time.Local = time.FixedZone("MSK", 3*60*60)
	t.Cleanup(func() { time.Local = local })

	repo, mock := newRepository(t)
	// Postgres с поясом UTC возвращает 10:00 MSK как 07:00 UTC
	start := time.Date(2024, 6, 2, 7, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("FROM appointments WHERE id = $1")).
		WithArgs(int64(7)).
		WillReturnRows(appointmentRow(7, start))

	got, err := repo.GetByID(context.Background(), 7)

	require.NoError(t, err)
	assert.True(t, start.Equal(got.StartTime))
	assert.Equal(t, "2024-06-02T10:00", got.StartTime.Format(domain.DateTimeFormat))
	assert.Equal(t, "2024-06-02T11:00", got.EndTime().Format(domain.DateTimeFormat))
}

func TestRepository_GetByID_NotFound(t *testing.T) {
	repo, mock := newRepository(t)

	mock.ExpectQuery("FROM appointments").WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), 404)

	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestRepository_List_Search(t *testing.T) {
	repo, mock := newRepository(t)
	start := time.Date(2024, 6, 2, 10, 20, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE (full_name ILIKE $1 OR phone LIKE $2 OR email ILIKE $3 OR service_name ILIKE $4) ORDER BY start_time DESC, id DESC")).
		WithArgs("%анна%", "%анна%", "%анна%", "%анна%").
		WillReturnRows(appointmentRow(1, start).AddRow(
			int64(2), "Анна Петрова", "+7 901", nil, "позвонить", "Маникюр", "2000", 90, start.Add(-time.Hour), "confirmed", start,
		))

	got, err := repo.List(context.Background(), domain.AppointmentFilter{Search: "  Анна "})

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Nil(t, got[1].Email)
	assert.Equal(t, ptr.Ptr("позвонить"), got[1].Notes)
	assert.Equal(t, domain.StatusConfirmed, got[1].Status)
}

func TestRepository_List_NoSearch(t *testing.T) {
	repo, mock := newRepository(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM appointments ORDER BY start_time DESC, id DESC")).
		WillReturnRows(sqlmock.NewRows(columns))

	got, err := repo.List(context.Background(), domain.AppointmentFilter{})

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestRepository_Update_NotFound(t *testing.T) {
	repo, mock := newRepository(t)

	mock.ExpectExec("UPDATE appointments SET").WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Update(context.Background(), &domain.Appointment{ID: 9, Status: domain.StatusScheduled})

	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestRepository_UpdateStatus(t *testing.T) {
	repo, mock := newRepository(t)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE appointments SET status = $1 WHERE id = $2")).
		WithArgs("cancelled", int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.UpdateStatus(context.Background(), 3, domain.StatusCancelled))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Delete(t *testing.T) {
	repo, mock := newRepository(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM appointments WHERE id = $1")).
		WithArgs(int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM appointments").
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.Delete(context.Background(), 3))
	assert.ErrorIs(t, repo.Delete(context.Background(), 3), ErrAppointmentNotFound)
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, `100\%\_a\\b`, escapeLike(`100%_a\b`))
}
