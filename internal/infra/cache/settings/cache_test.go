package settings

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/pkg/logger"
)

type storeMock struct{ mock.Mock }

func (m *storeMock) Get(ctx context.Context) (*domain.Settings, error) {
	args := m.Called(ctx)
	s, _ := args.Get(0).(*domain.Settings)
	return s, args.Error(1)
}

func (m *storeMock) Upsert(ctx context.Context, s *domain.Settings) (*domain.Settings, error) {
	args := m.Called(ctx, s)
	saved, _ := args.Get(0).(*domain.Settings)
	return saved, args.Error(1)
}

type redisMock struct{ mock.Mock }

func (m *redisMock) Get(ctx context.Context, key string) *redis.StringCmd {
	return m.Called(ctx, key).Get(0).(*redis.StringCmd)
}

func (m *redisMock) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	return m.Called(ctx, key, value, expiration).Get(0).(*redis.StatusCmd)
}

func (m *redisMock) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	return m.Called(ctx, keys).Get(0).(*redis.IntCmd)
}

var stored = &domain.Settings{
	SlotIntervalMinutes:      30,
	WorkDayStart:             "10:00",
	WorkDayEnd:               "18:00",
	BreakBetweenSlotsMinutes: 10,
	LastUpdated:              time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC),
}

func TestRepository_Get_Hit(t *testing.T) {
	store := new(storeMock)
	client := new(redisMock)
	repo := NewRepository(store, client, time.Minute, logger.NewNop())

	client.On("Get", mock.Anything, Key).Return(redis.NewStringResult(
		`{"slotIntervalMinutes":30,"workDayStart":"10:00","workDayEnd":"18:00","breakBetweenSlotsMinutes":10,"lastUpdated":"2024-06-01T08:00:00Z"}`, nil))

	got, err := repo.Get(context.Background())

	require.NoError(t, err)
	assert.Equal(t, stored.SlotIntervalMinutes, got.SlotIntervalMinutes)
	assert.Equal(t, stored.WorkDayEnd, got.WorkDayEnd)
	assert.True(t, stored.LastUpdated.Equal(got.LastUpdated))
	store.AssertNotCalled(t, "Get", mock.Anything)
}

func TestRepository_Get_MissLoadsAndStores(t *testing.T) {
	store := new(storeMock)
	client := new(redisMock)
	repo := NewRepository(store, client, time.Minute, logger.NewNop())

	client.On("Get", mock.Anything, Key).Return(redis.NewStringResult("", redis.Nil))
	store.On("Get", mock.Anything).Return(stored, nil)
	client.On("Set", mock.Anything, Key, mock.Anything, time.Minute).Return(redis.NewStatusResult("OK", nil))

	got, err := repo.Get(context.Background())

	require.NoError(t, err)
	assert.Equal(t, stored, got)
	client.AssertExpectations(t)
}

func TestRepository_Get_NotFoundIsNotCached(t *testing.T) {
	store := new(storeMock)
	client := new(redisMock)
	repo := NewRepository(store, client, time.Minute, logger.NewNop())
	notFound := errors.New("settings not found")

	client.On("Get", mock.Anything, Key).Return(redis.NewStringResult("", redis.Nil))
	store.On("Get", mock.Anything).Return(nil, notFound)

	_, err := repo.Get(context.Background())

	assert.ErrorIs(t, err, notFound)
	client.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestRepository_Get_RedisDownFallsBack(t *testing.T) {
	store := new(storeMock)
	client := new(redisMock)
	repo := NewRepository(store, client, time.Minute, logger.NewNop())

	client.On("Get", mock.Anything, Key).Return(redis.NewStringResult("", errors.New("connection refused")))
	store.On("Get", mock.Anything).Return(stored, nil)
	client.On("Set", mock.Anything, Key, mock.Anything, time.Minute).Return(redis.NewStatusResult("", errors.New("connection refused")))

	got, err := repo.Get(context.Background())

	require.NoError(t, err)
	assert.Equal(t, stored, got)
}

func TestRepository_Upsert_WritesSavedValue(t *testing.T) {
	store := new(storeMock)
	client := new(redisMock)
	repo := NewRepository(store, client, time.Minute, logger.NewNop())

	input := &domain.Settings{SlotIntervalMinutes: 30, WorkDayStart: "10:00", WorkDayEnd: "18:00", BreakBetweenSlotsMinutes: 10}
	store.On("Upsert", mock.Anything, input).Return(stored, nil)

	var payload []byte
	client.On("Set", mock.Anything, Key, mock.Anything, time.Minute).
		Run(func(args mock.Arguments) { payload = args.Get(2).([]byte) }).
		Return(redis.NewStatusResult("OK", nil))

	got, err := repo.Upsert(context.Background(), input)

	require.NoError(t, err)
	assert.Equal(t, stored, got)
	assert.JSONEq(t,
		`{"slotIntervalMinutes":30,"workDayStart":"10:00","workDayEnd":"18:00","breakBetweenSlotsMinutes":10,"lastUpdated":"2024-06-01T08:00:00Z"}`,
		string(payload))
	client.AssertNotCalled(t, "Del", mock.Anything, mock.Anything)
}

func TestRepository_Upsert_SetFailsInvalidates(t *testing.T) {
	store := new(storeMock)
	client := new(redisMock)
	repo := NewRepository(store, client, time.Minute, logger.NewNop())

	store.On("Upsert", mock.Anything, stored).Return(stored, nil)
	client.On("Set", mock.Anything, Key, mock.Anything, time.Minute).Return(redis.NewStatusResult("", errors.New("timeout")))
	client.On("Del", mock.Anything, []string{Key}).Return(redis.NewIntResult(1, nil))

	got, err := repo.Upsert(context.Background(), stored)

	require.NoError(t, err)
	assert.Equal(t, stored, got)
	client.AssertExpectations(t)
}

func TestRepository_Upsert_StoreErrorSkipsCache(t *testing.T) {
	store := new(storeMock)
	client := new(redisMock)
	repo := NewRepository(store, client, time.Minute, logger.NewNop())
	dbErr := errors.New("db down")

	store.On("Upsert", mock.Anything, stored).Return(nil, dbErr)

	_, err := repo.Upsert(context.Background(), stored)

	assert.ErrorIs(t, err, dbErr)
	client.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	client.AssertNotCalled(t, "Del", mock.Anything, mock.Anything)
}
