package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	catalogRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/catalog"
	"github.com/m04kA/SMC-AppointmentService/internal/service/catalog/models"
	"github.com/m04kA/SMC-AppointmentService/internal/validation"
	"github.com/m04kA/SMC-AppointmentService/pkg/logger"
)

type repoMock struct{ mock.Mock }

func (m *repoMock) Create(ctx context.Context, service *domain.Service) (*domain.Service, error) {
	args := m.Called(ctx, service)
	s, _ := args.Get(0).(*domain.Service)
	return s, args.Error(1)
}

func (m *repoMock) GetByID(ctx context.Context, id int64) (*domain.Service, error) {
	args := m.Called(ctx, id)
	s, _ := args.Get(0).(*domain.Service)
	return s, args.Error(1)
}

func (m *repoMock) ListActive(ctx context.Context, order domain.ServiceOrder) ([]*domain.Service, error) {
	args := m.Called(ctx, order)
	list, _ := args.Get(0).([]*domain.Service)
	return list, args.Error(1)
}

func (m *repoMock) Update(ctx context.Context, service *domain.Service) error {
	return m.Called(ctx, service).Error(0)
}

func (m *repoMock) Deactivate(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *repoMock) CountAll(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

type inlineTx struct{}

func (inlineTx) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func newService(repo *repoMock) *Service {
	return NewService(repo, inlineTx{}, validation.New(), logger.NewNop())
}

func TestService_Create_DefaultDuration(t *testing.T) {
	repo := new(repoMock)
	svc := newService(repo)

	repo.On("Create", mock.Anything, mock.MatchedBy(func(s *domain.Service) bool {
		return s.DurationMinutes == 60 && s.IsActive && s.Name == "Стрижка"
	})).Return(&domain.Service{ID: 1, Name: "Стрижка", Price: decimal.NewFromInt(1500), DurationMinutes: 60, IsActive: true}, nil)

	resp, err := svc.Create(context.Background(), &models.ServiceRequest{Name: "Стрижка", Price: decimal.NewFromInt(1500)})

	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, 60, resp.DurationMinutes)
}

func TestService_Create_Validation(t *testing.T) {
	repo := new(repoMock)
	svc := newService(repo)

	_, err := svc.Create(context.Background(), &models.ServiceRequest{Price: decimal.NewFromInt(-1), DurationMinutes: 500})

	var verrs domain.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, []string{"name", "price", "durationMinutes"}, verrs.Fields())
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_Update_NotFound(t *testing.T) {
	repo := new(repoMock)
	svc := newService(repo)

	repo.On("GetByID", mock.Anything, int64(9)).Return(nil, catalogRepo.ErrServiceNotFound)

	_, err := svc.Update(context.Background(), 9, &models.ServiceRequest{Name: "Маникюр", Price: decimal.NewFromInt(2000), DurationMinutes: 90})

	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestService_Update(t *testing.T) {
	repo := new(repoMock)
	svc := newService(repo)
	category := "Ногти"

	repo.On("GetByID", mock.Anything, int64(2)).
		Return(&domain.Service{ID: 2, Name: "Маникюр", Price: decimal.NewFromInt(2000), DurationMinutes: 90, IsActive: true}, nil)
	repo.On("Update", mock.Anything, mock.MatchedBy(func(s *domain.Service) bool {
		return s.ID == 2 && s.Price.Equal(decimal.NewFromInt(2500)) && s.Category != nil && *s.Category == category
	})).Return(nil)

	resp, err := svc.Update(context.Background(), 2, &models.ServiceRequest{
		Name:            "Маникюр",
		Price:           decimal.NewFromInt(2500),
		DurationMinutes: 90,
		Category:        &category,
	})

	require.NoError(t, err)
	assert.Equal(t, &category, resp.Category)
	repo.AssertExpectations(t)
}

func TestService_Delete(t *testing.T) {
	repo := new(repoMock)
	svc := newService(repo)

	repo.On("Deactivate", mock.Anything, int64(1)).Return(nil)
	repo.On("Deactivate", mock.Anything, int64(2)).Return(catalogRepo.ErrServiceNotFound)
	repo.On("Deactivate", mock.Anything, int64(3)).Return(errors.New("db down"))

	assert.NoError(t, svc.Delete(context.Background(), 1))
	assert.ErrorIs(t, svc.Delete(context.Background(), 2), ErrServiceNotFound)
	assert.ErrorIs(t, svc.Delete(context.Background(), 3), ErrInternal)
}

func TestService_ListActive_UnknownOrder(t *testing.T) {
	repo := new(repoMock)
	svc := newService(repo)

	repo.On("ListActive", mock.Anything, domain.ServiceOrderByName).Return([]*domain.Service{}, nil)

	resp, err := svc.ListActive(context.Background(), "price")

	require.NoError(t, err)
	assert.NotNil(t, resp.Services)
	assert.Empty(t, resp.Services)
}

func TestService_SeedDefaults_EmptyCatalog(t *testing.T) {
	repo := new(repoMock)
	svc := newService(repo)

	repo.On("CountAll", mock.Anything).Return(0, nil)
	for i, def := range domain.DefaultServices() {
		saved := *def
		saved.ID = int64(i + 1)
		name := def.Name
		repo.On("Create", mock.Anything, mock.MatchedBy(func(s *domain.Service) bool { return s.Name == name })).
			Return(&saved, nil).Once()
	}

	resp, err := svc.SeedDefaults(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, resp.Added)
	assert.Equal(t, "Стрижка", resp.Services[0].Name)
	assert.Equal(t, 60, resp.Services[0].DurationMinutes)
	assert.Equal(t, "Маникюр", resp.Services[1].Name)
	assert.True(t, decimal.NewFromInt(2000).Equal(resp.Services[1].Price))
}

func TestService_SeedDefaults_NonEmptyCatalog(t *testing.T) {
	repo := new(repoMock)
	svc := newService(repo)

	repo.On("CountAll", mock.Anything).Return(3, nil)

	resp, err := svc.SeedDefaults(context.Background())

	require.NoError(t, err)
	assert.Zero(t, resp.Added)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}
