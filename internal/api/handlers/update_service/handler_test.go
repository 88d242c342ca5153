package update_service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-AppointmentService/internal/service/catalog"
	"github.com/m04kA/SMC-AppointmentService/internal/service/catalog/models"
	"github.com/m04kA/SMC-AppointmentService/pkg/logger"
)

type serviceMock struct{ mock.Mock }

func (m *serviceMock) Update(ctx context.Context, id int64, req *models.ServiceRequest) (*models.ServiceResponse, error) {
	args := m.Called(ctx, id, req)
	s, _ := args.Get(0).(*models.ServiceResponse)
	return s, args.Error(1)
}

func doRequest(h *Handler, id, body string) *httptest.ResponseRecorder {
	req := mux.SetURLVars(httptest.NewRequest(http.MethodPut, "/api/v1/services/"+id, strings.NewReader(body)), map[string]string{"id": id})
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandler_Updated(t *testing.T) {
	svc := new(serviceMock)
	svc.On("Update", mock.Anything, int64(1), mock.Anything).Return(&models.ServiceResponse{ID: 1, Name: "Стрижка"}, nil)

	rec := doRequest(NewHandler(svc, logger.NewNop()), "1", `{"name":"Стрижка","price":1700}`)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandler_NotFound(t *testing.T) {
	svc := new(serviceMock)
	svc.On("Update", mock.Anything, int64(8), mock.Anything).Return(nil, catalog.ErrServiceNotFound)

	rec := doRequest(NewHandler(svc, logger.NewNop()), "8", `{"name":"X","price":1}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
