package check_start_time

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	checkStartTime "github.com/m04kA/SMC-AppointmentService/internal/usecase/check_start_time"
	"github.com/m04kA/SMC-AppointmentService/pkg/logger"
)

type useCaseMock struct{ mock.Mock }

func (m *useCaseMock) Execute(ctx context.Context, req *checkStartTime.Request) (*checkStartTime.Response, error) {
	args := m.Called(ctx, req)
	r, _ := args.Get(0).(*checkStartTime.Response)
	return r, args.Error(1)
}

func doRequest(h *Handler, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodPost, "/api/v1/appointments/check-start-time", strings.NewReader(body)))
	return rec
}

func TestHandler_Invalid(t *testing.T) {
	uc := new(useCaseMock)
	uc.On("Execute", mock.Anything, mock.MatchedBy(func(r *checkStartTime.Request) bool {
		return r.AppointmentID != nil && *r.AppointmentID == 4
	})).Return(&checkStartTime.Response{
		Errors: domain.ValidationErrors{{Field: "startTime", Message: "Время должно быть кратно 20 минутам. Например: 10:00, 10:20, 10:40"}},
	}, nil)

	rec := doRequest(NewHandler(uc, logger.NewNop()), `{"startTime":"2024-06-01T10:05","appointmentId":4}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"valid": false,
		"errors": [{"field": "startTime", "message": "Время должно быть кратно 20 минутам. Например: 10:00, 10:20, 10:40"}]
	}`, rec.Body.String())
}

func TestHandler_Valid(t *testing.T) {
	uc := new(useCaseMock)
	uc.On("Execute", mock.Anything, mock.Anything).Return(&checkStartTime.Response{Valid: true}, nil)

	rec := doRequest(NewHandler(uc, logger.NewNop()), `{"startTime":"2024-06-01T10:20"}`)

	assert.JSONEq(t, `{"valid": true, "errors": []}`, rec.Body.String())
}

func TestHandler_NotFound(t *testing.T) {
	uc := new(useCaseMock)
	uc.On("Execute", mock.Anything, mock.Anything).Return(nil, checkStartTime.ErrAppointmentNotFound)

	rec := doRequest(NewHandler(uc, logger.NewNop()), `{"startTime":"2024-06-01T10:20","appointmentId":99}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandler_BadStartTime(t *testing.T) {
	rec := doRequest(NewHandler(new(useCaseMock), logger.NewNop()), `{"startTime":"10:20"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
