package update_settings

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/internal/service/settings/models"
	"github.com/m04kA/SMC-AppointmentService/pkg/logger"
)

type serviceMock struct{ mock.Mock }

func (m *serviceMock) Update(ctx context.Context, req *models.UpdateSettingsRequest) (*models.SettingsResponse, error) {
	args := m.Called(ctx, req)
	s, _ := args.Get(0).(*models.SettingsResponse)
	return s, args.Error(1)
}

func doRequest(h *Handler, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodPut, "/api/v1/settings", strings.NewReader(body)))
	return rec
}

func TestHandler_Updated(t *testing.T) {
	svc := new(serviceMock)
	svc.On("Update", mock.Anything, mock.MatchedBy(func(r *models.UpdateSettingsRequest) bool {
		return r.Interval == 30 && r.WorkStart == "10:00" && r.WorkEnd == "18:00"
	})).Return(&models.SettingsResponse{Interval: 30, WorkStart: "10:00", WorkEnd: "18:00", BreakBetweenSlots: 0}, nil)

	rec := doRequest(NewHandler(svc, logger.NewNop()), `{"interval":30,"workStart":"10:00","workEnd":"18:00","breakBetweenSlots":0}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"interval":30`)
}

func TestHandler_Validation(t *testing.T) {
	svc := new(serviceMock)
	svc.On("Update", mock.Anything, mock.Anything).
		Return(nil, domain.ValidationErrors{{Field: "workEnd", Message: "Окончание рабочего дня должно быть позже начала"}})

	rec := doRequest(NewHandler(svc, logger.NewNop()), `{"interval":20,"workStart":"18:00","workEnd":"10:00"}`)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), `"workEnd"`)
}

func TestHandler_BadBody(t *testing.T) {
	rec := doRequest(NewHandler(new(serviceMock), logger.NewNop()), `[]`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
