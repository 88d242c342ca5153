package get_available_slots

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-AppointmentService/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-AppointmentService/pkg/logger"
)

type useCaseMock struct{ mock.Mock }

func (m *useCaseMock) Execute(ctx context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error) {
	args := m.Called(ctx, req)
	r, _ := args.Get(0).(*getAvailableSlots.Response)
	return r, args.Error(1)
}

func doRequest(h *Handler, query string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/available-slots"+query, nil))
	return rec
}

func TestHandler_Slots(t *testing.T) {
	uc := new(useCaseMock)
	date := time.Date(2024, 6, 1, 0, 0, 0, 0, time.Local)
	uc.On("Execute", mock.Anything, mock.MatchedBy(func(r *getAvailableSlots.Request) bool {
		return r.Date.Equal(date) && r.After != nil && r.After.String() == "12:00"
	})).Return(&getAvailableSlots.Response{
		Date:         date,
		Interval:     20,
		WorkDayStart: "09:00",
		WorkDayEnd:   "21:00",
		Slots:        []domain.AvailableSlot{{StartTime: "12:00", Soon: true}},
	}, nil)

	rec := doRequest(NewHandler(uc, logger.NewNop()), "?date=2024-06-01&after=12:00")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"date": "2024-06-01",
		"interval": 20,
		"workStart": "09:00",
		"workEnd": "21:00",
		"slots": [{"startTime": "12:00", "soon": true}],
		"noSlotsAvailable": false
	}`, rec.Body.String())
}

func TestHandler_EmptySlotsIsArray(t *testing.T) {
	uc := new(useCaseMock)
	uc.On("Execute", mock.Anything, mock.Anything).Return(&getAvailableSlots.Response{
		Date:             time.Date(2024, 6, 1, 0, 0, 0, 0, time.Local),
		Interval:         20,
		NoSlotsAvailable: true,
	}, nil)

	rec := doRequest(NewHandler(uc, logger.NewNop()), "?date=2024-06-01")

	assert.Contains(t, rec.Body.String(), `"slots":[]`)
	assert.Contains(t, rec.Body.String(), `"noSlotsAvailable":true`)
}

func TestHandler_BadQuery(t *testing.T) {
	h := NewHandler(new(useCaseMock), logger.NewNop())

	for _, query := range []string{"", "?date=01.06.2024", "?date=2024-06-01&after=9"} {
		rec := doRequest(h, query)
		assert.Equal(t, http.StatusBadRequest, rec.Code, query)
	}
}
