package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

func TestRespondValidationError(t *testing.T) {
	rec := httptest.NewRecorder()
	errs := domain.ValidationErrors{
		{Field: "fullName", Message: "ФИО обязательно"},
		{Field: "startTime", Message: "Нельзя записать на прошедшую дату"},
	}

	RespondValidationError(rec, errs)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	var body ValidationErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Fields, 2)
	assert.Equal(t, "fullName", body.Fields[0].Field)
	assert.Equal(t, "startTime", body.Fields[1].Field)
}

func TestRespondError(t *testing.T) {
	rec := httptest.NewRecorder()

	RespondNotFound(rec, "запись не найдена")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"запись не найдена"}`, rec.Body.String())
	assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")
}

func TestDecodeJSON(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"x"}`))
	var dst struct {
		Name string `json:"name"`
	}

	require.NoError(t, DecodeJSON(r, &dst))
	assert.Equal(t, "x", dst.Name)

	bad := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{`))
	assert.Error(t, DecodeJSON(bad, &dst))
}

func TestParseID(t *testing.T) {
	r := mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/", nil), map[string]string{"id": "42"})
	id, err := ParseID(r, "id")
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	for _, raw := range []string{"abc", "0", "-1", ""} {
		r := mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/", nil), map[string]string{"id": raw})
		_, err := ParseID(r, "id")
		assert.Error(t, err, raw)
	}
}

func TestParseDateTime(t *testing.T) {
	got, err := ParseDateTime("2024-06-01T10:20")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 6, 1, 10, 20, 0, 0, time.Local), got)

	got, err = ParseDateTime("2024-06-01T10:20:30")
	require.NoError(t, err)
	assert.Equal(t, 30, got.Second())

	got, err = ParseDateTime("2024-06-01T10:20:00Z")
	require.NoError(t, err)
	assert.True(t, got.Equal(time.Date(2024, 6, 1, 10, 20, 0, 0, time.UTC)))

	_, err = ParseDateTime("01.06.2024 10:20")
	assert.ErrorIs(t, err, ErrInvalidDateTime)
}
