package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/goccy/go-json"
	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

const (
	msgInternalError   = "внутренняя ошибка сервера"
	msgValidationError = "ошибка валидации"
)

// ErrInvalidDateTime возвращается, если дата и время не распознаны
var ErrInvalidDateTime = errors.New("invalid date-time format")

// ErrorResponse тело ответа с ошибкой
type ErrorResponse struct {
	Error string `json:"error"`
}

// FieldErrorResponse ошибка конкретного поля
type FieldErrorResponse struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrorResponse тело ответа 422
type ValidationErrorResponse struct {
	Error  string               `json:"error"`
	Fields []FieldErrorResponse `json:"fields"`
}

// RespondJSON сериализует payload в JSON с указанным статусом
func RespondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(payload)
}

func RespondError(w http.ResponseWriter, status int, message string) {
	RespondJSON(w, status, ErrorResponse{Error: message})
}

func RespondBadRequest(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusBadRequest, message)
}

func RespondNotFound(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusNotFound, message)
}

func RespondInternalError(w http.ResponseWriter) {
	RespondError(w, http.StatusInternalServerError, msgInternalError)
}

func RespondNoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// RespondValidationError отвечает 422 со всеми ошибками полей в порядке их обнаружения
func RespondValidationError(w http.ResponseWriter, errs domain.ValidationErrors) {
	RespondJSON(w, http.StatusUnprocessableEntity, ValidationErrorResponse{
		Error:  msgValidationError,
		Fields: ToFieldErrors(errs),
	})
}

// ToFieldErrors конвертирует ошибки полей в HTTP модель (пустой срез вместо nil)
func ToFieldErrors(errs domain.ValidationErrors) []FieldErrorResponse {
	fields := make([]FieldErrorResponse, 0, len(errs))
	for _, e := range errs {
		fields = append(fields, FieldErrorResponse{Field: e.Field, Message: e.Message})
	}
	return fields
}

// DecodeJSON разбирает тело запроса в dst
func DecodeJSON(r *http.Request, dst interface{}) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(dst)
}

// ParseID извлекает положительный int64 из переменной пути
func ParseID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(mux.Vars(r)[name], 10, 64)
	if err != nil {
		return 0, err
	}
	if id <= 0 {
		return 0, strconv.ErrRange
	}
	return id, nil
}

var dateTimeLayouts = []string{
	domain.DateTimeFormat,
	"2006-01-02T15:04:05",
	time.RFC3339,
}

// ParseDateTime разбирает время начала записи.
// Значения без часового пояса трактуются в локальном времени сервера
func ParseDateTime(value string) (time.Time, error) {
	for _, layout := range dateTimeLayouts {
		if layout == time.RFC3339 {
			if t, err := time.Parse(layout, value); err == nil {
				return t.In(time.Local), nil
			}
			continue
		}
		if t, err := time.ParseInLocation(layout, value, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, ErrInvalidDateTime
}
