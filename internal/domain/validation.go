package domain

import "strings"

// FieldError ошибка валидации конкретного поля
type FieldError struct {
	Field   string
	Message string
}

// ValidationErrors упорядоченный набор ошибок полей.
// Пустой набор означает успешную проверку
type ValidationErrors []FieldError

// Add добавляет ошибку поля
func (v *ValidationErrors) Add(field, message string) {
	*v = append(*v, FieldError{Field: field, Message: message})
}

// Append добавляет все ошибки из другого набора
func (v *ValidationErrors) Append(other ValidationErrors) {
	*v = append(*v, other...)
}

// HasErrors returns true if at least one field failed
func (v ValidationErrors) HasErrors() bool {
	return len(v) > 0
}

// Fields возвращает имена полей с ошибками в порядке добавления
func (v ValidationErrors) Fields() []string {
	fields := make([]string, 0, len(v))
	for _, e := range v {
		fields = append(fields, e.Field)
	}
	return fields
}

func (v ValidationErrors) Error() string {
	parts := make([]string, 0, len(v))
	for _, e := range v {
		parts = append(parts, e.Field+": "+e.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}
