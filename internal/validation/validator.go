package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

const (
	tagTimeOfDay = "hhmm"
	tagNotBlank  = "notblank"
)

// fieldMessages сообщения для конкретных полей, ключ "<json-поле>.<тег>"
var fieldMessages = map[string]string{
	"fullName.notblank":    "ФИО обязательно",
	"phone.notblank":       "Телефон обязателен",
	"serviceName.notblank": "Услуга обязательна",
	"email.email":          "Некорректный email",
	"status.oneof":         "Неизвестный статус записи",

	"name.notblank":        "Название услуги обязательно",
	"name.max":             fmt.Sprintf("Название не должно превышать %d символов", domain.MaxServiceNameLength),
	"price.gte":            fmt.Sprintf("Цена должна быть от %d до %d", domain.MinServicePrice, domain.MaxServicePrice),
	"price.lte":            fmt.Sprintf("Цена должна быть от %d до %d", domain.MinServicePrice, domain.MaxServicePrice),
	"durationMinutes.gte":  fmt.Sprintf("Длительность должна быть от %d до %d минут", domain.MinServiceDurationMinutes, domain.MaxServiceDurationMinutes),
	"durationMinutes.lte":  fmt.Sprintf("Длительность должна быть от %d до %d минут", domain.MinServiceDurationMinutes, domain.MaxServiceDurationMinutes),
	"description.max":      fmt.Sprintf("Описание не должно превышать %d символов", domain.MaxServiceDescriptionLength),
	"category.max":         fmt.Sprintf("Категория не должна превышать %d символов", domain.MaxServiceCategoryLength),

	"interval.gte":          fmt.Sprintf("Интервал должен быть от %d до %d минут", domain.MinSlotIntervalMinutes, domain.MaxSlotIntervalMinutes),
	"interval.lte":          fmt.Sprintf("Интервал должен быть от %d до %d минут", domain.MinSlotIntervalMinutes, domain.MaxSlotIntervalMinutes),
	"breakBetweenSlots.gte": fmt.Sprintf("Перерыв должен быть от %d до %d минут", domain.MinBreakBetweenSlotsMinutes, domain.MaxBreakBetweenSlotsMinutes),
	"breakBetweenSlots.lte": fmt.Sprintf("Перерыв должен быть от %d до %d минут", domain.MinBreakBetweenSlotsMinutes, domain.MaxBreakBetweenSlotsMinutes),
}

// tagMessages сообщения по умолчанию для тегов
var tagMessages = map[string]string{
	"required":   "Поле обязательно",
	tagNotBlank:  "Поле обязательно",
	"email":      "Некорректный email",
	"max":        "Значение слишком длинное (максимум %s)",
	"min":        "Значение слишком короткое (минимум %s)",
	"gte":        "Значение должно быть не меньше %s",
	"lte":        "Значение должно быть не больше %s",
	"oneof":      "Допустимые значения: %s",
	tagTimeOfDay: "Неверный формат времени, ожидается ЧЧ:ММ",
}

// Validator проверка структур запросов по тегам validate
type Validator struct {
	validate *validator.Validate
}

// New создает валидатор с именами полей из json-тегов
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}
		return name
	})

	// Цены сравниваются с границами как числа
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})

	// Строка из одних пробелов считается незаполненной
	if err := v.RegisterValidation(tagNotBlank, validators.NotBlank); err != nil {
		panic(err)
	}

	if err := v.RegisterValidation(tagTimeOfDay, func(fl validator.FieldLevel) bool {
		return types.TimeString(fl.Field().String()).Validate() == nil
	}); err != nil {
		panic(err)
	}

	return &Validator{validate: v}
}

// Struct проверяет структуру и возвращает ошибки полей (nil, если ошибок нет)
func (v *Validator) Struct(s interface{}) domain.ValidationErrors {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return domain.ValidationErrors{{Field: "", Message: err.Error()}}
	}

	result := make(domain.ValidationErrors, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		result.Add(fe.Field(), message(fe))
	}
	return result
}

func message(fe validator.FieldError) string {
	if msg, ok := fieldMessages[fe.Field()+"."+fe.Tag()]; ok {
		return msg
	}
	if msg, ok := tagMessages[fe.Tag()]; ok {
		if strings.Contains(msg, "%s") {
			return fmt.Sprintf(msg, fe.Param())
		}
		return msg
	}
	return fmt.Sprintf("Некорректное значение (%s)", fe.Tag())
}
