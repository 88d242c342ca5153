package slotrules

import (
	"fmt"
	"strings"
)

// FieldStartTime имя поля, к которому относятся ошибки правил времени
const FieldStartTime = "startTime"

const (
	msgPastDate = "Нельзя записать на прошедшую дату"
	msgPastTime = "Нельзя записать на прошедшее время. Сейчас %s"
	msgLeadTime = "Запись должна быть минимум на %d минут позже текущего времени. Сейчас %s"
	msgAlign    = "Время должно быть кратно %d минутам. Например: %s"
)

// alignmentExample строит подсказку вида "10:00, 10:20, 10:40"
func alignmentExample(interval int) string {
	examples := make([]string, 0, 4)
	for m := 0; m < 60 && len(examples) < 4; m += interval {
		examples = append(examples, fmt.Sprintf("10:%02d", m))
	}
	return strings.Join(examples, ", ")
}
