package convert

import (
	"regexp"
	"strings"

	"github.com/bigkaa/goroadstat/internal/domain/model"
)

var enumSeparatorRe = regexp.MustCompile(`[^A-Z0-9]+`)

// normalizeEnum приводит категориальное значение к виду констант:
// верхний регистр, последовательности неалфавитно-цифровых символов
// заменяются одним подчёркиванием.
func normalizeEnum(value string) string {
	v := enumSeparatorRe.ReplaceAllString(strings.ToUpper(strings.TrimSpace(value)), "_")
	return strings.Trim(v, "_")
}

// ParseWeekend разбирает признак выходного дня.
func ParseWeekend(value string) (model.Weekend, error) {
	switch normalizeEnum(value) {
	case string(model.WeekendWeekend):
		return model.WeekendWeekend, nil
	case string(model.WeekendWeekday):
		return model.WeekendWeekday, nil
	default:
		return "", &EnumError{Value: value, Valid: model.WeekendValues()}
	}
}

// ParseInjuryType разбирает тип травмы.
func ParseInjuryType(value string) (model.InjuryType, error) {
	switch normalizeEnum(value) {
	case string(model.InjuryFatal):
		return model.InjuryFatal, nil
	case string(model.InjuryIncapacitating):
		return model.InjuryIncapacitating, nil
	case string(model.InjuryNonIncapacitating):
		return model.InjuryNonIncapacitating, nil
	case string(model.InjuryNoInjuryUnknown):
		return model.InjuryNoInjuryUnknown, nil
	default:
		return "", &EnumError{Value: value, Valid: model.InjuryTypeValues()}
	}
}

// ParseDirection разбирает направление движения. Числовые сокращения
// "1" и "2" заменяются словами перед нормализацией: "1-way" → ONE_WAY.
func ParseDirection(value string) (model.Direction, error) {
	expanded := strings.ReplaceAll(value, "1", "one")
	expanded = strings.ReplaceAll(expanded, "2", "two")
	switch normalizeEnum(expanded) {
	case string(model.DirectionOneWay):
		return model.DirectionOneWay, nil
	case string(model.DirectionTwoWay):
		return model.DirectionTwoWay, nil
	default:
		return "", &EnumError{Value: value, Valid: model.DirectionValues()}
	}
}

// ParseWeekDay разбирает день недели.
func ParseWeekDay(value string) (model.WeekDay, error) {
	normalized := normalizeEnum(value)
	for _, valid := range model.WeekDayValues() {
		if normalized == valid {
			return model.WeekDay(valid), nil
		}
	}
	return "", &EnumError{Value: value, Valid: model.WeekDayValues()}
}
