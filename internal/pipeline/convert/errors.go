package convert

import (
	"fmt"
	"strings"
)

// DateParseError — строка даты не соответствует ожидаемому формату.
type DateParseError struct {
	Value string
}

func (e *DateParseError) Error() string {
	return fmt.Sprintf("некорректная дата %q, ожидается формат вида %q", e.Value, PedestrianDateLayout)
}

// EnumError — категориальное значение не соответствует ни одной
// известной категории. Valid содержит список допустимых значений.
type EnumError struct {
	Value string
	Valid []string
}

func (e *EnumError) Error() string {
	return fmt.Sprintf("недопустимое значение %q, допустимые: %s", e.Value, strings.Join(e.Valid, ", "))
}
