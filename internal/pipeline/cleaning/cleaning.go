// Пакет cleaning — валидация и очистка строк по тегам колонок.
//
// Очистка либо возвращает полностью очищенный набор строк, либо
// завершается типизированной ошибкой; отдельные некорректные строки
// удаляются молча и отражаются только в итоговой статистике.
package cleaning

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/bigkaa/goroadstat/internal/pipeline/tabular"
	"github.com/bigkaa/goroadstat/internal/pipeline/tags"
)

const (
	// SentinelString — канонический маркер отсутствующего текстового значения.
	SentinelString = "No_Data"
	// SentinelInt — канонический маркер отсутствующего целочисленного значения.
	SentinelInt = "0"

	// Допустимый диапазон значений колонок с тегом TIME.
	timeMin = 0
	timeMax = 2400
)

// InsufficientDataError — в файле меньше строк, чем требует порог.
// Защита от импорта обрезанного или повреждённого файла.
type InsufficientDataError struct {
	Observed int
	Required int
}

func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf("недостаточно данных: %d строк, требуется не менее %d", e.Observed, e.Required)
}

var numericRe = regexp.MustCompile(`^\d+$`)

// Clean выполняет очистку в фиксированном порядке: проверка порога
// количества строк, удаление колонок без тегов, замена пустых
// значений маркерами, построчные правила (обязательность, время,
// целые числа, Prettify текстовых значений). Каждая стадия
// возвращает новую коллекцию, исходные строки не изменяются.
func Clean(rows []*tabular.Row, minRows int) ([]*tabular.Row, error) {
	if len(rows) < minRows {
		return nil, &InsufficientDataError{Observed: len(rows), Required: minRows}
	}

	// Схема считается одинаковой для всех строк загрузки:
	// теги разрешаются по колонкам первой строки.
	tagMap := tags.ResolveAll(rows[0].Columns())

	pruned := pruneColumns(rows, tagMap)
	reformatted := reformatNulls(pruned, tagMap)
	return applyRowRules(reformatted, tagMap), nil
}

// pruneColumns удаляет из каждой строки колонки, отсутствующие в карте тегов.
func pruneColumns(rows []*tabular.Row, tagMap map[string]tags.Set) []*tabular.Row {
	out := make([]*tabular.Row, 0, len(rows))
	for _, row := range rows {
		clean := tabular.NewRow()
		for _, col := range row.Columns() {
			if _, ok := tagMap[col]; ok {
				clean.Set(col, row.Value(col))
			}
		}
		out = append(out, clean)
	}
	return out
}

// reformatNulls заменяет пустые, "null" и "n/a" значения каноническими
// маркерами в зависимости от тегов колонки.
func reformatNulls(rows []*tabular.Row, tagMap map[string]tags.Set) []*tabular.Row {
	out := make([]*tabular.Row, 0, len(rows))
	for _, row := range rows {
		clean := tabular.NewRow()
		for _, col := range row.Columns() {
			val := row.Value(col)
			if isNullValue(val) {
				set := tagMap[col]
				switch {
				case set.Has(tags.String):
					val = SentinelString
				case set.Has(tags.Int):
					val = SentinelInt
				}
			}
			clean.Set(col, val)
		}
		out = append(out, clean)
	}
	return out
}

// isNullValue сообщает, является ли значение отсутствующим.
func isNullValue(val string) bool {
	v := strings.ToLower(strings.TrimSpace(val))
	return v == "" || v == "null" || v == "n/a"
}

// applyRowRules применяет построчные правила и возвращает выжившие
// строки. Нарушение обязательности, диапазона времени или числового
// формата удаляет строку целиком; текстовые значения приводятся
// к Prettify-виду.
func applyRowRules(rows []*tabular.Row, tagMap map[string]tags.Set) []*tabular.Row {
	out := make([]*tabular.Row, 0, len(rows))
	for _, row := range rows {
		clean, ok := applyRules(row, tagMap)
		if ok {
			out = append(out, clean)
		}
	}
	return out
}

func applyRules(row *tabular.Row, tagMap map[string]tags.Set) (*tabular.Row, bool) {
	clean := tabular.NewRow()
	for _, col := range row.Columns() {
		val := row.Value(col)
		set := tagMap[col]

		if set.Has(tags.Obligatory) {
			if val == "" || val == SentinelString || val == SentinelInt {
				return nil, false
			}
		}

		switch {
		case set.Has(tags.Time):
			n, err := strconv.Atoi(val)
			if !numericRe.MatchString(val) || err != nil || n < timeMin || n > timeMax {
				return nil, false
			}
		case set.Has(tags.Int):
			if !numericRe.MatchString(val) {
				return nil, false
			}
		}

		if set.Has(tags.String) && val != "" {
			val = Prettify(val)
		}

		clean.Set(col, val)
	}
	return clean, true
}

// Prettify приводит текст к каноническому виду: токены по пробелам,
// первая буква каждого токена в верхнем регистре, остальные в нижнем,
// токены соединяются подчёркиванием. Операция идемпотентна.
func Prettify(val string) string {
	tokens := strings.Fields(strings.ReplaceAll(val, "_", " "))
	for i, token := range tokens {
		r := []rune(strings.ToLower(token))
		if len(r) > 0 {
			r[0] = []rune(strings.ToUpper(string(r[0])))[0]
		}
		tokens[i] = string(r)
	}
	return strings.Join(tokens, "_")
}
