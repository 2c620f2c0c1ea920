package tabular

import (
	"encoding/csv"
	"fmt"
	"io"
	"regexp"
	"strings"
)

// FileReadError — ошибка ввода-вывода при чтении загружаемого файла.
type FileReadError struct {
	Err error
}

func (e *FileReadError) Error() string {
	return fmt.Sprintf("ошибка чтения файла: %v", e.Err)
}

func (e *FileReadError) Unwrap() error {
	return e.Err
}

// MalformedHeaderError — структурно некорректная строка заголовков.
type MalformedHeaderError struct {
	Reason string
}

func (e *MalformedHeaderError) Error() string {
	return fmt.Sprintf("некорректный заголовок: %s", e.Reason)
}

var (
	whitespaceRe   = regexp.MustCompile(`\s+`)
	nonCanonicalRe = regexp.MustCompile(`[^a-zA-Z0-9_]`)
)

// NormalizeName приводит имя колонки к каноническому виду: обрезка
// пробелов, нижний регистр, последовательности пробелов заменяются
// одним подчёркиванием, остальные недопустимые символы удаляются.
// Операция идемпотентна.
func NormalizeName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	name = whitespaceRe.ReplaceAllString(name, "_")
	return nonCanonicalRe.ReplaceAllString(name, "")
}

// Parse читает CSV и возвращает строки, ключованные исходными
// заголовками. Заголовок обязан быть непустым, без пустых и
// повторяющихся ячеек. Строки с отличающимся числом полей
// усекаются или дополняются пустыми значениями по заголовку.
func Parse(r io.Reader) ([]*Row, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, &MalformedHeaderError{Reason: "файл пуст"}
	}
	if err != nil {
		return nil, &FileReadError{Err: err}
	}

	// Excel сохраняет UTF-8 CSV с BOM; он прилипает к первому заголовку.
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\uFEFF")
	}

	seen := make(map[string]struct{}, len(header))
	for i, cell := range header {
		cell = strings.TrimSpace(cell)
		if cell == "" {
			return nil, &MalformedHeaderError{Reason: fmt.Sprintf("пустая ячейка заголовка в позиции %d", i)}
		}
		if _, dup := seen[cell]; dup {
			return nil, &MalformedHeaderError{Reason: fmt.Sprintf("повторяющийся заголовок %q", cell)}
		}
		seen[cell] = struct{}{}
		header[i] = cell
	}

	var rows []*Row
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &FileReadError{Err: err}
		}

		row := NewRow()
		for i, col := range header {
			if i < len(record) {
				row.Set(col, strings.TrimSpace(record[i]))
			} else {
				row.Set(col, "")
			}
		}
		rows = append(rows, row)
	}

	return rows, nil
}

// NormalizeRows возвращает новую коллекцию строк с каноническими
// именами колонок; значения не изменяются.
func NormalizeRows(rows []*Row) []*Row {
	out := make([]*Row, 0, len(rows))
	for _, row := range rows {
		normalized := NewRow()
		for _, col := range row.Columns() {
			normalized.Set(NormalizeName(col), row.Value(col))
		}
		out = append(out, normalized)
	}
	return out
}

// ReshapePedestrian преобразует широкие строки данных пешеходов и
// велосипедистов в длинные. В каждой строке первая по порядку колонка,
// каноническое имя которой содержит "time" или "date", становится
// статическим полем даты (full_date либо date соответственно); каждая
// остальная непустая колонка порождает одну выходную строку вида
// {поле даты, column_name: исходное имя колонки, column_value: значение}.
// Остальные колонки даты и времени в строки значений не попадают.
func ReshapePedestrian(rows []*Row) []*Row {
	var out []*Row
	for _, row := range rows {
		dateKey := ""
		dateCol := ""
		dateish := make(map[string]struct{})
		for _, col := range row.Columns() {
			canonical := NormalizeName(col)
			if !strings.Contains(canonical, "time") && !strings.Contains(canonical, "date") {
				continue
			}
			dateish[col] = struct{}{}
			if dateCol != "" {
				continue
			}
			dateCol = col
			if strings.Contains(canonical, "time") {
				dateKey = "full_date"
			} else {
				dateKey = "date"
			}
		}
		if dateKey == "" {
			// Строка без колонки даты не порождает выходных строк.
			continue
		}

		dateVal := row.Value(dateCol)
		for _, col := range row.Columns() {
			if _, ok := dateish[col]; ok {
				continue
			}
			val := row.Value(col)
			if strings.TrimSpace(val) == "" {
				continue
			}
			long := NewRow()
			long.Set(dateKey, dateVal)
			long.Set("column_name", col)
			long.Set("column_value", val)
			out = append(out, long)
		}
	}
	return out
}
