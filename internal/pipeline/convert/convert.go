// Пакет convert — преобразование очищенных строк в типизированные
// записи по виду документа с вычислением хеш-отпечатков.
package convert

import (
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/bigkaa/goroadstat/internal/domain/model"
	"github.com/bigkaa/goroadstat/internal/pipeline/hash"
	"github.com/bigkaa/goroadstat/internal/pipeline/tabular"
)

// PedestrianDateLayout — формат даты в данных пешеходов и велосипедистов:
// трёхбуквенный день недели, месяц, день, год.
const PedestrianDateLayout = "Mon, Jan 02, 2006"

// ParseDate разбирает дату формата PedestrianDateLayout в UTC.
func ParseDate(value string) (time.Time, error) {
	t, err := time.ParseInLocation(PedestrianDateLayout, value, time.UTC)
	if err != nil {
		return time.Time{}, &DateParseError{Value: value}
	}
	return t, nil
}

// CrashData преобразует очищенные строки в записи отчётов о ДТП.
// Ошибка разбора числа или категории прерывает преобразование
// всей загрузки.
func CrashData(rows []*tabular.Row, doc *model.Document) ([]model.CrashData, error) {
	records := make([]model.CrashData, 0, len(rows))
	for i, row := range rows {
		record, err := crashRecord(row, doc)
		if err != nil {
			return nil, fmt.Errorf("строка %d: %w", i+1, err)
		}
		records = append(records, record)
	}
	return records, nil
}

func crashRecord(row *tabular.Row, doc *model.Document) (model.CrashData, error) {
	var rec model.CrashData
	var err error

	if rec.Year, err = parseInt(row, "year"); err != nil {
		return rec, err
	}
	if rec.Month, err = parseInt(row, "month"); err != nil {
		return rec, err
	}
	if rec.Day, err = parseInt(row, "day"); err != nil {
		return rec, err
	}
	if rec.Hour, err = parseInt(row, "hour"); err != nil {
		return rec, err
	}

	if weekend, ok := row.Get("weekend"); ok && weekend != "" {
		if rec.Weekend, err = ParseWeekend(weekend); err != nil {
			return rec, err
		}
	}
	if injury, ok := row.Get("injury_type"); ok && injury != "" {
		if rec.InjuryType, err = ParseInjuryType(injury); err != nil {
			return rec, err
		}
	}

	rec.CollisionType = row.Value("collision_type")
	rec.CollisionTypeHash = hash.Optional(rec.CollisionType)
	rec.PrimaryFactor = row.Value("primary_factor")
	rec.PrimaryFactorHash = hash.Optional(rec.PrimaryFactor)
	rec.ReportedLocation = row.Value("reported_location")
	rec.ReportedLocationHash = hash.Optional(rec.ReportedLocation)

	if rec.Latitude, err = parseOptionalFloat(row, "latitude"); err != nil {
		return rec, err
	}
	if rec.Longitude, err = parseOptionalFloat(row, "longitude"); err != nil {
		return rec, err
	}

	rec.DocumentID = doc.ID
	return rec, nil
}

// Traffic преобразует очищенные строки в записи наблюдений движения.
func Traffic(rows []*tabular.Row, doc *model.Document) ([]model.Traffic, error) {
	records := make([]model.Traffic, 0, len(rows))
	for i, row := range rows {
		record, err := trafficRecord(row, doc)
		if err != nil {
			return nil, fmt.Errorf("строка %d: %w", i+1, err)
		}
		records = append(records, record)
	}
	return records, nil
}

func trafficRecord(row *tabular.Row, doc *model.Document) (model.Traffic, error) {
	var rec model.Traffic
	var err error

	rec.County = row.Value("county")
	rec.CountyHash = hash.Optional(rec.County)
	rec.Community = row.Value("community")
	rec.CommunityHash = hash.Optional(rec.Community)
	rec.OnRoad = row.Value("on")
	rec.OnRoadHash = hash.Optional(rec.OnRoad)
	rec.FromRoad = row.Value("from")
	rec.FromRoadHash = hash.Optional(rec.FromRoad)
	rec.ToRoad = row.Value("to")
	rec.ToRoadHash = hash.Optional(rec.ToRoad)
	rec.Approach = row.Value("approach")
	rec.ApproachHash = hash.Optional(rec.Approach)
	rec.At = row.Value("at")
	rec.AtHash = hash.Optional(rec.At)
	rec.Directions = row.Value("directions")
	rec.DirectionsHash = hash.Optional(rec.Directions)

	if rec.Direction, err = ParseDirection(row.Value("dir")); err != nil {
		return rec, err
	}

	if rec.Latitude, err = parseOptionalFloat(row, "latitude"); err != nil {
		return rec, err
	}
	if rec.Longitude, err = parseOptionalFloat(row, "longitude"); err != nil {
		return rec, err
	}

	rec.DocumentID = doc.ID
	return rec, nil
}

// PedestrianParents строит родительские записи дней наблюдений:
// дата каждой длинной строки разбирается, повторы одной и той же
// строки даты схлопываются, только первое вхождение даёт запись.
// Неразбираемые даты пропускаются с записью в лог, не прерывая
// обработку.
func PedestrianParents(rows []*tabular.Row, doc *model.Document) []model.PedestrianBicyclist {
	var parents []model.PedestrianBicyclist
	seen := make(map[string]struct{})
	for _, row := range rows {
		dateStr := rowDate(row)
		if _, dup := seen[dateStr]; dup {
			continue
		}
		t, err := ParseDate(dateStr)
		if err != nil {
			slog.Warn("Пропущена строка с неразбираемой датой", "date", dateStr, "error", err)
			seen[dateStr] = struct{}{}
			continue
		}
		seen[dateStr] = struct{}{}
		parents = append(parents, model.PedestrianBicyclist{
			Year:       t.Year(),
			Month:      int(t.Month()),
			Day:        t.Day(),
			WeekDay:    weekDayOf(t),
			DocumentID: doc.ID,
		})
	}
	return parents
}

// PedestrianValueRow — одно значение счётчика вместе с кортежем даты
// для привязки к родительской записи.
type PedestrianValueRow struct {
	Year    int
	Month   int
	Day     int
	WeekDay model.WeekDay
	Value   model.PedestrianBicyclistValues
}

// PedestrianValues строит значения счётчиков из длинных строк.
// Строки с неразбираемой датой пропускаются с записью в лог.
func PedestrianValues(rows []*tabular.Row) []PedestrianValueRow {
	values := make([]PedestrianValueRow, 0, len(rows))
	for _, row := range rows {
		dateStr := rowDate(row)
		t, err := ParseDate(dateStr)
		if err != nil {
			slog.Warn("Пропущено значение с неразбираемой датой", "date", dateStr, "error", err)
			continue
		}

		name := row.Value("column_name")
		val := row.Value("column_value")
		values = append(values, PedestrianValueRow{
			Year:    t.Year(),
			Month:   int(t.Month()),
			Day:     t.Day(),
			WeekDay: weekDayOf(t),
			Value: model.PedestrianBicyclistValues{
				ColumnName:      name,
				ColumnNameHash:  hash.Optional(name),
				ColumnValue:     val,
				ColumnValueHash: hash.Optional(val),
			},
		})
	}
	return values
}

// rowDate возвращает строку даты длинной строки: поле date,
// при его отсутствии full_date.
func rowDate(row *tabular.Row) string {
	if v, ok := row.Get("date"); ok {
		return v
	}
	return row.Value("full_date")
}

// weekDayOf переводит weekday времени в доменный день недели.
func weekDayOf(t time.Time) model.WeekDay {
	switch t.Weekday() {
	case time.Monday:
		return model.Monday
	case time.Tuesday:
		return model.Tuesday
	case time.Wednesday:
		return model.Wednesday
	case time.Thursday:
		return model.Thursday
	case time.Friday:
		return model.Friday
	case time.Saturday:
		return model.Saturday
	default:
		return model.Sunday
	}
}

// parseInt разбирает целочисленное поле строки.
func parseInt(row *tabular.Row, col string) (int, error) {
	val := row.Value(col)
	n, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("колонка %s: некорректное целое число %q", col, val)
	}
	return n, nil
}

// parseOptionalFloat разбирает необязательное число с плавающей точкой:
// пустое значение даёт nil, не ноль.
func parseOptionalFloat(row *tabular.Row, col string) (*float64, error) {
	val, ok := row.Get(col)
	if !ok || val == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return nil, fmt.Errorf("колонка %s: некорректное число %q", col, val)
	}
	return &f, nil
}
