package convert

import (
	"errors"
	"testing"

	"github.com/bigkaa/goroadstat/internal/domain/model"
	"github.com/bigkaa/goroadstat/internal/pipeline/tabular"
)

func testDocument() *model.Document {
	return &model.Document{ID: 42}
}

func TestParseDate(t *testing.T) {
	got, err := ParseDate("Thu, Apr 27, 2023")
	if err != nil {
		t.Fatalf("ParseDate вернул ошибку: %v", err)
	}
	if got.Year() != 2023 || int(got.Month()) != 4 || got.Day() != 27 {
		t.Errorf("ParseDate = %d/%d/%d, ожидалось 2023/4/27", got.Year(), got.Month(), got.Day())
	}
	if weekDayOf(got) != model.Thursday {
		t.Errorf("день недели = %s, ожидалось THURSDAY", weekDayOf(got))
	}
}

func TestParseDateInvalid(t *testing.T) {
	_, err := ParseDate("27 апреля 2023")
	var dateErr *DateParseError
	if !errors.As(err, &dateErr) {
		t.Fatalf("ожидался DateParseError, получено: %v", err)
	}
	if dateErr.Value != "27 апреля 2023" {
		t.Errorf("DateParseError.Value = %q", dateErr.Value)
	}
}

func TestParseWeekend(t *testing.T) {
	for in, want := range map[string]model.Weekend{
		"weekend": model.WeekendWeekend,
		"Weekday": model.WeekendWeekday,
		"WEEKEND": model.WeekendWeekend,
	} {
		got, err := ParseWeekend(in)
		if err != nil {
			t.Errorf("ParseWeekend(%q) вернул ошибку: %v", in, err)
			continue
		}
		if got != want {
			t.Errorf("ParseWeekend(%q) = %s, ожидалось %s", in, got, want)
		}
	}
}

func TestParseInjuryType(t *testing.T) {
	got, err := ParseInjuryType("Non_Incapacitating")
	if err != nil {
		t.Fatalf("ParseInjuryType вернул ошибку: %v", err)
	}
	if got != model.InjuryNonIncapacitating {
		t.Errorf("ParseInjuryType = %s, ожидалось NON_INCAPACITATING", got)
	}

	_, err = ParseInjuryType("scratched")
	var enumErr *EnumError
	if !errors.As(err, &enumErr) {
		t.Fatalf("ожидался EnumError, получено: %v", err)
	}
	if len(enumErr.Valid) != 4 {
		t.Errorf("EnumError.Valid содержит %d значений, ожидалось 4", len(enumErr.Valid))
	}
}

func TestParseDirectionShorthand(t *testing.T) {
	got, err := ParseDirection("1-way")
	if err != nil {
		t.Fatalf("ParseDirection(\"1-way\") вернул ошибку: %v", err)
	}
	if got != model.DirectionOneWay {
		t.Errorf("ParseDirection(\"1-way\") = %s, ожидалось ONE_WAY", got)
	}

	got, err = ParseDirection("2 way")
	if err != nil {
		t.Fatalf("ParseDirection(\"2 way\") вернул ошибку: %v", err)
	}
	if got != model.DirectionTwoWay {
		t.Errorf("ParseDirection(\"2 way\") = %s, ожидалось TWO_WAY", got)
	}

	_, err = ParseDirection("3-way")
	var enumErr *EnumError
	if !errors.As(err, &enumErr) {
		t.Fatalf("ожидался EnumError, получено: %v", err)
	}
}

func TestParseWeekDay(t *testing.T) {
	got, err := ParseWeekDay("thursday")
	if err != nil {
		t.Fatalf("ParseWeekDay вернул ошибку: %v", err)
	}
	if got != model.Thursday {
		t.Errorf("ParseWeekDay = %s, ожидалось THURSDAY", got)
	}
}

func crashRow() *tabular.Row {
	row := tabular.NewRow()
	row.Set("year", "2023")
	row.Set("month", "4")
	row.Set("day", "27")
	row.Set("hour", "14")
	row.Set("weekend", "weekend")
	row.Set("collision_type", "Rear-end")
	row.Set("injury_type", "fatal")
	row.Set("primary_factor", "Distracted driving")
	row.Set("reported_location", "123 Main Street")
	row.Set("latitude", "37.7749")
	row.Set("longitude", "-122.4194")
	return row
}

func TestCrashData(t *testing.T) {
	records, err := CrashData([]*tabular.Row{crashRow()}, testDocument())
	if err != nil {
		t.Fatalf("CrashData вернул ошибку: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("CrashData вернул %d записей, ожидалась 1", len(records))
	}

	rec := records[0]
	if rec.Year != 2023 || rec.Month != 4 || rec.Day != 27 || rec.Hour != 14 {
		t.Errorf("дата/время = %d/%d/%d %d", rec.Year, rec.Month, rec.Day, rec.Hour)
	}
	if rec.Weekend != model.WeekendWeekend {
		t.Errorf("Weekend = %s, ожидалось WEEKEND", rec.Weekend)
	}
	if rec.CollisionType != "Rear-end" {
		t.Errorf("CollisionType = %q, ожидалось Rear-end", rec.CollisionType)
	}
	if rec.CollisionTypeHash == nil {
		t.Error("CollisionTypeHash = nil, ожидался отпечаток")
	}
	if rec.InjuryType != model.InjuryFatal {
		t.Errorf("InjuryType = %s, ожидалось FATAL", rec.InjuryType)
	}
	if rec.Latitude == nil || *rec.Latitude != 37.7749 {
		t.Errorf("Latitude = %v, ожидалось 37.7749", rec.Latitude)
	}
	if rec.DocumentID != 42 {
		t.Errorf("DocumentID = %d, ожидалось 42", rec.DocumentID)
	}
}

func TestCrashDataWithoutInjuryType(t *testing.T) {
	// Файлы о ДТП без колонки injury_type встречаются; тип травмы
	// остаётся незаполненным, строка не отбрасывается.
	row := tabular.NewRow()
	row.Set("year", "2023")
	row.Set("month", "4")
	row.Set("day", "27")
	row.Set("hour", "14")
	row.Set("weekend", "weekend")
	row.Set("collision_type", "Rear-end")
	row.Set("primary_factor", "Distracted driving")
	row.Set("reported_location", "123 Main Street")
	row.Set("latitude", "37.7749")
	row.Set("longitude", "-122.4194")

	records, err := CrashData([]*tabular.Row{row}, testDocument())
	if err != nil {
		t.Fatalf("CrashData вернул ошибку: %v", err)
	}
	rec := records[0]
	if rec.InjuryType != "" {
		t.Errorf("InjuryType = %q, ожидалось пустое значение", rec.InjuryType)
	}
	if rec.CollisionType != "Rear-end" {
		t.Errorf("CollisionType = %q, ожидалось Rear-end", rec.CollisionType)
	}
	if rec.CollisionTypeHash == nil {
		t.Error("CollisionTypeHash = nil, ожидался отпечаток")
	}
	if rec.DocumentID != 42 {
		t.Errorf("DocumentID = %d, ожидалось 42", rec.DocumentID)
	}
}

func TestCrashDataBlankCoordinates(t *testing.T) {
	row := crashRow()
	row.Set("latitude", "")
	row.Set("longitude", "")

	records, err := CrashData([]*tabular.Row{row}, testDocument())
	if err != nil {
		t.Fatalf("CrashData вернул ошибку: %v", err)
	}
	if records[0].Latitude != nil {
		t.Errorf("Latitude = %v, ожидался nil для пустого значения", *records[0].Latitude)
	}
	if records[0].Longitude != nil {
		t.Errorf("Longitude = %v, ожидался nil для пустого значения", *records[0].Longitude)
	}
}

func TestCrashDataInvalidEnum(t *testing.T) {
	row := crashRow()
	row.Set("injury_type", "scratched")

	_, err := CrashData([]*tabular.Row{row}, testDocument())
	var enumErr *EnumError
	if !errors.As(err, &enumErr) {
		t.Fatalf("ожидался EnumError, получено: %v", err)
	}
}

func TestTraffic(t *testing.T) {
	row := tabular.NewRow()
	row.Set("county", "Marion")
	row.Set("community", "Indianapolis")
	row.Set("on", "Meridian St")
	row.Set("from", "10th St")
	row.Set("to", "11th St")
	row.Set("approach", "North")
	row.Set("at", "Intersection")
	row.Set("dir", "1-way")
	row.Set("directions", "Northbound")
	row.Set("latitude", "39.78")
	row.Set("longitude", "")

	records, err := Traffic([]*tabular.Row{row}, testDocument())
	if err != nil {
		t.Fatalf("Traffic вернул ошибку: %v", err)
	}
	rec := records[0]
	if rec.Direction != model.DirectionOneWay {
		t.Errorf("Direction = %s, ожидалось ONE_WAY", rec.Direction)
	}
	if rec.County != "Marion" || rec.CountyHash == nil {
		t.Errorf("County = %q, hash = %v", rec.County, rec.CountyHash)
	}
	if rec.OnRoad != "Meridian St" {
		t.Errorf("OnRoad = %q", rec.OnRoad)
	}
	if rec.Longitude != nil {
		t.Error("Longitude должен быть nil для пустого значения")
	}
	if rec.DocumentID != 42 {
		t.Errorf("DocumentID = %d, ожидалось 42", rec.DocumentID)
	}
}

func longRow(date, name, value string) *tabular.Row {
	row := tabular.NewRow()
	row.Set("full_date", date)
	row.Set("column_name", name)
	row.Set("column_value", value)
	return row
}

func TestPedestrianParentsDeduplicate(t *testing.T) {
	rows := []*tabular.Row{
		longRow("Thu, Apr 27, 2023", "Monon Trail", "120"),
		longRow("Thu, Apr 27, 2023", "Fall Creek Trail", "45"),
		longRow("Fri, Apr 28, 2023", "Monon Trail", "130"),
	}

	parents := PedestrianParents(rows, testDocument())
	if len(parents) != 2 {
		t.Fatalf("PedestrianParents вернул %d записей, ожидалось 2", len(parents))
	}
	if parents[0].Year != 2023 || parents[0].Month != 4 || parents[0].Day != 27 {
		t.Errorf("первая запись: %d/%d/%d", parents[0].Year, parents[0].Month, parents[0].Day)
	}
	if parents[0].WeekDay != model.Thursday {
		t.Errorf("WeekDay = %s, ожидалось THURSDAY", parents[0].WeekDay)
	}
	if parents[1].WeekDay != model.Friday {
		t.Errorf("WeekDay = %s, ожидалось FRIDAY", parents[1].WeekDay)
	}
}

func TestPedestrianParentsSkipUnparseable(t *testing.T) {
	rows := []*tabular.Row{
		longRow("какая-то дата", "Monon Trail", "120"),
		longRow("Thu, Apr 27, 2023", "Monon Trail", "130"),
	}

	parents := PedestrianParents(rows, testDocument())
	if len(parents) != 1 {
		t.Fatalf("PedestrianParents вернул %d записей, ожидалась 1", len(parents))
	}
}

func TestPedestrianValues(t *testing.T) {
	rows := []*tabular.Row{
		longRow("Thu, Apr 27, 2023", "Monon Trail", "120"),
		longRow("неразбираемая", "Monon Trail", "99"),
	}

	values := PedestrianValues(rows)
	if len(values) != 1 {
		t.Fatalf("PedestrianValues вернул %d значений, ожидалось 1", len(values))
	}
	v := values[0]
	if v.Year != 2023 || v.Month != 4 || v.Day != 27 || v.WeekDay != model.Thursday {
		t.Errorf("кортеж даты = %d/%d/%d %s", v.Year, v.Month, v.Day, v.WeekDay)
	}
	if v.Value.ColumnName != "Monon Trail" || v.Value.ColumnNameHash == nil {
		t.Errorf("ColumnName = %q, hash = %v", v.Value.ColumnName, v.Value.ColumnNameHash)
	}
	if v.Value.ColumnValue != "120" || v.Value.ColumnValueHash == nil {
		t.Errorf("ColumnValue = %q, hash = %v", v.Value.ColumnValue, v.Value.ColumnValueHash)
	}
}

func TestPedestrianDateFieldFallback(t *testing.T) {
	row := tabular.NewRow()
	row.Set("date", "Thu, Apr 27, 2023")
	row.Set("column_name", "Monon Trail")
	row.Set("column_value", "120")

	values := PedestrianValues([]*tabular.Row{row})
	if len(values) != 1 {
		t.Fatalf("PedestrianValues вернул %d значений, ожидалась 1", len(values))
	}
	if values[0].Day != 27 {
		t.Errorf("Day = %d, ожидалось 27", values[0].Day)
	}
}
