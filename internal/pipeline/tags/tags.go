// Пакет tags — статический реестр семантических тегов колонок.
//
// Каждой канонической колонке поддерживаемых видов документов соответствует
// набор тегов, управляющих правилами очистки и преобразования. Неизвестные
// колонки получают пустой набор и позже удаляются из данных.
package tags

import "log/slog"

// Tag — семантический тег колонки.
type Tag string

const (
	// Obligatory — строка без значения в этой колонке отбрасывается
	Obligatory Tag = "OBLIGATORY"
	// String — текстовая колонка, значение приводится к Prettify-виду
	String Tag = "STRING"
	// Int — значение должно быть целым числом
	Int Tag = "INT"
	// Float — значение — число с плавающей точкой, пустое допускается
	Float Tag = "FLOAT"
	// Date — колонка содержит дату
	Date Tag = "DATE"
	// FullDate — колонка содержит полную дату со временем
	FullDate Tag = "FULL_DATE"
	// Time — значение — время суток в диапазоне [0, 2400]
	Time Tag = "TIME"
)

// Set — набор тегов колонки.
type Set map[Tag]struct{}

// Has сообщает, входит ли тег в набор.
func (s Set) Has(t Tag) bool {
	_, ok := s[t]
	return ok
}

func newSet(tags ...Tag) Set {
	s := make(Set, len(tags))
	for _, t := range tags {
		s[t] = struct{}{}
	}
	return s
}

// registry — статический реестр: каноническое имя колонки → набор тегов.
// Покрывает все имена, которые нормализатор заголовков порождает
// для поддерживаемых видов документов.
var registry = map[string]Set{
	// Отчёты о ДТП
	"year":              newSet(Int, Obligatory),
	"month":             newSet(Int, Obligatory),
	"day":               newSet(Int, Obligatory),
	"hour":              newSet(Int, Time),
	"weekend":           newSet(String, Obligatory),
	"collision_type":    newSet(String),
	"collision_date":    newSet(String, Date),
	"collision_time":    newSet(String, Time),
	"injury_type":       newSet(String),
	"primary_factor":    newSet(String, Obligatory),
	"reported_location": newSet(String),
	"latitude":          newSet(Float),
	"longitude":         newSet(Float),

	// Наблюдения интенсивности движения
	"county":     newSet(String),
	"community":  newSet(String),
	"on":         newSet(String, Obligatory),
	"from":       newSet(String, Obligatory),
	"to":         newSet(String, Obligatory),
	"approach":   newSet(String),
	"at":         newSet(String),
	"dir":        newSet(String, Obligatory),
	"directions": newSet(String),

	// Пешеходы и велосипедисты (после преобразования wide → long)
	"full_date":    newSet(FullDate),
	"date":         newSet(Date),
	"column_name":  newSet(String),
	"column_value": newSet(Obligatory, Int),
	"count":        newSet(Int, Obligatory),
}

// Resolve возвращает набор тегов канонического имени колонки.
// Неизвестное имя даёт пустой набор и пишется в лог, это не ошибка.
func Resolve(columnName string) Set {
	s, ok := registry[columnName]
	if !ok {
		slog.Debug("Колонка не найдена в реестре тегов, будет удалена", "column", columnName)
		return Set{}
	}
	return s
}

// ResolveAll возвращает карту имя → набор тегов для всех имён,
// известных реестру; неизвестные имена в карту не попадают.
func ResolveAll(columnNames []string) map[string]Set {
	m := make(map[string]Set, len(columnNames))
	for _, name := range columnNames {
		if s := Resolve(name); len(s) > 0 {
			m[name] = s
		}
	}
	return m
}
