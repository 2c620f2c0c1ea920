package model

// DocumentType — вид загружаемого документа.
type DocumentType string

const (
	DocumentTypePedestrian DocumentType = "pedestrian_and_bicyclist"
	DocumentTypeTraffic    DocumentType = "traffic"
	DocumentTypeCrash      DocumentType = "crash"
)

// Weekend — признак выходного дня в отчёте о ДТП.
type Weekend string

const (
	WeekendWeekend Weekend = "WEEKEND"
	WeekendWeekday Weekend = "WEEKDAY"
)

// WeekendValues возвращает список допустимых значений Weekend.
func WeekendValues() []string {
	return []string{string(WeekendWeekend), string(WeekendWeekday)}
}

// InjuryType — тип травмы в отчёте о ДТП.
type InjuryType string

const (
	InjuryFatal            InjuryType = "FATAL"
	InjuryIncapacitating   InjuryType = "INCAPACITATING"
	InjuryNonIncapacitating InjuryType = "NON_INCAPACITATING"
	InjuryNoInjuryUnknown  InjuryType = "NO_INJURY_UNKNOWN"
)

// InjuryTypeValues возвращает список допустимых значений InjuryType.
func InjuryTypeValues() []string {
	return []string{
		string(InjuryFatal),
		string(InjuryIncapacitating),
		string(InjuryNonIncapacitating),
		string(InjuryNoInjuryUnknown),
	}
}

// Direction — направление движения в записи о трафике.
type Direction string

const (
	DirectionOneWay Direction = "ONE_WAY"
	DirectionTwoWay Direction = "TWO_WAY"
)

// DirectionValues возвращает список допустимых значений Direction.
func DirectionValues() []string {
	return []string{string(DirectionOneWay), string(DirectionTwoWay)}
}

// WeekDay — день недели родительской записи пешеходов и велосипедистов.
type WeekDay string

const (
	Monday    WeekDay = "MONDAY"
	Tuesday   WeekDay = "TUESDAY"
	Wednesday WeekDay = "WEDNESDAY"
	Thursday  WeekDay = "THURSDAY"
	Friday    WeekDay = "FRIDAY"
	Saturday  WeekDay = "SATURDAY"
	Sunday    WeekDay = "SUNDAY"
)

// WeekDayValues возвращает список допустимых значений WeekDay.
func WeekDayValues() []string {
	return []string{
		string(Monday), string(Tuesday), string(Wednesday),
		string(Thursday), string(Friday), string(Saturday), string(Sunday),
	}
}
