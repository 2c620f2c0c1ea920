package model

// CrashData — нормализованная запись отчёта о ДТП.
// Текстовые поля сопровождаются 64-битными хеш-отпечатками
// для индексированного поиска по равенству.
type CrashData struct {
	ID                   int64      `json:"id"`
	Year                 int        `json:"year"`
	Month                int        `json:"month"`
	Day                  int        `json:"day"`
	Hour                 int        `json:"hour"`
	Weekend              Weekend    `json:"weekend,omitempty"`
	CollisionType        string     `json:"collision_type"`
	CollisionTypeHash    *int64     `json:"collision_type_hash,omitempty"`
	InjuryType           InjuryType `json:"injury_type"`
	PrimaryFactor        string     `json:"primary_factor,omitempty"`
	PrimaryFactorHash    *int64     `json:"primary_factor_hash,omitempty"`
	ReportedLocation     string     `json:"reported_location,omitempty"`
	ReportedLocationHash *int64     `json:"reported_location_hash,omitempty"`
	Latitude             *float64   `json:"latitude,omitempty"`
	Longitude            *float64   `json:"longitude,omitempty"`
	DocumentID           int64      `json:"document_id"`
}

// Traffic — нормализованная запись наблюдения интенсивности движения.
type Traffic struct {
	ID             int64     `json:"id"`
	County         string    `json:"county"`
	CountyHash     *int64    `json:"county_hash,omitempty"`
	Community      string    `json:"community"`
	CommunityHash  *int64    `json:"community_hash,omitempty"`
	OnRoad         string    `json:"on_road"`
	OnRoadHash     *int64    `json:"on_road_hash,omitempty"`
	FromRoad       string    `json:"from_road,omitempty"`
	FromRoadHash   *int64    `json:"from_road_hash,omitempty"`
	ToRoad         string    `json:"to_road,omitempty"`
	ToRoadHash     *int64    `json:"to_road_hash,omitempty"`
	Approach       string    `json:"approach,omitempty"`
	ApproachHash   *int64    `json:"approach_hash,omitempty"`
	At             string    `json:"at,omitempty"`
	AtHash         *int64    `json:"at_hash,omitempty"`
	Direction      Direction `json:"direction"`
	Directions     string    `json:"directions,omitempty"`
	DirectionsHash *int64    `json:"directions_hash,omitempty"`
	Latitude       *float64  `json:"latitude,omitempty"`
	Longitude      *float64  `json:"longitude,omitempty"`
	DocumentID     int64     `json:"document_id"`
}

// PedestrianBicyclist — родительская запись одного дня наблюдений
// пешеходов и велосипедистов.
type PedestrianBicyclist struct {
	ID         int64                       `json:"id"`
	Year       int                         `json:"year"`
	Month      int                         `json:"month"`
	Day        int                         `json:"day"`
	WeekDay    WeekDay                     `json:"week_day"`
	DocumentID int64                       `json:"document_id"`
	Values     []PedestrianBicyclistValues `json:"values,omitempty"`
}

// PedestrianBicyclistValues — одно значение счётчика,
// привязанное к родительской записи дня.
type PedestrianBicyclistValues struct {
	ID                    int64  `json:"id"`
	ColumnName            string `json:"column_name"`
	ColumnNameHash        *int64 `json:"column_name_hash,omitempty"`
	ColumnValue           string `json:"column_value"`
	ColumnValueHash       *int64 `json:"column_value_hash,omitempty"`
	PedestrianBicyclistID int64  `json:"pedestrian_bicyclist_id"`
}

// CrashDataFilter — параметры фильтрации списка записей о ДТП.
type CrashDataFilter struct {
	// Фильтр по году
	Year *int
	// Фильтр по типу травмы
	InjuryType string
	// Фильтр по документу
	DocumentID *int64
	Limit      int
	Offset     int
}

// TrafficFilter — параметры фильтрации списка записей о движении.
type TrafficFilter struct {
	// Фильтр по округу (точное совпадение очищенного значения)
	County string
	// Фильтр по направлению
	Direction string
	// Фильтр по документу
	DocumentID *int64
	Limit      int
	Offset     int
}

// PedestrianBicyclistFilter — параметры фильтрации списка записей
// о пешеходах и велосипедистах.
type PedestrianBicyclistFilter struct {
	// Фильтр по году
	Year *int
	// Фильтр по месяцу
	Month *int
	// Фильтр по документу
	DocumentID *int64
	Limit      int
	Offset     int
}
