// Пакет tabular — разбор CSV в упорядоченные строки-карты,
// нормализация заголовков и преобразование wide → long
// для данных пешеходов и велосипедистов.
package tabular

// Row — упорядоченное отображение каноническое имя колонки → значение.
// Порядок вставки соответствует порядку колонок в исходном файле.
type Row struct {
	cols []string
	vals map[string]string
}

// NewRow создаёт пустую строку.
func NewRow() *Row {
	return &Row{vals: make(map[string]string)}
}

// Set задаёт значение колонки, сохраняя порядок первой вставки.
func (r *Row) Set(col, val string) {
	if _, ok := r.vals[col]; !ok {
		r.cols = append(r.cols, col)
	}
	r.vals[col] = val
}

// Get возвращает значение колонки и признак её наличия.
func (r *Row) Get(col string) (string, bool) {
	v, ok := r.vals[col]
	return v, ok
}

// Value возвращает значение колонки или пустую строку.
func (r *Row) Value(col string) string {
	return r.vals[col]
}

// Has сообщает о наличии колонки.
func (r *Row) Has(col string) bool {
	_, ok := r.vals[col]
	return ok
}

// Columns возвращает имена колонок в порядке вставки.
func (r *Row) Columns() []string {
	return r.cols
}

// Len возвращает количество колонок.
func (r *Row) Len() int {
	return len(r.cols)
}
