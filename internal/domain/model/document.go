// Пакет model — доменные типы Roadstat.
package model

import (
	"time"

	"github.com/google/uuid"
)

// Document — метаданные одной загрузки CSV-файла.
// Создаётся один раз и далее не изменяется.
type Document struct {
	ID            int64     `json:"id"`
	UID           uuid.UUID `json:"uid"`
	UploadedBy    string    `json:"uploaded_by"`
	UploadedAt    time.Time `json:"uploaded_at"`
	ProcessedRows int       `json:"processed_rows"`
}

// DocumentFilter — параметры фильтрации списка документов.
type DocumentFilter struct {
	// Фильтр по имени загрузившего пользователя (точное совпадение)
	UploadedBy string
	// Максимальное количество записей
	Limit int
	// Смещение
	Offset int
}

// UploadReport — итог обработки загруженного документа.
// ProcessedLines — число строк, прочитанных из файла,
// RecordedLines — число записанных записей верхнего уровня.
type UploadReport struct {
	ProcessedLines int `json:"processedLines"`
	RecordedLines  int `json:"recordedLines"`
}
