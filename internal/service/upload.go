// upload.go — диспетчер обработки загружаемых CSV-документов.
//
// Обработка строго синхронна: вызывающая сторона блокируется от чтения
// файла до финальной записи. Конвейер: разбор CSV → нормализация
// заголовков (для пешеходов — преобразование wide → long) → очистка →
// создание документа → преобразование и сохранение записей по виду
// документа → отчёт о загрузке.
package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/bigkaa/goroadstat/internal/domain/model"
	"github.com/bigkaa/goroadstat/internal/pipeline/cleaning"
	"github.com/bigkaa/goroadstat/internal/pipeline/convert"
	"github.com/bigkaa/goroadstat/internal/pipeline/tabular"
	"github.com/bigkaa/goroadstat/internal/repository"
)

// saveStrategy преобразует очищенные строки в записи своего вида
// и сохраняет их, возвращая количество записей верхнего уровня.
type saveStrategy func(ctx context.Context, rows []*tabular.Row, doc *model.Document) (int, error)

// UploadService — сервис загрузки и обработки документов.
type UploadService struct {
	documents  *repository.DocumentRepository
	crash      *repository.CrashDataRepository
	traffic    *repository.TrafficRepository
	pedestrian *repository.PedestrianRepository
	minRows    int
	logger     *slog.Logger
	strategies map[model.DocumentType]saveStrategy
}

// NewUploadService создаёт UploadService. Реестр стратегий
// вид документа → конвертер+сохранение собирается один раз.
func NewUploadService(
	documents *repository.DocumentRepository,
	crash *repository.CrashDataRepository,
	traffic *repository.TrafficRepository,
	pedestrian *repository.PedestrianRepository,
	minRows int,
	logger *slog.Logger,
) *UploadService {
	s := &UploadService{
		documents:  documents,
		crash:      crash,
		traffic:    traffic,
		pedestrian: pedestrian,
		minRows:    minRows,
		logger:     logger.With(slog.String("component", "upload")),
	}
	s.strategies = map[model.DocumentType]saveStrategy{
		model.DocumentTypeCrash:      s.saveCrash,
		model.DocumentTypeTraffic:    s.saveTraffic,
		model.DocumentTypePedestrian: s.savePedestrian,
	}
	return s
}

// DetectDocumentType определяет вид документа по имени файла.
// Подстроки проверяются в фиксированном порядке приоритета;
// отсутствие совпадения — ошибка, без анализа содержимого.
func DetectDocumentType(fileName string) (model.DocumentType, error) {
	name := strings.ToLower(fileName)
	switch {
	case strings.Contains(name, "pedestrian"):
		return model.DocumentTypePedestrian, nil
	case strings.Contains(name, "traffic"):
		return model.DocumentTypeTraffic, nil
	case strings.Contains(name, "crash"):
		return model.DocumentTypeCrash, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedDocumentType, fileName)
	}
}

// Process обрабатывает загруженный файл и возвращает отчёт:
// ProcessedLines — строки, прочитанные из файла, RecordedLines —
// записанные записи верхнего уровня.
func (s *UploadService) Process(ctx context.Context, fileName string, file io.Reader, uploadedBy string) (*model.UploadReport, error) {
	docType, err := DetectDocumentType(fileName)
	if err != nil {
		documentsProcessed.WithLabelValues("unknown", "error").Inc()
		return nil, err
	}

	report, err := s.process(ctx, docType, file, uploadedBy)
	if err != nil {
		documentsProcessed.WithLabelValues(string(docType), "error").Inc()
		return nil, err
	}

	documentsProcessed.WithLabelValues(string(docType), "success").Inc()
	recordsRecorded.WithLabelValues(string(docType)).Add(float64(report.RecordedLines))

	s.logger.Info("Документ обработан",
		"file", fileName,
		"type", docType,
		"processed_lines", report.ProcessedLines,
		"recorded_lines", report.RecordedLines,
	)
	return report, nil
}

func (s *UploadService) process(ctx context.Context, docType model.DocumentType, file io.Reader, uploadedBy string) (*model.UploadReport, error) {
	rawRows, err := tabular.Parse(file)
	if err != nil {
		return nil, err
	}

	var rows []*tabular.Row
	if docType == model.DocumentTypePedestrian {
		rows = tabular.ReshapePedestrian(rawRows)
	} else {
		rows = tabular.NormalizeRows(rawRows)
	}

	cleaned, err := cleaning.Clean(rows, s.minRows)
	if err != nil {
		return nil, err
	}

	doc, err := s.documents.Save(ctx, &model.Document{
		UID:           uuid.New(),
		UploadedBy:    uploadedBy,
		UploadedAt:    time.Now().UTC(),
		ProcessedRows: len(rawRows),
	})
	if err != nil {
		return nil, err
	}

	strategy := s.strategies[docType]
	recorded, err := strategy(ctx, cleaned, doc)
	if err != nil {
		return nil, err
	}

	return &model.UploadReport{
		ProcessedLines: len(rawRows),
		RecordedLines:  recorded,
	}, nil
}

// saveCrash преобразует и сохраняет записи отчётов о ДТП.
func (s *UploadService) saveCrash(ctx context.Context, rows []*tabular.Row, doc *model.Document) (int, error) {
	records, err := convert.CrashData(rows, doc)
	if err != nil {
		return 0, err
	}
	if err := s.crash.SaveAll(ctx, records); err != nil {
		return 0, err
	}
	return len(records), nil
}

// saveTraffic преобразует и сохраняет записи наблюдений движения.
func (s *UploadService) saveTraffic(ctx context.Context, rows []*tabular.Row, doc *model.Document) (int, error) {
	records, err := convert.Traffic(rows, doc)
	if err != nil {
		return 0, err
	}
	if err := s.traffic.SaveAll(ctx, records); err != nil {
		return 0, err
	}
	return len(records), nil
}

// savePedestrian сохраняет родительские записи дней наблюдений,
// затем привязывает значения счётчиков к последней созданной записи
// с совпадающим кортежем даты. Возвращает количество родительских
// записей — число различных дней наблюдений, не число значений.
func (s *UploadService) savePedestrian(ctx context.Context, rows []*tabular.Row, doc *model.Document) (int, error) {
	parents := convert.PedestrianParents(rows, doc)
	if err := s.pedestrian.SaveAll(ctx, parents); err != nil {
		return 0, err
	}

	valueRows := convert.PedestrianValues(rows)
	values := make([]model.PedestrianBicyclistValues, 0, len(valueRows))
	for _, vr := range valueRows {
		parent, err := s.pedestrian.FindLatestByDate(ctx, vr.Year, vr.Month, vr.Day, vr.WeekDay)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				s.logger.Warn("Родительская запись для значения не найдена",
					"year", vr.Year, "month", vr.Month, "day", vr.Day, "week_day", vr.WeekDay)
				continue
			}
			return 0, err
		}
		v := vr.Value
		v.PedestrianBicyclistID = parent.ID
		values = append(values, v)
	}

	if err := s.pedestrian.SaveAllValues(ctx, values); err != nil {
		return 0, err
	}
	return len(parents), nil
}
