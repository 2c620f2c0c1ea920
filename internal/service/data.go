// data.go — чтение и удаление сохранённых данных.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/bigkaa/goroadstat/internal/domain/model"
	"github.com/bigkaa/goroadstat/internal/repository"
)

// DataService — сервис доступа к сохранённым документам и записям.
type DataService struct {
	documents  *repository.DocumentRepository
	crash      *repository.CrashDataRepository
	traffic    *repository.TrafficRepository
	pedestrian *repository.PedestrianRepository
	logger     *slog.Logger
}

// NewDataService создаёт DataService.
func NewDataService(
	documents *repository.DocumentRepository,
	crash *repository.CrashDataRepository,
	traffic *repository.TrafficRepository,
	pedestrian *repository.PedestrianRepository,
	logger *slog.Logger,
) *DataService {
	return &DataService{
		documents:  documents,
		crash:      crash,
		traffic:    traffic,
		pedestrian: pedestrian,
		logger:     logger.With(slog.String("component", "data")),
	}
}

// GetDocument возвращает документ по идентификатору.
func (s *DataService) GetDocument(ctx context.Context, id int64) (*model.Document, error) {
	doc, err := s.documents.FindByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("%w: документ %d", ErrNotFound, id)
	}
	return doc, err
}

// ListDocuments возвращает документы по фильтру.
func (s *DataService) ListDocuments(ctx context.Context, filter model.DocumentFilter) ([]model.Document, error) {
	return s.documents.List(ctx, filter)
}

// DeleteDocument удаляет документ со всеми связанными записями.
func (s *DataService) DeleteDocument(ctx context.Context, id int64) error {
	err := s.documents.Delete(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("%w: документ %d", ErrNotFound, id)
	}
	if err == nil {
		s.logger.Info("Документ удалён", "id", id)
	}
	return err
}

// ListCrashData возвращает записи отчётов о ДТП по фильтру.
func (s *DataService) ListCrashData(ctx context.Context, filter model.CrashDataFilter) ([]model.CrashData, error) {
	return s.crash.List(ctx, filter)
}

// DeleteCrashData удаляет запись отчёта о ДТП.
func (s *DataService) DeleteCrashData(ctx context.Context, id int64) error {
	err := s.crash.Delete(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("%w: запись о ДТП %d", ErrNotFound, id)
	}
	return err
}

// DeleteCrashDataByDocument удаляет все записи о ДТП документа
// и возвращает количество удалённых.
func (s *DataService) DeleteCrashDataByDocument(ctx context.Context, documentID int64) (int64, error) {
	deleted, err := s.crash.DeleteByDocumentID(ctx, documentID)
	if err == nil && deleted > 0 {
		s.logger.Info("Удалены записи о ДТП документа", "document_id", documentID, "deleted", deleted)
	}
	return deleted, err
}

// ListTraffic возвращает записи наблюдений движения по фильтру.
func (s *DataService) ListTraffic(ctx context.Context, filter model.TrafficFilter) ([]model.Traffic, error) {
	return s.traffic.List(ctx, filter)
}

// DeleteTraffic удаляет запись наблюдения движения.
func (s *DataService) DeleteTraffic(ctx context.Context, id int64) error {
	err := s.traffic.Delete(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("%w: запись о движении %d", ErrNotFound, id)
	}
	return err
}

// DeleteTrafficByDocument удаляет все записи о движении документа
// и возвращает количество удалённых.
func (s *DataService) DeleteTrafficByDocument(ctx context.Context, documentID int64) (int64, error) {
	deleted, err := s.traffic.DeleteByDocumentID(ctx, documentID)
	if err == nil && deleted > 0 {
		s.logger.Info("Удалены записи о движении документа", "document_id", documentID, "deleted", deleted)
	}
	return deleted, err
}

// ListPedestrian возвращает родительские записи наблюдений
// пешеходов и велосипедистов вместе со значениями счётчиков.
func (s *DataService) ListPedestrian(ctx context.Context, filter model.PedestrianBicyclistFilter) ([]model.PedestrianBicyclist, error) {
	return s.pedestrian.List(ctx, filter)
}

// DeletePedestrian удаляет родительскую запись вместе со значениями.
func (s *DataService) DeletePedestrian(ctx context.Context, id int64) error {
	err := s.pedestrian.Delete(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("%w: запись о пешеходах %d", ErrNotFound, id)
	}
	return err
}

// DeletePedestrianByDocument удаляет все родительские записи документа
// вместе со значениями и возвращает количество удалённых родительских записей.
func (s *DataService) DeletePedestrianByDocument(ctx context.Context, documentID int64) (int64, error) {
	deleted, err := s.pedestrian.DeleteByDocumentID(ctx, documentID)
	if err == nil && deleted > 0 {
		s.logger.Info("Удалены записи о пешеходах документа", "document_id", documentID, "deleted", deleted)
	}
	return deleted, err
}
