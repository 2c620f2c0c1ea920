// Пакет handlers — HTTP-обработчики API Roadstat.
package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	apierrors "github.com/bigkaa/goroadstat/internal/api/errors"
	"github.com/bigkaa/goroadstat/internal/pipeline/cleaning"
	"github.com/bigkaa/goroadstat/internal/pipeline/convert"
	"github.com/bigkaa/goroadstat/internal/pipeline/tabular"
	"github.com/bigkaa/goroadstat/internal/service"
)

// Handler — HTTP-обработчики API.
type Handler struct {
	uploads       *service.UploadService
	data          *service.DataService
	maxUploadSize int64
	logger        *slog.Logger
}

// NewHandler создаёт Handler.
func NewHandler(uploads *service.UploadService, data *service.DataService, maxUploadSize int64, logger *slog.Logger) *Handler {
	return &Handler{
		uploads:       uploads,
		data:          data,
		maxUploadSize: maxUploadSize,
		logger:        logger.With(slog.String("component", "handlers")),
	}
}

// writeJSON записывает JSON-ответ со статус-кодом.
func (h *Handler) writeJSON(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("Ошибка записи JSON-ответа", "error", err)
	}
}

// writeServiceError транслирует типизированные ошибки конвейера
// и сервисного слоя в HTTP-статусы.
func (h *Handler) writeServiceError(w http.ResponseWriter, err error) {
	var (
		insufficientErr *cleaning.InsufficientDataError
		headerErr       *tabular.MalformedHeaderError
		readErr         *tabular.FileReadError
		dateErr         *convert.DateParseError
		enumErr         *convert.EnumError
	)

	switch {
	case errors.Is(err, service.ErrNotFound):
		apierrors.NotFound(w, err.Error())
	case errors.Is(err, service.ErrUnsupportedDocumentType):
		apierrors.UnsupportedDocument(w, err.Error())
	case errors.Is(err, service.ErrValidation):
		apierrors.ValidationError(w, err.Error())
	case errors.As(err, &insufficientErr):
		apierrors.InsufficientData(w, err.Error())
	case errors.As(err, &headerErr), errors.As(err, &readErr),
		errors.As(err, &dateErr), errors.As(err, &enumErr):
		apierrors.MalformedFile(w, err.Error())
	default:
		h.logger.Error("Внутренняя ошибка", "error", err)
		apierrors.InternalError(w, "внутренняя ошибка сервера")
	}
}

// pathID извлекает числовой идентификатор из параметра пути {id}.
func pathID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

// queryInt разбирает целочисленный параметр запроса; отсутствие даёт 0.
func queryInt(r *http.Request, name string) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}

// queryIntPtr разбирает опциональный целочисленный параметр запроса.
func queryIntPtr(r *http.Request, name string) (*int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

// queryInt64Ptr разбирает опциональный 64-битный параметр запроса.
func queryInt64Ptr(r *http.Request, name string) (*int64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, err
	}
	return &n, nil
}
