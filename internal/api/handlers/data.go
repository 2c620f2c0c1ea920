// data.go — обработчики чтения и удаления нормализованных записей.
package handlers

import (
	"net/http"

	apierrors "github.com/bigkaa/goroadstat/internal/api/errors"
	"github.com/bigkaa/goroadstat/internal/domain/model"
)

// ListCrashData обрабатывает GET /api/v1/crash-data.
// Параметры запроса: year, injury_type, document_id, limit, offset.
func (h *Handler) ListCrashData(w http.ResponseWriter, r *http.Request) {
	year, err := queryIntPtr(r, "year")
	if err != nil {
		apierrors.ValidationError(w, "некорректный параметр year")
		return
	}
	documentID, err := queryInt64Ptr(r, "document_id")
	if err != nil {
		apierrors.ValidationError(w, "некорректный параметр document_id")
		return
	}
	limit, err := queryInt(r, "limit")
	if err != nil {
		apierrors.ValidationError(w, "некорректный параметр limit")
		return
	}
	offset, err := queryInt(r, "offset")
	if err != nil {
		apierrors.ValidationError(w, "некорректный параметр offset")
		return
	}

	records, err := h.data.ListCrashData(r.Context(), model.CrashDataFilter{
		Year:       year,
		InjuryType: r.URL.Query().Get("injury_type"),
		DocumentID: documentID,
		Limit:      limit,
		Offset:     offset,
	})
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	if records == nil {
		records = []model.CrashData{}
	}
	h.writeJSON(w, http.StatusOK, records)
}

// DeleteCrashData обрабатывает DELETE /api/v1/crash-data/{id}.
func (h *Handler) DeleteCrashData(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		apierrors.ValidationError(w, "некорректный идентификатор записи")
		return
	}
	if err := h.data.DeleteCrashData(r.Context(), id); err != nil {
		h.writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// DeleteCrashDataByDocument обрабатывает DELETE /api/v1/crash-data/document/{id}.
// Удаляет все записи о ДТП указанного документа и возвращает их количество.
func (h *Handler) DeleteCrashDataByDocument(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		apierrors.ValidationError(w, "некорректный идентификатор документа")
		return
	}
	deleted, err := h.data.DeleteCrashDataByDocument(r.Context(), id)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, deletedResponse{Deleted: deleted})
}

// ListTraffic обрабатывает GET /api/v1/traffic.
// Параметры запроса: county, direction, document_id, limit, offset.
func (h *Handler) ListTraffic(w http.ResponseWriter, r *http.Request) {
	documentID, err := queryInt64Ptr(r, "document_id")
	if err != nil {
		apierrors.ValidationError(w, "некорректный параметр document_id")
		return
	}
	limit, err := queryInt(r, "limit")
	if err != nil {
		apierrors.ValidationError(w, "некорректный параметр limit")
		return
	}
	offset, err := queryInt(r, "offset")
	if err != nil {
		apierrors.ValidationError(w, "некорректный параметр offset")
		return
	}

	records, err := h.data.ListTraffic(r.Context(), model.TrafficFilter{
		County:     r.URL.Query().Get("county"),
		Direction:  r.URL.Query().Get("direction"),
		DocumentID: documentID,
		Limit:      limit,
		Offset:     offset,
	})
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	if records == nil {
		records = []model.Traffic{}
	}
	h.writeJSON(w, http.StatusOK, records)
}

// DeleteTraffic обрабатывает DELETE /api/v1/traffic/{id}.
func (h *Handler) DeleteTraffic(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		apierrors.ValidationError(w, "некорректный идентификатор записи")
		return
	}
	if err := h.data.DeleteTraffic(r.Context(), id); err != nil {
		h.writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// DeleteTrafficByDocument обрабатывает DELETE /api/v1/traffic/document/{id}.
func (h *Handler) DeleteTrafficByDocument(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		apierrors.ValidationError(w, "некорректный идентификатор документа")
		return
	}
	deleted, err := h.data.DeleteTrafficByDocument(r.Context(), id)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, deletedResponse{Deleted: deleted})
}

// ListPedestrian обрабатывает GET /api/v1/pedestrian-and-bicyclist.
// Параметры запроса: year, month, document_id, limit, offset.
// Родительские записи возвращаются вместе со значениями счётчиков.
func (h *Handler) ListPedestrian(w http.ResponseWriter, r *http.Request) {
	year, err := queryIntPtr(r, "year")
	if err != nil {
		apierrors.ValidationError(w, "некорректный параметр year")
		return
	}
	month, err := queryIntPtr(r, "month")
	if err != nil {
		apierrors.ValidationError(w, "некорректный параметр month")
		return
	}
	documentID, err := queryInt64Ptr(r, "document_id")
	if err != nil {
		apierrors.ValidationError(w, "некорректный параметр document_id")
		return
	}
	limit, err := queryInt(r, "limit")
	if err != nil {
		apierrors.ValidationError(w, "некорректный параметр limit")
		return
	}
	offset, err := queryInt(r, "offset")
	if err != nil {
		apierrors.ValidationError(w, "некорректный параметр offset")
		return
	}

	records, err := h.data.ListPedestrian(r.Context(), model.PedestrianBicyclistFilter{
		Year:       year,
		Month:      month,
		DocumentID: documentID,
		Limit:      limit,
		Offset:     offset,
	})
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	if records == nil {
		records = []model.PedestrianBicyclist{}
	}
	h.writeJSON(w, http.StatusOK, records)
}

// DeletePedestrian обрабатывает DELETE /api/v1/pedestrian-and-bicyclist/{id}.
func (h *Handler) DeletePedestrian(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		apierrors.ValidationError(w, "некорректный идентификатор записи")
		return
	}
	if err := h.data.DeletePedestrian(r.Context(), id); err != nil {
		h.writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// DeletePedestrianByDocument обрабатывает
// DELETE /api/v1/pedestrian-and-bicyclist/document/{id}.
func (h *Handler) DeletePedestrianByDocument(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		apierrors.ValidationError(w, "некорректный идентификатор документа")
		return
	}
	deleted, err := h.data.DeletePedestrianByDocument(r.Context(), id)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, deletedResponse{Deleted: deleted})
}

// deletedResponse — ответ на удаление записей документа.
type deletedResponse struct {
	// Количество удалённых записей верхнего уровня
	Deleted int64 `json:"deleted"`
}
