// documents.go — обработчики загрузки и управления документами.
package handlers

import (
	"errors"
	"net/http"

	apierrors "github.com/bigkaa/goroadstat/internal/api/errors"
	"github.com/bigkaa/goroadstat/internal/api/middleware"
	"github.com/bigkaa/goroadstat/internal/domain/model"
)

// UploadCSV обрабатывает POST /api/v1/documents/csv.
// Принимает multipart-форму с полем "file", синхронно прогоняет файл
// через конвейер обработки и возвращает 201 с отчётом о загрузке.
func (h *Handler) UploadCSV(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize)

	file, header, err := r.FormFile("file")
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			apierrors.PayloadTooLarge(w, "файл превышает допустимый размер")
			return
		}
		apierrors.ValidationError(w, "некорректная multipart-форма: ожидается поле file")
		return
	}
	defer file.Close()

	uploadedBy := middleware.IdentityFromContext(r.Context())
	report, err := h.uploads.Process(r.Context(), header.Filename, file, uploadedBy)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, report)
}

// ListDocuments обрабатывает GET /api/v1/documents.
// Параметры запроса: uploaded_by, limit, offset.
func (h *Handler) ListDocuments(w http.ResponseWriter, r *http.Request) {
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

	docs, err := h.data.ListDocuments(r.Context(), model.DocumentFilter{
		UploadedBy: r.URL.Query().Get("uploaded_by"),
		Limit:      limit,
		Offset:     offset,
	})
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	if docs == nil {
		docs = []model.Document{}
	}
	h.writeJSON(w, http.StatusOK, docs)
}

// GetDocument обрабатывает GET /api/v1/documents/{id}.
func (h *Handler) GetDocument(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		apierrors.ValidationError(w, "некорректный идентификатор документа")
		return
	}

	doc, err := h.data.GetDocument(r.Context(), id)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, doc)
}

// DeleteDocument обрабатывает DELETE /api/v1/documents/{id}.
// Записи всех видов, привязанные к документу, удаляются каскадно.
func (h *Handler) DeleteDocument(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		apierrors.ValidationError(w, "некорректный идентификатор документа")
		return
	}

	if err := h.data.DeleteDocument(r.Context(), id); err != nil {
		h.writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
