package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/bigkaa/goroadstat/internal/pipeline/cleaning"
	"github.com/bigkaa/goroadstat/internal/pipeline/convert"
	"github.com/bigkaa/goroadstat/internal/pipeline/tabular"
	"github.com/bigkaa/goroadstat/internal/service"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// errorEnvelope — формат JSON-ответа с ошибкой API.
type errorEnvelope struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func decodeError(t *testing.T, body *bytes.Buffer) errorEnvelope {
	t.Helper()
	var env errorEnvelope
	if err := json.NewDecoder(body).Decode(&env); err != nil {
		t.Fatalf("ошибка разбора JSON-ответа: %v", err)
	}
	return env
}

// testRouter монтирует обработчики без сервисного слоя:
// маршруты с невалидными параметрами должны отклоняться
// до обращения к сервисам.
func testRouter(h *Handler) *chi.Mux {
	r := chi.NewRouter()
	r.Post("/api/v1/documents/csv", h.UploadCSV)
	r.Get("/api/v1/documents/{id}", h.GetDocument)
	r.Delete("/api/v1/documents/{id}", h.DeleteDocument)
	r.Get("/api/v1/crash-data", h.ListCrashData)
	r.Delete("/api/v1/crash-data/{id}", h.DeleteCrashData)
	r.Delete("/api/v1/crash-data/document/{id}", h.DeleteCrashDataByDocument)
	r.Get("/api/v1/traffic", h.ListTraffic)
	r.Delete("/api/v1/traffic/{id}", h.DeleteTraffic)
	r.Delete("/api/v1/traffic/document/{id}", h.DeleteTrafficByDocument)
	r.Get("/api/v1/pedestrian-and-bicyclist", h.ListPedestrian)
	r.Delete("/api/v1/pedestrian-and-bicyclist/{id}", h.DeletePedestrian)
	r.Delete("/api/v1/pedestrian-and-bicyclist/document/{id}", h.DeletePedestrianByDocument)
	return r
}

func TestWriteServiceErrorMapping(t *testing.T) {
	h := NewHandler(nil, nil, 0, testLogger())

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"not found", fmt.Errorf("%w: документ 7", service.ErrNotFound), http.StatusNotFound, "NOT_FOUND"},
		{"unsupported type", fmt.Errorf("%w: %q", service.ErrUnsupportedDocumentType, "report.csv"), http.StatusBadRequest, "UNSUPPORTED_DOCUMENT_TYPE"},
		{"validation", fmt.Errorf("%w: пустое имя файла", service.ErrValidation), http.StatusBadRequest, "VALIDATION_ERROR"},
		{"insufficient data", &cleaning.InsufficientDataError{Observed: 10, Required: 100}, http.StatusUnprocessableEntity, "INSUFFICIENT_DATA"},
		{"malformed header", &tabular.MalformedHeaderError{Reason: "файл пуст"}, http.StatusUnprocessableEntity, "MALFORMED_FILE"},
		{"file read", &tabular.FileReadError{Err: errors.New("обрыв соединения")}, http.StatusUnprocessableEntity, "MALFORMED_FILE"},
		{"date parse", &convert.DateParseError{Value: "31 февраля"}, http.StatusUnprocessableEntity, "MALFORMED_FILE"},
		{"enum", &convert.EnumError{Value: "3-way", Valid: []string{"ONE_WAY", "TWO_WAY"}}, http.StatusUnprocessableEntity, "MALFORMED_FILE"},
		{"wrapped pipeline error", fmt.Errorf("строка 5: %w", &convert.EnumError{Value: "x"}), http.StatusUnprocessableEntity, "MALFORMED_FILE"},
		{"internal", errors.New("соединение с БД потеряно"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.writeServiceError(rec, tt.err)

			if rec.Code != tt.wantStatus {
				t.Errorf("статус = %d, ожидалось %d", rec.Code, tt.wantStatus)
			}
			env := decodeError(t, rec.Body)
			if env.Error.Code != tt.wantCode {
				t.Errorf("код = %q, ожидалось %q", env.Error.Code, tt.wantCode)
			}
		})
	}
}

func TestInvalidPathID(t *testing.T) {
	h := NewHandler(nil, nil, 0, testLogger())
	router := testRouter(h)

	paths := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/v1/documents/abc"},
		{http.MethodDelete, "/api/v1/documents/abc"},
		{http.MethodDelete, "/api/v1/crash-data/abc"},
		{http.MethodDelete, "/api/v1/crash-data/document/abc"},
		{http.MethodDelete, "/api/v1/traffic/abc"},
		{http.MethodDelete, "/api/v1/traffic/document/abc"},
		{http.MethodDelete, "/api/v1/pedestrian-and-bicyclist/abc"},
		{http.MethodDelete, "/api/v1/pedestrian-and-bicyclist/document/abc"},
	}

	for _, p := range paths {
		t.Run(p.method+" "+p.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(p.method, p.path, nil))

			if rec.Code != http.StatusBadRequest {
				t.Errorf("статус = %d, ожидалось 400", rec.Code)
			}
			env := decodeError(t, rec.Body)
			if env.Error.Code != "VALIDATION_ERROR" {
				t.Errorf("код = %q, ожидалось VALIDATION_ERROR", env.Error.Code)
			}
		})
	}
}

func TestInvalidQueryParams(t *testing.T) {
	h := NewHandler(nil, nil, 0, testLogger())
	router := testRouter(h)

	paths := []string{
		"/api/v1/crash-data?year=two-thousand",
		"/api/v1/crash-data?document_id=x",
		"/api/v1/crash-data?limit=ten",
		"/api/v1/traffic?offset=last",
		"/api/v1/pedestrian-and-bicyclist?year=x",
		"/api/v1/pedestrian-and-bicyclist?month=январь",
	}

	for _, p := range paths {
		t.Run(p, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, p, nil))

			if rec.Code != http.StatusBadRequest {
				t.Errorf("статус = %d, ожидалось 400", rec.Code)
			}
		})
	}
}

func TestUploadCSVMissingFileField(t *testing.T) {
	h := NewHandler(nil, nil, 64<<20, testLogger())
	router := testRouter(h)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("attachment", "crash.csv")
	if err != nil {
		t.Fatal(err)
	}
	fw.Write([]byte("Year,Month\n2023,1\n"))
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/documents/csv", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("статус = %d, ожидалось 400", rec.Code)
	}
	env := decodeError(t, rec.Body)
	if env.Error.Code != "VALIDATION_ERROR" {
		t.Errorf("код = %q, ожидалось VALIDATION_ERROR", env.Error.Code)
	}
}

func TestUploadCSVPayloadTooLarge(t *testing.T) {
	// Лимит меньше размера multipart-формы: чтение тела должно
	// оборваться с MaxBytesError.
	h := NewHandler(nil, nil, 16, testLogger())
	router := testRouter(h)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", "crash.csv")
	if err != nil {
		t.Fatal(err)
	}
	fw.Write(bytes.Repeat([]byte("Year,Month\n2023,1\n"), 64))
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/documents/csv", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusRequestEntityTooLarge {
		t.Errorf("статус = %d, ожидалось 413", rec.Code)
	}
	env := decodeError(t, rec.Body)
	if env.Error.Code != "PAYLOAD_TOO_LARGE" {
		t.Errorf("код = %q, ожидалось PAYLOAD_TOO_LARGE", env.Error.Code)
	}
}
