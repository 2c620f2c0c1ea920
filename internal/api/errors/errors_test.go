package errors

import (
	"encoding/json"
	"net/http/httptest"
	"testing"
)

func TestWriteErrorFormat(t *testing.T) {
	rec := httptest.NewRecorder()
	NotFound(rec, "документ 7 не найден")

	if rec.Code != 404 {
		t.Errorf("статус = %d, ожидалось 404", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}

	var body struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("разбор тела ответа: %v", err)
	}
	if body.Error.Code != CodeNotFound {
		t.Errorf("code = %q, ожидалось %q", body.Error.Code, CodeNotFound)
	}
	if body.Error.Message != "документ 7 не найден" {
		t.Errorf("message = %q", body.Error.Message)
	}
}

func TestErrorConstructorsStatusCodes(t *testing.T) {
	tests := []struct {
		name string
		fn   func(w *httptest.ResponseRecorder)
		want int
	}{
		{"validation", func(w *httptest.ResponseRecorder) { ValidationError(w, "m") }, 400},
		{"unauthorized", func(w *httptest.ResponseRecorder) { Unauthorized(w, "m") }, 401},
		{"unsupported", func(w *httptest.ResponseRecorder) { UnsupportedDocument(w, "m") }, 400},
		{"insufficient", func(w *httptest.ResponseRecorder) { InsufficientData(w, "m") }, 422},
		{"malformed", func(w *httptest.ResponseRecorder) { MalformedFile(w, "m") }, 422},
		{"too_large", func(w *httptest.ResponseRecorder) { PayloadTooLarge(w, "m") }, 413},
		{"internal", func(w *httptest.ResponseRecorder) { InternalError(w, "m") }, 500},
	}

	for _, tt := range tests {
		rec := httptest.NewRecorder()
		tt.fn(rec)
		if rec.Code != tt.want {
			t.Errorf("%s: статус = %d, ожидалось %d", tt.name, rec.Code, tt.want)
		}
	}
}
