package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

// fakeChecker — заглушка проверки готовности.
type fakeChecker struct {
	status  string
	message string
}

func (f *fakeChecker) CheckReady() (string, string) {
	return f.status, f.message
}

func TestHealthLive(t *testing.T) {
	h := NewHealthHandler(nil)

	rec := httptest.NewRecorder()
	h.HealthLive(rec, httptest.NewRequest(http.MethodGet, "/health/live", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("статус = %d, ожидалось 200", rec.Code)
	}
	var resp struct {
		Status  string `json:"status"`
		Service string `json:"service"`
		Version string `json:"version"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("ошибка разбора ответа: %v", err)
	}
	if resp.Status != "ok" {
		t.Errorf("status = %q, ожидалось ok", resp.Status)
	}
	if resp.Service != "roadstat" {
		t.Errorf("service = %q, ожидалось roadstat", resp.Service)
	}
	if resp.Version == "" {
		t.Error("version пуст")
	}
}

func TestHealthReady(t *testing.T) {
	tests := []struct {
		name       string
		checker    ReadinessChecker
		wantStatus int
		wantState  string
	}{
		{"ok", &fakeChecker{status: "ok", message: "PostgreSQL доступен"}, http.StatusOK, "ok"},
		{"degraded", &fakeChecker{status: "degraded", message: "высокая задержка"}, http.StatusOK, "degraded"},
		{"fail", &fakeChecker{status: "fail", message: "соединение отклонено"}, http.StatusServiceUnavailable, "fail"},
		{"nil checker", nil, http.StatusServiceUnavailable, "fail"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHealthHandler(tt.checker)

			rec := httptest.NewRecorder()
			h.HealthReady(rec, httptest.NewRequest(http.MethodGet, "/health/ready", nil))

			if rec.Code != tt.wantStatus {
				t.Errorf("статус = %d, ожидалось %d", rec.Code, tt.wantStatus)
			}
			var resp struct {
				Status string `json:"status"`
				Checks struct {
					PostgreSQL struct {
						Status string `json:"status"`
					} `json:"postgresql"`
				} `json:"checks"`
			}
			if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
				t.Fatalf("ошибка разбора ответа: %v", err)
			}
			if resp.Status != tt.wantState {
				t.Errorf("status = %q, ожидалось %q", resp.Status, tt.wantState)
			}
			if resp.Checks.PostgreSQL.Status != tt.wantState {
				t.Errorf("checks.postgresql.status = %q, ожидалось %q", resp.Checks.PostgreSQL.Status, tt.wantState)
			}
		})
	}
}

func TestGetMetrics(t *testing.T) {
	h := NewHealthHandler(nil)

	rec := httptest.NewRecorder()
	h.GetMetrics(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("статус = %d, ожидалось 200", rec.Code)
	}
	if rec.Body.Len() == 0 {
		t.Error("тело ответа /metrics пусто")
	}
}
