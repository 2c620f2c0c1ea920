package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestIdentityFromContextDefault(t *testing.T) {
	if got := IdentityFromContext(context.Background()); got != AnonymousIdentity {
		t.Errorf("IdentityFromContext = %q, ожидалось %q", got, AnonymousIdentity)
	}
}

func TestIdentityFromContext(t *testing.T) {
	ctx := context.WithValue(context.Background(), ContextKeyIdentity, "ivanov")
	if got := IdentityFromContext(ctx); got != "ivanov" {
		t.Errorf("IdentityFromContext = %q, ожидалось ivanov", got)
	}
}

func TestNormalizePath(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"/health/live", "/health/live"},
		{"/api/v1/documents", "/api/v1/documents"},
		{"/api/v1/documents/csv", "/api/v1/documents/csv"},
		{"/api/v1/crash-data/12345", "/api/v1/crash-data/{id}"},
		{"/api/v1/documents/7", "/api/v1/documents/{id}"},
		{"/api/v1/pedestrian-and-bicyclist", "/api/v1/pedestrian-and-bicyclist"},
	}

	for _, tt := range tests {
		if got := normalizePath(tt.in); got != tt.want {
			t.Errorf("normalizePath(%q) = %q, ожидалось %q", tt.in, got, tt.want)
		}
	}
}

func TestRequestLoggerPassesThrough(t *testing.T) {
	called := false
	handler := RequestLogger(testLogger())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusTeapot)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/documents", nil))

	if !called {
		t.Fatal("обработчик не вызван")
	}
	if rec.Code != http.StatusTeapot {
		t.Errorf("статус = %d, ожидалось 418", rec.Code)
	}
}
