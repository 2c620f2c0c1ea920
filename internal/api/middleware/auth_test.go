package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// authHandler собирает middleware с заглушкой вместо JWKS:
// до обращения к ключам доходят только запросы с корректным заголовком.
func authHandler(t *testing.T) http.Handler {
	t.Helper()
	auth := NewJWTAuthWithKeyfunc(nil, "", testLogger())
	return auth.Middleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("запрос без валидного токена прошёл аутентификацию")
	}))
}

func TestJWTAuthMissingHeader(t *testing.T) {
	rec := httptest.NewRecorder()
	authHandler(t).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/documents", nil))

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("статус = %d, ожидалось 401", rec.Code)
	}
}

func TestJWTAuthWrongScheme(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/documents", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")

	rec := httptest.NewRecorder()
	authHandler(t).ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("статус = %d, ожидалось 401", rec.Code)
	}
}

func TestJWTAuthEmptyToken(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/documents", nil)
	req.Header.Set("Authorization", "Bearer ")

	rec := httptest.NewRecorder()
	authHandler(t).ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("статус = %d, ожидалось 401", rec.Code)
	}
}
