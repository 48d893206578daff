package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

// newSecuredEcho mirrors the server's middleware order over a few dashboard routes
func newSecuredEcho() *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = CustomHTTPErrorHandler
	e.Use(RequestID())
	e.Use(PanicRecovery(nil))
	e.Use(SecurityHeaders())

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "healthy"})
	})
	e.GET("/api/v1/transactions", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing bearer token")
	})
	e.POST("/api/v1/sync", func(c echo.Context) error {
		panic("provider client nil")
	})
	return e
}

func TestSecurityHeadersOnEveryResponse(t *testing.T) {
	e := newSecuredEcho()

	tests := []struct {
		name       string
		method     string
		target     string
		wantStatus int
	}{
		{"health", http.MethodGet, "/health", http.StatusOK},
		{"unauthorized transactions", http.MethodGet, "/api/v1/transactions", http.StatusUnauthorized},
		{"panicking sync", http.MethodPost, "/api/v1/sync", http.StatusInternalServerError},
		{"unknown route", http.MethodGet, "/api/v1/budgets", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.target, nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			headers := rec.Header()
			for _, kv := range apiSecurityHeaders {
				assert.Equal(t, kv[1], headers.Get(kv[0]), kv[0])
			}
			assert.Contains(t, headers.Values(echo.HeaderVary), echo.HeaderAuthorization)
		})
	}
}

func TestSecurityHeadersNoCachingOfFinancialData(t *testing.T) {
	e := newSecuredEcho()

	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, "no-store, no-cache, must-revalidate, private", rec.Header().Get("Cache-Control"))
		assert.Equal(t, "default-src 'none'; frame-ancestors 'none'", rec.Header().Get("Content-Security-Policy"))
		assert.Len(t, rec.Header().Values(echo.HeaderVary), 1)
	}
}
