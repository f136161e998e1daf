package middleware

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"landshare/config"
	deliverycontext "landshare/internal/delivery/context"
	mockservice "landshare/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func TestRequestIDMiddleware(t *testing.T) {
	e := echo.New()
	e.Use(NewRequestIDMiddleware(discardLogger(), deliverycontext.OriginAPI).Process)

	var ctxRequestID string
	var origin deliverycontext.Origin
	var route string
	e.GET("/ping", func(c echo.Context) error {
		ctxRequestID = deliverycontext.GetRequestIDFromContext(c.Request().Context())
		origin = deliverycontext.GetOrigin(c.Request().Context())
		route = c.Path()

		return c.NoContent(http.StatusNoContent)
	})

	t.Run("propagates caller id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(deliverycontext.HeaderXRequestID, "caller-id")
		rec := httptest.NewRecorder()

		e.ServeHTTP(rec, req)

		assert.Equal(t, "caller-id", rec.Header().Get(deliverycontext.HeaderXRequestID))
		assert.Equal(t, "caller-id", ctxRequestID)
		assert.Equal(t, deliverycontext.OriginAPI, origin)
		assert.Equal(t, "/ping", route)
	})

	t.Run("generates missing id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		rec := httptest.NewRecorder()

		e.ServeHTTP(rec, req)

		generated := rec.Header().Get(deliverycontext.HeaderXRequestID)
		assert.NotEmpty(t, generated)
		assert.Equal(t, generated, ctxRequestID)
	})

	t.Run("oversized caller id is replaced", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(deliverycontext.HeaderXRequestID, strings.Repeat("x", maxRequestIDLength+1))
		rec := httptest.NewRecorder()

		e.ServeHTTP(rec, req)

		assert.Len(t, ctxRequestID, 36)
		assert.Equal(t, ctxRequestID, rec.Header().Get(deliverycontext.HeaderXRequestID))
	})
}

func TestMetricsMiddleware_ObservesFinalStatus(t *testing.T) {
	metrics := mockservice.NewMockMetrics(t)
	metrics.EXPECT().
		ObserveHTTPRequest(http.MethodGet, "/items/:id", http.StatusNotFound, mock.AnythingOfType("time.Duration")).
		Return().
		Once()

	e := echo.New()
	e.Use(NewMetricsMiddleware(metrics).Handle)
	e.GET("/items/:id", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusNotFound, "no such item")
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/items/abc", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestLoggerMiddleware_RendersErrors(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.Debug = true

	e := echo.New()
	e.Use(NewLoggerMiddleware(discardLogger(), cfg).Handle)
	e.GET("/boom", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusConflict, "conflict")
	})
	e.GET("/ok", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ok", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}
