package middleware

import (
	"time"

	"landshare/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// MetricsMiddleware records request counts and latencies per route template.
type MetricsMiddleware struct {
	metrics service.Metrics
}

// NewMetricsMiddleware creates a new metrics middleware
func NewMetricsMiddleware(metrics service.Metrics) *MetricsMiddleware {
	return &MetricsMiddleware{metrics: metrics}
}

// Handle observes the request after the error handler has set the final status.
func (m *MetricsMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		err := next(c)
		if err != nil {
			c.Error(err)
		}

		route := c.Path()
		if route == "" {
			route = "unmatched"
		}
		m.metrics.ObserveHTTPRequest(c.Request().Method, route, c.Response().Status, time.Since(start))

		return nil
	}
}
