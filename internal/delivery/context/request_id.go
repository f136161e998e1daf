package context

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ContextKey is a custom type for context keys to avoid collisions.
type ContextKey string

const (
	// KeyRequestID holds the correlation id of an API call, scheduled job or push delivery.
	KeyRequestID ContextKey = "request_id"

	// KeyLogger holds the scoped logger.
	KeyLogger ContextKey = "logger"

	// KeyOrigin holds the entry point that started the work.
	KeyOrigin ContextKey = "origin"

	// HeaderXRequestID is the HTTP header name for request ID.
	HeaderXRequestID = "X-Request-Id"
)

// Origin names the entry point a unit of work came through.
type Origin string

const (
	OriginAPI       Origin = "api"
	OriginScheduler Origin = "scheduler"
	OriginWorker    Origin = "worker"
)

// NewRequestID returns a fresh id, prefixed when prefix is set so job runs stand out in logs.
func NewRequestID(prefix string) string {
	id := uuid.New().String()
	if prefix == "" {
		return id
	}

	return prefix + "-" + id
}

// Scope attaches the request id, the origin and a logger annotated with both.
// Every entry point goes through it so usecases log with the same attributes.
func Scope(ctx context.Context, base *slog.Logger, origin Origin, requestID string, attrs ...any) (context.Context, *slog.Logger) {
	scoped := base.With(slog.String("request_id", requestID), slog.String("origin", string(origin)))
	if len(attrs) > 0 {
		scoped = scoped.With(attrs...)
	}

	ctx = WithRequestID(ctx, requestID)
	ctx = context.WithValue(ctx, KeyOrigin, origin)

	return WithLogger(ctx, scoped), scoped
}

// GetOrigin reports where the work in ctx started, or an empty Origin.
func GetOrigin(ctx context.Context) Origin {
	origin, _ := ctx.Value(KeyOrigin).(Origin)

	return origin
}

// GetRequestID returns the id the middleware stored, then the one on the request context.
// A call that bypassed both gets a fresh id.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(string(KeyRequestID)).(string); ok && id != "" {
		return id
	}
	if id := GetRequestIDFromContext(c.Request().Context()); id != "" {
		return id
	}

	return NewRequestID("")
}

// SetRequestID sets the request ID in echo.Context.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(string(KeyRequestID), requestID)
}

// GetRequestIDFromContext returns the request id or an empty string.
func GetRequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(KeyRequestID).(string)

	return id
}

// WithRequestID returns a new context with the request ID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, KeyRequestID, requestID)
}

// GetLoggerOrDefault returns the scoped logger, or fallback outside a scope.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(KeyLogger).(*slog.Logger); ok && logger != nil {
		return logger
	}

	return fallback
}

// WithLogger returns a new context with the logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, KeyLogger, logger)
}
