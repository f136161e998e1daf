package middleware

import (
	"log/slog"

	deliverycontext "landshare/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// maxRequestIDLength bounds caller supplied ids before they reach logs and the Pub/Sub envelope.
const maxRequestIDLength = 128

// RequestIDMiddleware scopes every inbound call with a correlation id.
type RequestIDMiddleware struct {
	logger *slog.Logger
	origin deliverycontext.Origin
}

func NewRequestIDMiddleware(logger *slog.Logger, origin deliverycontext.Origin) *RequestIDMiddleware {
	return &RequestIDMiddleware{logger: logger, origin: origin}
}

// Process keeps a usable X-Request-Id from the caller, otherwise mints one.
// The id is echoed back and carried into referral events published by the approval.
func (m *RequestIDMiddleware) Process(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := c.Request().Header.Get(deliverycontext.HeaderXRequestID)
		if requestID == "" || len(requestID) > maxRequestIDLength {
			requestID = deliverycontext.NewRequestID("")
		}

		deliverycontext.SetRequestID(c, requestID)
		c.Response().Header().Set(deliverycontext.HeaderXRequestID, requestID)

		ctx, _ := deliverycontext.Scope(c.Request().Context(), m.logger, m.origin, requestID,
			slog.String("route", c.Path()))
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}
