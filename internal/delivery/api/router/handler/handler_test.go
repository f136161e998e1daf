package handler

import (
	"encoding/json"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"

	apimiddleware "landshare/internal/delivery/api/middleware"
	"landshare/internal/delivery/api/response"
	"landshare/internal/delivery/api/validator"
	deliverycontext "landshare/internal/delivery/context"
	"landshare/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

const testAdminID = "admin-1"

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// newTestEcho mirrors the API server's error handling and validation.
// Requests carry an authenticated admin unless anonymous is set.
func newTestEcho(anonymous bool) *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(discardLogger()).HandleHTTPError
	e.Validator = validator.New()

	if !anonymous {
		e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
			return func(c echo.Context) error {
				deliverycontext.SetPrincipal(c, &entity.AdminPrincipal{ID: testAdminID, Roles: entity.Roles{entity.RoleAdmin}})

				return next(c)
			}
		})
	}

	return e
}

func doJSON(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

// decodeData unmarshals the data field of a success envelope into out.
func decodeData(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()

	var envelope struct {
		Data json.RawMessage    `json:"data"`
		Meta response.MetaInfo `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.NotEmpty(t, envelope.Meta.RequestID)
	require.NoError(t, json.Unmarshal(envelope.Data, out))
}

func decodeErrorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var envelope response.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.NotNil(t, envelope.Error)

	return envelope.Error.Code
}
