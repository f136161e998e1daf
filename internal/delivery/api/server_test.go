package api

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"landshare/config"
	apimiddleware "landshare/internal/delivery/api/middleware"
	"landshare/internal/delivery/api/router"
	"landshare/internal/delivery/api/router/handler"
	deliverycontext "landshare/internal/delivery/context"
	"landshare/internal/domain/entity"
	"landshare/internal/errors"
	"landshare/internal/infra/metrics"
	mockservice "landshare/internal/mocks/service"
	mockusecase "landshare/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type testServer struct {
	echo       *echo.Echo
	verifier   *mockservice.MockTokenVerifier
	approvalUC *mockusecase.MockApprovalUsecase
	bulkUC     *mockusecase.MockBulkUsecase
	queueUC    *mockusecase.MockQueueUsecase
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	logger := slog.New(slog.DiscardHandler)
	cfg := &config.Config{
		Auth:  &config.AuthConfig{AdminRole: "admin"},
		Queue: &config.QueueConfig{SweepLimit: 10},
	}
	cfg.HTTP.MaxRequestBodySize = "64KB"

	ts := &testServer{
		verifier:   mockservice.NewMockTokenVerifier(t),
		approvalUC: mockusecase.NewMockApprovalUsecase(t),
		bulkUC:     mockusecase.NewMockBulkUsecase(t),
		queueUC:    mockusecase.NewMockQueueUsecase(t),
	}

	recorder := metrics.NewRecorder()
	ts.echo = NewEcho(ServerParams{
		Cfg:     cfg,
		Logger:  logger,
		Metrics: recorder,
		RouterParams: router.RouterParams{
			RequestHandler: handler.NewRequestHandler(handler.RequestHandlerParams{ApprovalUC: ts.approvalUC, Logger: logger}),
			BulkHandler:    handler.NewBulkHandler(handler.BulkHandlerParams{BulkUC: ts.bulkUC, Logger: logger}),
			QueueHandler:   handler.NewQueueHandler(handler.QueueHandlerParams{QueueUC: ts.queueUC, Config: cfg, Logger: logger}),
			AuthMiddleware: apimiddleware.NewAdminAuthMiddleware(ts.verifier, cfg, logger),
			Recorder:       recorder,
		},
	})

	return ts
}

func (ts *testServer) do(method, target, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	ts.echo.ServeHTTP(rec, req)

	return rec
}

func (ts *testServer) expectAdmin(token, adminID string) {
	ts.verifier.EXPECT().Verify(mock.Anything, token).
		Return(&entity.AdminPrincipal{ID: adminID, Roles: entity.Roles{entity.RoleAdmin}}, nil)
}

func TestServer_HealthIsPublic(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(http.MethodGet, "/health", "", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get(deliverycontext.HeaderXRequestID))
}

func TestServer_APIRequiresAdmin(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(http.MethodGet, "/api/v1/queue/stats", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	ts.verifier.EXPECT().Verify(mock.Anything, "investor-token").
		Return(&entity.AdminPrincipal{ID: "user-1", Roles: entity.Roles{entity.RoleInvestor}}, nil)
	rec = ts.do(http.MethodGet, "/api/v1/queue/stats", "investor-token", "")
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestServer_AdminIDComesFromToken(t *testing.T) {
	ts := newTestServer(t)
	ts.expectAdmin("token-a", "admin-a")
	ts.approvalUC.EXPECT().Reject(mock.Anything, "req-1", "admin-a", "fraud").Return(nil)

	rec := ts.do(http.MethodPost, "/api/v1/requests/req-1/reject", "token-a", `{"reason":"fraud"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestServer_StaticRoutesWinOverIDs(t *testing.T) {
	ts := newTestServer(t)
	ts.expectAdmin("token-a", "admin-a")
	ts.bulkUC.EXPECT().BulkApprove(mock.Anything, []string{"req-1"}, "admin-a").
		Return(&entity.BulkResult{Success: true, Processed: 1}, nil)

	rec := ts.do(http.MethodPost, "/api/v1/requests/bulk/approve", "token-a", `{"requestIds":["req-1"]}`)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestServer_MetricsEndpointCountsRequests(t *testing.T) {
	ts := newTestServer(t)
	ts.expectAdmin("token-a", "admin-a")
	ts.queueUC.EXPECT().GetQueueStats(mock.Anything).Return(nil, errors.New("store offline"))

	rec := ts.do(http.MethodGet, "/api/v1/queue/stats", "token-a", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	rec = ts.do(http.MethodGet, "/metrics", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `landshare_http_requests_total{method="GET",route="/api/v1/queue/stats",status="500"} 1`)
}

func TestServer_BodyLimit(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(http.MethodPost, "/api/v1/requests/bulk/approve", "token-a", `{"requestIds":["`+strings.Repeat("x", 70*1024)+`"]}`)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}
