package worker

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"landshare/config"
	"landshare/internal/delivery/worker/handler"
	"landshare/internal/infra/metrics"
	mockusecase "landshare/internal/mocks/usecase"

	"github.com/stretchr/testify/assert"
)

func TestWorkerRoutes(t *testing.T) {
	logger := slog.New(slog.DiscardHandler)
	cfg := &config.Config{PubSub: &config.PubSubConfig{}}

	pushHandler := handler.NewPushHandler(handler.PushHandlerParams{
		Config:     cfg,
		Logger:     logger,
		ReferralUC: mockusecase.NewMockReferralUsecase(t),
	})

	e := NewEcho(ServerParams{
		Cfg:         cfg,
		Logger:      logger,
		Metrics:     metrics.NewRecorder(),
		PushHandler: pushHandler,
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())

	// A malformed push never reaches the usecase
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader("{"))
	req.Header.Set("Content-Type", "application/json")
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
