package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorder_CountsByLabel(t *testing.T) {
	r := NewRecorder()

	r.ObserveApproval("approved", true)
	r.ObserveApproval("approved", true)
	r.ObserveApproval("failed", false)
	r.ObserveBulk("bulk_approve", 4, 1)
	r.ObserveQueueItem("investment_request", true)
	r.ObserveQueueItem("investment_request", false)

	assert.InDelta(t, 2, testutil.ToFloat64(r.approvals.WithLabelValues("approved", "true")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(r.approvals.WithLabelValues("failed", "false")), 0)
	assert.InDelta(t, 4, testutil.ToFloat64(r.bulkItems.WithLabelValues("bulk_approve", "processed")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(r.bulkItems.WithLabelValues("bulk_approve", "failed")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(r.queueItems.WithLabelValues("investment_request", "completed")), 0)
}

func TestRecorder_HandlerExposesMetrics(t *testing.T) {
	r := NewRecorder()
	r.ObserveHTTPRequest(http.MethodPost, "/api/v1/requests/:id/approve", http.StatusOK, 15*time.Millisecond)

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.True(t, strings.Contains(body, `landshare_http_requests_total{method="POST",route="/api/v1/requests/:id/approve",status="200"} 1`))
	assert.Contains(t, body, "landshare_http_request_duration_seconds")
}
