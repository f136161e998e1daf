// Package metrics exposes the admin core counters to Prometheus.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"landshare/internal/domain/service"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "landshare"

var _ service.Metrics = (*Recorder)(nil)

// Recorder implements service.Metrics on a private Prometheus registry.
type Recorder struct {
	registry *prometheus.Registry

	approvals    *prometheus.CounterVec
	bulkItems    *prometheus.CounterVec
	queueItems   *prometheus.CounterVec
	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec
}

// NewRecorder registers every collector on a fresh registry.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		approvals: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "approvals_total",
				Help:      "Total number of investment request approvals by outcome",
			},
			[]string{"outcome", "consistent"},
		),
		bulkItems: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "bulk_items_total",
				Help:      "Total number of bulk operation items by operation and outcome",
			},
			[]string{"operation", "outcome"},
		),
		queueItems: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "queue_items_processed_total",
				Help:      "Total number of processed admin queue items by type and outcome",
			},
			[]string{"type", "outcome"},
		),
		httpRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		httpDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "Duration of HTTP requests in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
	}

	r.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		r.approvals,
		r.bulkItems,
		r.queueItems,
		r.httpRequests,
		r.httpDuration,
	)

	return r
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}

// Registry exposes the underlying registry for tests.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

func (r *Recorder) ObserveApproval(outcome string, consistent bool) {
	r.approvals.WithLabelValues(outcome, strconv.FormatBool(consistent)).Inc()
}

func (r *Recorder) ObserveBulk(operation string, processed, failed int) {
	r.bulkItems.WithLabelValues(operation, "processed").Add(float64(processed))
	r.bulkItems.WithLabelValues(operation, "failed").Add(float64(failed))
}

func (r *Recorder) ObserveQueueItem(itemType string, succeeded bool) {
	outcome := "failed"
	if succeeded {
		outcome = "completed"
	}
	r.queueItems.WithLabelValues(itemType, outcome).Inc()
}

func (r *Recorder) ObserveHTTPRequest(method, route string, status int, elapsed time.Duration) {
	r.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	r.httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}
