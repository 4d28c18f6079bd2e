package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP request metrics
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Authentication metrics
	AuthAttemptsCounter *prometheus.CounterVec

	// Domain metrics
	AdOperationsCounter      *prometheus.CounterVec
	CommentOperationsCounter *prometheus.CounterVec
	PermissionDeniedCounter  *prometheus.CounterVec
	ImageOperationsCounter   *prometheus.CounterVec

	once sync.Once
)

// Init registers the Prometheus collectors under the given prefix. Later calls are no-ops.
func Init(prefix string) {
	once.Do(func() {
		HTTPRequestsTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + "_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		)

		HTTPRequestDuration = promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    prefix + "_http_request_duration_seconds",
				Help:    "Duration of HTTP requests in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path", "status"},
		)

		AuthAttemptsCounter = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + "_auth_attempts_total",
				Help: "Authentication attempts by scheme and result",
			},
			[]string{"scheme", "result"},
		)

		AdOperationsCounter = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + "_ad_operations_total",
				Help: "Successful ad mutations by operation",
			},
			[]string{"operation"},
		)

		CommentOperationsCounter = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + "_comment_operations_total",
				Help: "Successful comment mutations by operation",
			},
			[]string{"operation"},
		)

		PermissionDeniedCounter = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + "_permission_denied_total",
				Help: "Mutations rejected by the ownership check",
			},
			[]string{"resource"},
		)

		ImageOperationsCounter = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + "_image_operations_total",
				Help: "Image storage operations by operation and result",
			},
			[]string{"operation", "result"},
		)
	})
}

// Inc increments a counter vector when metrics are initialized.
func Inc(c *prometheus.CounterVec, labels ...string) {
	if c == nil {
		return
	}
	c.WithLabelValues(labels...).Inc()
}
