// Package metrics defines the prometheus collectors exported on /metrics.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "churn_http_requests_total",
			Help: "HTTP requests by route, method and status code.",
		},
		[]string{"method", "route", "status"},
	)

	HTTPDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "churn_http_request_duration_seconds",
			Help:    "HTTP request latency by route.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	StoreDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "churn_store_operation_duration_seconds",
			Help:    "Document store call latency by backend and operation.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"backend", "operation"},
	)

	StoreErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "churn_store_operation_errors_total",
			Help: "Failed document store calls by backend and operation.",
		},
		[]string{"backend", "operation"},
	)
)

// ObserveStore records one store call; use it as
//
//	defer metrics.ObserveStore("mongo", "find_all", time.Now(), &err)
func ObserveStore(backend, operation string, start time.Time, err *error) {
	StoreDuration.WithLabelValues(backend, operation).Observe(time.Since(start).Seconds())
	if err != nil && *err != nil {
		StoreErrors.WithLabelValues(backend, operation).Inc()
	}
}
