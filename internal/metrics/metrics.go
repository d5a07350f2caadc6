package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "salesdash_http_requests_total",
			Help: "Total HTTP requests handled, by method, path and status",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "salesdash_http_request_duration_seconds",
			Help:    "HTTP request latency, by method and path",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	UpstreamRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "salesdash_upstream_requests_total",
			Help: "Requests forwarded to the tracking API, by outcome",
		},
		[]string{"outcome"},
	)

	SessionAuthenticated = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "salesdash_session_authenticated",
			Help: "1 while a valid admin credential is stored, 0 otherwise",
		},
	)
)
