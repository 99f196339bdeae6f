// Package metrics holds the application's Prometheus collectors. They are
// registered on the metrics server registry in internal/server.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Cache lookup and upstream fetch results.
const (
	ResultHit   = "hit"
	ResultMiss  = "miss"
	ResultOK    = "ok"
	ResultError = "error"
)

var (
	CacheLookups = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "starrail_cache_lookups_total",
			Help: "Local cache lookups per table, by hit or miss.",
		},
		[]string{"table", "result"},
	)

	UpstreamFetches = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "starrail_upstream_fetch_total",
			Help: "Upstream fills per table, by outcome.",
		},
		[]string{"table", "result"},
	)

	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "starrail_http_requests_total",
			Help: "HTTP requests by route and status code.",
		},
		[]string{"method", "route", "status"},
	)

	HTTPDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "starrail_http_request_duration_seconds",
			Help:    "HTTP request latency by route.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	SimulationDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "starrail_simulation_duration_seconds",
			Help:    "Time spent computing pull distributions.",
			Buckets: prometheus.ExponentialBuckets(0.0005, 4, 8),
		},
		[]string{"banner", "method"},
	)
)

// Collectors lists every application collector.
func Collectors() []prometheus.Collector {
	return []prometheus.Collector{
		CacheLookups,
		UpstreamFetches,
		HTTPRequests,
		HTTPDuration,
		SimulationDuration,
	}
}
