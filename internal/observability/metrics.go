// Package observability provides Prometheus metrics and OpenTelemetry tracing
// for the application.
package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrors counts Redis errors by operation type.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tigube_redis_error_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})

	// DatabaseQueryLatency records database query latency by SQL verb.
	DatabaseQueryLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "tigube_database_query_latency_seconds",
		Help:    "Database query latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation"})

	// SearchLatency records caretaker search latency by outcome.
	SearchLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "tigube_caretaker_search_latency_seconds",
		Help:    "Caretaker search latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"outcome"})

	// SearchResults records the number of caretakers returned per search.
	SearchResults = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "tigube_caretaker_search_results",
		Help:    "Number of caretakers returned per search",
		Buckets: []float64{0, 1, 2, 5, 10, 20, 50, 100},
	})

	// ConnectionOps counts connection graph operations by kind and connection type.
	ConnectionOps = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tigube_connection_operations_total",
		Help: "Connection graph operations by kind and connection type",
	}, []string{"operation", "type"})

	// GeoIPLookups counts best-effort geo IP lookups by outcome.
	GeoIPLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tigube_geoip_lookups_total",
		Help: "Best-effort IP geolocation lookups by outcome",
	}, []string{"outcome"})
)

// ObserveSearch records one caretaker search.
func ObserveSearch(start time.Time, outcome string, results int) {
	SearchLatency.WithLabelValues(outcome).Observe(time.Since(start).Seconds())
	if outcome == "ok" {
		SearchResults.Observe(float64(results))
	}
}
