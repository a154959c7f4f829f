// Package observability provides logging, metrics, and tracing helpers shared by the store and HTTP layers.
package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Resolution outcomes recorded per query operation.
const (
	OutcomeOK              = "ok"
	OutcomeNotFound        = "not_found"
	OutcomeInvalidLanguage = "invalid_language"
	OutcomeError           = "error"
)

var (
	// RedisErrorRate counts Redis errors by operation type.
	RedisErrorRate = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "polyglot_redis_error_rate_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})

	// DatabaseQueryLatency records database query latency by operation and table.
	DatabaseQueryLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "polyglot_database_query_latency_seconds",
		Help:    "Database query latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation", "table"})

	// ResolutionOutcomes counts content resolution calls by operation and outcome.
	ResolutionOutcomes = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "polyglot_resolution_outcomes_total",
		Help: "Content resolution results by operation and outcome",
	}, []string{"operation", "outcome"})

	// FallbackScoresScrubbed counts fallback rows read with a quality score attached.
	FallbackScoresScrubbed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "polyglot_fallback_scores_scrubbed_total",
		Help: "Translated content rows served with a stored quality score removed because they use fallback HTML",
	})

	// RateLimitRejections counts requests refused by the rate limiter.
	RateLimitRejections = promauto.NewCounter(prometheus.CounterOpts{
		Name: "polyglot_rate_limit_rejections_total",
		Help: "Total number of requests rejected by the rate limiter",
	})
)

// DatabaseMetrics records query latency for one table.
type DatabaseMetrics struct {
	table string
}

// NewDatabaseMetrics returns a new DatabaseMetrics instance for table.
func NewDatabaseMetrics(table string) *DatabaseMetrics {
	return &DatabaseMetrics{table: table}
}

// ObserveQuery records the latency of a database query.
func (m *DatabaseMetrics) ObserveQuery(operation string, start time.Time) {
	DatabaseQueryLatency.WithLabelValues(operation, m.table).Observe(time.Since(start).Seconds())
}

// TrackQuery returns a function that records query latency when called (e.g. defer).
func (m *DatabaseMetrics) TrackQuery(operation string) func() {
	start := time.Now()
	return func() {
		m.ObserveQuery(operation, start)
	}
}

// RecordOutcome increments the resolution outcome counter.
func RecordOutcome(operation, outcome string) {
	ResolutionOutcomes.WithLabelValues(operation, outcome).Inc()
}
