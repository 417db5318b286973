package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"gorm.io/gorm"
)

var (
	// DatabaseQueryLatency records database query latency by operation and table.
	DatabaseQueryLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "creel_database_query_latency_seconds",
		Help:    "Database query latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation", "table"})

	// CatchesCreatedTotal counts fish catches created.
	CatchesCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "creel_catches_created_total",
		Help: "Total number of fish catches created",
	})

	// LikeOperationsTotal counts like and unlike operations by outcome.
	LikeOperationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "creel_like_operations_total",
		Help: "Total like and unlike operations by action and outcome",
	}, []string{"action", "outcome"})

	// NearbyQueriesTotal counts nearby fishing spot searches.
	NearbyQueriesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "creel_nearby_queries_total",
		Help: "Total number of nearby fishing spot searches",
	})
)

// DatabaseMetrics wraps DB access for recording query latency.
type DatabaseMetrics struct {
	db *gorm.DB
}

// NewDatabaseMetrics returns a new DatabaseMetrics instance.
func NewDatabaseMetrics(db *gorm.DB) *DatabaseMetrics {
	return &DatabaseMetrics{db: db}
}

// ObserveQuery records the latency of a database query.
func (m *DatabaseMetrics) ObserveQuery(operation, table string, start time.Time) {
	latency := time.Since(start).Seconds()
	DatabaseQueryLatency.WithLabelValues(operation, table).Observe(latency)
}

// TrackQuery returns a function that records query latency when called (e.g. defer).
func (m *DatabaseMetrics) TrackQuery(operation, table string) func() {
	start := time.Now()
	return func() {
		m.ObserveQuery(operation, table, start)
	}
}

// RecordLikeOperation increments the like operations counter.
func RecordLikeOperation(action string, applied bool) {
	outcome := "noop"
	if applied {
		outcome = "applied"
	}
	LikeOperationsTotal.WithLabelValues(action, outcome).Inc()
}
