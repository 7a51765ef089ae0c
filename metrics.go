package metanetx

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/dd-decaf/metanetx/model"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Per-row ingestion drops are telemetry, not errors, so they flow through
// here rather than through return values.
type MetricsCollector interface {
	// RecordRowsLoaded is called once per table after ingestion, with the
	// number of rows installed.
	RecordRowsLoaded(table string, rows int)

	// RecordRowDropped is called for every row dropped during ingestion.
	// reason is one of "malformed_equation", "unnamespaced",
	// "unknown_namespace" or "missing_owner".
	RecordRowDropped(table, reason string)

	// RecordSearch is called after each free-text search.
	RecordSearch(kind model.EntityKind, results int, duration time.Duration)

	// RecordLookup is called after each exact-key lookup.
	RecordLookup(found bool)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordRowsLoaded(string, int)                      {}
func (NoopMetricsCollector) RecordRowDropped(string, string)                   {}
func (NoopMetricsCollector) RecordSearch(model.EntityKind, int, time.Duration) {}
func (NoopMetricsCollector) RecordLookup(bool)                                 {}

// PrometheusCollector exports catalog metrics to a Prometheus registry.
type PrometheusCollector struct {
	rowsLoaded     *prometheus.CounterVec
	rowsDropped    *prometheus.CounterVec
	searchDuration *prometheus.HistogramVec
	lookups        *prometheus.CounterVec
}

// NewPrometheusCollector creates a collector and registers its metrics with
// reg. It panics if the metrics are already registered, so create at most one
// per registry.
func NewPrometheusCollector(reg prometheus.Registerer) *PrometheusCollector {
	c := &PrometheusCollector{
		rowsLoaded: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "metanetx",
			Name:      "ingest_rows_total",
			Help:      "Rows installed into the catalog, per source table.",
		}, []string{"table"}),
		rowsDropped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "metanetx",
			Name:      "ingest_rows_dropped_total",
			Help:      "Rows dropped during ingestion, per source table and reason.",
		}, []string{"table", "reason"}),
		searchDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "metanetx",
			Name:      "search_duration_seconds",
			Help:      "Free-text search latency, per entity kind.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"kind"}),
		lookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "metanetx",
			Name:      "lookups_total",
			Help:      "Exact-key lookups, per outcome.",
		}, []string{"result"}),
	}
	reg.MustRegister(c.rowsLoaded, c.rowsDropped, c.searchDuration, c.lookups)
	return c
}

// RecordRowsLoaded implements MetricsCollector.
func (c *PrometheusCollector) RecordRowsLoaded(table string, rows int) {
	c.rowsLoaded.WithLabelValues(table).Add(float64(rows))
}

// RecordRowDropped implements MetricsCollector.
func (c *PrometheusCollector) RecordRowDropped(table, reason string) {
	c.rowsDropped.WithLabelValues(table, reason).Inc()
}

// RecordSearch implements MetricsCollector.
func (c *PrometheusCollector) RecordSearch(kind model.EntityKind, _ int, duration time.Duration) {
	c.searchDuration.WithLabelValues(string(kind)).Observe(duration.Seconds())
}

// RecordLookup implements MetricsCollector.
func (c *PrometheusCollector) RecordLookup(found bool) {
	result := "miss"
	if found {
		result = "hit"
	}
	c.lookups.WithLabelValues(result).Inc()
}
