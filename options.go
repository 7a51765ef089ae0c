package metanetx

import "log/slog"

type options struct {
	logger  *Logger
	metrics MetricsCollector
}

// Option configures catalog construction.
type Option func(*options)

// WithLogger sets the logger used during ingestion and querying.
// If nil is passed, the default text logger is used.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NewTextLogger(slog.LevelInfo)
		}
		o.logger = l
	}
}

// WithMetrics sets the metrics collector. Use NewPrometheusCollector to
// export the counters to a Prometheus registry.
func WithMetrics(m MetricsCollector) Option {
	return func(o *options) {
		if m == nil {
			m = NoopMetricsCollector{}
		}
		o.metrics = m
	}
}

func defaultOptions() *options {
	return &options{
		logger:  NewTextLogger(slog.LevelInfo),
		metrics: NoopMetricsCollector{},
	}
}
