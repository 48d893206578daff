package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metric names accepted by the recorder
const (
	MetricSyncAccount          = "sync.account"
	MetricTransactionsIngested = "sync.transactions.ingested"
	MetricRecordsSkipped       = "sync.records.skipped"
	MetricSyncRateLimited      = "sync.rate_limited"
	MetricSeriesUpserted       = "recurring.series.upserted"
	MetricAutoCategorized      = "transactions.auto_categorized"
	MetricSyncDuration         = "sync.duration"
	MetricDetectionDuration    = "recurring.detection"
	MetricCircuitBreakerState  = "provider.circuit_breaker.state"
)

type PrometheusMetrics struct {
	syncAccounts         *prometheus.CounterVec
	transactionsIngested prometheus.Counter
	recordsSkipped       prometheus.Counter
	rateLimited          prometheus.Counter
	seriesUpserted       *prometheus.CounterVec
	autoCategorized      prometheus.Counter
	syncDuration         *prometheus.HistogramVec
	detectionDuration    prometheus.Histogram
	circuitBreakerState  prometheus.Gauge
}

// NewPrometheusMetrics registers the sync metrics with reg, or the default registerer when reg is nil
func NewPrometheusMetrics(reg prometheus.Registerer) MetricsRecorderInterface {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &PrometheusMetrics{
		syncAccounts: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sync_accounts_total",
				Help: "Total number of linked accounts processed by sync",
			},
			[]string{"kind", "status"},
		),
		transactionsIngested: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "sync_transactions_ingested_total",
				Help: "Total number of provider transactions upserted",
			},
		),
		recordsSkipped: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "sync_records_skipped_total",
				Help: "Total number of malformed provider records skipped",
			},
		),
		rateLimited: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "sync_rate_limited_total",
				Help: "Total number of manual syncs rejected during cooldown",
			},
		),
		seriesUpserted: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "recurring_series_upserted_total",
				Help: "Total number of recurring series upserted",
			},
			[]string{"source"},
		),
		autoCategorized: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "transactions_auto_categorized_total",
				Help: "Total number of transactions given a derived category",
			},
		),
		syncDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "sync_duration_milliseconds",
				Help:    "Duration of a user sync in milliseconds",
				Buckets: prometheus.ExponentialBuckets(10, 2, 12),
			},
			[]string{"kind"},
		),
		detectionDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "recurring_detection_duration_milliseconds",
				Help:    "Duration of local recurring pattern detection in milliseconds",
				Buckets: prometheus.ExponentialBuckets(0.5, 2, 12),
			},
		),
		circuitBreakerState: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "provider_circuit_breaker_state",
				Help: "Provider circuit breaker state (0=closed, 1=open, 2=half-open)",
			},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case MetricSyncAccount:
		m.syncAccounts.WithLabelValues(tags["kind"], tags["status"]).Inc()
	case MetricRecordsSkipped:
		m.recordsSkipped.Inc()
	case MetricSyncRateLimited:
		m.rateLimited.Inc()
	}
}

// AddCounter adds value to a counter; unknown names and non-positive values are ignored
func (m *PrometheusMetrics) AddCounter(name string, value float64, tags map[string]string) {
	if value <= 0 {
		return
	}
	switch name {
	case MetricTransactionsIngested:
		m.transactionsIngested.Add(value)
	case MetricRecordsSkipped:
		m.recordsSkipped.Add(value)
	case MetricSeriesUpserted:
		m.seriesUpserted.WithLabelValues(tags["source"]).Add(value)
	case MetricAutoCategorized:
		m.autoCategorized.Add(value)
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration, tags map[string]string) {
	ms := float64(duration.Microseconds()) / 1000
	switch name {
	case MetricSyncDuration:
		m.syncDuration.WithLabelValues(tags["kind"]).Observe(ms)
	case MetricDetectionDuration:
		m.detectionDuration.Observe(ms)
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case MetricCircuitBreakerState:
		m.circuitBreakerState.Set(value)
	}
}
