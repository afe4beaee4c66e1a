package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	recomputeDuration prometheus.Histogram
	recomputeSize     prometheus.Gauge
	recomputesTotal   prometheus.Counter
	mutationsTotal    *prometheus.CounterVec
	backupsTotal      *prometheus.CounterVec
}

func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{
		recomputeDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "ledger_recompute_duration_milliseconds",
				Help:    "Statistics recomputation duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		recomputeSize: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "ledger_transactions_total",
				Help: "Number of transactions in the latest snapshot",
			},
		),
		recomputesTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "ledger_recomputes_total",
				Help: "Total number of statistics recomputations",
			},
		),
		mutationsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_mutations_total",
				Help: "Total number of store mutations by table, operation, and status",
			},
			[]string{"table", "operation", "status"},
		),
		backupsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_backups_total",
				Help: "Total number of backup operations by direction and status",
			},
			[]string{"operation", "status"},
		),
	}
}

func (m *PrometheusMetrics) RecordRecompute(duration time.Duration, transactionCount int) {
	m.recomputeDuration.Observe(float64(duration.Milliseconds()))
	m.recomputeSize.Set(float64(transactionCount))
	m.recomputesTotal.Inc()
}

func (m *PrometheusMetrics) RecordMutation(table, operation string, err error) {
	m.mutationsTotal.WithLabelValues(table, operation, statusLabel(err)).Inc()
}

func (m *PrometheusMetrics) RecordBackup(operation string, err error) {
	m.backupsTotal.WithLabelValues(operation, statusLabel(err)).Inc()
}

func statusLabel(err error) string {
	if err != nil {
		return "failed"
	}
	return "success"
}

// NoopMetrics discards every observation; used in tests.
type NoopMetrics struct{}

func NewNoopMetrics() MetricsRecorderInterface { return &NoopMetrics{} }

func (NoopMetrics) RecordRecompute(time.Duration, int) {}

func (NoopMetrics) RecordMutation(string, string, error) {}

func (NoopMetrics) RecordBackup(string, error) {}
