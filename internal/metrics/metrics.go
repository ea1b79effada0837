// internal/metrics/metrics.go
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Transfer outcome labels.
const (
	ResultOK                = "ok"
	ResultReplayed          = "replayed"
	ResultInsufficientFunds = "insufficient_funds"
	ResultError             = "error"
)

// Metrics holds the Prometheus instruments for the ledger engine.
type Metrics struct {
	transfersTotal      *prometheus.CounterVec
	transferDuration    *prometheus.HistogramVec
	entriesWrittenTotal prometheus.Counter
	balanceReadsTotal   prometheus.Counter
}

// NewMetrics registers and returns the engine's instruments on the default
// registry.
func NewMetrics() *Metrics {
	return &Metrics{
		transfersTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "wallet_ledger",
				Name:      "transfers_total",
				Help:      "Total transfer requests partitioned by type and result.",
			},
			[]string{"type", "result"},
		),
		transferDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "wallet_ledger",
				Name:      "transfer_duration_seconds",
				Help:      "Transfer unit-of-work duration, including lock waits.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"type"},
		),
		entriesWrittenTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Namespace: "wallet_ledger",
				Name:      "entries_written_total",
				Help:      "Total ledger entries appended.",
			},
		),
		balanceReadsTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Namespace: "wallet_ledger",
				Name:      "balance_reads_total",
				Help:      "Total derived balance reads.",
			},
		),
	}
}

// ObserveTransfer records one finished transfer request.
func (m *Metrics) ObserveTransfer(txType, result string, started time.Time) {
	if m == nil {
		return
	}
	m.transfersTotal.WithLabelValues(txType, result).Inc()
	m.transferDuration.WithLabelValues(txType).Observe(time.Since(started).Seconds())
}

// AddEntriesWritten records appended ledger entries.
func (m *Metrics) AddEntriesWritten(n int) {
	if m == nil {
		return
	}
	m.entriesWrittenTotal.Add(float64(n))
}

// IncBalanceReads records one derived balance read.
func (m *Metrics) IncBalanceReads() {
	if m == nil {
		return
	}
	m.balanceReadsTotal.Inc()
}
