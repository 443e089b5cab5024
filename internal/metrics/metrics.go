// Package metrics exposes ledger activity to Prometheus.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Outcome string

const (
	Success Outcome = "success"
	Error   Outcome = "error"
)

func (o Outcome) String() string {
	return string(o)
}

// Trade sides
const (
	SideBuy  = "buy"
	SideSell = "sell"
)

var defaultHistogramBucketsSeconds = []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1}

// Metrics holds the collectors of one node. Each instance has its own
// registry so tests and embedded nodes do not collide.
type Metrics struct {
	registry *prometheus.Registry

	txApplied       *prometheus.CounterVec
	applyDuration   *prometheus.HistogramVec
	tradeVolume     *prometheus.CounterVec
	tradeFees       prometheus.Counter
	historyIndexing *prometheus.CounterVec
	rpcRequests     *prometheus.CounterVec
	rpcDuration     *prometheus.HistogramVec
}

// New creates and registers the collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),

		txApplied: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "memeledger_transactions_total",
				Help: "Transactions processed, by type and result code.",
			},
			[]string{"type", "result"},
		),
		applyDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "memeledger_apply_duration_seconds",
				Help:    "Histogram of transaction apply durations in seconds.",
				Buckets: defaultHistogramBucketsSeconds,
			},
			[]string{"type"},
		),
		tradeVolume: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "memeledger_trade_volume_total",
				Help: "Base currency settled by trades, by side.",
			},
			[]string{"side"},
		),
		tradeFees: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "memeledger_sell_fees_total",
				Help: "Base currency retained by creators as sell fees.",
			},
		),
		historyIndexing: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "memeledger_history_index_total",
				Help: "Transaction history writes, by outcome.",
			},
			[]string{"status"},
		),
		rpcRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "memeledger_rpc_requests_total",
				Help: "RPC requests, by method and outcome.",
			},
			[]string{"method", "status"},
		),
		rpcDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "memeledger_rpc_duration_seconds",
				Help:    "Histogram of RPC handling durations in seconds.",
				Buckets: defaultHistogramBucketsSeconds,
			},
			[]string{"method"},
		),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.txApplied,
		m.applyDuration,
		m.tradeVolume,
		m.tradeFees,
		m.historyIndexing,
		m.rpcRequests,
		m.rpcDuration,
	)
	return m
}

// Registry returns the registry the collectors are registered with.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// ObserveApply records one processed transaction.
func (m *Metrics) ObserveApply(txType, result string, d time.Duration) {
	if m == nil {
		return
	}
	m.txApplied.WithLabelValues(txType, result).Inc()
	m.applyDuration.WithLabelValues(txType).Observe(d.Seconds())
}

// ObserveTrade records the base currency a trade moved and its fee.
func (m *Metrics) ObserveTrade(side string, net, fee uint64) {
	if m == nil {
		return
	}
	m.tradeVolume.WithLabelValues(side).Add(float64(net))
	if fee > 0 {
		m.tradeFees.Add(float64(fee))
	}
}

// ObserveHistoryIndex records a history write.
func (m *Metrics) ObserveHistoryIndex(outcome Outcome) {
	if m == nil {
		return
	}
	m.historyIndexing.WithLabelValues(outcome.String()).Inc()
}

// ObserveRPC records one RPC call.
func (m *Metrics) ObserveRPC(method string, outcome Outcome, d time.Duration) {
	if m == nil {
		return
	}
	m.rpcRequests.WithLabelValues(method, outcome.String()).Inc()
	m.rpcDuration.WithLabelValues(method).Observe(d.Seconds())
}
