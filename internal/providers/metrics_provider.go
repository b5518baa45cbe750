package providers

import (
	"studynexus/internal/models"
	"studynexus/internal/structures"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type MetricsProviderInterface interface {
	IncRequestsTotal(endpoint string, status int)
	ObserveRequestDuration(endpoint string, duration time.Duration)
	IncCacheHits()
	IncCacheMisses()
	ObservePersistenceDuration(duration time.Duration)
	IncLedgerOps(op string, ok bool)
	IncAccrualTicks()
}

// LedgerStatsSource feeds the balance and staking gauges.
type LedgerStatsSource interface {
	LedgerStats() models.LedgerStats
}

type MetricsProvider struct {
	requestsTotal       *prometheus.CounterVec
	requestDuration     *prometheus.HistogramVec
	cacheHits           prometheus.Counter
	cacheMisses         prometheus.Counter
	persistenceDuration prometheus.Histogram
	ledgerOps           *prometheus.CounterVec
	accrualTicks        prometheus.Counter
}

func (m *MetricsProvider) IncRequestsTotal(endpoint string, status int) {
	m.requestsTotal.WithLabelValues(endpoint, httpStatusBucket(status)).Inc()
}

func (m *MetricsProvider) ObserveRequestDuration(endpoint string, duration time.Duration) {
	m.requestDuration.WithLabelValues(endpoint).Observe(duration.Seconds())
}

func (m *MetricsProvider) IncCacheHits() {
	m.cacheHits.Inc()
}

func (m *MetricsProvider) IncCacheMisses() {
	m.cacheMisses.Inc()
}

func (m *MetricsProvider) ObservePersistenceDuration(duration time.Duration) {
	m.persistenceDuration.Observe(duration.Seconds())
}

func (m *MetricsProvider) IncLedgerOps(op string, ok bool) {
	result := "ok"
	if !ok {
		result = "refused"
	}
	m.ledgerOps.WithLabelValues(op, result).Inc()
}

func (m *MetricsProvider) IncAccrualTicks() {
	m.accrualTicks.Inc()
}

func httpStatusBucket(code int) string {
	switch {
	case code < 200:
		return "1xx"
	case code < 300:
		return "2xx"
	case code < 400:
		return "3xx"
	case code < 500:
		return "4xx"
	default:
		return "5xx"
	}
}

func NewMetricsProvider(conf *structures.Config, source LedgerStatsSource) MetricsProviderInterface {
	if !conf.Metrics.Enabled {
		return &noopMetrics{}
	}

	m := &MetricsProvider{
		requestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "nexus_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"endpoint", "status"}),

		requestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "nexus_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"endpoint"}),

		cacheHits: promauto.NewCounter(prometheus.CounterOpts{
			Name: "nexus_cache_hits_total",
			Help: "Total number of cache hits",
		}),

		cacheMisses: promauto.NewCounter(prometheus.CounterOpts{
			Name: "nexus_cache_misses_total",
			Help: "Total number of cache misses",
		}),

		persistenceDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "nexus_persistence_duration_seconds",
			Help:    "Duration of persistence operations in seconds",
			Buckets: prometheus.DefBuckets,
		}),

		ledgerOps: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "nexus_ledger_operations_total",
			Help: "Ledger operations by name and result",
		}, []string{"op", "result"}),

		accrualTicks: promauto.NewCounter(prometheus.CounterOpts{
			Name: "nexus_accrual_ticks_total",
			Help: "Total number of reward accrual ticks",
		}),
	}

	promauto.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "nexus_balance",
		Help: "Token balance of the connected profile",
	}, func() float64 {
		return source.LedgerStats().Balance
	})

	promauto.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "nexus_staked_amount",
		Help: "Tokens currently staked",
	}, func() float64 {
		return source.LedgerStats().Staked
	})

	promauto.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "nexus_pending_rewards",
		Help: "Accrued staking rewards not yet claimed",
	}, func() float64 {
		return source.LedgerStats().Pending
	})

	return m
}

// noopMetrics is a no-op implementation for when metrics are disabled.
type noopMetrics struct{}

func (n *noopMetrics) IncRequestsTotal(_ string, _ int)                 {}
func (n *noopMetrics) ObserveRequestDuration(_ string, _ time.Duration) {}
func (n *noopMetrics) IncCacheHits()                                    {}
func (n *noopMetrics) IncCacheMisses()                                  {}
func (n *noopMetrics) ObservePersistenceDuration(_ time.Duration)       {}
func (n *noopMetrics) IncLedgerOps(_ string, _ bool)                    {}
func (n *noopMetrics) IncAccrualTicks()                                 {}
