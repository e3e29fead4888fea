package observability

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus collectors exported by the HTTP API.
type Metrics struct {
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	MatchScore      prometheus.Histogram
	CacheHits       prometheus.Counter
	CacheMisses     prometheus.Counter
	StorageErrors   *prometheus.CounterVec
}

// NewMetrics registers the collectors on reg. A nil reg uses the default registerer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Metrics{
		RequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "resume_gap_http_requests_total",
				Help: "Total number of HTTP requests by route, method and status",
			},
			[]string{"route", "method", "status"},
		),
		RequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "resume_gap_http_request_duration_seconds",
				Help:    "Duration of HTTP requests in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"route", "method"},
		),
		MatchScore: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "resume_gap_overall_match_score",
				Help:    "Distribution of overall match scores produced by gap analysis",
				Buckets: prometheus.LinearBuckets(0, 10, 11),
			},
		),
		CacheHits: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "resume_gap_report_cache_hits_total",
				Help: "Total number of gap reports served from the cache",
			},
		),
		CacheMisses: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "resume_gap_report_cache_misses_total",
				Help: "Total number of gap report cache misses",
			},
		),
		StorageErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "resume_gap_storage_errors_total",
				Help: "Total number of cache and database failures by backend",
			},
			[]string{"backend"},
		),
	}
}

// ObserveRequest records one completed HTTP request.
func (m *Metrics) ObserveRequest(route, method string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.RequestsTotal.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	m.RequestDuration.WithLabelValues(route, method).Observe(elapsed.Seconds())
}

// ObserveScore records the overall match score of a computed report.
func (m *Metrics) ObserveScore(score int) {
	if m == nil {
		return
	}
	m.MatchScore.Observe(float64(score))
}

// ObserveCache records a cache lookup outcome.
func (m *Metrics) ObserveCache(hit bool) {
	if m == nil {
		return
	}
	if hit {
		m.CacheHits.Inc()
		return
	}
	m.CacheMisses.Inc()
}

// ObserveStorageError records a failure talking to backend ("redis" or "postgres").
func (m *Metrics) ObserveStorageError(backend string) {
	if m == nil {
		return
	}
	m.StorageErrors.WithLabelValues(backend).Inc()
}
