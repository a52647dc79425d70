package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
)

type Metrics struct {
	SearchDuration  *prometheus.HistogramVec
	SearchErrors    *prometheus.CounterVec
	SearchRequests  *prometheus.CounterVec
	FetcherRequests *prometheus.CounterVec
	FetcherErrors   *prometheus.CounterVec
	CacheHits       *prometheus.CounterVec
	CacheMisses     *prometheus.CounterVec
}

func NewMetrics() *Metrics {
	return &Metrics{
		SearchDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "search_duration_seconds",
			Help:    "Duration of search requests",
			Buckets: []float64{0.1, 0.5, 1, 2, 5, 10, 20, 30, 60},
		}, []string{"category"}),
		SearchErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "search_errors_total",
			Help: "Number of failed search requests",
		}, []string{"category"}),
		SearchRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "search_requests_total",
			Help: "Number of search requests",
		}, []string{"category"}),
		FetcherRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "fetcher_requests_total",
			Help: "Number of mirror requests per fetcher",
		}, []string{"fetcher"}),
		FetcherErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "fetcher_errors_total",
			Help: "Number of failed mirror requests per fetcher",
		}, []string{"fetcher"}),
		CacheHits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "cache_hits_total",
			Help: "Number of cache hits",
		}, []string{"cache"}),
		CacheMisses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "cache_misses_total",
			Help: "Number of cache misses",
		}, []string{"cache"}),
	}
}

func (m *Metrics) Register() {
	prometheus.MustRegister(m.SearchDuration)
	prometheus.MustRegister(m.SearchErrors)
	prometheus.MustRegister(m.SearchRequests)
	prometheus.MustRegister(m.FetcherRequests)
	prometheus.MustRegister(m.FetcherErrors)
	prometheus.MustRegister(m.CacheHits)
	prometheus.MustRegister(m.CacheMisses)
}
