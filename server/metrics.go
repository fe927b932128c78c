package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// metrics groups the server collectors. Each Server owns its registry so
// several servers can live in one process.
type metrics struct {
	requests    *prometheus.CounterVec
	buildTime   prometheus.Histogram
	buildErrors prometheus.Counter
	cacheHits   prometheus.Counter
	cacheMisses prometheus.Counter
}

func newMetrics(reg prometheus.Registerer) *metrics {
	f := promauto.With(reg)

	return &metrics{
		requests: f.NewCounterVec(prometheus.CounterOpts{
			Name: "sinspline_http_requests_total",
			Help: "HTTP requests by method and status code",
		}, []string{"method", "code"}),
		buildTime: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "sinspline_model_build_seconds",
			Help:    "Time to fit and evaluate one model",
			Buckets: prometheus.ExponentialBuckets(0.0001, 2, 16), // 0.1ms to ~3s
		}),
		buildErrors: f.NewCounter(prometheus.CounterOpts{
			Name: "sinspline_model_build_errors_total",
			Help: "Model builds rejected or failed",
		}),
		cacheHits: f.NewCounter(prometheus.CounterOpts{
			Name: "sinspline_model_cache_hits_total",
			Help: "Models served from the cache",
		}),
		cacheMisses: f.NewCounter(prometheus.CounterOpts{
			Name: "sinspline_model_cache_misses_total",
			Help: "Models built on demand",
		}),
	}
}
