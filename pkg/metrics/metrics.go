package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// APILatency measures HTTP request latencies.
	APILatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "jobboard_api_latency_seconds",
			Help:    "API endpoint latency",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	// CacheHits counts query cache hits per entity and operation (list|filter|get).
	CacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "jobboard_cache_hits_total",
			Help: "Total number of query cache hits",
		},
		[]string{"entity", "operation"},
	)

	// CacheMisses counts query cache misses per entity and operation.
	CacheMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "jobboard_cache_misses_total",
			Help: "Total number of query cache misses",
		},
		[]string{"entity", "operation"},
	)

	// StoreQueries counts queries issued against the record store.
	StoreQueries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "jobboard_store_queries_total",
			Help: "Total number of record store queries",
		},
		[]string{"entity", "operation"},
	)

	// WarmupRuns records scheduled cache warm-up outcomes (success|failure).
	WarmupRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "jobboard_warmup_runs_total",
			Help: "Total number of scheduled warm-up calls",
		},
		[]string{"result"},
	)
)
