package engine

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	cacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "medalboard_dataset_cache_hits_total",
		Help: "Dataset loads served from the in-memory cache.",
	})

	cacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "medalboard_dataset_cache_misses_total",
		Help: "Dataset loads that had to read the source file.",
	})

	loadFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "medalboard_dataset_load_failures_total",
		Help: "Dataset reads that returned an error.",
	})

	loadDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "medalboard_dataset_load_duration_seconds",
		Help:    "Time spent reading, parsing and sorting a dataset.",
		Buckets: prometheus.ExponentialBuckets(0.001, 4, 8),
	})
)
