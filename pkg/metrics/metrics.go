// Package metrics declares the Prometheus collectors shared by the service.
// Collectors register with the default registry, which the API exposes on the
// configured metrics path.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "discovery"

// DefaultBuckets provides a common set of histogram buckets in seconds that can
// be reused across the application for latency metrics.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals

//nolint: gochecknoglobals
var (
	// CacheLookups counts proximity cache lookups by result ("hit" or "miss").
	CacheLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "proximity",
		Name:      "cache_lookups_total",
		Help:      "Proximity result cache lookups.",
	}, []string{"result"})

	// RankingDuration observes how long a ranking pipeline run takes.
	RankingDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "ranking",
		Name:      "duration_seconds",
		Help:      "Duration of ranking pipeline runs.",
		Buckets:   DefaultBuckets,
	}, []string{"pipeline"})

	// CuratorOutcomes counts suggestion batches by the curator that produced
	// them and, for fallbacks, the reason the AI curator was bypassed.
	CuratorOutcomes = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "suggestions",
		Name:      "curator_outcomes_total",
		Help:      "Suggestion batches by curator source and outcome.",
	}, []string{"source", "outcome"})

	// JobsProcessed counts background jobs by kind and outcome.
	JobsProcessed = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "worker",
		Name:      "jobs_processed_total",
		Help:      "Background jobs processed by kind and outcome.",
	}, []string{"kind", "outcome"})
)
