package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "portfolio"

var (
	ProviderRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "provider_requests_total",
		Help:      "Chain-data provider requests by family, operation and outcome.",
	}, []string{"family", "operation", "outcome"})

	ProviderLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "provider_request_duration_seconds",
		Help:      "Chain-data provider request latency.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"family", "operation"})

	CacheLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cache_lookups_total",
		Help:      "Response cache lookups by cache and result.",
	}, []string{"cache", "result"})

	EnrichmentFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "enrichment_failures_total",
		Help:      "Per-item enrichment failures absorbed into zero values.",
	}, []string{"operation"})

	SnapshotBuilds = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "snapshot_builds_total",
		Help:      "Wallet snapshot builds by chain and outcome.",
	}, []string{"chain", "outcome"})
)

// Outcome labels.
const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
	CacheHit       = "hit"
	CacheMiss      = "miss"
)
