package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "partexplorer"

var (
	SearchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "searches_total",
			Help:      "Dispatched searches by mode and outcome.",
		},
		[]string{"mode", "outcome"},
	)

	CacheLookupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_lookups_total",
			Help:      "Response cache lookups by tier and result.",
		},
		[]string{"tier", "result"},
	)

	StaleResponsesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "stale_responses_total",
			Help:      "Responses discarded because a newer request superseded them.",
		},
	)

	UpstreamDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "upstream_request_duration_seconds",
			Help:      "Latency of remote catalog calls.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"endpoint", "status"},
	)

	ActiveSessions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "active_sessions",
			Help:      "Browsing sessions currently held in memory.",
		},
	)
)

const (
	OutcomeOK       = "ok"
	OutcomeCached   = "cached"
	OutcomeFailed   = "failed"
	OutcomeStale    = "stale"
	ResultHit       = "hit"
	ResultMiss      = "miss"
	ResultError     = "error"
	TierLocal       = "local"
	TierShared      = "shared"
	StatusOK        = "ok"
	StatusError     = "error"
	StatusCancelled = "cancelled"
)
