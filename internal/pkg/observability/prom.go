package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	ServiceName = "mutabaah"
)

var (
	StatsComputeDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    prometheus.BuildFQName(ServiceName, "stats", "compute_duration_seconds"),
		Help:    "Duration of dashboard stats computation in seconds",
		Buckets: prometheus.ExponentialBuckets(0.001, 2, 12),
	}, []string{"kind"})
	StatsCacheHits = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: prometheus.BuildFQName(ServiceName, "stats", "cache_lookups_total"),
		Help: "Dashboard stats cache lookups by result",
	}, []string{"result"})
	RecordsUpserted = promauto.NewCounter(prometheus.CounterOpts{
		Name: prometheus.BuildFQName(ServiceName, "records", "upserted_total"),
		Help: "Number of activity records upserted through ingest",
	})
	GeneratorRecordsWritten = promauto.NewCounter(prometheus.CounterOpts{
		Name: prometheus.BuildFQName(ServiceName, "generator", "records_written_total"),
		Help: "Number of synthetic activity records written",
	})
	GeneratorUserDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    prometheus.BuildFQName(ServiceName, "generator", "user_duration_seconds"),
		Help:    "Duration of regenerating one user's records in seconds",
		Buckets: prometheus.ExponentialBuckets(0.01, 2, 12),
	})
	GeneratorUserFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: prometheus.BuildFQName(ServiceName, "generator", "user_failures_total"),
		Help: "Number of users whose regeneration failed",
	})
)
