package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "pressmatch",
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request duration",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	MatchesComputed = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "pressmatch",
		Name:      "matches_computed_total",
		Help:      "Total match results produced, by match kind",
	}, []string{"kind"})

	EmbeddingsGenerated = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "pressmatch",
		Name:      "embeddings_generated_total",
		Help:      "Total embeddings generated, by profile type",
	}, []string{"profile_type"})

	CandidatesScanned = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "pressmatch",
		Name:      "candidates_scanned",
		Help:      "Opposite-side candidate set size per match query",
		Buckets:   prometheus.ExponentialBuckets(1, 4, 8),
	}, []string{"kind"})
)
