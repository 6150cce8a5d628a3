package recipegen

import "github.com/prometheus/client_golang/prometheus"

var (
	generationDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "nutria",
		Subsystem: "recipegen",
		Name:      "request_duration_seconds",
		Help:      "Latency of generative recipe requests, including decoding.",
		Buckets:   prometheus.ExponentialBuckets(0.25, 2, 8),
	})

	generationFailures = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "nutria",
		Subsystem: "recipegen",
		Name:      "failures_total",
		Help:      "Generative recipe requests that failed, labeled by reason.",
	}, []string{"reason"})

	recipesGenerated = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "nutria",
		Subsystem: "recipegen",
		Name:      "recipes_generated_total",
		Help:      "Recipes accepted from the generative model.",
	})
)

func init() {
	prometheus.MustRegister(generationDuration, generationFailures, recipesGenerated)
}

func recordFailure(reason string) {
	generationFailures.WithLabelValues(reason).Inc()
}
