package metrics

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "tone"

var (
	analysesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "analyses_total",
			Help:      "Document analyses by outcome",
		},
		[]string{"status"},
	)

	analysisDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "analysis_duration_seconds",
			Help:      "Duration of document analyses in seconds",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10, 30, 60},
		},
	)

	suggestionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "suggestions_total",
			Help:      "Suggestion requests by outcome",
		},
		[]string{"status"},
	)

	emotionFallbackTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "emotion_lexicon_fallback_total",
			Help:      "Emotion scorings that fell back to the lexicon",
		},
	)

	rewritesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rewrites_total",
			Help:      "Sentence rewrites by method",
		},
		[]string{"method"},
	)

	classifierCallsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "classifier_calls_total",
			Help:      "Classification calls by model and outcome",
		},
		[]string{"model", "status"},
	)
)

// ObserveAnalysis records one analysis outcome and its duration.
func ObserveAnalysis(status string, d time.Duration) {
	analysesTotal.WithLabelValues(status).Inc()
	analysisDuration.Observe(d.Seconds())
}

// IncSuggestions counts one suggestion request.
func IncSuggestions(status string) {
	suggestionsTotal.WithLabelValues(status).Inc()
}

// IncEmotionFallback counts one lexicon substitution.
func IncEmotionFallback() {
	emotionFallbackTotal.Inc()
}

// IncRewrite counts one rewritten sentence.
func IncRewrite(method string) {
	rewritesTotal.WithLabelValues(method).Inc()
}

// IncClassifierCall counts one classification request.
func IncClassifierCall(model, status string) {
	classifierCallsTotal.WithLabelValues(model, status).Inc()
}

// Handler exposes metrics in Prometheus text format.
func Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}
