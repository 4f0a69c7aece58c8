package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	ModeLocal  = "local"
	ModeRemote = "remote"

	OutcomeSuccess = "success"
	OutcomeError   = "error"
)

var (
	GenerationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mockup_generations_total",
			Help: "Total number of mockup generations by mode and outcome",
		},
		[]string{"mode", "outcome"},
	)

	GenerationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "mockup_generation_duration_seconds",
			Help:    "Duration of mockup generation in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 4, 10),
		},
		[]string{"mode"},
	)

	ModelAttemptsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mockup_model_attempts_total",
			Help: "Total number of generation attempts per model candidate",
		},
		[]string{"model", "outcome"},
	)

	TranscriptionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mockup_transcriptions_total",
			Help: "Total number of speech transcriptions by outcome",
		},
		[]string{"outcome"},
	)
)

// ObserveGeneration records one completed call of a generator.
func ObserveGeneration(mode, outcome string, elapsed time.Duration) {
	GenerationsTotal.WithLabelValues(mode, outcome).Inc()
	GenerationDuration.WithLabelValues(mode).Observe(elapsed.Seconds())
}

// ObserveAttempt records one model call on the fallback ladder.
func ObserveAttempt(model string, err error) {
	outcome := OutcomeSuccess
	if err != nil {
		outcome = OutcomeError
	}
	ModelAttemptsTotal.WithLabelValues(model, outcome).Inc()
}
