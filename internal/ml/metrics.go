package ml

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// PredictionsTotal tracks predictions served, labelled by cache outcome.
	PredictionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "cricket_predictor",
			Name:      "predictions_total",
			Help:      "Total number of win-probability predictions served",
		},
		[]string{"cache_hit"},
	)

	// PredictionLatency tracks end-to-end prediction latency.
	PredictionLatency = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "cricket_predictor",
			Name:      "prediction_latency_seconds",
			Help:      "Prediction latency in seconds",
			Buckets:   prometheus.DefBuckets,
		},
	)

	// InputErrorsTotal tracks rejected snapshots, labelled by failure reason.
	InputErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "cricket_predictor",
			Name:      "input_errors_total",
			Help:      "Total number of match-state snapshots rejected as invalid",
		},
		[]string{"reason"},
	)

	// UnknownCategoricalTotal tracks inference inputs outside the training vocabulary.
	UnknownCategoricalTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "cricket_predictor",
			Name:      "unknown_categorical_total",
			Help:      "Total number of categorical values unseen at training time",
		},
		[]string{"field"},
	)

	// TrainingIterations records the optimizer iterations of the last fit.
	TrainingIterations = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "cricket_predictor",
			Name:      "training_iterations",
			Help:      "Optimizer iterations used by the most recent training run",
		},
	)

	// TrainingExamplesTotal records the examples surviving the invariant filter.
	TrainingExamplesTotal = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "cricket_predictor",
			Name:      "training_examples",
			Help:      "Training examples used by the most recent training run",
		},
	)
)
