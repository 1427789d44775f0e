// Package metrics registers the gateway's Prometheus collectors. Collectors
// are package-level and registered once; components record into them directly.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ChatTurns counts completed chat turns by route and error code
	// ("" for success).
	ChatTurns = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "aegis",
		Subsystem: "chat",
		Name:      "turns_total",
		Help:      "Completed chat turns by route and error code.",
	}, []string{"route", "error_code"})

	// ChatLatency observes end-to-end chat turn latency in seconds.
	ChatLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "aegis",
		Subsystem: "chat",
		Name:      "turn_duration_seconds",
		Help:      "End-to-end chat turn latency.",
		Buckets:   []float64{0.1, 0.25, 0.5, 1, 2, 5, 10, 20, 30, 60},
	}, []string{"route"})

	// RetrievalLatency observes retrieval latency in seconds per backend.
	RetrievalLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "aegis",
		Subsystem: "retrieval",
		Name:      "duration_seconds",
		Help:      "Retrieval latency per backend.",
		Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10},
	}, []string{"backend"})

	// RetrievalFallbacks counts fallback activations by reason.
	RetrievalFallbacks = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "aegis",
		Subsystem: "retrieval",
		Name:      "fallbacks_total",
		Help:      "Retrieval fallback activations by reason.",
	}, []string{"reason"})

	// LLMLatency observes LLM call latency in seconds by mode (sync/stream).
	LLMLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "aegis",
		Subsystem: "llm",
		Name:      "duration_seconds",
		Help:      "LLM invocation latency.",
		Buckets:   []float64{0.25, 0.5, 1, 2, 5, 10, 20, 30, 60},
	}, []string{"mode"})

	// RenderJobs counts render jobs reaching a terminal status.
	RenderJobs = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "aegis",
		Subsystem: "render",
		Name:      "jobs_total",
		Help:      "Render jobs reaching a terminal status.",
	}, []string{"status"})

	// RenderStepDuration observes per-step render durations in seconds.
	RenderStepDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "aegis",
		Subsystem: "render",
		Name:      "step_duration_seconds",
		Help:      "Render step durations.",
		Buckets:   []float64{0.5, 1, 2, 5, 10, 30, 60, 120, 300, 600},
	}, []string{"step"})

	// PIIBlocks counts fail-closed PII detector blocks by stage.
	PIIBlocks = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "aegis",
		Subsystem: "pii",
		Name:      "blocks_total",
		Help:      "Fail-closed PII detector blocks by stage.",
	}, []string{"stage"})

	// TelemetryDropped counts telemetry events dropped after a failed forward.
	TelemetryDropped = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "aegis",
		Subsystem: "telemetry",
		Name:      "dropped_total",
		Help:      "Telemetry events dropped after forwarder failure.",
	})
)
