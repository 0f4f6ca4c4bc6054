// Package metrics exposes prometheus collectors for the service.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Completion service call latency in milliseconds.
	CompletionCallLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "completion_call_latency_ms",
			Help:    "Completion service call latency in milliseconds",
			Buckets: prometheus.ExponentialBuckets(100, 2, 10), // 100ms to ~100s
		},
		[]string{"provider", "status"},
	)

	// Emails run through analysis.
	EmailAnalyzedCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "email_analyzed_count",
			Help: "Total number of emails analyzed",
		},
		[]string{"status"}, // status: success, degraded
	)

	// Tasks generated through the API.
	TaskGenerationCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "task_generation_count",
			Help: "Total number of tasks generated",
		},
		[]string{"source"},
	)
)

// RecordCompletionCallLatency records one upstream completion call.
func RecordCompletionCallLatency(provider, status string, duration time.Duration) {
	CompletionCallLatency.WithLabelValues(provider, status).Observe(float64(duration.Milliseconds()))
}

// RecordEmailAnalyzed counts one analyze-email operation.
func RecordEmailAnalyzed(status string) {
	EmailAnalyzedCount.WithLabelValues(status).Inc()
}

// RecordTaskGenerated counts one created task.
func RecordTaskGenerated(source string) {
	TaskGenerationCount.WithLabelValues(source).Inc()
}
