// Package metrics exposes the gateway's prometheus collectors.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	executionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "flowgate_executions_total",
		Help: "Gateway invocations by workflow and outcome.",
	}, []string{"workflow_id", "status"})

	executionDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "flowgate_execution_duration_seconds",
		Help:    "End-to-end gateway pipeline duration.",
		Buckets: prometheus.DefBuckets,
	}, []string{"workflow_id"})

	recorderQueueDepth = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "flowgate_recorder_queue_depth",
		Help: "Audit records waiting to be persisted.",
	})

	recorderRetries = promauto.NewCounter(prometheus.CounterOpts{
		Name: "flowgate_recorder_retries_total",
		Help: "Transient storage errors retried while persisting audit records.",
	})

	recorderFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "flowgate_recorder_failures_total",
		Help: "Audit records dropped after exhausting the retry budget.",
	})
)

func ObserveExecution(workflowID, status string, elapsed time.Duration) {
	executionsTotal.WithLabelValues(workflowID, status).Inc()
	executionDuration.WithLabelValues(workflowID).Observe(elapsed.Seconds())
}

func SetRecorderQueueDepth(n int) {
	recorderQueueDepth.Set(float64(n))
}

func IncRecorderRetry() {
	recorderRetries.Inc()
}

func IncRecorderFailure() {
	recorderFailures.Inc()
}
