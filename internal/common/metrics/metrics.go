// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	IntentsClassified = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "assistant_intents_classified_total",
			Help: "Total number of intents produced by the classifier",
		},
		[]string{"action"},
	)

	WorkflowsCompleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "assistant_workflows_completed_total",
			Help: "Total number of workflows completed successfully",
		},
		[]string{"workflow"},
	)

	WorkflowsFailed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "assistant_workflows_failed_total",
			Help: "Total number of workflows that returned a failure",
		},
		[]string{"workflow", "error_code"},
	)

	WorkflowDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "assistant_workflow_duration_seconds",
			Help: "Duration of workflow execution in seconds",
		},
		[]string{"workflow"},
	)

	CatalogRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "assistant_catalog_requests_total",
			Help: "Total number of catalog service requests",
		},
		[]string{"endpoint", "status"},
	)
)
