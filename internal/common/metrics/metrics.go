// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	DecisionValidationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "decision_validations_total",
			Help: "Total number of decision notice validation passes",
		},
		[]string{"benefit_code", "outcome"},
	)

	DecisionValidationErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "decision_validation_errors_total",
			Help: "Total number of business validation errors emitted",
		},
		[]string{"benefit_code"},
	)

	WorkerJobsFailed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "worker_jobs_failed_total",
			Help: "Total number of jobs failed by worker",
		},
		[]string{"task_type", "error_code"},
	)

	WorkerJobDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "worker_job_duration_seconds",
			Help: "Duration of job processing in seconds",
		},
		[]string{"task_type"},
	)
)
