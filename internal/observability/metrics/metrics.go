package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDurationSeconds = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	WorkflowOperationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "registration_workflow_operations_total",
			Help: "Workflow operations by outcome code.",
		},
		[]string{"operation", "result"},
	)

	OtpIssuedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "registration_otp_issued_total",
			Help: "Total number of one-time codes issued.",
		},
	)
)

func MustRegister() {
	prometheus.MustRegister(
		HTTPRequestsTotal,
		HTTPRequestDurationSeconds,
		WorkflowOperationsTotal,
		OtpIssuedTotal,
	)
}

// RecordOperation counts one workflow call; an empty code means success.
func RecordOperation(operation, code string) {
	if code == "" {
		code = "success"
	}
	WorkflowOperationsTotal.WithLabelValues(operation, code).Inc()
}
