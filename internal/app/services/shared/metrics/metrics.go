package metrics

import (
	"strings"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	BackendRequestCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "assessment_backend_requests_total",
			Help: "Requests sent to the analysis backend by outcome",
		},
		[]string{"method", "resource", "outcome"},
	)

	BackendRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "assessment_backend_request_duration_seconds",
			Help:    "Duration of requests sent to the analysis backend",
			Buckets: []float64{0.05, 0.1, 0.5, 1, 2, 5, 15, 60, 120},
		},
		[]string{"method", "resource"},
	)

	ReportPollCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "assessment_report_polls_total",
			Help: "Report status polls by resulting status",
		},
		[]string{"status"},
	)

	ReportTransitionCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "assessment_report_transitions_total",
			Help: "Report state transitions",
		},
		[]string{"from", "to"},
	)

	GatewayRequestCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "assessment_gateway_requests_total",
			Help: "Total number of gateway HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	GatewayRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "assessment_gateway_request_duration_seconds",
			Help:    "Duration of gateway HTTP requests",
			Buckets: []float64{0.01, 0.1, 0.5, 1, 2, 5, 30, 120},
		},
		[]string{"method", "route"},
	)

	registerOnce sync.Once
)

// Register adds every collector to registerer. Later calls are no-ops.
func Register(registerer prometheus.Registerer) {
	registerOnce.Do(func() {
		registerer.MustRegister(
			BackendRequestCounter,
			BackendRequestDuration,
			ReportPollCounter,
			ReportTransitionCounter,
			GatewayRequestCounter,
			GatewayRequestDuration,
		)
	})
}

// ResourceLabel keeps the first path segment so submission ids never
// become label values.
func ResourceLabel(path string) string {
	path = strings.Trim(path, "/")
	if i := strings.IndexByte(path, '/'); i >= 0 {
		path = path[:i]
	}
	if i := strings.IndexByte(path, '?'); i >= 0 {
		path = path[:i]
	}
	if path == "" {
		return "root"
	}
	return path
}
