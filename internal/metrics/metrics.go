package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "lims",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "lims",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	ResultsRecorded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "lims",
			Name:      "results_recorded_total",
			Help:      "Sample test results stored, by outcome",
		},
		[]string{"outcome"},
	)

	CacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "lims",
			Subsystem: "cache",
			Name:      "lookups_total",
			Help:      "List cache lookups by resource and outcome",
		},
		[]string{"resource", "outcome"},
	)
)

func Outcome(pass bool) string {
	if pass {
		return "pass"
	}
	return "fail"
}
