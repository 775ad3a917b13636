// internal/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RecordMutationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "school_record_mutations_total",
			Help: "Total number of record mutations per collection",
		},
		[]string{"collection", "action"},
	)

	AttendancePercentage = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "student_attendance_percentage",
			Help:    "Distribution of computed attendance percentages",
			Buckets: prometheus.LinearBuckets(0, 10, 11),
		},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"path", "method", "status"},
	)
)
