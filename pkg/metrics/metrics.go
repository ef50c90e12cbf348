package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP request latency in seconds.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~4s
		},
		[]string{"method", "path", "status"},
	)

	// Database query latency in seconds.
	DBQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "db_query_duration_seconds",
			Help:    "Database query duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~4s
		},
		[]string{"operation", "table"},
	)

	// Narrative generation call latency in milliseconds.
	NarrativeCallLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "narrative_call_latency_ms",
			Help:    "Narrative generation call latency in milliseconds",
			Buckets: prometheus.ExponentialBuckets(100, 2, 10), // 100ms to ~100s
		},
		[]string{"intent", "status"},
	)

	// Report renders by format.
	ReportRenderedCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "report_rendered_count",
			Help: "Total number of reports rendered",
		},
		[]string{"format"}, // format: text, pdf
	)

	// Assessment saves by outcome.
	AssessmentSavedCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "assessment_saved_count",
			Help: "Total number of assessment save operations",
		},
		[]string{"status"}, // status: success, failed
	)
)

func RecordHTTPRequestDuration(method, path, status string, duration time.Duration) {
	HTTPRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}

func RecordDBQueryDuration(operation, table string, duration time.Duration) {
	DBQueryDuration.WithLabelValues(operation, table).Observe(duration.Seconds())
}

func RecordNarrativeCallLatency(intent, status string, duration time.Duration) {
	NarrativeCallLatency.WithLabelValues(intent, status).Observe(float64(duration.Milliseconds()))
}

func IncrementReportRendered(format string) {
	ReportRenderedCount.WithLabelValues(format).Inc()
}

func IncrementAssessmentSaved(status string) {
	AssessmentSavedCount.WithLabelValues(status).Inc()
}
