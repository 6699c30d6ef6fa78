package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const prefix = "pos"

var (
	// HTTP request metrics
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    prefix + "_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	// Database operation metrics
	DBOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    prefix + "_db_operation_duration_seconds",
			Help:    "Duration of database operations in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"table", "operation"},
	)

	// Successful mutations per resource
	ResourceOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_resource_operations_total",
			Help: "Total number of successful resource mutations",
		},
		[]string{"resource", "action"},
	)

	// Rejected mutations per resource and error kind
	ResourceRejectionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_resource_rejections_total",
			Help: "Total number of rejected resource operations",
		},
		[]string{"resource", "reason"},
	)
)

// TrackDBOperation returns a function that records the duration of a database operation
func TrackDBOperation(table, operation string) func(startTime time.Time) {
	return func(startTime time.Time) {
		DBOperationDuration.WithLabelValues(table, operation).Observe(time.Since(startTime).Seconds())
	}
}

func RecordResourceOperation(resource, action string) {
	ResourceOperationsTotal.WithLabelValues(resource, action).Inc()
}

func RecordRejection(resource, reason string) {
	ResourceRejectionsTotal.WithLabelValues(resource, reason).Inc()
}
