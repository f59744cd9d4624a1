package telemetry

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// HTTP metrics
var (
	httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests received, partitioned by method, route and status class.",
		},
		[]string{"method", "route", "status_class"},
	)

	httpRequestDurationSeconds = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds, partitioned by method, route and status class.",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5},
		},
		[]string{"method", "route", "status_class"},
	)
)

// Domain metrics
var (
	transactionsRegisteredTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "transactions_registered_total",
			Help: "Total number of transactions successfully registered, partitioned by kind.",
		},
		[]string{"kind"}, // receita | despesa
	)

	transactionsFailedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "transactions_failed_total",
			Help: "Total number of transaction registrations that failed, partitioned by reason.",
		},
		[]string{"reason"}, // reasons: validation | tag_not_found | db
	)

	summariesGeneratedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "summaries_generated_total",
			Help: "Total number of financial summaries generated.",
		},
	)

	eventsPublishedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "events_published_total",
			Help: "Total number of domain events published to Kafka.",
		},
	)

	eventsFailedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "events_failed_total",
			Help: "Total number of domain events that failed to publish, partitioned by reason.",
		},
		[]string{"reason"}, // reasons: schema | kafka | queue
	)

	publisherQueueCurrent = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "publisher_queue_current",
			Help: "Current number of items in the event publisher queue (approximate).",
		},
	)
)

// Tag metrics
var (
	tagsCreatedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "tags_created_total",
			Help: "Total number of tags successfully created.",
		},
	)

	tagsDeletedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "tags_deleted_total",
			Help: "Total number of tags deleted.",
		},
	)

	tagsCreateFailedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tags_create_failed_total",
			Help: "Total number of failed tag creations, partitioned by reason.",
		},
		[]string{"reason"}, // reasons: validation | conflict | db | unknown
	)

	// Gauge that tracks how many tags exist
	tagsTotalCurrent = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "tags_total_current",
			Help: "Current number of tags known to the service.",
		},
	)
)

// InitMetrics called on startup
func InitMetrics() {
	prometheus.MustRegister(
		httpRequestsTotal,
		httpRequestDurationSeconds,
		transactionsRegisteredTotal,
		transactionsFailedTotal,
		summariesGeneratedTotal,
		eventsPublishedTotal,
		eventsFailedTotal,
		publisherQueueCurrent,
		tagsCreatedTotal,
		tagsDeletedTotal,
		tagsCreateFailedTotal,
		tagsTotalCurrent,
	)
}

// PrometheusMiddleware measures one HTTP request: increments counter and observes latency.
// It uses gin.Context.FullPath() to record the *route template* (e.g., /v1/receitas).
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next() // execute handler chain

		route := c.FullPath()
		if route == "" {
			route = "unknown"
		}
		method := c.Request.Method
		status := c.Writer.Status()
		statusClass := fmt.Sprintf("%dxx", status/100)

		httpRequestsTotal.WithLabelValues(method, route, statusClass).Inc()
		httpRequestDurationSeconds.WithLabelValues(method, route, statusClass).Observe(time.Since(start).Seconds())
	}
}

// MetricsHandler exposes /metrics in Prometheus text exposition format.
func MetricsHandler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}
