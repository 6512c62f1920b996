package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "endpoint"},
	)

	httpRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_requests_in_flight",
			Help: "Number of HTTP requests currently being processed",
		},
	)

	workoutMutationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "workout_mutations_total",
			Help: "Total number of workout entity mutations",
		},
		[]string{"entity", "action"},
	)

	statisticsQueriesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "statistics_queries_total",
			Help: "Total number of statistics queries",
		},
	)
)

// MetricsMiddleware collects Prometheus metrics for every HTTP request.
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		httpRequestsInFlight.Inc()

		endpoint := c.FullPath()
		if endpoint == "" {
			endpoint = "unknown"
		}

		c.Next()

		httpRequestsInFlight.Dec()

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(c.Writer.Status())

		httpRequestsTotal.WithLabelValues(c.Request.Method, endpoint, status).Inc()
		httpRequestDuration.WithLabelValues(c.Request.Method, endpoint).Observe(duration)
	}
}

// RecordMutation counts a committed create/update/delete of a workout entity.
func RecordMutation(entity, action string) {
	workoutMutationsTotal.WithLabelValues(entity, action).Inc()
}

// RecordStatisticsQuery counts one statistics aggregation request.
func RecordStatisticsQuery() {
	statisticsQueriesTotal.Inc()
}
