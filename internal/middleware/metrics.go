package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics
var (
	httpReqTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "currency_http_requests_total",
		Help: "Total HTTP requests",
	}, []string{"method", "endpoint", "status"})

	httpLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "currency_http_request_duration_seconds",
		Help:    "Request latency",
		Buckets: []float64{0.005, 0.01, 0.05, 0.1, 0.5, 1},
	}, []string{"method", "endpoint"})

	conversionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "currency_conversions_total",
		Help: "Conversion attempts by outcome",
	}, []string{"outcome"})
)

// PrometheusMiddleware records request counts and latencies per route.
// The route template (c.FullPath) is used as the endpoint label so path
// parameters do not explode cardinality.
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		endpoint := c.FullPath()
		if endpoint == "" {
			endpoint = "unmatched"
		}

		timer := prometheus.NewTimer(httpLatency.WithLabelValues(c.Request.Method, endpoint))
		c.Next()
		timer.ObserveDuration()

		httpReqTotal.WithLabelValues(c.Request.Method, endpoint, strconv.Itoa(c.Writer.Status())).Inc()
	}
}

// ObserveConversion counts one conversion attempt. Outcome is "success" or
// the error kind string.
func ObserveConversion(outcome string) {
	if outcome == "" {
		outcome = "success"
	}
	conversionsTotal.WithLabelValues(outcome).Inc()
}
