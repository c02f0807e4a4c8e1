package observability

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTPRequestsTotal counts handled HTTP requests
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: "ridemate", Name: "http_requests_total", Help: "Total HTTP requests handled"},
		[]string{"method", "path", "status"},
	)

	// HTTPRequestDuration observes request latency
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "ridemate",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency distribution",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	// RideTransitionsTotal counts ride lifecycle transitions by target status
	RideTransitionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: "ridemate", Name: "ride_transitions_total", Help: "Total ride lifecycle transitions"},
		[]string{"status"},
	)

	// MatchAttemptsTotal counts driver match attempts by outcome
	MatchAttemptsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: "ridemate", Name: "match_attempts_total", Help: "Total driver match attempts"},
		[]string{"outcome"},
	)

	// MatchCandidates observes how many eligible drivers each match scanned
	MatchCandidates = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "ridemate",
			Name:      "match_candidates",
			Help:      "Eligible drivers considered per match attempt",
			Buckets:   []float64{0, 1, 2, 5, 10, 25, 50, 100},
		},
	)
)

// MetricsMiddleware records request counts and latency for every route
func MetricsMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)

			status := strconv.Itoa(c.Response().Status)
			path := c.Path()
			method := c.Request().Method

			HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
			HTTPRequestDuration.WithLabelValues(method, path).Observe(time.Since(start).Seconds())

			return err
		}
	}
}

// RegisterMetricsEndpoint exposes the Prometheus scrape endpoint
func RegisterMetricsEndpoint(e *echo.Echo) {
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
}
