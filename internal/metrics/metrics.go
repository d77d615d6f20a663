package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RecommendationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "plantcare_recommendations_total",
			Help: "Total number of recommendations generated",
		},
		[]string{"variant"},
	)

	// RecommendationClauses counts how many rules fired per recommendation.
	RecommendationClauses = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "plantcare_recommendation_clauses",
			Help:    "Number of rule clauses contributing to a recommendation",
			Buckets: []float64{0, 1, 2, 3},
		},
		[]string{"variant"},
	)

	ValidationFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "plantcare_validation_failures_total",
			Help: "Total number of rejected form fields",
		},
		[]string{"variant", "field"},
	)

	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "plantcare_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "plantcare_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	RateLimitedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "plantcare_rate_limited_total",
			Help: "Total number of requests rejected by the rate limiter",
		},
	)
)

func RecordRecommendation(variant string, clauses int) {
	RecommendationsTotal.WithLabelValues(variant).Inc()
	RecommendationClauses.WithLabelValues(variant).Observe(float64(clauses))
}

func RecordValidationFailure(variant, field string) {
	ValidationFailuresTotal.WithLabelValues(variant, field).Inc()
}

func RecordHTTPRequest(method, route string, status int, duration time.Duration) {
	HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	HTTPRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}
