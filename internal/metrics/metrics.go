package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Registry holds the application collectors.
	Registry = prometheus.NewRegistry()

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "conectacausa",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		},
		[]string{"method", "route", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "conectacausa",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 2, 12),
		},
		[]string{"method", "route"},
	)

	registrations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "conectacausa",
			Subsystem: "accounts",
			Name:      "registrations_total",
			Help:      "Registration attempts by outcome.",
		},
		[]string{"result"},
	)

	applications = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "conectacausa",
			Subsystem: "applications",
			Name:      "attempts_total",
			Help:      "Application attempts by outcome.",
		},
		[]string{"result"},
	)

	matchRequests = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "conectacausa",
			Subsystem: "matching",
			Name:      "requests_total",
			Help:      "Number of ranked match lists computed.",
		},
	)

	topScore = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "conectacausa",
			Subsystem: "matching",
			Name:      "top_score",
			Help:      "Best match score per ranked list.",
			Buckets:   prometheus.LinearBuckets(0, 10, 11),
		},
	)
)

// Outcome labels.
const (
	ResultOK       = "ok"
	ResultConflict = "conflict"
	ResultInvalid  = "invalid"
	ResultError    = "error"
)

func init() {
	Registry.MustRegister(
		httpRequests,
		httpDuration,
		registrations,
		applications,
		matchRequests,
		topScore,
	)
}

func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

func RecordHTTPRequest(method, route string, status int, duration time.Duration) {
	httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	httpDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

func RecordRegistration(result string) {
	registrations.WithLabelValues(result).Inc()
}

func RecordApplication(result string) {
	applications.WithLabelValues(result).Inc()
}

// RecordMatches notes one ranked list and its best score, if any.
func RecordMatches(scores ...int) {
	matchRequests.Inc()
	if len(scores) > 0 {
		topScore.Observe(float64(scores[0]))
	}
}
