// Package metrics holds the Prometheus collectors of the relief API.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Domain events counted by EventsTotal
const (
	EventReportCreated       = "report_created"
	EventTaskCreated         = "task_created"
	EventTaskAssigned        = "task_assigned"
	EventTaskCompleted       = "task_completed"
	EventDistributionCreated = "distribution_created"
	EventResourceDepleted    = "resource_depleted"
	EventUserRegistered      = "user_registered"
)

var (
	// Registry holds the application collectors
	Registry = prometheus.NewRegistry()

	httpInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "relief",
			Subsystem: "http",
			Name:      "inflight_requests",
			Help:      "Current number of in-flight HTTP requests.",
		},
	)

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "relief",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		},
		[]string{"method", "path", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "relief",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10), // 5ms to ~5s
		},
		[]string{"method", "path"},
	)

	// EventsTotal counts state transitions of the relief workflow
	EventsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "relief",
			Subsystem: "domain",
			Name:      "events_total",
			Help:      "Total number of domain events by kind.",
		},
		[]string{"event"},
	)
)

func init() {
	Registry.MustRegister(
		httpInFlight,
		httpRequests,
		httpDuration,
		EventsTotal,
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
		prometheus.NewGoCollector(),
	)
}

// Handler exposes the registry
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

// Event increments the counter of a domain event
func Event(name string) {
	EventsTotal.WithLabelValues(name).Inc()
}

// RequestStarted marks a request in flight and returns the function that records it
func RequestStarted() func(method, path string, status int) {
	start := time.Now()
	httpInFlight.Inc()
	return func(method, path string, status int) {
		httpInFlight.Dec()
		httpRequests.WithLabelValues(method, path, statusLabel(status)).Inc()
		httpDuration.WithLabelValues(method, path).Observe(time.Since(start).Seconds())
	}
}

func statusLabel(status int) string {
	switch {
	case status >= 500:
		return "5xx"
	case status >= 400:
		return "4xx"
	case status >= 300:
		return "3xx"
	default:
		return "2xx"
	}
}
