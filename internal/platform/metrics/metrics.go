// Package metrics holds the process-wide prometheus collectors
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "commlog"

var (
	// httpRequestsTotal counts finished requests
	// Labels: method, route (chi pattern), status
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Total HTTP requests by method, route and status",
	}, []string{"method", "route", "status"})

	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency",
		Buckets:   []float64{0.005, 0.025, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
	}, []string{"method", "route"})

	// gcalCallsTotal counts calendar provider calls
	// Labels: op (events.list, calendarList.list), status (ok, error, canceled)
	gcalCallsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "gcal",
		Name:      "calls_total",
		Help:      "Total Google Calendar API calls by operation and status",
	}, []string{"op", "status"})

	gcalCallDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "gcal",
		Name:      "call_duration_seconds",
		Help:      "Google Calendar API call latency including limiter wait",
		Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 15},
	}, []string{"op"})

	// eventsClassifiedTotal counts normalized events by detected type
	eventsClassifiedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "events",
		Name:      "classified_total",
		Help:      "Normalized events by detected communication type",
	}, []string{"type"})
)

// RecordHTTP records one finished request
// route should be the matched pattern, never the raw path
func RecordHTTP(method, route string, status int, elapsed time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	method = methodLabel(method)
	httpRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	httpRequestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// methodLabel folds anything outside the standard verbs into "other"
func methodLabel(m string) string {
	switch m {
	case http.MethodGet, http.MethodHead, http.MethodPost, http.MethodPut, http.MethodPatch,
		http.MethodDelete, http.MethodOptions, http.MethodConnect, http.MethodTrace:
		return m
	default:
		return "other"
	}
}

// RecordGCal records one calendar provider call
func RecordGCal(op, status string, elapsed time.Duration) {
	gcalCallsTotal.WithLabelValues(op, status).Inc()
	gcalCallDuration.WithLabelValues(op).Observe(elapsed.Seconds())
}

// RecordClassified adds n events of the given type
func RecordClassified(typ string, n int) {
	if n <= 0 {
		return
	}
	eventsClassifiedTotal.WithLabelValues(typ).Add(float64(n))
}

// Handler serves the default registry in the prometheus text format
func Handler() http.Handler { return promhttp.Handler() }
