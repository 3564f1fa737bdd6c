package middleware

import (
	"net/http"
	"time"

	"commlog/internal/platform/metrics"
)

// Metrics records request count and latency per method, chi route and status
func Metrics() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cw := &captureWriter{ResponseWriter: w, status: http.StatusOK}
			start := time.Now()

			next.ServeHTTP(cw, r)

			metrics.RecordHTTP(r.Method, routePattern(r), cw.status, time.Since(start))
		})
	}
}
