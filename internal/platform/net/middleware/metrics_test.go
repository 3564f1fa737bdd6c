package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"commlog/internal/platform/metrics"
	"commlog/internal/platform/net/middleware"

	"github.com/go-chi/chi/v5"
)

func TestMetrics_RecordsRoutePattern(t *testing.T) {
	m := chi.NewRouter()
	m.Use(middleware.Metrics())
	m.Get("/api/events/day/{date}", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })

	rr := httptest.NewRecorder()
	m.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/events/day/2024-03-05", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("status %d", rr.Code)
	}

	out := httptest.NewRecorder()
	metrics.Handler().ServeHTTP(out, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body := out.Body.String()
	if !strings.Contains(body, `route="/api/events/day/{date}"`) {
		t.Fatalf("expected route pattern label in metrics output")
	}
	if strings.Contains(body, `route="/api/events/day/2024-03-05"`) {
		t.Fatalf("raw path must not be used as a label")
	}
}

func TestMetrics_ArbitraryMethodIsFolded(t *testing.T) {
	m := chi.NewRouter()
	m.Use(middleware.Metrics())
	m.Get("/api/calendars", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })

	rr := httptest.NewRecorder()
	m.ServeHTTP(rr, httptest.NewRequest("SPAM-4711", "/api/calendars", nil))
	if rr.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status %d", rr.Code)
	}

	out := httptest.NewRecorder()
	metrics.Handler().ServeHTTP(out, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body := out.Body.String()
	if strings.Contains(body, `method="SPAM-4711"`) {
		t.Fatalf("client supplied method leaked into labels")
	}
	if !strings.Contains(body, `method="other"`) {
		t.Fatalf("expected folded method label")
	}
}
