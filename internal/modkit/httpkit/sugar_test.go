package httpkit

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"commlog/internal/platform/testkit"
)

type dayQuery struct {
	Date string `query:"date" validate:"omitempty,datetime=2006-01-02"`
}

func TestGet_And_GetQuery_Register(t *testing.T) {
	r := newFakeRouter()
	Get(r, "/health", func(*http.Request) (any, error) { return map[string]string{"status": "OK"}, nil })
	GetQuery(r, "/events", func(_ *http.Request, q dayQuery) (any, error) { return map[string]string{"date": q.Date}, nil })

	if len(r.routes) != 2 || r.routes[0] != "GET /health" || r.routes[1] != "GET /events" {
		t.Fatalf("unexpected routes %v", r.routes)
	}

	rec := httptest.NewRecorder()
	r.handlers["GET /events"](rec, httptest.NewRequest(http.MethodGet, "/events?date=2024-03-05", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d body=%s", rec.Code, rec.Body.String())
	}
	got := testkit.DecodeJSON[map[string]string](t, rec.Body.Bytes())
	if got["date"] != "2024-03-05" {
		t.Fatalf("unexpected body %v", got)
	}
}

func TestGetQuery_InvalidDateIs400(t *testing.T) {
	r := newFakeRouter()
	called := false
	GetQuery(r, "/events", func(_ *http.Request, _ dayQuery) (any, error) {
		called = true
		return nil, nil
	})

	rec := httptest.NewRecorder()
	r.handlers["GET /events"](rec, httptest.NewRequest(http.MethodGet, "/events?date=2024-13-40", nil))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status %d", rec.Code)
	}
	if called {
		t.Fatal("handler must not run when binding fails")
	}
	testkit.MustContain(t, rec.Body.String(), "Invalid date format. Use YYYY-MM-DD")
}
