package middleware_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	perr "commlog/internal/platform/errors"
	pnet "commlog/internal/platform/net"
	"commlog/internal/platform/net/middleware"
	kit "commlog/internal/platform/testkit"
)

func TestRecoverJSON_WritesErrorBody(t *testing.T) {
	h := middleware.RequestID()(middleware.RecoverJSON(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("kaboom")
	})))

	req := httptest.NewRequest(http.MethodGet, "/api/events", nil)
	req.Header.Set(middleware.RequestIDHeader, "rid-panic")
	rr := httptest.NewRecorder()
	kit.MustNotPanic(t, func() { h.ServeHTTP(rr, req) })

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rr.Code)
	}
	var body pnet.ErrorBody
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("body not json: %q", rr.Body.String())
	}
	if body.Error != "Internal server error" || body.Code != perr.ErrorCodePanic || body.RequestID != "rid-panic" {
		t.Fatalf("unexpected body: %+v", body)
	}
}

func TestRecoverJSON_RePanicsAbortHandler(t *testing.T) {
	h := middleware.RecoverJSON(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic(http.ErrAbortHandler)
	}))
	kit.MustPanic(t, func() {
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	})
}

func TestRecoverJSON_PassThrough(t *testing.T) {
	h := middleware.RecoverJSON(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	if rr.Code != http.StatusTeapot {
		t.Fatalf("expected passthrough status, got %d", rr.Code)
	}
}
