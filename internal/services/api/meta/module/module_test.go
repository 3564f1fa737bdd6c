package module

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"commlog/internal/modkit"
	phttp "commlog/internal/platform/net/http"
	"commlog/internal/platform/testkit"
	ptime "commlog/internal/platform/time"
)

func serve(m modkit.Module, target string) *httptest.ResponseRecorder {
	mux := chi.NewRouter()
	m.MountRoutes(phttp.AdaptChi(mux))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestMeta_RootMount(t *testing.T) {
	deps := modkit.Deps{Clock: ptime.Fixed(time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC))}
	m := New(deps).(*Module)
	if m.Name() != "meta" || m.Prefix() != "" || m.Ports() != nil {
		t.Fatalf("unexpected module %q %q", m.Name(), m.Prefix())
	}

	rec := serve(m, "/health")
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}
	testkit.MustContain(t, rec.Body.String(), `"timestamp":"2025-01-02T03:04:05Z"`)

	rec = serve(m, "/ready")
	testkit.MustContain(t, rec.Body.String(), `"status":"skipped"`)
}

func TestMeta_PrefixAndRegister(t *testing.T) {
	called := false
	m := New(modkit.Deps{},
		modkit.WithPrefix("/meta"),
		modkit.WithRegister(func(r phttp.Router) {
			r.Get("/extra", func(w http.ResponseWriter, _ *http.Request) {
				called = true
				w.WriteHeader(http.StatusNoContent)
			})
		}),
	).(*Module)
	if m.Prefix() != "/meta" {
		t.Fatalf("prefix %q", m.Prefix())
	}
	if rec := serve(m, "/meta/version"); rec.Code != http.StatusOK {
		t.Fatalf("version status %d", rec.Code)
	}
	if rec := serve(m, "/meta/extra"); rec.Code != http.StatusNoContent || !called {
		t.Fatalf("extra route not mounted: %d", rec.Code)
	}
}

func TestMeta_Docs(t *testing.T) {
	m := New(modkit.Deps{}).(*Module)
	ops := m.Docs()
	if len(ops) != 3 || ops[1].Path != "/ready" {
		t.Fatalf("unexpected %+v", ops)
	}
}
