// Package http provides meta endpoints
package http

import (
	stdctx "context"
	"net/http"
	"time"

	"commlog/internal/core/version"
	"commlog/internal/modkit/httpkit"
	"commlog/internal/modkit/swaggerkit"
	ptime "commlog/internal/platform/time"
)

// HealthMessage is the fixed liveness greeting
const HealthMessage = "API funguje!"

// Pinger is satisfied by adapters that expose Ping
type Pinger interface {
	Ping(stdctx.Context) error
}

// Deps are the handler dependencies
type Deps struct {
	StartedAt time.Time
	// Provider is the calendar backend; nil reports the check as skipped
	Provider Pinger
	Now      ptime.Clock
	// ReadyTimeout bounds the readiness ping
	ReadyTimeout time.Duration
}

type handlers struct {
	deps Deps
}

// Register mounts the meta routes
func Register(r httpkit.Router, d Deps) {
	if d.Now == nil {
		d.Now = ptime.System()
	}
	if d.ReadyTimeout <= 0 {
		d.ReadyTimeout = 2 * time.Second
	}
	h := &handlers{deps: d}

	httpkit.Get(r, "/health", h.health)
	httpkit.Get(r, "/ready", h.ready)
	httpkit.Get(r, "/version", h.version)
}

//
// Swagger DTOs and route docs
//

// HealthResponse is the health payload
// swagger:model
type HealthResponse struct {
	Status    string `json:"status"    example:"OK"`
	Timestamp string `json:"timestamp" example:"2025-09-03T13:05:00Z"`
	Message   string `json:"message"   example:"API funguje!"`
}

// ReadyCheck describes a single dependency check
type ReadyCheck struct {
	Name   string `json:"name"   example:"gcal"`
	Status string `json:"status" example:"ok"` // ok fail skipped
	Error  string `json:"error,omitempty" example:"oauth2: token expired and refresh token is not set"`
}

// ReadyResponse summarizes readiness
type ReadyResponse struct {
	Status string       `json:"status" example:"ok"` // ok degraded fail
	Checks []ReadyCheck `json:"checks"`
	Now    string       `json:"now"    example:"2025-09-03T13:05:00Z"`
}

// VersionResponse reports build info and uptime
type VersionResponse struct {
	version.BuildInfo
	Started string `json:"started" example:"2025-09-03T13:00:00Z"`
	Uptime  int64  `json:"uptime"  example:"300"`
}

// swagger:route GET /health Meta metaHealth
// @Summary Liveness check
// @Tags Meta
// @Produce json
// @Success 200 {object} HealthResponse "ok"
// @Router /health [get]
func (h *handlers) health(_ *http.Request) (any, error) {
	return HealthResponse{
		Status:    "OK",
		Timestamp: h.deps.Now().UTC().Format(time.RFC3339),
		Message:   HealthMessage,
	}, nil
}

// swagger:route GET /ready Meta metaReady
// @Summary Readiness probe against the calendar provider
// @Tags Meta
// @Produce json
// @Success 200 {object} ReadyResponse "ok"
// @Router /ready [get]
func (h *handlers) ready(r *http.Request) (any, error) {
	ctx, cancel := stdctx.WithTimeout(r.Context(), h.deps.ReadyTimeout)
	defer cancel()

	gcal := ReadyCheck{Name: "gcal", Status: "skipped"}
	if h.deps.Provider != nil {
		if err := h.deps.Provider.Ping(ctx); err != nil {
			gcal.Status, gcal.Error = "fail", err.Error()
		} else {
			gcal.Status = "ok"
		}
	}

	overall := "ok"
	switch gcal.Status {
	case "fail":
		overall = "fail"
	case "skipped":
		overall = "degraded"
	}

	return ReadyResponse{
		Status: overall,
		Checks: []ReadyCheck{gcal},
		Now:    h.deps.Now().UTC().Format(time.RFC3339),
	}, nil
}

// swagger:route GET /version Meta metaVersion
// @Summary Build, heuristics version and uptime
// @Tags Meta
// @Produce json
// @Success 200 {object} VersionResponse "ok"
// @Router /version [get]
func (h *handlers) version(_ *http.Request) (any, error) {
	return VersionResponse{
		BuildInfo: version.Info(),
		Started:   h.deps.StartedAt.UTC().Format(time.RFC3339),
		Uptime:    int64(h.deps.Now().Sub(h.deps.StartedAt) / time.Second),
	}, nil
}

// Docs describes the meta routes relative to prefix
func Docs(prefix string) []swaggerkit.Operation {
	return []swaggerkit.Operation{
		{Path: prefix + "/health", Summary: "Liveness check", Tag: "Meta"},
		{Path: prefix + "/ready", Summary: "Readiness probe against the calendar provider", Tag: "Meta"},
		{Path: prefix + "/version", Summary: "Build, heuristics version and uptime", Tag: "Meta"},
	}
}
