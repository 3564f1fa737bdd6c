// Package http provides the calendar list endpoint
package http

import (
	stdhttp "net/http"

	"commlog/internal/modkit/httpkit"
	"commlog/internal/modkit/swaggerkit"
	"commlog/internal/services/api/events/domain"
)

// Register mounts the calendars routes
func Register(r httpkit.Router, s domain.ServicePort) {
	h := &handlers{svc: s}
	httpkit.Get(r, "/", h.list)
}

type handlers struct{ svc domain.ServicePort }

// swagger:route GET /calendars Calendars calendarsList
// @Summary Calendars visible to the configured account
// @Tags Calendars
// @Produce json
// @Success 200 {object} domain.CalendarsResult "ok"
// @Router /calendars [get]
func (h *handlers) list(r *stdhttp.Request) (any, error) {
	return h.svc.Calendars(r.Context())
}

// Docs describes the calendars routes relative to prefix
func Docs(prefix string) []swaggerkit.Operation {
	return []swaggerkit.Operation{
		{Path: prefix, Summary: "Calendars visible to the configured account", Tag: "Calendars", Schema: "CalendarsResult"},
	}
}
