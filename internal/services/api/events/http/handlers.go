// Package http provides HTTP transport for the events API
package http

import (
	stdhttp "net/http"

	"commlog/internal/modkit/httpkit"
	"commlog/internal/modkit/swaggerkit"
	"commlog/internal/services/api/events/domain"
)

// DayQuery is the query string of the day endpoint
type DayQuery struct {
	CalendarID string `query:"calendarId" validate:"omitempty,max=1024" example:"primary"`
}

// Register mounts events endpoints on the given router
func Register(r httpkit.Router, s domain.ServicePort) {
	h := &handlers{svc: s}

	httpkit.GetQuery(r, "/", h.list)
	httpkit.GetQuery(r, "/day/{date}", h.day)
	httpkit.GetQuery(r, "/search", h.search)
}

type handlers struct{ svc domain.ServicePort }

// swagger:route GET /events Events eventsList
// @Summary Communication events for a date or a date range
// @Tags Events
// @Produce json
// @Param startDate query string false "Range start (YYYY-MM-DD)"
// @Param endDate query string false "Range end (YYYY-MM-DD)"
// @Param date query string false "Single day (YYYY-MM-DD), overrides the range"
// @Param calendarId query string false "Calendar id, defaults to primary"
// @Success 200 {object} domain.ListResult "ok"
// @Router /events [get]
func (h *handlers) list(r *stdhttp.Request, in domain.ListInput) (any, error) {
	return h.svc.List(r.Context(), in)
}

// swagger:route GET /events/day/{date} Events eventsDay
// @Summary Communication events for one day
// @Tags Events
// @Produce json
// @Param date path string true "Day (YYYY-MM-DD)"
// @Param calendarId query string false "Calendar id, defaults to primary"
// @Success 200 {object} domain.ListResult "ok"
// @Router /events/day/{date} [get]
func (h *handlers) day(r *stdhttp.Request, in DayQuery) (any, error) {
	return h.svc.Day(r.Context(), httpkit.URLParam(r, "date"), in.CalendarID)
}

// swagger:route GET /events/search Events eventsSearch
// @Summary Full text search over communication events
// @Tags Events
// @Produce json
// @Param q query string true "Words that must all occur"
// @Param startDate query string false "Range start, defaults to 30 days ago"
// @Param endDate query string false "Range end, defaults to today"
// @Param type query string false "call, sms or all"
// @Param calendarId query string false "Calendar id, defaults to primary"
// @Success 200 {object} domain.SearchResult "ok"
// @Router /events/search [get]
func (h *handlers) search(r *stdhttp.Request, in domain.SearchInput) (any, error) {
	return h.svc.Search(r.Context(), in)
}

// Docs describes the events routes relative to prefix
func Docs(prefix string) []swaggerkit.Operation {
	cal := swaggerkit.Param{Name: "calendarId", In: "query"}
	return []swaggerkit.Operation{
		{
			Path: prefix, Summary: "Communication events for a date or a date range", Tag: "Events", Schema: "ListResult",
			Params: []swaggerkit.Param{
				{Name: "startDate", In: "query", Format: "date"},
				{Name: "endDate", In: "query", Format: "date"},
				{Name: "date", In: "query", Format: "date"},
				cal,
			},
		},
		{
			Path: prefix + "/day/{date}", Summary: "Communication events for one day", Tag: "Events", Schema: "ListResult",
			Params: []swaggerkit.Param{{Name: "date", In: "path", Format: "date"}, cal},
		},
		{
			Path: prefix + "/search", Summary: "Full text search over communication events", Tag: "Events",
			Schema: "SearchResult",
			Params: []swaggerkit.Param{
				{Name: "q", In: "query", Required: true},
				{Name: "startDate", In: "query", Format: "date"},
				{Name: "endDate", In: "query", Format: "date"},
				{Name: "type", In: "query"},
				cal,
			},
		},
	}
}
