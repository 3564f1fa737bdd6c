// Package service implements the events API facade
//
// Every read runs the same pipeline: resolve the day range, fetch from the
// provider, keep communication events, normalize and drop what stays unknown.
package service

import (
	"context"
	"time"

	"commlog/internal/core/daterange"
	"commlog/internal/core/event"
	"commlog/internal/core/filter"
	"commlog/internal/core/normalize"
	"commlog/internal/core/search"
	perr "commlog/internal/platform/errors"
	"commlog/internal/platform/logger"
	"commlog/internal/platform/metrics"
	str "commlog/internal/platform/strings"
	ptime "commlog/internal/platform/time"
	"commlog/internal/services/api/events/domain"
)

// Service is the concrete implementation of domain.ServicePort
type Service struct {
	provider domain.Provider
	norm     *normalize.Normalizer
	loc      *time.Location
	now      ptime.Clock
}

var _ domain.ServicePort = (*Service)(nil)

// op labels carried on upstream errors
const (
	opList      = "events.list"
	opSearch    = "events.search"
	opCalendars = "calendars.list"
)

// New constructs an events service
// loc anchors range instants and renders event times; nil means UTC
func New(p domain.Provider, loc *time.Location, now ptime.Clock) *Service {
	if p == nil {
		panic("events.Service requires a non-nil Provider")
	}
	if loc == nil {
		loc = time.UTC
	}
	if now == nil {
		now = ptime.System()
	}
	return &Service{provider: p, norm: normalize.New(loc), loc: loc, now: now}
}

// List returns communication events for a date or an explicit range
func (s *Service) List(ctx context.Context, in domain.ListInput) (domain.ListResult, error) {
	r, err := daterange.Resolve(daterange.Params{
		Date:      in.Date,
		StartDate: in.StartDate,
		EndDate:   in.EndDate,
	}, daterange.ModeStrict, s.now())
	if err != nil {
		return domain.ListResult{}, err
	}

	evs, err := s.fetch(ctx, r, in.CalendarID)
	if err != nil {
		return domain.ListResult{}, perr.WithOp(perr.Upstream(err, "Failed to fetch events from calendar"), opList)
	}
	return domain.ListResult{Events: evs, Total: len(evs), Date: r.Label()}, nil
}

// Day is List for a single date
func (s *Service) Day(ctx context.Context, date, calendarID string) (domain.ListResult, error) {
	if date == "" {
		return domain.ListResult{}, perr.InvalidDate("date")
	}
	return s.List(ctx, domain.ListInput{Date: date, CalendarID: calendarID})
}

// Search matches communication events in the range against q and an optional type
func (s *Service) Search(ctx context.Context, in domain.SearchInput) (domain.SearchResult, error) {
	if in.Q == "" {
		return domain.SearchResult{}, perr.WithField(perr.MissingQueryf("Parameter q (search query) is required"), "q")
	}
	r, err := daterange.Resolve(daterange.Params{
		StartDate: in.StartDate,
		EndDate:   in.EndDate,
	}, daterange.ModeTrailing, s.now())
	if err != nil {
		return domain.SearchResult{}, err
	}

	evs, err := s.fetch(ctx, r, in.CalendarID)
	if err != nil {
		return domain.SearchResult{}, perr.WithOp(perr.Upstream(err, "Failed to search calendar events"), opSearch)
	}
	found := search.Match(evs, in.Q, in.Type)
	return domain.SearchResult{Events: found, Total: len(found), Query: in.Q}, nil
}

// Calendars lists the calendars visible to the account
func (s *Service) Calendars(ctx context.Context) (domain.CalendarsResult, error) {
	cals, err := s.provider.ListCalendars(ctx)
	if err != nil {
		return domain.CalendarsResult{}, perr.WithOp(perr.Upstream(err, "Failed to fetch calendar list"), opCalendars)
	}
	if cals == nil {
		cals = []domain.Calendar{}
	}
	return domain.CalendarsResult{Calendars: cals}, nil
}

// fetch runs the shared pipeline for r on calendarID
func (s *Service) fetch(ctx context.Context, r daterange.Range, calendarID string) ([]event.Normalized, error) {
	q := domain.EventQuery{
		CalendarID:   str.Or(calendarID, domain.DefaultCalendarID),
		TimeMin:      r.TimeMin(s.loc),
		TimeMax:      r.TimeMax(s.loc),
		MaxResults:   domain.MaxResults,
		SingleEvents: true,
		OrderBy:      domain.OrderBy,
	}
	ctx = logger.WithCalendar(ctx, q.CalendarID)

	raws, err := s.provider.ListEvents(ctx, q)
	if err != nil {
		return nil, err
	}

	comms := filter.Communication(raws)
	out := s.norm.NormalizeAll(comms)
	record(out)

	logger.C(ctx).Debug().
		Str("range", r.Label()).
		Int("fetched", len(raws)).
		Int("communication", len(comms)).
		Int("classified", len(out)).
		Msg("events pipeline")
	return out, nil
}

func record(evs []event.Normalized) {
	var calls, sms int
	for _, e := range evs {
		switch e.Type {
		case event.TypeCall:
			calls++
		case event.TypeSMS:
			sms++
		}
	}
	metrics.RecordClassified(string(event.TypeCall), calls)
	metrics.RecordClassified(string(event.TypeSMS), sms)
}
