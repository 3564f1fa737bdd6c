package domain

import (
	"context"

	"commlog/internal/core/event"
)

// Provider is the calendar backend; implementations must be safe for concurrent use
type Provider interface {
	ListEvents(ctx context.Context, q EventQuery) ([]event.Raw, error)
	ListCalendars(ctx context.Context) ([]Calendar, error)
	// Ping performs the cheapest authenticated call available
	Ping(ctx context.Context) error
}

// ServicePort defines the events service interface
type ServicePort interface {
	List(ctx context.Context, in ListInput) (ListResult, error)
	Day(ctx context.Context, date, calendarID string) (ListResult, error)
	Search(ctx context.Context, in SearchInput) (SearchResult, error)
	Calendars(ctx context.Context) (CalendarsResult, error)
}
