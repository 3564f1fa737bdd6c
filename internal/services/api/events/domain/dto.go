// Package domain holds DTOs and ports for the events API
package domain

import (
	"time"

	"commlog/internal/core/event"
)

// DefaultCalendarID selects the account's primary calendar
const DefaultCalendarID = "primary"

// Provider query defaults
const (
	MaxResults = 1000
	OrderBy    = "startTime"
)

// Calendar is a calendar visible to the configured account
type Calendar struct {
	ID          string `json:"id"          example:"primary"`
	Name        string `json:"name"        example:"Jan Novák"`
	Description string `json:"description" example:"Phone log"`
	Primary     bool   `json:"primary"     example:"true"`
}

// EventQuery is what the orchestrator asks the provider for
type EventQuery struct {
	CalendarID   string
	TimeMin      time.Time
	TimeMax      time.Time
	MaxResults   int
	SingleEvents bool
	OrderBy      string
}

// ListInput carries the events endpoint query
// either Date or both StartDate and EndDate are required
type ListInput struct {
	StartDate  string `query:"startDate"  example:"2024-05-01"`
	EndDate    string `query:"endDate"    example:"2024-05-31"`
	Date       string `query:"date"       validate:"omitempty,datetime=2006-01-02" example:"2024-05-01"`
	CalendarID string `query:"calendarId" validate:"omitempty,max=1024" example:"primary"`
}

// SearchInput carries the search endpoint query
// the range defaults to the trailing 30 days
type SearchInput struct {
	Q          string `query:"q"          validate:"omitempty,max=512" example:"novák"`
	StartDate  string `query:"startDate"  example:"2024-05-01"`
	EndDate    string `query:"endDate"    example:"2024-05-31"`
	Type       string `query:"type"       example:"call"`
	CalendarID string `query:"calendarId" validate:"omitempty,max=1024" example:"primary"`
}

// ListResult is the events and day response
type ListResult struct {
	Events []event.Normalized `json:"events"`
	Total  int                `json:"total" example:"1"`
	// Date is the single day or "<start> to <end>"
	Date string `json:"date" example:"2024-05-01 to 2024-05-31"`
}

// SearchResult is the search response
type SearchResult struct {
	Events []event.Normalized `json:"events"`
	Total  int                `json:"total" example:"1"`
	Query  string             `json:"query" example:"novák"`
}

// CalendarsResult is the calendar list response
type CalendarsResult struct {
	Calendars []Calendar `json:"calendars"`
}
