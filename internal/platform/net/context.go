// Package net provides utilities for working with request contexts
package net

import (
	"context"

	"commlog/internal/platform/logger"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// ctxKey is an unexported key type for context values
type ctxKey string

const keyCalendarID ctxKey = "calendar_id"

// WithRequest annotates context with common request scoped ids
// the request id is visible to chimw.GetReqID and to logger.C
func WithRequest(ctx context.Context, reqID, calendarID string) context.Context {
	if reqID != "" {
		ctx = context.WithValue(ctx, chimw.RequestIDKey, reqID)
		ctx = logger.WithRequest(ctx, reqID)
	}
	if calendarID != "" {
		ctx = context.WithValue(ctx, keyCalendarID, calendarID)
		ctx = logger.WithCalendar(ctx, calendarID)
	}
	return ctx
}

// RequestID returns the request id on the context if present
func RequestID(ctx context.Context) string {
	return chimw.GetReqID(ctx)
}

// CalendarID returns the calendar id on the context if present
func CalendarID(ctx context.Context) string {
	if v, ok := ctx.Value(keyCalendarID).(string); ok {
		return v
	}
	return ""
}
