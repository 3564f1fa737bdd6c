// Package time contains time related helpers
package time

import "time"

// DateLayout is the calendar date format used across the api
const DateLayout = "2006-01-02"

// Clock returns the current instant; services take one so tests can pin now
type Clock func() time.Time

// System is the wall clock
func System() Clock { return time.Now }

// Fixed returns a clock frozen at t
func Fixed(t time.Time) Clock { return func() time.Time { return t } }

// UTCDate formats t as a YYYY-MM-DD date in UTC
func UTCDate(t time.Time) string { return t.UTC().Format(DateLayout) }

// ParseDate parses a strict YYYY-MM-DD calendar date in loc
// non padded or out of range fields are rejected
func ParseDate(s string, loc *time.Location) (time.Time, bool) {
	if len(s) != len(DateLayout) {
		return time.Time{}, false
	}
	if loc == nil {
		loc = time.UTC
	}
	t, err := time.ParseInLocation(DateLayout, s, loc)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
