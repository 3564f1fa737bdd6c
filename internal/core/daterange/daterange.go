// Package daterange resolves request date parameters into an inclusive day range
package daterange

import (
	"time"

	perr "commlog/internal/platform/errors"
	ptime "commlog/internal/platform/time"
)

// Mode selects how missing boundaries are treated
type Mode int

const (
	// ModeStrict requires both boundaries unless a single date is given
	ModeStrict Mode = iota
	// ModeTrailing defaults missing boundaries to the trailing window ending now
	ModeTrailing
)

// TrailingWindow is the lookback used by ModeTrailing when startDate is absent
const TrailingWindow = 30 * 24 * time.Hour

// Params are the raw request values; empty means absent
type Params struct {
	Date      string
	StartDate string
	EndDate   string
}

// Range is an inclusive span of calendar days, both ends YYYY-MM-DD
type Range struct {
	Start string
	End   string
}

// Single reports whether the range covers exactly one day
func (r Range) Single() bool { return r.Start == r.End }

// Label is the date echoed back to callers
func (r Range) Label() string {
	if r.Single() {
		return r.Start
	}
	return r.Start + " to " + r.End
}

// TimeMin is the first instant of Start in loc
func (r Range) TimeMin(loc *time.Location) time.Time {
	t, _ := ptime.ParseDate(r.Start, loc)
	return t
}

// TimeMax is 23:59:59 on End in loc
func (r Range) TimeMax(loc *time.Location) time.Time {
	t, _ := ptime.ParseDate(r.End, loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 0, t.Location())
}

// Resolve validates p and returns the day range it describes
func Resolve(p Params, mode Mode, now time.Time) (Range, error) {
	if p.Date != "" {
		if !valid(p.Date) {
			return Range{}, perr.InvalidDate("date")
		}
		return Range{Start: p.Date, End: p.Date}, nil
	}

	start, end := p.StartDate, p.EndDate
	if mode == ModeStrict && (start == "" || end == "") {
		return Range{}, perr.MissingParamf("startDate and endDate (or date) are required parameters")
	}
	if start == "" {
		start = ptime.UTCDate(now.Add(-TrailingWindow))
	} else if !valid(start) {
		return Range{}, perr.InvalidDate("startDate")
	}
	if end == "" {
		end = ptime.UTCDate(now)
	} else if !valid(end) {
		return Range{}, perr.InvalidDate("endDate")
	}
	return Range{Start: start, End: end}, nil
}

func valid(s string) bool {
	_, ok := ptime.ParseDate(s, nil)
	return ok
}
