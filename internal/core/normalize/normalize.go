// Package normalize turns raw calendar events into classified communication records
//
// The heuristics are fixed regular expressions and keyword lists over Czech and
// English titles and descriptions. Normalize is pure and total: every input,
// including the zero value, yields a fully populated record.
package normalize

import (
	"regexp"
	"strings"
	"time"

	"commlog/internal/core/event"
)

const (
	timeLayout = "15:04"
	allDayTime = "00:00"
)

// Normalizer is immutable and safe for concurrent use
type Normalizer struct {
	// Location is where time of day is rendered; nil means UTC
	Location *time.Location
	// Region is the libphonenumber default region for E.164 enrichment
	Region string
}

// New returns a Normalizer rendering times in loc
func New(loc *time.Location) *Normalizer {
	return &Normalizer{Location: loc, Region: DefaultRegion}
}

// Normalize classifies raw and extracts contact, phone, duration and content
func (n *Normalizer) Normalize(raw event.Raw) event.Normalized {
	title, desc := raw.Summary, raw.Description

	out := event.Normalized{
		ID:                  raw.ID,
		Type:                Classify(title),
		OriginalTitle:       title,
		OriginalDescription: desc,
	}

	switch out.Type {
	case event.TypeCall:
		out.Contact = contact(callContactRe, title)
		if m := durationRe.FindStringSubmatch(desc); m != nil {
			out.Duration = m[1]
		}
	case event.TypeSMS:
		out.Contact = contact(smsContactRe, title)
		out.Content = strings.TrimSpace(phoneLineRe.ReplaceAllString(desc, ""))
	}

	out.Phone = extractPhone(title, desc)
	out.PhoneE164 = E164(out.Phone, n.region())
	out.Date, out.Time = n.when(raw.Start)

	if out.Contact == "" {
		out.Contact = event.UnknownContact
	}
	if out.Content == "" {
		out.Content = desc
	}
	return out
}

// NormalizeAll normalizes events and keeps only calls and sms
func (n *Normalizer) NormalizeAll(raws []event.Raw) []event.Normalized {
	out := make([]event.Normalized, 0, len(raws))
	for _, r := range raws {
		if ev := n.Normalize(r); ev.Known() {
			out = append(out, ev)
		}
	}
	return out
}

// Classify reports the communication type named by title; call wins over sms
func Classify(title string) event.Type {
	switch {
	case callWords.ContainsAny(title):
		return event.TypeCall
	case smsWords.ContainsAny(title):
		return event.TypeSMS
	default:
		return event.TypeUnknown
	}
}

func contact(re *regexp.Regexp, title string) string {
	if m := re.FindStringSubmatch(title); m != nil {
		return strings.TrimSpace(m[1])
	}
	return ""
}

// when returns the calendar date and the local time of day of start
func (n *Normalizer) when(s event.Start) (date, clock string) {
	if s.DateTime == "" {
		return s.Date, allDayTime
	}
	date, _, _ = strings.Cut(s.DateTime, "T")
	t, err := time.Parse(time.RFC3339, s.DateTime)
	if err != nil {
		return date, allDayTime
	}
	return date, t.In(n.location()).Format(timeLayout)
}

func (n *Normalizer) location() *time.Location {
	if n == nil || n.Location == nil {
		return time.UTC
	}
	return n.Location
}

func (n *Normalizer) region() string {
	if n == nil || n.Region == "" {
		return DefaultRegion
	}
	return n.Region
}
