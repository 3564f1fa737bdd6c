// Package filter narrows provider events down to likely communication records
package filter

import (
	"commlog/internal/core/event"
	"commlog/internal/core/keyword"
	"commlog/internal/core/normalize"
)

// keywords are lowercase; both title and description are lowered before matching
var keywords = keyword.New("hovor", "call", "volání", "sms", "zpráva", "message", "telefon")

// Communication keeps events whose title or description mentions a communication keyword
// order is preserved and the result is never nil
func Communication(events []event.Raw) []event.Raw {
	out := make([]event.Raw, 0, len(events))
	for _, ev := range events {
		if IsCommunication(ev) {
			out = append(out, ev)
		}
	}
	return out
}

// IsCommunication reports whether ev passes the keyword filter
func IsCommunication(ev event.Raw) bool {
	return keywords.ContainsAny(normalize.Lower(ev.Summary)) ||
		keywords.ContainsAny(normalize.Lower(ev.Description))
}
