// Package search matches normalized events against free text queries
package search

import (
	"strings"

	"commlog/internal/core/event"
	"commlog/internal/core/normalize"
)

// AllTypes disables the type filter
const AllTypes = "all"

// Tokens splits query on whitespace and lowercases each word
func Tokens(query string) []string {
	words := strings.Fields(query)
	for i, w := range words {
		words[i] = normalize.Lower(w)
	}
	return words
}

// Haystack is the lowercase text a query is matched against
func Haystack(ev event.Normalized) string {
	return normalize.Lower(strings.Join([]string{
		ev.Contact,
		ev.Content,
		ev.Phone,
		ev.OriginalTitle,
		ev.OriginalDescription,
	}, " "))
}

// Match keeps events containing every query token and, unless typeFilter is
// empty or "all", having that type. The result is never nil
func Match(events []event.Normalized, query, typeFilter string) []event.Normalized {
	tokens := Tokens(query)
	typeFilter = strings.TrimSpace(typeFilter)

	out := make([]event.Normalized, 0, len(events))
	for _, ev := range events {
		if typeFilter != "" && typeFilter != AllTypes && string(ev.Type) != typeFilter {
			continue
		}
		if containsAll(Haystack(ev), tokens) {
			out = append(out, ev)
		}
	}
	return out
}

func containsAll(text string, tokens []string) bool {
	for _, tok := range tokens {
		if !strings.Contains(text, tok) {
			return false
		}
	}
	return true
}
