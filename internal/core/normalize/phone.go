package normalize

import (
	"strings"
	"unicode"

	"github.com/nyaruka/phonenumbers"
)

// DefaultRegion is assumed for numbers written without a country prefix
const DefaultRegion = "CZ"

// extractPhone prefers a labeled number in the description and falls back
// to any phone shaped run in title and description
func extractPhone(title, desc string) string {
	if m := labeledPhoneRe.FindStringSubmatch(desc); m != nil {
		return stripPhone(m[1])
	}
	if m := barePhoneRe.FindString(title + " " + desc); m != "" {
		return stripPhone(m)
	}
	return ""
}

// stripPhone drops whitespace, dashes and parentheses; a leading plus survives
func stripPhone(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case unicode.IsSpace(r), r == '\uFEFF', r == '-', r == '(', r == ')':
			return -1
		}
		return r
	}, s)
}

// E164 formats phone for region, or returns "" when it is not a valid number
func E164(phone, region string) string {
	if phone == "" {
		return ""
	}
	num, err := phonenumbers.Parse(phone, region)
	if err != nil || !phonenumbers.IsValidNumber(num) {
		return ""
	}
	return phonenumbers.Format(num, phonenumbers.E164)
}
