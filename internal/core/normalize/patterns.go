package normalize

import (
	"regexp"

	"commlog/internal/core/keyword"
)

// HeuristicsVersion changes whenever a pattern or keyword list below changes
const HeuristicsVersion = "1"

var (
	callWords = keyword.New("Hovor", "Call", "Volání")
	smsWords  = keyword.New("SMS", "Zpráva", "Message")
)

// ws and hs widen \s and [ \t] to unicode spaces; descriptions pasted from
// html carry U+00A0 between label and number
const (
	ws = `\s\p{Z}\x{FEFF}`
	hs = ` \t\p{Zs}\x{FEFF}`
)

var (
	callContactRe = regexp.MustCompile(`(?:Hovor|Call|Volání)[` + ws + `\-:]*(.+?)(?:[` + ws + `]*\(|[` + ws + `]*$)`)
	smsContactRe  = regexp.MustCompile(`(?:SMS|Zpráva|Message)[` + ws + `\-:]*(.+?)(?:[` + ws + `]*\(|[` + ws + `]*$)`)

	durationRe = regexp.MustCompile(`(?i)(?:délka|duration|trvání)[` + ws + `:]*(\d+[` + ws + `]*(?:min|minut|s|sekund))`)

	// one phone line per match, the trailing newline goes with it
	phoneLineRe = regexp.MustCompile(`(?i)telefon[` + hs + `:]*\+?\d+[` + hs + `\d\-()]*\n?`)

	labeledPhoneRe = regexp.MustCompile(`(?i)(?:telefon|phone|číslo)[` + ws + `:]*(\+?\d+[` + ws + `\d\-()]+)`)
	barePhoneRe    = regexp.MustCompile(`\+?\d{3,4}[` + ws + `\-]?\d{3}[` + ws + `\-]?\d{3}[` + ws + `\-]?\d{3}`)
)
