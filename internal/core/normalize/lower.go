package normalize

import (
	"sync"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// casers are stateful so each call borrows its own
var lowerPool = sync.Pool{
	New: func() any {
		c := cases.Lower(language.Und)
		return &c
	},
}

// Lower returns the Unicode lowercase form of s
func Lower(s string) string {
	if s == "" {
		return ""
	}
	c := lowerPool.Get().(*cases.Caser)
	out := c.String(s)
	lowerPool.Put(c)
	return out
}
