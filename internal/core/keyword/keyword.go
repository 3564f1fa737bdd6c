// Package keyword provides immutable multi keyword substring sets
// Matching is byte exact and case sensitive; callers lowercase both sides
// when they need case insensitive matching
package keyword

// Set is built once and safe for concurrent use
type Set struct {
	words []string
	ac    *acAutomaton
}

// New builds a Set from words; empty words are ignored
func New(words ...string) *Set {
	s := &Set{words: make([]string, 0, len(words)), ac: newAutomaton()}
	for _, w := range words {
		if w == "" {
			continue
		}
		s.ac.addPattern([]byte(w), len(s.words))
		s.words = append(s.words, w)
	}
	s.ac.build()
	return s
}

// ContainsAny reports whether any keyword occurs in text
func (s *Set) ContainsAny(text string) bool {
	_, ok := s.FirstMatch(text)
	return ok
}

// FirstMatch returns the keyword whose occurrence ends earliest in text
// ties at the same end offset go to the keyword listed first
func (s *Set) FirstMatch(text string) (string, bool) {
	if s == nil || len(s.words) == 0 || text == "" {
		return "", false
	}
	best := -1
	s.ac.scan(text, func(_ int, ids []int) bool {
		for _, id := range ids {
			if best == -1 || id < best {
				best = id
			}
		}
		return false
	})
	if best == -1 {
		return "", false
	}
	return s.words[best], true
}
