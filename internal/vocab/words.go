package vocab

import (
	"strings"
	"unicode"
)

// WordsIn returns the distinct words of text in order of first appearance,
// lowercased and stripped of surrounding punctuation. Apostrophes and
// hyphens inside a word are kept.
func WordsIn(text string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, tok := range strings.Fields(text) {
		w := strings.ToLower(strings.TrimFunc(tok, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsDigit(r)
		}))
		if w == "" || seen[w] || !hasLetter(w) {
			continue
		}
		seen[w] = true
		out = append(out, w)
	}
	return out
}

func hasLetter(s string) bool {
	return strings.IndexFunc(s, unicode.IsLetter) >= 0
}
