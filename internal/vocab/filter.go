package vocab

import (
	"strings"

	"github.com/abhisek/lingoz/internal/store"
)

// FilterFunc returns true when a word should be kept.
type FilterFunc func(string) bool

// FilterForLang returns a language-specific filter for word lists.
func FilterForLang(lang string) FilterFunc {
	switch strings.ToLower(lang) {
	case "en", "english":
		return filterEnglishASCII
	default:
		return func(word string) bool { return word != "" }
	}
}

func filterEnglishASCII(word string) bool {
	if word == "" {
		return false
	}
	for i := 0; i < len(word); i++ {
		ch := word[i]
		if ch < 'a' || ch > 'z' {
			return false
		}
	}
	return true
}

// Filter returns the words keep accepts, in order.
func Filter(words []store.Word, keep FilterFunc) []store.Word {
	out := words[:0:0]
	for _, w := range words {
		if keep(w.Text) {
			out = append(out, w)
		}
	}
	return out
}
