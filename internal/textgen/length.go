package textgen

import (
	"fmt"

	"github.com/abhisek/lingoz/internal/practice"
)

// LengthValidator bounds the word count of sentences and passages. The
// bounds are wider than what the prompts ask for; models rarely hit the
// requested count exactly.
type LengthValidator struct {
	SentenceMin, SentenceMax int
	PassageMin, PassageMax   int
}

// DefaultLengthValidator returns the standard bounds.
func DefaultLengthValidator() *LengthValidator {
	return &LengthValidator{
		SentenceMin: 8,
		SentenceMax: 30,
		PassageMin:  60,
		PassageMax:  220,
	}
}

func (v *LengthValidator) Name() string { return "length" }

func (v *LengthValidator) Validate(t *Text) *ValidationError {
	var lo, hi int
	switch t.Kind {
	case KindSentence:
		lo, hi = v.SentenceMin, v.SentenceMax
	case KindPassage:
		lo, hi = v.PassageMin, v.PassageMax
	default:
		return nil
	}

	n := practice.WordCount(t.Body)
	if n < lo || n > hi {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("%s has %d words, want %d-%d", t.Kind, n, lo, hi),
			Retryable: true,
		}
	}
	return nil
}
