package textgen

import (
	"fmt"
	"strings"
)

// Character limits per kind.
const (
	maxSentenceChars    = 300
	maxPassageChars     = 2000
	maxTranslationChars = 80
	maxTitleChars       = 120
	maxReplyChars       = 800
)

// StructuralValidator checks that text is present, on one line where
// required, and within character limits.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(t *Text) *ValidationError {
	if strings.TrimSpace(t.Body) == "" {
		return v.fail(fmt.Sprintf("%s is empty", t.Kind))
	}

	switch t.Kind {
	case KindSentence:
		if strings.ContainsAny(t.Body, "\r\n") {
			return v.fail("sentence spans multiple lines")
		}
		if len(t.Body) > maxSentenceChars {
			return v.fail(fmt.Sprintf("sentence exceeds %d characters", maxSentenceChars))
		}
	case KindPassage:
		if len(t.Body) > maxPassageChars {
			return v.fail(fmt.Sprintf("passage exceeds %d characters", maxPassageChars))
		}
		if len(t.Title) > maxTitleChars {
			return v.fail(fmt.Sprintf("title exceeds %d characters", maxTitleChars))
		}
	case KindReply:
		if len(t.Body) > maxReplyChars {
			return v.fail(fmt.Sprintf("reply exceeds %d characters", maxReplyChars))
		}
	case KindTranslation:
		if strings.ContainsAny(t.Body, "\r\n") {
			return v.fail("translation spans multiple lines")
		}
		if len(t.Body) > maxTranslationChars {
			return v.fail(fmt.Sprintf("translation exceeds %d characters", maxTranslationChars))
		}
	}
	return nil
}

func (v *StructuralValidator) fail(msg string) *ValidationError {
	return &ValidationError{Validator: v.Name(), Message: msg, Retryable: true}
}

// IdentityValidator rejects translations equal to their source word,
// ignoring case.
type IdentityValidator struct{}

func (v *IdentityValidator) Name() string { return "identity" }

func (v *IdentityValidator) Validate(t *Text) *ValidationError {
	if t.Kind != KindTranslation {
		return nil
	}
	if strings.EqualFold(strings.TrimSpace(t.Body), strings.TrimSpace(t.Source)) {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("translation of %q is the word itself", t.Source),
			Retryable: true,
		}
	}
	return nil
}
