// Package textgen produces the raw text practice exercises are built from:
// cloze sentences, reading passages, single-word translations and the
// replies of a conversation partner. Output is
// requested as schema-constrained JSON and checked by a validator chain
// before it is returned.
package textgen

import (
	"context"

	"github.com/abhisek/lingoz/internal/practice"
)

// Generator produces practice text at a learner level.
type Generator interface {
	// GenerateSentence returns one conversational sentence.
	GenerateSentence(ctx context.Context, level practice.Level) (string, error)

	// GeneratePassage returns a short reading passage.
	GeneratePassage(ctx context.Context, level practice.Level) (practice.Passage, error)
}

// Translator translates single words.
type Translator interface {
	Translate(ctx context.Context, word string) (string, error)
}

// Conversation answers a learner in a free practice chat.
type Conversation interface {
	// Reply returns the partner's answer to text, given the turns so far.
	Reply(ctx context.Context, level practice.Level, history []Turn, text string) (string, error)
}
