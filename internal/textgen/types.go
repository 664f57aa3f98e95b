package textgen

import "github.com/abhisek/lingoz/internal/practice"

// Kind identifies what a generated Text is.
type Kind string

const (
	KindSentence    Kind = "sentence"
	KindPassage     Kind = "passage"
	KindTranslation Kind = "translation"
	KindReply       Kind = "reply"
)

// Text is a generated piece of text awaiting validation.
type Text struct {
	Kind  Kind
	Level practice.Level

	// Body is the sentence, passage or translation.
	Body string

	// Title is set for passages only.
	Title string

	// Source is the word that was translated. Set for translations only.
	Source string
}

// Turn is one message of a practice conversation.
type Turn struct {
	Learner bool
	Text    string
}
