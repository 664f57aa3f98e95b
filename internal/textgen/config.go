package textgen

// Config controls the behavior of the LLMGenerator.
type Config struct {
	// Validators is the ordered list of validators to run on every
	// generated text. They execute in order; the first failure
	// stops the pipeline.
	Validators []Validator

	// MaxTokens is the token budget per kind of request.
	MaxTokens map[Kind]int

	// Temperature controls randomness of sentences and passages.
	// Translations always use 0.
	Temperature float64

	// MaxPriorSentences is the maximum number of recent sentences
	// listed in the prompt so the model avoids repeating them.
	MaxPriorSentences int

	// MaxHistoryTurns is how many recent conversation turns are sent
	// with each reply request.
	MaxHistoryTurns int

	// SourceLanguage is the language being practiced.
	SourceLanguage string

	// TargetLanguage is the learner's language, used for translations.
	TargetLanguage string

	// RejectIdentity fails translations that equal their source word.
	RejectIdentity bool
}

// DefaultConfig returns a Config with the standard validator chain
// and recommended defaults.
func DefaultConfig() Config {
	return Config{
		Validators: []Validator{
			&StructuralValidator{},
			DefaultLengthValidator(),
		},
		MaxTokens: map[Kind]int{
			KindSentence:    256,
			KindPassage:     1024,
			KindTranslation: 128,
			KindReply:       256,
		},
		Temperature:       0.9,
		MaxPriorSentences: 10,
		MaxHistoryTurns:   12,
		SourceLanguage:    "English",
		TargetLanguage:    "Turkish",
	}
}
