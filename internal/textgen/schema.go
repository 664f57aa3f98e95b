package textgen

import "github.com/abhisek/lingoz/internal/llm"

// SentenceSchema defines the JSON schema for cloze sentence responses.
var SentenceSchema = &llm.Schema{
	Name:        "cloze-sentence",
	Description: "A single conversational sentence for a fill-in-the-blank exercise",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"sentence": map[string]any{
				"type":        "string",
				"description": "One sentence of 15 to 20 words on a single line",
			},
		},
		"required":             []any{"sentence"},
		"additionalProperties": false,
	},
}

// PassageSchema defines the JSON schema for reading passage responses.
var PassageSchema = &llm.Schema{
	Name:        "reading-passage",
	Description: "A short reading passage to be read aloud",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title": map[string]any{
				"type":        "string",
				"description": "A short title for the passage",
			},
			"passage": map[string]any{
				"type":        "string",
				"description": "The passage text, 100 to 150 words, one paragraph",
			},
		},
		"required":             []any{"title", "passage"},
		"additionalProperties": false,
	},
}

// TranslationSchema defines the JSON schema for word translation responses.
var TranslationSchema = &llm.Schema{
	Name:        "word-translation",
	Description: "The translation of a single word",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"translation": map[string]any{
				"type":        "string",
				"description": "The most common translation, one word or a short phrase",
			},
		},
		"required":             []any{"translation"},
		"additionalProperties": false,
	},
}

// ReplySchema defines the JSON schema for conversation replies.
var ReplySchema = &llm.Schema{
	Name:        "conversation-reply",
	Description: "A teacher's reply in a practice conversation",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"reply": map[string]any{
				"type":        "string",
				"description": "A brief, friendly reply of one to three sentences",
			},
		},
		"required":             []any{"reply"},
		"additionalProperties": false,
	},
}
