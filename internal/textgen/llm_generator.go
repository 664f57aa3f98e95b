package textgen

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/abhisek/lingoz/internal/llm"
	"github.com/abhisek/lingoz/internal/practice"
)

// LLMGenerator implements Generator and Translator using an LLM provider.
// It remembers recent sentences so later prompts can avoid them.
type LLMGenerator struct {
	provider llm.Provider
	config   Config

	mu    sync.Mutex
	prior []string
}

var (
	_ Generator    = (*LLMGenerator)(nil)
	_ Translator   = (*LLMGenerator)(nil)
	_ Conversation = (*LLMGenerator)(nil)
)

// New creates a new LLMGenerator with the given provider and config.
func New(provider llm.Provider, cfg Config) *LLMGenerator {
	if cfg.RejectIdentity {
		cfg.Validators = append(cfg.Validators, &IdentityValidator{})
	}
	return &LLMGenerator{provider: provider, config: cfg}
}

type sentenceOutput struct {
	Sentence string `json:"sentence"`
}

type passageOutput struct {
	Title   string `json:"title"`
	Passage string `json:"passage"`
}

type translationOutput struct {
	Translation string `json:"translation"`
}

type replyOutput struct {
	Reply string `json:"reply"`
}

// GenerateSentence produces one sentence for a cloze exercise.
func (g *LLMGenerator) GenerateSentence(ctx context.Context, level practice.Level) (string, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeSentence)

	g.mu.Lock()
	userMsg := buildSentenceMessage(level, g.prior, g.config.MaxPriorSentences)
	g.mu.Unlock()

	var out sentenceOutput
	req := g.request(KindSentence, fmt.Sprintf(sentenceSystemPrompt, g.config.SourceLanguage), userMsg, SentenceSchema)
	if err := g.generate(ctx, req, &out); err != nil {
		return "", err
	}

	t := &Text{Kind: KindSentence, Level: level, Body: strings.TrimSpace(out.Sentence)}
	if err := g.validate(t); err != nil {
		return "", err
	}

	g.remember(t.Body)
	return t.Body, nil
}

// GeneratePassage produces a reading passage.
func (g *LLMGenerator) GeneratePassage(ctx context.Context, level practice.Level) (practice.Passage, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposePassage)

	var out passageOutput
	req := g.request(KindPassage, fmt.Sprintf(passageSystemPrompt, g.config.SourceLanguage), buildPassageMessage(level), PassageSchema)
	if err := g.generate(ctx, req, &out); err != nil {
		return practice.Passage{}, err
	}

	t := &Text{
		Kind:  KindPassage,
		Level: level,
		Body:  strings.TrimSpace(out.Passage),
		Title: strings.TrimSpace(out.Title),
	}
	if err := g.validate(t); err != nil {
		return practice.Passage{}, err
	}

	p := practice.NewPassage(t.Body, level)
	p.Title = t.Title
	return p, nil
}

// Translate returns the translation of word into the target language.
func (g *LLMGenerator) Translate(ctx context.Context, word string) (string, error) {
	word = strings.TrimSpace(word)
	if word == "" {
		return "", fmt.Errorf("%w: empty word", practice.ErrMalformedInput)
	}
	ctx = llm.WithPurpose(ctx, llm.PurposeTranslate)

	system := fmt.Sprintf(translationSystemPrompt, g.config.SourceLanguage, g.config.TargetLanguage)
	req := g.request(KindTranslation, system, buildTranslationMessage(word), TranslationSchema)
	req.Temperature = 0

	var out translationOutput
	if err := g.generate(ctx, req, &out); err != nil {
		return "", err
	}

	t := &Text{Kind: KindTranslation, Body: strings.TrimSpace(out.Translation), Source: word}
	if err := g.validate(t); err != nil {
		return "", err
	}
	return t.Body, nil
}

// Reply answers the learner's text as a conversation partner. The most
// recent turns of history go along as prior messages.
func (g *LLMGenerator) Reply(ctx context.Context, level practice.Level, history []Turn, text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", fmt.Errorf("%w: empty message", practice.ErrMalformedInput)
	}
	ctx = llm.WithPurpose(ctx, llm.PurposeConverse)

	system := fmt.Sprintf(conversationSystemPrompt, g.config.SourceLanguage, level, levelGuidance(level))
	req := g.request(KindReply, system, text, ReplySchema)
	turns := recentTurns(history, g.config.MaxHistoryTurns)
	msgs := make([]llm.Message, 0, len(turns)+1)
	for _, t := range turns {
		role := llm.RoleAssistant
		if t.Learner {
			role = llm.RoleUser
		}
		msgs = append(msgs, llm.Message{Role: role, Content: t.Text})
	}
	req.Messages = append(msgs, req.Messages...)

	var out replyOutput
	if err := g.generate(ctx, req, &out); err != nil {
		return "", err
	}

	t := &Text{Kind: KindReply, Level: level, Body: strings.TrimSpace(out.Reply)}
	if err := g.validate(t); err != nil {
		return "", err
	}
	return t.Body, nil
}

func (g *LLMGenerator) request(kind Kind, system, userMsg string, schema *llm.Schema) llm.Request {
	return llm.Request{
		System: system,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: userMsg},
		},
		Schema:      schema,
		MaxTokens:   g.config.MaxTokens[kind],
		Temperature: g.config.Temperature,
	}
}

func (g *LLMGenerator) generate(ctx context.Context, req llm.Request, out any) error {
	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return fmt.Errorf("LLM generation failed: %w", err)
	}
	if err := json.Unmarshal(resp.Content, out); err != nil {
		return fmt.Errorf("failed to parse LLM response: %w", err)
	}
	return nil
}

func (g *LLMGenerator) validate(t *Text) error {
	return Chain(g.config.Validators).Validate(t)
}

func (g *LLMGenerator) remember(sentence string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.prior = append(g.prior, sentence)
	if limit := g.config.MaxPriorSentences; limit > 0 && len(g.prior) > limit {
		g.prior = g.prior[len(g.prior)-limit:]
	}
}
