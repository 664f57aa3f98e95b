package textgen

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/abhisek/lingoz/internal/llm"
	"github.com/abhisek/lingoz/internal/practice"
)

const validSentence = "We usually meet at the small cafe near the station before work on Monday mornings."

func sentenceJSON(s string) json.RawMessage {
	b, _ := json.Marshal(sentenceOutput{Sentence: s})
	return b
}

func passageText(words int) string {
	return strings.TrimSpace(strings.Repeat("word ", words))
}

func TestGenerateSentence(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: sentenceJSON("  " + validSentence + " ")})
	gen := New(mock, DefaultConfig())

	s, err := gen.GenerateSentence(context.Background(), practice.LevelA2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s != validSentence {
		t.Errorf("sentence = %q", s)
	}

	req := mock.Requests()[0]
	if req.Schema != SentenceSchema {
		t.Error("expected sentence schema")
	}
	if !strings.Contains(req.System, "learning English") {
		t.Errorf("system prompt = %q", req.System)
	}
	msg := req.Messages[0].Content
	if !strings.Contains(msg, "Level: A2") || !strings.Contains(msg, "very common everyday words") {
		t.Errorf("user message = %q", msg)
	}
	if !strings.Contains(msg, "Already used:\nNone") {
		t.Errorf("expected empty prior list, got %q", msg)
	}
	if req.MaxTokens != 256 {
		t.Errorf("max tokens = %d", req.MaxTokens)
	}
}

func TestGenerateSentence_PriorSentencesInPrompt(t *testing.T) {
	second := "My brother always forgets his keys when he leaves the house in a hurry."
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: sentenceJSON(validSentence)},
		llm.MockResponse{Content: sentenceJSON(second)},
	)
	gen := New(mock, DefaultConfig())
	ctx := context.Background()

	if _, err := gen.GenerateSentence(ctx, practice.LevelB1); err != nil {
		t.Fatalf("first: %v", err)
	}
	if _, err := gen.GenerateSentence(ctx, practice.LevelB1); err != nil {
		t.Fatalf("second: %v", err)
	}

	msg := mock.Requests()[1].Messages[0].Content
	if !strings.Contains(msg, "1. "+validSentence) {
		t.Errorf("second prompt should list the first sentence, got %q", msg)
	}
}

func TestGenerateSentence_PriorIsBounded(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxPriorSentences = 2
	gen := New(llm.NewMockProvider(), cfg)

	for _, s := range []string{"one", "two", "three"} {
		gen.remember(s)
	}
	if len(gen.prior) != 2 || gen.prior[0] != "two" {
		t.Fatalf("prior = %v, want [two three]", gen.prior)
	}
}

func TestGenerateSentence_ValidationFailure(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: sentenceJSON("Too short.")})
	gen := New(mock, DefaultConfig())

	_, err := gen.GenerateSentence(context.Background(), practice.LevelB1)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if verr.Validator != "length" || !verr.Retryable {
		t.Errorf("validation error = %+v", verr)
	}
	if len(gen.prior) != 0 {
		t.Error("rejected sentences must not be remembered")
	}
}

func TestGenerateSentence_ProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})
	gen := New(mock, DefaultConfig())

	_, err := gen.GenerateSentence(context.Background(), practice.LevelB1)
	var unavail *llm.ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrProviderUnavailable, got %v", err)
	}
}

func TestGenerateSentence_BadJSON(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`not json`)})
	gen := New(mock, DefaultConfig())

	if _, err := gen.GenerateSentence(context.Background(), practice.LevelB1); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestGeneratePassage(t *testing.T) {
	body := passageText(120)
	content, _ := json.Marshal(passageOutput{Title: "A Day Out", Passage: body})
	mock := llm.NewMockProvider(llm.MockResponse{Content: content})
	gen := New(mock, DefaultConfig())

	p, err := gen.GeneratePassage(context.Background(), practice.LevelC1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Title != "A Day Out" || p.Text != body {
		t.Errorf("passage = %+v", p)
	}
	if p.WordCount != 120 || p.EstimatedReadingSeconds != 60 {
		t.Errorf("word count %d, reading time %d", p.WordCount, p.EstimatedReadingSeconds)
	}
	if p.Level != practice.LevelC1 {
		t.Errorf("level = %q", p.Level)
	}
	if mock.Requests()[0].Schema != PassageSchema {
		t.Error("expected passage schema")
	}
	if !strings.Contains(mock.Requests()[0].Messages[0].Content, "idiomatic") {
		t.Error("advanced guidance missing from prompt")
	}
}

func TestGeneratePassage_TooLong(t *testing.T) {
	content, _ := json.Marshal(passageOutput{Title: "Long", Passage: passageText(300)})
	mock := llm.NewMockProvider(llm.MockResponse{Content: content})
	gen := New(mock, DefaultConfig())

	_, err := gen.GeneratePassage(context.Background(), practice.LevelB2)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestTranslate(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{"translation":" elma "}`)})
	gen := New(mock, DefaultConfig())

	tr, err := gen.Translate(context.Background(), "apple")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tr != "elma" {
		t.Errorf("translation = %q", tr)
	}

	req := mock.Requests()[0]
	if req.Temperature != 0 {
		t.Errorf("translation temperature = %v, want 0", req.Temperature)
	}
	if !strings.Contains(req.System, "from English to Turkish") {
		t.Errorf("system prompt = %q", req.System)
	}
	if req.Messages[0].Content != "Word: apple" {
		t.Errorf("user message = %q", req.Messages[0].Content)
	}
}

func TestTranslate_EmptyWord(t *testing.T) {
	gen := New(llm.NewMockProvider(), DefaultConfig())

	_, err := gen.Translate(context.Background(), "  ")
	if !errors.Is(err, practice.ErrMalformedInput) {
		t.Fatalf("expected ErrMalformedInput, got %v", err)
	}
}

func TestTranslate_RejectIdentity(t *testing.T) {
	resp := llm.MockResponse{Content: json.RawMessage(`{"translation":"Taxi"}`)}

	gen := New(llm.NewMockProvider(resp), DefaultConfig())
	if _, err := gen.Translate(context.Background(), "taxi"); err != nil {
		t.Fatalf("identity allowed by default, got %v", err)
	}

	cfg := DefaultConfig()
	cfg.RejectIdentity = true
	gen = New(llm.NewMockProvider(resp), cfg)
	_, err := gen.Translate(context.Background(), "taxi")
	var verr *ValidationError
	if !errors.As(err, &verr) || verr.Validator != "identity" {
		t.Fatalf("expected identity ValidationError, got %v", err)
	}
}

func replyJSON(s string) json.RawMessage {
	b, _ := json.Marshal(replyOutput{Reply: s})
	return b
}

func TestReply(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: replyJSON(" That sounds lovely! Where did you go? ")})
	gen := New(mock, DefaultConfig())

	history := []Turn{
		{Learner: true, Text: "Hello teacher"},
		{Text: "Hi! How was your weekend?"},
	}
	reply, err := gen.Reply(context.Background(), practice.LevelA2, history, " I goed to the sea. ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reply != "That sounds lovely! Where did you go?" {
		t.Errorf("reply = %q", reply)
	}

	req := mock.Requests()[0]
	if req.Schema != ReplySchema {
		t.Error("expected reply schema")
	}
	if !strings.Contains(req.System, "friendly English teacher") || !strings.Contains(req.System, "Learner level: A2") {
		t.Errorf("system prompt = %q", req.System)
	}
	want := []llm.Message{
		{Role: llm.RoleUser, Content: "Hello teacher"},
		{Role: llm.RoleAssistant, Content: "Hi! How was your weekend?"},
		{Role: llm.RoleUser, Content: "I goed to the sea."},
	}
	if len(req.Messages) != len(want) {
		t.Fatalf("messages = %+v", req.Messages)
	}
	for i := range want {
		if req.Messages[i] != want[i] {
			t.Errorf("message %d = %+v, want %+v", i, req.Messages[i], want[i])
		}
	}
	if p := mock.Purposes()[0]; p != llm.PurposeConverse {
		t.Errorf("purpose = %q", p)
	}
}

func TestReply_HistoryIsBounded(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxHistoryTurns = 2
	mock := llm.NewMockProvider(llm.MockResponse{Content: replyJSON("Good question.")})
	gen := New(mock, cfg)

	history := []Turn{
		{Learner: true, Text: "one"},
		{Text: "two"},
		{Learner: true, Text: "three"},
		{Text: "four"},
	}
	if _, err := gen.Reply(context.Background(), practice.LevelB1, history, "five"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	msgs := mock.Requests()[0].Messages
	if len(msgs) != 3 || msgs[0].Content != "three" || msgs[2].Content != "five" {
		t.Errorf("messages = %+v", msgs)
	}
}

func TestReply_EmptyMessage(t *testing.T) {
	mock := llm.NewMockProvider()
	gen := New(mock, DefaultConfig())

	_, err := gen.Reply(context.Background(), practice.LevelB1, nil, " \n")
	if !errors.Is(err, practice.ErrMalformedInput) {
		t.Fatalf("expected ErrMalformedInput, got %v", err)
	}
	if mock.CallCount() != 0 {
		t.Errorf("provider called %d times", mock.CallCount())
	}
}

func TestReply_EmptyReplyRejected(t *testing.T) {
	gen := New(llm.NewMockProvider(llm.MockResponse{Content: replyJSON("  ")}), DefaultConfig())

	_, err := gen.Reply(context.Background(), practice.LevelB1, nil, "hi")
	var verr *ValidationError
	if !errors.As(err, &verr) || verr.Validator != "structural" || !verr.Retryable {
		t.Fatalf("expected retryable structural ValidationError, got %v", err)
	}
}
