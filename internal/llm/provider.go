package llm

import (
	"context"
	"encoding/json"
	"fmt"
)

// Provider generates text with an LLM. Generate returns JSON matching
// req.Schema when one is set.
type Provider interface {
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured to use.
	ModelID() string
}

// Request is a single-turn prompt. lingoz never holds a conversation, so
// Messages normally carries one user message.
type Request struct {
	System   string
	Messages []Message

	// Schema selects the provider's structured output mode. Nil asks for
	// plain text.
	Schema *Schema

	MaxTokens int

	// Temperature in [0, 1]. Zero leaves the provider default.
	Temperature float64
}

// Message is one turn of the prompt.
type Message struct {
	Role    Role
	Content string
}

// Role is the message sender role.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema is a named JSON Schema for structured output. Name doubles as the
// OpenAI schema name, so it must be kebab-case, e.g. "cloze-sentence".
type Schema struct {
	Name        string
	Description string
	Definition  map[string]any
}

// Response holds the model output.
type Response struct {
	// Content is the schema-validated JSON object, or the raw text when the
	// request had no schema.
	Content json.RawMessage

	Usage Usage

	// Model is the model that actually served the request, which may differ
	// from ModelID when a provider resolves aliases.
	Model string

	// StopReason is one of the Stop* constants.
	StopReason string
}

// Normalized stop reasons.
const (
	StopEnd       = "end"
	StopMaxTokens = "max_tokens"
	StopBlocked   = "blocked"
)

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

func newUsage(in, out int) Usage {
	return Usage{InputTokens: in, OutputTokens: out, TotalTokens: in + out}
}

// finish turns a provider answer into a Response. Truncated and blocked
// outputs become errors before schema validation so callers see the real
// cause instead of a JSON parse failure.
func finish(req Request, content json.RawMessage, usage Usage, model, stop string) (*Response, error) {
	switch stop {
	case StopMaxTokens:
		return nil, &ErrMaxTokensExceeded{Content: content}
	case StopBlocked:
		return nil, &ErrInvalidResponse{Content: content, Err: fmt.Errorf("output blocked by %s safety filter", model)}
	}
	if len(content) == 0 {
		return nil, &ErrInvalidResponse{Err: fmt.Errorf("empty response from %s", model)}
	}
	if err := validateResponse(req.Schema, content); err != nil {
		return nil, err
	}
	return &Response{
		Content:    content,
		Usage:      usage,
		Model:      model,
		StopReason: stop,
	}, nil
}
