package llm

import (
	"context"
	"encoding/json"
	"errors"
	"slices"
	"sync"
)

// MockResponse is one scripted answer of a MockProvider.
type MockResponse struct {
	Content json.RawMessage
	Usage   Usage
	Err     error

	// StopReason defaults to StopEnd. StopMaxTokens and StopBlocked turn
	// into the same errors a remote provider would return.
	StopReason string
}

// MockProvider is a scripted Provider for tests and offline runs. It never
// validates against the request schema, so tests can feed the callers
// malformed output on purpose.
type MockProvider struct {
	mu       sync.Mutex
	script   []MockResponse
	respond  func(Request) MockResponse
	requests []Request
	purposes []string
}

// NewMockProvider answers requests with responses in order and fails with
// ErrProviderUnavailable once they run out.
func NewMockProvider(responses ...MockResponse) *MockProvider {
	return &MockProvider{script: responses}
}

// NewMockProviderFunc answers every request with fn, for callers that
// issue requests concurrently.
func NewMockProviderFunc(fn func(Request) MockResponse) *MockProvider {
	return &MockProvider{respond: fn}
}

func (m *MockProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	m.mu.Lock()
	m.requests = append(m.requests, req)
	m.purposes = append(m.purposes, PurposeFrom(ctx))
	next, ok := m.next(req)
	m.mu.Unlock()

	if !ok {
		return nil, &ErrProviderUnavailable{Err: errors.New("mock: no responses left")}
	}
	if next.Err != nil {
		return nil, next.Err
	}

	usage := next.Usage
	if usage.TotalTokens == 0 {
		usage = newUsage(usage.InputTokens, usage.OutputTokens)
	}
	switch next.StopReason {
	case StopMaxTokens:
		return nil, &ErrMaxTokensExceeded{Content: next.Content}
	case StopBlocked:
		return nil, &ErrInvalidResponse{Content: next.Content, Err: errors.New("mock: output blocked")}
	}
	return &Response{
		Content:    next.Content,
		Usage:      usage,
		Model:      "mock",
		StopReason: StopEnd,
	}, nil
}

// next must be called with mu held.
func (m *MockProvider) next(req Request) (MockResponse, bool) {
	if m.respond != nil {
		return m.respond(req), true
	}
	if len(m.script) == 0 {
		return MockResponse{}, false
	}
	r := m.script[0]
	m.script = m.script[1:]
	return r, true
}

func (m *MockProvider) ModelID() string {
	return "mock"
}

// Enqueue appends scripted responses.
func (m *MockProvider) Enqueue(responses ...MockResponse) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.script = append(m.script, responses...)
}

// Requests returns a copy of every request received so far.
func (m *MockProvider) Requests() []Request {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.requests)
}

// Purposes returns the call purpose of every request received so far.
func (m *MockProvider) Purposes() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.purposes)
}

// CallCount returns the number of Generate calls made.
func (m *MockProvider) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.requests)
}
