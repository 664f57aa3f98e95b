package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"
)

func fastRetry() RetryConfig {
	return RetryConfig{
		MaxAttempts: 3,
		InitialWait: time.Millisecond,
		MaxWait:     4 * time.Millisecond,
		Multiplier:  2,
	}
}

var sentenceOK = MockResponse{Content: json.RawMessage(`{"sentence":"We met at the station before the train left."}`)}

func unavailable() MockResponse {
	return MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("503")}}
}

func invalid() MockResponse {
	return MockResponse{Err: &ErrInvalidResponse{Content: json.RawMessage(`{}`), Err: errors.New("missing sentence")}}
}

func TestRetry_Attempts(t *testing.T) {
	tests := []struct {
		name      string
		responses []MockResponse
		wantCalls int
		wantErr   bool
	}{
		{"first attempt", []MockResponse{sentenceOK}, 1, false},
		{"transient then success", []MockResponse{unavailable(), sentenceOK}, 2, false},
		{"rate limit then success", []MockResponse{
			{Err: &ErrRateLimit{RetryAfter: time.Millisecond, Err: errors.New("429")}}, sentenceOK,
		}, 2, false},
		{"gives up after max attempts", []MockResponse{unavailable(), unavailable(), unavailable(), sentenceOK}, 3, true},
		{"invalid response retried once", []MockResponse{invalid(), invalid(), sentenceOK}, 2, true},
		{"invalid then transient", []MockResponse{invalid(), unavailable(), sentenceOK}, 3, false},
		{"max tokens not retried", []MockResponse{{Err: &ErrMaxTokensExceeded{}}, sentenceOK}, 1, true},
		{"rejected not retried", []MockResponse{{Err: &ErrRequestRejected{StatusCode: 401, Err: errors.New("bad key")}}, sentenceOK}, 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := NewMockProvider(tt.responses...)
			p := WithRetry(mock, fastRetry())

			resp, err := p.Generate(context.Background(), Request{})
			if tt.wantErr != (err != nil) {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && string(resp.Content) != string(sentenceOK.Content) {
				t.Errorf("unexpected content: %s", resp.Content)
			}
			if got := mock.CallCount(); got != tt.wantCalls {
				t.Errorf("calls = %d, want %d", got, tt.wantCalls)
			}
		})
	}
}

func TestRetry_ContextCancelledDuringWait(t *testing.T) {
	mock := NewMockProvider(unavailable(), sentenceOK)
	cfg := fastRetry()
	cfg.InitialWait = time.Hour
	cfg.MaxWait = time.Hour
	p := WithRetry(mock, cfg)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := p.Generate(ctx, Request{})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}
	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mock.CallCount())
	}
}

func TestRetry_ZeroAttemptsStillCallsOnce(t *testing.T) {
	mock := NewMockProvider(sentenceOK)
	p := WithRetry(mock, RetryConfig{})
	if _, err := p.Generate(context.Background(), Request{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mock.CallCount())
	}
}

func TestRetry_Delay(t *testing.T) {
	r := &RetryProvider{
		config: RetryConfig{InitialWait: time.Second, MaxWait: 5 * time.Second, Multiplier: 2},
	}
	transient := errors.New("connection reset")

	// Jitter midpoint leaves the base delay unchanged.
	r.jitter = func() float64 { return 0.5 }
	for attempt, want := range map[int]time.Duration{
		1: time.Second,
		2: 2 * time.Second,
		3: 4 * time.Second,
		4: 5 * time.Second,
		9: 5 * time.Second,
	} {
		if got := r.delay(attempt, transient); got != want {
			t.Errorf("delay(%d) = %s, want %s", attempt, got, want)
		}
	}

	r.jitter = func() float64 { return 0 }
	if got := r.delay(1, transient); got != 800*time.Millisecond {
		t.Errorf("low jitter: got %s, want 800ms", got)
	}

	rl := fmt.Errorf("wrapped: %w", &ErrRateLimit{RetryAfter: 7 * time.Second})
	if got := r.delay(1, rl); got != 7*time.Second {
		t.Errorf("Retry-After: got %s, want 7s", got)
	}
}

func TestRetryable(t *testing.T) {
	tests := []struct {
		err  error
		want bool
	}{
		{nil, false},
		{context.Canceled, false},
		{fmt.Errorf("call: %w", context.DeadlineExceeded), false},
		{&ErrMaxTokensExceeded{}, false},
		{&ErrRequestRejected{StatusCode: 400}, false},
		{&ErrRateLimit{}, true},
		{&ErrProviderUnavailable{}, true},
		{&ErrInvalidResponse{Err: errors.New("x")}, true},
		{errors.New("connection reset"), true},
	}
	for _, tt := range tests {
		if got := Retryable(tt.err); got != tt.want {
			t.Errorf("Retryable(%v) = %v, want %v", tt.err, got, tt.want)
		}
	}
}

func TestRetry_ModelIDDelegates(t *testing.T) {
	p := WithRetry(NewMockProvider(), fastRetry())
	if p.ModelID() != "mock" {
		t.Fatalf("expected 'mock', got %q", p.ModelID())
	}
}
