package llm

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
)

func TestMockProvider_Script(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{"sentence":"one"}`), Usage: Usage{InputTokens: 12, OutputTokens: 3}},
		MockResponse{Err: &ErrRateLimit{}},
	)
	ctx := context.Background()

	resp, err := mock.Generate(ctx, Request{System: "sys"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp.Content) != `{"sentence":"one"}` {
		t.Errorf("content = %s", resp.Content)
	}
	if resp.Usage.TotalTokens != 15 {
		t.Errorf("total tokens = %d, want 15 (filled from input+output)", resp.Usage.TotalTokens)
	}
	if resp.Model != "mock" || resp.StopReason != StopEnd {
		t.Errorf("unexpected metadata: %+v", resp)
	}

	var rl *ErrRateLimit
	if _, err := mock.Generate(ctx, Request{}); !errors.As(err, &rl) {
		t.Fatalf("second call: expected *ErrRateLimit, got %T", err)
	}

	var unavail *ErrProviderUnavailable
	if _, err := mock.Generate(ctx, Request{}); !errors.As(err, &unavail) {
		t.Fatalf("exhausted script: expected *ErrProviderUnavailable, got %T", err)
	}

	mock.Enqueue(MockResponse{Content: json.RawMessage(`"late"`)})
	if _, err := mock.Generate(ctx, Request{}); err != nil {
		t.Fatalf("after Enqueue: %v", err)
	}
	if mock.CallCount() != 4 {
		t.Errorf("calls = %d, want 4", mock.CallCount())
	}
}

func TestMockProvider_StopReasons(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{"sent`), StopReason: StopMaxTokens},
		MockResponse{StopReason: StopBlocked},
	)

	var maxTok *ErrMaxTokensExceeded
	if _, err := mock.Generate(context.Background(), Request{}); !errors.As(err, &maxTok) {
		t.Fatalf("expected *ErrMaxTokensExceeded, got %T", err)
	}
	if string(maxTok.Content) != `{"sent` {
		t.Errorf("truncated content = %s", maxTok.Content)
	}

	var inv *ErrInvalidResponse
	if _, err := mock.Generate(context.Background(), Request{}); !errors.As(err, &inv) {
		t.Fatalf("expected *ErrInvalidResponse, got %T", err)
	}
}

func TestMockProvider_RecordsRequestsAndPurposes(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(`{}`)}, MockResponse{Content: json.RawMessage(`{}`)})

	ctx := WithPurpose(context.Background(), PurposeTranslate)
	_, _ = mock.Generate(ctx, Request{System: "translate", Messages: []Message{{Role: RoleUser, Content: "apple"}}})
	_, _ = mock.Generate(context.Background(), Request{System: "other"})

	reqs := mock.Requests()
	if len(reqs) != 2 || reqs[0].System != "translate" || reqs[0].Messages[0].Content != "apple" {
		t.Fatalf("unexpected requests: %+v", reqs)
	}
	reqs[0].System = "changed"
	if mock.Requests()[0].System != "translate" {
		t.Error("Requests must return a copy")
	}

	purposes := mock.Purposes()
	if purposes[0] != PurposeTranslate || purposes[1] != PurposeUnknown {
		t.Errorf("purposes = %v", purposes)
	}
}

func TestMockProviderFunc_Concurrent(t *testing.T) {
	mock := NewMockProviderFunc(func(req Request) MockResponse {
		return MockResponse{Content: json.RawMessage(`"` + req.System + `"`)}
	})

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			resp, err := mock.Generate(context.Background(), Request{System: "echo"})
			if err != nil || string(resp.Content) != `"echo"` {
				t.Errorf("resp = %v, err = %v", resp, err)
			}
		}()
	}
	wg.Wait()

	if mock.CallCount() != 8 {
		t.Errorf("calls = %d, want 8", mock.CallCount())
	}
}

func TestPurposeContext(t *testing.T) {
	ctx := context.Background()
	if p := PurposeFrom(ctx); p != PurposeUnknown {
		t.Fatalf("untagged context: got %q", p)
	}
	if p := PurposeFrom(WithPurpose(ctx, "")); p != PurposeUnknown {
		t.Fatalf("empty purpose must not tag: got %q", p)
	}
	if p := PurposeFrom(WithPurpose(ctx, PurposePassage)); p != PurposePassage {
		t.Fatalf("got %q, want %q", p, PurposePassage)
	}
}
