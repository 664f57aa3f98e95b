package llm

import (
	"context"
	"errors"
	"log/slog"
	"math/rand/v2"
	"time"
)

// RetryProvider retries transient failures with exponential backoff.
type RetryProvider struct {
	inner  Provider
	config RetryConfig

	// jitter returns a value in [0, 1). Replaced in tests.
	jitter func() float64
}

// WithRetry wraps a Provider with retry logic.
func WithRetry(p Provider, cfg RetryConfig) Provider {
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}
	return &RetryProvider{inner: p, config: cfg, jitter: rand.Float64}
}

// Generate calls the inner provider until it succeeds, the error is not
// Retryable, or MaxAttempts is reached. Invalid responses get one retry.
func (r *RetryProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	var invalidSeen bool
	for attempt := 1; ; attempt++ {
		resp, err := r.inner.Generate(ctx, req)
		if err == nil {
			return resp, nil
		}

		if !Retryable(err) || attempt >= r.config.MaxAttempts {
			return nil, err
		}
		var inv *ErrInvalidResponse
		if errors.As(err, &inv) {
			if invalidSeen {
				return nil, err
			}
			invalidSeen = true
		}

		wait := r.delay(attempt, err)
		slog.DebugContext(ctx, "retrying llm request",
			"purpose", PurposeFrom(ctx),
			"attempt", attempt,
			"wait", wait,
			"error", err)

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}
}

func (r *RetryProvider) ModelID() string {
	return r.inner.ModelID()
}

// delay is the wait after the given 1-based attempt: the provider's
// Retry-After when it sent one, otherwise InitialWait grown by Multiplier
// per attempt, capped at MaxWait, with +-20% jitter.
func (r *RetryProvider) delay(attempt int, err error) time.Duration {
	var rl *ErrRateLimit
	if errors.As(err, &rl) && rl.RetryAfter > 0 {
		return rl.RetryAfter
	}

	wait := float64(r.config.InitialWait)
	for i := 1; i < attempt; i++ {
		wait *= r.config.Multiplier
		if wait >= float64(r.config.MaxWait) {
			break
		}
	}
	wait = min(wait, float64(r.config.MaxWait))
	wait += wait * 0.4 * (r.jitter() - 0.5)
	return time.Duration(max(wait, 0))
}
