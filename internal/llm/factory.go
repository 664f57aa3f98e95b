package llm

import (
	"context"
	"fmt"

	"github.com/abhisek/lingoz/internal/observe"
	"github.com/abhisek/lingoz/internal/store"
)

// NewProvider creates a Provider from configuration.
// It returns the provider wrapped with timeout, metrics, retry and logging
// middleware. A nil eventRepo disables event logging and nil metrics
// disables instrumentation.
func NewProvider(ctx context.Context, cfg Config, eventRepo store.EventRepo, metrics *observe.Metrics) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Provider {
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "openrouter":
		base, err = NewOpenRouterProvider(cfg.OpenRouter)
	case "mock":
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	return wrap(base, cfg, eventRepo, metrics), nil
}

// wrap applies middleware: caller → timeout → metrics → retry → logging → base
func wrap(base Provider, cfg Config, eventRepo store.EventRepo, metrics *observe.Metrics) Provider {
	p := base
	if eventRepo != nil {
		p = WithLogging(p, cfg.Provider, eventRepo)
	}
	p = WithRetry(p, cfg.Retry)
	if metrics != nil {
		p = WithMetrics(p, metrics)
	}
	if cfg.Timeout > 0 {
		p = WithTimeout(p, cfg.Timeout)
	}
	return p
}
