package llm

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// EnvProvider selects the provider and disables key discovery when set.
const EnvProvider = "LINGOZ_LLM_PROVIDER"

// Config holds all LLM provider configuration.
type Config struct {
	// Provider is one of "anthropic", "openai", "gemini", "openrouter" or
	// "mock".
	Provider string

	Anthropic  AnthropicConfig
	OpenAI     OpenAIConfig
	Gemini     GeminiConfig
	OpenRouter OpenRouterConfig
	Retry      RetryConfig

	// Timeout bounds a single Generate call including retries. Zero
	// disables it.
	Timeout time.Duration
}

type AnthropicConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

type OpenAIConfig struct {
	APIKey  string
	Model   string
	BaseURL string // any OpenAI-compatible endpoint
}

type GeminiConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

type OpenRouterConfig struct {
	APIKey  string
	Model   string
	BaseURL string // default https://openrouter.ai/api/v1
}

// RetryConfig configures retry behavior for transient failures.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// DefaultConfig returns the built-in defaults: Anthropic with the small
// model of each provider, three attempts and a 30s budget per call.
func DefaultConfig() Config {
	return Config{
		Provider:   "anthropic",
		Anthropic:  AnthropicConfig{Model: "claude-haiku"},
		OpenAI:     OpenAIConfig{Model: "gpt-4o-mini"},
		Gemini:     GeminiConfig{Model: "gemini-flash"},
		OpenRouter: OpenRouterConfig{Model: "google/gemini-2.0-flash-exp"},
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2,
		},
		Timeout: 30 * time.Second,
	}
}

// knownProviders lists the remote providers in discovery order with the
// key variable their own SDKs read.
var knownProviders = []struct {
	name        string
	standardKey string
}{
	{"gemini", "GEMINI_API_KEY"},
	{"openai", "OPENAI_API_KEY"},
	{"anthropic", "ANTHROPIC_API_KEY"},
	{"openrouter", "OPENROUTER_API_KEY"},
}

// endpoint points into the settings of one provider.
type endpoint struct {
	apiKey, model, baseURL *string
}

func (c *Config) endpoint(provider string) (endpoint, bool) {
	switch provider {
	case "anthropic":
		return endpoint{&c.Anthropic.APIKey, &c.Anthropic.Model, &c.Anthropic.BaseURL}, true
	case "openai":
		return endpoint{&c.OpenAI.APIKey, &c.OpenAI.Model, &c.OpenAI.BaseURL}, true
	case "gemini":
		return endpoint{&c.Gemini.APIKey, &c.Gemini.Model, &c.Gemini.BaseURL}, true
	case "openrouter":
		return endpoint{&c.OpenRouter.APIKey, &c.OpenRouter.Model, &c.OpenRouter.BaseURL}, true
	}
	return endpoint{}, false
}

// envVar names the LINGOZ_ variable for a provider setting, e.g.
// LINGOZ_GEMINI_API_KEY.
func envVar(provider, setting string) string {
	return "LINGOZ_" + strings.ToUpper(provider) + "_" + setting
}

// ConfigFromEnv is DefaultConfig with the environment applied.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()
	ApplyEnv(&cfg)
	return cfg
}

// ApplyEnv overrides cfg with every LINGOZ_* LLM variable that is set:
// LINGOZ_LLM_PROVIDER and, per provider, LINGOZ_<P>_API_KEY, _MODEL and
// _BASE_URL.
func ApplyEnv(cfg *Config) {
	if p := os.Getenv(EnvProvider); p != "" {
		cfg.Provider = p
	}
	for _, p := range knownProviders {
		ep, _ := cfg.endpoint(p.name)
		setFromEnv(ep.apiKey, envVar(p.name, "API_KEY"))
		setFromEnv(ep.model, envVar(p.name, "MODEL"))
		setFromEnv(ep.baseURL, envVar(p.name, "BASE_URL"))
	}
}

func setFromEnv(dst *string, name string) {
	if v := os.Getenv(name); v != "" {
		*dst = v
	}
}

// Resolve layers the environment over base. When the resulting provider has
// no API key and LINGOZ_LLM_PROVIDER is unset, the standard key variable of
// that provider is tried, then DiscoverConfig. A config that still lacks a
// key is returned as is so Validate can report it.
func Resolve(base Config) Config {
	cfg := base
	ApplyEnv(&cfg)
	if cfg.Validate() == nil || os.Getenv(EnvProvider) != "" {
		return cfg
	}

	if ep, ok := cfg.endpoint(cfg.Provider); ok {
		if key := os.Getenv(standardKey(cfg.Provider)); key != "" {
			*ep.apiKey = key
			return cfg
		}
	}

	if d, ok := DiscoverConfig(); ok {
		d.Retry = cfg.Retry
		d.Timeout = cfg.Timeout
		return d
	}
	return cfg
}

func standardKey(provider string) string {
	for _, p := range knownProviders {
		if p.name == provider {
			return p.standardKey
		}
	}
	return ""
}

// DiscoverConfig returns defaults for the first provider, in
// knownProviders order, whose standard key variable is set.
func DiscoverConfig() (Config, bool) {
	for _, p := range knownProviders {
		key := os.Getenv(p.standardKey)
		if key == "" {
			continue
		}
		cfg := DefaultConfig()
		cfg.Provider = p.name
		ep, _ := cfg.endpoint(p.name)
		*ep.apiKey = key
		return cfg, true
	}
	return Config{}, false
}

// SetModel sets the model of the selected provider.
func (c *Config) SetModel(model string) {
	if ep, ok := c.endpoint(c.Provider); ok {
		*ep.model = model
	}
}

// Model returns the configured model of the selected provider.
func (c Config) Model() string {
	if c.Provider == "mock" {
		return "mock"
	}
	if ep, ok := c.endpoint(c.Provider); ok {
		return *ep.model
	}
	return ""
}

// Validate checks that the selected provider is known and has an API key.
func (c Config) Validate() error {
	if c.Provider == "mock" {
		return nil
	}
	ep, ok := c.endpoint(c.Provider)
	if !ok {
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	if *ep.apiKey == "" {
		return fmt.Errorf("%s is required for the %s provider", envVar(c.Provider, "API_KEY"), c.Provider)
	}
	return nil
}
