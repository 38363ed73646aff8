package llm

import (
	"fmt"
	"time"

	"github.com/abhisek/vibetune/internal/config"
)

// Provider names accepted in llm.provider.
const (
	ProviderAnthropic  = "anthropic"
	ProviderOpenAI     = "openai"
	ProviderGemini     = "gemini"
	ProviderOpenRouter = "openrouter"
	ProviderMock       = "mock"
)

// Config is the resolved provider selection.
type Config struct {
	Provider string

	Anthropic  AnthropicConfig
	OpenAI     OpenAIConfig
	Gemini     GeminiConfig
	OpenRouter OpenRouterConfig
	Retry      RetryConfig

	// Timeout bounds one Generate call including retries.
	Timeout time.Duration
}

type AnthropicConfig struct {
	APIKey string
	Model  string
}

type OpenAIConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

type GeminiConfig struct {
	APIKey string
	Model  string
}

type OpenRouterConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

// RetryConfig is the backoff schedule used by WithRetry.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// DefaultRetry is a three-attempt schedule starting at one second.
func DefaultRetry() RetryConfig {
	return RetryConfig{
		MaxAttempts: 3,
		InitialWait: time.Second,
		MaxWait:     10 * time.Second,
		Multiplier:  2,
	}
}

// FromConfig maps the llm section of the application config.
func FromConfig(c config.LLMConfig) Config {
	retry := DefaultRetry()
	if c.MaxAttempts > 0 {
		retry.MaxAttempts = c.MaxAttempts
	}
	return Config{
		Provider:   c.Provider,
		Anthropic:  AnthropicConfig{APIKey: c.AnthropicAPIKey, Model: c.AnthropicModel},
		OpenAI:     OpenAIConfig{APIKey: c.OpenAIAPIKey, Model: c.OpenAIModel, BaseURL: c.OpenAIBaseURL},
		Gemini:     GeminiConfig{APIKey: c.GeminiAPIKey, Model: c.GeminiModel},
		OpenRouter: OpenRouterConfig{APIKey: c.OpenRouterAPIKey, Model: c.OpenRouterModel},
		Retry:      retry,
		Timeout:    c.Timeout,
	}
}

// Validate reports a missing key for the selected provider.
func (c Config) Validate() error {
	var key string
	switch c.Provider {
	case ProviderAnthropic:
		key = c.Anthropic.APIKey
	case ProviderOpenAI:
		key = c.OpenAI.APIKey
	case ProviderGemini:
		key = c.Gemini.APIKey
	case ProviderOpenRouter:
		key = c.OpenRouter.APIKey
	case ProviderMock:
		return nil
	default:
		return fmt.Errorf("unknown llm provider %q", c.Provider)
	}
	if key == "" {
		return fmt.Errorf("llm.%s_api_key is required for the %s provider", c.Provider, c.Provider)
	}
	return nil
}
