// Package config loads VibeTune's configuration.
package config

import (
	"fmt"
	"time"
)

// Backend kinds.
const (
	BackendLocal    = "local"
	BackendSupabase = "supabase"
)

// Coach kinds.
const (
	CoachStub = "stub"
	CoachLLM  = "llm"
)

// Config is the full application configuration.
type Config struct {
	DB      DBConfig      `koanf:"db"`
	Backend BackendConfig `koanf:"backend"`
	Coach   CoachConfig   `koanf:"coach"`
	LLM     LLMConfig     `koanf:"llm"`
	Sync    SyncConfig    `koanf:"sync"`
	Log     LogConfig     `koanf:"log"`
}

// DBConfig locates the local SQLite database.
type DBConfig struct {
	Path string `koanf:"path"`
}

// BackendConfig selects and configures the profile/conversation backend.
type BackendConfig struct {
	Kind            string        `koanf:"kind"`
	SupabaseURL     string        `koanf:"supabase_url"`
	SupabaseAnonKey string        `koanf:"supabase_anon_key"`
	Timeout         time.Duration `koanf:"timeout"`
	DeviceID        string        `koanf:"device_id"`
}

// CoachConfig selects the chat responder and its simulated latencies.
type CoachConfig struct {
	Kind          string        `koanf:"kind"`
	TextDelay     time.Duration `koanf:"text_delay"`
	AudioDelay    time.Duration `koanf:"audio_delay"`
	AnalysisDelay time.Duration `koanf:"analysis_delay"`
}

// LLMConfig configures the LLM-backed coach.
type LLMConfig struct {
	Provider         string        `koanf:"provider"`
	AnthropicAPIKey  string        `koanf:"anthropic_api_key"`
	AnthropicModel   string        `koanf:"anthropic_model"`
	OpenAIAPIKey     string        `koanf:"openai_api_key"`
	OpenAIModel      string        `koanf:"openai_model"`
	OpenAIBaseURL    string        `koanf:"openai_base_url"`
	GeminiAPIKey     string        `koanf:"gemini_api_key"`
	GeminiModel      string        `koanf:"gemini_model"`
	OpenRouterAPIKey string        `koanf:"openrouter_api_key"`
	OpenRouterModel  string        `koanf:"openrouter_model"`
	Timeout          time.Duration `koanf:"timeout"`
	MaxAttempts      int           `koanf:"max_attempts"`
}

// SyncConfig tunes connectivity checks and retry-queue draining.
type SyncConfig struct {
	PingInterval time.Duration `koanf:"ping_interval"`
	RetryInitial time.Duration `koanf:"retry_initial"`
	RetryMax     time.Duration `koanf:"retry_max"`
	// RetryRate caps resend attempts per second.
	RetryRate float64 `koanf:"retry_rate"`
}

// LogConfig configures the log file.
type LogConfig struct {
	Level string `koanf:"level"`
	File  string `koanf:"file"`
}

// Default returns the configuration used when nothing is overridden.
func Default() Config {
	return Config{
		Backend: BackendConfig{
			Kind:    BackendLocal,
			Timeout: 10 * time.Second,
		},
		Coach: CoachConfig{
			Kind:          CoachStub,
			TextDelay:     1500 * time.Millisecond,
			AudioDelay:    3000 * time.Millisecond,
			AnalysisDelay: 3000 * time.Millisecond,
		},
		LLM: LLMConfig{
			Provider:        "anthropic",
			AnthropicModel:  "claude-haiku",
			OpenAIModel:     "gpt-4o-mini",
			GeminiModel:     "gemini-flash",
			OpenRouterModel: "google/gemini-2.0-flash-exp",
			Timeout:         30 * time.Second,
			MaxAttempts:     3,
		},
		Sync: SyncConfig{
			PingInterval: 15 * time.Second,
			RetryInitial: 2 * time.Second,
			RetryMax:     2 * time.Minute,
			RetryRate:    2,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Validate checks cross-field requirements.
func (c Config) Validate() error {
	switch c.Backend.Kind {
	case BackendLocal:
	case BackendSupabase:
		if c.Backend.SupabaseURL == "" {
			return fmt.Errorf("backend.supabase_url is required for the supabase backend")
		}
		if c.Backend.SupabaseAnonKey == "" {
			return fmt.Errorf("backend.supabase_anon_key is required for the supabase backend")
		}
	default:
		return fmt.Errorf("unknown backend kind: %q", c.Backend.Kind)
	}

	switch c.Coach.Kind {
	case CoachStub, CoachLLM:
	default:
		return fmt.Errorf("unknown coach kind: %q", c.Coach.Kind)
	}

	if c.Coach.TextDelay < 0 || c.Coach.AudioDelay < 0 || c.Coach.AnalysisDelay < 0 {
		return fmt.Errorf("coach delays must not be negative")
	}
	if c.Sync.PingInterval <= 0 {
		return fmt.Errorf("sync.ping_interval must be positive")
	}
	if c.Sync.RetryInitial <= 0 || c.Sync.RetryMax < c.Sync.RetryInitial {
		return fmt.Errorf("sync.retry_initial must be positive and not exceed sync.retry_max")
	}
	if c.Sync.RetryRate <= 0 {
		return fmt.Errorf("sync.retry_rate must be positive")
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level: %q", c.Log.Level)
	}
	return nil
}
