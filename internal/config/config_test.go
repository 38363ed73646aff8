package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

func clearLLMKeys(t *testing.T) {
	t.Helper()
	for _, k := range []string{"GEMINI_API_KEY", "OPENAI_API_KEY", "ANTHROPIC_API_KEY", "OPENROUTER_API_KEY"} {
		t.Setenv(k, "")
	}
}

func TestLoadDefaultsWhenFileMissing(t *testing.T) {
	clearLLMKeys(t)
	t.Setenv("XDG_STATE_HOME", t.TempDir())

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, BackendLocal, cfg.Backend.Kind)
	assert.Equal(t, CoachStub, cfg.Coach.Kind)
	assert.Equal(t, 1500*time.Millisecond, cfg.Coach.TextDelay)
	assert.Equal(t, 3000*time.Millisecond, cfg.Coach.AudioDelay)
	assert.Equal(t, 15*time.Second, cfg.Sync.PingInterval)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Contains(t, cfg.Log.File, filepath.Join("vibetune", "vibetune.log"))
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	clearLLMKeys(t)
	p := writeConfig(t, `
backend:
  kind: supabase
  supabase_url: https://example.supabase.co
  supabase_anon_key: anon
coach:
  text_delay: 10ms
log:
  level: debug
  file: /tmp/vibetune-test.log
`)

	cfg, err := Load(p)
	require.NoError(t, err)

	assert.Equal(t, BackendSupabase, cfg.Backend.Kind)
	assert.Equal(t, "https://example.supabase.co", cfg.Backend.SupabaseURL)
	assert.Equal(t, 10*time.Millisecond, cfg.Coach.TextDelay)
	// Untouched keys keep their defaults.
	assert.Equal(t, 3000*time.Millisecond, cfg.Coach.AudioDelay)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	clearLLMKeys(t)
	p := writeConfig(t, `
coach:
  kind: stub
log:
  file: /tmp/vibetune-test.log
`)
	t.Setenv("VIBETUNE_COACH_KIND", "llm")
	t.Setenv("VIBETUNE_SYNC_PING_INTERVAL", "5s")
	t.Setenv("VIBETUNE_DB", "/tmp/vibetune-env.db")

	cfg, err := Load(p)
	require.NoError(t, err)

	assert.Equal(t, CoachLLM, cfg.Coach.Kind)
	assert.Equal(t, 5*time.Second, cfg.Sync.PingInterval)
	assert.Equal(t, "/tmp/vibetune-env.db", cfg.DB.Path)
}

func TestLoadRejectsInvalid(t *testing.T) {
	clearLLMKeys(t)
	p := writeConfig(t, `
backend:
  kind: supabase
log:
  file: /tmp/vibetune-test.log
`)
	_, err := Load(p)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "supabase_url")
}

func TestDiscoverLLM(t *testing.T) {
	clearLLMKeys(t)
	t.Setenv("OPENAI_API_KEY", "sk-test")

	c := Default().LLM
	discoverLLM(&c)
	assert.Equal(t, "openai", c.Provider)
	assert.Equal(t, "sk-test", c.OpenAIAPIKey)

	// An explicit key wins over discovery.
	c = Default().LLM
	c.AnthropicAPIKey = "explicit"
	discoverLLM(&c)
	assert.Equal(t, "anthropic", c.Provider)
	assert.Empty(t, c.OpenAIAPIKey)
}

func TestEnvKey(t *testing.T) {
	tests := map[string]string{
		"VIBETUNE_BACKEND_SUPABASE_URL": "backend.supabase_url",
		"VIBETUNE_LOG_LEVEL":            "log.level",
		"VIBETUNE_DB":                   "db.path",
	}
	for in, want := range tests {
		assert.Equal(t, want, envKey(in), in)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"unknown backend", func(c *Config) { c.Backend.Kind = "firebase" }, true},
		{"unknown coach", func(c *Config) { c.Coach.Kind = "human" }, true},
		{"negative delay", func(c *Config) { c.Coach.TextDelay = -time.Second }, true},
		{"zero ping", func(c *Config) { c.Sync.PingInterval = 0 }, true},
		{"retry max below initial", func(c *Config) { c.Sync.RetryMax = time.Millisecond }, true},
		{"bad log level", func(c *Config) { c.Log.Level = "trace" }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.mutate(&c)
			err := c.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
