package llm

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/abhisek/vibetune/internal/config"
	"github.com/abhisek/vibetune/internal/model"
	"github.com/abhisek/vibetune/internal/store"
)

type memRecorder struct {
	mu   sync.Mutex
	rows []store.LLMRequestEventData
	err  error
}

func (m *memRecorder) AppendLLMRequest(_ context.Context, d store.LLMRequestEventData) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rows = append(m.rows, d)
	return m.err
}

func TestMockReplaysScript(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{"reply":"one"}`), Usage: Usage{InputTokens: 3}},
		MockResponse{Err: &ErrRateLimit{}},
	)
	mock.AddResponse(MockResponse{Content: json.RawMessage(`{"reply":"three"}`)})

	resp, err := mock.Generate(context.Background(), Request{System: "s1"})
	if err != nil || string(resp.Content) != `{"reply":"one"}` || resp.Usage.InputTokens != 3 {
		t.Fatalf("first = %+v, %v", resp, err)
	}
	var rl *ErrRateLimit
	if _, err := mock.Generate(context.Background(), Request{}); !errors.As(err, &rl) {
		t.Fatalf("second err = %v", err)
	}
	if resp, _ := mock.Generate(context.Background(), Request{}); string(resp.Content) != `{"reply":"three"}` {
		t.Fatalf("third = %s", resp.Content)
	}
	var unavail *ErrProviderUnavailable
	if _, err := mock.Generate(context.Background(), Request{}); !errors.As(err, &unavail) {
		t.Fatalf("empty script err = %v", err)
	}
	if calls := mock.Calls(); len(calls) != 4 || calls[0].System != "s1" {
		t.Errorf("calls = %+v", calls)
	}
}

func TestPurpose(t *testing.T) {
	if got := PurposeFrom(context.Background()); got != "unknown" {
		t.Errorf("default purpose = %q", got)
	}
	if got := PurposeFrom(WithPurpose(context.Background(), PurposeCoachReply)); got != PurposeCoachReply {
		t.Errorf("purpose = %q", got)
	}
}

func TestLoggingRecordsEveryAttempt(t *testing.T) {
	rec := &memRecorder{}
	mock := NewMockProvider(
		MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("503")}},
		MockResponse{Content: json.RawMessage(`{"reply":"hi"}`), Usage: Usage{InputTokens: 10, OutputTokens: 4}},
	)
	p := WithRetry(WithLogging(mock, rec, nil), fastRetry())

	ctx := WithPurpose(context.Background(), PurposeCoachReply)
	_, err := p.Generate(ctx, Request{
		System:   "coach",
		Messages: []Message{{Role: RoleUser, Content: "hello"}},
		Schema:   coachSchema(),
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if len(rec.rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(rec.rows))
	}
	first, second := rec.rows[0], rec.rows[1]
	if first.Success || !strings.Contains(first.ErrorMessage, "503") {
		t.Errorf("first row = %+v", first)
	}
	if !second.Success || second.InputTokens != 10 || second.ResponseBody != `{"reply":"hi"}` {
		t.Errorf("second row = %+v", second)
	}
	if second.Provider != ProviderMock || second.Purpose != PurposeCoachReply {
		t.Errorf("attribution = %q/%q", second.Provider, second.Purpose)
	}
	for _, want := range []string{"[system]\ncoach", "[user]\nhello", "[schema: coach-reply]"} {
		if !strings.Contains(second.RequestBody, want) {
			t.Errorf("request body missing %q:\n%s", want, second.RequestBody)
		}
	}
}

func TestLoggingFailureDoesNotFailCall(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	rec := &memRecorder{err: errors.New("disk full")}
	p := WithLogging(NewMockProvider(okReply), rec, zap.New(core))

	if _, err := p.Generate(context.Background(), Request{}); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if logs.FilterMessage("record llm request").Len() != 1 {
		t.Errorf("logs = %v", logs.All())
	}
}

func TestLoggingWithStore(t *testing.T) {
	st, err := store.Open("file:llm_logging?mode=memory&cache=shared")
	if err != nil {
		t.Fatal(err)
	}
	defer st.Close()

	p := WithLogging(NewMockProvider(okReply), st.EventRepo(), nil)
	if _, err := p.Generate(WithPurpose(context.Background(), PurposeCoachReply), Request{}); err != nil {
		t.Fatal(err)
	}
	rows, err := st.EventRepo().QueryLLMEvents(context.Background(), store.QueryOpts{Limit: 10})
	if err != nil || len(rows) != 1 || rows[0].Purpose != PurposeCoachReply {
		t.Fatalf("rows = %+v, %v", rows, err)
	}
}

func TestFromConfig(t *testing.T) {
	c := config.Default().LLM
	c.Provider = ProviderGemini
	c.GeminiAPIKey = "g-key"
	c.MaxAttempts = 5
	c.Timeout = 12 * time.Second

	got := FromConfig(c)
	if got.Provider != ProviderGemini || got.Gemini.APIKey != "g-key" || got.Gemini.Model != c.GeminiModel {
		t.Errorf("gemini = %+v", got.Gemini)
	}
	if got.Retry.MaxAttempts != 5 || got.Retry.InitialWait != time.Second {
		t.Errorf("retry = %+v", got.Retry)
	}
	if got.Timeout != 12*time.Second {
		t.Errorf("timeout = %v", got.Timeout)
	}

	c.MaxAttempts = 0
	if FromConfig(c).Retry.MaxAttempts != DefaultRetry().MaxAttempts {
		t.Error("zero max attempts should keep the default")
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"anthropic missing key", Config{Provider: ProviderAnthropic}, true},
		{"anthropic", Config{Provider: ProviderAnthropic, Anthropic: AnthropicConfig{APIKey: "k"}}, false},
		{"openai missing key", Config{Provider: ProviderOpenAI}, true},
		{"gemini", Config{Provider: ProviderGemini, Gemini: GeminiConfig{APIKey: "k"}}, false},
		{"openrouter missing key", Config{Provider: ProviderOpenRouter}, true},
		{"mock", Config{Provider: ProviderMock}, false},
		{"unknown", Config{Provider: "llama"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.cfg.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestNewProviderWrapsVendors(t *testing.T) {
	p, err := NewProvider(context.Background(), Config{
		Provider: ProviderOpenRouter,
		OpenRouter: OpenRouterConfig{APIKey: "k", Model: "google/gemini-2.0-flash-exp"},
		Retry:    fastRetry(),
	}, &memRecorder{}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := p.(*RetryProvider); !ok {
		t.Errorf("provider = %T, want *RetryProvider", p)
	}
	if providerName(p) != ProviderOpenRouter {
		t.Errorf("name = %q", providerName(p))
	}

	if _, err := NewProvider(context.Background(), Config{Provider: ProviderOpenAI}, nil, nil); err == nil {
		t.Error("expected missing key error")
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		err  error
		want model.Kind
	}{
		{&ErrRateLimit{}, model.KindNetwork},
		{&ErrProviderUnavailable{}, model.KindNetwork},
		{context.DeadlineExceeded, model.KindNetwork},
		{&ErrInvalidResponse{Err: errors.New("x")}, model.KindValidation},
		{&ErrMaxTokensExceeded{}, model.KindValidation},
		{errors.New("?"), model.KindUnknown},
	}
	for _, tt := range tests {
		if got := model.KindOf(Classify("coach reply", tt.err)); got != tt.want {
			t.Errorf("Classify(%T) = %v, want %v", tt.err, got, tt.want)
		}
	}
	if Classify("x", nil) != nil {
		t.Error("nil error should stay nil")
	}
}

func TestPriceFor(t *testing.T) {
	p, ok := PriceFor("claude-haiku-4-5-20251001")
	if !ok || p.Cost(1_000_000, 200_000) != 2 {
		t.Errorf("haiku price = %+v, %v", p, ok)
	}
	if _, ok := PriceFor("google/gemini-2.0-flash-exp"); !ok {
		t.Error("openrouter id not matched")
	}
	if _, ok := PriceFor("mock"); ok {
		t.Error("mock should have no price")
	}
}
