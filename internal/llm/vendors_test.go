package llm

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/anthropics/anthropic-sdk-go/option"
	"google.golang.org/genai"
)

const coachJSON = `{"reply":"Nice rhythm! Try stressing the second syllable.","guidance":"Stress patterns"}`

func coachSchema() *Schema {
	return &Schema{
		Name: "coach-reply",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"reply":    map[string]any{"type": "string"},
				"guidance": map[string]any{"type": "string"},
			},
			"required": []any{"reply"},
		},
	}
}

func anthropicServer(t *testing.T, status int, body map[string]any) *AnthropicProvider {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(body)
	}))
	t.Cleanup(srv.Close)

	p, err := NewAnthropicProvider(AnthropicConfig{APIKey: "test-key", Model: "claude-haiku"},
		option.WithBaseURL(srv.URL), option.WithMaxRetries(0))
	if err != nil {
		t.Fatal(err)
	}
	return p
}

func anthropicMessage(text, stop string) map[string]any {
	return map[string]any{
		"id":          "msg_1",
		"type":        "message",
		"role":        "assistant",
		"content":     []map[string]any{{"type": "text", "text": text}},
		"model":       "claude-haiku-4-5-20251001",
		"stop_reason": stop,
		"usage":       map[string]any{"input_tokens": 120, "output_tokens": 40},
	}
}

func TestAnthropicStructuredReply(t *testing.T) {
	p := anthropicServer(t, http.StatusOK, anthropicMessage(coachJSON, "end_turn"))
	resp, err := p.Generate(context.Background(), Request{
		System:    "You are a pronunciation coach.",
		Messages:  []Message{{Role: RoleUser, Content: "How do I say 'photograph'?"}},
		Schema:    coachSchema(),
		MaxTokens: 512,
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if string(resp.Content) != coachJSON {
		t.Errorf("content = %s", resp.Content)
	}
	if resp.Usage.InputTokens != 120 || resp.Usage.TotalTokens != 160 {
		t.Errorf("usage = %+v", resp.Usage)
	}
	if resp.StopReason != "end" {
		t.Errorf("stop = %q, want end", resp.StopReason)
	}
}

func TestAnthropicPlainTextIsJSONString(t *testing.T) {
	p := anthropicServer(t, http.StatusOK, anthropicMessage("ok", "end_turn"))
	resp, err := p.Generate(context.Background(), Request{Messages: []Message{{Role: RoleUser, Content: "ping"}}, MaxTokens: 8})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if string(resp.Content) != `"ok"` {
		t.Errorf("content = %s, want \"ok\"", resp.Content)
	}
}

func TestAnthropicTruncatedReply(t *testing.T) {
	p := anthropicServer(t, http.StatusOK, anthropicMessage(`{"reply":"Nice`, "max_tokens"))
	_, err := p.Generate(context.Background(), Request{Messages: []Message{{Role: RoleUser, Content: "hi"}}, Schema: coachSchema(), MaxTokens: 4})
	var trunc *ErrMaxTokensExceeded
	if !errors.As(err, &trunc) {
		t.Fatalf("err = %v, want ErrMaxTokensExceeded", err)
	}
}

func TestAnthropicErrorMapping(t *testing.T) {
	tests := []struct {
		status int
		check  func(error) bool
	}{
		{http.StatusTooManyRequests, func(err error) bool { var e *ErrRateLimit; return errors.As(err, &e) }},
		{http.StatusInternalServerError, func(err error) bool { var e *ErrProviderUnavailable; return errors.As(err, &e) }},
	}
	for _, tt := range tests {
		p := anthropicServer(t, tt.status, map[string]any{
			"type":  "error",
			"error": map[string]any{"type": "api_error", "message": "nope"},
		})
		_, err := p.Generate(context.Background(), Request{Messages: []Message{{Role: RoleUser, Content: "hi"}}, MaxTokens: 8})
		if !tt.check(err) {
			t.Errorf("status %d: err = %T %v", tt.status, err, err)
		}
	}
}

type capturedChat struct {
	body struct {
		Messages []struct {
			Role string `json:"role"`
		} `json:"messages"`
		ResponseFormat *struct {
			JSONSchema struct {
				Name string `json:"name"`
			} `json:"json_schema"`
		} `json:"response_format"`
	}
}

func openAIServer(t *testing.T, status int, reply, finish string, got *capturedChat) *OpenAIProvider {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got != nil {
			raw, _ := io.ReadAll(r.Body)
			_ = json.Unmarshal(raw, &got.body)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		if status != http.StatusOK {
			_ = json.NewEncoder(w).Encode(map[string]any{"error": map[string]any{"message": "nope", "type": "server_error"}})
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":    "chatcmpl-1",
			"model": "gpt-4o-mini",
			"choices": []map[string]any{{
				"index":         0,
				"message":       map[string]any{"role": "assistant", "content": reply},
				"finish_reason": finish,
			}},
			"usage": map[string]any{"prompt_tokens": 30, "completion_tokens": 12, "total_tokens": 42},
		})
	}))
	t.Cleanup(srv.Close)

	p, err := NewOpenAIProvider(OpenAIConfig{APIKey: "test-key", Model: "gpt-4o-mini", BaseURL: srv.URL + "/v1"})
	if err != nil {
		t.Fatal(err)
	}
	return p
}

func TestOpenAISendsConversationAndSchema(t *testing.T) {
	var got capturedChat
	p := openAIServer(t, http.StatusOK, coachJSON, "stop", &got)

	resp, err := p.Generate(context.Background(), Request{
		System: "coach",
		Messages: []Message{
			{Role: RoleUser, Content: "hello"},
			{Role: RoleAssistant, Content: "hi there"},
			{Role: RoleUser, Content: "again"},
		},
		Schema:    coachSchema(),
		MaxTokens: 256,
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if resp.Usage.TotalTokens != 42 || resp.Model != "gpt-4o-mini" {
		t.Errorf("resp = %+v", resp)
	}

	roles := make([]string, len(got.body.Messages))
	for i, m := range got.body.Messages {
		roles[i] = m.Role
	}
	if strings.Join(roles, ",") != "system,user,assistant,user" {
		t.Errorf("roles = %v", roles)
	}
	if got.body.ResponseFormat == nil || got.body.ResponseFormat.JSONSchema.Name != "coach-reply" {
		t.Errorf("response format = %+v", got.body.ResponseFormat)
	}
}

func TestOpenAISchemaMismatch(t *testing.T) {
	p := openAIServer(t, http.StatusOK, `{"guidance":"no reply field"}`, "stop", nil)
	_, err := p.Generate(context.Background(), Request{Messages: []Message{{Role: RoleUser, Content: "x"}}, Schema: coachSchema()})
	var invalid *ErrInvalidResponse
	if !errors.As(err, &invalid) {
		t.Fatalf("err = %v, want ErrInvalidResponse", err)
	}
}

func TestOpenAIStatusMapping(t *testing.T) {
	p := openAIServer(t, http.StatusTooManyRequests, "", "", nil)
	_, err := p.Generate(context.Background(), Request{Messages: []Message{{Role: RoleUser, Content: "x"}}})
	var rl *ErrRateLimit
	if !errors.As(err, &rl) {
		t.Errorf("429: err = %T %v", err, err)
	}

	p = openAIServer(t, http.StatusBadGateway, "", "", nil)
	_, err = p.Generate(context.Background(), Request{Messages: []Message{{Role: RoleUser, Content: "x"}}})
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Errorf("502: err = %T %v", err, err)
	}
}

func TestOpenRouterDefaults(t *testing.T) {
	if _, err := NewOpenRouterProvider(OpenRouterConfig{Model: "x"}); err == nil {
		t.Error("expected error without api key")
	}
	p, err := NewOpenRouterProvider(OpenRouterConfig{APIKey: "sk-or", Model: "anthropic/claude-3-haiku"})
	if err != nil {
		t.Fatal(err)
	}
	if p.ModelID() != "anthropic/claude-3-haiku" {
		t.Errorf("model = %q", p.ModelID())
	}
	if p.Name() != ProviderOpenRouter {
		t.Errorf("name = %q", p.Name())
	}
}

func TestResolveModel(t *testing.T) {
	tests := []struct {
		table map[string]string
		in    string
		want  string
	}{
		{anthropicModels, "claude-haiku", "claude-haiku-4-5-20251001"},
		{anthropicModels, "claude-sonnet", "claude-sonnet-4-20250514"},
		{openaiModels, "gpt-4o", "gpt-4o"},
		{geminiModels, "gemini-flash", "gemini-2.0-flash"},
		{geminiModels, "gemini-2.5-pro", "gemini-2.5-pro"},
	}
	for _, tt := range tests {
		if got := resolveModel(tt.in, tt.table); got != tt.want {
			t.Errorf("resolveModel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestBuildGeminiSchema(t *testing.T) {
	def := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"reply":             map[string]any{"type": "string"},
			"vocab_suggestions": map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
			"prosody_feedback": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"pronunciation": map[string]any{"type": "number"},
				},
			},
		},
		"required": []any{"reply"},
	}

	s := buildGeminiSchema(def)
	if s.Type != genai.TypeObject || len(s.Properties) != 3 {
		t.Fatalf("schema = %+v", s)
	}
	if s.Properties["vocab_suggestions"].Items.Type != genai.TypeString {
		t.Errorf("items type = %s", s.Properties["vocab_suggestions"].Items.Type)
	}
	if s.Properties["prosody_feedback"].Properties["pronunciation"].Type != genai.TypeNumber {
		t.Error("nested number lost")
	}
	if len(s.Required) != 1 || s.Required[0] != "reply" {
		t.Errorf("required = %v", s.Required)
	}
}
