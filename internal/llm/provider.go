// Package llm talks to hosted language models on behalf of the coach. Every
// provider returns JSON; when a request carries a Schema the JSON is checked
// against it before it reaches the caller.
package llm

import (
	"context"
	"encoding/json"
)

// Provider generates one completion for a conversation.
type Provider interface {
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID is the resolved model name, e.g. "claude-haiku-4-5-20251001".
	ModelID() string
}

// Named is implemented by providers that can report their vendor name.
type Named interface {
	Name() string
}

// Request is a single generation call. Messages carries the whole coaching
// conversation so far, oldest first.
type Request struct {
	System   string
	Messages []Message

	// Schema, when non-nil, switches the provider into structured output.
	// Without it Content is the raw reply text encoded as a JSON string.
	Schema *Schema

	MaxTokens   int
	Temperature float64
}

// Message is one turn of the conversation.
type Message struct {
	Role    Role
	Content string
}

// Role identifies who authored a Message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema is a JSON Schema the reply must satisfy. Name doubles as the tool or
// response-format name on providers that need one, so keep it kebab-case.
type Schema struct {
	Name        string
	Description string
	Definition  map[string]any
}

// Response is what a provider produced.
type Response struct {
	Content json.RawMessage
	Usage   Usage
	Model   string

	// StopReason is one of "end", "max_tokens" or "error".
	StopReason string
}

// Usage is the token accounting for one call.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// providerName reports p's vendor, falling back to its model id.
func providerName(p Provider) string {
	if n, ok := p.(Named); ok {
		return n.Name()
	}
	return p.ModelID()
}

// finish turns vendor output into a Response. Truncated replies fail with
// ErrMaxTokensExceeded; schema replies are validated; plain text is encoded
// as a JSON string.
func finish(req Request, text, stop, model string, usage Usage) (*Response, error) {
	var content json.RawMessage
	if req.Schema != nil {
		content = json.RawMessage(text)
	} else {
		content, _ = json.Marshal(text)
	}
	if stop == "max_tokens" {
		return nil, &ErrMaxTokensExceeded{Content: content}
	}
	if err := validateResponse(req.Schema, content); err != nil {
		return nil, err
	}
	return &Response{Content: content, Usage: usage, Model: model, StopReason: stop}, nil
}
