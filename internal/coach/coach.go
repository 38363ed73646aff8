// Package coach produces the AI side of a practice conversation.
package coach

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/abhisek/vibetune/internal/config"
	"github.com/abhisek/vibetune/internal/llm"
	"github.com/abhisek/vibetune/internal/model"
)

// Turn is everything a responder sees for one reply.
type Turn struct {
	Conversation model.Conversation
	Level        model.Level
	// History is the conversation before Input, oldest first.
	History []model.Message
	Input   model.Message
}

// Responder answers a learner's message. The returned message carries only
// reply fields (content, feedback, guidance, vocab); the caller assigns ids
// and timestamps.
type Responder interface {
	Respond(ctx context.Context, turn Turn) (*model.Message, error)
}

// New returns the responder selected by cfg.Kind. provider is required for
// the llm kind and ignored otherwise.
func New(cfg config.CoachConfig, llmCfg config.LLMConfig, provider llm.Provider, logger *zap.Logger) (Responder, error) {
	switch cfg.Kind {
	case config.CoachStub, "":
		return NewStub(cfg.TextDelay, cfg.AudioDelay), nil
	case config.CoachLLM:
		if provider == nil {
			return nil, fmt.Errorf("coach kind %q needs an llm provider", cfg.Kind)
		}
		return NewLLM(provider, llmCfg.Timeout, logger), nil
	default:
		return nil, fmt.Errorf("unknown coach kind: %q", cfg.Kind)
	}
}
