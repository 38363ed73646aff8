package coach

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/abhisek/vibetune/internal/llm"
	"github.com/abhisek/vibetune/internal/model"
)

const replyMaxTokens = 1024

// recordingPlaceholder stands in for audio the model cannot hear.
const recordingPlaceholder = "(The learner sent a voice recording. Give pronunciation feedback on " +
	"rhythm, intonation and word stress as if you had heard a typical attempt at their level.)"

var replySchema = &llm.Schema{
	Name:        "coach-reply",
	Description: "A pronunciation coach's reply to the learner",
	Definition: map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"reply": map[string]any{
				"type":        "string",
				"description": "What the coach says, two to four sentences",
				"minLength":   1,
			},
			"guidance": map[string]any{
				"type":        "string",
				"description": "One focused tip, or empty",
			},
			"vocab_suggestions": map[string]any{
				"type":        "array",
				"description": "Up to five words worth practising",
				"items":       map[string]any{"type": "string"},
			},
			"prosody_feedback": map[string]any{
				"type":                 "object",
				"description":          "Scores from 0 to 10; all zero for typed messages",
				"additionalProperties": false,
				"properties": map[string]any{
					"rhythm":     map[string]any{"type": "number", "minimum": 0, "maximum": 10},
					"intonation": map[string]any{"type": "number", "minimum": 0, "maximum": 10},
					"stress":     map[string]any{"type": "number", "minimum": 0, "maximum": 10},
				},
				"required": []string{"rhythm", "intonation", "stress"},
			},
		},
		"required": []string{"reply", "guidance", "vocab_suggestions", "prosody_feedback"},
	},
}

type replyOutput struct {
	Reply            string   `json:"reply"`
	Guidance         string   `json:"guidance"`
	VocabSuggestions []string `json:"vocab_suggestions"`
	ProsodyFeedback  struct {
		Rhythm     float64 `json:"rhythm"`
		Intonation float64 `json:"intonation"`
		Stress     float64 `json:"stress"`
	} `json:"prosody_feedback"`
}

// LLM asks a language model for each reply.
type LLM struct {
	provider llm.Provider
	timeout  time.Duration
	logger   *zap.Logger
}

// NewLLM wraps provider. A non-positive timeout leaves the caller's deadline
// alone.
func NewLLM(provider llm.Provider, timeout time.Duration, logger *zap.Logger) *LLM {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LLM{provider: provider, timeout: timeout, logger: logger.Named("coach")}
}

func (c *LLM) Respond(ctx context.Context, turn Turn) (*model.Message, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}
	ctx = llm.WithPurpose(ctx, llm.PurposeCoachReply)

	resp, err := c.provider.Generate(ctx, llm.Request{
		System:      systemPrompt(turn.Level),
		Messages:    buildMessages(turn),
		Schema:      replySchema,
		MaxTokens:   replyMaxTokens,
		Temperature: 0.4,
	})
	if err != nil {
		return nil, llm.Classify("coach reply", err)
	}

	var out replyOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, llm.Classify("coach reply", &llm.ErrInvalidResponse{Content: resp.Content, Err: err})
	}
	c.logger.Debug("reply",
		zap.String("conversation_id", turn.Conversation.ID),
		zap.Int("output_tokens", resp.Usage.OutputTokens),
	)

	msg := &model.Message{
		Sender:           model.SenderAI,
		Type:             model.MessageText,
		Content:          strings.TrimSpace(out.Reply),
		Guidance:         strings.TrimSpace(out.Guidance),
		VocabSuggestions: trimVocab(out.VocabSuggestions),
	}
	if turn.Input.Type == model.MessageAudio {
		msg.Feedback = &model.ProsodyFeedback{
			Rhythm:     out.ProsodyFeedback.Rhythm,
			Intonation: out.ProsodyFeedback.Intonation,
			Stress:     out.ProsodyFeedback.Stress,
		}
	}
	return msg, nil
}

func systemPrompt(level model.Level) string {
	var b strings.Builder
	b.WriteString("You are VibeTune, a friendly English pronunciation coach. ")
	b.WriteString("You help learners improve prosody: rhythm, intonation and word stress. ")
	b.WriteString("Keep replies short and encouraging, and end with a suggestion for what to practise next.")
	if level.Valid() {
		fmt.Fprintf(&b, "\nThe learner's level is %s; pitch vocabulary and examples accordingly.", level.DisplayName())
	}
	return b.String()
}

// buildMessages maps the conversation onto provider roles. Consecutive
// messages from the same side are merged since some vendors reject them.
func buildMessages(turn Turn) []llm.Message {
	all := append(append([]model.Message(nil), turn.History...), turn.Input)
	var out []llm.Message
	for _, m := range all {
		role := llm.RoleUser
		if m.Sender == model.SenderAI {
			role = llm.RoleAssistant
		}
		text := m.Content
		if m.Sender == model.SenderUser && m.Type == model.MessageAudio {
			text = recordingPlaceholder
		}
		if n := len(out); n > 0 && out[n-1].Role == role {
			out[n-1].Content += "\n\n" + text
			continue
		}
		out = append(out, llm.Message{Role: role, Content: text})
	}
	// Vendors expect the conversation to open with the user.
	if len(out) > 0 && out[0].Role == llm.RoleAssistant {
		out = out[1:]
	}
	return out
}

func trimVocab(words []string) []string {
	var out []string
	for _, w := range words {
		if w = strings.TrimSpace(w); w != "" && len(out) < 5 {
			out = append(out, w)
		}
	}
	return out
}
