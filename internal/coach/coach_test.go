package coach

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/vibetune/internal/config"
	"github.com/abhisek/vibetune/internal/llm"
	"github.com/abhisek/vibetune/internal/model"
)

func textTurn(s string) Turn {
	return Turn{
		Conversation: model.Conversation{ID: "c-1"},
		Input:        model.Message{Sender: model.SenderUser, Type: model.MessageText, Content: s},
	}
}

func audioTurn() Turn {
	return Turn{
		Conversation: model.Conversation{ID: "c-1"},
		Input: model.Message{
			Sender:   model.SenderUser,
			Type:     model.MessageAudio,
			Content:  "[Audio message - analyzing pronunciation...]",
			AudioURL: "placeholder_audio_url",
		},
	}
}

func TestStubTextReply(t *testing.T) {
	msg, err := NewStub(0, 0).Respond(context.Background(), textTurn("hello"))
	require.NoError(t, err)
	assert.Equal(t, model.SenderAI, msg.Sender)
	assert.Equal(t, TextReply, msg.Content)
	assert.Nil(t, msg.Feedback)
	assert.Empty(t, msg.VocabSuggestions)
}

func TestStubAudioReply(t *testing.T) {
	msg, err := NewStub(0, 0).Respond(context.Background(), audioTurn())
	require.NoError(t, err)
	assert.Equal(t, AudioReply, msg.Content)
	require.NotNil(t, msg.Feedback)
	assert.Equal(t, model.ProsodyFeedback{Rhythm: 8.5, Intonation: 7.2, Stress: 6.8}, *msg.Feedback)
	assert.Equal(t, "Focus on word stress patterns in multi-syllable words", msg.Guidance)
	assert.Equal(t, []string{"emphasize", "rhythm", "intonation"}, msg.VocabSuggestions)

	msg.VocabSuggestions[0] = "changed"
	assert.Equal(t, "emphasize", AudioVocab[0], "reply must not alias the shared slice")
}

func TestStubUsesDelayPerType(t *testing.T) {
	s := NewStub(time.Hour, 20*time.Millisecond)

	start := time.Now()
	_, err := s.Respond(context.Background(), audioTurn())
	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err = s.Respond(ctx, textTurn("waits an hour"))
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestLLMReplyMapping(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{
		"reply": " Nice work on the question! ",
		"guidance": "Let your pitch rise at the end",
		"vocab_suggestions": ["party", " ", "coming"],
		"prosody_feedback": {"rhythm": 7, "intonation": 6.5, "stress": 8}
	}`)})
	c := NewLLM(mock, time.Second, nil)

	turn := audioTurn()
	turn.Level = model.LevelIntermediate
	msg, err := c.Respond(context.Background(), turn)
	require.NoError(t, err)

	assert.Equal(t, "Nice work on the question!", msg.Content)
	assert.Equal(t, "Let your pitch rise at the end", msg.Guidance)
	assert.Equal(t, []string{"party", "coming"}, msg.VocabSuggestions)
	require.NotNil(t, msg.Feedback)
	assert.Equal(t, 6.5, msg.Feedback.Intonation)

	calls := mock.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, "coach-reply", calls[0].Schema.Name)
	assert.Contains(t, calls[0].System, "Intermediate")
	assert.Contains(t, calls[0].Messages[0].Content, "voice recording")
}

func TestLLMTextReplyHasNoScores(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(
		`{"reply":"Hi!","guidance":"","vocab_suggestions":[],"prosody_feedback":{"rhythm":0,"intonation":0,"stress":0}}`)})
	msg, err := NewLLM(mock, 0, nil).Respond(context.Background(), textTurn("hi"))
	require.NoError(t, err)
	assert.Nil(t, msg.Feedback)
	assert.Empty(t, msg.VocabSuggestions)
}

func TestLLMHistoryRoles(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(
		`{"reply":"ok","guidance":"","vocab_suggestions":[],"prosody_feedback":{"rhythm":0,"intonation":0,"stress":0}}`)})
	turn := textTurn("third")
	turn.History = []model.Message{
		{Sender: model.SenderAI, Content: "welcome"},
		{Sender: model.SenderUser, Content: "first"},
		{Sender: model.SenderUser, Content: "second"},
		{Sender: model.SenderAI, Content: "answer"},
	}
	_, err := NewLLM(mock, 0, nil).Respond(context.Background(), turn)
	require.NoError(t, err)

	got := mock.Calls()[0].Messages
	require.Len(t, got, 3)
	assert.Equal(t, llm.RoleUser, got[0].Role)
	assert.Equal(t, "first\n\nsecond", got[0].Content)
	assert.Equal(t, llm.RoleAssistant, got[1].Role)
	assert.Equal(t, "third", got[2].Content)
}

func TestLLMErrorsAreClassified(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{Err: errors.New("503")}})
	_, err := NewLLM(mock, 0, nil).Respond(context.Background(), textTurn("hi"))
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrNetwork)
	assert.True(t, model.IsRetryable(err))
}

func TestNew(t *testing.T) {
	cfg := config.Default()

	r, err := New(cfg.Coach, cfg.LLM, nil, nil)
	require.NoError(t, err)
	assert.IsType(t, &Stub{}, r)

	cfg.Coach.Kind = config.CoachLLM
	_, err = New(cfg.Coach, cfg.LLM, nil, nil)
	assert.Error(t, err)

	r, err = New(cfg.Coach, cfg.LLM, llm.NewMockProvider(), nil)
	require.NoError(t, err)
	assert.IsType(t, &LLM{}, r)

	cfg.Coach.Kind = "oracle"
	_, err = New(cfg.Coach, cfg.LLM, nil, nil)
	assert.True(t, err != nil && strings.Contains(err.Error(), "oracle"))
}
