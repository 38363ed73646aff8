package chat

import (
	"context"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/vibetune/internal/model"
	"github.com/abhisek/vibetune/internal/state"
)

// fakeController records calls and writes to the store the way the real
// controller does, synchronously.
type fakeController struct {
	st      *state.Store
	sent    []string
	retried []string
	started int
	closed  int
	busy    bool
}

func (f *fakeController) Start(context.Context) error {
	f.started++
	f.st.SetCurrentConversation(&model.Conversation{ID: "c-1"})
	f.st.AddMessage(model.Message{ID: "w", ConversationID: "c-1", Sender: model.SenderAI, Content: "Hello ana!"})
	return nil
}

func (f *fakeController) SendText(text string) error {
	if strings.TrimSpace(text) == "" {
		return model.Validationf("send message", "message is empty")
	}
	f.sent = append(f.sent, text)
	f.st.AddMessage(model.Message{ID: "m-" + text, ConversationID: "c-1", Sender: model.SenderUser, Content: text, Version: 1})
	return nil
}

func (f *fakeController) StartRecording() { f.st.SetRecording(true) }

func (f *fakeController) StopRecording() error {
	f.st.SetRecording(false)
	f.st.AddMessage(model.Message{ID: "a-1", ConversationID: "c-1", Sender: model.SenderUser, Type: model.MessageAudio, Content: "[Audio]", Version: 1})
	return nil
}

func (f *fakeController) Retry(id string) error {
	f.retried = append(f.retried, id)
	return nil
}

func (f *fakeController) Busy() bool { return f.busy }
func (f *fakeController) Close()     { f.closed++ }

func newScreen(t *testing.T) (*ChatScreen, *fakeController, *state.Store) {
	t.Helper()
	st := state.New()
	st.SetUser(&model.Profile{ID: "u-1", Username: "ana"})
	fc := &fakeController{st: st}
	s := New(fc, st)
	s.Update(startedMsg{err: fc.Start(context.Background())})
	return s, fc, st
}

func typeText(s *ChatScreen, text string) {
	for _, r := range text {
		s.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	}
}

func TestSendClearsInput(t *testing.T) {
	s, fc, _ := newScreen(t)
	s.input.Focus()

	typeText(s, "hi coach")
	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	assert.Equal(t, []string{"hi coach"}, fc.sent)
	assert.Empty(t, s.input.Value())
	assert.Contains(t, s.View(100, 30), "hi coach")
}

func TestEmptySendShowsHint(t *testing.T) {
	s, fc, _ := newScreen(t)
	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	assert.Empty(t, fc.sent)
	assert.Equal(t, "message is empty", s.hint)
}

func TestRecordingToggle(t *testing.T) {
	s, _, st := newScreen(t)
	ctrlR := tea.KeyPressMsg{Code: 'r', Mod: tea.ModCtrl}

	s.Update(ctrlR)
	require.True(t, st.Snapshot().Recording)
	assert.Contains(t, s.View(100, 30), "Recording...")

	s.Update(ctrlR)
	assert.False(t, st.Snapshot().Recording)
	msgs := st.Snapshot().Messages
	assert.Equal(t, model.MessageAudio, msgs[len(msgs)-1].Type)
}

func TestRetryTargetsLastUserMessage(t *testing.T) {
	s, fc, _ := newScreen(t)
	ctrlT := tea.KeyPressMsg{Code: 't', Mod: tea.ModCtrl}

	s.Update(ctrlT)
	assert.Empty(t, fc.retried)
	assert.Equal(t, "Nothing to retry yet", s.hint)

	s.input.Focus()
	typeText(s, "one")
	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	typeText(s, "two")
	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	s.Update(ctrlT)
	assert.Equal(t, []string{"m-two"}, fc.retried)
}

func TestFeedbackRendered(t *testing.T) {
	s, _, st := newScreen(t)
	st.AddMessage(model.Message{
		ID: "r", ConversationID: "c-1", Sender: model.SenderAI, Content: "Nice work",
		Feedback:         &model.ProsodyFeedback{Rhythm: 8.5, Intonation: 7.2, Stress: 6.8},
		Guidance:         "Focus on word stress",
		VocabSuggestions: []string{"emphasize", "rhythm"},
	})

	v := s.View(100, 30)
	assert.Contains(t, v, "Rhythm 8.5")
	assert.Contains(t, v, "Stress 6.8")
	assert.Contains(t, v, "emphasize, rhythm")
}

func TestBusyShowsSpinnerText(t *testing.T) {
	s, fc, _ := newScreen(t)
	fc.busy = true
	assert.Contains(t, s.View(100, 30), "Coach is thinking...")
}

func TestScrollClamps(t *testing.T) {
	s, _, _ := newScreen(t)
	for i := 0; i < 10; i++ {
		s.Update(tea.KeyPressMsg{Code: tea.KeyPgUp})
	}
	s.View(100, 30)
	assert.LessOrEqual(t, s.scroll, 50)
	for i := 0; i < 20; i++ {
		s.Update(tea.KeyPressMsg{Code: tea.KeyPgDown})
	}
	assert.Equal(t, 0, s.scroll)
}

func TestCloseStopsControllerAndRecording(t *testing.T) {
	s, fc, st := newScreen(t)
	st.SetRecording(true)
	s.Close()

	assert.Equal(t, 1, fc.closed)
	assert.False(t, st.Snapshot().Recording)
}
