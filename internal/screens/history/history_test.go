package history

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/vibetune/internal/model"
	"github.com/abhisek/vibetune/internal/notify"
	"github.com/abhisek/vibetune/internal/router"
	"github.com/abhisek/vibetune/internal/state"
)

type fakeSource struct {
	convs   []model.Conversation
	msgs    map[string][]model.Message
	listErr error
	rated   []model.FeedbackRating
}

func (f *fakeSource) ListConversations(context.Context, string) ([]model.Conversation, error) {
	return f.convs, f.listErr
}

func (f *fakeSource) ListMessages(_ context.Context, id string) ([]model.Message, error) {
	return f.msgs[id], nil
}

func (f *fakeSource) RateMessage(_ context.Context, r model.FeedbackRating) error {
	f.rated = append(f.rated, r)
	return nil
}

type toasts struct{ titles []string }

func (t *toasts) Notify(title, _ string, _ notify.Variant) { t.titles = append(t.titles, title) }

func press(s *HistoryScreen, code rune) tea.Cmd {
	_, cmd := s.Update(tea.KeyPressMsg{Code: code, Text: textOf(code)})
	return cmd
}

func textOf(code rune) string {
	if code >= '0' && code <= '9' {
		return string(code)
	}
	return ""
}

func loaded(t *testing.T, src *fakeSource) (*HistoryScreen, *toasts) {
	t.Helper()
	st := state.New()
	st.SetUser(&model.Profile{ID: "u-1"})
	n := &toasts{}
	s := New(src, st, n, func() string { return "r-1" })
	cmd := s.Init()
	if cmd == nil {
		t.Fatal("expected a load command")
	}
	s.Update(cmd())
	return s, n
}

func sample() *fakeSource {
	day := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)
	return &fakeSource{
		convs: []model.Conversation{
			{ID: "c-2", Topic: model.TopicGeneralPractice, StartedAt: day.Add(24 * time.Hour)},
			{ID: "c-1", Topic: model.TopicPlacementTest, IsPlacementTest: true, StartedAt: day},
		},
		msgs: map[string][]model.Message{
			"c-2": {
				{ID: "m-1", Sender: model.SenderUser, Content: "hello"},
				{ID: "m-2", Sender: model.SenderAI, Content: "Great job!"},
			},
		},
	}
}

func TestListShowsConversations(t *testing.T) {
	s, _ := loaded(t, sample())
	v := s.View(100, 30)
	for _, want := range []string{"General Practice", "Placement Test", "[placement]"} {
		if !strings.Contains(v, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestOpenConversationAndRate(t *testing.T) {
	src := sample()
	s, n := loaded(t, src)

	cmd := press(s, tea.KeyEnter)
	if cmd == nil {
		t.Fatal("enter should load messages")
	}
	s.Update(cmd())
	if !strings.Contains(s.View(100, 30), "Great job!") {
		t.Fatal("detail view should show messages")
	}

	// The cursor starts on the learner's message, which cannot be rated.
	if press(s, '4') != nil {
		t.Error("rating a learner message should be ignored")
	}

	press(s, tea.KeyDown)
	cmd = press(s, '4')
	if cmd == nil {
		t.Fatal("expected a rating command")
	}
	s.Update(cmd())

	if len(src.rated) != 1 || src.rated[0].MessageID != "m-2" || src.rated[0].Rating != 4 || src.rated[0].ProfileID != "u-1" {
		t.Errorf("rated = %+v", src.rated)
	}
	if len(n.titles) != 1 || n.titles[0] != "Thanks for the feedback!" {
		t.Errorf("toasts = %v", n.titles)
	}

	press(s, tea.KeyEscape)
	if s.open != nil {
		t.Error("esc should return to the list")
	}
}

func TestEscOnListPops(t *testing.T) {
	s, _ := loaded(t, sample())
	cmd := press(s, tea.KeyEscape)
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("esc on the list should pop the screen")
	}
}

func TestLoadError(t *testing.T) {
	s, _ := loaded(t, &fakeSource{listErr: model.E(model.KindNetwork, "list conversations", errors.New("offline"))})
	if !strings.Contains(s.View(100, 30), "offline") {
		t.Error("expected the error in the view")
	}
}

func TestEmptyHistory(t *testing.T) {
	s, _ := loaded(t, &fakeSource{})
	if !strings.Contains(s.View(100, 30), "No conversations yet") {
		t.Error("expected the empty state")
	}
}

func TestStaleMessagesIgnored(t *testing.T) {
	s, _ := loaded(t, sample())
	s.Update(messagesLoadedMsg{ConversationID: "c-2", Messages: []model.Message{{ID: "x"}}})
	if s.msgLoaded {
		t.Error("messages for a closed conversation should be dropped")
	}
}
