package local

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/abhisek/vibetune/internal/model"
	"github.com/abhisek/vibetune/internal/store"
)

func newTestBackend(t *testing.T) *Backend {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	s, err := store.Open(fmt.Sprintf("file:local_%s?mode=memory&cache=shared", name))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	b := New(s.Client(), nil)
	b.cost = bcrypt.MinCost
	return b
}

func signUp(t *testing.T, b *Backend) *model.Session {
	t.Helper()
	sess, err := b.SignUp(context.Background(), "Ana@Example.com ", "secret1", "ana")
	if err != nil {
		t.Fatalf("sign up: %v", err)
	}
	return sess
}

func TestSignUpCreatesProfileAndSession(t *testing.T) {
	b := newTestBackend(t)
	ctx := context.Background()

	var notified []*model.Session
	unsub := b.Subscribe(func(s *model.Session) { notified = append(notified, s) })
	defer unsub()

	sess := signUp(t, b)
	if sess.UserID == "" || sess.AccessToken == "" {
		t.Fatalf("session = %+v, want ids", sess)
	}
	if sess.Email != "ana@example.com" {
		t.Errorf("email = %q, want normalized", sess.Email)
	}
	if len(notified) != 1 || notified[0].UserID != sess.UserID {
		t.Errorf("notified = %v, want the new session", notified)
	}

	p, err := b.GetProfile(ctx, sess.UserID)
	if err != nil {
		t.Fatalf("get profile: %v", err)
	}
	if p.Username != "ana" || p.PlacementTestCompleted || p.Level != "" {
		t.Errorf("profile = %+v, want fresh ana profile", p)
	}

	cur, err := b.CurrentSession(ctx)
	if err != nil {
		t.Fatalf("current session: %v", err)
	}
	if cur == nil || cur.AccessToken != sess.AccessToken || cur.Email != "ana@example.com" {
		t.Errorf("current = %+v, want %+v", cur, sess)
	}
}

func TestSignUpValidation(t *testing.T) {
	b := newTestBackend(t)
	ctx := context.Background()

	tests := []struct {
		name, email, password string
	}{
		{"empty email", "  ", "secret1"},
		{"short password", "a@b.c", "12345"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := b.SignUp(ctx, tt.email, tt.password, "x")
			if !errors.Is(err, model.ErrValidation) {
				t.Errorf("err = %v, want validation", err)
			}
		})
	}

	signUp(t, b)
	if _, err := b.SignUp(ctx, "ana@example.com", "another1", "ana2"); !errors.Is(err, model.ErrValidation) {
		t.Errorf("duplicate sign up err = %v, want validation", err)
	}
}

func TestSignInAndSignOut(t *testing.T) {
	b := newTestBackend(t)
	ctx := context.Background()
	first := signUp(t, b)

	if _, err := b.SignIn(ctx, "ana@example.com", "wrong-password"); !errors.Is(err, model.ErrUnauthorized) {
		t.Errorf("bad password err = %v, want unauthorized", err)
	}
	if _, err := b.SignIn(ctx, "nobody@example.com", "secret1"); !errors.Is(err, model.ErrUnauthorized) {
		t.Errorf("unknown email err = %v, want unauthorized", err)
	}

	sess, err := b.SignIn(ctx, "ANA@example.com", "secret1")
	if err != nil {
		t.Fatalf("sign in: %v", err)
	}
	if sess.UserID != first.UserID || sess.AccessToken == first.AccessToken {
		t.Errorf("sign in session = %+v, want new token for same user", sess)
	}

	var last *model.Session
	got := false
	b.Subscribe(func(s *model.Session) { last, got = s, true })
	if err := b.SignOut(ctx); err != nil {
		t.Fatalf("sign out: %v", err)
	}
	if !got || last != nil {
		t.Errorf("sign out notification = %v (got %v), want nil", last, got)
	}
	cur, err := b.CurrentSession(ctx)
	if err != nil {
		t.Fatalf("current session: %v", err)
	}
	if cur != nil {
		t.Errorf("current = %+v after sign out, want nil", cur)
	}
}

func TestCurrentSessionIgnoresExpired(t *testing.T) {
	b := newTestBackend(t)
	signUp(t, b)

	b.now = func() time.Time { return time.Now().UTC().Add(sessionTTL + time.Hour) }
	cur, err := b.CurrentSession(context.Background())
	if err != nil {
		t.Fatalf("current session: %v", err)
	}
	if cur != nil {
		t.Errorf("current = %+v, want nil for expired session", cur)
	}
}

func TestGetProfileNotFound(t *testing.T) {
	b := newTestBackend(t)
	_, err := b.GetProfile(context.Background(), "missing")
	if !errors.Is(err, model.ErrNotFound) {
		t.Errorf("err = %v, want not found", err)
	}
}

func TestUpdateProfile(t *testing.T) {
	b := newTestBackend(t)
	ctx := context.Background()
	sess := signUp(t, b)

	level := model.LevelAdvanced
	done := true
	login := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	p, err := b.UpdateProfile(ctx, sess.UserID, model.ProfileUpdate{
		Level:                  &level,
		PlacementTestCompleted: &done,
		LastLogin:              &login,
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if p.Level != model.LevelAdvanced || !p.PlacementTestCompleted {
		t.Errorf("profile = %+v, want advanced and completed", p)
	}
	if p.LastLogin == nil || !p.LastLogin.Equal(login) {
		t.Errorf("last login = %v, want %v", p.LastLogin, login)
	}

	bad := model.Level("expert")
	if _, err := b.UpdateProfile(ctx, sess.UserID, model.ProfileUpdate{Level: &bad}); !errors.Is(err, model.ErrValidation) {
		t.Errorf("bad level err = %v, want validation", err)
	}
	if _, err := b.UpdateProfile(ctx, "missing", model.ProfileUpdate{Level: &level}); !errors.Is(err, model.ErrNotFound) {
		t.Errorf("missing profile err = %v, want not found", err)
	}
}

func TestConversationsAndMessages(t *testing.T) {
	b := newTestBackend(t)
	ctx := context.Background()
	sess := signUp(t, b)

	base := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	older, err := b.CreateConversation(ctx, model.Conversation{
		ProfileID: sess.UserID, Topic: model.TopicPlacementTest, IsPlacementTest: true, StartedAt: base,
	})
	if err != nil {
		t.Fatalf("create conversation: %v", err)
	}
	newer, err := b.CreateConversation(ctx, model.Conversation{
		ProfileID: sess.UserID, Topic: model.TopicGeneralPractice, StartedAt: base.Add(time.Hour),
	})
	if err != nil {
		t.Fatalf("create conversation: %v", err)
	}
	if older.ID == "" || newer.ID == older.ID {
		t.Fatalf("conversation ids = %q, %q", older.ID, newer.ID)
	}

	convs, err := b.ListConversations(ctx, sess.UserID)
	if err != nil {
		t.Fatalf("list conversations: %v", err)
	}
	if len(convs) != 2 || convs[0].ID != newer.ID || !convs[1].IsPlacementTest {
		t.Errorf("conversations = %+v, want newest first", convs)
	}

	user := model.Message{
		ID: "m-1", ConversationID: newer.ID, Sender: model.SenderUser, Type: model.MessageAudio,
		Content: "[Audio message - analyzing pronunciation...]", AudioURL: "placeholder_audio_url",
		Version: 1, CreatedAt: base.Add(time.Hour + time.Second),
	}
	reply := model.Message{
		ID: "m-2", ConversationID: newer.ID, Sender: model.SenderAI, Type: model.MessageText,
		Content:          "Nice rhythm.",
		Feedback:         &model.ProsodyFeedback{Rhythm: 8.5, Intonation: 7.2, Stress: 6.8},
		Guidance:         "Focus on word stress patterns in multi-syllable words",
		VocabSuggestions: []string{"emphasize", "rhythm", "intonation"},
		Version:          1, CreatedAt: base.Add(time.Hour + 2*time.Second),
	}
	for _, m := range []model.Message{reply, user} {
		if err := b.InsertMessage(ctx, m); err != nil {
			t.Fatalf("insert %s: %v", m.ID, err)
		}
	}
	if err := b.InsertMessage(ctx, user); err != nil {
		t.Errorf("re-insert of same id should be a no-op, got %v", err)
	}

	msgs, err := b.ListMessages(ctx, newer.ID)
	if err != nil {
		t.Fatalf("list messages: %v", err)
	}
	if len(msgs) != 2 {
		t.Fatalf("messages = %d, want 2", len(msgs))
	}
	if msgs[0].ID != "m-1" || msgs[0].AudioURL != "placeholder_audio_url" {
		t.Errorf("first message = %+v, want the user audio message", msgs[0])
	}
	got := msgs[1]
	if got.Feedback == nil || got.Feedback.Rhythm != 8.5 || got.Feedback.Stress != 6.8 {
		t.Errorf("feedback = %+v", got.Feedback)
	}
	if len(got.VocabSuggestions) != 3 || got.Guidance == "" {
		t.Errorf("reply = %+v", got)
	}

	retry := user
	retry.ID = "m-3"
	retry.RetryOfMessageID = "m-1"
	retry.Version = 2
	retry.CreatedAt = base.Add(time.Hour + 3*time.Second)
	if err := b.InsertMessage(ctx, retry); err != nil {
		t.Fatalf("insert retry: %v", err)
	}

	orphan := model.Message{ID: "m-4", ConversationID: "no-such-conversation", Sender: model.SenderUser, Type: model.MessageText, Content: "x"}
	if err := b.InsertMessage(ctx, orphan); !errors.Is(err, model.ErrValidation) {
		t.Errorf("orphan insert err = %v, want validation", err)
	}
}

func TestRateMessage(t *testing.T) {
	b := newTestBackend(t)
	ctx := context.Background()
	sess := signUp(t, b)

	conv, err := b.CreateConversation(ctx, model.Conversation{ProfileID: sess.UserID, Topic: model.TopicGeneralPractice})
	if err != nil {
		t.Fatalf("create conversation: %v", err)
	}
	msg := model.Message{ID: "m-1", ConversationID: conv.ID, Sender: model.SenderAI, Type: model.MessageText, Content: "hi"}
	if err := b.InsertMessage(ctx, msg); err != nil {
		t.Fatalf("insert: %v", err)
	}

	if err := b.RateMessage(ctx, model.FeedbackRating{MessageID: "m-1", ProfileID: sess.UserID, Rating: 4}); err != nil {
		t.Errorf("rate: %v", err)
	}
	if err := b.RateMessage(ctx, model.FeedbackRating{MessageID: "m-1", ProfileID: sess.UserID, Rating: 6}); !errors.Is(err, model.ErrValidation) {
		t.Errorf("out of range err = %v, want validation", err)
	}
}

func TestPing(t *testing.T) {
	b := newTestBackend(t)
	if err := b.Ping(context.Background()); err != nil {
		t.Errorf("ping: %v", err)
	}
}

func TestInsertMessageRejectsUnknownSender(t *testing.T) {
	b := newTestBackend(t)
	ctx := context.Background()
	sess := signUp(t, b)

	conv, err := b.CreateConversation(ctx, model.Conversation{ProfileID: sess.UserID, Topic: model.TopicGeneralPractice})
	if err != nil {
		t.Fatalf("create conversation: %v", err)
	}
	msg := model.Message{ID: "m-1", ConversationID: conv.ID, Sender: "robot", Type: model.MessageText, Content: "hi"}
	if err := b.InsertMessage(ctx, msg); !errors.Is(err, model.ErrValidation) {
		t.Errorf("err = %v, want validation", err)
	}
	msgs, err := b.ListMessages(ctx, conv.ID)
	if err != nil {
		t.Fatalf("list messages: %v", err)
	}
	if len(msgs) != 0 {
		t.Errorf("messages = %+v, want none", msgs)
	}
}
