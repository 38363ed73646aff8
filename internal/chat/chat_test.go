package chat

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/vibetune/internal/backend"
	"github.com/abhisek/vibetune/internal/coach"
	"github.com/abhisek/vibetune/internal/model"
	"github.com/abhisek/vibetune/internal/notify"
	"github.com/abhisek/vibetune/internal/state"
	"github.com/abhisek/vibetune/internal/store"
)

type fakeBackend struct {
	backend.Backend

	mu        sync.Mutex
	convs     []model.Conversation
	inserted  []model.Message
	insertErr error
	createErr error
}

func (f *fakeBackend) CreateConversation(_ context.Context, c model.Conversation) (*model.Conversation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.convs = append(f.convs, c)
	return &c, nil
}

func (f *fakeBackend) InsertMessage(_ context.Context, m model.Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.insertErr != nil {
		return f.insertErr
	}
	f.inserted = append(f.inserted, m)
	return nil
}

func (f *fakeBackend) insertedIDs() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	var ids []string
	for _, m := range f.inserted {
		ids = append(ids, m.ID)
	}
	return ids
}

type toasts struct {
	mu     sync.Mutex
	titles []string
}

func (t *toasts) Notify(title, _ string, _ notify.Variant) {
	t.mu.Lock()
	t.titles = append(t.titles, title)
	t.mu.Unlock()
}

func (t *toasts) all() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]string(nil), t.titles...)
}

// scriptedResponder answers immediately, or blocks until release is closed.
type scriptedResponder struct {
	release chan struct{}
	err     error
	mu      sync.Mutex
	turns   []coach.Turn
}

func (s *scriptedResponder) Respond(ctx context.Context, turn coach.Turn) (*model.Message, error) {
	s.mu.Lock()
	s.turns = append(s.turns, turn)
	s.mu.Unlock()
	if s.release != nil {
		select {
		case <-s.release:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if s.err != nil {
		return nil, s.err
	}
	return &model.Message{Sender: model.SenderAI, Content: "reply to " + turn.Input.Content}, nil
}

type memAnalytics struct {
	mu     sync.Mutex
	events []string
}

func (m *memAnalytics) AppendAnalytics(_ context.Context, d store.AnalyticsEventData) error {
	m.mu.Lock()
	m.events = append(m.events, d.EventType)
	m.mu.Unlock()
	return nil
}

type harness struct {
	b     *fakeBackend
	st    *state.Store
	r     *scriptedResponder
	toast *toasts
	c     *Controller
	woken int
}

func newHarness(t *testing.T, r *scriptedResponder, opts ...Option) *harness {
	t.Helper()
	h := &harness{b: &fakeBackend{}, st: state.New(), r: r, toast: &toasts{}}
	h.st.SetUser(&model.Profile{ID: "u-1", Username: "ana"})
	var seq atomic.Int32
	opts = append([]Option{
		WithNotifier(h.toast),
		WithDeviceID("dev-1"),
		WithWake(func() { h.woken++ }),
	}, opts...)
	h.c = New(h.b, h.st, r, opts...)
	h.c.newID = func() string { return fmt.Sprintf("id-%d", seq.Add(1)) }
	t.Cleanup(h.c.Close)
	return h
}

func (h *harness) start(t *testing.T) {
	t.Helper()
	require.NoError(t, h.c.Start(context.Background()))
	h.c.Wait()
}

func TestStartCreatesConversationWithWelcome(t *testing.T) {
	h := newHarness(t, &scriptedResponder{})
	h.start(t)

	snap := h.st.Snapshot()
	require.NotNil(t, snap.CurrentConversation)
	assert.Equal(t, model.TopicGeneralPractice, snap.CurrentConversation.Topic)
	assert.False(t, snap.CurrentConversation.IsPlacementTest)
	require.Len(t, snap.Messages, 1)
	assert.Equal(t, model.SenderAI, snap.Messages[0].Sender)
	assert.Contains(t, snap.Messages[0].Content, "Hello ana! I'm your VibeTune AI coach.")
	assert.Equal(t, []string{snap.Messages[0].ID}, h.b.insertedIDs())

	// A second Start keeps the current conversation.
	require.NoError(t, h.c.Start(context.Background()))
	assert.Len(t, h.b.convs, 1)
}

func TestWelcomeTextFallback(t *testing.T) {
	assert.Contains(t, WelcomeText("  "), "Hello there!")
}

func TestStartWithoutUserIsNoop(t *testing.T) {
	h := newHarness(t, &scriptedResponder{})
	h.st.SetUser(nil)
	require.NoError(t, h.c.Start(context.Background()))
	assert.Nil(t, h.st.Snapshot().CurrentConversation)
	assert.Empty(t, h.b.convs)
}

func TestStartFailureToasts(t *testing.T) {
	h := newHarness(t, &scriptedResponder{})
	h.b.createErr = model.E(model.KindNetwork, "create conversation", errors.New("offline"))
	err := h.c.Start(context.Background())
	assert.ErrorIs(t, err, model.ErrNetwork)
	assert.Equal(t, []string{"Error"}, h.toast.all())
}

func TestSendTextAppendsOptimisticallyThenReply(t *testing.T) {
	r := &scriptedResponder{release: make(chan struct{})}
	h := newHarness(t, r)
	h.start(t)

	require.NoError(t, h.c.SendText("  how do I say schedule?  "))
	msgs := h.st.Snapshot().Messages
	require.Len(t, msgs, 2, "user message must appear before the reply")
	user := msgs[1]
	assert.Equal(t, model.SenderUser, user.Sender)
	assert.Equal(t, "how do I say schedule?", user.Content)
	assert.Equal(t, 1, user.Version)
	assert.Equal(t, "dev-1", user.DeviceID)
	assert.True(t, h.c.Busy())

	close(r.release)
	h.c.Wait()

	msgs = h.st.Snapshot().Messages
	require.Len(t, msgs, 3)
	assert.Equal(t, model.SenderAI, msgs[2].Sender)
	assert.Equal(t, "reply to how do I say schedule?", msgs[2].Content)
	assert.False(t, h.c.Busy())
	assert.Len(t, h.b.insertedIDs(), 3)

	require.Len(t, r.turns, 1)
	assert.Len(t, r.turns[0].History, 1, "history holds the welcome only")
}

func TestSendTextRejectsEmpty(t *testing.T) {
	h := newHarness(t, &scriptedResponder{})
	h.start(t)
	err := h.c.SendText(" \t ")
	assert.ErrorIs(t, err, model.ErrValidation)
	assert.Len(t, h.st.Snapshot().Messages, 1)
}

func TestSendWithoutConversation(t *testing.T) {
	h := newHarness(t, &scriptedResponder{})
	assert.ErrorIs(t, h.c.SendText("hi"), model.ErrValidation)
}

func TestRecordingFlow(t *testing.T) {
	an := &memAnalytics{}
	h := newHarness(t, &scriptedResponder{}, WithAnalytics(an))
	h.start(t)

	h.c.StartRecording()
	assert.True(t, h.st.Snapshot().Recording)
	assert.Equal(t, []string{"Recording Started"}, h.toast.all())

	require.NoError(t, h.c.StopRecording())
	h.c.Wait()

	snap := h.st.Snapshot()
	assert.False(t, snap.Recording)
	require.Len(t, snap.Messages, 3)
	audio := snap.Messages[1]
	assert.Equal(t, model.MessageAudio, audio.Type)
	assert.Equal(t, AudioPlaceholder, audio.Content)
	assert.Equal(t, AudioURL, audio.AudioURL)
	assert.Equal(t, []string{EventRecordingStarted, EventRecordingSent}, an.events)
}

func TestStubCoachAudioFeedbackLandsInStore(t *testing.T) {
	h := newHarness(t, nil)
	h.c.responder = coach.NewStub(0, 0)
	h.start(t)

	require.NoError(t, h.c.StopRecording())
	h.c.Wait()

	reply := h.st.Snapshot().Messages[2]
	require.NotNil(t, reply.Feedback)
	assert.Equal(t, 8.5, reply.Feedback.Rhythm)
	assert.Equal(t, coach.AudioGuidance, reply.Guidance)
}

func TestRetryCreatesNewVersion(t *testing.T) {
	h := newHarness(t, &scriptedResponder{})
	h.start(t)
	require.NoError(t, h.c.StopRecording())
	h.c.Wait()

	orig := h.st.Snapshot().Messages[1]
	require.NoError(t, h.c.Retry(orig.ID))
	h.c.Wait()

	msgs := h.st.Snapshot().Messages
	require.Len(t, msgs, 5)
	retry := msgs[3]
	assert.NotEqual(t, orig.ID, retry.ID)
	assert.Equal(t, orig.ID, retry.RetryOfMessageID)
	assert.Equal(t, orig.Version+1, retry.Version)
	assert.Equal(t, model.MessageAudio, retry.Type)
	assert.Contains(t, h.toast.all(), "Retrying Analysis")
}

func TestRetryRejectsUnknownAndAIMessages(t *testing.T) {
	h := newHarness(t, &scriptedResponder{})
	h.start(t)

	assert.ErrorIs(t, h.c.Retry("missing"), model.ErrNotFound)
	welcome := h.st.Snapshot().Messages[0]
	assert.ErrorIs(t, h.c.Retry(welcome.ID), model.ErrValidation)
}

func TestUnreachableBackendQueuesMessages(t *testing.T) {
	h := newHarness(t, &scriptedResponder{})
	h.start(t)
	h.b.insertErr = model.E(model.KindNetwork, "insert message", errors.New("offline"))

	require.NoError(t, h.c.SendText("hello"))
	h.c.Wait()

	queue := h.st.Snapshot().RetryQueue
	require.Len(t, queue, 2, "user message and reply both queued")
	assert.Equal(t, model.SenderUser, queue[0].Sender)
	assert.Equal(t, 2, h.woken)
	assert.Empty(t, h.toast.all())
}

func TestRejectedMessageIsNotQueued(t *testing.T) {
	h := newHarness(t, &scriptedResponder{})
	h.start(t)
	h.b.insertErr = model.Validationf("insert message", "conversation does not exist")

	require.NoError(t, h.c.SendText("hello"))
	h.c.Wait()
	assert.Empty(t, h.st.Snapshot().RetryQueue)
	assert.Contains(t, h.toast.all(), "Message not saved")
}

func TestResponderErrorKeepsUserMessage(t *testing.T) {
	h := newHarness(t, &scriptedResponder{err: errors.New("model down")})
	h.start(t)

	require.NoError(t, h.c.SendText("hello"))
	h.c.Wait()
	msgs := h.st.Snapshot().Messages
	require.Len(t, msgs, 2)
	assert.Equal(t, "hello", msgs[1].Content)
	assert.Contains(t, h.toast.all(), "Coach unavailable")
}

func TestReplyForStaleConversationIsDropped(t *testing.T) {
	r := &scriptedResponder{release: make(chan struct{})}
	h := newHarness(t, r)
	h.start(t)
	require.NoError(t, h.c.SendText("hello"))

	h.st.SetCurrentConversation(&model.Conversation{ID: "other"})
	close(r.release)
	h.c.Wait()

	msgs := h.st.Snapshot().Messages
	require.Len(t, msgs, 2)
	assert.Equal(t, model.SenderUser, msgs[1].Sender)
}

func TestCloseCancelsPendingReply(t *testing.T) {
	r := &scriptedResponder{release: make(chan struct{})}
	h := newHarness(t, r)
	h.start(t)
	require.NoError(t, h.c.SendText("hello"))

	done := make(chan struct{})
	go func() { h.c.Close(); close(done) }()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Close did not return")
	}
	assert.Len(t, h.st.Snapshot().Messages, 2)
	assert.Empty(t, h.toast.all())
	assert.Len(t, h.b.insertedIDs(), 2, "the user message is still saved")
}
