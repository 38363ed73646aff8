// Package chat runs the practice conversation: optimistic user messages,
// asynchronous coach replies and backend persistence with a retry queue.
package chat

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/abhisek/vibetune/internal/backend"
	"github.com/abhisek/vibetune/internal/coach"
	"github.com/abhisek/vibetune/internal/model"
	"github.com/abhisek/vibetune/internal/notify"
	"github.com/abhisek/vibetune/internal/state"
	"github.com/abhisek/vibetune/internal/store"
)

// Content of the placeholder user message for a recording.
const (
	AudioPlaceholder = "[Audio message - analyzing pronunciation...]"
	AudioURL         = "placeholder_audio_url"
)

// Analytics event types.
const (
	EventMessageSent      = "message_sent"
	EventRecordingStarted = "recording_started"
	EventRecordingSent    = "recording_sent"
	EventMessageRetried   = "message_retried"
)

// WelcomeText greets the learner at the top of a new conversation.
func WelcomeText(username string) string {
	if strings.TrimSpace(username) == "" {
		username = "there"
	}
	return fmt.Sprintf("Hello %s! I'm your VibeTune AI coach. I'm here to help you improve your English "+
		"pronunciation, intonation, and rhythm. You can type a message or use the microphone to practice "+
		"speaking. What would you like to work on today?", username)
}

// Recorder stores usage analytics.
type Recorder interface {
	AppendAnalytics(ctx context.Context, data store.AnalyticsEventData) error
}

// Controller owns one chat screen's conversation. It is safe for concurrent
// use; all visible state lives in the session store.
type Controller struct {
	backend   backend.Backend
	store     *state.Store
	responder coach.Responder
	notifier  notify.Notifier
	analytics Recorder
	logger    *zap.Logger
	deviceID  string
	wake      func()

	now   func() time.Time
	newID func() string

	ctx     context.Context
	cancel  context.CancelFunc
	wg      sync.WaitGroup
	pending atomic.Int32
}

// Option configures a Controller.
type Option func(*Controller)

func WithNotifier(n notify.Notifier) Option { return func(c *Controller) { c.notifier = n } }

func WithAnalytics(r Recorder) Option { return func(c *Controller) { c.analytics = r } }

func WithLogger(l *zap.Logger) Option { return func(c *Controller) { c.logger = l } }

func WithDeviceID(id string) Option { return func(c *Controller) { c.deviceID = id } }

// WithWake registers fn to be called after a message is queued for retry.
func WithWake(fn func()) Option { return func(c *Controller) { c.wake = fn } }

func New(b backend.Backend, st *state.Store, r coach.Responder, opts ...Option) *Controller {
	c := &Controller{
		backend:   b,
		store:     st,
		responder: r,
		notifier:  notify.Discard,
		logger:    zap.NewNop(),
		now:       time.Now,
		newID:     uuid.NewString,
	}
	for _, o := range opts {
		o(c)
	}
	c.logger = c.logger.Named("chat")
	c.ctx, c.cancel = context.WithCancel(context.Background())
	return c
}

// Start opens a General Practice conversation and posts the welcome message.
// It does nothing without a signed-in user or when a conversation is already
// current.
func (c *Controller) Start(ctx context.Context) error {
	snap := c.store.Snapshot()
	if snap.User == nil || snap.CurrentConversation != nil {
		return nil
	}

	conv, err := c.backend.CreateConversation(ctx, model.Conversation{
		ID:        c.newID(),
		ProfileID: snap.User.ID,
		Topic:     model.TopicGeneralPractice,
		StartedAt: c.now().UTC(),
	})
	if err != nil {
		c.logger.Error("create conversation", zap.Error(err))
		c.notifier.Notify("Error", err.Error(), notify.VariantError)
		return fmt.Errorf("start conversation: %w", err)
	}

	c.store.SetCurrentConversation(conv)
	c.store.SetMessages(nil)

	welcome := c.message(conv.ID, model.SenderAI, model.MessageText, WelcomeText(snap.User.Username))
	c.store.AddMessage(welcome)
	c.goPersist(welcome)
	return nil
}

// SendText posts a typed message and asks the coach for a reply.
func (c *Controller) SendText(text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return model.Validationf("send message", "message is empty")
	}
	conv, err := c.current("send message")
	if err != nil {
		return err
	}

	msg := c.message(conv.ID, model.SenderUser, model.MessageText, text)
	c.submit(*conv, msg, EventMessageSent)
	return nil
}

// StartRecording flags the microphone as live.
func (c *Controller) StartRecording() {
	c.store.SetRecording(true)
	c.notifier.Notify("Recording Started", "Speak clearly into your microphone", notify.VariantDefault)
	c.track(EventRecordingStarted, nil)
}

// StopRecording ends the recording and sends it for analysis. Without a
// current conversation the recording is discarded.
func (c *Controller) StopRecording() error {
	c.store.SetRecording(false)
	conv, err := c.current("send recording")
	if err != nil {
		return err
	}
	msg := c.message(conv.ID, model.SenderUser, model.MessageAudio, AudioPlaceholder)
	msg.AudioURL = AudioURL
	c.submit(*conv, msg, EventRecordingSent)
	return nil
}

// Retry resends one of the learner's messages as a new version and asks for
// fresh feedback.
func (c *Controller) Retry(messageID string) error {
	conv, err := c.current("retry message")
	if err != nil {
		return err
	}

	var orig *model.Message
	for _, m := range c.store.Snapshot().Messages {
		if m.ID == messageID {
			orig = &m
			break
		}
	}
	switch {
	case orig == nil:
		return model.NotFoundf("retry message", "message %s is not in this conversation", messageID)
	case orig.Sender != model.SenderUser:
		return model.Validationf("retry message", "only learner messages can be retried")
	}

	c.notifier.Notify("Retrying Analysis", "Getting fresh feedback on your pronunciation", notify.VariantDefault)

	msg := orig.Clone()
	msg.ID = c.newID()
	msg.RetryOfMessageID = orig.ID
	msg.Version = orig.Version + 1
	msg.CreatedAt = c.now().UTC()
	c.submit(*conv, msg, EventMessageRetried)
	return nil
}

// Busy reports whether a reply is being prepared.
func (c *Controller) Busy() bool { return c.pending.Load() > 0 }

// Close cancels outstanding replies and waits for background work.
func (c *Controller) Close() {
	c.cancel()
	c.wg.Wait()
}

// Wait blocks until background work started so far has finished.
func (c *Controller) Wait() { c.wg.Wait() }

func (c *Controller) current(op string) (*model.Conversation, error) {
	conv := c.store.Snapshot().CurrentConversation
	if conv == nil {
		return nil, model.Validationf(op, "no active conversation")
	}
	return conv, nil
}

func (c *Controller) message(convID string, sender model.Sender, typ model.MessageType, content string) model.Message {
	return model.Message{
		ID:             c.newID(),
		ConversationID: convID,
		Sender:         sender,
		Type:           typ,
		Content:        content,
		Version:        1,
		CreatedAt:      c.now().UTC(),
		DeviceID:       c.deviceID,
	}
}

// submit appends msg, then persists it and fetches the reply off the caller's
// goroutine.
func (c *Controller) submit(conv model.Conversation, msg model.Message, event string) {
	history := c.history(conv.ID)
	c.store.AddMessage(msg)
	c.track(event, map[string]any{"message_id": msg.ID, "type": msg.Type, "version": msg.Version})

	if c.ctx.Err() != nil {
		return
	}
	c.pending.Add(1)
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		defer c.pending.Add(-1)
		c.persist(msg)
		c.reply(conv, history, msg)
	}()
}

func (c *Controller) history(convID string) []model.Message {
	var out []model.Message
	for _, m := range c.store.Snapshot().Messages {
		if m.ConversationID == convID {
			out = append(out, m)
		}
	}
	return out
}

func (c *Controller) reply(conv model.Conversation, history []model.Message, input model.Message) {
	var level model.Level
	if u := c.store.Snapshot().User; u != nil {
		level = u.Level
	}

	out, err := c.responder.Respond(c.ctx, coach.Turn{
		Conversation: conv,
		Level:        level,
		History:      history,
		Input:        input,
	})
	if c.ctx.Err() != nil {
		return
	}
	if err != nil {
		c.logger.Error("coach reply", zap.String("message_id", input.ID), zap.Error(err))
		c.notifier.Notify("Coach unavailable", "Could not get feedback right now. Please try again.", notify.VariantError)
		return
	}

	cur := c.store.Snapshot().CurrentConversation
	if cur == nil || cur.ID != conv.ID {
		c.logger.Debug("dropping reply for stale conversation", zap.String("conversation_id", conv.ID))
		return
	}

	msg := c.message(conv.ID, model.SenderAI, model.MessageText, out.Content)
	msg.Feedback = out.Feedback
	msg.Guidance = out.Guidance
	msg.VocabSuggestions = out.VocabSuggestions
	c.store.AddMessage(msg)
	c.persist(msg)
}

func (c *Controller) goPersist(m model.Message) {
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		c.persist(m)
	}()
}

// persist inserts m, falling back to the retry queue when the backend is
// unreachable. It deliberately outlives Close so a sent message is never
// lost.
func (c *Controller) persist(m model.Message) {
	err := c.backend.InsertMessage(context.WithoutCancel(c.ctx), m)
	if err == nil {
		return
	}
	if model.IsRetryable(err) {
		c.logger.Warn("queue message for retry", zap.String("message_id", m.ID), zap.Error(err))
		c.store.AddToRetryQueue(m)
		if c.wake != nil {
			c.wake()
		}
		return
	}
	c.logger.Error("save message", zap.String("message_id", m.ID), zap.Error(err))
	c.notifier.Notify("Message not saved", err.Error(), notify.VariantError)
}

func (c *Controller) track(event string, payload map[string]any) {
	if c.analytics == nil {
		return
	}
	var profileID string
	if u := c.store.Snapshot().User; u != nil {
		profileID = u.ID
	}
	var raw json.RawMessage
	if payload != nil {
		raw, _ = json.Marshal(payload)
	}
	if err := c.analytics.AppendAnalytics(c.ctx, store.AnalyticsEventData{
		ProfileID: profileID,
		EventType: event,
		Payload:   raw,
	}); err != nil {
		c.logger.Debug("record analytics", zap.String("event", event), zap.Error(err))
	}
}
