package backend

import (
	"context"
	"time"

	"github.com/abhisek/vibetune/internal/model"
)

// timeoutBackend bounds every call with a deadline.
type timeoutBackend struct {
	inner Backend
	d     time.Duration
}

// WithTimeout wraps b so each call gets at most d. A non-positive d returns b.
func WithTimeout(b Backend, d time.Duration) Backend {
	if d <= 0 {
		return b
	}
	return &timeoutBackend{inner: b, d: d}
}

func (t *timeoutBackend) SignUp(ctx context.Context, email, password, username string) (*model.Session, error) {
	ctx, cancel := context.WithTimeout(ctx, t.d)
	defer cancel()
	return t.inner.SignUp(ctx, email, password, username)
}

func (t *timeoutBackend) SignIn(ctx context.Context, email, password string) (*model.Session, error) {
	ctx, cancel := context.WithTimeout(ctx, t.d)
	defer cancel()
	return t.inner.SignIn(ctx, email, password)
}

func (t *timeoutBackend) SignOut(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, t.d)
	defer cancel()
	return t.inner.SignOut(ctx)
}

func (t *timeoutBackend) CurrentSession(ctx context.Context) (*model.Session, error) {
	ctx, cancel := context.WithTimeout(ctx, t.d)
	defer cancel()
	return t.inner.CurrentSession(ctx)
}

func (t *timeoutBackend) Subscribe(fn func(*model.Session)) func() {
	return t.inner.Subscribe(fn)
}

func (t *timeoutBackend) GetProfile(ctx context.Context, id string) (*model.Profile, error) {
	ctx, cancel := context.WithTimeout(ctx, t.d)
	defer cancel()
	return t.inner.GetProfile(ctx, id)
}

func (t *timeoutBackend) UpdateProfile(ctx context.Context, id string, upd model.ProfileUpdate) (*model.Profile, error) {
	ctx, cancel := context.WithTimeout(ctx, t.d)
	defer cancel()
	return t.inner.UpdateProfile(ctx, id, upd)
}

func (t *timeoutBackend) CreateConversation(ctx context.Context, conv model.Conversation) (*model.Conversation, error) {
	ctx, cancel := context.WithTimeout(ctx, t.d)
	defer cancel()
	return t.inner.CreateConversation(ctx, conv)
}

func (t *timeoutBackend) ListConversations(ctx context.Context, profileID string) ([]model.Conversation, error) {
	ctx, cancel := context.WithTimeout(ctx, t.d)
	defer cancel()
	return t.inner.ListConversations(ctx, profileID)
}

func (t *timeoutBackend) InsertMessage(ctx context.Context, msg model.Message) error {
	ctx, cancel := context.WithTimeout(ctx, t.d)
	defer cancel()
	return t.inner.InsertMessage(ctx, msg)
}

func (t *timeoutBackend) ListMessages(ctx context.Context, conversationID string) ([]model.Message, error) {
	ctx, cancel := context.WithTimeout(ctx, t.d)
	defer cancel()
	return t.inner.ListMessages(ctx, conversationID)
}

func (t *timeoutBackend) RateMessage(ctx context.Context, rating model.FeedbackRating) error {
	ctx, cancel := context.WithTimeout(ctx, t.d)
	defer cancel()
	return t.inner.RateMessage(ctx, rating)
}

func (t *timeoutBackend) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, t.d)
	defer cancel()
	return t.inner.Ping(ctx)
}
