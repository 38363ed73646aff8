// Package auth bridges the backend's session notifications into the session
// store.
package auth

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/abhisek/vibetune/internal/backend"
	"github.com/abhisek/vibetune/internal/model"
	"github.com/abhisek/vibetune/internal/notify"
	"github.com/abhisek/vibetune/internal/state"
)

// Toast shown when the profile could not be loaded.
const (
	ProfileErrorTitle       = "Welcome to VibeTune!"
	ProfileErrorDescription = "Let's set up your profile to get started."
)

// Gate keeps the store's session and user in step with the backend.
type Gate struct {
	backend  backend.Backend
	store    *state.Store
	notifier notify.Notifier
	logger   *zap.Logger
	now      func() time.Time

	group singleflight.Group

	mu     sync.Mutex
	unsub  func()
	cancel context.CancelFunc
	ctx    context.Context
	wg     sync.WaitGroup
}

// NewGate returns a Gate. Call Start to begin listening.
func NewGate(b backend.Backend, st *state.Store, n notify.Notifier, logger *zap.Logger) *Gate {
	if n == nil {
		n = notify.Discard
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Gate{
		backend:  b,
		store:    st,
		notifier: n,
		logger:   logger.Named("auth"),
		now:      time.Now,
	}
}

// Start subscribes to session changes and applies the current session. It
// returns once the initial session has been handled.
func (g *Gate) Start(ctx context.Context) {
	g.mu.Lock()
	if g.unsub != nil {
		g.mu.Unlock()
		return
	}
	g.ctx, g.cancel = context.WithCancel(ctx)
	g.unsub = g.backend.Subscribe(g.onChange)
	runCtx := g.ctx
	g.mu.Unlock()

	sess, err := g.backend.CurrentSession(runCtx)
	if err != nil {
		g.logger.Warn("fetch current session", zap.Error(err))
		return
	}
	g.apply(runCtx, sess, false)
}

// onChange runs on the backend's notifying goroutine; the work is handed to
// a tracked goroutine so slow fetches never block the backend.
func (g *Gate) onChange(sess *model.Session) {
	g.mu.Lock()
	ctx := g.ctx
	if ctx == nil || ctx.Err() != nil {
		g.mu.Unlock()
		return
	}
	g.wg.Add(1)
	g.mu.Unlock()

	go func() {
		defer g.wg.Done()
		g.apply(ctx, sess, true)
	}()
}

func (g *Gate) apply(ctx context.Context, sess *model.Session, signedIn bool) {
	g.store.SetSession(sess)
	if sess == nil || sess.UserID == "" {
		g.store.SetUser(nil)
		g.store.SetCurrentConversation(nil)
		g.store.SetMessages(nil)
		return
	}

	p, err := g.EnsureProfile(ctx, sess.UserID)
	if err != nil || p == nil {
		return
	}
	if signedIn {
		g.touchLastLogin(ctx, p.ID)
	}
}

// EnsureProfile fetches the profile for userID and stores it. Concurrent
// calls for the same id share one request. A missing profile clears the
// stored user and returns (nil, nil).
func (g *Gate) EnsureProfile(ctx context.Context, userID string) (*model.Profile, error) {
	v, err, shared := g.group.Do(userID, func() (any, error) {
		return g.backend.GetProfile(ctx, userID)
	})
	if shared {
		g.logger.Debug("joined in-flight profile fetch", zap.String("user_id", userID))
	}

	switch {
	case errors.Is(err, model.ErrNotFound):
		g.logger.Info("no profile yet", zap.String("user_id", userID))
		g.store.SetUser(nil)
		return nil, nil
	case errors.Is(err, context.Canceled):
		return nil, err
	case err != nil:
		g.logger.Error("fetch profile", zap.String("user_id", userID), zap.Error(err))
		g.notifier.Notify(ProfileErrorTitle, ProfileErrorDescription, notify.VariantDefault)
		return nil, err
	}

	p := v.(*model.Profile).Clone()
	g.store.SetUser(p)
	return p, nil
}

// touchLastLogin records the sign-in time. Failures are logged only.
func (g *Gate) touchLastLogin(ctx context.Context, id string) {
	now := g.now().UTC()
	p, err := g.backend.UpdateProfile(ctx, id, model.ProfileUpdate{LastLogin: &now})
	if err != nil {
		g.logger.Warn("update last login", zap.String("user_id", id), zap.Error(err))
		return
	}
	g.store.SetUser(p)
}

// Stop unsubscribes and waits for in-flight handlers.
func (g *Gate) Stop() {
	g.mu.Lock()
	unsub := g.unsub
	if g.cancel != nil {
		g.cancel()
	}
	g.unsub, g.cancel = nil, nil
	g.mu.Unlock()

	if unsub != nil {
		unsub()
	}
	g.wg.Wait()
}
