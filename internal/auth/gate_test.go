package auth

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/abhisek/vibetune/internal/backend"
	"github.com/abhisek/vibetune/internal/model"
	"github.com/abhisek/vibetune/internal/notify"
	"github.com/abhisek/vibetune/internal/state"
)

// fakeBackend serves profiles from a map and counts fetches.
type fakeBackend struct {
	backend.Backend // unused methods panic

	subs     backend.Subscribers
	session  *model.Session
	profiles map[string]*model.Profile
	fetchErr error
	gate     chan struct{} // when non-nil, GetProfile blocks until closed

	fetches atomic.Int32
	logins  atomic.Int32
}

func (f *fakeBackend) Subscribe(fn func(*model.Session)) func() { return f.subs.Add(fn) }

func (f *fakeBackend) CurrentSession(context.Context) (*model.Session, error) { return f.session, nil }

func (f *fakeBackend) GetProfile(ctx context.Context, id string) (*model.Profile, error) {
	f.fetches.Add(1)
	if f.gate != nil {
		select {
		case <-f.gate:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	p, ok := f.profiles[id]
	if !ok {
		return nil, model.NotFoundf("get profile", "no profile for %s", id)
	}
	return p.Clone(), nil
}

func (f *fakeBackend) UpdateProfile(_ context.Context, id string, upd model.ProfileUpdate) (*model.Profile, error) {
	f.logins.Add(1)
	p := f.profiles[id].Clone()
	upd.Apply(p)
	return p, nil
}

type recordingNotifier struct {
	mu     sync.Mutex
	titles []string
}

func (r *recordingNotifier) Notify(title, _ string, _ notify.Variant) {
	r.mu.Lock()
	r.titles = append(r.titles, title)
	r.mu.Unlock()
}

func (r *recordingNotifier) all() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.titles...)
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not met before deadline")
}

func TestStartAppliesCurrentSession(t *testing.T) {
	fb := &fakeBackend{
		session:  &model.Session{UserID: "u-1", AccessToken: "t"},
		profiles: map[string]*model.Profile{"u-1": {ID: "u-1", Username: "ana"}},
	}
	st := state.New()
	g := NewGate(fb, st, nil, nil)
	g.Start(context.Background())
	defer g.Stop()

	snap := st.Snapshot()
	if snap.Session == nil || snap.User == nil || snap.User.Username != "ana" {
		t.Fatalf("state = %+v, want session and profile", snap)
	}
	if fb.logins.Load() != 0 {
		t.Errorf("restored session must not touch last_login")
	}
}

func TestSignInNotificationLoadsProfileAndTouchesLogin(t *testing.T) {
	fb := &fakeBackend{profiles: map[string]*model.Profile{"u-1": {ID: "u-1"}}}
	st := state.New()
	g := NewGate(fb, st, nil, nil)
	fixed := time.Date(2026, 6, 1, 8, 0, 0, 0, time.UTC)
	g.now = func() time.Time { return fixed }
	g.Start(context.Background())
	defer g.Stop()

	fb.subs.Notify(&model.Session{UserID: "u-1"})
	waitFor(t, func() bool {
		u := st.Snapshot().User
		return u != nil && u.LastLogin != nil
	})
	if got := *st.Snapshot().User.LastLogin; !got.Equal(fixed) {
		t.Errorf("last login = %v, want %v", got, fixed)
	}
}

func TestSignOutClearsUserAndConversation(t *testing.T) {
	fb := &fakeBackend{
		session:  &model.Session{UserID: "u-1"},
		profiles: map[string]*model.Profile{"u-1": {ID: "u-1"}},
	}
	st := state.New()
	st.SetCurrentConversation(&model.Conversation{ID: "c-1"})
	st.AddMessage(model.Message{ID: "m-1"})
	g := NewGate(fb, st, nil, nil)
	g.Start(context.Background())
	defer g.Stop()

	fb.subs.Notify(nil)
	waitFor(t, func() bool { return st.Snapshot().Session == nil && st.Snapshot().User == nil })
	snap := st.Snapshot()
	if snap.CurrentConversation != nil || len(snap.Messages) != 0 {
		t.Errorf("conversation state survived sign out: %+v", snap)
	}
}

func TestMissingProfileIsBenign(t *testing.T) {
	fb := &fakeBackend{session: &model.Session{UserID: "u-new"}, profiles: map[string]*model.Profile{}}
	st := state.New()
	st.SetUser(&model.Profile{ID: "stale"})
	n := &recordingNotifier{}
	g := NewGate(fb, st, n, nil)
	g.Start(context.Background())
	defer g.Stop()

	if st.Snapshot().User != nil {
		t.Errorf("user = %+v, want cleared", st.Snapshot().User)
	}
	if got := n.all(); len(got) != 0 {
		t.Errorf("toasts = %v, want none", got)
	}
}

func TestFetchFailureToastsAndLogs(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	fb := &fakeBackend{
		session:  &model.Session{UserID: "u-1"},
		fetchErr: model.E(model.KindNetwork, "get profile", errors.New("connection refused")),
	}
	n := &recordingNotifier{}
	g := NewGate(fb, state.New(), n, zap.New(core))
	g.Start(context.Background())
	defer g.Stop()

	if got := n.all(); len(got) != 1 || got[0] != ProfileErrorTitle {
		t.Errorf("toasts = %v, want [%q]", got, ProfileErrorTitle)
	}
	if logs.FilterMessage("fetch profile").Len() != 1 {
		t.Errorf("expected one fetch profile error log, got %v", logs.All())
	}
	if fb.fetches.Load() != 1 {
		t.Errorf("fetches = %d, want 1 (no retry)", fb.fetches.Load())
	}
}

func TestConcurrentNotificationsShareOneFetch(t *testing.T) {
	fb := &fakeBackend{
		profiles: map[string]*model.Profile{"u-1": {ID: "u-1"}},
		gate:     make(chan struct{}),
	}
	st := state.New()
	g := NewGate(fb, st, nil, nil)
	g.Start(context.Background())
	defer g.Stop()

	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			g.EnsureProfile(context.Background(), "u-1")
		}()
	}
	waitFor(t, func() bool { return fb.fetches.Load() >= 1 })
	// Give the other callers time to join the in-flight call.
	time.Sleep(50 * time.Millisecond)
	close(fb.gate)
	wg.Wait()

	if got := fb.fetches.Load(); got != 1 {
		t.Errorf("fetches = %d, want 1", got)
	}
	if st.Snapshot().User == nil {
		t.Error("profile not stored")
	}
}

func TestStopIgnoresLaterNotifications(t *testing.T) {
	fb := &fakeBackend{profiles: map[string]*model.Profile{"u-1": {ID: "u-1"}}}
	st := state.New()
	g := NewGate(fb, st, nil, nil)
	g.Start(context.Background())
	g.Stop()

	fb.subs.Notify(&model.Session{UserID: "u-1"})
	if st.Snapshot().Session != nil {
		t.Error("notification after Stop was applied")
	}
	if fb.subs.Len() != 0 {
		t.Errorf("subscribers = %d after Stop, want 0", fb.subs.Len())
	}
}
