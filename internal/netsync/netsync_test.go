package netsync

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/vibetune/internal/backend"
	"github.com/abhisek/vibetune/internal/config"
	"github.com/abhisek/vibetune/internal/model"
	"github.com/abhisek/vibetune/internal/state"
)

var errOffline = model.E(model.KindNetwork, "ping", errors.New("offline"))

type flakyBackend struct {
	backend.Backend

	mu       sync.Mutex
	offline  bool
	reject   map[string]bool
	inserted []string
	attempts int
	pings    int
}

func (f *flakyBackend) setOffline(v bool) {
	f.mu.Lock()
	f.offline = v
	f.mu.Unlock()
}

func (f *flakyBackend) Ping(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pings++
	if f.offline {
		return errOffline
	}
	return nil
}

func (f *flakyBackend) InsertMessage(_ context.Context, m model.Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.attempts++
	if f.offline {
		return errOffline
	}
	if f.reject[m.ID] {
		return model.Validationf("insert message", "conversation gone")
	}
	f.inserted = append(f.inserted, m.ID)
	return nil
}

func (f *flakyBackend) snapshot() (inserted []string, attempts int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.inserted...), f.attempts
}

func fastSync() config.SyncConfig {
	return config.SyncConfig{
		PingInterval: time.Hour,
		RetryInitial: 10 * time.Millisecond,
		RetryMax:     40 * time.Millisecond,
	}
}

func queued(st *state.Store, ids ...string) {
	for _, id := range ids {
		st.AddToRetryQueue(model.Message{ID: id, ConversationID: "c-1"})
	}
}

func TestCheckUpdatesSyncStatus(t *testing.T) {
	b := &flakyBackend{offline: true}
	st := state.New()
	s := New(b, st, fastSync(), nil)

	assert.False(t, s.Check(context.Background()))
	assert.False(t, st.Snapshot().Sync.Online)
	assert.True(t, st.Snapshot().Sync.LastSync.IsZero())

	b.setOffline(false)
	assert.True(t, s.Check(context.Background()))
	snap := st.Snapshot().Sync
	assert.True(t, snap.Online)
	assert.False(t, snap.LastSync.IsZero())

	select {
	case <-s.wake:
	default:
		t.Error("reconnect should wake the drainer")
	}
}

func TestFlushSendsInOrderAndEmptiesQueue(t *testing.T) {
	b := &flakyBackend{}
	st := state.New()
	queued(st, "m-1", "m-2", "m-3")

	require.NoError(t, New(b, st, fastSync(), nil).Flush(context.Background()))
	inserted, _ := b.snapshot()
	assert.Equal(t, []string{"m-1", "m-2", "m-3"}, inserted)
	assert.Empty(t, st.Snapshot().RetryQueue)
	assert.True(t, st.Snapshot().Sync.Online)
}

func TestFlushKeepsQueueWhenOffline(t *testing.T) {
	b := &flakyBackend{offline: true}
	st := state.New()
	queued(st, "m-1", "m-2")

	err := New(b, st, fastSync(), nil).Flush(context.Background())
	assert.ErrorIs(t, err, model.ErrNetwork)
	assert.Len(t, st.Snapshot().RetryQueue, 2)
	_, attempts := b.snapshot()
	assert.Equal(t, 1, attempts, "stop at the first transient failure")
}

func TestFlushDropsRejectedMessages(t *testing.T) {
	b := &flakyBackend{reject: map[string]bool{"bad": true}}
	st := state.New()
	queued(st, "bad", "good")

	require.NoError(t, New(b, st, fastSync(), nil).Flush(context.Background()))
	inserted, _ := b.snapshot()
	assert.Equal(t, []string{"good"}, inserted)
	assert.Empty(t, st.Snapshot().RetryQueue)
}

func TestRunDrainsAfterReconnect(t *testing.T) {
	b := &flakyBackend{offline: true}
	st := state.New()
	queued(st, "m-1")
	s := New(b, st, fastSync(), nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	s.Wake()
	require.Eventually(t, func() bool {
		_, attempts := b.snapshot()
		return attempts >= 2
	}, 2*time.Second, 5*time.Millisecond, "backoff should retry")
	assert.Len(t, st.Snapshot().RetryQueue, 1)

	b.setOffline(false)
	require.Eventually(t, func() bool { return len(st.Snapshot().RetryQueue) == 0 }, 2*time.Second, 5*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not stop")
	}
}

func TestDrainBackoffDoublesUpToMax(t *testing.T) {
	b := &flakyBackend{offline: true}
	st := state.New()
	queued(st, "m-1")
	s := New(b, st, fastSync(), nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	waits := make(chan time.Duration)
	s.after = func(d time.Duration) <-chan time.Time {
		select {
		case waits <- d:
		case <-ctx.Done():
		}
		fired := make(chan time.Time, 1)
		fired <- time.Time{}
		return fired
	}

	done := make(chan error, 1)
	go func() { done <- s.drain(ctx) }()
	s.Wake()

	var got []time.Duration
	for range 5 {
		select {
		case d := <-waits:
			got = append(got, d)
		case <-time.After(2 * time.Second):
			t.Fatalf("drain stalled after waits %v", got)
		}
	}
	ms := time.Millisecond
	assert.Equal(t, []time.Duration{10 * ms, 20 * ms, 40 * ms, 40 * ms, 40 * ms}, got)

	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("drain did not stop")
	}
}

func TestDrainBackoffResetsAfterSuccess(t *testing.T) {
	b := &flakyBackend{offline: true}
	st := state.New()
	queued(st, "m-1")
	s := New(b, st, fastSync(), nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	waits := make(chan time.Duration)
	s.after = func(d time.Duration) <-chan time.Time {
		select {
		case waits <- d:
		case <-ctx.Done():
		}
		// Never fires; the test drives the drainer with Wake.
		return make(chan time.Time)
	}

	done := make(chan error, 1)
	go func() { done <- s.drain(ctx) }()

	next := func() time.Duration {
		t.Helper()
		select {
		case d := <-waits:
			return d
		case <-time.After(2 * time.Second):
			t.Fatal("drain did not schedule a retry")
			return 0
		}
	}

	s.Wake()
	assert.Equal(t, 10*time.Millisecond, next())
	s.Wake()
	assert.Equal(t, 20*time.Millisecond, next())

	b.setOffline(false)
	s.Wake()
	require.Eventually(t, func() bool { return len(st.Snapshot().RetryQueue) == 0 }, 2*time.Second, 5*time.Millisecond)

	b.setOffline(true)
	queued(st, "m-2")
	s.Wake()
	assert.Equal(t, 10*time.Millisecond, next(), "success should reset the backoff")

	cancel()
	<-done
}

func TestWakeNeverBlocks(t *testing.T) {
	s := New(&flakyBackend{}, state.New(), fastSync(), nil)
	for i := 0; i < 10; i++ {
		s.Wake()
	}
}

func TestNewFillsDefaults(t *testing.T) {
	s := New(&flakyBackend{}, state.New(), config.SyncConfig{}, nil)
	def := config.Default().Sync
	assert.Equal(t, def.PingInterval, s.cfg.PingInterval)
	assert.Equal(t, def.RetryInitial, s.cfg.RetryInitial)
	assert.GreaterOrEqual(t, s.cfg.RetryMax, s.cfg.RetryInitial)
}
