package state

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/vibetune/internal/model"
	"github.com/abhisek/vibetune/internal/store"
)

type memPersister struct {
	mu     sync.Mutex
	loaded *Persisted
	saves  []Persisted
}

func (m *memPersister) Load(context.Context) (*Persisted, error) { return m.loaded, nil }

func (m *memPersister) Save(_ context.Context, p Persisted) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saves = append(m.saves, p)
	return nil
}

func (m *memPersister) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.saves)
}

func msg(id string) model.Message {
	return model.Message{ID: id, ConversationID: "c-1", Sender: model.SenderUser, Type: model.MessageText, Content: id, Version: 1}
}

func TestRetryQueueDeduplicates(t *testing.T) {
	s := New()
	s.AddToRetryQueue(msg("m-1"))
	s.AddToRetryQueue(msg("m-1"))
	s.AddToRetryQueue(msg("m-2"))

	q := s.Snapshot().RetryQueue
	require.Len(t, q, 2)
	assert.Equal(t, "m-1", q[0].ID)
	assert.Equal(t, "m-2", q[1].ID)

	s.RemoveFromRetryQueue("m-1")
	s.RemoveFromRetryQueue("missing")
	q = s.Snapshot().RetryQueue
	require.Len(t, q, 1)
	assert.Equal(t, "m-2", q[0].ID)
}

func TestMessagesAppendInOrder(t *testing.T) {
	s := New()
	s.AddMessage(msg("a"))
	s.AddMessage(msg("b"))
	s.UpdateMessage("a", func(m *model.Message) { m.Content = "edited" })
	s.UpdateMessage("missing", func(m *model.Message) { t.Error("called for missing id") })

	got := s.Snapshot().Messages
	require.Len(t, got, 2)
	assert.Equal(t, "edited", got[0].Content)
	assert.Equal(t, "b", got[1].ID)

	s.SetMessages(nil)
	assert.Empty(t, s.Snapshot().Messages)
}

func TestSnapshotIsACopy(t *testing.T) {
	s := New()
	s.SetUser(&model.Profile{ID: "u-1", Username: "ana"})
	s.AddMessage(model.Message{ID: "m", Feedback: &model.ProsodyFeedback{Rhythm: 1}})

	snap := s.Snapshot()
	snap.User.Username = "changed"
	snap.Messages[0].Feedback.Rhythm = 9

	again := s.Snapshot()
	assert.Equal(t, "ana", again.User.Username)
	assert.Equal(t, 1.0, again.Messages[0].Feedback.Rhythm)
}

func TestSyncStatusStampsLastSync(t *testing.T) {
	s := New()
	fixed := time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return fixed }

	s.UpdateSyncStatus(true)
	assert.True(t, s.Snapshot().Sync.Online)
	assert.Equal(t, fixed, s.Snapshot().Sync.LastSync)

	s.now = func() time.Time { return fixed.Add(time.Hour) }
	s.UpdateSyncStatus(false)
	got := s.Snapshot().Sync
	assert.False(t, got.Online)
	assert.Equal(t, fixed, got.LastSync, "going offline keeps the last sync time")
}

func TestSubscribeAndUnsubscribe(t *testing.T) {
	s := New()
	var seen []bool
	unsub := s.Subscribe(func(st State) { seen = append(seen, st.Recording) })

	s.SetRecording(true)
	s.SetRecording(false)
	unsub()
	s.SetRecording(true)

	assert.Equal(t, []bool{true, false}, seen)
}

func TestSubscriberMayReadStore(t *testing.T) {
	s := New()
	var user *model.Profile
	s.Subscribe(func(State) { user = s.Snapshot().User })

	s.SetUser(&model.Profile{ID: "u-1"})
	require.NotNil(t, user)
	assert.Equal(t, "u-1", user.ID)
}

func TestSubscribersNeverSeeOlderState(t *testing.T) {
	s := New()
	started := make(chan struct{})
	release := make(chan struct{})
	var (
		mu    sync.Mutex
		calls int
		last  State
	)
	s.Subscribe(func(st State) {
		mu.Lock()
		calls++
		first := calls == 1
		mu.Unlock()
		if first {
			close(started)
			<-release
		}
		mu.Lock()
		last = st
		mu.Unlock()
	})

	var wg sync.WaitGroup
	wg.Add(3)
	go func() {
		defer wg.Done()
		s.UpdateSyncStatus(true)
	}()
	<-started
	// Each mutation waits for its delivery, so they run side by side.
	go func() {
		defer wg.Done()
		s.SetSession(&model.Session{UserID: "u-1"})
	}()
	go func() {
		defer wg.Done()
		s.SetUser(&model.Profile{ID: "u-1", PlacementTestCompleted: true})
	}()

	deadline := time.Now().Add(2 * time.Second)
	for snap := s.Snapshot(); snap.User == nil || snap.Session == nil; snap = s.Snapshot() {
		require.True(t, time.Now().Before(deadline), "sign-in never reached the store")
		time.Sleep(time.Millisecond)
	}
	close(release)
	wg.Wait()

	mu.Lock()
	defer mu.Unlock()
	require.NotNil(t, last.User, "last delivered state lost the user")
	assert.NotNil(t, last.Session)
	assert.True(t, last.Sync.Online)
}

func TestPersistedSubsetOnly(t *testing.T) {
	p := &memPersister{}
	s := New(WithPersister(p))

	s.SetSession(&model.Session{UserID: "u-1"})
	s.SetRecording(true)
	s.AddMessage(msg("x"))
	s.UpdateSyncStatus(true)
	s.SetCurrentConversation(&model.Conversation{ID: "c-1"})
	assert.Equal(t, 0, p.count(), "non-persisted fields must not save")

	s.SetUser(&model.Profile{ID: "u-1"})
	s.SetPlacementProgress(model.PlacementProgress{Started: true, CurrentQuestion: 1})
	s.AddToRetryQueue(msg("m-1"))
	s.RemoveFromRetryQueue("m-1")
	assert.Equal(t, 4, p.count())

	last := p.saves[len(p.saves)-1]
	assert.Equal(t, "u-1", last.User.ID)
	assert.Equal(t, 1, last.Placement.CurrentQuestion)
	assert.Empty(t, last.RetryQueue)
}

func TestRestoreMergesPersistedSubset(t *testing.T) {
	p := &memPersister{loaded: &Persisted{
		User:       &model.Profile{ID: "u-1", Level: model.LevelBeginner},
		Placement:  model.PlacementProgress{Started: true, Completed: []int{0}},
		RetryQueue: []model.Message{msg("m-1")},
	}}
	s := New(WithPersister(p))
	require.NoError(t, s.Restore(context.Background()))

	st := s.Snapshot()
	require.NotNil(t, st.User)
	assert.Equal(t, model.LevelBeginner, st.User.Level)
	assert.Equal(t, []int{0}, st.Placement.Completed)
	assert.Len(t, st.RetryQueue, 1)
	assert.Nil(t, st.Session, "session is not persisted")
	assert.False(t, st.Recording)
	assert.Equal(t, 0, p.count(), "restore does not save")
}

func TestConcurrentMutations(t *testing.T) {
	s := New(WithPersister(&memPersister{}))
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			s.AddToRetryQueue(msg(fmt.Sprintf("m-%d", i%10)))
			s.UpdateSyncStatus(i%2 == 0)
			_ = s.Snapshot()
		}(i)
	}
	wg.Wait()
	assert.Len(t, s.Snapshot().RetryQueue, 10)
}

func TestSnapshotPersisterRoundTrip(t *testing.T) {
	name := strings.ReplaceAll(t.Name(), "/", "_")
	st, err := store.Open(fmt.Sprintf("file:state_%s?mode=memory&cache=shared", name))
	require.NoError(t, err)
	defer st.Close()
	ctx := context.Background()

	p := NewSnapshotPersister(st.SnapshotRepo(), nil)
	got, err := p.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, got)

	for i := 0; i < 7; i++ {
		require.NoError(t, p.Save(ctx, Persisted{
			User:      &model.Profile{ID: "u-1"},
			Placement: model.PlacementProgress{CurrentQuestion: i},
		}))
	}

	got, err = NewSnapshotPersister(st.SnapshotRepo(), nil).Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 6, got.Placement.CurrentQuestion)

	var n int
	require.NoError(t, st.DB().QueryRow("SELECT COUNT(*) FROM snapshots").Scan(&n))
	assert.Equal(t, snapshotKeep, n)
}

func TestSnapshotPersisterIgnoresUnknownVersion(t *testing.T) {
	name := strings.ReplaceAll(t.Name(), "/", "_")
	st, err := store.Open(fmt.Sprintf("file:state_%s?mode=memory&cache=shared", name))
	require.NoError(t, err)
	defer st.Close()
	ctx := context.Background()

	require.NoError(t, st.SnapshotRepo().Save(ctx, &store.Snapshot{
		Sequence:  1,
		Timestamp: time.Now(),
		Data:      store.SnapshotData{Version: 99, User: &model.Profile{ID: "u-1"}},
	}))

	got, err := NewSnapshotPersister(st.SnapshotRepo(), nil).Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, got)
}
