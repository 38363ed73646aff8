// Package state holds the process-wide session state: who is signed in,
// the active conversation, placement progress, connectivity and the queue of
// messages waiting to sync.
package state

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/abhisek/vibetune/internal/model"
)

// State is an immutable view of the store. Values handed to subscribers and
// returned from Snapshot are deep copies.
type State struct {
	User                *model.Profile
	Session             *model.Session
	CurrentConversation *model.Conversation
	Messages            []model.Message
	Placement           model.PlacementProgress
	Recording           bool
	Sync                model.SyncStatus
	RetryQueue          []model.Message
}

func (s State) clone() State {
	c := s
	c.User = s.User.Clone()
	if s.Session != nil {
		sess := *s.Session
		c.Session = &sess
	}
	if s.CurrentConversation != nil {
		conv := *s.CurrentConversation
		c.CurrentConversation = &conv
	}
	c.Messages = cloneMessages(s.Messages)
	c.Placement = s.Placement.Clone()
	c.RetryQueue = cloneMessages(s.RetryQueue)
	return c
}

func cloneMessages(in []model.Message) []model.Message {
	if in == nil {
		return nil
	}
	out := make([]model.Message, len(in))
	for i, m := range in {
		out[i] = m.Clone()
	}
	return out
}

// Persisted is the subset of State that survives restarts.
type Persisted struct {
	User       *model.Profile
	Placement  model.PlacementProgress
	RetryQueue []model.Message
}

// Persister loads and saves the persisted subset.
type Persister interface {
	Load(ctx context.Context) (*Persisted, error)
	Save(ctx context.Context, p Persisted) error
}

// Store is the subscribable state container. Mutations come from the UI loop
// and from background workers, so every access goes through the lock.
// Subscribers run after the lock is released.
type Store struct {
	mu    sync.RWMutex
	state State
	gen   uint64

	// persistMu orders saves; savedGen drops a save that lost the race to a
	// newer one.
	persistMu sync.Mutex
	savedGen  uint64

	subMu  sync.Mutex
	nextID int
	subs   map[int]func(State)

	// notifyMu serializes deliveries; notifiedGen drops a state older than
	// one subscribers have already seen.
	notifyMu    sync.Mutex
	notifiedGen uint64

	persister Persister
	logger    *zap.Logger
	now       func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithPersister saves the persisted subset after each change to it.
func WithPersister(p Persister) Option {
	return func(s *Store) { s.persister = p }
}

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(s *Store) { s.logger = l }
}

// New returns an empty store.
func New(opts ...Option) *Store {
	s := &Store{
		subs:   make(map[int]func(State)),
		logger: zap.NewNop(),
		now:    time.Now,
	}
	for _, o := range opts {
		o(s)
	}
	s.logger = s.logger.Named("state")
	return s
}

// Restore merges the persisted subset into the current state. It does not
// save or notify.
func (s *Store) Restore(ctx context.Context) error {
	if s.persister == nil {
		return nil
	}
	p, err := s.persister.Load(ctx)
	if err != nil {
		return err
	}
	if p == nil {
		return nil
	}
	s.mu.Lock()
	s.state.User = p.User.Clone()
	s.state.Placement = p.Placement.Clone()
	s.state.RetryQueue = cloneMessages(p.RetryQueue)
	s.mu.Unlock()
	s.logger.Debug("restored persisted state",
		zap.Bool("has_user", p.User != nil),
		zap.Int("retry_queue", len(p.RetryQueue)),
	)
	return nil
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.clone()
}

// Subscribe registers fn to be called with the new state after every
// mutation. Deliveries never go back in time: a state older than the last one
// delivered is skipped. fn must not mutate the store. The returned function
// unsubscribes.
func (s *Store) Subscribe(fn func(State)) func() {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	return func() {
		s.subMu.Lock()
		delete(s.subs, id)
		s.subMu.Unlock()
	}
}

// update applies fn under the lock, then persists (when persisted is true)
// and notifies subscribers.
func (s *Store) update(persisted bool, fn func(*State)) {
	s.mu.Lock()
	fn(&s.state)
	s.gen++
	gen := s.gen
	next := s.state.clone()
	s.mu.Unlock()

	if persisted {
		s.persistMu.Lock()
		if gen > s.savedGen {
			s.savedGen = gen
			s.persist(next)
		}
		s.persistMu.Unlock()
	}

	s.notify(gen, next)
}

func (s *Store) notify(gen uint64, next State) {
	s.notifyMu.Lock()
	defer s.notifyMu.Unlock()
	if gen < s.notifiedGen {
		return
	}
	s.notifiedGen = gen

	s.subMu.Lock()
	fns := make([]func(State), 0, len(s.subs))
	for _, f := range s.subs {
		fns = append(fns, f)
	}
	s.subMu.Unlock()
	for _, f := range fns {
		f(next.clone())
	}
}

func (s *Store) persist(st State) {
	if s.persister == nil {
		return
	}
	err := s.persister.Save(context.Background(), Persisted{
		User:       st.User,
		Placement:  st.Placement,
		RetryQueue: st.RetryQueue,
	})
	if err != nil {
		s.logger.Warn("persist state", zap.Error(err))
	}
}

func (s *Store) SetUser(p *model.Profile) {
	s.update(true, func(st *State) { st.User = p.Clone() })
}

func (s *Store) SetSession(sess *model.Session) {
	s.update(false, func(st *State) {
		if sess == nil {
			st.Session = nil
			return
		}
		c := *sess
		st.Session = &c
	})
}

func (s *Store) SetCurrentConversation(conv *model.Conversation) {
	s.update(false, func(st *State) {
		if conv == nil {
			st.CurrentConversation = nil
			return
		}
		c := *conv
		st.CurrentConversation = &c
	})
}

// AddMessage appends m to the message list.
func (s *Store) AddMessage(m model.Message) {
	s.update(false, func(st *State) { st.Messages = append(st.Messages, m.Clone()) })
}

// UpdateMessage applies fn to the message with the given id, if present.
func (s *Store) UpdateMessage(id string, fn func(*model.Message)) {
	s.update(false, func(st *State) {
		for i := range st.Messages {
			if st.Messages[i].ID == id {
				fn(&st.Messages[i])
				return
			}
		}
	})
}

func (s *Store) SetMessages(msgs []model.Message) {
	s.update(false, func(st *State) { st.Messages = cloneMessages(msgs) })
}

func (s *Store) SetPlacementProgress(p model.PlacementProgress) {
	s.update(true, func(st *State) { st.Placement = p.Clone() })
}

func (s *Store) SetRecording(on bool) {
	s.update(false, func(st *State) { st.Recording = on })
}

// UpdateSyncStatus records connectivity. Going online stamps LastSync.
func (s *Store) UpdateSyncStatus(online bool) {
	now := s.now()
	s.update(false, func(st *State) {
		st.Sync.Online = online
		if online {
			st.Sync.LastSync = now
		}
	})
}

// AddToRetryQueue enqueues m unless a message with the same id is queued.
func (s *Store) AddToRetryQueue(m model.Message) {
	s.update(true, func(st *State) {
		for _, q := range st.RetryQueue {
			if q.ID == m.ID {
				return
			}
		}
		st.RetryQueue = append(st.RetryQueue, m.Clone())
	})
}

// RemoveFromRetryQueue drops the queued message with the given id.
func (s *Store) RemoveFromRetryQueue(id string) {
	s.update(true, func(st *State) {
		out := st.RetryQueue[:0]
		for _, q := range st.RetryQueue {
			if q.ID != id {
				out = append(out, q)
			}
		}
		st.RetryQueue = out
	})
}
