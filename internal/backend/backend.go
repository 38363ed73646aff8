// Package backend defines the identity and persistence service VibeTune
// talks to. Implementations live in the local and supabase subpackages.
package backend

import (
	"context"
	"sync"

	"github.com/abhisek/vibetune/internal/model"
)

// Backend is the identity provider plus the profile, conversation and
// message tables. Errors are classified with model.Kind.
type Backend interface {
	// SignUp registers a new account and creates its profile row.
	SignUp(ctx context.Context, email, password, username string) (*model.Session, error)

	// SignIn authenticates with email and password.
	SignIn(ctx context.Context, email, password string) (*model.Session, error)

	// SignOut ends the current session. Subscribers receive nil.
	SignOut(ctx context.Context) error

	// CurrentSession returns the active session, or nil.
	CurrentSession(ctx context.Context) (*model.Session, error)

	// Subscribe registers fn for session changes and returns a function that
	// removes it.
	Subscribe(fn func(*model.Session)) (unsubscribe func())

	GetProfile(ctx context.Context, id string) (*model.Profile, error)
	UpdateProfile(ctx context.Context, id string, upd model.ProfileUpdate) (*model.Profile, error)

	CreateConversation(ctx context.Context, conv model.Conversation) (*model.Conversation, error)

	// ListConversations returns a profile's conversations, newest first.
	ListConversations(ctx context.Context, profileID string) ([]model.Conversation, error)

	InsertMessage(ctx context.Context, msg model.Message) error

	// ListMessages returns a conversation's messages in created_at order.
	ListMessages(ctx context.Context, conversationID string) ([]model.Message, error)

	RateMessage(ctx context.Context, rating model.FeedbackRating) error

	// Ping checks reachability.
	Ping(ctx context.Context) error
}

// Subscribers fans session changes out to registered callbacks. Callbacks
// run synchronously on the notifying goroutine, outside the lock.
type Subscribers struct {
	mu   sync.Mutex
	next int
	fns  map[int]func(*model.Session)
}

// Add registers fn and returns its removal function.
func (s *Subscribers) Add(fn func(*model.Session)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fns == nil {
		s.fns = make(map[int]func(*model.Session))
	}
	id := s.next
	s.next++
	s.fns[id] = fn
	return func() {
		s.mu.Lock()
		delete(s.fns, id)
		s.mu.Unlock()
	}
}

// Notify calls every subscriber with sess.
func (s *Subscribers) Notify(sess *model.Session) {
	s.mu.Lock()
	fns := make([]func(*model.Session), 0, len(s.fns))
	for _, fn := range s.fns {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		var c *model.Session
		if sess != nil {
			cp := *sess
			c = &cp
		}
		fn(c)
	}
}

// Len returns the number of subscribers.
func (s *Subscribers) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.fns)
}
