// Package notify queues short-lived toast notifications for the TUI.
package notify

import (
	"sync"
	"time"
)

// Variant selects a toast's styling.
type Variant int

const (
	VariantDefault Variant = iota
	VariantSuccess
	VariantError
)

// DefaultTTL is how long a toast stays visible.
const DefaultTTL = 4 * time.Second

// Toast is a transient notification.
type Toast struct {
	ID          int
	Title       string
	Description string
	Variant     Variant
	Expires     time.Time
}

// Notifier is the sink components show toasts through.
type Notifier interface {
	Notify(title, description string, v Variant)
}

// Center holds the active toasts. It is safe for concurrent use.
type Center struct {
	mu     sync.Mutex
	nextID int
	toasts []Toast
	ttl    time.Duration
	now    func() time.Time

	// onChange, when set, is called after a toast is added.
	onChange func()
}

// NewCenter returns a Center whose toasts expire after ttl.
func NewCenter(ttl time.Duration) *Center {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Center{ttl: ttl, now: time.Now}
}

// OnChange registers fn to run after each new toast.
func (c *Center) OnChange(fn func()) {
	c.mu.Lock()
	c.onChange = fn
	c.mu.Unlock()
}

func (c *Center) Notify(title, description string, v Variant) {
	c.mu.Lock()
	c.nextID++
	c.toasts = append(c.toasts, Toast{
		ID:          c.nextID,
		Title:       title,
		Description: description,
		Variant:     v,
		Expires:     c.now().Add(c.ttl),
	})
	fn := c.onChange
	c.mu.Unlock()

	if fn != nil {
		fn()
	}
}

// Active drops expired toasts and returns the rest, oldest first.
func (c *Center) Active() []Toast {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := c.now()
	live := c.toasts[:0]
	for _, t := range c.toasts {
		if now.Before(t.Expires) {
			live = append(live, t)
		}
	}
	c.toasts = live
	return append([]Toast(nil), live...)
}

// Dismiss removes the toast with the given id.
func (c *Center) Dismiss(id int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, t := range c.toasts {
		if t.ID == id {
			c.toasts = append(c.toasts[:i], c.toasts[i+1:]...)
			return
		}
	}
}

// Discard drops toasts.
var Discard Notifier = discard{}

type discard struct{}

func (discard) Notify(string, string, Variant) {}
