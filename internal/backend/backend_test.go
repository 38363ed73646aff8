package backend

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/abhisek/vibetune/internal/model"
)

func TestSubscribersNotifyAndRemove(t *testing.T) {
	var subs Subscribers
	var a, b []*model.Session

	unsubA := subs.Add(func(s *model.Session) { a = append(a, s) })
	subs.Add(func(s *model.Session) { b = append(b, s) })

	subs.Notify(&model.Session{UserID: "u-1"})
	unsubA()
	subs.Notify(nil)

	if len(a) != 1 || a[0].UserID != "u-1" {
		t.Errorf("a = %v, want one u-1 session", a)
	}
	if len(b) != 2 || b[1] != nil {
		t.Errorf("b = %v, want [u-1 nil]", b)
	}
	if subs.Len() != 1 {
		t.Errorf("Len() = %d, want 1", subs.Len())
	}
}

func TestSubscribersReceiveCopies(t *testing.T) {
	var subs Subscribers
	subs.Add(func(s *model.Session) { s.UserID = "mutated" })

	sess := &model.Session{UserID: "u-1"}
	subs.Notify(sess)
	if sess.UserID != "u-1" {
		t.Errorf("subscriber mutated the caller's session: %q", sess.UserID)
	}
}

type blockingPing struct{ Backend }

func (blockingPing) Ping(ctx context.Context) error {
	<-ctx.Done()
	return ctx.Err()
}

func TestWithTimeoutBoundsCalls(t *testing.T) {
	b := WithTimeout(blockingPing{}, 20*time.Millisecond)
	start := time.Now()
	err := b.Ping(context.Background())
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("err = %v, want deadline exceeded", err)
	}
	if time.Since(start) > time.Second {
		t.Error("Ping was not bounded by the timeout")
	}
}

func TestWithTimeoutDisabled(t *testing.T) {
	inner := blockingPing{}
	if got := WithTimeout(inner, 0); got != Backend(inner) {
		t.Errorf("WithTimeout(b, 0) = %T, want b unchanged", got)
	}
}
