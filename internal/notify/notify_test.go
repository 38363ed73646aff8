package notify

import (
	"testing"
	"time"
)

func TestCenterExpiresToasts(t *testing.T) {
	c := NewCenter(time.Second)
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }

	c.Notify("Recording Started", "Speak clearly into your microphone", VariantDefault)
	now = now.Add(500 * time.Millisecond)
	c.Notify("Test Complete!", "", VariantSuccess)

	if got := c.Active(); len(got) != 2 {
		t.Fatalf("active = %d, want 2", len(got))
	}

	now = now.Add(600 * time.Millisecond)
	got := c.Active()
	if len(got) != 1 || got[0].Title != "Test Complete!" {
		t.Errorf("active = %+v, want only the newer toast", got)
	}
}

func TestCenterDismissAndOnChange(t *testing.T) {
	c := NewCenter(0)
	calls := 0
	c.OnChange(func() { calls++ })

	c.Notify("a", "", VariantError)
	c.Notify("b", "", VariantDefault)
	if calls != 2 {
		t.Errorf("onChange calls = %d, want 2", calls)
	}

	first := c.Active()[0]
	c.Dismiss(first.ID)
	got := c.Active()
	if len(got) != 1 || got[0].Title != "b" {
		t.Errorf("active = %+v, want [b]", got)
	}
}
