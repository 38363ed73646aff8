package onboarding

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/vibetune/internal/router"
)

func key(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func TestStepsAdvanceAndRewind(t *testing.T) {
	o := New()

	o.Update(key(tea.KeyRight))
	if o.Step() != 1 {
		t.Fatalf("step = %d, want 1", o.Step())
	}
	o.Update(key(tea.KeyEnter))
	if o.Step() != 2 {
		t.Fatalf("step = %d, want 2", o.Step())
	}

	// The last step does not advance further.
	o.Update(key(tea.KeyRight))
	if o.Step() != 2 {
		t.Errorf("step = %d past the end, want 2", o.Step())
	}

	o.Update(key(tea.KeyLeft))
	o.Update(key(tea.KeyLeft))
	o.Update(key(tea.KeyLeft))
	if o.Step() != 0 {
		t.Errorf("step = %d, want 0", o.Step())
	}
}

func TestLastStepNavigatesToAuth(t *testing.T) {
	tests := []struct {
		name     string
		keys     []rune
		wantMode string
	}{
		{"sign up", []rune{tea.KeyEnter}, "signup"},
		{"log in", []rune{tea.KeyDown, tea.KeyEnter}, "signin"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := New()
			o.Update(key(tea.KeyRight))
			o.Update(key(tea.KeyRight))

			var cmd tea.Cmd
			for _, k := range tt.keys {
				_, cmd = o.Update(key(k))
			}
			if cmd == nil {
				t.Fatal("expected a navigation command")
			}
			msg, ok := cmd().(router.NavigateMsg)
			if !ok {
				t.Fatalf("expected NavigateMsg, got %T", cmd())
			}
			if msg.Path != router.RouteAuth || msg.Params["mode"] != tt.wantMode {
				t.Errorf("navigate = %+v, want /auth mode=%s", msg, tt.wantMode)
			}
		})
	}
}

func TestViewShowsStepContent(t *testing.T) {
	o := New()
	if v := o.View(100, 40); !strings.Contains(v, "Welcome to VibeTune") {
		t.Errorf("first step view missing title:\n%s", v)
	}

	o.Update(key(tea.KeyRight))
	v := o.View(100, 40)
	for _, f := range Features {
		if !strings.Contains(v, f.Title) {
			t.Errorf("features step missing %q", f.Title)
		}
	}
}

func TestTickKeepsAnimating(t *testing.T) {
	o := New()
	_, cmd := o.Update(tickMsg(time.Now()))
	if cmd == nil {
		t.Error("tick should schedule another tick")
	}
	if o.tickCount != 1 {
		t.Errorf("tickCount = %d, want 1", o.tickCount)
	}
}
