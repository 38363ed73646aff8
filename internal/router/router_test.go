package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/vibetune/internal/model"
	"github.com/abhisek/vibetune/internal/screen"
)

// stubScreen is a minimal screen for testing.
type stubScreen struct {
	title   string
	initRan bool
	closed  int
}

func (s *stubScreen) Init() tea.Cmd {
	s.initRan = true
	return nil
}
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return s.title }
func (s *stubScreen) Title() string                           { return s.title }
func (s *stubScreen) Close()                                  { s.closed++ }

func TestPush(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	r := New(s1)

	s2 := &stubScreen{title: "second"}
	r.Push(s2)

	if r.Depth() != 2 {
		t.Errorf("expected depth 2, got %d", r.Depth())
	}
	if r.Active().Title() != "second" {
		t.Errorf("expected active 'second', got %q", r.Active().Title())
	}
	if !s2.initRan {
		t.Error("expected Init() to run on pushed screen")
	}
	if s1.closed != 0 {
		t.Error("push must not close the covered screen")
	}
}

func TestPopClosesScreen(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	r := New(s1)

	s2 := &stubScreen{title: "second"}
	r.Push(s2)
	r.Update(PopScreenMsg{})

	if r.Depth() != 1 {
		t.Errorf("expected depth 1, got %d", r.Depth())
	}
	if r.Active().Title() != "first" {
		t.Errorf("expected active 'first', got %q", r.Active().Title())
	}
	if s2.closed != 1 {
		t.Errorf("popped screen closed %d times, want 1", s2.closed)
	}
}

func TestPopNoopAtBottom(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	r := New(s1)

	r.Pop()

	if r.Depth() != 1 {
		t.Errorf("expected depth 1 after pop at bottom, got %d", r.Depth())
	}
	if s1.closed != 0 {
		t.Error("bottom screen must not be closed by a no-op pop")
	}
}

func TestReplace(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	r := New(s1)

	s2 := &stubScreen{title: "second"}
	r.Replace(s2)

	if r.Depth() != 1 {
		t.Errorf("expected depth 1 after replace, got %d", r.Depth())
	}
	if r.Active().Title() != "second" {
		t.Errorf("expected active 'second', got %q", r.Active().Title())
	}
	if !s2.initRan {
		t.Error("expected Init() to run on replaced screen")
	}
	if s1.closed != 1 {
		t.Errorf("replaced screen closed %d times, want 1", s1.closed)
	}
}

func TestReplaceScreenMsg(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	r := New(s1)

	s2 := &stubScreen{title: "second"}
	r.Update(ReplaceScreenMsg{Screen: s2})

	if r.Active().Title() != "second" {
		t.Errorf("expected active 'second', got %q", r.Active().Title())
	}
	if !s2.initRan {
		t.Error("expected Init() to run via ReplaceScreenMsg")
	}
}

func TestReplacePreservesStackDepth(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	r := New(s1)

	s2 := &stubScreen{title: "second"}
	r.Push(s2)

	s3 := &stubScreen{title: "third"}
	r.Replace(s3)

	if r.Depth() != 2 {
		t.Errorf("expected depth 2, got %d", r.Depth())
	}
	if r.Active().Title() != "third" {
		t.Errorf("expected active 'third', got %q", r.Active().Title())
	}
}

func TestResetClosesWholeStack(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	s2 := &stubScreen{title: "second"}
	r := New(s1)
	r.Push(s2)

	s3 := &stubScreen{title: "third"}
	r.Reset(s3)

	if r.Depth() != 1 || r.Active() != s3 {
		t.Errorf("stack = depth %d active %q, want only third", r.Depth(), r.Active().Title())
	}
	if s1.closed != 1 || s2.closed != 1 {
		t.Errorf("closed counts = %d, %d, want 1, 1", s1.closed, s2.closed)
	}
}

func TestModeFor(t *testing.T) {
	tests := []struct {
		name    string
		session bool
		profile *model.Profile
		want    Mode
	}{
		{"no session", false, &model.Profile{PlacementTestCompleted: true}, Unauthenticated},
		{"session without profile", true, nil, Unauthenticated},
		{"not assessed", true, &model.Profile{}, AwaitingAssessment},
		{"assessed", true, &model.Profile{PlacementTestCompleted: true}, Ready},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ModeFor(tt.session, tt.profile); got != tt.want {
				t.Errorf("ModeFor = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		mode       Mode
		path       Route
		want       Route
		redirected bool
	}{
		{Unauthenticated, RouteOnboarding, RouteOnboarding, false},
		{Unauthenticated, RouteAuth, RouteAuth, false},
		{Unauthenticated, RouteChat, RouteOnboarding, true},
		{Unauthenticated, "/nope", RouteOnboarding, true},

		{AwaitingAssessment, RouteLevelSelect, RouteLevelSelect, false},
		{AwaitingAssessment, RoutePlacementTest, RoutePlacementTest, false},
		{AwaitingAssessment, RouteChat, RouteLevelSelect, true},
		{AwaitingAssessment, RouteOnboarding, RouteLevelSelect, true},

		{Ready, RouteChat, RouteChat, false},
		{Ready, RouteHistory, RouteHistory, false},
		{Ready, RouteProfile, RouteProfile, false},
		{Ready, RouteSettings, RouteSettings, false},
		{Ready, RoutePlacementTest, RoutePlacementTest, false},
		{Ready, RouteOnboarding, RouteChat, true},
		{Ready, RouteAuth, RouteChat, true},
		{Ready, RouteLevelSelect, RouteChat, true},
		{Ready, "/nope", RouteNotFound, false},
	}
	for _, tt := range tests {
		got, redirected := Resolve(tt.mode, tt.path)
		if got != tt.want || redirected != tt.redirected {
			t.Errorf("Resolve(%v, %q) = %q, %v; want %q, %v", tt.mode, tt.path, got, redirected, tt.want, tt.redirected)
		}
	}
}

func TestDefaultIsAllowed(t *testing.T) {
	for _, m := range []Mode{Unauthenticated, AwaitingAssessment, Ready} {
		def := Default(m)
		found := false
		for _, r := range Allowed(m) {
			if r == def {
				found = true
			}
		}
		if !found {
			t.Errorf("Default(%v) = %q is not in Allowed", m, def)
		}
	}
}

func TestNavigateParams(t *testing.T) {
	msg, ok := Navigate(RouteAuth, "mode", "signup")().(NavigateMsg)
	if !ok {
		t.Fatal("Navigate did not produce a NavigateMsg")
	}
	if msg.Path != RouteAuth || msg.Params["mode"] != "signup" {
		t.Errorf("msg = %+v, want /auth with mode=signup", msg)
	}

	msg = Navigate(RouteChat)().(NavigateMsg)
	if msg.Params != nil {
		t.Errorf("params = %v, want nil", msg.Params)
	}
}
