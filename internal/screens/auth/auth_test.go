package auth

import (
	"context"
	"errors"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/vibetune/internal/model"
	"github.com/abhisek/vibetune/internal/notify"
	"github.com/abhisek/vibetune/internal/router"
)

type fakeAuth struct {
	err     error
	signUps []string
	signIns []string
}

func (f *fakeAuth) SignUp(_ context.Context, email, _, username string) (*model.Session, error) {
	f.signUps = append(f.signUps, email+"|"+username)
	return &model.Session{UserID: "u-1"}, f.err
}

func (f *fakeAuth) SignIn(_ context.Context, email, _ string) (*model.Session, error) {
	f.signIns = append(f.signIns, email)
	return &model.Session{UserID: "u-1"}, f.err
}

type toasts struct{ titles []string }

func (t *toasts) Notify(title, _ string, _ notify.Variant) { t.titles = append(t.titles, title) }

func typeText(s *AuthScreen, text string) {
	for _, r := range text {
		s.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	}
}

func press(s *AuthScreen, code rune) tea.Cmd {
	_, cmd := s.Update(tea.KeyPressMsg{Code: code})
	return cmd
}

// run executes cmd and feeds its message back, as the program would.
func run(s *AuthScreen, cmd tea.Cmd) {
	if cmd == nil {
		return
	}
	if msg, ok := cmd().(submitResultMsg); ok {
		s.Update(msg)
	}
}

func TestInlineValidation(t *testing.T) {
	fa := &fakeAuth{}
	s := New(fa, nil, ModeSignIn)
	s.Init()

	press(s, tea.KeyEnter) // to password
	typeText(s, "abc")
	cmd := press(s, tea.KeyEnter)
	run(s, cmd)

	if got := s.FieldError(fieldEmail); got != "Email is required" {
		t.Errorf("email error = %q", got)
	}
	if got := s.FieldError(fieldPassword); got != "Password must be at least 6 characters" {
		t.Errorf("password error = %q", got)
	}
	if len(fa.signIns) != 0 {
		t.Error("invalid form must not reach the backend")
	}
}

func TestSignInSubmits(t *testing.T) {
	fa := &fakeAuth{}
	s := New(fa, nil, ModeSignIn)
	s.Init()

	typeText(s, "ana@example.com")
	press(s, tea.KeyTab)
	typeText(s, "secret1")
	cmd := press(s, tea.KeyEnter)
	if !s.Loading() {
		t.Error("expected loading while the request is in flight")
	}
	run(s, cmd)

	if len(fa.signIns) != 1 || fa.signIns[0] != "ana@example.com" {
		t.Errorf("sign ins = %v", fa.signIns)
	}
	if s.Loading() {
		t.Error("loading should clear after the result")
	}
}

func TestSignUpDefaultsUsernameToEmailName(t *testing.T) {
	fa := &fakeAuth{}
	s := New(fa, nil, ModeSignUp)
	s.Init()

	typeText(s, "ana@example.com")
	press(s, tea.KeyEnter)
	typeText(s, "secret1")
	press(s, tea.KeyEnter) // to username
	run(s, press(s, tea.KeyEnter))

	if len(fa.signUps) != 1 || fa.signUps[0] != "ana@example.com|ana" {
		t.Errorf("sign ups = %v", fa.signUps)
	}
}

func TestErrorsByKind(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		formErr  string
		toastLen int
	}{
		{"bad credentials", model.E(model.KindUnauthorized, "sign in", errors.New("invalid login credentials")), "invalid login credentials", 0},
		{"validation", model.Validationf("sign up", "an account for a@b.c already exists"), "an account for a@b.c already exists", 0},
		{"network", model.E(model.KindNetwork, "sign in", errors.New("dial tcp: refused")), "", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := &toasts{}
			s := New(&fakeAuth{err: tt.err}, n, ModeSignIn)
			s.Init()
			typeText(s, "a@b.c")
			press(s, tea.KeyTab)
			typeText(s, "secret1")
			run(s, press(s, tea.KeyEnter))

			if s.FormError() != tt.formErr {
				t.Errorf("form error = %q, want %q", s.FormError(), tt.formErr)
			}
			if len(n.titles) != tt.toastLen {
				t.Errorf("toasts = %v, want %d", n.titles, tt.toastLen)
			}
		})
	}
}

func TestToggleModeAndBack(t *testing.T) {
	s := New(&fakeAuth{}, nil, ModeSignIn)
	s.Init()

	s.Update(tea.KeyPressMsg{Code: 't', Mod: tea.ModCtrl})
	if s.Mode() != ModeSignUp || s.Title() != "Sign Up" {
		t.Errorf("mode = %v, want sign up", s.Mode())
	}

	cmd := press(s, tea.KeyEscape)
	msg, ok := cmd().(router.NavigateMsg)
	if !ok || msg.Path != router.RouteOnboarding {
		t.Errorf("esc = %+v, want navigate to onboarding", msg)
	}
}

func TestParseMode(t *testing.T) {
	if ParseMode("signup") != ModeSignUp || ParseMode("") != ModeSignIn || ParseMode("signin") != ModeSignIn {
		t.Error("ParseMode mismatch")
	}
}

func TestCloseDropsLateErrors(t *testing.T) {
	n := &toasts{}
	s := New(&fakeAuth{}, n, ModeSignIn)
	s.Close()
	s.Update(submitResultMsg{err: errors.New("late")})
	if len(n.titles) != 0 {
		t.Errorf("toasts after close = %v", n.titles)
	}
}
