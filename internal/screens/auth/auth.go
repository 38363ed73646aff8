// Package auth is the sign-in and sign-up form.
package auth

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/vibetune/internal/model"
	"github.com/abhisek/vibetune/internal/notify"
	"github.com/abhisek/vibetune/internal/router"
	"github.com/abhisek/vibetune/internal/screen"
	"github.com/abhisek/vibetune/internal/ui/components"
	"github.com/abhisek/vibetune/internal/ui/layout"
	"github.com/abhisek/vibetune/internal/ui/theme"
)

// MinPasswordLen is the shortest password the form accepts.
const MinPasswordLen = 6

// Mode selects sign-in or sign-up.
type Mode int

const (
	ModeSignIn Mode = iota
	ModeSignUp
)

// ParseMode maps the navigation param to a Mode. Anything but "signup" is
// sign-in.
func ParseMode(s string) Mode {
	if s == "signup" {
		return ModeSignUp
	}
	return ModeSignIn
}

// Authenticator is the subset of the backend the form needs. A successful
// call is observed through the session subscription, not the return value.
type Authenticator interface {
	SignUp(ctx context.Context, email, password, username string) (*model.Session, error)
	SignIn(ctx context.Context, email, password string) (*model.Session, error)
}

const (
	fieldEmail = iota
	fieldPassword
	fieldUsername
)

type submitResultMsg struct {
	err error
}

// AuthScreen collects credentials and signs the user in or up.
type AuthScreen struct {
	auth     Authenticator
	notifier notify.Notifier

	mode    Mode
	fields  []components.TextInput
	focus   int
	loading bool
	formErr string

	ctx    context.Context
	cancel context.CancelFunc
}

var _ screen.Screen = (*AuthScreen)(nil)
var _ screen.KeyHintProvider = (*AuthScreen)(nil)
var _ screen.Closer = (*AuthScreen)(nil)

func New(a Authenticator, n notify.Notifier, mode Mode) *AuthScreen {
	if n == nil {
		n = notify.Discard
	}
	ctx, cancel := context.WithCancel(context.Background())
	s := &AuthScreen{
		auth:     a,
		notifier: n,
		mode:     mode,
		fields: []components.TextInput{
			components.NewTextInput("Email", "you@example.com", false, 254),
			components.NewTextInput("Password", "at least 6 characters", true, 72),
			components.NewTextInput("Username", "optional", false, 40),
		},
		ctx:    ctx,
		cancel: cancel,
	}
	return s
}

func (s *AuthScreen) Title() string {
	if s.mode == ModeSignUp {
		return "Sign Up"
	}
	return "Log In"
}

func (s *AuthScreen) Init() tea.Cmd {
	return s.fields[fieldEmail].Focus()
}

func (s *AuthScreen) Close() {
	s.cancel()
}

func (s *AuthScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "Enter", Description: "Submit"},
		{Key: "Ctrl+T", Description: "Switch sign in/up"},
		{Key: "Esc", Description: "Back"},
	}
}

// Mode returns the current form mode.
func (s *AuthScreen) Mode() Mode { return s.mode }

// Loading reports whether a submit is in flight.
func (s *AuthScreen) Loading() bool { return s.loading }

// FieldError returns the inline message under field i.
func (s *AuthScreen) FieldError(i int) string { return s.fields[i].Error() }

// FormError returns the message shown above the form.
func (s *AuthScreen) FormError() string { return s.formErr }

func (s *AuthScreen) visibleFields() int {
	if s.mode == ModeSignUp {
		return len(s.fields)
	}
	return fieldUsername
}

func (s *AuthScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case submitResultMsg:
		s.loading = false
		if msg.err != nil {
			s.handleError(msg.err)
		}
		return s, nil

	case tea.KeyPressMsg:
		if s.loading {
			return s, nil
		}
		switch msg.String() {
		case "esc":
			return s, router.Navigate(router.RouteOnboarding)
		case "ctrl+t":
			s.mode = 1 - s.mode
			s.formErr = ""
			if s.focus >= s.visibleFields() {
				return s, s.setFocus(fieldEmail)
			}
			return s, nil
		case "tab", "down":
			return s, s.setFocus((s.focus + 1) % s.visibleFields())
		case "shift+tab", "up":
			return s, s.setFocus((s.focus - 1 + s.visibleFields()) % s.visibleFields())
		case "enter":
			if s.focus < s.visibleFields()-1 {
				return s, s.setFocus(s.focus + 1)
			}
			_, cmd := s.submitButton().Update(msg)
			return s, cmd
		}
	}

	var cmd tea.Cmd
	s.fields[s.focus], cmd = s.fields[s.focus].Update(msg)
	return s, cmd
}

func (s *AuthScreen) setFocus(i int) tea.Cmd {
	s.fields[s.focus].Blur()
	s.focus = i
	return s.fields[i].Focus()
}

// validate sets inline messages and reports whether the form may be sent.
func (s *AuthScreen) validate() bool {
	ok := true
	if strings.TrimSpace(s.fields[fieldEmail].Value()) == "" {
		s.fields[fieldEmail].SetError("Email is required")
		ok = false
	}
	if len(s.fields[fieldPassword].Value()) < MinPasswordLen {
		s.fields[fieldPassword].SetError("Password must be at least 6 characters")
		ok = false
	}
	return ok
}

func (s *AuthScreen) submit() tea.Cmd {
	s.formErr = ""
	if !s.validate() {
		return nil
	}
	s.loading = true

	email := strings.TrimSpace(s.fields[fieldEmail].Value())
	password := s.fields[fieldPassword].Value()
	username := strings.TrimSpace(s.fields[fieldUsername].Value())
	if username == "" {
		username, _, _ = strings.Cut(email, "@")
	}
	mode, ctx := s.mode, s.ctx

	return func() tea.Msg {
		var err error
		if mode == ModeSignUp {
			_, err = s.auth.SignUp(ctx, email, password, username)
		} else {
			_, err = s.auth.SignIn(ctx, email, password)
		}
		return submitResultMsg{err: err}
	}
}

func (s *AuthScreen) handleError(err error) {
	if s.ctx.Err() != nil {
		return
	}
	switch model.KindOf(err) {
	case model.KindValidation, model.KindUnauthorized:
		s.formErr = model.Detail(err)
	default:
		s.notifier.Notify("Error", model.Detail(err), notify.VariantError)
	}
}

func (s *AuthScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString(theme.Title.Render(s.Title()))
	b.WriteString("\n")
	if s.mode == ModeSignUp {
		b.WriteString(theme.Subtitle.Render("Create your VibeTune account"))
	} else {
		b.WriteString(theme.Subtitle.Render("Welcome back"))
	}
	b.WriteString("\n\n")
	if s.formErr != "" {
		b.WriteString(theme.ErrorText.Render(s.formErr))
		b.WriteString("\n\n")
	}
	for i := 0; i < s.visibleFields(); i++ {
		b.WriteString(s.fields[i].View())
		b.WriteString("\n\n")
	}
	b.WriteString(s.submitButton().View())
	b.WriteString("\n\n")
	switch {
	case s.loading:
		b.WriteString(theme.Hint.Render("Please wait..."))
	case s.mode == ModeSignUp:
		b.WriteString(theme.Hint.Render("Already have an account? Ctrl+T to log in"))
	default:
		b.WriteString(theme.Hint.Render("New here? Ctrl+T to sign up"))
	}

	form := theme.Card.Width(min(60, width-4)).Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, form)
}

// submitButton is highlighted once the last field has focus.
func (s *AuthScreen) submitButton() components.Button {
	label := "Sign In"
	if s.mode == ModeSignUp {
		label = "Create Account"
	}
	return components.NewButton(label, !s.loading && s.focus == s.visibleFields()-1, s.submit)
}
