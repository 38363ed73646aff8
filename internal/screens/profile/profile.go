// Package profile shows the signed-in learner's account and level.
package profile

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/vibetune/internal/model"
	"github.com/abhisek/vibetune/internal/notify"
	"github.com/abhisek/vibetune/internal/router"
	"github.com/abhisek/vibetune/internal/screen"
	"github.com/abhisek/vibetune/internal/state"
	"github.com/abhisek/vibetune/internal/ui/components"
	"github.com/abhisek/vibetune/internal/ui/layout"
	"github.com/abhisek/vibetune/internal/ui/theme"
)

// SignOuter ends the backend session.
type SignOuter interface {
	SignOut(ctx context.Context) error
}

type signedOutMsg struct {
	err error
}

// ProfileScreen shows the profile and offers retake and sign-out.
type ProfileScreen struct {
	auth       SignOuter
	store      *state.Store
	notifier   notify.Notifier
	signingOut bool

	ctx    context.Context
	cancel context.CancelFunc
}

var _ screen.Screen = (*ProfileScreen)(nil)
var _ screen.KeyHintProvider = (*ProfileScreen)(nil)
var _ screen.Closer = (*ProfileScreen)(nil)

func New(a SignOuter, st *state.Store, n notify.Notifier) *ProfileScreen {
	if n == nil {
		n = notify.Discard
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &ProfileScreen{auth: a, store: st, notifier: n, ctx: ctx, cancel: cancel}
}

func (s *ProfileScreen) Title() string { return "Profile" }

func (s *ProfileScreen) Init() tea.Cmd { return nil }

func (s *ProfileScreen) Close() { s.cancel() }

func (s *ProfileScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "R", Description: "Retake placement test"},
		{Key: "O", Description: "Sign out"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *ProfileScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case signedOutMsg:
		s.signingOut = false
		// On success the session subscription sends the app back to onboarding.
		if msg.err != nil && s.ctx.Err() == nil {
			s.notifier.Notify("Error", model.Detail(msg.err), notify.VariantError)
		}
		return s, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "r":
			return s, router.Navigate(router.RoutePlacementTest)
		case "o":
			if s.signingOut {
				return s, nil
			}
			s.signingOut = true
			ctx := s.ctx
			return s, func() tea.Msg {
				return signedOutMsg{err: s.auth.SignOut(ctx)}
			}
		}
	}
	return s, nil
}

func (s *ProfileScreen) View(width, height int) string {
	u := s.store.Snapshot().User
	if u == nil {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, theme.Hint.Render("Not signed in"))
	}

	status := "Assessment pending"
	if u.PlacementTestCompleted {
		status = "Assessment complete"
	}
	level := "Not assessed"
	if u.Level != "" {
		level = u.Level.DisplayName()
	}

	rows := [][2]string{
		{"Username", u.Username},
		{"Email", u.Email},
		{"Current Level", level},
		{"Status", status},
		{"Member since", u.CreatedAt.Local().Format("January 2, 2006")},
	}
	if u.LastLogin != nil {
		rows = append(rows, [2]string{"Last login", u.LastLogin.Local().Format("Jan 2, 2006 15:04")})
	}

	label := lipgloss.NewStyle().Foreground(theme.TextDim).Width(16)
	var b strings.Builder
	b.WriteString(theme.Title.Render(avatar(u)))
	b.WriteString("\n\n")
	for _, r := range rows {
		b.WriteString(label.Render(r[0]))
		b.WriteString(theme.Body.Render(r[1]))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	if s.signingOut {
		b.WriteString(theme.Hint.Render("Signing out..."))
	} else {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
			components.NewButton("R  Retake Test", false, nil).View(),
			" ",
			components.NewButton("O  Sign Out", false, nil).View(),
		))
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, theme.Card.Render(b.String()))
}

// avatar is the initial shown at the top of the card.
func avatar(u *model.Profile) string {
	name := u.Username
	if name == "" {
		name = u.Email
	}
	if name == "" {
		return "?"
	}
	return strings.ToUpper(string([]rune(name)[0:1]))
}
