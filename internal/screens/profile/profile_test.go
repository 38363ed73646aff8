package profile

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/vibetune/internal/model"
	"github.com/abhisek/vibetune/internal/notify"
	"github.com/abhisek/vibetune/internal/router"
	"github.com/abhisek/vibetune/internal/state"
)

type fakeSignOut struct {
	calls int
	err   error
}

func (f *fakeSignOut) SignOut(context.Context) error {
	f.calls++
	return f.err
}

type toasts struct{ titles []string }

func (t *toasts) Notify(title, _ string, _ notify.Variant) { t.titles = append(t.titles, title) }

func press(s *ProfileScreen, r rune) tea.Cmd {
	_, cmd := s.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	return cmd
}

func TestViewShowsProfile(t *testing.T) {
	tests := []struct {
		name    string
		profile model.Profile
		want    []string
	}{
		{
			"assessed",
			model.Profile{Username: "ana", Email: "ana@example.com", Level: model.LevelAdvanced, PlacementTestCompleted: true, CreatedAt: time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC)},
			[]string{"ana@example.com", "Advanced", "Assessment complete", "2026"},
		},
		{
			"pending",
			model.Profile{Email: "bo@example.com"},
			[]string{"Not assessed", "Assessment pending", "B"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := state.New()
			p := tt.profile
			st.SetUser(&p)
			v := New(&fakeSignOut{}, st, nil).View(100, 30)
			for _, w := range tt.want {
				if !strings.Contains(v, w) {
					t.Errorf("view missing %q", w)
				}
			}
		})
	}
}

func TestRetakeNavigates(t *testing.T) {
	s := New(&fakeSignOut{}, state.New(), nil)
	msg, ok := press(s, 'r')().(router.NavigateMsg)
	if !ok || msg.Path != router.RoutePlacementTest {
		t.Errorf("r = %+v, want navigate to placement test", msg)
	}
}

func TestSignOut(t *testing.T) {
	fs := &fakeSignOut{}
	s := New(fs, state.New(), nil)

	cmd := press(s, 'o')
	if press(s, 'o') != nil {
		t.Error("second press while signing out should be ignored")
	}
	s.Update(cmd())
	if fs.calls != 1 {
		t.Errorf("sign out calls = %d, want 1", fs.calls)
	}
}

func TestSignOutFailureToasts(t *testing.T) {
	n := &toasts{}
	s := New(&fakeSignOut{err: errors.New("boom")}, state.New(), n)
	s.Update(press(s, 'o')())
	if len(n.titles) != 1 || n.titles[0] != "Error" {
		t.Errorf("toasts = %v", n.titles)
	}
}
