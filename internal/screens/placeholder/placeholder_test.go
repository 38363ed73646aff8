package placeholder

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/vibetune/internal/router"
)

func TestSettingsBackPops(t *testing.T) {
	p := Settings()
	if p.Title() != "Settings" {
		t.Errorf("title = %q", p.Title())
	}
	if !strings.Contains(p.View(80, 20), "Coming Soon") {
		t.Error("settings should say coming soon")
	}
	_, cmd := p.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd != nil {
		t.Error("enter on settings should do nothing")
	}
	_, cmd = p.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("esc should pop")
	}
}

func TestNotFoundReturnsToChat(t *testing.T) {
	p := NotFound("/nope")
	if !strings.Contains(p.View(80, 20), "/nope") {
		t.Error("not found should name the path")
	}
	_, cmd := p.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	msg, ok := cmd().(router.NavigateMsg)
	if !ok || msg.Path != router.RouteChat {
		t.Errorf("enter = %+v, want navigate to chat", msg)
	}
}
