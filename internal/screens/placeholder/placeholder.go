// Package placeholder renders simple static screens: settings while it is
// being built, and the not-found page.
package placeholder

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/vibetune/internal/router"
	"github.com/abhisek/vibetune/internal/screen"
	"github.com/abhisek/vibetune/internal/ui/layout"
	"github.com/abhisek/vibetune/internal/ui/theme"
)

// PlaceholderScreen is a generic static screen.
type PlaceholderScreen struct {
	title string
	body  string
	home  bool
}

var _ screen.Screen = (*PlaceholderScreen)(nil)
var _ screen.KeyHintProvider = (*PlaceholderScreen)(nil)

// New creates a new PlaceholderScreen with the given title and body.
func New(title, body string) *PlaceholderScreen {
	return &PlaceholderScreen{title: title, body: body}
}

// Settings is the "coming soon" settings page.
func Settings() *PlaceholderScreen {
	return New("Settings", "╌╌ Coming Soon ╌╌\n\nSettings are being built.\nCheck back later!")
}

// NotFound is shown for unknown routes. Enter returns to the chat.
func NotFound(path string) *PlaceholderScreen {
	p := New("Not Found", "404\n\nOops! Page not found: "+path+"\n\nPress Enter to return to practice")
	p.home = true
	return p
}

func (p *PlaceholderScreen) Init() tea.Cmd {
	return nil
}

func (p *PlaceholderScreen) KeyHints() []layout.KeyHint {
	if p.home {
		return []layout.KeyHint{{Key: "Enter", Description: "Return to practice"}}
	}
	return []layout.KeyHint{{Key: "Esc", Description: "Back"}}
}

func (p *PlaceholderScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return p, nil
	}
	switch kmsg.String() {
	case "enter":
		if p.home {
			return p, router.Navigate(router.RouteChat)
		}
	case "esc":
		return p, func() tea.Msg { return router.PopScreenMsg{} }
	}
	return p, nil
}

func (p *PlaceholderScreen) View(width, height int) string {
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Foreground(theme.Text).
		Render(p.body)
}

func (p *PlaceholderScreen) Title() string {
	return p.title
}
